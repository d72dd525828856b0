// Package geom provides the small value types shared by the layout and
// physics packages: points, sizes and axis-aligned rectangles.
package geom

import "math"

// Point is a position or a 2D vector (offsets, velocities, translations).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// IsZero reports whether both components are exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsFinite reports whether both components are finite numbers.
func (p Point) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// DistanceToSegment returns the distance from p to the segment [a, b].
// A degenerate segment is treated as the point a.
func (p Point) DistanceToSegment(a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = Clamp(t, 0, 1)
	return p.Distance(a.Add(ab.Scale(t)))
}

// Size is a width × height pair.
type Size struct {
	Width, Height float64
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return IsFinite(s.Width) && IsFinite(s.Height)
}

// IsPositive reports whether both dimensions are finite and strictly positive.
func (s Size) IsPositive() bool {
	return s.IsFinite() && s.Width > 0 && s.Height > 0
}

// Ratio returns Width/Height, or 0 for a zero height.
func (s Size) Ratio() float64 {
	if s.Height == 0 {
		return 0
	}
	return s.Width / s.Height
}

// Rect is an axis-aligned rectangle. A zero width or height is valid and
// describes a segment or a single point.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromBounds builds a rectangle spanning [minX,maxX] × [minY,maxY].
func RectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: maxX - minX, Height: maxY - minY},
	}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ClampPoint returns the point of r closest to p.
func (r Rect) ClampPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.MinX(), r.MaxX()),
		Y: Clamp(p.Y, r.MinY(), r.MaxY()),
	}
}

// Outset grows r by d on every side. A negative d shrinks it, never below a
// zero size around the center.
func (r Rect) Outset(d float64) Rect {
	minX, maxX := r.MinX()-d, r.MaxX()+d
	minY, maxY := r.MinY()-d, r.MaxY()+d
	if minX > maxX {
		minX, maxX = r.MidX(), r.MidX()
	}
	if minY > maxY {
		mid := r.Origin.Y + r.Size.Height/2
		minY, maxY = mid, mid
	}
	return RectFromBounds(minX, minY, maxX, maxY)
}

// SegmentExit clips the segment from start to end against r and returns the
// point where it leaves r. ok is false when the segment never leaves r (end
// inside) or never enters it. Liang–Barsky clipping, so degenerate
// rectangles (zero width or height) work.
func (r Rect) SegmentExit(start, end Point) (Point, bool) {
	d := end.Sub(start)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if !clip(-d.X, start.X-r.MinX()) ||
		!clip(d.X, r.MaxX()-start.X) ||
		!clip(-d.Y, start.Y-r.MinY()) ||
		!clip(d.Y, r.MaxY()-start.Y) {
		return Point{}, false
	}
	if t1 >= 1 {
		return Point{}, false
	}
	return start.Add(d.Scale(t1)), true
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
