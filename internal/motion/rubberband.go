package motion

import (
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

// DefaultRubberBandCoefficient gives the usual elastic resistance.
const DefaultRubberBandCoefficient = 0.55

// RubberBandDistance maps an overflow distance to the displayed distance:
// f(x) = (1 - 1/(x·c/dim + 1))·dim. The result grows with x but never
// reaches dim. A non-positive dimension yields zero.
func RubberBandDistance(overflow, dimension, coefficient float64) float64 {
	if dimension <= 0 || overflow <= 0 {
		return 0
	}
	return (1 - 1/(overflow*coefficient/dimension+1)) * dimension
}

// RubberBandOverflow inverts RubberBandDistance: it returns the overflow
// that displays as distance. Distances at or past dim map to the largest
// finite overflow.
func RubberBandOverflow(distance, dimension, coefficient float64) float64 {
	if dimension <= 0 || distance <= 0 || coefficient <= 0 {
		return 0
	}
	ratio := math.Min(distance/dimension, 1-1e-9)
	return (1/(1-ratio) - 1) * dimension / coefficient
}

// RubberBand clamps points to Bounds with elastic overflow, independently
// per axis. Dims scales the overflow; usually the viewport size.
type RubberBand struct {
	Coefficient float64
	Dims        geom.Size
	Bounds      geom.Rect
}

// Clamp passes p through when it lies inside Bounds and otherwise pulls each
// overflowing coordinate back toward its bound.
func (rb RubberBand) Clamp(p geom.Point) geom.Point {
	return geom.Point{
		X: rb.clampAxis(p.X, rb.Bounds.MinX(), rb.Bounds.MaxX(), rb.Dims.Width),
		Y: rb.clampAxis(p.Y, rb.Bounds.MinY(), rb.Bounds.MaxY(), rb.Dims.Height),
	}
}

func (rb RubberBand) clampAxis(v, lo, hi, dim float64) float64 {
	clamped := geom.Clamp(v, lo, hi)
	overflow := math.Abs(v - clamped)
	if overflow == 0 {
		return v
	}
	sign := 1.0
	if clamped > v {
		sign = -1
	}
	return clamped + sign*RubberBandDistance(overflow, dim, rb.Coefficient)
}

// Unclamp returns a point whose Clamp is p, so a drag can resume from an
// offset that is already stretched past the bounds.
func (rb RubberBand) Unclamp(p geom.Point) geom.Point {
	return geom.Point{
		X: rb.unclampAxis(p.X, rb.Bounds.MinX(), rb.Bounds.MaxX(), rb.Dims.Width),
		Y: rb.unclampAxis(p.Y, rb.Bounds.MinY(), rb.Bounds.MaxY(), rb.Dims.Height),
	}
}

func (rb RubberBand) unclampAxis(v, lo, hi, dim float64) float64 {
	switch {
	case v < lo:
		return lo - RubberBandOverflow(lo-v, dim, rb.Coefficient)
	case v > hi:
		return hi + RubberBandOverflow(v-hi, dim, rb.Coefficient)
	default:
		return v
	}
}
