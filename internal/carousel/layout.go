package carousel

import (
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

// layout evaluates the stride law for one indexing of the item list. The
// live geometry uses a single layout; a removal blends two of them, before
// and after the exiting item is dropped.
type layout struct {
	g        *Geometry
	count    int
	center   int
	target   int
	progress float64
	// skip hides one source index (the exiting item) from this layout, or -1.
	skip int
}

func (l layout) source(i int) int {
	if l.skip >= 0 && i >= l.skip {
		return i + 1
	}
	return i
}

func (l layout) item(i int) Item {
	return l.g.items.At(l.source(i))
}

func (l layout) carousel() bool {
	return l.g.state.Style == Carousel
}

func (l layout) natural() geom.Size {
	return l.g.NaturalSize()
}

func (l layout) stride() float64 {
	return l.natural().Width + l.g.metrics.MinLineSpacing
}

// inset lets the first and last items be centered in the viewport.
func (l layout) inset() float64 {
	return max(0, (l.g.state.Viewport.Width-l.natural().Width)/2)
}

// mix is how far item i is toward its preferred width, in [0,1].
func (l layout) mix(i int) float64 {
	if !l.carousel() {
		return 0
	}
	switch {
	case i == l.target:
		return l.progress
	case i == l.center:
		return 1 - l.progress
	default:
		return 0
	}
}

func (l layout) isPivot(i int) bool {
	return i == l.center || i == l.target
}

// preferredWidth is the settled width of item i when focused.
func (l layout) preferredWidth(i int) float64 {
	natural := l.natural()
	ratio, ok := l.g.ratios[l.item(i).ID]
	if !ok {
		return natural.Width
	}
	return geom.Clamp(natural.Height*ratio, natural.Width, natural.Width*l.g.metrics.MaxWidthMultiplier)
}

func (l layout) pivotSpacing(i int) float64 {
	it := l.item(i)
	return pivotSpacing(it.Kind, it.ID == l.g.playing && it.ID != "", l.g.metrics)
}

func (l layout) width(i int) float64 {
	w := l.natural().Width
	if !l.carousel() || !l.isPivot(i) {
		return w
	}
	return w + (l.preferredWidth(i)-w)*l.mix(i)
}

// gap is the spacing between item i and item i+1. Spacing next to a pivot
// grows with that pivot's mix; between two pivots the larger one wins.
func (l layout) gap(i int) float64 {
	minSpacing := l.g.metrics.MinLineSpacing
	g := minSpacing
	if !l.carousel() {
		return g
	}
	for _, k := range [2]int{i, i + 1} {
		if l.isPivot(k) && k >= 0 && k < l.count {
			g = max(g, minSpacing+(l.pivotSpacing(k)-minSpacing)*l.mix(k))
		}
	}
	return g
}

// originX walks the uniform stride and adds the width and spacing deltas
// of the two pivots, so it costs O(1) regardless of the index.
func (l layout) originX(i int) float64 {
	x := l.inset() + float64(i)*l.stride()
	if !l.carousel() {
		return x
	}
	w := l.natural().Width
	minSpacing := l.g.metrics.MinLineSpacing

	lo, hi := min(l.center, l.target), max(l.center, l.target)
	seen := [4]int{-1, -1, -1, -1}
	for n, j := range [4]int{lo - 1, lo, hi - 1, hi} {
		if j < 0 || j >= i || j >= l.count-1 {
			continue
		}
		dup := false
		for _, s := range seen[:n] {
			if s == j {
				dup = true
			}
		}
		seen[n] = j
		if dup {
			continue
		}
		x += l.width(j) - w + l.gap(j) - minSpacing
	}
	return x
}

func (l layout) frame(i int) geom.Rect {
	natural := l.natural()
	return geom.Rect{
		Origin: geom.Point{X: l.originX(i), Y: l.g.metrics.VerticalInset / 2},
		Size:   geom.Size{Width: l.width(i), Height: natural.Height},
	}
}

func (l layout) contentWidth() float64 {
	if l.count == 0 {
		return 2 * l.inset()
	}
	last := l.count - 1
	return l.originX(last) + l.width(last) + l.inset()
}

// settledOrigin is the x of item i in the layout where i is focused.
func (l layout) settledOrigin(i int) float64 {
	x := l.inset() + float64(i)*l.stride()
	if l.carousel() && i > 0 {
		x += l.pivotSpacing(i) - l.g.metrics.MinLineSpacing
	}
	return x
}

// settledOffset centers item i in the viewport, on its preferred width in
// carousel style and on its natural width in flow style.
func (l layout) settledOffset(i int) float64 {
	w := l.natural().Width
	if l.carousel() {
		w = l.preferredWidth(i)
	}
	return l.settledOrigin(i) + w/2 - l.g.state.Viewport.Width/2
}

func (l layout) indexForOffset(x float64) int {
	last := l.count - 1
	stride := l.stride()
	if stride <= 0 {
		return 0
	}
	w := l.natural().Width
	guess := int(math.Round((x + l.g.state.Viewport.Width/2 - l.inset() - w/2) / stride))
	guess = clampIndex(guess, last)
	if !l.carousel() {
		return guess
	}

	// Preferred widths move each settled offset by at most half the extra
	// width, so the nearest one is within a few strides of the guess.
	radius := int(math.Ceil(l.g.metrics.MaxWidthMultiplier)) + 1
	best, bestDist := guess, math.Inf(1)
	for i := max(0, guess-radius); i <= min(last, guess+radius); i++ {
		d := math.Abs(l.settledOffset(i) - x)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// maxShift bounds how far any item sits right of its uniform-stride slot.
func (l layout) maxShift() float64 {
	if !l.carousel() {
		return 0
	}
	m := l.g.metrics
	w := l.natural().Width
	extraWidth := 2 * w * (m.MaxWidthMultiplier - 1)
	extraSpacing := 4 * (m.MaxLineSpacing*max(1, m.PlayingVideoSpacingMultiplier) - m.MinLineSpacing)
	return extraWidth + max(0, extraSpacing)
}

func (l layout) visibleRange(offsetX float64) (int, int) {
	last := l.count - 1
	stride := l.stride()
	if stride <= 0 {
		return 0, last
	}
	vw := l.g.state.Viewport.Width
	first := int(math.Floor((offsetX-l.inset()-l.maxShift())/stride)) - 1
	end := int(math.Ceil((offsetX+vw-l.inset())/stride)) + 1
	return clampIndex(first, last), clampIndex(end, last)
}

func clampIndex(i, last int) int {
	return max(0, min(i, last))
}
