package carousel

import (
	"fmt"
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

// Geometry lays out a strip of items. It is not safe for concurrent use.
//
// Query methods (Frame, Size, OriginX, ContentOffsetX...) require a non-empty
// item list and panic otherwise: laying out nothing is a caller bug. Mutators
// validate their input and return errors instead.
type Geometry struct {
	items   Items
	metrics Metrics
	state   LayoutState

	// ratios holds the last applied preferred aspect ratio per item.
	ratios  map[ItemID]float64
	playing ItemID

	removal *removal
}

// New creates a geometry over items. The initial state is carousel style,
// focused on the first item, with an empty viewport until Resize is called.
func New(items Items, metrics Metrics) (*Geometry, error) {
	if err := metrics.Validate(); err != nil {
		return nil, err
	}
	return &Geometry{
		items:   items,
		metrics: metrics,
		state: LayoutState{
			Style:      Carousel,
			Transition: Transition{Target: 0, Progress: 1},
		},
		ratios: make(map[ItemID]float64),
	}, nil
}

// Metrics returns the metrics in use.
func (g *Geometry) Metrics() Metrics {
	return g.metrics
}

// State returns a copy of the layout state.
func (g *Geometry) State() LayoutState {
	return g.state
}

// Count returns the number of items in the caller's list.
func (g *Geometry) Count() int {
	return g.items.Len()
}

// Center returns the focused index.
func (g *Geometry) Center() int {
	return g.state.Center
}

// NaturalSize is the size of an unfocused item, derived from the viewport
// height.
func (g *Geometry) NaturalSize() geom.Size {
	h := max(0, g.state.Viewport.Height-g.metrics.VerticalInset)
	return geom.Size{Width: h * g.metrics.NaturalAspect, Height: h}
}

// Resize sets the viewport. The item height must stay positive.
func (g *Geometry) Resize(viewport geom.Size) error {
	if !viewport.IsPositive() || viewport.Height <= g.metrics.VerticalInset {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, viewport.Width, viewport.Height)
	}
	g.state.Viewport = viewport
	return nil
}

// SetStyle switches between carousel and flow. The transition is kept, so a
// caller can animate its progress around the switch.
func (g *Geometry) SetStyle(style Style) error {
	if style != Carousel && style != Flow {
		return fmt.Errorf("carousel: unknown style %d", int(style))
	}
	g.state.Style = style
	return nil
}

// SetCenter focuses index, clamped to the list, and drops any transition.
func (g *Geometry) SetCenter(index int) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	index = clampIndex(index, g.items.Len()-1)
	g.state.Center = index
	g.state.Transition = Transition{Target: index, Progress: 1}
	return nil
}

// SetTransition moves focus toward target. Progress is clamped to [0,1];
// reaching 1 makes target the center. A new call replaces the previous
// transition.
func (g *Geometry) SetTransition(target int, progress float64) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	if !geom.IsFinite(progress) {
		return ErrInvalidProgress
	}
	target = clampIndex(target, g.items.Len()-1)
	progress = geom.Clamp(progress, 0, 1)
	if progress >= 1 {
		g.state.Center = target
		g.state.Transition = Transition{Target: target, Progress: 1}
		return nil
	}
	g.state.Transition = Transition{Target: target, Progress: progress}
	return nil
}

func (g *Geometry) checkMutable() error {
	if g.items.Len() == 0 {
		return ErrNoItems
	}
	if g.removal != nil {
		return ErrRemovalInProgress
	}
	return nil
}

// SetPreferredSize records the content size measured for an item. Only the
// aspect ratio is kept; changes within RatioEpsilon are ignored. changed
// reports whether the layout may have moved. During a removal the ratio is
// held back until the removal finishes or is cancelled, and changed is
// false.
func (g *Geometry) SetPreferredSize(id ItemID, size geom.Size) (bool, error) {
	if !size.IsPositive() {
		return false, fmt.Errorf("%w: %vx%v", ErrInvalidSize, size.Width, size.Height)
	}
	ratio := size.Ratio()
	if r := g.removal; r != nil {
		if r.pending == nil {
			r.pending = make(map[ItemID]float64)
		}
		r.pending[id] = ratio
		return false, nil
	}
	return g.setRatio(id, ratio), nil
}

func (g *Geometry) setRatio(id ItemID, ratio float64) bool {
	if old, ok := g.ratios[id]; ok && math.Abs(old-ratio) <= g.metrics.RatioEpsilon {
		return false
	}
	g.ratios[id] = ratio
	return true
}

// PreferredRatio returns the ratio applied for id, if any.
func (g *Geometry) PreferredRatio(id ItemID) (float64, bool) {
	r, ok := g.ratios[id]
	return r, ok
}

// Forget drops the preferred ratio of an item that left the list.
func (g *Geometry) Forget(id ItemID) {
	delete(g.ratios, id)
	if g.playing == id {
		g.playing = ""
	}
}

// SetPlaying marks the video whose playback widens its spacing. An empty id
// clears it.
func (g *Geometry) SetPlaying(id ItemID) {
	g.playing = id
}

// Playing returns the item marked as playing.
func (g *Geometry) Playing() ItemID {
	return g.playing
}

func (g *Geometry) live() layout {
	count := g.items.Len()
	if g.removal != nil {
		count = g.removal.count
	}
	return layout{
		g:        g,
		count:    count,
		center:   g.state.Center,
		target:   g.state.Transition.Target,
		progress: g.state.Transition.Progress,
		skip:     -1,
	}
}

func (g *Geometry) mustHaveItems() {
	if g.items.Len() == 0 {
		panic("carousel: layout of an empty item list")
	}
}

// Frame returns the rectangle of item index in content coordinates.
func (g *Geometry) Frame(index int) geom.Rect {
	g.mustHaveItems()
	if g.removal != nil {
		return g.removal.frame(index)
	}
	return g.live().frame(index)
}

// Size returns the size of item index.
func (g *Geometry) Size(index int) geom.Size {
	return g.Frame(index).Size
}

// OriginX returns the left edge of item index.
func (g *Geometry) OriginX(index int) float64 {
	return g.Frame(index).Origin.X
}

// ContentWidth is the scrollable width of the whole strip.
func (g *Geometry) ContentWidth() float64 {
	g.mustHaveItems()
	if g.removal != nil {
		return g.removal.contentWidth()
	}
	return g.live().contentWidth()
}

// PreferredWidth is the width item index settles at when focused.
func (g *Geometry) PreferredWidth(index int) float64 {
	g.mustHaveItems()
	l := g.live()
	if !l.carousel() {
		return l.natural().Width
	}
	return l.preferredWidth(index)
}

// ContentOffsetX is the scroll offset that centers item index once it is
// focused.
func (g *Geometry) ContentOffsetX(index int) float64 {
	g.mustHaveItems()
	l := g.live()
	return l.settledOffset(clampIndex(index, l.count-1))
}

// IndexForContentOffset maps an offset back to the item it would center,
// clamped to the list.
func (g *Geometry) IndexForContentOffset(x float64) int {
	g.mustHaveItems()
	return g.live().indexForOffset(x)
}

// TransitionForContentOffset returns the transition that follows a drag to
// offset x: toward the neighbour of the center on the side x points to,
// with progress proportional to the distance covered.
func (g *Geometry) TransitionForContentOffset(x float64) Transition {
	g.mustHaveItems()
	l := g.live()
	c := l.center
	from := l.settledOffset(c)

	next := c + 1
	if x < from {
		next = c - 1
	}
	if next < 0 || next >= l.count {
		return Transition{Target: c, Progress: 1}
	}
	to := l.settledOffset(next)
	if to == from {
		return Transition{Target: next, Progress: 1}
	}
	p := geom.Clamp((x-from)/(to-from), 0, 1)
	if p == 0 {
		return Transition{Target: c, Progress: 1}
	}
	return Transition{Target: next, Progress: p}
}

// RubberBounds is the elastic region of offsets around the focused item: a
// single offset when the item fits the viewport, otherwise the range that
// keeps the item covering the viewport. The rectangle has zero height at y=0.
func (g *Geometry) RubberBounds() geom.Rect {
	g.mustHaveItems()
	l := g.live()
	c := l.center
	vw := g.state.Viewport.Width
	w := l.natural().Width
	if l.carousel() {
		w = l.preferredWidth(c)
	}
	if w <= vw {
		x := l.settledOffset(c)
		return geom.RectFromBounds(x, 0, x, 0)
	}
	origin := l.settledOrigin(c)
	return geom.RectFromBounds(origin, 0, origin+w-vw, 0)
}

// VisibleRange returns the first and last index that may intersect the
// viewport scrolled to offsetX. Callers still test each Frame.
func (g *Geometry) VisibleRange(offsetX float64) (first, last int) {
	g.mustHaveItems()
	if g.removal != nil {
		return g.removal.visibleRange(offsetX)
	}
	return g.live().visibleRange(offsetX)
}
