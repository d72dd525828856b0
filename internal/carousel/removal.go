package carousel

import (
	"fmt"

	"github.com/llehouerou/reel/internal/geom"
)

// removal animates an item out of the strip. Frames blend linearly from the
// layout with the item to the layout without it, and the exiting item
// shrinks in place, so nothing jumps at either end.
type removal struct {
	index    int
	id       ItemID
	count    int // list length including the exiting item
	progress float64
	before   layout
	after    layout
	next     LayoutState

	// pending holds ratios measured while the removal runs.
	pending map[ItemID]float64
}

// applyPending records the ratios held back during a removal, except the
// one for skip.
func (g *Geometry) applyPending(r *removal, skip ItemID) {
	for id, ratio := range r.pending {
		if id != skip {
			g.setRatio(id, ratio)
		}
	}
}

// BeginRemoval starts removing index. The item must still be in the list;
// drive the animation with SetRemovalProgress, take the item out of the
// list, then call FinishRemoval.
func (g *Geometry) BeginRemoval(index int) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	count := g.items.Len()
	if index < 0 || index >= count {
		return fmt.Errorf("carousel: remove index %d out of range [0,%d)", index, count)
	}

	next := stateAfterRemoval(g.state, index, count-1)
	before := g.live()
	after := layout{
		g:        g,
		count:    count - 1,
		center:   next.Center,
		target:   next.Transition.Target,
		progress: next.Transition.Progress,
		skip:     index,
	}
	g.removal = &removal{
		index:  index,
		id:     g.items.At(index).ID,
		count:  count,
		before: before,
		after:  after,
		next:   next,
	}
	return nil
}

// SetRemovalProgress moves the removal to progress r in [0,1].
func (g *Geometry) SetRemovalProgress(r float64) error {
	if g.removal == nil {
		return ErrNoRemoval
	}
	if !geom.IsFinite(r) {
		return ErrInvalidProgress
	}
	g.removal.progress = geom.Clamp(r, 0, 1)
	return nil
}

// Removing reports the index being removed, if any.
func (g *Geometry) Removing() (int, bool) {
	if g.removal == nil {
		return 0, false
	}
	return g.removal.index, true
}

// RemovalContentOffsetX is the offset that centers the focused item once
// the running removal is finished. ok is false without a removal or when the
// list will be empty.
func (g *Geometry) RemovalContentOffsetX() (x float64, ok bool) {
	r := g.removal
	if r == nil || r.after.count == 0 {
		return 0, false
	}
	return r.after.settledOffset(r.next.Center), true
}

// FinishRemoval commits the removal once the item has left the list. The
// focus moves to min(index, newCount-1) when the removed item was focused,
// indices above it shift down, and its preferred ratio is forgotten.
func (g *Geometry) FinishRemoval() error {
	r := g.removal
	if r == nil {
		return ErrNoRemoval
	}
	if g.items.Len() != r.count-1 {
		return fmt.Errorf("%w: have %d items, want %d", ErrRemovalMismatch, g.items.Len(), r.count-1)
	}
	viewport := g.state.Viewport
	style := g.state.Style
	g.state = r.next
	g.state.Viewport = viewport
	g.state.Style = style
	g.removal = nil
	g.Forget(r.id)
	g.applyPending(r, r.id)
	return nil
}

// CancelRemoval abandons a removal and keeps the item.
func (g *Geometry) CancelRemoval() {
	r := g.removal
	if r == nil {
		return
	}
	g.removal = nil
	g.applyPending(r, "")
}

// Remove adjusts the state for an item already taken out of the list at
// index, without animation.
func (g *Geometry) Remove(index int, id ItemID) error {
	if g.removal != nil {
		return ErrRemovalInProgress
	}
	g.state = stateAfterRemoval(g.state, index, g.items.Len())
	g.Forget(id)
	return nil
}

func stateAfterRemoval(s LayoutState, removed, newCount int) LayoutState {
	adjust := func(i int) int {
		switch {
		case i > removed:
			return i - 1
		case i == removed:
			return max(0, min(removed, newCount-1))
		default:
			return i
		}
	}

	next := s
	next.Center = adjust(s.Center)
	if !s.Transitioning() || s.Center == removed || s.Transition.Target == removed {
		next.Transition = Transition{Target: next.Center, Progress: s.Transition.Progress}
		if s.Transitioning() {
			next.Transition.Progress = 1
		}
		return next
	}
	next.Transition.Target = adjust(s.Transition.Target)
	return next
}

func (r *removal) frame(index int) geom.Rect {
	t := r.progress
	from := r.before.frame(index)

	var to geom.Rect
	switch {
	case index == r.index:
		to = geom.Rect{
			Origin: geom.Point{X: r.slotX(), Y: from.Origin.Y},
			Size:   geom.Size{Width: 0, Height: from.Size.Height},
		}
	case index > r.index:
		to = r.after.frame(index - 1)
	default:
		to = r.after.frame(index)
	}

	return geom.Rect{
		Origin: geom.Point{
			X: geom.Lerp(from.Origin.X, to.Origin.X, t),
			Y: geom.Lerp(from.Origin.Y, to.Origin.Y, t),
		},
		Size: geom.Size{
			Width:  geom.Lerp(from.Size.Width, to.Size.Width, t),
			Height: geom.Lerp(from.Size.Height, to.Size.Height, t),
		},
	}
}

// slotX is where the exiting item collapses to: the left edge of the item
// that takes its place, or the end of the strip when it was last.
func (r *removal) slotX() float64 {
	if r.after.count == 0 {
		return r.after.inset()
	}
	if r.index < r.after.count {
		return r.after.originX(r.index)
	}
	last := r.after.count - 1
	return r.after.originX(last) + r.after.width(last) + r.after.g.metrics.MinLineSpacing
}

func (r *removal) contentWidth() float64 {
	return geom.Lerp(r.before.contentWidth(), r.after.contentWidth(), r.progress)
}

func (r *removal) visibleRange(offsetX float64) (int, int) {
	first, last := r.before.visibleRange(offsetX)
	if r.after.count == 0 {
		return first, last
	}
	f, l := r.after.visibleRange(offsetX)
	return min(first, r.after.source(f)), max(last, r.after.source(l))
}
