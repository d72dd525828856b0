package strip

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/motion"
)

// focusEpsilon is how close, in cells and cells per second, the focus
// spring must get before it snaps.
const focusEpsilon = 0.05

// setOffset moves the strip and lets the focus follow it.
func (m *Model) setOffset(p geom.Point) {
	m.offset = p
	m.observeEdges()
	m.syncTransition()
}

// observeEdges reports the offset to the edge observer. Overscroll is
// measured against the settled offsets of the first and last items.
func (m *Model) observeEdges() {
	if m.Empty() || !m.Ready() {
		m.edges.DecelerationEnded()
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	lo := m.geo.ContentOffsetX(0)
	hi := m.geo.ContentOffsetX(m.list.Len() - 1)
	m.edges.SetBounds(geom.RectFromBounds(lo, 0, hi, 0))
	m.edges.Observe(m.offset)
}

// onBeginBouncing snaps the focus to the item at the overscrolled edge.
func (m *Model) onBeginBouncing(dir bounce.Direction) {
	index := 0
	if dir == bounce.Right {
		index = m.list.Len() - 1
	}
	if m.focus.active {
		m.focus.target = index
	}
	if m.geo.Center() != index && m.geo.SetCenter(index) == nil {
		m.focusChanged()
	}
	m.out = append(m.out, EdgeMsg{Edge: dir})
}

func (m *Model) onReverseBouncing(dir bounce.Direction) {
	m.out = append(m.out, EdgeMsg{Edge: dir, Recovering: true})
}

// syncTransition derives the focus transition from the offset. Crossing
// several settled offsets in one frame moves the center once per item.
func (m *Model) syncTransition() {
	if m.Empty() || !m.Ready() {
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	before := m.geo.Center()
	for range m.list.Len() {
		c := m.geo.Center()
		t := m.geo.TransitionForContentOffset(m.offset.X)
		if err := m.geo.SetTransition(t.Target, t.Progress); err != nil {
			return
		}
		if t.Progress < 1 || m.geo.Center() == c {
			break
		}
	}
	if m.geo.Center() != before {
		m.focusChanged()
	}
}

func (m *Model) focusChanged() {
	it, ok := m.Focused()
	if !ok {
		return
	}
	if p := m.geo.Playing(); p != "" && p != it.ID() {
		m.geo.SetPlaying("")
	}
	m.out = append(m.out, FocusChangedMsg{Index: m.geo.Center(), Item: it})
}

// stopMotion ends every animation that writes the offset. A removal in
// flight is finished rather than abandoned. The edge observer keeps its
// state until the offset comes to rest.
func (m *Model) stopMotion() {
	m.anim.Cancel()
	m.pan.Cancel()
	m.focus = focusMotion{}
}

// focusBy moves the focus target by delta items.
func (m *Model) focusBy(delta int) {
	base := m.geo.Center()
	if m.focus.active {
		base = m.focus.target
	}
	m.focusTo(base + delta)
}

// focusTo springs the offset to the settled offset of index. The velocity
// of a running focus spring is kept.
func (m *Model) focusTo(index int) {
	if m.Empty() || !m.Ready() {
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	velocity := m.focus.velocity
	if !m.focus.active {
		velocity = 0
	}
	m.stopMotion()
	m.drag = dragState{}
	m.focus = focusMotion{
		active:   true,
		target:   max(0, min(index, m.list.Len()-1)),
		velocity: velocity,
	}
}

func (m *Model) stepFocus() {
	if !m.focus.active {
		return
	}
	if m.Empty() || !m.Ready() {
		m.focus = focusMotion{}
		return
	}
	m.focus.target = min(m.focus.target, m.list.Len()-1)
	target := m.geo.ContentOffsetX(m.focus.target)
	x, v := m.spring.Update(m.offset.X, m.focus.velocity, target)
	m.focus.velocity = v
	if math.Abs(x-target) >= focusEpsilon || math.Abs(v) >= focusEpsilon {
		m.setOffset(geom.Point{X: x})
		return
	}

	index := m.focus.target
	m.focus = focusMotion{}
	m.setOffset(geom.Point{X: target})
	if m.geo.Center() != index {
		_ = m.geo.SetCenter(index)
		m.focusChanged()
	}
	m.edges.DecelerationEnded()
}

// glide tweens the offset with the focus held still.
func (m *Model) glide(to float64, d time.Duration, ease motion.EasingFunc) {
	m.stopMotion()
	from := m.offset.X
	m.anim.Run(d, func(p float64, _ time.Duration) {
		m.offset = geom.Point{X: geom.Lerp(from, to, ease(p))}
		m.observeEdges()
	}, func(bool) {
		m.edges.DecelerationEnded()
	})
}

// Next focuses the next item.
func (m *Model) Next() tea.Cmd {
	m.focusBy(1)
	return m.flush()
}

// Prev focuses the previous item.
func (m *Model) Prev() tea.Cmd {
	m.focusBy(-1)
	return m.flush()
}

// First focuses the first item.
func (m *Model) First() tea.Cmd {
	m.focusTo(0)
	return m.flush()
}

// Last focuses the last item.
func (m *Model) Last() tea.Cmd {
	m.focusTo(m.list.Len() - 1)
	return m.flush()
}

// ToggleStyle switches between carousel and flow.
func (m *Model) ToggleStyle() tea.Cmd {
	next := carousel.Flow
	if m.Style() == carousel.Flow {
		next = carousel.Carousel
	}
	return m.SetStyle(next, true)
}

// SetStyle switches style on the item being focused. With animate the
// offset eases to its new settled value.
func (m *Model) SetStyle(style carousel.Style, animate bool) tea.Cmd {
	if _, removing := m.geo.Removing(); removing {
		return nil
	}
	index := m.geo.Center()
	if m.focus.active {
		index = m.focus.target
	}
	m.stopMotion()
	if err := m.geo.SetStyle(style); err != nil {
		return nil
	}
	if m.Empty() || !m.Ready() {
		return nil
	}
	prev := m.geo.Center()
	_ = m.geo.SetCenter(index)
	if m.geo.Center() != prev {
		m.focusChanged()
	}
	to := m.geo.ContentOffsetX(index)
	if animate {
		m.glide(to, m.opts.TransitionDuration, motion.EaseInOutCubic)
	} else {
		m.offset = geom.Point{X: to}
	}
	return m.flush()
}

// TogglePlaying starts or stops the focused video. It reports false when
// the focused item is not a video.
func (m *Model) TogglePlaying() (tea.Cmd, bool) {
	it, ok := m.Focused()
	if !ok || it.Kind != carousel.Video {
		return nil, false
	}
	if _, removing := m.geo.Removing(); removing {
		return nil, false
	}
	if m.geo.Playing() == it.ID() {
		m.geo.SetPlaying("")
	} else {
		m.geo.SetPlaying(it.ID())
	}
	if m.Ready() && !m.drag.active && !m.focus.active {
		m.glide(m.geo.ContentOffsetX(m.geo.Center()), m.opts.TransitionDuration, motion.EaseOutCubic)
	}
	return m.flush(), true
}

// RemoveFocused animates the focused item out of the strip. The list is
// only changed once the animation ends.
func (m *Model) RemoveFocused() (tea.Cmd, error) {
	if m.Empty() {
		return nil, ErrEmpty
	}
	if _, removing := m.geo.Removing(); removing {
		return nil, carousel.ErrRemovalInProgress
	}
	m.stopMotion()
	m.drag = dragState{}

	index := m.geo.Center()
	if err := m.geo.BeginRemoval(index); err != nil {
		return nil, err
	}
	from := m.offset.X
	to, ok := m.geo.RemovalContentOffsetX()
	if !ok {
		to = from
	}
	m.anim.Run(m.opts.RemovalDuration,
		func(p float64, _ time.Duration) {
			e := motion.EaseOutCubic(p)
			_ = m.geo.SetRemovalProgress(e)
			m.offset = geom.Point{X: geom.Lerp(from, to, e)}
		},
		func(bool) {
			m.finishRemoval(index)
		})
	return m.flush(), nil
}

func (m *Model) finishRemoval(index int) {
	it := m.list.Remove(index)
	delete(m.sizes, it.ID())
	if err := m.geo.FinishRemoval(); err != nil {
		m.geo.CancelRemoval()
	}
	m.out = append(m.out, RemovedMsg{Item: it})

	if m.Empty() {
		m.offset = geom.Point{}
		m.edges.DecelerationEnded()
		m.out = append(m.out, EmptiedMsg{})
		return
	}
	if m.Ready() {
		m.offset = geom.Point{X: m.geo.ContentOffsetX(m.geo.Center())}
		m.observeEdges()
	}
	m.focusChanged()
}

// scrollTo places the offset at x, stretched past the first and last
// settled offsets.
func (m *Model) scrollTo(x float64) {
	lo := m.geo.ContentOffsetX(0)
	hi := m.geo.ContentOffsetX(m.list.Len() - 1)
	rb := motion.RubberBand{
		Coefficient: m.opts.Pan.RubberCoefficient,
		Dims:        m.geo.State().Viewport,
		Bounds:      geom.RectFromBounds(lo, 0, hi, 0),
	}
	m.setOffset(rb.Clamp(geom.Point{X: x}))
}

func (m *Model) onInvalidated() {
	m.drag.scrolling = true
	m.drag.anchor = m.offset.X + m.drag.translation.X
}

func (m *Model) onSeekEnded() {
	m.edges.DecelerationEnded()
}
