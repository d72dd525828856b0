// Package strip is the bubbletea component around the carousel geometry. It
// owns the scroll offset, turns mouse drags into pan samples, runs the frame
// clock for every animation and renders the visible items.
package strip

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/reel/internal/animator"
	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/motion"
	"github.com/llehouerou/reel/internal/pan"
	"github.com/llehouerou/reel/internal/ui"
	"github.com/llehouerou/reel/internal/ui/layout"
)

// ErrEmpty is returned by operations that need a focused item.
var ErrEmpty = errors.New("strip: no items")

// Options configure a strip.
type Options struct {
	Metrics carousel.Metrics
	Pan     pan.Params
	Style   carousel.Style

	FrameInterval      time.Duration
	TransitionDuration time.Duration
	RemovalDuration    time.Duration

	// FocusFrequency and FocusDamping tune the spring that moves the offset
	// when focus changes from the keyboard or after a scroll.
	FocusFrequency float64
	FocusDamping   float64

	// Clock defaults to the system clock.
	Clock animator.Clock
}

// DefaultOptions returns options for a terminal strip in cell units.
func DefaultOptions() Options {
	m := carousel.DefaultMetrics()
	m.NaturalAspect = 1.5
	m.VerticalInset = 2
	m.MinLineSpacing = 1
	m.MaxLineSpacing = 4
	p := pan.DefaultParams()
	p.AutoInvalidateInset = 6
	return Options{
		Metrics:            m,
		Pan:                p,
		Style:              carousel.Carousel,
		FrameInterval:      time.Second / 60,
		TransitionDuration: 250 * time.Millisecond,
		RemovalDuration:    220 * time.Millisecond,
		FocusFrequency:     6,
		FocusDamping:       1,
	}
}

// Model is the strip component. Use New; the zero value is not usable.
type Model struct {
	ui.Base
	opts  Options
	clock animator.Clock

	list   *media.List
	geo    *carousel.Geometry
	offset geom.Point

	pan   *pan.Handler
	edges *bounce.Observer
	anim  *animator.Slot

	spring  harmonica.Spring
	focus   focusMotion
	drag    dragState
	sizes   map[carousel.ItemID]geom.Size
	ticking bool

	// out collects messages raised while handling one update.
	out []tea.Msg
}

// focusMotion moves the offset toward the settled offset of target.
type focusMotion struct {
	active   bool
	target   int
	velocity float64
}

// New creates a strip over list.
func New(list *media.List, opts Options) (*Model, error) {
	if opts.Clock == nil {
		opts.Clock = animator.SystemClock{}
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	geo, err := carousel.New(list, opts.Metrics)
	if err != nil {
		return nil, err
	}
	if err := geo.SetStyle(opts.Style); err != nil {
		return nil, err
	}

	m := &Model{
		opts:  opts,
		clock: opts.Clock,
		list:  list,
		geo:   geo,
		anim:  animator.NewSlot(opts.Clock),
		sizes: make(map[carousel.ItemID]geom.Size),
		spring: harmonica.NewSpring(
			opts.FrameInterval.Seconds(), opts.FocusFrequency, opts.FocusDamping),
	}
	m.pan = pan.New(panHost{m}, opts.Pan,
		pan.WithClock(opts.Clock),
		pan.WithEvents(pan.Events{
			Invalidated: m.onInvalidated,
			SeekEnded:   m.onSeekEnded,
		}))
	m.edges = bounce.New(bounce.Horizontal, bounce.Events{
		BeginBouncing:   m.onBeginBouncing,
		ReverseBouncing: m.onReverseBouncing,
	})
	return m, nil
}

// SetSize resizes the strip. Unless a gesture or animation is running the
// focused item is re-centered at once.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	if err := m.geo.Resize(layout.Viewport(width, height)); err != nil {
		return
	}
	if m.Empty() {
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	if m.pan.State() != pan.Idle && !m.drag.active {
		m.pan.Cancel()
	}
	if !m.drag.active && !m.focus.active && !m.anim.Active() {
		m.offset = geom.Point{X: m.geo.ContentOffsetX(m.geo.Center())}
		m.observeEdges()
	}
}

// Ready reports whether the strip has a usable viewport.
func (m *Model) Ready() bool {
	return m.geo.State().Viewport.IsPositive()
}

// Empty reports whether there is nothing to show.
func (m *Model) Empty() bool {
	return m.list.Len() == 0
}

// Count returns the number of items.
func (m *Model) Count() int {
	return m.list.Len()
}

// Center returns the focused index.
func (m *Model) Center() int {
	return m.geo.Center()
}

// Focused returns the focused item.
func (m *Model) Focused() (media.Item, bool) {
	if m.Empty() {
		return media.Item{}, false
	}
	return m.list.Item(m.geo.Center()), true
}

// Style returns the current style.
func (m *Model) Style() carousel.Style {
	return m.geo.State().Style
}

// Offset returns the scroll offset.
func (m *Model) Offset() geom.Point {
	return m.offset
}

// Geometry exposes the layout for read-only queries.
func (m *Model) Geometry() *carousel.Geometry {
	return m.geo
}

// PanState returns the pan handler state.
func (m *Model) PanState() pan.State {
	return m.pan.State()
}

// Bouncing returns the edges currently overscrolled.
func (m *Model) Bouncing() bounce.Direction {
	return m.edges.Bouncing()
}

// Playing reports whether the focused item is a playing video.
func (m *Model) Playing() bool {
	it, ok := m.Focused()
	return ok && m.geo.Playing() == it.ID()
}

// Animating reports whether anything still needs frames.
func (m *Model) Animating() bool {
	return m.anim.Active() || m.focus.active ||
		m.pan.State() == pan.Decelerating || m.pan.State() == pan.Bouncing
}

// MeasuredSize returns the preferred size recorded for id, in cells.
func (m *Model) MeasuredSize(id carousel.ItemID) (geom.Size, bool) {
	s, ok := m.sizes[id]
	return s, ok
}

// SetPreferredSize records the measured size of an item, in cells. The
// strip glides to the new settled offset when the focused item changed
// width while nothing else moves the offset.
func (m *Model) SetPreferredSize(id carousel.ItemID, size geom.Size) (tea.Cmd, error) {
	changed, err := m.geo.SetPreferredSize(id, size)
	if err != nil {
		return nil, err
	}
	m.sizes[id] = size
	if !changed || m.Empty() || !m.Ready() {
		return nil, nil
	}
	if it, _ := m.Focused(); it.ID() != id {
		return nil, nil
	}
	if m.drag.active || m.focus.active || m.anim.Active() || m.pan.State() != pan.Idle {
		return nil, nil
	}
	m.glide(m.geo.ContentOffsetX(m.geo.Center()), m.opts.TransitionDuration, motion.EaseOutCubic)
	return m.flush(), nil
}

// SetFocus focuses index at once, without animation.
func (m *Model) SetFocus(index int) {
	if m.Empty() {
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	m.stopMotion()
	_ = m.geo.SetCenter(index)
	if m.Ready() {
		m.offset = geom.Point{X: m.geo.ContentOffsetX(m.geo.Center())}
		m.observeEdges()
	}
}

// panHost gives the pan handler access to the offset without exposing the
// setter on Model.
type panHost struct{ m *Model }

func (h panHost) ContentOffset() geom.Point { return h.m.offset }

func (h panHost) SetContentOffset(p geom.Point) {
	h.m.setOffset(p)
}

func (h panHost) RubberBounds() geom.Rect { return h.m.geo.RubberBounds() }

func (h panHost) Dimensions() geom.Size { return h.m.geo.State().Viewport }
