package strip

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/motion"
	"github.com/llehouerou/reel/internal/pan"
)

// velocityTau is the time constant of the drag velocity smoothing.
const velocityTau = 0.05

// dragState follows one left-button drag.
type dragState struct {
	active      bool
	origin      geom.Point
	translation geom.Point
	velocity    geom.Point
	lastMove    time.Time

	// scrolling is set once the pan handler gave the drag back: the strip
	// then scrolls freely across items.
	scrolling bool
	anchor    float64
}

// track records a new translation and updates the smoothed velocity.
func (d *dragState) track(t geom.Point, now time.Time) {
	if t == d.translation {
		return
	}
	if dt := now.Sub(d.lastMove).Seconds(); dt > 0 {
		instant := t.Sub(d.translation).Scale(1 / dt)
		a := 1 - math.Exp(-dt/velocityTau)
		d.velocity = d.velocity.Add(instant.Sub(d.velocity).Scale(a))
	}
	d.translation = t
	d.lastMove = now
}

// Update handles frame ticks and mouse input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		m.ticking = false
		now := msg.Time
		if now.IsZero() {
			now = m.clock.Now()
		}
		m.advance(now)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m.flush()
}

// advance moves every animation to the frame at now.
func (m *Model) advance(now time.Time) {
	m.pan.Tick(now)
	m.anim.Tick(now)
	m.stepFocus()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			m.focusBy(-1)
		}
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			m.focusBy(1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.beginDrag(msg)
	case msg.Action == tea.MouseActionMotion && m.drag.active:
		m.moveDrag(msg)
	case msg.Action == tea.MouseActionRelease && m.drag.active:
		m.endDrag(msg)
	}
}

func mousePoint(msg tea.MouseMsg) geom.Point {
	return geom.Point{X: float64(msg.X), Y: float64(msg.Y)}
}

func (m *Model) beginDrag(msg tea.MouseMsg) {
	if m.Empty() || !m.Ready() {
		return
	}
	if _, removing := m.geo.Removing(); removing {
		return
	}
	now := m.clock.Now()
	m.stopMotion()
	m.drag = dragState{
		active:   true,
		origin:   mousePoint(msg),
		lastMove: now,
	}
	m.pan.Handle(pan.Sample{Phase: pan.Began, Time: now})
}

func (m *Model) moveDrag(msg tea.MouseMsg) {
	now := m.clock.Now()
	m.drag.track(mousePoint(msg).Sub(m.drag.origin), now)
	m.pan.Handle(pan.Sample{
		Phase:       pan.Changed,
		Translation: m.drag.translation,
		Velocity:    m.drag.velocity,
		Time:        now,
	})
	if m.drag.scrolling {
		m.scrollTo(m.drag.anchor - m.drag.translation.X)
	}
}

func (m *Model) endDrag(msg tea.MouseMsg) {
	now := m.clock.Now()
	m.drag.track(mousePoint(msg).Sub(m.drag.origin), now)
	velocity := m.drag.velocity
	if now.Sub(m.drag.lastMove) > m.opts.Pan.StopWindow {
		velocity = geom.Point{}
	}
	m.pan.Handle(pan.Sample{
		Phase:       pan.Ended,
		Translation: m.drag.translation,
		Velocity:    velocity,
		Time:        now,
	})

	scrolling := m.drag.scrolling
	m.drag = dragState{}
	if !scrolling {
		return
	}

	// Project the fling and settle on the item it would stop on, keeping
	// the release velocity in the spring.
	p := m.opts.Pan
	dec := motion.NewDeceleration(m.offset, velocity.Neg(), p.DecelerationRate, p.DecelerationThreshold)
	m.focusTo(m.geo.IndexForContentOffset(dec.Destination().X))
	m.focus.velocity = -velocity.X
}

// flush turns the messages raised during an update into commands and keeps
// one frame tick in flight while anything animates.
func (m *Model) flush() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.out)+1)
	for _, msg := range m.out {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.out = nil
	if m.Animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}
