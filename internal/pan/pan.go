// Package pan turns pan-gesture samples into scroll offset motion: 1:1
// elastic tracking while the finger is down, then deceleration or a spring
// bounce once it lifts. The handler writes the offset through its Host and
// reads the elastic bounds from it; it never owns layout.
package pan

import (
	"fmt"
	"math"
	"time"

	"github.com/llehouerou/reel/internal/animator"
	"github.com/llehouerou/reel/internal/geom"
	"github.com/llehouerou/reel/internal/motion"
)

// Phase is the gesture phase of a sample.
type Phase int

const (
	Began Phase = iota
	Changed
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is the handler state.
type State int

const (
	Idle State = iota
	Tracking
	Decelerating
	Bouncing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Decelerating:
		return "decelerating"
	case Bouncing:
		return "bouncing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sample is one gesture report. Translation is cumulative since Began and
// Velocity is the translation velocity in units per second. A zero Time is
// replaced by the handler's clock.
type Sample struct {
	Phase       Phase
	Translation geom.Point
	Velocity    geom.Point
	Time        time.Time
}

// Host owns the scroll offset.
type Host interface {
	ContentOffset() geom.Point
	SetContentOffset(geom.Point)
	// RubberBounds is the elastic region of offsets around the focused item.
	RubberBounds() geom.Rect
	// Dimensions scales the rubber band; usually the viewport size.
	Dimensions() geom.Size
}

// Events are optional callbacks.
type Events struct {
	// Invalidated fires once per gesture when the drag leaves the elastic
	// region and normal scrolling should take over.
	Invalidated func()
	// SeekEnded fires when a deceleration or bounce settles.
	SeekEnded func()
	// StateChanged fires on every state transition.
	StateChanged func(State)
}

// Params tune the physics.
type Params struct {
	DecelerationRate      float64
	DecelerationThreshold float64
	RubberCoefficient     float64
	Spring                motion.Spring
	BounceThreshold       float64
	// AutoInvalidateInset is how far past the rubber bounds a drag may go
	// before it is handed back to the caller. Zero or less never invalidates.
	AutoInvalidateInset float64
	// StopWindow is how long without movement makes a release a stop.
	StopWindow time.Duration
}

// DefaultParams returns the usual scroll-view feel.
func DefaultParams() Params {
	return Params{
		DecelerationRate:      motion.DefaultDecelerationRate,
		DecelerationThreshold: motion.DefaultThreshold,
		RubberCoefficient:     motion.DefaultRubberBandCoefficient,
		Spring:                motion.BounceSpring,
		BounceThreshold:       motion.DefaultThreshold,
		AutoInvalidateInset:   0,
		StopWindow:            100 * time.Millisecond,
	}
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock sets the clock animations start from. Tests use a fake one.
func WithClock(clock animator.Clock) Option {
	return func(h *Handler) {
		h.slot = animator.NewSlot(clock)
	}
}

// WithEvents sets the callbacks.
func WithEvents(events Events) Option {
	return func(h *Handler) {
		h.events = events
	}
}

// Handler is the pan state machine. It is not safe for concurrent use.
type Handler struct {
	host   Host
	params Params
	events Events
	slot   *animator.Slot

	state       State
	initial     geom.Point
	bounds      geom.Rect
	lastMove    time.Time
	invalidated bool

	deceleration *motion.Deceleration
	bounce       *motion.SpringMotion
}

// New creates an idle handler writing to host.
func New(host Host, params Params, opts ...Option) *Handler {
	h := &Handler{
		host:   host,
		params: params,
		slot:   animator.NewSlot(nil),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// State returns the current state.
func (h *Handler) State() State {
	return h.state
}

// Invalidated reports whether the current or last gesture was handed back
// to the caller.
func (h *Handler) Invalidated() bool {
	return h.invalidated
}

// IsDecelerating combines the caller's own deceleration flag with whether
// this handler is animating the offset.
func (h *Handler) IsDecelerating(callerDecelerating bool) bool {
	return callerDecelerating || h.state == Decelerating || h.state == Bouncing
}

// Deceleration returns the active deceleration, if any.
func (h *Handler) Deceleration() (motion.Deceleration, bool) {
	if h.deceleration == nil {
		return motion.Deceleration{}, false
	}
	return *h.deceleration, true
}

// Bounce returns the active bounce spring, if any.
func (h *Handler) Bounce() (motion.SpringMotion, bool) {
	if h.bounce == nil {
		return motion.SpringMotion{}, false
	}
	return *h.bounce, true
}

// Handle feeds one gesture sample.
func (h *Handler) Handle(s Sample) {
	if s.Time.IsZero() {
		s.Time = h.slot.Now()
	}
	switch s.Phase {
	case Began:
		h.begin(s)
	case Changed:
		h.change(s)
	case Ended, Cancelled:
		h.end(s)
	}
}

// Tick advances the running animation to the frame at now.
func (h *Handler) Tick(now time.Time) {
	h.slot.Tick(now)
}

// Cancel stops any animation and returns to Idle without SeekEnded.
func (h *Handler) Cancel() {
	h.slot.Cancel()
	h.clearMotion()
	h.setState(Idle)
}

func (h *Handler) begin(s Sample) {
	h.slot.Cancel()
	h.clearMotion()

	h.bounds = h.host.RubberBounds()
	// An interrupted bounce leaves the offset stretched; resume the drag
	// from the unclamped position so the first sample does not jump.
	h.initial = h.rubberBand().Unclamp(h.host.ContentOffset())
	h.lastMove = s.Time
	h.invalidated = false
	h.setState(Tracking)
}

func (h *Handler) change(s Sample) {
	if h.state != Tracking {
		return
	}
	h.lastMove = s.Time
	if h.invalidated {
		return
	}

	proposed := h.initial.Sub(s.Translation)
	if h.leftElasticRegion(proposed, s.Translation) {
		h.invalidated = true
		if h.events.Invalidated != nil {
			h.events.Invalidated()
		}
		return
	}
	h.host.SetContentOffset(h.rubberBand().Clamp(proposed))
}

// leftElasticRegion reports whether the drag went past the bounds outset by
// the inset. The translation is checked only across the scroll axis; along
// it the outset bounds already bound the translation.
func (h *Handler) leftElasticRegion(proposed, translation geom.Point) bool {
	inset := h.params.AutoInvalidateInset
	if inset <= 0 {
		return false
	}
	return !h.bounds.Outset(inset).Contains(proposed) || math.Abs(translation.Y) > inset
}

func (h *Handler) end(s Sample) {
	if h.state != Tracking {
		return
	}
	if h.invalidated {
		h.setState(Idle)
		return
	}

	velocity := s.Velocity.Neg()
	if s.Time.Sub(h.lastMove) > h.params.StopWindow {
		velocity = geom.Point{}
	}

	offset := h.host.ContentOffset()
	if h.bounds.Contains(offset) {
		h.decelerate(offset, velocity)
		return
	}
	h.startBounce(offset, velocity)
}

func (h *Handler) decelerate(offset, velocity geom.Point) {
	dec := motion.NewDeceleration(offset, velocity, h.params.DecelerationRate, h.params.DecelerationThreshold)
	duration := dec.Duration()

	// Stop where the path leaves the bounds and let a bounce take over.
	stopAt, hit := h.bounds.SegmentExit(offset, dec.Destination())
	if hit {
		if t, ok := dec.DurationTo(stopAt); ok {
			duration = t
		} else {
			hit = false
		}
	}

	h.clearMotion()
	h.deceleration = &dec
	h.setState(Decelerating)

	h.slot.Run(seconds(duration),
		func(_ float64, elapsed time.Duration) {
			h.host.SetContentOffset(dec.Value(elapsed.Seconds()))
		},
		func(finished bool) {
			if !finished {
				return
			}
			if hit {
				h.startBounce(h.host.ContentOffset(), dec.VelocityAt(duration))
				return
			}
			h.settle()
		})
}

func (h *Handler) startBounce(offset, velocity geom.Point) {
	rest := h.bounds.ClampPoint(offset)
	spring := motion.NewSpringMotion(h.params.Spring, offset.Sub(rest), velocity, h.params.BounceThreshold)

	h.clearMotion()
	h.bounce = &spring
	h.setState(Bouncing)

	h.slot.Run(seconds(spring.Duration()),
		func(progress float64, elapsed time.Duration) {
			if progress >= 1 {
				h.host.SetContentOffset(rest)
				return
			}
			h.host.SetContentOffset(rest.Add(spring.Value(elapsed.Seconds())))
		},
		func(finished bool) {
			if finished {
				h.settle()
			}
		})
}

func (h *Handler) settle() {
	h.clearMotion()
	h.setState(Idle)
	if h.events.SeekEnded != nil {
		h.events.SeekEnded()
	}
}

func (h *Handler) clearMotion() {
	h.deceleration = nil
	h.bounce = nil
}

func (h *Handler) rubberBand() motion.RubberBand {
	return motion.RubberBand{
		Coefficient: h.params.RubberCoefficient,
		Dims:        h.host.Dimensions(),
		Bounds:      h.bounds,
	}
}

func (h *Handler) setState(s State) {
	if h.state == s {
		return
	}
	h.state = s
	if h.events.StateChanged != nil {
		h.events.StateChanged(s)
	}
}

func seconds(s float64) time.Duration {
	if s <= 0 || !geom.IsFinite(s) {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
