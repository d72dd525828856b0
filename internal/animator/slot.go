package animator

import "time"

// Slot holds at most one running animation for an owner. Running a new
// animation cancels the previous one first, so two animations never write
// the same value.
type Slot struct {
	clock   Clock
	current *Animation
}

// NewSlot returns an empty slot reading time from clock.
func NewSlot(clock Clock) *Slot {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Slot{clock: clock}
}

// Run cancels the active animation, if any, and starts a new one.
func (s *Slot) Run(duration time.Duration, onTick TickFunc, onComplete CompleteFunc) *Animation {
	s.Cancel()
	anim := Start(s.clock, duration, onTick, onComplete)
	if anim.Running() {
		s.current = anim
	}
	return anim
}

// Tick forwards a frame to the active animation.
func (s *Slot) Tick(now time.Time) {
	if s.current == nil {
		return
	}
	cur := s.current
	cur.Tick(now)
	if !cur.Running() && s.current == cur {
		s.current = nil
	}
}

// Cancel cancels the active animation.
func (s *Slot) Cancel() {
	if s.current == nil {
		return
	}
	cur := s.current
	s.current = nil
	cur.Cancel()
}

// Active reports whether an animation is running.
func (s *Slot) Active() bool {
	return s.current.Running()
}

// Now reads the slot's clock.
func (s *Slot) Now() time.Time {
	return s.clock.Now()
}
