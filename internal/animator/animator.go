// Package animator drives a callback across wall-clock time, one display
// frame at a time. The frame source is external: whoever owns the display
// link (a bubbletea tick, a test) calls Tick with the frame timestamp.
package animator

import "time"

// Clock supplies the current time. Animations read it once, when started.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TickFunc receives the normalized progress in [0,1] and the elapsed time.
type TickFunc func(progress float64, elapsed time.Duration)

// CompleteFunc is called exactly once, with finished=false when the
// animation was cancelled.
type CompleteFunc func(finished bool)

// Animation is a single timed run. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Animation struct {
	start      time.Time
	duration   time.Duration
	onTick     TickFunc
	onComplete CompleteFunc
	running    bool
}

// Start begins an animation of the given duration. A non-positive duration
// completes before Start returns: onTick(1, 0) then onComplete(true).
func Start(clock Clock, duration time.Duration, onTick TickFunc, onComplete CompleteFunc) *Animation {
	a := &Animation{
		start:      clock.Now(),
		duration:   duration,
		onTick:     onTick,
		onComplete: onComplete,
		running:    true,
	}
	if duration <= 0 {
		a.duration = 0
		a.finish()
	}
	return a
}

// Running reports whether the animation still expects ticks.
func (a *Animation) Running() bool {
	return a != nil && a.running
}

// Duration returns the total duration.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Tick advances the animation to the frame at now.
func (a *Animation) Tick(now time.Time) {
	if !a.Running() {
		return
	}
	elapsed := max(now.Sub(a.start), 0)
	if elapsed >= a.duration {
		a.finish()
		return
	}
	if a.onTick != nil {
		a.onTick(float64(elapsed)/float64(a.duration), elapsed)
	}
}

// Cancel stops the animation and reports onComplete(false). Calling it on a
// finished or already cancelled animation does nothing.
func (a *Animation) Cancel() {
	if !a.Running() {
		return
	}
	a.running = false
	if a.onComplete != nil {
		a.onComplete(false)
	}
}

func (a *Animation) finish() {
	if a.onTick != nil {
		a.onTick(1, a.duration)
	}
	a.running = false
	if a.onComplete != nil {
		a.onComplete(true)
	}
}
