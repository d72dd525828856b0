package motion

import (
	"fmt"
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

const (
	// DefaultDecelerationRate matches the feel of a native scroll view.
	DefaultDecelerationRate = 0.998
	// DefaultThreshold is the distance, in points, under which motion is
	// considered finished.
	DefaultThreshold = 0.5
)

// Deceleration models a value gliding to rest with exponentially decaying
// velocity: velocity(t) = v0 · rate^(1000t).
type Deceleration struct {
	Initial   geom.Point
	Velocity  geom.Point // points per second
	Rate      float64    // per-millisecond velocity retention, in (0, 1)
	Threshold float64
}

// NewDeceleration validates rate and threshold. A rate outside (0, 1) or a
// non-positive threshold is a programming error.
func NewDeceleration(initial, velocity geom.Point, rate, threshold float64) Deceleration {
	if rate <= 0 || rate >= 1 || math.IsNaN(rate) {
		panic(fmt.Sprintf("motion: deceleration rate %v outside (0, 1)", rate))
	}
	if threshold <= 0 || !geom.IsFinite(threshold) {
		panic(fmt.Sprintf("motion: deceleration threshold %v must be positive", threshold))
	}
	return Deceleration{
		Initial:   initial,
		Velocity:  velocity,
		Rate:      rate,
		Threshold: threshold,
	}
}

func (d Deceleration) coefficient() float64 {
	return 1000 * math.Log(d.Rate)
}

// Destination is the value the motion converges to.
func (d Deceleration) Destination() geom.Point {
	return d.Initial.Sub(d.Velocity.Scale(1 / d.coefficient()))
}

// Duration is the time after which the remaining distance to the destination
// falls below the threshold. Zero for a motion at rest.
func (d Deceleration) Duration() float64 {
	speed := d.Velocity.Length()
	if speed == 0 {
		return 0
	}
	k := d.coefficient()
	t := math.Log(-k*d.Threshold/speed) / k
	if t < 0 || !geom.IsFinite(t) {
		return 0
	}
	return t
}

// Value returns the position at time t.
func (d Deceleration) Value(t float64) geom.Point {
	k := d.coefficient()
	factor := (math.Pow(d.Rate, 1000*t) - 1) / k
	return d.Initial.Add(d.Velocity.Scale(factor))
}

// VelocityAt returns the velocity at time t.
func (d Deceleration) VelocityAt(t float64) geom.Point {
	return d.Velocity.Scale(math.Pow(d.Rate, 1000*t))
}

// DurationTo returns the time at which the motion passes p. ok is false when
// p is farther than the threshold from the path between Initial and the
// destination.
func (d Deceleration) DurationTo(p geom.Point) (float64, bool) {
	if p.DistanceToSegment(d.Initial, d.Destination()) >= d.Threshold {
		return 0, false
	}
	speedSq := d.Velocity.Dot(d.Velocity)
	if speedSq == 0 {
		return 0, true
	}

	total := d.Duration()
	k := d.coefficient()
	// Value(t) - Initial = lambda · Velocity with lambda = (e^(kt) - 1) / k.
	lambda := p.Sub(d.Initial).Dot(d.Velocity) / speedSq
	arg := 1 + k*lambda
	if arg <= 0 {
		return total, true
	}
	t := math.Log(arg) / k
	return geom.Clamp(t, 0, total), true
}
