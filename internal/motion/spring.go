package motion

import (
	"fmt"
	"math"

	"github.com/llehouerou/reel/internal/geom"
)

// Spring describes a damped harmonic oscillator.
type Spring struct {
	Mass         float64
	Stiffness    float64
	DampingRatio float64 // 1 is critical, (0, 1) under-damped
}

// BounceSpring is the critically damped spring used to settle an
// over-scrolled offset back onto its bounds.
var BounceSpring = Spring{Mass: 1, Stiffness: 100, DampingRatio: 1}

func (s Spring) Damping() float64 {
	return 2 * s.DampingRatio * math.Sqrt(s.Mass*s.Stiffness)
}

func (s Spring) Beta() float64 {
	return s.Damping() / (2 * s.Mass)
}

// DampedFrequency is the angular frequency of an under-damped oscillation.
func (s Spring) DampedFrequency() float64 {
	return math.Sqrt(s.Stiffness/s.Mass) * math.Sqrt(1-s.DampingRatio*s.DampingRatio)
}

// SpringMotion is the closed-form trajectory of a displacement released
// from a spring with some initial velocity. Value(t) is the remaining
// displacement, decaying to zero.
type SpringMotion struct {
	spring       Spring
	displacement geom.Point
	velocity     geom.Point
	threshold    float64

	critical bool
	beta     float64
	wd       float64
	c1, c2   geom.Point
}

// NewSpringMotion builds the closed form for spring. The damping ratio must
// be 1 (critical) or inside (0, 1) (under-damped); anything else, as well as
// a non-positive mass or stiffness, is a programming error and panics.
func NewSpringMotion(spring Spring, displacement, velocity geom.Point, threshold float64) SpringMotion {
	if spring.Mass <= 0 || spring.Stiffness <= 0 {
		panic(fmt.Sprintf("motion: spring mass %v and stiffness %v must be positive", spring.Mass, spring.Stiffness))
	}
	if threshold <= 0 || !geom.IsFinite(threshold) {
		panic(fmt.Sprintf("motion: spring threshold %v must be positive", threshold))
	}

	m := SpringMotion{
		spring:       spring,
		displacement: displacement,
		velocity:     velocity,
		threshold:    threshold,
		beta:         spring.Beta(),
		c1:           displacement,
	}

	switch r := spring.DampingRatio; {
	case r == 1:
		m.critical = true
		m.c2 = velocity.Add(displacement.Scale(m.beta))
	case r > 0 && r < 1:
		m.wd = spring.DampedFrequency()
		m.c2 = velocity.Add(displacement.Scale(m.beta)).Scale(1 / m.wd)
	default:
		panic(fmt.Sprintf("motion: damping ratio %v outside (0, 1]", r))
	}
	return m
}

// Spring returns the spring the motion was built from.
func (m SpringMotion) Spring() Spring {
	return m.spring
}

// Displacement is the displacement at time zero.
func (m SpringMotion) Displacement() geom.Point {
	return m.displacement
}

// Critical reports whether the critically damped closed form is in use.
func (m SpringMotion) Critical() bool {
	return m.critical
}

// Duration is the time after which the displacement stays under the
// threshold.
func (m SpringMotion) Duration() float64 {
	if m.displacement.IsZero() && m.velocity.IsZero() {
		return 0
	}

	var t float64
	if m.critical {
		// Bound each decaying term e^(-bt)·c1 and e^(-bt)·c2·t separately.
		t1 := math.Log(2*m.c1.Length()/m.threshold) / m.beta
		t2 := 2 / m.beta * math.Log(4*m.c2.Length()/(math.E*m.beta*m.threshold))
		t = math.Max(t1, t2)
	} else {
		t = math.Log((m.c1.Length()+m.c2.Length())/m.threshold) / m.beta
	}

	if t < 0 || !geom.IsFinite(t) {
		return 0
	}
	return t
}

// Value returns the remaining displacement at time t.
func (m SpringMotion) Value(t float64) geom.Point {
	decay := math.Exp(-m.beta * t)
	if m.critical {
		return m.c1.Add(m.c2.Scale(t)).Scale(decay)
	}
	cos, sin := math.Cos(m.wd*t), math.Sin(m.wd*t)
	return m.c1.Scale(cos).Add(m.c2.Scale(sin)).Scale(decay)
}

// VelocityAt returns the time derivative of Value at t.
func (m SpringMotion) VelocityAt(t float64) geom.Point {
	decay := math.Exp(-m.beta * t)
	if m.critical {
		pos := m.c1.Add(m.c2.Scale(t))
		return m.c2.Sub(pos.Scale(m.beta)).Scale(decay)
	}
	cos, sin := math.Cos(m.wd*t), math.Sin(m.wd*t)
	pos := m.c1.Scale(cos).Add(m.c2.Scale(sin))
	osc := m.c2.Scale(m.wd * cos).Sub(m.c1.Scale(m.wd * sin))
	return osc.Sub(pos.Scale(m.beta)).Scale(decay)
}
