package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/geom"
)

func TestSpring_Derived(t *testing.T) {
	s := Spring{Mass: 1, Stiffness: 100, DampingRatio: 1}
	assert.InDelta(t, 20, s.Damping(), 1e-12)
	assert.InDelta(t, 10, s.Beta(), 1e-12)
	assert.InDelta(t, 0, s.DampedFrequency(), 1e-12)

	u := Spring{Mass: 1, Stiffness: 100, DampingRatio: 0.6}
	assert.InDelta(t, 8, u.DampedFrequency(), 1e-12)
}

func TestSpringMotion_AtRest(t *testing.T) {
	for _, ratio := range []float64{1, 0.5} {
		m := NewSpringMotion(Spring{Mass: 1, Stiffness: 100, DampingRatio: ratio}, geom.Point{}, geom.Point{}, 0.5)
		assert.Zero(t, m.Duration(), "ratio %v", ratio)
		assert.Equal(t, geom.Point{}, m.Value(0.3))
	}
}

func TestSpringMotion_InitialConditions(t *testing.T) {
	tests := []struct {
		name   string
		spring Spring
	}{
		{"critical", Spring{Mass: 1, Stiffness: 100, DampingRatio: 1}},
		{"under-damped", Spring{Mass: 1, Stiffness: 200, DampingRatio: 0.4}},
	}

	displacement := geom.Pt(50, -10)
	velocity := geom.Pt(-300, 40)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSpringMotion(tt.spring, displacement, velocity, 0.5)

			v0 := m.Value(0)
			assert.InDelta(t, displacement.X, v0.X, 1e-9)
			assert.InDelta(t, displacement.Y, v0.Y, 1e-9)

			dv := m.VelocityAt(0)
			assert.InDelta(t, velocity.X, dv.X, 1e-9)
			assert.InDelta(t, velocity.Y, dv.Y, 1e-9)

			// VelocityAt agrees with a central difference of Value.
			const h = 1e-6
			for _, ts := range []float64{0.05, 0.2, 0.6} {
				num := m.Value(ts + h).Sub(m.Value(ts - h)).Scale(1 / (2 * h))
				an := m.VelocityAt(ts)
				assert.InDelta(t, num.X, an.X, 1e-3)
				assert.InDelta(t, num.Y, an.Y, 1e-3)
			}

			d := m.Duration()
			require.Positive(t, d)
			assert.LessOrEqual(t, m.Value(d).Length(), 0.5+1e-9)
		})
	}
}

func TestSpringMotion_CriticalIsMonotone(t *testing.T) {
	m := NewSpringMotion(BounceSpring, geom.Pt(50, 0), geom.Point{}, 0.5)
	require.True(t, m.Critical())

	prev := m.Value(0).X
	for ts := 0.01; ts <= m.Duration(); ts += 0.01 {
		v := m.Value(ts).X
		assert.Less(t, v, prev)
		assert.Positive(t, v)
		prev = v
	}
}

func TestSpringMotion_InvalidDampingRatio(t *testing.T) {
	for _, ratio := range []float64{0, -1, 1.5} {
		assert.Panics(t, func() {
			NewSpringMotion(Spring{Mass: 1, Stiffness: 100, DampingRatio: ratio}, geom.Pt(1, 0), geom.Point{}, 0.5)
		}, "ratio %v", ratio)
	}
}
