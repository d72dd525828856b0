package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/reel/internal/geom"
)

func TestRubberBand_InsideIsIdentity(t *testing.T) {
	rb := RubberBand{
		Coefficient: DefaultRubberBandCoefficient,
		Dims:        geom.Size{Width: 320, Height: 200},
		Bounds:      geom.RectFromBounds(400, 0, 600, 0),
	}

	for _, x := range []float64{400, 450.5, 600} {
		p := geom.Pt(x, 0)
		assert.Equal(t, p, rb.Clamp(p))
		assert.Equal(t, p, rb.Clamp(rb.Clamp(p)))
	}
}

func TestRubberBand_Overflow(t *testing.T) {
	rb := RubberBand{
		Coefficient: DefaultRubberBandCoefficient,
		Dims:        geom.Size{Width: 320, Height: 200},
		Bounds:      geom.RectFromBounds(400, 0, 600, 0),
	}

	prev := 600.0
	for _, x := range []float64{610, 650, 800, 2000, 1e6} {
		got := rb.Clamp(geom.Pt(x, 0)).X
		assert.Greater(t, got, prev, "x=%v", x)
		assert.Less(t, got, x)
		assert.Less(t, got, 600+320.0)
		prev = got
	}

	prev = 400.0
	for _, x := range []float64{390, 300, -1000, -1e6} {
		got := rb.Clamp(geom.Pt(x, 0)).X
		assert.Less(t, got, prev, "x=%v", x)
		assert.Greater(t, got, 400-320.0)
		prev = got
	}
}

func TestRubberBand_AxesAreIndependent(t *testing.T) {
	rb := RubberBand{
		Coefficient: DefaultRubberBandCoefficient,
		Dims:        geom.Size{Width: 320, Height: 200},
		Bounds:      geom.RectFromBounds(400, 0, 600, 0),
	}

	got := rb.Clamp(geom.Pt(500, 30))
	assert.Equal(t, 500.0, got.X)
	assert.InDelta(t, RubberBandDistance(30, 200, DefaultRubberBandCoefficient), got.Y, 1e-12)
}

func TestRubberBandDistance(t *testing.T) {
	assert.Zero(t, RubberBandDistance(0, 100, 0.55))
	assert.Zero(t, RubberBandDistance(50, 0, 0.55))
	// f(dim/c) = dim/2
	assert.InDelta(t, 50, RubberBandDistance(100/0.55, 100, 0.55), 1e-9)
}

func TestRubberBand_UnclampInvertsClamp(t *testing.T) {
	rb := RubberBand{
		Coefficient: DefaultRubberBandCoefficient,
		Dims:        geom.Size{Width: 320, Height: 200},
		Bounds:      geom.RectFromBounds(400, 0, 600, 0),
	}

	for _, x := range []float64{-500, 100, 399, 400, 512, 600, 650, 2000} {
		p := geom.Pt(x, 12)
		assert.InDelta(t, x, rb.Unclamp(rb.Clamp(p)).X, 1e-6, "x=%v", x)
		assert.InDelta(t, 12, rb.Unclamp(rb.Clamp(p)).Y, 1e-6)
	}
	assert.Zero(t, RubberBandOverflow(0, 100, 0.55))
	assert.True(t, geom.IsFinite(RubberBandOverflow(150, 100, 0.55)))
}
