package motion

// EasingFunc maps time progress in [0,1] to value progress in [0,1].
type EasingFunc func(t float64) float64

var (
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutCubic decelerates to zero velocity.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}
)
