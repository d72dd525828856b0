package carousel

// pivotSpacing is the gap a fully focused item claims on each side. Playing
// video gets extra room; everything else uses MaxLineSpacing.
func pivotSpacing(kind MediaKind, playing bool, m Metrics) float64 {
	spacing := m.MaxLineSpacing
	if kind == Video && playing {
		spacing *= m.PlayingVideoSpacingMultiplier
	}
	return max(spacing, m.MinLineSpacing)
}
