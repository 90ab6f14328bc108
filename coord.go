package particles

// ToRelative maps an absolute pixel coordinate to normalized space:
// 2*abs/max. Over [0, max] the result spans [0, 2]; callers that place
// the origin at the canvas centre subtract 1 themselves.
func ToRelative(abs, max int) float64 {
	return 2.0 * float64(abs) / float64(max)
}

// ToAbs is the inverse of ToRelative, truncated toward zero.
func ToAbs(rel float64, max int) int {
	return int(rel * float64(max) / 2.0)
}
