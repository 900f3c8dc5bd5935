package utils

// Lerp maps t in [0, 1] onto [a, b].
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
