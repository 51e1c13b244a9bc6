package testutil

// DC generates a constant-valued series.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates length values spaced linearly from lo to hi inclusive.
func Ramp(lo, hi float32, length int) []float32 {
	out := make([]float32, length)
	if length == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float32(length-1)
	for i := range out {
		out[i] = lo + step*float32(i)
	}
	return out
}
