package signal

import "math"

// Point is one sample: time in seconds since the waveform start and the
// amplitude at that time.
type Point struct {
	T float32
	Y float32
}

// Series is an ordered, ascending-time sequence of samples.
type Series []Point

// Times returns the sample times.
func (s Series) Times() []float32 {
	out := make([]float32, len(s))
	for i, p := range s {
		out[i] = p.T
	}
	return out
}

// Values returns the sample amplitudes.
func (s Series) Values() []float32 {
	out := make([]float32, len(s))
	for i, p := range s {
		out[i] = p.Y
	}
	return out
}

// Float64 returns the amplitudes widened to float64 for analysis code.
func (s Series) Float64() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = float64(p.Y)
	}
	return out
}

// Peak returns max |y|, or 0 for an empty series.
func (s Series) Peak() float32 {
	var peak float32
	for _, p := range s {
		a := float32(math.Abs(float64(p.Y)))
		if a > peak {
			peak = a
		}
	}
	return peak
}
