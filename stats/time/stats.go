package time

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// Stats holds time-domain statistics of one sampled period.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	ZeroCrossings  int
	Variance       float64
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes the statistics of a single-precision series in one pass,
// using Welford's algorithm for the mean and variance.
func Calculate(values []float32) Stats {
	n := len(values)
	if n == 0 {
		return emptyStats()
	}

	signal := widen(values)

	var (
		mean          float64
		m2            float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	sumSq := energy(signal)
	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest, crestdB float64
	if rms != 0 {
		crest = peak / rms
		crestdB = core.LinearToDB(crest)
	}

	return Stats{
		Length:         n,
		DC:             mean,
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Max:            maxVal,
		MaxPos:         maxPos,
		Min:            minVal,
		MinPos:         minPos,
		Peak:           peak,
		Peak_dB:        core.LinearToDB(peak),
		Range:          maxVal - minVal,
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		Energy:         sumSq,
		ZeroCrossings:  zeroCrossings,
		Variance:       m2 / nf,
	}
}

// String formats the summary line printed under a sample table.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d dc=%.6f rms=%.6f peak=%.6f crest=%.3f zc=%d",
		s.Length, s.DC, s.RMS, s.Peak, s.CrestFactor, s.ZeroCrossings)
}

// RMS returns the root-mean-square of the values.
func RMS(values []float32) float64 {
	if len(values) == 0 {
		return 0
	}
	return math.Sqrt(energy(widen(values)) / float64(len(values)))
}

// ZeroCrossings returns the number of sign changes between consecutive
// values. Exact zeros do not count as a crossing.
func ZeroCrossings(values []float32) int {
	var count int
	for i := 1; i < len(values); i++ {
		if values[i-1]*values[i] < 0 {
			count++
		}
	}
	return count
}

func widen(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func energy(signal []float64) float64 {
	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}
	return sum
}
