package harmonics

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

const (
	// DefaultSize is the number of samples per period used for analysis.
	DefaultSize = 256
	// DefaultMaxHarmonics is the number of harmonics reported when the caller
	// passes a non-positive count.
	DefaultMaxHarmonics = 10
)

var errNotPowerOfTwo = errors.New("harmonics: length must be a power of two >= 4")

// Result holds the harmonic levels of one period.
//
//nolint:revive
type Result struct {
	// Levels[k-1] is the peak amplitude of harmonic k; Levels[0] is the
	// fundamental.
	Levels []float64

	// Spectrum holds the one-sided peak-amplitude spectrum, bins 0..n/2.
	// Bin k sits at k times the fundamental frequency. It does not share
	// storage with Levels.
	Spectrum []float64

	DC     float64
	THD    float64
	THD_dB float64
	OddHD  float64
	EvenHD float64
}

// Fundamental returns the level of harmonic 1.
func (r Result) Fundamental() float64 {
	if len(r.Levels) == 0 {
		return 0
	}
	return r.Levels[0]
}

// Level returns the level of harmonic k (1-based), or 0 when out of range.
func (r Result) Level(k int) float64 {
	if k < 1 || k > len(r.Levels) {
		return 0
	}
	return r.Levels[k-1]
}

// Analyze computes harmonic levels of one period held in signal.
// maxHarmonics <= 0 selects DefaultMaxHarmonics; the count is capped below
// the Nyquist bin.
func Analyze(signal []float64, maxHarmonics int) (Result, error) {
	n := len(signal)
	if n < 4 || n&(n-1) != 0 {
		return Result{}, fmt.Errorf("%w: %d", errNotPowerOfTwo, n)
	}

	if maxHarmonics <= 0 {
		maxHarmonics = DefaultMaxHarmonics
	}
	if maxHarmonics > n/2-1 {
		maxHarmonics = n/2 - 1
	}

	inData := make([]complex128, n)
	for i, x := range signal {
		inData[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("harmonics: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	scale := 2 / float64(n)
	spectrum := make([]float64, bins)
	spectrum[0] = mag[0] / float64(n)
	for k := 1; k < bins; k++ {
		spectrum[k] = mag[k] * scale
	}
	spectrum[bins-1] /= 2

	res := Result{
		DC:       re[0] / float64(n),
		Levels:   append([]float64(nil), spectrum[1:maxHarmonics+1]...),
		Spectrum: spectrum,
	}
	levels := res.Levels

	fundamental := levels[0]
	if fundamental <= 0 {
		res.THD_dB = math.Inf(-1)
		return res, nil
	}

	var oddSq, evenSq float64
	for k := 2; k <= maxHarmonics; k++ {
		v := levels[k-1] * levels[k-1]
		if k%2 == 0 {
			evenSq += v
		} else {
			oddSq += v
		}
	}

	res.THD = math.Sqrt(oddSq+evenSq) / fundamental
	res.THD_dB = core.LinearToDB(res.THD)
	res.OddHD = math.Sqrt(oddSq) / fundamental
	res.EvenHD = math.Sqrt(evenSq) / fundamental
	return res, nil
}
