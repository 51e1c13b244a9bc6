package frequency

import (
	"fmt"
	"math"
)

// Stats holds spectral shape descriptors of a harmonic spectrum.
//
//nolint:revive
type Stats struct {
	BinCount     int
	Fundamental  float64 // Hz
	Peak         float64
	PeakHarmonic int
	Energy       float64 // sum of squared AC levels
	Centroid     float64 // Hz
	Spread       float64 // Hz
	Flatness     float64 // Wiener entropy of bins 1..n-1, 0..1
	Rolloff      float64 // Hz below which 85% of AC energy lies
	Bandwidth    float64 // 3 dB bandwidth around the peak, Hz
	Peak_dB      float64
}

// RolloffFraction is the energy fraction used for Stats.Rolloff.
const RolloffFraction = 0.85

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// Calculate computes spectral statistics of spectrum, where bin k holds the
// level of harmonic k of fundamental (Hz). Bin 0 is DC and is excluded from
// every descriptor.
func Calculate(spectrum []float64, fundamental float64) Stats {
	s := Stats{BinCount: len(spectrum), Fundamental: fundamental, Peak_dB: math.Inf(-1)}
	if len(spectrum) < 2 {
		return s
	}

	ac := spectrum[1:]
	sum := 0.0
	for i, v := range ac {
		sum += v
		s.Energy += v * v
		if v > s.Peak {
			s.Peak = v
			s.PeakHarmonic = i + 1
		}
	}
	s.Peak_dB = toDB(s.Peak)

	s.Centroid = centroid(spectrum, fundamental, sum)
	s.Spread = spread(spectrum, fundamental, s.Centroid, sum)
	s.Flatness = Flatness(spectrum)
	s.Rolloff = rolloff(spectrum, fundamental, RolloffFraction, s.Energy)
	s.Bandwidth = Bandwidth(spectrum, fundamental)
	return s
}

// String formats the descriptors printed under a harmonic table.
func (s Stats) String() string {
	return fmt.Sprintf("peak=H%d centroid=%.3f Hz spread=%.3f Hz rolloff=%.3f Hz flatness=%.3f",
		s.PeakHarmonic, s.Centroid, s.Spread, s.Rolloff, s.Flatness)
}

// Centroid returns the level-weighted mean frequency of bins 1..n-1.
//
//	centroid = sum(k*f0 * |X_k|) / sum(|X_k|)
func Centroid(spectrum []float64, fundamental float64) float64 {
	if len(spectrum) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range spectrum[1:] {
		sum += v
	}
	return centroid(spectrum, fundamental, sum)
}

func centroid(spectrum []float64, fundamental, sum float64) float64 {
	if len(spectrum) < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for k := 1; k < len(spectrum); k++ {
		weighted += float64(k) * fundamental * spectrum[k]
	}
	return weighted / sum
}

func spread(spectrum []float64, fundamental, cent, sum float64) float64 {
	if len(spectrum) < 2 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for k := 1; k < len(spectrum); k++ {
		diff := float64(k)*fundamental - cent
		weighted += diff * diff * spectrum[k]
	}
	return math.Sqrt(weighted / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
//	flatness = exp(mean(log(|X_k|))) / mean(|X_k|)
//
// The DC bin is excluded. Any zero bin yields 0.
func Flatness(spectrum []float64) float64 {
	n := len(spectrum)
	if n < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for k := 1; k < n; k++ {
		v := spectrum[k]
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the frequency below which fraction (0..1) of the AC
// energy lies.
func Rolloff(spectrum []float64, fundamental, fraction float64) float64 {
	if len(spectrum) < 2 {
		return 0
	}
	energy := 0.0
	for _, v := range spectrum[1:] {
		energy += v * v
	}
	return rolloff(spectrum, fundamental, fraction, energy)
}

func rolloff(spectrum []float64, fundamental, fraction, energy float64) float64 {
	n := len(spectrum)
	if n < 2 || energy == 0 {
		return 0
	}
	threshold := fraction * energy
	cum := 0.0
	for k := 1; k < n; k++ {
		cum += spectrum[k] * spectrum[k]
		if cum >= threshold {
			return float64(k) * fundamental
		}
	}
	return float64(n-1) * fundamental
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz,
// interpolating linearly between bins. The search is confined to bins 1..n-1.
func Bandwidth(spectrum []float64, fundamental float64) float64 {
	n := len(spectrum)
	if n < 2 {
		return 0
	}

	peakBin := 1
	for k := 2; k < n; k++ {
		if spectrum[k] > spectrum[peakBin] {
			peakBin = k
		}
	}
	peak := spectrum[peakBin]
	if peak == 0 {
		return 0
	}
	threshold := peak / math.Sqrt2

	lower := fundamental
	for k := peakBin; k > 1; k-- {
		if spectrum[k-1] <= threshold && spectrum[k] > threshold {
			lower = interpFreq(k-1, k, spectrum[k-1], spectrum[k], threshold, fundamental)
			break
		}
	}

	upper := float64(n-1) * fundamental
	for k := peakBin; k < n-1; k++ {
		if spectrum[k+1] <= threshold && spectrum[k] > threshold {
			upper = interpFreq(k, k+1, spectrum[k], spectrum[k+1], threshold, fundamental)
			break
		}
	}

	if bw := upper - lower; bw > 0 {
		return bw
	}
	return 0
}

func interpFreq(lo, hi int, magLo, magHi, threshold, fundamental float64) float64 {
	fLo := float64(lo) * fundamental
	fHi := float64(hi) * fundamental
	denom := magHi - magLo
	if denom == 0 {
		return (fLo + fHi) / 2
	}
	t := (threshold - magLo) / denom
	return fLo + t*(fHi-fLo)
}
