package frequency

import (
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	for _, spectrum := range [][]float64{nil, {5}} {
		s := Calculate(spectrum, 1)
		if s.BinCount != len(spectrum) {
			t.Errorf("BinCount = %d, want %d", s.BinCount, len(spectrum))
		}
		if !math.IsInf(s.Peak_dB, -1) {
			t.Errorf("Peak_dB = %v, want -Inf", s.Peak_dB)
		}
		if s.Centroid != 0 || s.Energy != 0 || s.PeakHarmonic != 0 {
			t.Errorf("unexpected non-zero stats: %+v", s)
		}
	}
}

func TestCalculateDCOnly(t *testing.T) {
	s := Calculate([]float64{5, 0, 0}, 10)
	if s.Peak != 0 || s.Energy != 0 {
		t.Errorf("Peak=%v Energy=%v, want 0", s.Peak, s.Energy)
	}
	if s.Centroid != 0 || s.Spread != 0 || s.Rolloff != 0 || s.Bandwidth != 0 || s.Flatness != 0 {
		t.Errorf("descriptors of DC-only spectrum should be 0: %+v", s)
	}
}

func TestCalculateSingleHarmonic(t *testing.T) {
	s := Calculate([]float64{0.3, 0, 2, 0, 0}, 10)

	if s.PeakHarmonic != 2 {
		t.Errorf("PeakHarmonic = %d, want 2", s.PeakHarmonic)
	}
	if !almostEqual(s.Peak_dB, 20*math.Log10(2), tolerance) {
		t.Errorf("Peak_dB = %v", s.Peak_dB)
	}
	if !almostEqual(s.Energy, 4, tolerance) {
		t.Errorf("Energy = %v, want 4", s.Energy)
	}
	if !almostEqual(s.Centroid, 20, tolerance) {
		t.Errorf("Centroid = %v, want 20", s.Centroid)
	}
	if !almostEqual(s.Spread, 0, tolerance) {
		t.Errorf("Spread = %v, want 0", s.Spread)
	}
	if !almostEqual(s.Rolloff, 20, tolerance) {
		t.Errorf("Rolloff = %v, want 20", s.Rolloff)
	}
	if s.Flatness != 0 {
		t.Errorf("Flatness = %v, want 0", s.Flatness)
	}
	if !almostEqual(s.Bandwidth, 10*(2-math.Sqrt2), 1e-9) {
		t.Errorf("Bandwidth = %v, want %v", s.Bandwidth, 10*(2-math.Sqrt2))
	}
}

func TestCalculateFlatSpectrum(t *testing.T) {
	s := Calculate([]float64{0, 1, 1, 1, 1}, 1)

	if !almostEqual(s.Flatness, 1, tolerance) {
		t.Errorf("Flatness = %v, want 1", s.Flatness)
	}
	if !almostEqual(s.Centroid, 2.5, tolerance) {
		t.Errorf("Centroid = %v, want 2.5", s.Centroid)
	}
	if !almostEqual(s.Spread, math.Sqrt(1.25), tolerance) {
		t.Errorf("Spread = %v, want %v", s.Spread, math.Sqrt(1.25))
	}
	if !almostEqual(s.Rolloff, 4, tolerance) {
		t.Errorf("Rolloff = %v, want 4", s.Rolloff)
	}
	if !almostEqual(s.Bandwidth, 3, tolerance) {
		t.Errorf("Bandwidth = %v, want 3", s.Bandwidth)
	}
}

func TestCentroidAndSpreadSymmetric(t *testing.T) {
	spectrum := []float64{0, 1, 0, 1}
	if c := Centroid(spectrum, 2); !almostEqual(c, 4, tolerance) {
		t.Errorf("Centroid = %v, want 4", c)
	}
	s := Calculate(spectrum, 2)
	if !almostEqual(s.Spread, 2, tolerance) {
		t.Errorf("Spread = %v, want 2", s.Spread)
	}
}

func TestRolloffFractions(t *testing.T) {
	spectrum := []float64{0, 3, 4}
	tests := []struct {
		fraction float64
		want     float64
	}{
		{0.3, 50},
		{0.5, 100},
		{1, 100},
	}
	for _, tt := range tests {
		if got := Rolloff(spectrum, 50, tt.fraction); !almostEqual(got, tt.want, tolerance) {
			t.Errorf("Rolloff(%v) = %v, want %v", tt.fraction, got, tt.want)
		}
	}
	if got := Rolloff(nil, 50, 0.85); got != 0 {
		t.Errorf("Rolloff(nil) = %v, want 0", got)
	}
}

func TestFlatnessZeroBin(t *testing.T) {
	if f := Flatness([]float64{1, 1, 0, 1}); f != 0 {
		t.Errorf("Flatness = %v, want 0", f)
	}
	if f := Flatness(nil); f != 0 {
		t.Errorf("Flatness(nil) = %v, want 0", f)
	}
}

func TestBandwidthSilent(t *testing.T) {
	if bw := Bandwidth([]float64{1, 0, 0}, 1); bw != 0 {
		t.Errorf("Bandwidth = %v, want 0", bw)
	}
}

func TestIndividualFunctionsMatchCalculate(t *testing.T) {
	spectrum := []float64{0.1, 1, 0, 1.0 / 3, 0, 1.0 / 5, 0, 1.0 / 7}
	s := Calculate(spectrum, 3)

	if got := Centroid(spectrum, 3); !almostEqual(got, s.Centroid, tolerance) {
		t.Errorf("Centroid = %v, Calculate gave %v", got, s.Centroid)
	}
	if got := Rolloff(spectrum, 3, RolloffFraction); !almostEqual(got, s.Rolloff, tolerance) {
		t.Errorf("Rolloff = %v, Calculate gave %v", got, s.Rolloff)
	}
	if got := Bandwidth(spectrum, 3); !almostEqual(got, s.Bandwidth, tolerance) {
		t.Errorf("Bandwidth = %v, Calculate gave %v", got, s.Bandwidth)
	}
	if s.PeakHarmonic != 1 {
		t.Errorf("PeakHarmonic = %d, want 1", s.PeakHarmonic)
	}
}

func TestString(t *testing.T) {
	got := Calculate([]float64{0, 0, 2}, 10).String()
	if !strings.HasPrefix(got, "peak=H2 centroid=20.000 Hz") {
		t.Errorf("String() = %q", got)
	}
}
