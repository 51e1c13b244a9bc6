package harmonics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavegen/dsp/signal"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
)

func onePeriod(t *testing.T, w waveform.Waveform) []float64 {
	t.Helper()
	s, err := signal.NewGenerator().OnePeriod(w, DefaultSize)
	require.NoError(t, err)
	return s.Float64()
}

func TestSineHasNoHarmonics(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.SineParams{Frequency: 3, Amplitude: 2, Phase: 0.7}), 0)
	require.NoError(t, err)

	require.Len(t, res.Levels, DefaultMaxHarmonics)
	assert.InDelta(t, 2, res.Fundamental(), 1e-4)
	assert.InDelta(t, 0, res.DC, 1e-5)
	assert.Less(t, res.THD, 1e-4)
	assert.Less(t, res.THD_dB, -80.0)
}

func TestSquareOddHarmonics(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.SquareParams{Frequency: 1, Amplitude: 1, DutyCycle: 0.5}), 7)
	require.NoError(t, err)

	assert.InDelta(t, 4/math.Pi, res.Level(1), 1e-3)
	assert.InDelta(t, 0, res.Level(2), 1e-6)
	assert.InDelta(t, 4/(3*math.Pi), res.Level(3), 1e-3)
	assert.InDelta(t, 4/(5*math.Pi), res.Level(5), 1e-3)
	assert.InDelta(t, 0, res.EvenHD, 1e-6)
	assert.Greater(t, res.OddHD, 0.4)
	assert.Zero(t, res.Level(8))
	assert.Zero(t, res.Level(0))
}

func TestTriangleLevels(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.TriangleParams{Frequency: 1, Amplitude: 1}), 31)
	require.NoError(t, err)

	assert.InDelta(t, 8/(math.Pi*math.Pi), res.Fundamental(), 1e-3)
	assert.InDelta(t, 8/(9*math.Pi*math.Pi), res.Level(3), 1e-3)
	assert.InDelta(t, 0.121, res.THD, 2e-3)
}

func TestSawtoothLevels(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.SawtoothParams{Frequency: 1, JumpAmplitude: 1}), 4)
	require.NoError(t, err)

	assert.InDelta(t, 2/math.Pi, res.Level(1), 1e-2)
	assert.InDelta(t, 1/math.Pi, res.Level(2), 1e-2)
	assert.InDelta(t, 2/(3*math.Pi), res.Level(3), 1e-2)
}

func TestAnalyzeRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 2, 100, 255} {
		_, err := Analyze(make([]float64, n), 4)
		require.ErrorIs(t, err, errNotPowerOfTwo, "n=%d", n)
	}
}

func TestSilentInput(t *testing.T) {
	res, err := Analyze(make([]float64, 16), 100)
	require.NoError(t, err)
	assert.Len(t, res.Levels, 7)
	assert.Zero(t, res.Fundamental())
	assert.True(t, math.IsInf(res.THD_dB, -1))
}

func TestSpectrumCoversAllBins(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.SquareParams{Frequency: 1, Amplitude: 1, DutyCycle: 0.5}), 5)
	require.NoError(t, err)

	require.Len(t, res.Spectrum, DefaultSize/2+1)
	assert.InDelta(t, res.DC, res.Spectrum[0], 1e-12)
	for k := 1; k <= 5; k++ {
		assert.InDelta(t, res.Level(k), res.Spectrum[k], 1e-12)
	}
}

func TestLevelsAndSpectrumAreIndependent(t *testing.T) {
	res, err := Analyze(onePeriod(t, waveform.TriangleParams{Frequency: 1, Amplitude: 1}), 3)
	require.NoError(t, err)

	fundamental := res.Spectrum[1]
	res.Levels[0] = -1
	assert.InDelta(t, fundamental, res.Spectrum[1], 0)

	res.Spectrum[2] = 42
	assert.NotEqual(t, 42.0, res.Level(2))
}
