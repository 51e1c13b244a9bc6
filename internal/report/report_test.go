package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavegen/dsp/modulation"
	"github.com/cwbudde/algo-wavegen/dsp/signal"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/render"
)

func TestWaveformReport(t *testing.T) {
	var b bytes.Buffer
	g := signal.NewGenerator()
	w := waveform.SquareParams{Frequency: 2, Amplitude: 1.5, DutyCycle: 0.25}

	require.NoError(t, Waveform(&b, g, w, Options{}))
	out := b.String()

	assert.Contains(t, out, "========== Square Wave Table (One Period, 8 Samples) ==========")
	assert.Contains(t, out, "Frequency = 2.000000 Hz, Amplitude = 1.500000, Duty = 0.250000")
	assert.Contains(t, out, "t(sec)\t\ty\n0.000000\t1.500000\n0.062500\t1.500000\n0.125000\t-1.500000\n")
	assert.Contains(t, out, "========== Square Wave ASCII Plot ==========")
	assert.NotContains(t, out, "stats:")
	assert.NotContains(t, out, "Harmonics")

	lines := strings.Split(out, "\n")
	plotRows := 0
	for _, l := range lines {
		if len(l) == render.DefaultCols && strings.Trim(l, " *-") == "" {
			plotRows++
		}
	}
	assert.Equal(t, render.DefaultRows, plotRows)
}

func TestWaveformReportOptionalBlocks(t *testing.T) {
	var b bytes.Buffer
	g := signal.NewGenerator()
	w := waveform.SineParams{Frequency: 1, Amplitude: 1}

	require.NoError(t, Waveform(&b, g, w, Options{Stats: true, Harmonics: 3}))
	out := b.String()
	assert.Contains(t, out, "stats: n=8 ")
	assert.Contains(t, out, "========== Harmonics ==========")
	assert.Contains(t, out, "1\t1.000000\n")
	assert.Contains(t, out, "THD = 0.000000")
	assert.Contains(t, out, "spectrum: peak=H1 ")
}

func TestWaveformReportRefusesNonPositiveFrequency(t *testing.T) {
	var b bytes.Buffer
	err := Waveform(&b, signal.NewGenerator(), waveform.TriangleParams{Frequency: 0, Amplitude: 1}, Options{})
	require.ErrorIs(t, err, signal.ErrNonPositiveFrequency)
	assert.Empty(t, b.String())
}

func TestModulatedReport(t *testing.T) {
	var b bytes.Buffer
	g := signal.NewGenerator()
	base := waveform.SawtoothParams{Frequency: 1, JumpAmplitude: 2, Slope: 1}

	require.NoError(t, Modulated(&b, g, modulation.DefaultAM(), base, Options{Rows: 11}))
	out := b.String()
	assert.Contains(t, out, "========== AM Sample Table (One Period, 8 Samples) ==========")
	assert.Contains(t, out, "========== AM ASCII Plot ==========")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Frequency = 1.000000 Hz, Amplitude = 2.000000, Phase = 0.500000 rad",
		Describe(waveform.SineParams{Frequency: 1, Amplitude: 2, Phase: 0.5}))
	assert.Equal(t, "Frequency = 3.000000 Hz, Amplitude = 1.000000",
		Describe(waveform.TriangleParams{Frequency: 3, Amplitude: 1}))
	assert.Equal(t, "Frequency = 1.000000 Hz, Jump Amp = 1.000000, Slope = 2.000000",
		Describe(waveform.SawtoothParams{Frequency: 1, JumpAmplitude: 1, Slope: 2}))
	assert.Equal(t, "Sine Wave", Title(waveform.KindSine))
}
