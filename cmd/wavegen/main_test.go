package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavegen/dsp/modulation"
)

func runArgs(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSineWithPhaseExpression(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "sine", "-freq", "2", "-phase", "90deg")
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Sine Wave Table (One Period, 8 Samples)")
	assert.Contains(t, out, "Frequency = 2.000000 Hz, Amplitude = 1.000000, Phase = 1.570796 rad")
	assert.Contains(t, out, "Sine Wave ASCII Plot")
}

func TestRunBadPhaseWarnsAndUsesZero(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "sine", "-phase", "abc")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, out, "Phase = 0.000000 rad")
}

func TestRunUnknownWave(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "noise")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `error: waveform: unknown kind "noise"`)
}

func TestRunZeroFrequency(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "triangle", "-freq", "0")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "frequency must be positive")
}

func TestRunSquareDutyIsClamped(t *testing.T) {
	code, out, _ := runArgs(t, "", "-wave", "square", "-duty", "1.5")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Duty = 1.000000")
}

func TestRunModulated(t *testing.T) {
	tests := []struct {
		mode  string
		title string
	}{
		{"am", "AM Sample Table (One Period, 8 Samples)"},
		{"fm", "FM ASCII Plot"},
		{"pwm", "PWM Sample Table (One Period, 8 Samples)"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			code, out, errOut := runArgs(t, "", "-wave", "sine", "-mod", tt.mode)
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "Sine Wave ASCII Plot")
			assert.Contains(t, out, tt.title)
		})
	}
}

func TestRunUnknownModulation(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "sine", "-mod", "qam")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `error: modulation: unknown mode "qam"`)
}

func TestRunStatsAndHarmonics(t *testing.T) {
	code, out, errOut := runArgs(t, "", "-wave", "square", "-stats", "-harmonics", "5")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "stats: n=8")
	assert.Contains(t, out, "Harmonics")
	assert.Contains(t, out, "THD = ")
}

func TestRunNegativeHarmonics(t *testing.T) {
	code, _, errOut := runArgs(t, "", "-wave", "sine", "-harmonics", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "harmonics must be >= 0: -1")
}

func TestRunFlagErrors(t *testing.T) {
	code, _, errOut := runArgs(t, "", "-bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage: wavegen")

	code, _, errOut = runArgs(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Examples:")
}

func TestRunInteractiveEndsOnEOF(t *testing.T) {
	code, out, errOut := runArgs(t, "")
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.NotEmpty(t, out)
}

func TestBuildModulatorDefaults(t *testing.T) {
	m, err := buildModulator(config{mod: "am", ac: 2}, map[string]bool{})
	require.NoError(t, err)
	am, ok := m.(modulation.AM)
	require.True(t, ok)
	assert.Equal(t, float32(2), am.CarrierAmplitude)
	assert.Equal(t, modulation.DefaultAM().CarrierFrequency, am.CarrierFrequency)
	assert.Equal(t, modulation.DefaultAM().Index, am.Index)

	m, err = buildModulator(config{mod: "fm", ac: 1, fc: 3, index: 2}, map[string]bool{"fc": true, "index": true})
	require.NoError(t, err)
	fm, ok := m.(modulation.FM)
	require.True(t, ok)
	assert.Equal(t, float32(3), fm.CarrierFrequency)
	assert.Equal(t, float32(2), fm.Index)

	m, err = buildModulator(config{mod: "pwm", ac: 4}, map[string]bool{})
	require.NoError(t, err)
	pwm, ok := m.(modulation.PWM)
	require.True(t, ok)
	assert.Equal(t, float32(4), pwm.OutputAmplitude)
	assert.Equal(t, modulation.DefaultPWM().CarrierFrequency, pwm.CarrierFrequency)
}
