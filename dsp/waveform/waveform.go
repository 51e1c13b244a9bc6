package waveform

import (
	"fmt"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// Waveform is an unmodulated periodic signal evaluated at time t in seconds
// since the waveform start.
//
// Sample is pure. Implementations whose period depends on the frequency
// return 0 for every t when the frequency is not positive.
type Waveform interface {
	Kind() Kind
	Sample(t float32) float32
	// BaseAmplitude is the configured amplitude used to normalise samples.
	BaseAmplitude() float32
	BaseFrequency() float32
}

// SineParams configures a sine wave.
type SineParams struct {
	Frequency float32 // Hz
	Amplitude float32 // V
	Phase     float32 // rad
}

// SquareParams configures a square wave.
type SquareParams struct {
	Frequency float32
	Amplitude float32
	// DutyCycle is the high fraction of each period in [0,1].
	DutyCycle float32
}

// TriangleParams configures a triangle wave.
type TriangleParams struct {
	Frequency float32
	Amplitude float32
}

// SawtoothParams configures a sawtooth wave.
type SawtoothParams struct {
	Frequency     float32
	JumpAmplitude float32
	// Slope is informational and does not affect sampling.
	Slope float32
}

func (p SineParams) Kind() Kind             { return KindSine }
func (p SineParams) BaseAmplitude() float32 { return p.Amplitude }
func (p SineParams) BaseFrequency() float32 { return p.Frequency }

// Sample returns A·sin(2πft + φ).
func (p SineParams) Sample(t float32) float32 {
	return p.Amplitude * core.Sin32(2*core.Pi*p.Frequency*t+p.Phase)
}

// PhaseShift is the time offset φ/(2πf) equivalent to the configured phase.
// It is 0 when the frequency is 0.
func (p SineParams) PhaseShift() float32 {
	if p.Frequency == 0 {
		return 0
	}
	return p.Phase / (2 * core.Pi * p.Frequency)
}

// Unshifted returns the same sine with zero phase.
func (p SineParams) Unshifted() SineParams {
	p.Phase = 0
	return p
}

func (p SquareParams) Kind() Kind             { return KindSquare }
func (p SquareParams) BaseAmplitude() float32 { return p.Amplitude }
func (p SquareParams) BaseFrequency() float32 { return p.Frequency }

// Sample returns +A while the position within the period is below the duty
// cycle and -A otherwise.
func (p SquareParams) Sample(t float32) float32 {
	pos, ok := position(t, p.Frequency)
	if !ok {
		return 0
	}
	if pos < p.DutyCycle {
		return p.Amplitude
	}
	return -p.Amplitude
}

func (p TriangleParams) Kind() Kind             { return KindTriangle }
func (p TriangleParams) BaseAmplitude() float32 { return p.Amplitude }
func (p TriangleParams) BaseFrequency() float32 { return p.Frequency }

// Sample rises from -A at the period start to +A at half period and falls
// back to -A.
func (p TriangleParams) Sample(t float32) float32 {
	pos, ok := position(t, p.Frequency)
	if !ok {
		return 0
	}
	a := p.Amplitude
	if pos < 0.5 {
		return -a + 4*a*pos
	}
	return 3*a - 4*a*pos
}

func (p SawtoothParams) Kind() Kind             { return KindSawtooth }
func (p SawtoothParams) BaseAmplitude() float32 { return p.JumpAmplitude }
func (p SawtoothParams) BaseFrequency() float32 { return p.Frequency }

// Sample ramps linearly from -A to +A over one period.
func (p SawtoothParams) Sample(t float32) float32 {
	frac, ok := position(t, p.Frequency)
	if !ok {
		return 0
	}
	a := p.JumpAmplitude
	return -a + 2*a*frac
}

// position returns (t mod T)/T for T = 1/f. ok is false for f <= 0.
func position(t, freq float32) (float32, bool) {
	if freq <= 0 {
		return 0, false
	}
	period := 1 / freq
	return core.Fmod32(t, period) / period, true
}

// Settings is the caller-owned set of current parameters, one record per kind.
type Settings struct {
	Sine     SineParams
	Square   SquareParams
	Triangle TriangleParams
	Sawtooth SawtoothParams
}

// DefaultSettings returns 1 Hz, 1 V waveforms with zero phase, 50% duty cycle
// and unit slope.
func DefaultSettings() Settings {
	return Settings{
		Sine:     SineParams{Frequency: 1, Amplitude: 1, Phase: 0},
		Square:   SquareParams{Frequency: 1, Amplitude: 1, DutyCycle: 0.5},
		Triangle: TriangleParams{Frequency: 1, Amplitude: 1},
		Sawtooth: SawtoothParams{Frequency: 1, JumpAmplitude: 1, Slope: 1},
	}
}

// Waveform returns the record for kind as a Waveform.
func (s Settings) Waveform(kind Kind) (Waveform, error) {
	switch kind {
	case KindSine:
		return s.Sine, nil
	case KindSquare:
		return s.Square, nil
	case KindTriangle:
		return s.Triangle, nil
	case KindSawtooth:
		return s.Sawtooth, nil
	default:
		return nil, fmt.Errorf("waveform: unknown kind %d", int(kind))
	}
}

// Sample evaluates the waveform of the given kind at t. Unknown kinds yield 0.
func (s Settings) Sample(kind Kind, t float32) float32 {
	w, err := s.Waveform(kind)
	if err != nil {
		return 0
	}
	return w.Sample(t)
}

// Amplitude returns the configured amplitude of kind, or 1 for unknown kinds.
func (s Settings) Amplitude(kind Kind) float32 {
	w, err := s.Waveform(kind)
	if err != nil {
		return 1
	}
	return w.BaseAmplitude()
}
