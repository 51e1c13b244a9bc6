package modulation

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
)

// Modulator produces a modulated signal from a base waveform.
type Modulator interface {
	Name() string
	// Sample evaluates the modulated signal at t seconds.
	Sample(base waveform.Waveform, t float32) float32
	// Period is the carrier period used to lay out one rendering window.
	Period() float32
	// PlotAmplitude is the reference amplitude for plotting.
	PlotAmplitude() float32
}

// Normalized returns base(t)/A, or 0 when the base amplitude is exactly 0.
func Normalized(base waveform.Waveform, t float32) float32 {
	amp := base.BaseAmplitude()
	if amp == 0 {
		return 0
	}
	return base.Sample(t) / amp
}

func carrierPeriod(freq float32) float32 {
	if freq > 0 {
		return 1 / freq
	}
	return 1
}

// AM is amplitude modulation: y = Ac·(1 + m·x)·sin(2πfc·t).
type AM struct {
	CarrierAmplitude float32
	CarrierFrequency float32
	Index            float32
}

// DefaultAM returns Ac=1, fc=1 Hz, m=0.5.
func DefaultAM() AM {
	return AM{CarrierAmplitude: 1, CarrierFrequency: 1, Index: 0.5}
}

func (m AM) Name() string { return "AM" }

// Envelope returns 1 + m·x(t).
func (m AM) Envelope(base waveform.Waveform, t float32) float32 {
	return 1 + m.Index*Normalized(base, t)
}

func (m AM) Sample(base waveform.Waveform, t float32) float32 {
	carrier := core.Sin32(2 * core.Pi * m.CarrierFrequency * t)
	return m.CarrierAmplitude * m.Envelope(base, t) * carrier
}

func (m AM) Period() float32 { return carrierPeriod(m.CarrierFrequency) }

// PlotAmplitude is the worst-case envelope peak Ac·(1 + |m|).
func (m AM) PlotAmplitude() float32 {
	idx := m.Index
	if idx < 0 {
		idx = -idx
	}
	return m.CarrierAmplitude * (1 + idx)
}

// FM is phase-offset frequency modulation: y = Ac·sin(2πfc·t + β·x).
type FM struct {
	CarrierAmplitude float32
	CarrierFrequency float32
	// Index is β in radians.
	Index float32
}

// DefaultFM returns Ac=1, fc=1 Hz, β=1 rad.
func DefaultFM() FM {
	return FM{CarrierAmplitude: 1, CarrierFrequency: 1, Index: 1}
}

func (m FM) Name() string { return "FM" }

// InstantaneousPhase returns 2πfc·t + β·x(t).
func (m FM) InstantaneousPhase(base waveform.Waveform, t float32) float32 {
	return 2*core.Pi*m.CarrierFrequency*t + m.Index*Normalized(base, t)
}

func (m FM) Sample(base waveform.Waveform, t float32) float32 {
	return m.CarrierAmplitude * core.Sin32(m.InstantaneousPhase(base, t))
}

func (m FM) Period() float32        { return carrierPeriod(m.CarrierFrequency) }
func (m FM) PlotAmplitude() float32 { return m.CarrierAmplitude }

// PWM compares the normalised base signal against a rising ramp carrier
// spanning -1..+1 once per carrier period.
type PWM struct {
	CarrierFrequency float32
	OutputAmplitude  float32
}

// DefaultPWM returns fpwm=50 Hz, Ac=1.
func DefaultPWM() PWM {
	return PWM{CarrierFrequency: 50, OutputAmplitude: 1}
}

func (m PWM) Name() string { return "PWM" }

// Carrier returns the comparator reference at t, in [-1, 1).
func (m PWM) Carrier(t float32) float32 {
	period := m.Period()
	frac := core.Fmod32(t, period) / period
	return -1 + 2*frac
}

// Sample returns +Ac when x(t) exceeds the carrier and -Ac otherwise.
func (m PWM) Sample(base waveform.Waveform, t float32) float32 {
	if Normalized(base, t) > m.Carrier(t) {
		return m.OutputAmplitude
	}
	return -m.OutputAmplitude
}

func (m PWM) Period() float32        { return carrierPeriod(m.CarrierFrequency) }
func (m PWM) PlotAmplitude() float32 { return m.OutputAmplitude }

// Mode identifies a modulation scheme.
type Mode int

const (
	ModeAM Mode = iota + 1
	ModeFM
	ModePWM
)

func (m Mode) String() string {
	switch m {
	case ModeAM:
		return "am"
	case ModeFM:
		return "fm"
	case ModePWM:
		return "pwm"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves "am", "fm", "pwm" (case-insensitive) or the menu numbers 1-3.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am", "1":
		return ModeAM, nil
	case "fm", "2":
		return ModeFM, nil
	case "pwm", "3":
		return ModePWM, nil
	default:
		return 0, fmt.Errorf("modulation: unknown mode %q", s)
	}
}
