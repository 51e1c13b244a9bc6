package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/modulation"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
)

// ErrNonPositiveFrequency is returned when a series is requested for a
// waveform whose frequency is <= 0.
var ErrNonPositiveFrequency = errors.New("frequency must be positive")

// Generator samples waveforms over one period at the configured resolutions.
type Generator struct {
	cfg core.RenderConfig
}

// NewGenerator creates a configured series generator.
func NewGenerator(opts ...core.RenderOption) *Generator {
	return &Generator{cfg: core.ApplyRenderOptions(opts...)}
}

// Config returns the generator resolution configuration.
func (g *Generator) Config() core.RenderConfig {
	return g.cfg
}

// Table samples one period of w at table resolution using the phase-inclusive
// formula.
func (g *Generator) Table(w waveform.Waveform) (Series, error) {
	return g.OnePeriod(w, g.cfg.TableSamples)
}

// Plot samples one period of w at plot resolution. Sine waves are sampled
// unshifted starting at their phase time shift.
func (g *Generator) Plot(w waveform.Waveform) (Series, error) {
	if s, ok := w.(waveform.SineParams); ok {
		return g.sinePlot(s)
	}
	return g.OnePeriod(w, g.cfg.PlotSamples)
}

// OnePeriod samples w at n evenly spaced times t = i·T/n, i = 0..n-1.
func (g *Generator) OnePeriod(w waveform.Waveform, n int) (Series, error) {
	period, err := basePeriod(w, n)
	if err != nil {
		return nil, err
	}
	return sample(n, period/float32(n), 0, w.Sample), nil
}

func (g *Generator) sinePlot(s waveform.SineParams) (Series, error) {
	n := g.cfg.PlotSamples
	period, err := basePeriod(s, n)
	if err != nil {
		return nil, err
	}
	return sample(n, period/float32(n), s.PhaseShift(), s.Unshifted().Sample), nil
}

// ModulatedTable samples one carrier period of m applied to base at table
// resolution.
func (g *Generator) ModulatedTable(m modulation.Modulator, base waveform.Waveform) (Series, error) {
	return g.Modulated(m, base, g.cfg.TableSamples)
}

// ModulatedPlot samples one carrier period of m applied to base at plot
// resolution.
func (g *Generator) ModulatedPlot(m modulation.Modulator, base waveform.Waveform) (Series, error) {
	return g.Modulated(m, base, g.cfg.PlotSamples)
}

// Modulated samples one carrier period of m applied to base at n points.
// The carrier period falls back to 1 s for a non-positive carrier frequency,
// so only n is validated.
func (g *Generator) Modulated(m modulation.Modulator, base waveform.Waveform, n int) (Series, error) {
	if n <= 0 {
		return nil, fmt.Errorf("modulated samples must be > 0: %d", n)
	}
	if m == nil || base == nil {
		return nil, errors.New("modulator and base waveform must not be nil")
	}
	step := m.Period() / float32(n)
	return sample(n, step, 0, func(t float32) float32 {
		return m.Sample(base, t)
	}), nil
}

func basePeriod(w waveform.Waveform, n int) (float32, error) {
	if n <= 0 {
		return 0, fmt.Errorf("samples must be > 0: %d", n)
	}
	if w == nil {
		return 0, errors.New("waveform must not be nil")
	}
	f := w.BaseFrequency()
	if f <= 0 {
		return 0, fmt.Errorf("%s: %w: %v", w.Kind(), ErrNonPositiveFrequency, f)
	}
	return 1 / f, nil
}

func sample(n int, step, shift float32, fn func(float32) float32) Series {
	out := make(Series, n)
	for i := range out {
		t := float32(i)*step + shift
		out[i] = Point{T: t, Y: fn(t)}
	}
	return out
}
