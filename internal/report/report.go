// Package report prints the table, plot and optional analysis blocks for a
// waveform or a modulated waveform.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/modulation"
	"github.com/cwbudde/algo-wavegen/dsp/signal"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/measure/harmonics"
	"github.com/cwbudde/algo-wavegen/render"
	frequencystats "github.com/cwbudde/algo-wavegen/stats/frequency"
	timestats "github.com/cwbudde/algo-wavegen/stats/time"
)

// Options selects the optional analysis blocks.
type Options struct {
	Rows int
	// Stats prints a time-domain summary under the table.
	Stats bool
	// Harmonics > 0 prints that many harmonic levels after the plot.
	Harmonics int
}

// Describe returns the parameter line printed above a waveform table.
func Describe(w waveform.Waveform) string {
	switch p := w.(type) {
	case waveform.SineParams:
		return fmt.Sprintf("Frequency = %.6f Hz, Amplitude = %.6f, Phase = %.6f rad", p.Frequency, p.Amplitude, p.Phase)
	case waveform.SquareParams:
		return fmt.Sprintf("Frequency = %.6f Hz, Amplitude = %.6f, Duty = %.6f", p.Frequency, p.Amplitude, p.DutyCycle)
	case waveform.TriangleParams:
		return fmt.Sprintf("Frequency = %.6f Hz, Amplitude = %.6f", p.Frequency, p.Amplitude)
	case waveform.SawtoothParams:
		return fmt.Sprintf("Frequency = %.6f Hz, Jump Amp = %.6f, Slope = %.6f", p.Frequency, p.JumpAmplitude, p.Slope)
	default:
		return fmt.Sprintf("Frequency = %.6f Hz, Amplitude = %.6f", w.BaseFrequency(), w.BaseAmplitude())
	}
}

// Title returns "Sine Wave" style names.
func Title(k waveform.Kind) string {
	name := k.String()
	return strings.ToUpper(name[:1]) + name[1:] + " Wave"
}

// Waveform prints the table and plot of w. It returns an error wrapping
// signal.ErrNonPositiveFrequency without printing anything when the
// frequency is not positive.
func Waveform(out io.Writer, g *signal.Generator, w waveform.Waveform, opts Options) error {
	table, err := g.Table(w)
	if err != nil {
		return err
	}
	plot, err := g.Plot(w)
	if err != nil {
		return err
	}

	title := Title(w.Kind())
	if _, err := fmt.Fprintf(out, "\n%s\n%s\n\n",
		render.Banner(fmt.Sprintf("%s Table (One Period, %d Samples)", title, len(table))), Describe(w)); err != nil {
		return err
	}
	if err := writeTable(out, table, opts); err != nil {
		return err
	}
	if _, err := render.WritePlot(out, title+" ASCII Plot", plot, rows(g, opts), w.BaseAmplitude()); err != nil {
		return err
	}
	if opts.Harmonics > 0 {
		series, err := g.OnePeriod(w, harmonics.DefaultSize)
		if err != nil {
			return err
		}
		return writeHarmonics(out, series, opts.Harmonics, float64(w.BaseFrequency()))
	}
	return nil
}

// Modulated prints the table and plot of m applied to base.
func Modulated(out io.Writer, g *signal.Generator, m modulation.Modulator, base waveform.Waveform, opts Options) error {
	table, err := g.ModulatedTable(m, base)
	if err != nil {
		return err
	}
	plot, err := g.ModulatedPlot(m, base)
	if err != nil {
		return err
	}

	name := m.Name()
	if _, err := fmt.Fprintf(out, "\n%s\n",
		render.Banner(fmt.Sprintf("%s Sample Table (One Period, %d Samples)", name, len(table)))); err != nil {
		return err
	}
	if err := writeTable(out, table, opts); err != nil {
		return err
	}
	if _, err := render.WritePlot(out, name+" ASCII Plot", plot, rows(g, opts), m.PlotAmplitude()); err != nil {
		return err
	}
	if opts.Harmonics > 0 {
		series, err := g.Modulated(m, base, harmonics.DefaultSize)
		if err != nil {
			return err
		}
		return writeHarmonics(out, series, opts.Harmonics, 1/float64(m.Period()))
	}
	return nil
}

func rows(g *signal.Generator, opts Options) int {
	if opts.Rows > 0 {
		return opts.Rows
	}
	return g.Config().PlotRows
}

func writeTable(out io.Writer, table signal.Series, opts Options) error {
	if err := render.WriteTable(out, table); err != nil {
		return err
	}
	if !opts.Stats {
		return nil
	}
	_, err := fmt.Fprintf(out, "stats: %s\n", timestats.Calculate(table.Values()))
	return err
}

// writeHarmonics analyzes one period of series whose fundamental is f0 Hz.
func writeHarmonics(out io.Writer, series signal.Series, count int, f0 float64) error {
	res, err := harmonics.Analyze(series.Float64(), count)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "\n%s\nk\tlevel\n", render.Banner("Harmonics")); err != nil {
		return err
	}
	for k, level := range res.Levels {
		if _, err := fmt.Fprintf(out, "%d\t%.6f\n", k+1, level); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "DC = %.6f, THD = %.6f (%.2f dB)\n", res.DC, res.THD, res.THD_dB); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "spectrum: %s\n", frequencystats.Calculate(res.Spectrum, f0))
	return err
}
