// Command wavegen prints sample tables and ASCII plots of sine, square,
// triangle and sawtooth waves, optionally modulated with AM, FM or PWM.
//
// Usage:
//
//	wavegen                      interactive menu on stdin/stdout
//	wavegen -wave NAME [flags]   one-shot report
//
// Examples:
//
//	wavegen -wave sine -freq 2 -phase 90deg
//	wavegen -wave square -duty 0.25 -mod pwm -fc 20
//	wavegen -wave triangle -mod am -index 0.8 -harmonics 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/modulation"
	"github.com/cwbudde/algo-wavegen/dsp/phase"
	"github.com/cwbudde/algo-wavegen/dsp/signal"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/internal/report"
	"github.com/cwbudde/algo-wavegen/internal/shell"
)

type config struct {
	wave      string
	freq      float64
	amp       float64
	phase     string
	duty      float64
	slope     float64
	mod       string
	ac        float64
	fc        float64
	index     float64
	harmonics int
	stats     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config{}
	fs := flag.NewFlagSet("wavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.wave, "wave", "", "waveform: sine, square, triangle, sawtooth (empty starts the interactive menu)")
	fs.Float64Var(&cfg.freq, "freq", 1, "waveform frequency in Hz")
	fs.Float64Var(&cfg.amp, "amp", 1, "waveform amplitude in V (jump amplitude for sawtooth)")
	fs.StringVar(&cfg.phase, "phase", "0", "sine phase: 1.57, 3.14/2, 90deg, 90d, d:90, r:1.57")
	fs.Float64Var(&cfg.duty, "duty", 0.5, "square duty cycle, clamped to [0,1]")
	fs.Float64Var(&cfg.slope, "slope", 1, "sawtooth slope (informational)")
	fs.StringVar(&cfg.mod, "mod", "", "modulation: am, fm, pwm")
	fs.Float64Var(&cfg.ac, "ac", 1, "carrier (AM, FM) or output (PWM) amplitude")
	fs.Float64Var(&cfg.fc, "fc", 0, "carrier frequency in Hz (default 1 for AM/FM, 50 for PWM)")
	fs.Float64Var(&cfg.index, "index", 0, "modulation index m (AM, default 0.5) or beta in rad (FM, default 1)")
	fs.IntVar(&cfg.harmonics, "harmonics", 0, "print the first N harmonic levels")
	fs.BoolVar(&cfg.stats, "stats", false, "print time-domain statistics under each table")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wavegen [flags]\n\n")
		fmt.Fprintf(stderr, "Without -wave, runs the interactive menu.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wavegen -wave sine -freq 2 -phase 90deg\n")
		fmt.Fprintf(stderr, "  wavegen -wave square -duty 0.25 -mod pwm -fc 20\n")
		fmt.Fprintf(stderr, "  wavegen -wave triangle -mod am -index 0.8 -harmonics 7\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if cfg.harmonics < 0 {
		fmt.Fprintf(stderr, "error: harmonics must be >= 0: %d\n", cfg.harmonics)
		return 1
	}
	opts := report.Options{Stats: cfg.stats, Harmonics: cfg.harmonics}

	if cfg.wave == "" {
		if err := shell.New(stdin, stdout, shell.WithReport(opts)).Run(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	setFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if err := runOnce(stdout, stderr, cfg, setFlags, opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runOnce(out, errOut io.Writer, cfg config, setFlags map[string]bool, opts report.Options) error {
	kind, err := waveform.ParseKind(cfg.wave)
	if err != nil {
		return err
	}

	settings := buildSettings(errOut, cfg)
	w, err := settings.Waveform(kind)
	if err != nil {
		return err
	}

	var m modulation.Modulator
	if cfg.mod != "" {
		if m, err = buildModulator(cfg, setFlags); err != nil {
			return err
		}
	}

	g := signal.NewGenerator()
	if err := report.Waveform(out, g, w, opts); err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	return report.Modulated(out, g, m, w, opts)
}

func buildSettings(errOut io.Writer, cfg config) waveform.Settings {
	s := waveform.DefaultSettings()
	f, a := float32(cfg.freq), float32(cfg.amp)

	rad, err := phase.Parse(cfg.phase)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "warning: %v, using 0 rad\n", err)
		rad = 0
	}

	s.Sine = waveform.SineParams{Frequency: f, Amplitude: a, Phase: rad}
	s.Square = waveform.SquareParams{Frequency: f, Amplitude: a, DutyCycle: core.Clamp32(float32(cfg.duty), 0, 1)}
	s.Triangle = waveform.TriangleParams{Frequency: f, Amplitude: a}
	s.Sawtooth = waveform.SawtoothParams{Frequency: f, JumpAmplitude: a, Slope: float32(cfg.slope)}
	return s
}

func buildModulator(cfg config, setFlags map[string]bool) (modulation.Modulator, error) {
	mode, err := modulation.ParseMode(cfg.mod)
	if err != nil {
		return nil, err
	}

	ac := float32(cfg.ac)
	switch mode {
	case modulation.ModeAM:
		m := modulation.DefaultAM()
		m.CarrierAmplitude = ac
		if setFlags["fc"] {
			m.CarrierFrequency = float32(cfg.fc)
		}
		if setFlags["index"] {
			m.Index = float32(cfg.index)
		}
		return m, nil
	case modulation.ModeFM:
		m := modulation.DefaultFM()
		m.CarrierAmplitude = ac
		if setFlags["fc"] {
			m.CarrierFrequency = float32(cfg.fc)
		}
		if setFlags["index"] {
			m.Index = float32(cfg.index)
		}
		return m, nil
	default:
		m := modulation.DefaultPWM()
		m.OutputAmplitude = ac
		if setFlags["fc"] {
			m.CarrierFrequency = float32(cfg.fc)
		}
		return m, nil
	}
}
