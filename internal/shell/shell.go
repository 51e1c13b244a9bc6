// Package shell implements the interactive menu that configures waveforms,
// prints their tables and plots, and optionally applies a modulation.
//
// All parameter state lives in the Shell and persists across menu rounds for
// the lifetime of the process.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-wavegen/dsp/core"
	"github.com/cwbudde/algo-wavegen/dsp/phase"
	"github.com/cwbudde/algo-wavegen/dsp/signal"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/internal/report"
)

const phaseHelp = "input phase (rad). Examples: 1.57    3.14/2    90deg    d:90    r:1.57"

// Shell is one interactive session.
type Shell struct {
	in       *lineReader
	out      io.Writer
	settings waveform.Settings
	gen      *signal.Generator
	report   report.Options
}

// Option configures a Shell.
type Option func(*Shell)

// WithSettings sets the initial waveform parameters.
func WithSettings(s waveform.Settings) Option {
	return func(sh *Shell) {
		sh.settings = s
	}
}

// WithRenderOptions overrides the sampling and plot resolutions.
func WithRenderOptions(opts ...core.RenderOption) Option {
	return func(sh *Shell) {
		sh.gen = signal.NewGenerator(opts...)
	}
}

// WithReport enables the optional analysis blocks.
func WithReport(opts report.Options) Option {
	return func(sh *Shell) {
		sh.report = opts
	}
}

// New creates a session reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		in:       newLineReader(in),
		out:      out,
		settings: waveform.DefaultSettings(),
		gen:      signal.NewGenerator(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(sh)
		}
	}
	return sh
}

// Settings returns a copy of the current parameters.
func (sh *Shell) Settings() waveform.Settings {
	return sh.settings
}

// Run loops over the main menu until input is exhausted. End of input is a
// normal exit and returns nil.
func (sh *Shell) Run() error {
	for {
		err := sh.round()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) round() error {
	sh.printMainMenu()
	kind, err := sh.selectKind()
	if err != nil {
		return err
	}

	sh.printf("\n>> %s\n", kind)
	if err := sh.configure(kind); err != nil {
		return err
	}
	if err := sh.plot(kind); err != nil {
		return err
	}
	return sh.backToMain()
}

func (sh *Shell) selectKind() (waveform.Kind, error) {
	n := len(waveform.Kinds)
	for {
		sh.printf("\nSelect a waveform you'd like to generate (1-%d): ", n)
		tok, err := sh.in.token()
		if err != nil {
			return 0, err
		}
		if !isInteger(tok) {
			sh.printf("Enter an integer!\n")
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 1 || v > n {
			sh.printf("Invalid menu item!\n")
			continue
		}
		return waveform.Kinds[v-1], nil
	}
}

func (sh *Shell) backToMain() error {
	for {
		sh.printf("\nEnter 'b' or 'B' to go back to main menu: ")
		tok, err := sh.in.token()
		if err != nil {
			return err
		}
		if tok[0] == 'b' || tok[0] == 'B' {
			return nil
		}
	}
}

// readFloat prompts for a number and returns def when the input is not one.
func (sh *Shell) readFloat(prompt string, def float32) (float32, error) {
	sh.printf("%s", prompt)
	v, ok, err := sh.in.float()
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (sh *Shell) configure(kind waveform.Kind) error {
	var err error
	s := &sh.settings

	switch kind {
	case waveform.KindSine:
		if s.Sine.Frequency, err = sh.readFloat("\ninput frequency (Hz): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		if s.Sine.Amplitude, err = sh.readFloat("\ninput amplitude (V): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		sh.printf("\n%s\n", phaseHelp)
		text, err := sh.in.line()
		if err != nil {
			return err
		}
		rad, perr := phase.Parse(text)
		if perr != nil {
			sh.printf("Failed to parse phase, set to 0.\n")
			rad = 0
		}
		s.Sine.Phase = rad

	case waveform.KindSquare:
		if s.Square.Frequency, err = sh.readFloat("\ninput frequency (Hz): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		if s.Square.Amplitude, err = sh.readFloat("\ninput amplitude (V): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		duty, err := sh.readFloat("\ninput duty cycle (0..1): ", 0.5)
		if err != nil {
			return err
		}
		s.Square.DutyCycle = core.Clamp32(duty, 0, 1)

	case waveform.KindTriangle:
		if s.Triangle.Frequency, err = sh.readFloat("\ninput frequency (Hz): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		if s.Triangle.Amplitude, err = sh.readFloat("\ninput amplitude (V): ", 1); err != nil {
			return err
		}

	case waveform.KindSawtooth:
		if s.Sawtooth.JumpAmplitude, err = sh.readFloat("\ninput jump amplitude (V): ", 1); err != nil {
			return err
		}
		sh.printSettings(kind)
		if s.Sawtooth.Slope, err = sh.readFloat("\ninput slope: ", 1); err != nil {
			return err
		}

	default:
		return fmt.Errorf("shell: unknown waveform %v", kind)
	}

	sh.printSettings(kind)
	return nil
}

func (sh *Shell) plot(kind waveform.Kind) error {
	w, err := sh.settings.Waveform(kind)
	if err != nil {
		return err
	}

	err = report.Waveform(sh.out, sh.gen, w, sh.report)
	if errors.Is(err, signal.ErrNonPositiveFrequency) {
		sh.printf("\nFrequency must be > 0!\n")
		return nil
	}
	if err != nil {
		return err
	}
	return sh.modulationPrompt(w)
}

func (sh *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) printMainMenu() {
	sh.printf("\n----------- waveform generator -----------\n")
	sh.printf("|                                       |\n")
	for i, k := range waveform.Kinds {
		sh.printf("|   %d. %-34s|\n", i+1, k)
	}
	sh.printf("-----------------------------------------\n")
}

func (sh *Shell) printSettings(kind waveform.Kind) {
	s := sh.settings
	switch kind {
	case waveform.KindSine:
		sh.printf("\n----------- sine settings -----------\n")
		sh.printf("| 1. frequency: %.6f Hz\n", s.Sine.Frequency)
		sh.printf("| 2. amplitude: %.6f V\n", s.Sine.Amplitude)
		sh.printf("| 3. phase:     %.6f rad\n", s.Sine.Phase)
	case waveform.KindSquare:
		sh.printf("\n----------- square settings ---------\n")
		sh.printf("| 1. frequency: %.6f Hz\n", s.Square.Frequency)
		sh.printf("| 2. amplitude: %.6f V\n", s.Square.Amplitude)
		sh.printf("| 3. duty cycle: %.6f\n", s.Square.DutyCycle)
	case waveform.KindTriangle:
		sh.printf("\n---------- triangle settings ---------\n")
		sh.printf("| 1. frequency: %.6f Hz\n", s.Triangle.Frequency)
		sh.printf("| 2. amplitude: %.6f V\n", s.Triangle.Amplitude)
	case waveform.KindSawtooth:
		sh.printf("\n---------- sawtooth settings ---------\n")
		sh.printf("| 1. jump amplitude: %.6f V\n", s.Sawtooth.JumpAmplitude)
		sh.printf("| 2. slope:          %.6f\n", s.Sawtooth.Slope)
	}
	sh.printf("-------------------------------------\n")
}
