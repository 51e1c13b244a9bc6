package shell

import (
	"strconv"

	"github.com/cwbudde/algo-wavegen/dsp/modulation"
	"github.com/cwbudde/algo-wavegen/dsp/waveform"
	"github.com/cwbudde/algo-wavegen/internal/report"
)

func (sh *Shell) modulationPrompt(base waveform.Waveform) error {
	sh.printf("\nDo you want to apply modulation to this waveform? (y/n): ")
	tok, err := sh.in.token()
	if err != nil {
		return err
	}
	if tok[0] != 'y' && tok[0] != 'Y' {
		return nil
	}

	sh.printf("\n----------- modulation menu -----------\n")
	sh.printf("| 1. AM (Amplitude Modulation)        |\n")
	sh.printf("| 2. FM (Frequency Modulation)        |\n")
	sh.printf("| 3. PWM (Pulse Width Modulation)     |\n")
	sh.printf("---------------------------------------\n")
	sh.printf("\nSelect modulation type (1-3): ")

	tok, err = sh.in.token()
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(tok)
	if err != nil {
		sh.printf("Invalid input\n")
		return nil
	}

	var m modulation.Modulator
	switch modulation.Mode(choice) {
	case modulation.ModeAM:
		m, err = sh.readAM()
	case modulation.ModeFM:
		m, err = sh.readFM()
	case modulation.ModePWM:
		m, err = sh.readPWM()
	default:
		sh.printf("Invalid modulation choice\n")
		return nil
	}
	if err != nil {
		return err
	}
	return report.Modulated(sh.out, sh.gen, m, base, sh.report)
}

func (sh *Shell) readAM() (modulation.Modulator, error) {
	sh.printf("\n=== AM Modulation ===\n")
	m := modulation.DefaultAM()
	var err error
	if m.CarrierAmplitude, err = sh.readFloat("Carrier amplitude Ac: ", m.CarrierAmplitude); err != nil {
		return nil, err
	}
	if m.CarrierFrequency, err = sh.readFloat("Carrier frequency fc (Hz): ", m.CarrierFrequency); err != nil {
		return nil, err
	}
	if m.Index, err = sh.readFloat("Modulation index m (0..1 recommended): ", m.Index); err != nil {
		return nil, err
	}
	return m, nil
}

func (sh *Shell) readFM() (modulation.Modulator, error) {
	sh.printf("\n=== FM Modulation ===\n")
	m := modulation.DefaultFM()
	var err error
	if m.CarrierAmplitude, err = sh.readFloat("Carrier amplitude Ac: ", m.CarrierAmplitude); err != nil {
		return nil, err
	}
	if m.CarrierFrequency, err = sh.readFloat("Carrier frequency fc (Hz): ", m.CarrierFrequency); err != nil {
		return nil, err
	}
	if m.Index, err = sh.readFloat("Modulation index beta (radians, controls deviation): ", m.Index); err != nil {
		return nil, err
	}
	return m, nil
}

func (sh *Shell) readPWM() (modulation.Modulator, error) {
	sh.printf("\n=== PWM Modulation ===\n")
	m := modulation.DefaultPWM()
	var err error
	if m.CarrierFrequency, err = sh.readFloat("PWM carrier frequency fpwm (Hz): ", m.CarrierFrequency); err != nil {
		return nil, err
	}
	if m.OutputAmplitude, err = sh.readFloat("Output amplitude Ac (for high level): ", m.OutputAmplitude); err != nil {
		return nil, err
	}
	return m, nil
}
