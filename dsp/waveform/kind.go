package waveform

import (
	"fmt"
	"strings"
)

// Kind selects one of the base waveform shapes.
type Kind int

const (
	// KindSine is A·sin(2πft + φ).
	KindSine Kind = iota + 1
	// KindSquare alternates between +A and -A according to the duty cycle.
	KindSquare
	// KindTriangle ramps -A → +A → -A over one period.
	KindTriangle
	// KindSawtooth ramps -A → +A over one period, then jumps back.
	KindSawtooth
)

// Kinds lists the base waveforms in menu order.
var Kinds = []Kind{KindSine, KindSquare, KindTriangle, KindSawtooth}

func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	case KindSawtooth:
		return "sawtooth"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a known waveform.
func (k Kind) Valid() bool {
	return k >= KindSine && k <= KindSawtooth
}

// ParseKind resolves a waveform name (case-insensitive) or its menu number.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == k.String() || s == fmt.Sprint(int(k)) {
			return k, nil
		}
	}
	switch s {
	case "sin":
		return KindSine, nil
	case "sq", "rect":
		return KindSquare, nil
	case "tri":
		return KindTriangle, nil
	case "saw":
		return KindSawtooth, nil
	}
	return 0, fmt.Errorf("waveform: unknown kind %q", s)
}
