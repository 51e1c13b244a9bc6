package phase

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

// ErrUnparseable is returned when no accepted form yields a number.
var ErrUnparseable = errors.New("phase: unparseable expression")

var errZeroDenominator = errors.New("phase: zero denominator")

var numberPrefix = regexp.MustCompile(`^[+-]?(?:(?i:inf(?:inity)?|nan)` +
	`|0[xX](?:[0-9a-fA-F]+\.?[0-9a-fA-F]*|\.[0-9a-fA-F]+)(?:[pP][+-]?\d+)?` +
	`|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// Parse converts text to a phase in radians.
func Parse(text string) (float32, error) {
	s := strings.TrimSpace(text)

	switch {
	case hasPrefixFold(s, "r:"):
		v, ok := scanFloat(s[2:])
		if !ok {
			return 0, unparseable(text, nil)
		}
		return float32(v), nil

	case hasPrefixFold(s, "d:"):
		v, ok := scanFloat(s[2:])
		if !ok {
			return 0, unparseable(text, nil)
		}
		return DegreesToRadians(v), nil
	}

	if i := strings.Index(s, "deg"); i >= 0 {
		v, ok := scanFloat(s[:i])
		if !ok {
			return 0, unparseable(text, nil)
		}
		return DegreesToRadians(v), nil
	}

	if n := len(s); n > 0 && (s[n-1] == 'd' || s[n-1] == 'D') {
		v, ok := scanFloat(s[:n-1])
		if !ok {
			return 0, unparseable(text, nil)
		}
		return DegreesToRadians(v), nil
	}

	if num, den, found := strings.Cut(s, "/"); found {
		a, okA := scanFloat(num)
		b, okB := scanFloat(den)
		if !okA || !okB {
			return 0, unparseable(text, nil)
		}
		if b == 0 {
			return 0, unparseable(text, errZeroDenominator)
		}
		return float32(a / b), nil
	}

	v, ok := scanFloat(s)
	if !ok {
		return 0, unparseable(text, nil)
	}
	return float32(v), nil
}

// DegreesToRadians converts degrees to single-precision radians.
func DegreesToRadians(deg float64) float32 {
	return float32(deg * float64(core.Pi) / 180)
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and examples.
func MustParse(text string) float32 {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// scanFloat reads the longest numeric prefix of s after leading whitespace.
func scanFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	// Hex mantissas need an explicit binary exponent for ParseFloat.
	if strings.ContainsAny(m, "xX") && !strings.ContainsAny(m, "pP") {
		m += "p0"
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// ParseFloat reports ErrRange for overflow but still returns ±Inf,
		// which matches sscanf.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, !math.IsNaN(v)
		}
		return 0, false
	}
	return v, true
}

func unparseable(text string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w %q: %w", ErrUnparseable, text, cause)
	}
	return fmt.Errorf("%w %q", ErrUnparseable, text)
}
