package shell

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// errQuit ends the session when input is exhausted.
var errQuit = errors.New("shell: input closed")

// lineReader splits input into whitespace-separated tokens that may span
// lines, and also hands out whole lines for free-form answers.
type lineReader struct {
	sc      *bufio.Scanner
	pending []string
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (r *lineReader) scan() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return r.sc.Text(), nil
}

// line discards the unread tokens of the current line and returns the next
// input line with surrounding whitespace removed.
func (r *lineReader) line() (string, error) {
	r.pending = nil
	l, err := r.scan()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(l), nil
}

// token returns the next whitespace-separated field, reading further lines
// as needed.
func (r *lineReader) token() (string, error) {
	for len(r.pending) == 0 {
		l, err := r.scan()
		if err != nil {
			return "", err
		}
		r.pending = strings.Fields(l)
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]
	return tok, nil
}

// float reads a number, reporting ok=false when the token is not numeric.
func (r *lineReader) float() (float32, bool, error) {
	tok, err := r.token()
	if err != nil {
		return 0, false, err
	}
	v, perr := strconv.ParseFloat(tok, 32)
	if perr != nil {
		return 0, false, nil
	}
	return float32(v), true, nil
}

// isInteger reports whether s is an optionally signed run of digits.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '+' || s[0] == '-' {
		start = 1
		if len(s) == 1 {
			return false
		}
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
