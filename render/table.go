package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/signal"
)

// TableHeader is the column header printed above sample rows.
const TableHeader = "t(sec)\t\ty"

// WriteTable writes the header followed by one "t\ty" row per sample with six
// decimal places.
func WriteTable(w io.Writer, s signal.Series) error {
	if _, err := fmt.Fprintln(w, TableHeader); err != nil {
		return err
	}
	for _, p := range s {
		if _, err := fmt.Fprintf(w, "%.6f\t%.6f\n", p.T, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// Banner returns "========== title ==========".
func Banner(title string) string {
	return fmt.Sprintf("========== %s ==========", title)
}

// Rule returns a line of n '=' characters.
func Rule(n int) string {
	return strings.Repeat("=", n)
}

// WritePlot renders s at the series length and writes it between a banner
// and a closing rule. It writes nothing and reports false when the series
// cannot be rendered.
func WritePlot(w io.Writer, title string, s signal.Series, rows int, reference float32) (bool, error) {
	c, ok := Render(s.Values(), len(s), rows, reference)
	if !ok {
		return false, nil
	}
	banner := Banner(title)
	if _, err := fmt.Fprintf(w, "\n%s\n", banner); err != nil {
		return true, err
	}
	if _, err := c.WriteTo(w); err != nil {
		return true, err
	}
	_, err := fmt.Fprintln(w, Rule(len(banner)))
	return true, err
}
