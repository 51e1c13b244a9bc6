package render

import (
	"io"
	"strings"

	"github.com/cwbudde/algo-wavegen/dsp/core"
)

const (
	// DefaultCols is the plot width, one column per plot sample.
	DefaultCols = core.PlotSamples
	// DefaultRows is the plot height.
	DefaultRows = core.PlotRows
)

const (
	Blank  byte = ' '
	Marker byte = '*'
	Axis   byte = '-'
)

// Canvas is a rows×cols character grid stored row-major in one buffer.
type Canvas struct {
	rows, cols int
	cells      []byte
	axisRow    int
}

func newCanvas(rows, cols int) *Canvas {
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = Blank
	}
	return &Canvas{rows: rows, cols: cols, cells: cells}
}

// Rows returns the canvas height.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the canvas width.
func (c *Canvas) Cols() int { return c.cols }

// AxisRow returns the row the zero axis was drawn on.
func (c *Canvas) AxisRow() int { return c.axisRow }

// At returns the character at (row, col).
func (c *Canvas) At(row, col int) byte {
	return c.cells[row*c.cols+col]
}

func (c *Canvas) set(row, col int, b byte) {
	c.cells[row*c.cols+col] = b
}

// Line returns row r as a string of exactly Cols characters.
func (c *Canvas) Line(r int) string {
	return string(c.cells[r*c.cols : (r+1)*c.cols])
}

// Lines returns all rows, top row first.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for r := range out {
		out[r] = c.Line(r)
	}
	return out
}

// String joins the rows with newlines, each row terminated by '\n'.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for r := 0; r < c.rows; r++ {
		b.Write(c.cells[r*c.cols : (r+1)*c.cols])
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the canvas one row per line.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}
