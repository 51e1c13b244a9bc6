package render

import "github.com/cwbudde/algo-wavegen/dsp/core"

// Render plots one value per column on a rows×cols canvas scaled to
// ±reference and draws the zero axis.
//
// The row of value y is round(frac·(rows-1)) with
// frac = (reference-y)/(2·reference) clamped to [0,1]; a zero reference puts
// every marker on the centre row. The axis row is computed from the
// reference alone.
//
// It reports false without producing a canvas when values is empty, its
// length differs from cols, or either dimension is not positive.
func Render(values []float32, cols, rows int, reference float32) (*Canvas, bool) {
	if len(values) == 0 || cols <= 0 || rows <= 0 || len(values) != cols {
		return nil, false
	}

	c := newCanvas(rows, cols)
	for col, y := range values {
		c.set(RowFor(y, rows, reference), col, Marker)
	}

	c.axisRow = AxisRowFor(rows, reference)
	for col := 0; col < cols; col++ {
		if c.At(c.axisRow, col) == Blank {
			c.set(c.axisRow, col, Axis)
		}
	}
	return c, true
}

// RowFor maps an amplitude to its canvas row.
func RowFor(y float32, rows int, reference float32) int {
	frac := float32(0.5)
	if reference != 0 {
		frac = (reference - y) / (2 * reference)
	}
	frac = core.Clamp32(frac, 0, 1)
	return clampRow(core.RoundHalfUp(frac*float32(rows-1)), rows)
}

// AxisRowFor returns the row of the zero axis for a given reference.
func AxisRowFor(rows int, reference float32) int {
	denom := reference
	if denom == 0 {
		denom = 1
	}
	frac := reference / (2 * denom)
	return clampRow(core.RoundHalfUp(frac*float32(rows-1)), rows)
}

func clampRow(row, rows int) int {
	if row < 0 {
		return 0
	}
	if row >= rows {
		return rows - 1
	}
	return row
}
