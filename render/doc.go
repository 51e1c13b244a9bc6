// Package render rasterises amplitude sequences into fixed-size character
// grids and formats sample tables for terminal output.
//
// Each column of a Canvas holds exactly one '*' marker. Row 0 is the top of
// the plot and corresponds to +reference; the last row corresponds to
// -reference. The zero axis row is drawn with '-' wherever no marker sits.
package render
