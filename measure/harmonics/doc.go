// Package harmonics measures the harmonic content of one sampled period.
//
// The input must hold exactly one period of the signal at a power-of-two
// length, so FFT bin k is the k-th harmonic and no window is needed. Use
// signal.Generator.OnePeriod with DefaultSize to build such a series.
//
// Levels are peak amplitudes in the units of the input. THD is the
// root-sum-square of harmonics 2..N relative to the fundamental.
package harmonics
