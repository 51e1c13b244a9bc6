// Package modulation applies amplitude, frequency and pulse-width modulation
// to a carrier, using any base waveform as the modulating signal.
//
// Every modulator first normalises the base signal by its configured
// amplitude, x(t)/A. A zero base amplitude yields a normalised signal of 0
// rather than an error.
//
// The FM model adds β·x(t)/A directly to the carrier phase. It does not
// integrate a frequency deviation over time.
package modulation
