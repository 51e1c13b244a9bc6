// Package waveform defines the four base waveforms (sine, square, triangle,
// sawtooth) as pure functions of time, and the Settings that hold the
// parameters of each between menu rounds.
package waveform
