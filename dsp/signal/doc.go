// Package signal samples base and modulated waveforms over one period.
//
// A Generator produces two fixed resolutions: a coarse table (8 points) for
// numeric display and a finer plot series (100 points) for ASCII rendering.
//
// Error policy: waveform.Waveform.Sample silently returns 0 for a
// non-positive frequency, but series generation refuses with
// ErrNonPositiveFrequency because the period 1/f is undefined.
//
// Sine plots bake the phase into a time shift φ/(2πf) and sample an
// unshifted sine, so the axis crossing stays visually stable while the table
// samples the phase-inclusive formula directly. Both agree wherever their
// sample times coincide modulo the period.
package signal
