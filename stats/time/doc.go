// Package time computes time-domain statistics (DC, RMS, peak, crest factor,
// zero crossings) of sampled waveform series.
package time
