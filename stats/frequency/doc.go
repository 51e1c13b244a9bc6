// Package frequency computes spectral shape descriptors (centroid, spread,
// flatness, rolloff, bandwidth) of a harmonic spectrum, where bin k holds the
// level of harmonic k.
package frequency
