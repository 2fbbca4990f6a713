// Package signal provides a fixed-length sample container with statistics,
// arithmetic, deterministic test-signal generation, and file I/O.
//
// A [Signal] owns its samples; processors operate on the mutable view
// returned by [Signal.Samples]. Text files hold whitespace-separated
// numeric values, WAV files are read and written via youpy/go-wav.
package signal
