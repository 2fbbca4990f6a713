// Package fir provides a direct-form FIR filter runtime with windowed-sinc
// coefficient design.
//
// A [Filter] applies a fixed-length set of coefficients to an input stream
// using a circular-buffer delay line. FIR filters are always stable; the
// output depends only on the current and past Size-1 inputs.
//
// Coefficients are configured either through one of the design routines
// ([Filter.SetupLowPass], [Filter.SetupHighPass], [Filter.SetupBandPass])
// or verbatim via [Filter.SetFactors]. Design cutoffs are normalized
// frequencies, a fraction of the sampling rate in the open interval
// (0, 0.5).
package fir
