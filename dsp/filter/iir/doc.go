// Package iir provides a general-order direct-form IIR filter runtime.
//
// A [Filter] evaluates the recursive difference equation
//
//	y[n] = sum_{i=0}^{NumB-1} b[i]*x[n-i] - sum_{i=0}^{NumA-1} a[i+1]*y[n-1-i]
//
// with a0 normalized to 1 and not stored. Feedforward (b) and feedback (a)
// coefficients are always supplied together via [Filter.SetCoefficients];
// [Filter.Reset] clears the histories and the coefficients, so a reset
// filter must be reconfigured before further use.
//
// The filter performs no stability analysis. Supplying a coefficient set
// with poles outside the unit circle makes the output grow without bound;
// that is a caller obligation, not a detected error.
package iir
