package window

import (
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/processor"
	"github.com/cwbudde/algo-vecmath"
)

// Window is a stateless sample processor that scales each sample by a
// position-dependent weight. A fresh Window is rectangular (all ones).
type Window struct {
	name   string
	coeffs []float64
}

var _ processor.Processor = (*Window)(nil)

// New creates a named window of the given size, initialized rectangular.
func New(name string, size int) (*Window, error) {
	if err := processor.ValidateName(name); err != nil {
		return nil, err
	}
	if err := processor.ValidateSize(size); err != nil {
		return nil, err
	}

	w := &Window{
		name:   name,
		coeffs: make([]float64, size),
	}
	w.SetupRectangular()

	return w, nil
}

// Name returns the window's label.
func (w *Window) Name() string { return w.name }

// Len returns the fixed window size.
func (w *Window) Len() int { return len(w.coeffs) }

// SetupRectangular sets all coefficients to one.
func (w *Window) SetupRectangular() {
	for i := range w.coeffs {
		w.coeffs[i] = 1
	}
}

// SetupHamming sets Hamming coefficients 0.54 - 0.46*cos(2*pi*n/(Size-1)).
// No-op for sizes <= 1; the prior coefficients are left unchanged.
func (w *Window) SetupHamming() { w.setupCosine(hammingCoeffs) }

// SetupHann sets Hann coefficients 0.5*(1 - cos(2*pi*n/(Size-1))).
// No-op for sizes <= 1; the prior coefficients are left unchanged.
func (w *Window) SetupHann() { w.setupCosine(hannCoeffs) }

// SetupBlackman sets Blackman coefficients
// 0.42 - 0.5*cos(2*pi*n/(Size-1)) + 0.08*cos(4*pi*n/(Size-1)).
// No-op for sizes <= 1; the prior coefficients are left unchanged.
func (w *Window) SetupBlackman() { w.setupCosine(blackmanCoeffs) }

func (w *Window) setupCosine(terms []float64) {
	if len(w.coeffs) <= 1 {
		return
	}
	for i := range w.coeffs {
		w.coeffs[i] = cosineFromCoeffs(samplePosition(i, len(w.coeffs)), terms)
	}
}

// Process multiplies buf elementwise by the window coefficients, in place.
// The buffer length must equal the window size exactly.
func (w *Window) Process(buf []float64) error {
	if len(buf) == 0 {
		return processor.ErrEmptyBuffer
	}
	if err := processor.ValidateFactorsLen(len(buf), len(w.coeffs)); err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, w.coeffs)

	return nil
}

// SetFactors replaces the coefficient vector verbatim. The values are not
// validated beyond their count.
func (w *Window) SetFactors(factors []float64) error {
	if err := processor.ValidateFactorsLen(len(factors), len(w.coeffs)); err != nil {
		return err
	}
	core.CopyInto(w.coeffs, factors)
	return nil
}

// Factors returns a copy of the coefficient vector.
func (w *Window) Factors() []float64 {
	return core.Clone(w.coeffs)
}

// Clone returns a deep copy of the window.
func (w *Window) Clone() *Window {
	return &Window{
		name:   w.name,
		coeffs: core.Clone(w.coeffs),
	}
}

// Equal reports whether two windows have identical coefficients. The name
// is not compared.
func (w *Window) Equal(other *Window) bool {
	if other == nil || len(w.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range w.coeffs {
		if w.coeffs[i] != other.coeffs[i] {
			return false
		}
	}
	return true
}
