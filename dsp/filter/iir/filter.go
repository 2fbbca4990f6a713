package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/processor"
)

var (
	// ErrInvalidOrder is returned when the feedforward length is not
	// positive or the feedback length is negative.
	ErrInvalidOrder = errors.New("feedforward length must be > 0 and feedback length >= 0")

	// ErrCoefficientLength is returned by SetCoefficients when a supplied
	// vector does not match the length fixed at construction.
	ErrCoefficientLength = errors.New("coefficient vector length mismatch")
)

// Filter implements a direct-form IIR filter with separate input and output
// histories. The combined factor vector holds the NumB feedforward
// coefficients followed by the NumA feedback coefficients (a0 is implicitly
// 1 and excluded).
type Filter struct {
	name    string
	numB    int
	factors []float64 // b0..b(NumB-1), a1..a(NumA)
	inHist  []float64
	outHist []float64
}

var _ processor.Filter = (*Filter)(nil)

// New creates a named IIR filter with numB feedforward and numA feedback
// coefficients, all zeroed. The filter must be configured with
// SetCoefficients before use.
func New(name string, numB, numA int) (*Filter, error) {
	if err := processor.ValidateName(name); err != nil {
		return nil, err
	}
	if numB <= 0 || numA < 0 {
		return nil, fmt.Errorf("%w: numB=%d numA=%d", ErrInvalidOrder, numB, numA)
	}
	return &Filter{
		name:    name,
		numB:    numB,
		factors: make([]float64, numB+numA),
		inHist:  make([]float64, numB),
		outHist: make([]float64, numA),
	}, nil
}

// Name returns the filter's label.
func (f *Filter) Name() string { return f.name }

// Len returns the combined coefficient count NumB + NumA.
func (f *Filter) Len() int { return len(f.factors) }

// SetCoefficients sets both coefficient halves together: b holds the NumB
// feedforward coefficients [b0..b(NumB-1)], a the NumA feedback
// coefficients [a1..aNumA]. There is no partial update; on error the filter
// is unchanged.
func (f *Filter) SetCoefficients(b, a []float64) error {
	if len(b) != f.numB {
		return fmt.Errorf("%w: got %d feedforward, want %d", ErrCoefficientLength, len(b), f.numB)
	}
	if len(a) != len(f.factors)-f.numB {
		return fmt.Errorf("%w: got %d feedback, want %d", ErrCoefficientLength, len(a), len(f.factors)-f.numB)
	}
	copy(f.factors[:f.numB], b)
	copy(f.factors[f.numB:], a)
	return nil
}

// ProcessSample filters one sample through the difference equation,
// shifting both histories.
func (f *Filter) ProcessSample(x float64) float64 {
	for i := f.numB - 1; i > 0; i-- {
		f.inHist[i] = f.inHist[i-1]
	}
	f.inHist[0] = x

	var feedforward float64
	for i, b := range f.factors[:f.numB] {
		feedforward += b * f.inHist[i]
	}

	var feedback float64
	for i, a := range f.factors[f.numB:] {
		feedback += a * f.outHist[i]
	}

	y := feedforward - feedback

	if len(f.outHist) > 0 {
		for i := len(f.outHist) - 1; i > 0; i-- {
			f.outHist[i] = f.outHist[i-1]
		}
		f.outHist[0] = y
	}

	return y
}

// Process filters buf in place, maintaining history across calls.
func (f *Filter) Process(buf []float64) error {
	return processor.ProcessBuffer(f, buf)
}

// Reset clears both histories and the coefficient vector. Unlike the FIR
// filter's Reset, the coefficients do not survive: numerator and
// denominator must be supplied together again via SetCoefficients, which
// rules out momentarily inconsistent feedforward/feedback pairs.
func (f *Filter) Reset() {
	core.Zero(f.inHist)
	core.Zero(f.outHist)
	core.Zero(f.factors)
}

// SetFactors replaces the combined coefficient vector verbatim: the first
// NumB entries are feedforward, the rest feedback.
func (f *Filter) SetFactors(factors []float64) error {
	if err := processor.ValidateFactorsLen(len(factors), len(f.factors)); err != nil {
		return err
	}
	core.CopyInto(f.factors, factors)
	return nil
}

// Factors returns a copy of the combined coefficient vector.
func (f *Filter) Factors() []float64 {
	return core.Clone(f.factors)
}

// Clone returns a deep copy of the filter, including both histories.
func (f *Filter) Clone() *Filter {
	return &Filter{
		name:    f.name,
		numB:    f.numB,
		factors: core.Clone(f.factors),
		inHist:  core.Clone(f.inHist),
		outHist: core.Clone(f.outHist),
	}
}

// Equal reports whether two filters have identical coefficients and
// history state. The name is not compared.
func (f *Filter) Equal(other *Filter) bool {
	if other == nil || f.numB != other.numB || len(f.factors) != len(other.factors) {
		return false
	}
	for i := range f.factors {
		if f.factors[i] != other.factors[i] {
			return false
		}
	}
	for i := range f.inHist {
		if f.inHist[i] != other.inHist[i] {
			return false
		}
	}
	for i := range f.outHist {
		if f.outHist[i] != other.outHist[i] {
			return false
		}
	}
	return true
}
