package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/processor"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay
// line. The coefficient count is fixed at construction.
type Filter struct {
	name   string
	coeffs []float64
	delay  []float64
	pos    int
}

var _ processor.Filter = (*Filter)(nil)

// New creates a named FIR filter with size zeroed coefficients and a
// cleared delay line. The filter must be configured with a Setup method or
// SetFactors before use.
func New(name string, size int) (*Filter, error) {
	if err := processor.ValidateName(name); err != nil {
		return nil, err
	}
	if err := processor.ValidateSize(size); err != nil {
		return nil, err
	}
	return &Filter{
		name:   name,
		coeffs: make([]float64, size),
		delay:  make([]float64, size),
	}, nil
}

// Name returns the filter's label.
func (f *Filter) Name() string { return f.name }

// Len returns the fixed coefficient count.
func (f *Filter) Len() int { return len(f.coeffs) }

// ProcessSample filters one input sample using direct convolution with the
// circular delay line, newest input aligned with coeffs[0]:
//
//	y[n] = sum_{k=0}^{Size-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// Process filters buf in place, maintaining delay-line state across calls.
func (f *Filter) Process(buf []float64) error {
	return processor.ProcessBuffer(f, buf)
}

// Reset clears the delay line to zero. Coefficients are preserved.
func (f *Filter) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// SetFactors replaces the coefficient vector verbatim. The values are not
// validated beyond their count.
func (f *Filter) SetFactors(factors []float64) error {
	if err := processor.ValidateFactorsLen(len(factors), len(f.coeffs)); err != nil {
		return err
	}
	core.CopyInto(f.coeffs, factors)
	return nil
}

// Factors returns a copy of the coefficient vector.
func (f *Filter) Factors() []float64 {
	return core.Clone(f.coeffs)
}

// Clone returns a deep copy of the filter, including delay-line state.
func (f *Filter) Clone() *Filter {
	return &Filter{
		name:   f.name,
		coeffs: core.Clone(f.coeffs),
		delay:  core.Clone(f.delay),
		pos:    f.pos,
	}
}

// Equal reports whether two filters have identical coefficients and
// delay-line state. The name is not compared.
func (f *Filter) Equal(other *Filter) bool {
	if other == nil || len(f.coeffs) != len(other.coeffs) {
		return false
	}
	if f.pos != other.pos {
		return false
	}
	for i := range f.coeffs {
		if f.coeffs[i] != other.coeffs[i] || f.delay[i] != other.delay[i] {
			return false
		}
	}
	return true
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
