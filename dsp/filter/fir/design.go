package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidFrequency is returned for cutoffs outside the open interval
	// (0, 0.5) of the normalized frequency range.
	ErrInvalidFrequency = errors.New("normalized frequency must be in (0, 0.5)")

	// ErrFrequencyOrder is returned when a band-pass lower cutoff is not
	// strictly below the upper cutoff.
	ErrFrequencyOrder = errors.New("low cutoff must be smaller than high cutoff")
)

func validateFrequency(freq float64) error {
	if freq <= 0 || freq >= 0.5 {
		return fmt.Errorf("%w: %g", ErrInvalidFrequency, freq)
	}
	return nil
}

// designLowPass writes windowed-sinc low-pass coefficients for the given
// normalized cutoff into dst and normalizes them to unity DC gain.
// The caller has already validated freq.
func designLowPass(dst []float64, freq float64) {
	center := (float64(len(dst)) - 1) / 2

	for i := range dst {
		n := float64(i)
		if n == center {
			dst[i] = 2 * freq
		} else {
			dst[i] = math.Sin(2*math.Pi*freq*(n-center)) / (math.Pi * (n - center))
		}
	}

	vecmath.ScaleBlockInPlace(dst, 1/vecmath.Sum(dst))
}

// SetupLowPass designs low-pass coefficients for the given normalized
// cutoff using the windowed-sinc method. The coefficients are normalized to
// unity gain at DC. On error the previous coefficients are untouched.
func (f *Filter) SetupLowPass(freq float64) error {
	if err := validateFrequency(freq); err != nil {
		return err
	}
	designLowPass(f.coeffs, freq)
	return nil
}

// SetupHighPass designs high-pass coefficients by spectral inversion of a
// low-pass design at the same cutoff: every coefficient is negated and the
// center tap (Size-1)/2 is raised by one. On error the previous
// coefficients are untouched.
func (f *Filter) SetupHighPass(freq float64) error {
	if err := f.SetupLowPass(freq); err != nil {
		return err
	}

	for i := range f.coeffs {
		f.coeffs[i] = -f.coeffs[i]
	}

	center := (len(f.coeffs) - 1) / 2
	f.coeffs[center]++

	return nil
}

// SetupBandPass designs band-pass coefficients as the element-wise
// difference of two low-pass designs: lowpass(freqHigh) - lowpass(freqLow).
// Both cutoffs must lie in (0, 0.5) and freqLow must be strictly below
// freqHigh. On error the previous coefficients are untouched.
func (f *Filter) SetupBandPass(freqLow, freqHigh float64) error {
	if freqLow >= freqHigh {
		return fmt.Errorf("%w: %g >= %g", ErrFrequencyOrder, freqLow, freqHigh)
	}
	if err := validateFrequency(freqHigh); err != nil {
		return err
	}
	if err := validateFrequency(freqLow); err != nil {
		return err
	}

	designLowPass(f.coeffs, freqHigh)

	low := make([]float64, len(f.coeffs))
	designLowPass(low, freqLow)

	for i := range f.coeffs {
		f.coeffs[i] -= low[i]
	}

	return nil
}
