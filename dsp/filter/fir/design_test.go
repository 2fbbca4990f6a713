package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filter/internal/testutil"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSetupLowPassValidation(t *testing.T) {
	f := mustNew(t, 5)
	if err := f.SetFactors([]float64{1, 2, 3, 4, 5}); err != nil {
		t.Fatal(err)
	}

	for _, freq := range []float64{0, -0.1, 0.5, 0.7} {
		if err := f.SetupLowPass(freq); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("freq=%v: err=%v, want ErrInvalidFrequency", freq, err)
		}
	}

	// A failed design leaves the previous coefficients untouched.
	testutil.RequireSliceNearlyEqual(t, f.Factors(), []float64{1, 2, 3, 4, 5}, 0)
}

func TestLowPassUnityDCGain(t *testing.T) {
	for _, size := range []int{5, 21, 64} {
		for _, freq := range []float64{0.05, 0.1, 0.25, 0.45} {
			f := mustNew(t, size)
			if err := f.SetupLowPass(freq); err != nil {
				t.Fatalf("size=%d freq=%v: %v", size, freq, err)
			}

			sum := 0.0
			for _, c := range f.Factors() {
				sum += c
			}
			if !almostEqual(sum, 1, 1e-12) {
				t.Errorf("size=%d freq=%v: coefficient sum=%v, want 1", size, freq, sum)
			}
		}
	}
}

func TestLowPassKnownValues(t *testing.T) {
	f := mustNew(t, 5)
	if err := f.SetupLowPass(0.1); err != nil {
		t.Fatal(err)
	}

	want := []float64{0.17260895, 0.21335640, 0.22806931, 0.21335640, 0.17260895}
	testutil.RequireSliceNearlyEqual(t, f.Factors(), want, 1e-8)
}

func TestHighPassComplementarity(t *testing.T) {
	const freq = 0.12

	for _, size := range []int{7, 21} {
		lp := mustNew(t, size)
		if err := lp.SetupLowPass(freq); err != nil {
			t.Fatal(err)
		}

		hp := mustNew(t, size)
		if err := hp.SetupHighPass(freq); err != nil {
			t.Fatal(err)
		}

		// Low-pass plus high-pass at the same cutoff is a unit impulse at
		// the center tap.
		center := (size - 1) / 2
		sum := make([]float64, size)
		lc, hc := lp.Factors(), hp.Factors()
		for i := range sum {
			sum[i] = lc[i] + hc[i]
		}
		testutil.RequireSliceNearlyEqual(t, sum, testutil.Impulse(size, center), 1e-12)
	}
}

func TestHighPassEvenSizeCenterTap(t *testing.T) {
	// For even sizes the center tap index truncates: (4-1)/2 == 1.
	lp := mustNew(t, 4)
	if err := lp.SetupLowPass(0.2); err != nil {
		t.Fatal(err)
	}

	hp := mustNew(t, 4)
	if err := hp.SetupHighPass(0.2); err != nil {
		t.Fatal(err)
	}

	lc, hc := lp.Factors(), hp.Factors()
	for i := range hc {
		want := -lc[i]
		if i == 1 {
			want++
		}
		if !almostEqual(hc[i], want, 1e-12) {
			t.Errorf("coeff[%d]: got %v, want %v", i, hc[i], want)
		}
	}
}

func TestHighPassPropagatesRangeError(t *testing.T) {
	f := mustNew(t, 5)
	if err := f.SetupHighPass(0.5); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("err=%v, want ErrInvalidFrequency", err)
	}
}

func TestBandPassOrdering(t *testing.T) {
	f := mustNew(t, 9)

	if err := f.SetupBandPass(0.3, 0.1); !errors.Is(err, ErrFrequencyOrder) {
		t.Errorf("reversed cutoffs: err=%v", err)
	}
	if err := f.SetupBandPass(0.2, 0.2); !errors.Is(err, ErrFrequencyOrder) {
		t.Errorf("equal cutoffs: err=%v", err)
	}
	if err := f.SetupBandPass(0.1, 0.5); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("high cutoff at Nyquist: err=%v", err)
	}
	if err := f.SetupBandPass(0, 0.3); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("low cutoff at zero: err=%v", err)
	}
}

func TestBandPassEqualsLowPassDifference(t *testing.T) {
	const (
		size = 21
		fLow = 0.1
		fRef = 0.3
	)

	bp := mustNew(t, size)
	if err := bp.SetupBandPass(fLow, fRef); err != nil {
		t.Fatal(err)
	}

	high := mustNew(t, size)
	if err := high.SetupLowPass(fRef); err != nil {
		t.Fatal(err)
	}
	low := mustNew(t, size)
	if err := low.SetupLowPass(fLow); err != nil {
		t.Fatal(err)
	}

	hc, lc := high.Factors(), low.Factors()
	want := make([]float64, size)
	for i := range want {
		want[i] = hc[i] - lc[i]
	}
	testutil.RequireSliceNearlyEqual(t, bp.Factors(), want, 1e-14)
}

func TestBandPassFailureLeavesCoefficients(t *testing.T) {
	f := mustNew(t, 5)
	if err := f.SetupLowPass(0.1); err != nil {
		t.Fatal(err)
	}
	before := f.Factors()

	if err := f.SetupBandPass(0.2, 0.6); err == nil {
		t.Fatal("out-of-range high cutoff accepted")
	}

	testutil.RequireSliceNearlyEqual(t, f.Factors(), before, 0)
}
