package window

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/processor"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func mustNew(t *testing.T, size int) *Window {
	t.Helper()
	w, err := New("test", size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", 8); !errors.Is(err, processor.ErrEmptyName) {
		t.Errorf("empty name: err=%v", err)
	}
	if _, err := New("hann", 0); !errors.Is(err, processor.ErrInvalidSize) {
		t.Errorf("zero size: err=%v", err)
	}

	w, err := New("hann", 8)
	if err != nil {
		t.Fatalf("valid args: %v", err)
	}
	if w.Name() != "hann" || w.Len() != 8 {
		t.Errorf("Name=%q Len=%d", w.Name(), w.Len())
	}

	// A fresh window is rectangular.
	testutil.RequireSliceNearlyEqual(t, w.Factors(), testutil.Ones(8), 0)
}

func TestSetupMatchesGenerate(t *testing.T) {
	w := mustNew(t, 31)

	w.SetupHamming()
	testutil.RequireSliceNearlyEqual(t, w.Factors(), Generate(TypeHamming, 31), 0)

	w.SetupHann()
	testutil.RequireSliceNearlyEqual(t, w.Factors(), Generate(TypeHann, 31), 0)

	w.SetupBlackman()
	testutil.RequireSliceNearlyEqual(t, w.Factors(), Generate(TypeBlackman, 31), 0)

	w.SetupRectangular()
	testutil.RequireSliceNearlyEqual(t, w.Factors(), testutil.Ones(31), 0)
}

func TestSetupNoOpForSizeOne(t *testing.T) {
	w := mustNew(t, 1)

	w.SetupHamming()
	w.SetupHann()
	w.SetupBlackman()

	// The cosine setups leave the construction-time coefficients alone.
	testutil.RequireSliceNearlyEqual(t, w.Factors(), []float64{1}, 0)
}

func TestProcessStrictLength(t *testing.T) {
	w := mustNew(t, 4)

	if err := w.Process(make([]float64, 3)); !errors.Is(err, processor.ErrLengthMismatch) {
		t.Errorf("short buffer: err=%v", err)
	}
	if err := w.Process(make([]float64, 5)); !errors.Is(err, processor.ErrLengthMismatch) {
		t.Errorf("long buffer: err=%v", err)
	}
	if err := w.Process(nil); !errors.Is(err, processor.ErrEmptyBuffer) {
		t.Errorf("nil buffer: err=%v", err)
	}
	if err := w.Process(make([]float64, 4)); err != nil {
		t.Errorf("exact length: err=%v", err)
	}
}

func TestProcessRejectionLeavesBuffer(t *testing.T) {
	w := mustNew(t, 4)
	w.SetupHann()

	buf := []float64{1, 2, 3}
	if err := w.Process(buf); err == nil {
		t.Fatal("mismatched buffer accepted")
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{1, 2, 3}, 0)
}

func TestRectangularIsIdentity(t *testing.T) {
	w := mustNew(t, 16)
	w.SetupRectangular()

	in := testutil.DeterministicNoise(11, 1, 16)
	buf := append([]float64{}, in...)
	if err := w.Process(buf); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, in, 0)
}

func TestProcessScalesByCoefficients(t *testing.T) {
	w := mustNew(t, 5)
	w.SetupHann()

	buf := testutil.DC(2, 5)
	if err := w.Process(buf); err != nil {
		t.Fatal(err)
	}

	want := Generate(TypeHann, 5)
	for i := range want {
		want[i] *= 2
	}
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-15)
}

func TestSetFactors(t *testing.T) {
	w := mustNew(t, 3)

	if err := w.SetFactors([]float64{1, 2}); !errors.Is(err, processor.ErrLengthMismatch) {
		t.Errorf("short vector: err=%v", err)
	}

	src := []float64{0.5, 1, 0.5}
	if err := w.SetFactors(src); err != nil {
		t.Fatal(err)
	}
	src[0] = 99
	if w.Factors()[0] != 0.5 {
		t.Error("SetFactors did not copy")
	}
}

func TestCloneAndEqual(t *testing.T) {
	w := mustNew(t, 8)
	w.SetupBlackman()

	dup := w.Clone()
	if !w.Equal(dup) {
		t.Fatal("clone not equal to original")
	}

	dup.SetupHann()
	if w.Equal(dup) {
		t.Error("windows equal after reconfiguration")
	}
	if w.Equal(nil) {
		t.Error("window equal to nil")
	}
	if w.Equal(mustNew(t, 4)) {
		t.Error("windows of different size equal")
	}
}
