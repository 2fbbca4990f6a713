package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/processor"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func TestDefaultRegistryKinds(t *testing.T) {
	r := DefaultRegistry()

	for _, kind := range []string{KindFIR, KindIIR} {
		if r.Lookup(kind) == nil {
			t.Errorf("kind %q not registered", kind)
		}
	}

	if _, err := r.New("butterworth", processor.Config{Name: "x", Size: 3}); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestRuntimeDispatchFIR(t *testing.T) {
	r := DefaultRegistry()

	f, err := r.New(KindFIR, processor.Config{Name: "ma", Size: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*fir.Filter); !ok {
		t.Fatalf("kind %q built %T", KindFIR, f)
	}

	// Configuration through the generic capability interface.
	if err := f.SetFactors([]float64{0.25, 0.5, 0.25}); err != nil {
		t.Fatal(err)
	}

	buf := testutil.Impulse(5, 0)
	if err := f.Process(buf); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.25, 0.5, 0.25, 0, 0}, 1e-12)
}

func TestRuntimeDispatchIIR(t *testing.T) {
	r := DefaultRegistry()

	f, err := r.New(KindIIR, processor.Config{Name: "onepole", NumB: 1, NumA: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*iir.Filter); !ok {
		t.Fatalf("kind %q built %T", KindIIR, f)
	}

	// Combined vector: b=[0.5], a=[-0.5] is a stable one-pole low-pass.
	if err := f.SetFactors([]float64{0.5, -0.5}); err != nil {
		t.Fatal(err)
	}

	buf := testutil.Impulse(4, 0)
	if err := f.Process(buf); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.5, 0.25, 0.125, 0.0625}, 1e-12)
}

func TestDispatchPropagatesConstructionErrors(t *testing.T) {
	r := DefaultRegistry()

	if _, err := r.New(KindFIR, processor.Config{Name: "", Size: 3}); !errors.Is(err, processor.ErrEmptyName) {
		t.Errorf("empty name: err=%v", err)
	}
	if _, err := r.New(KindFIR, processor.Config{Name: "x", Size: 0}); !errors.Is(err, processor.ErrInvalidSize) {
		t.Errorf("zero size: err=%v", err)
	}
	if _, err := r.New(KindIIR, processor.Config{Name: "x", NumB: 0, NumA: 1}); !errors.Is(err, iir.ErrInvalidOrder) {
		t.Errorf("zero numB: err=%v", err)
	}
}
