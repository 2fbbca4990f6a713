// Package filter wires the concrete filter runtimes into a registry so
// callers can select an implementation by kind name at runtime.
package filter

import (
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/processor"
)

// Kind names for the default registry.
const (
	KindFIR = "fir"
	KindIIR = "iir"
)

// RegisterDefaults adds the built-in filter kinds to r.
func RegisterDefaults(r *processor.Registry) {
	r.MustRegister(KindFIR, func(cfg processor.Config) (processor.Filter, error) {
		f, err := fir.New(cfg.Name, cfg.Size)
		if err != nil {
			return nil, err
		}
		return f, nil
	})

	r.MustRegister(KindIIR, func(cfg processor.Config) (processor.Filter, error) {
		f, err := iir.New(cfg.Name, cfg.NumB, cfg.NumA)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}

// DefaultRegistry returns a registry holding the built-in filter kinds.
func DefaultRegistry() *processor.Registry {
	r := processor.NewRegistry()
	RegisterDefaults(r)
	return r
}
