package processor

import (
	"errors"
	"fmt"
)

// Config carries the construction parameters a filter factory may need.
// Size is the coefficient count for FIR-style filters; NumB and NumA are
// the feedforward and feedback history lengths for recursive filters.
type Config struct {
	Name string
	Size int
	NumB int
	NumA int
}

// Factory builds one Filter instance from a Config.
type Factory func(cfg Config) (Filter, error)

// Registry maps filter kind names to their factories, letting callers pick
// a filter implementation at runtime.
type Registry struct {
	factories map[string]Factory
}

var (
	errDuplicateKind = errors.New("duplicate filter kind")
	errUnknownKind   = errors.New("unknown filter kind")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given filter kind.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.New("empty filter kind")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateKind, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("processor registry: " + err.Error())
	}
}

// Lookup returns the factory for the given filter kind, or nil.
func (r *Registry) Lookup(kind string) Factory {
	return r.factories[kind]
}

// Kinds returns the registered kind names in unspecified order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}

	return kinds
}

// New builds a filter of the given kind.
func (r *Registry) New(kind string, cfg Config) (Filter, error) {
	factory := r.Lookup(kind)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", errUnknownKind, kind)
	}

	return factory(cfg)
}
