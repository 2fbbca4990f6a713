package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSize is returned for non-positive signal lengths.
	ErrInvalidSize = errors.New("signal length must be > 0")

	// ErrIndexOutOfRange is returned by At and Set for invalid indices.
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrLengthMismatch is returned by arithmetic between signals of
	// different lengths.
	ErrLengthMismatch = errors.New("signal lengths differ")
)

// Signal is a fixed-length container of samples, zero-initialized at
// construction. The length never changes over the signal's lifetime.
type Signal struct {
	samples []float64
}

// New creates a zero-filled signal of the given length.
func New(length int) (*Signal, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, length)
	}
	return &Signal{samples: make([]float64, length)}, nil
}

// FromSlice creates a signal holding a copy of the given samples.
func FromSlice(samples []float64) (*Signal, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(samples))
	}
	return &Signal{samples: core.Clone(samples)}, nil
}

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.samples) }

// Samples returns the backing slice. Mutations through the slice are
// visible in the signal; this is the view handed to processors.
func (s *Signal) Samples() []float64 { return s.samples }

// At returns the sample at index i.
func (s *Signal) At(i int) (float64, error) {
	if i < 0 || i >= len(s.samples) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(s.samples))
	}
	return s.samples[i], nil
}

// Set stores v at index i.
func (s *Signal) Set(i int, v float64) error {
	if i < 0 || i >= len(s.samples) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(s.samples))
	}
	s.samples[i] = v
	return nil
}

// Clone returns a deep copy.
func (s *Signal) Clone() *Signal {
	return &Signal{samples: core.Clone(s.samples)}
}

// Equal reports whether both signals hold identical samples.
func (s *Signal) Equal(other *Signal) bool {
	if other == nil || len(s.samples) != len(other.samples) {
		return false
	}
	for i := range s.samples {
		if s.samples[i] != other.samples[i] {
			return false
		}
	}
	return true
}

// Add returns a new signal holding the element-wise sum.
func (s *Signal) Add(other *Signal) (*Signal, error) {
	if err := s.checkLen(other); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.samples))
	vecmath.AddBlock(out, s.samples, other.samples)
	return &Signal{samples: out}, nil
}

// AddInPlace adds other element-wise into s.
func (s *Signal) AddInPlace(other *Signal) error {
	if err := s.checkLen(other); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(s.samples, other.samples)
	return nil
}

// Sub returns a new signal holding the element-wise difference s - other.
func (s *Signal) Sub(other *Signal) (*Signal, error) {
	if err := s.checkLen(other); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.samples))
	vecmath.ScaleBlock(out, other.samples, -1)
	vecmath.AddBlockInPlace(out, s.samples)
	return &Signal{samples: out}, nil
}

// SubInPlace subtracts other element-wise from s.
func (s *Signal) SubInPlace(other *Signal) error {
	if err := s.checkLen(other); err != nil {
		return err
	}
	neg := make([]float64, len(other.samples))
	vecmath.ScaleBlock(neg, other.samples, -1)
	vecmath.AddBlockInPlace(s.samples, neg)
	return nil
}

func (s *Signal) checkLen(other *Signal) error {
	if other == nil || len(other.samples) != len(s.samples) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s.samples), otherLen(other))
	}
	return nil
}

func otherLen(other *Signal) int {
	if other == nil {
		return 0
	}
	return len(other.samples)
}
