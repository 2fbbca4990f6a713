package processor

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBuffer is returned when Process is given a nil or empty buffer.
	ErrEmptyBuffer = errors.New("sample buffer must not be empty")

	// ErrEmptyName is returned when a processor is constructed without a label.
	ErrEmptyName = errors.New("processor name must not be empty")

	// ErrInvalidSize is returned for non-positive coefficient counts.
	ErrInvalidSize = errors.New("coefficient count must be > 0")

	// ErrLengthMismatch is returned when a supplied vector or buffer does not
	// match the processor's fixed length.
	ErrLengthMismatch = errors.New("length does not match processor size")
)

// ValidateName checks a processor label.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateSize checks a coefficient count.
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}

// ValidateFactorsLen checks a replacement coefficient vector against the
// processor's fixed size.
func ValidateFactorsLen(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, got, want)
	}
	return nil
}
