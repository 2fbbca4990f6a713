package processor

// Processor is a named sample processor with a fixed-length coefficient
// vector. Process mutates the supplied buffer in place; the buffer is
// borrowed for the duration of the call and never retained.
type Processor interface {
	// Name returns the processor's label, fixed at construction.
	Name() string

	// Len returns the fixed coefficient count.
	Len() int

	// Process applies the processor to buf in place.
	Process(buf []float64) error

	// SetFactors replaces the coefficient vector verbatim. Only the length
	// is validated; the caller must supply finite, correctly scaled values.
	SetFactors(factors []float64) error

	// Factors returns a defensive copy of the coefficient vector.
	Factors() []float64
}

// Filter is a Processor that keeps internal history across Process calls.
type Filter interface {
	Processor

	// Reset clears internal history. Whether coefficients survive a reset
	// is implementation-defined; see the concrete filter documentation.
	Reset()

	// ProcessSample filters a single sample, updating internal history.
	ProcessSample(x float64) float64
}

// ProcessBuffer replaces each sample of buf with the filtered result, in
// order. This is the uniform buffer-at-a-time loop used by every Filter
// implementation; it accepts any positive buffer length.
func ProcessBuffer(f Filter, buf []float64) error {
	if len(buf) == 0 {
		return ErrEmptyBuffer
	}
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
	return nil
}
