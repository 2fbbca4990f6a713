package signal

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length  int
	Energy  float64 // sum of squares
	Power   float64 // energy / length
	PowerdB float64
	RMS     float64
	RMSdB   float64
	Peak    float64 // max absolute sample
	PeakdB  float64
}

// Energy returns the total energy, the sum of squared samples.
func (s *Signal) Energy() float64 {
	return vecmath.DotProduct(s.samples, s.samples)
}

// Power returns the average power, energy divided by the sample count.
func (s *Signal) Power() float64 {
	return s.Energy() / float64(len(s.samples))
}

// RMS returns the root mean square value.
func (s *Signal) RMS() float64 {
	return math.Sqrt(s.Power())
}

// Peak returns the largest absolute sample value.
func (s *Signal) Peak() float64 {
	return vecmath.MaxAbs(s.samples)
}

// Stats computes all time-domain statistics in one pass over the signal.
func (s *Signal) Stats() Stats {
	energy := s.Energy()
	power := energy / float64(len(s.samples))
	rms := math.Sqrt(power)
	peak := s.Peak()

	return Stats{
		Length:  len(s.samples),
		Energy:  energy,
		Power:   power,
		PowerdB: core.LinearPowerToDB(power),
		RMS:     rms,
		RMSdB:   core.LinearToDB(rms),
		Peak:    peak,
		PeakdB:  core.LinearToDB(peak),
	}
}
