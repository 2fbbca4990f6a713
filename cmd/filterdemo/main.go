// Command filterdemo prints the impulse response of a configured filter or
// window processor.
//
// Usage:
//
//	filterdemo [flags]
//
// Examples:
//
//	filterdemo
//	filterdemo -kind fir-lowpass -size 31 -cutoff 0.2
//	filterdemo -kind fir-bandpass -size 31 -low 0.1 -high 0.3
//	filterdemo -kind iir
//	filterdemo -kind window-hann -size 16
//	filterdemo -kind fir-lowpass -in input.txt -out output.txt
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/processor"
	"github.com/cwbudde/algo-filter/dsp/signal"
	"github.com/cwbudde/algo-filter/dsp/window"
)

// Stable demo section used when -kind iir is selected without custom
// coefficients: a second-order low-pass.
var (
	demoB = []float64{0.02008337, 0.04016673, 0.02008337}
	demoA = []float64{-1.56101808, 0.64135154}
)

func main() {
	kind := flag.String("kind", "fir-lowpass", "processor kind: fir-lowpass, fir-highpass, fir-bandpass, iir, window-rectangular, window-hamming, window-hann, window-blackman")
	size := flag.Int("size", 5, "coefficient count (FIR) or window length")
	cutoff := flag.Float64("cutoff", 0.1, "normalized cutoff frequency in (0, 0.5) for low/high-pass")
	low := flag.Float64("low", 0.1, "normalized lower cutoff for band-pass")
	high := flag.Float64("high", 0.3, "normalized upper cutoff for band-pass")
	length := flag.Int("length", 15, "impulse length in samples")
	inPath := flag.String("in", "", "optional input signal file (whitespace-separated values) instead of an impulse")
	outPath := flag.String("out", "", "optional output signal file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Configures a filter or window and prints its output for a unit impulse\n")
		fmt.Fprintf(os.Stderr, "(or for a signal read from -in).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*kind, *size, *cutoff, *low, *high, *length, *inPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "filterdemo:", err)
		os.Exit(1)
	}
}

func run(kind string, size int, cutoff, low, high float64, length int, inPath, outPath string) error {
	proc, err := buildProcessor(kind, size, cutoff, low, high)
	if err != nil {
		return err
	}

	sig, err := inputSignal(proc, inPath, length)
	if err != nil {
		return err
	}

	if err := proc.Process(sig.Samples()); err != nil {
		return err
	}

	printSignal(proc, sig)

	if outPath != "" {
		return sig.WriteFile(outPath)
	}

	return nil
}

func buildProcessor(kind string, size int, cutoff, low, high float64) (processor.Processor, error) {
	registry := filter.DefaultRegistry()

	switch kind {
	case "fir-lowpass", "fir-highpass", "fir-bandpass":
		built, err := registry.New(filter.KindFIR, processor.Config{Name: kind, Size: size})
		if err != nil {
			return nil, err
		}
		f := built.(*fir.Filter)
		switch kind {
		case "fir-lowpass":
			err = f.SetupLowPass(cutoff)
		case "fir-highpass":
			err = f.SetupHighPass(cutoff)
		default:
			err = f.SetupBandPass(low, high)
		}
		if err != nil {
			return nil, err
		}
		return f, nil

	case "iir":
		built, err := registry.New(filter.KindIIR, processor.Config{Name: kind, NumB: len(demoB), NumA: len(demoA)})
		if err != nil {
			return nil, err
		}
		f := built.(*iir.Filter)
		if err := f.SetCoefficients(demoB, demoA); err != nil {
			return nil, err
		}
		return f, nil

	case "window-rectangular", "window-hamming", "window-hann", "window-blackman":
		w, err := window.New(kind, size)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "window-hamming":
			w.SetupHamming()
		case "window-hann":
			w.SetupHann()
		case "window-blackman":
			w.SetupBlackman()
		}
		return w, nil

	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func inputSignal(proc processor.Processor, inPath string, length int) (*signal.Signal, error) {
	// Windows apply to exactly their own length.
	if _, ok := proc.(*window.Window); ok {
		length = proc.Len()
	}

	sig, err := signal.New(length)
	if err != nil {
		return nil, err
	}

	if inPath != "" {
		if err := sig.ReadFile(inPath); err != nil {
			return nil, err
		}
		return sig, nil
	}

	if err := sig.Set(0, 1); err != nil {
		return nil, err
	}

	return sig, nil
}

func printSignal(proc processor.Processor, sig *signal.Signal) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "n\t%s\n", proc.Name())
	for i, v := range sig.Samples() {
		fmt.Fprintf(w, "%d\t%.8f\n", i, v)
	}
	w.Flush()

	st := sig.Stats()
	fmt.Printf("\nenergy=%.6f rms=%.6f peak=%.6f\n", st.Energy, st.RMS, st.Peak)
}
