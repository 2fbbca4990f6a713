package signal

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/youpy/go-wav"
)

// ReadWAV reads the first channel of a WAV file into a new signal and
// returns it together with the file's sample rate.
func ReadWAV(path string) (*Signal, uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav: %w", err)
	}
	defer file.Close()

	reader := wav.NewReader(file)
	format, err := reader.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("read wav format: %w", err)
	}

	var samples []float64
	for {
		chunk, err := reader.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read wav samples: %w", err)
		}
		for _, sample := range chunk {
			samples = append(samples, reader.FloatValue(sample, 0))
		}
	}

	sig, err := FromSlice(samples)
	if err != nil {
		return nil, 0, fmt.Errorf("empty wav: %w", err)
	}

	return sig, format.SampleRate, nil
}

// WriteWAV writes the signal as a mono 16-bit WAV file at the given sample
// rate. Samples are clamped to [-1, 1] before quantization.
func (s *Signal) WriteWAV(path string, sampleRate uint32) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	writer := wav.NewWriter(file, uint32(len(s.samples)), 1, sampleRate, 16)
	for _, v := range s.samples {
		q := int(core.Clamp(v, -1, 1) * 32767)
		if err := writer.WriteSamples([]wav.Sample{{Values: [2]int{q, q}}}); err != nil {
			file.Close()
			return fmt.Errorf("write wav samples: %w", err)
		}
	}

	return file.Close()
}
