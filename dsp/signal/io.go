package signal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrShortData is returned when a file holds fewer values than the signal
// length requires.
var ErrShortData = errors.New("file holds fewer samples than the signal length")

// ReadFile fills the signal from a text file of whitespace-separated
// numeric values. Exactly Len values are consumed; existing samples are
// overwritten only once the whole read has succeeded.
func (s *Signal) ReadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open signal file: %w", err)
	}
	defer file.Close()

	parsed := make([]float64, 0, len(s.samples))

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for len(parsed) < len(s.samples) && scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return fmt.Errorf("parse sample %d: %w", len(parsed), err)
		}
		parsed = append(parsed, v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read signal file: %w", err)
	}
	if len(parsed) < len(s.samples) {
		return fmt.Errorf("%w: got %d, want %d", ErrShortData, len(parsed), len(s.samples))
	}

	copy(s.samples, parsed)
	return nil
}

// WriteFile writes the samples to a text file, one value per line.
// An existing file is overwritten.
func (s *Signal) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create signal file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, v := range s.samples {
		if _, err := fmt.Fprintf(w, "%g\n", v); err != nil {
			file.Close()
			return fmt.Errorf("write signal file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flush signal file: %w", err)
	}

	return file.Close()
}
