package exposure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Buckets is the number of distinct luminance values.
const Buckets = 256

// NightThreshold is the median bucket index below which an image is Night.
const NightThreshold = float64(Buckets) / 3

// ErrLuminanceRange is returned when a pixel's luminance falls outside [0, 255].
var ErrLuminanceRange = errors.New("luminance out of range")

// Exposure is the binary classification of an image.
type Exposure string

const (
	Day   Exposure = "day"
	Night Exposure = "night"
)

// Histogram counts pixels per rounded luminance value.
//
// The zero value is an empty histogram ready for use. Counts only ever grow:
// the sum of all buckets always equals the number of pixels accepted so far.
type Histogram struct {
	counts [Buckets]int
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Add counts a single pixel.
//
// A pixel whose luminance is outside [0, 255] (possible only for out-of-range
// channels) is rejected with ErrLuminanceRange and nothing is counted.
func (h *Histogram) Add(p Pixel) error {
	y, err := bucketFor(p)
	if err != nil {
		return err
	}
	h.counts[y]++
	return nil
}

// Ingest counts every whitespace-separated pixel token on one line of input.
//
// An empty or blank line is valid and counts nothing. If any token fails to
// parse, Ingest returns the error and the histogram is left exactly as it was
// before the call.
func (h *Histogram) Ingest(line string) error {
	tokens := strings.Fields(line)
	buckets := make([]int, 0, len(tokens))

	for _, tok := range tokens {
		p, err := ParsePixel(tok)
		if err != nil {
			return err
		}
		y, err := bucketFor(p)
		if err != nil {
			return err
		}
		buckets = append(buckets, y)
	}

	for _, y := range buckets {
		h.counts[y]++
	}
	return nil
}

// IngestReader reads r line by line until end of input, passing each line to
// Ingest.
//
// Reaching the end of r is normal termination. maxLineBytes bounds the length
// of a single line; a longer line is an error. The first failing line stops
// reading and is reported with its 1-based line number. Lines before it remain
// counted.
func (h *Histogram) IngestReader(r io.Reader, maxLineBytes int) error {
	scanner := bufio.NewScanner(r)
	initial := 64 * 1024
	if maxLineBytes < initial {
		initial = maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := h.Ingest(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input after line %d: %w", lineNo, err)
	}

	return nil
}

// Count returns the number of pixels with luminance y. Out-of-range y yields 0.
func (h *Histogram) Count(y int) int {
	if y < 0 || y >= Buckets {
		return 0
	}
	return h.counts[y]
}

// Bins returns a copy of all bucket counts.
func (h *Histogram) Bins() [Buckets]int {
	return h.counts
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}

// MedianIndex returns the number of buckets consumed, scanning upward from 0,
// before the running count first reaches half of Total.
//
// This is one more than the index of the bucket that crosses the halfway mark:
// if bucket 0 alone holds half the pixels the result is 1. An empty histogram
// returns 0 and a histogram whose pixels all sit in bucket 255 returns 256.
func (h *Histogram) MedianIndex() int {
	half := float64(h.Total()) / 2

	index, running := 0, 0
	for float64(running) < half {
		running += h.counts[index]
		index++
	}
	return index
}

// Classify returns Night when the median index is below NightThreshold and Day
// otherwise.
func (h *Histogram) Classify() Exposure {
	if float64(h.MedianIndex()) < NightThreshold {
		return Night
	}
	return Day
}

func bucketFor(p Pixel) (int, error) {
	y := Luminance(p)
	if y < 0 || y >= Buckets {
		return 0, fmt.Errorf("%w: pixel %s has luminance %d", ErrLuminanceRange, p, y)
	}
	return y, nil
}
