package models

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// NormalizedSize is the edge length every image is resized to before its
// histogram is taken.
const NormalizedSize = 256

// Levels is the number of 8-bit intensity values.
const Levels = 256

// DefaultThreshold is the correlation a pair must exceed to count as a match.
const DefaultThreshold = 0.7

// ErrLoad matches any *LoadError via errors.Is.
var ErrLoad = errors.New("image could not be loaded")

// Image is a normalized single-channel image of NormalizedSize x NormalizedSize.
type Image struct {
	Gray *image.Gray
	Path string
}

// Width returns the pixel width of the image.
func (img *Image) Width() int {
	if img == nil || img.Gray == nil {
		return 0
	}
	return img.Gray.Bounds().Dx()
}

// Height returns the pixel height of the image.
func (img *Image) Height() int {
	if img == nil || img.Gray == nil {
		return 0
	}
	return img.Gray.Bounds().Dy()
}

// Histogram holds the pixel count of every intensity level.
type Histogram [Levels]int

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Float64s returns the counts as a float64 slice.
func (h *Histogram) Float64s() []float64 {
	values := make([]float64, Levels)
	for i, count := range h {
		values[i] = float64(count)
	}
	return values
}

// Result is the outcome of comparing two fingerprint images.
type Result struct {
	Score     float64                  `json:"score"`
	Match     bool                     `json:"match"`
	Threshold float64                  `json:"threshold"`
	Timings   map[string]time.Duration `json:"timings,omitempty"`
}

// Message returns the text shown to users for the decision.
func (r Result) Message() string {
	if r.Match {
		return "The fingerprints are likely the same."
	}
	return "The fingerprints are likely different."
}

// LoadError reports an image path that is missing, unreadable or undecodable.
type LoadError struct {
	Path string
	Err  error
}

func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("image at %s could not be loaded. Check the file path.", e.Path)
	}
	return fmt.Sprintf("image at %s could not be loaded: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports ErrLoad as a match so callers need not know the concrete type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
