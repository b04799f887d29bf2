package pipeline

import (
	"math"

	"fingerprint-matcher/internal/models"

	"gonum.org/v1/gonum/stat"
)

// Correlate returns the Pearson correlation of two histograms.
//
// When either histogram is constant the coefficient is 0/0. Two identical
// constant histograms score 1, any other pairing with a constant histogram
// scores 0. The result is never NaN and is clamped to [-1, 1].
func Correlate(h1, h2 models.Histogram) float64 {
	flat1, flat2 := isConstant(h1), isConstant(h2)
	switch {
	case flat1 && flat2:
		if h1 == h2 {
			return 1
		}
		return 0
	case flat1 || flat2:
		return 0
	}

	score := stat.Correlation(h1.Float64s(), h2.Float64s(), nil)
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(-1, math.Min(1, score))
}

// IsMatch reports whether score strictly exceeds threshold.
func IsMatch(score, threshold float64) bool {
	return score > threshold
}

func isConstant(h models.Histogram) bool {
	for _, count := range h[1:] {
		if count != h[0] {
			return false
		}
	}
	return true
}
