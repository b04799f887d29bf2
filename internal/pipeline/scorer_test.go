package pipeline

import (
	"math"
	"math/rand"
	"testing"

	"fingerprint-matcher/internal/models"
)

func randomHistogram(seed int64) models.Histogram {
	rng := rand.New(rand.NewSource(seed))
	var hist models.Histogram
	for i := 0; i < models.NormalizedSize*models.NormalizedSize; i++ {
		hist[rng.Intn(models.Levels)]++
	}
	return hist
}

func TestCorrelateIdentical(t *testing.T) {
	t.Parallel()

	hist := randomHistogram(1)
	if got := Correlate(hist, hist); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected score 1 for identical histograms, got %v", got)
	}
}

func TestCorrelateSymmetric(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		h1 := randomHistogram(seed)
		h2 := randomHistogram(seed + 100)
		if Correlate(h1, h2) != Correlate(h2, h1) {
			t.Errorf("seed %d: expected symmetric score", seed)
		}
	}
}

func TestCorrelateKnownValues(t *testing.T) {
	t.Parallel()

	var rising, falling models.Histogram
	for i := range rising {
		rising[i] = i
		falling[i] = models.Levels - i
	}

	if got := Correlate(rising, falling); math.Abs(got+1) > 1e-9 {
		t.Errorf("expected score -1 for opposite ramps, got %v", got)
	}

	var scaled models.Histogram
	for i := range scaled {
		scaled[i] = 3*i + 10
	}
	if got := Correlate(rising, scaled); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected score 1 for linearly related ramps, got %v", got)
	}
}

func TestCorrelateSolidImages(t *testing.T) {
	t.Parallel()

	var black, white models.Histogram
	black[0] = models.NormalizedSize * models.NormalizedSize
	white[255] = models.NormalizedSize * models.NormalizedSize

	score := Correlate(black, white)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		t.Fatalf("expected a finite score, got %v", score)
	}
	if IsMatch(score, models.DefaultThreshold) {
		t.Errorf("expected black and white not to match, score %v", score)
	}
}

func TestCorrelateZeroVariance(t *testing.T) {
	t.Parallel()

	var flat, otherFlat models.Histogram
	for i := range flat {
		flat[i] = 256
		otherFlat[i] = 1
	}

	tests := []struct {
		name   string
		h1, h2 models.Histogram
		want   float64
	}{
		{"both constant and identical", flat, flat, 1},
		{"both constant and different", flat, otherFlat, 0},
		{"first constant", flat, randomHistogram(2), 0},
		{"second constant", randomHistogram(3), flat, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Correlate(tt.h1, tt.h2)
			if math.IsNaN(got) {
				t.Fatal("expected no NaN")
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsMatchBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  bool
	}{
		{0.7, false},
		{0.70001, true},
		{0.69999, false},
		{1, true},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsMatch(tt.score, models.DefaultThreshold); got != tt.want {
			t.Errorf("IsMatch(%v, 0.7) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
