package pipeline

import (
	"image"
	"image/color"
	"testing"

	"fingerprint-matcher/internal/models"
)

func TestNormalizeSize(t *testing.T) {
	t.Parallel()

	sizes := []struct {
		name          string
		width, height int
	}{
		{"single pixel", 1, 1},
		{"portrait", 100, 300},
		{"already normalized", 256, 256},
		{"large", 640, 480},
	}

	for _, nearest := range []bool{false, true} {
		normalizer := NewNormalizer(nearest)
		for _, tt := range sizes {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				gray := normalizer.Normalize(gradientImage(tt.width, tt.height))
				bounds := gray.Bounds()
				if bounds.Dx() != models.NormalizedSize || bounds.Dy() != models.NormalizedSize {
					t.Errorf("expected %dx%d, got %dx%d", models.NormalizedSize, models.NormalizedSize, bounds.Dx(), bounds.Dy())
				}
				if bounds.Min != (image.Point{}) {
					t.Errorf("expected zero origin, got %v", bounds.Min)
				}
			})
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(false)
	src := gradientImage(317, 211)

	first := normalizer.Normalize(src)
	second := normalizer.Normalize(src)
	if string(first.Pix) != string(second.Pix) {
		t.Error("expected repeated normalization to produce identical pixels")
	}
}

func TestToGray(t *testing.T) {
	t.Parallel()

	t.Run("uses BT.601 luma weights", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			in   color.Color
			want uint8
		}{
			{"red", color.NRGBA{R: 255, A: 255}, 76},
			{"green", color.NRGBA{G: 255, A: 255}, 150},
			{"blue", color.NRGBA{B: 255, A: 255}, 29},
			{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 255},
			{"black", color.NRGBA{A: 255}, 0},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				gray := ToGray(solidImage(2, 2, tt.in))
				if got := gray.GrayAt(1, 1).Y; got != tt.want {
					t.Errorf("expected luma %d, got %d", tt.want, got)
				}
			})
		}
	})

	t.Run("ignores alpha", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			in   color.NRGBA
			want uint8
		}{
			{"transparent white", color.NRGBA{R: 255, G: 255, B: 255, A: 0}, 255},
			{"half transparent gray", color.NRGBA{R: 200, G: 200, B: 200, A: 128}, 200},
			{"half transparent red", color.NRGBA{R: 255, A: 128}, 76},
			{"transparent black", color.NRGBA{}, 0},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
				for y := 0; y < 3; y++ {
					for x := 0; x < 3; x++ {
						src.SetNRGBA(x, y, tt.in)
					}
				}
				if got := ToGray(src).GrayAt(1, 1).Y; got != tt.want {
					t.Errorf("expected luma %d, got %d", tt.want, got)
				}
				normalized := NewNormalizer(true).Normalize(src)
				if got := normalized.GrayAt(128, 128).Y; got != tt.want {
					t.Errorf("expected normalized luma %d, got %d", tt.want, got)
				}
			})
		}
	})

	t.Run("rebases sub-images", func(t *testing.T) {
		t.Parallel()
		src := noiseImage(10, 10, 3)
		sub := src.SubImage(image.Rect(4, 4, 8, 8))
		gray := ToGray(sub)
		if gray.Bounds() != image.Rect(0, 0, 4, 4) {
			t.Fatalf("expected 4x4 zero-origin bounds, got %v", gray.Bounds())
		}
		if gray.GrayAt(0, 0) != src.GrayAt(4, 4) {
			t.Errorf("expected pixel (0,0) to equal source (4,4)")
		}
	})

	t.Run("returns zero-origin gray unchanged", func(t *testing.T) {
		t.Parallel()
		src := noiseImage(5, 5, 4)
		if ToGray(src) != src {
			t.Error("expected the same *image.Gray to be returned")
		}
	})
}
