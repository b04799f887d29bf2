package models

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestHistogramTotal(t *testing.T) {
	t.Parallel()

	var h Histogram
	h[0] = 10
	h[255] = 20
	h[128] = 5

	if got := h.Total(); got != 35 {
		t.Errorf("expected total 35, got %d", got)
	}

	values := h.Float64s()
	if len(values) != Levels {
		t.Fatalf("expected %d values, got %d", Levels, len(values))
	}
	if values[255] != 20 {
		t.Errorf("expected values[255] to be 20, got %v", values[255])
	}
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	cause := fs.ErrNotExist
	err := fmt.Errorf("compare: %w", NewLoadError("missing.png", cause))

	t.Run("matches ErrLoad", func(t *testing.T) {
		t.Parallel()
		if !errors.Is(err, ErrLoad) {
			t.Error("expected errors.Is(err, ErrLoad) to be true")
		}
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		t.Parallel()
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("expected errors.Is(err, fs.ErrNotExist) to be true")
		}
	})

	t.Run("exposes path", func(t *testing.T) {
		t.Parallel()
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatal("expected errors.As to find *LoadError")
		}
		if loadErr.Path != "missing.png" {
			t.Errorf("expected path 'missing.png', got '%s'", loadErr.Path)
		}
	})
}

func TestResultMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"match", Result{Match: true}, "The fingerprints are likely the same."},
		{"no match", Result{Match: false}, "The fingerprints are likely different."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.result.Message(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
