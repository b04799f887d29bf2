package pipeline

import (
	"context"

	"fingerprint-matcher/internal/models"
)

// NativeSource decodes with the Go image codecs and normalizes in Go.
type NativeSource struct {
	normalizer *Normalizer
	logger     Logger
}

func NewNativeSource(normalizer *Normalizer, logger Logger) *NativeSource {
	return &NativeSource{normalizer: normalizer, logger: logger}
}

func (s *NativeSource) Name() string {
	return "native"
}

func (s *NativeSource) Load(ctx context.Context, path string) (*models.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	s.logger.Debug("ImageLoader", "image decoded", map[string]interface{}{
		"path":   path,
		"format": format,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &models.Image{Gray: s.normalizer.Normalize(img), Path: path}, nil
}
