// Package opencv loads and normalizes images through OpenCV: decode, convert
// BGR to gray, then resize to the normalized size.
package opencv

import (
	"context"
	"fmt"
	"os"

	"fingerprint-matcher/internal/models"
	"fingerprint-matcher/internal/opencv/conversion"
	"fingerprint-matcher/internal/pipeline"

	"gocv.io/x/gocv"
)

// Source implements pipeline.Source with gocv.
type Source struct {
	interpolation gocv.InterpolationFlags
	logger        pipeline.Logger
}

// NewSource returns an OpenCV source using bilinear interpolation, or nearest
// neighbour when nearest is set.
func NewSource(nearest bool, logger pipeline.Logger) *Source {
	interp := gocv.InterpolationLinear
	if nearest {
		interp = gocv.InterpolationNearestNeighbor
	}
	return &Source{interpolation: interp, logger: logger}
}

func (s *Source) Name() string {
	return "opencv"
}

func (s *Source) Load(ctx context.Context, path string) (*models.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// IMRead reports a missing file as an empty Mat.
	data, err := os.ReadFile(path) //nolint:gosec // Comparing user-selected files is the purpose
	if err != nil {
		return nil, models.NewLoadError(path, err)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, models.NewLoadError(path, fmt.Errorf("failed to decode image with OpenCV: %w", err))
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, models.NewLoadError(path, fmt.Errorf("OpenCV could not decode %d bytes", len(data)))
	}

	s.logger.Debug("OpenCVLoader", "image decoded", map[string]interface{}{
		"path":     path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gray, err := conversion.ConvertToGrayscale(mat)
	if err != nil {
		return nil, fmt.Errorf("grayscale conversion failed for %s: %w", path, err)
	}
	defer gray.Close()

	resized, err := conversion.ResizeSquare(gray, models.NormalizedSize, s.interpolation)
	if err != nil {
		return nil, fmt.Errorf("resize failed for %s: %w", path, err)
	}
	defer resized.Close()

	img, err := conversion.MatToGray(resized)
	if err != nil {
		return nil, err
	}
	return &models.Image{Gray: img, Path: path}, nil
}
