package pipeline

import (
	"context"

	"fingerprint-matcher/internal/models"
)

// Source loads an image file and returns it normalized to
// models.NormalizedSize grayscale. Load failures are *models.LoadError.
type Source interface {
	Load(ctx context.Context, path string) (*models.Image, error)
	Name() string
}

// Logger is the subset of the application logger the pipeline writes to.
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
