package pipeline

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"fingerprint-matcher/internal/models"

	"github.com/spakin/netpbm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at path at its original resolution. The file
// is closed before LoadImage returns on every path.
func LoadImage(path string) (image.Image, string, error) {
	file, err := os.Open(path) //nolint:gosec // Comparing user-selected files is the purpose
	if err != nil {
		return nil, "", models.NewLoadError(path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	if isNetpbm(reader) {
		img, err := netpbm.Decode(reader, nil)
		if err != nil {
			return nil, "", models.NewLoadError(path, fmt.Errorf("failed to decode netpbm image: %w", err))
		}
		return img, "netpbm", nil
	}

	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", models.NewLoadError(path, fmt.Errorf("failed to decode image: %w", err))
	}
	return img, format, nil
}

// isNetpbm reports whether the stream starts with a P1..P7 magic number.
func isNetpbm(reader *bufio.Reader) bool {
	magic, err := reader.Peek(2)
	if err != nil {
		return false
	}
	return magic[0] == 'P' && magic[1] >= '1' && magic[1] <= '7'
}
