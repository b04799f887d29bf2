package pipeline

import (
	"image"

	"fingerprint-matcher/internal/models"
)

// BuildHistogram counts the pixels of every intensity in img.
func BuildHistogram(img *image.Gray) models.Histogram {
	var hist models.Histogram
	bounds := img.Bounds()
	width := bounds.Dx()

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for _, value := range row {
			hist[value]++
		}
	}
	return hist
}
