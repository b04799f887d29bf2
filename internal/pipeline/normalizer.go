package pipeline

import (
	"image"
	"image/color"
	"image/draw"

	"fingerprint-matcher/internal/models"

	"github.com/nfnt/resize"
)

// Normalizer converts decoded images to NormalizedSize square grayscale.
type Normalizer struct {
	interpolation resize.InterpolationFunction
}

// NewNormalizer returns a Normalizer using bilinear interpolation, or nearest
// neighbour when nearest is set.
func NewNormalizer(nearest bool) *Normalizer {
	interp := resize.Bilinear
	if nearest {
		interp = resize.NearestNeighbor
	}
	return &Normalizer{interpolation: interp}
}

// Normalize converts img to 8-bit luma and resizes it to
// models.NormalizedSize on both axes.
func (n *Normalizer) Normalize(img image.Image) *image.Gray {
	gray := ToGray(img)
	size := uint(models.NormalizedSize)
	if gray.Bounds().Dx() == models.NormalizedSize && gray.Bounds().Dy() == models.NormalizedSize {
		return gray
	}
	return ToGray(resize.Resize(size, size, gray, n.interpolation))
}

// ToGray returns img as a zero-origin *image.Gray, converting with the BT.601
// luma weights of color.GrayModel. Alpha is discarded: each pixel is
// un-premultiplied and its raw R, G and B are weighted as if opaque.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	if gray, ok := img.(*image.Gray); ok && bounds.Min == (image.Point{}) {
		return gray
	}

	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if src, ok := img.(*image.Gray); ok {
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
		return gray
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.SetGray(x-bounds.Min.X, y-bounds.Min.Y, opaqueGray(img.At(x, y)))
		}
	}
	return gray
}

func opaqueGray(c color.Color) color.Gray {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.GrayModel.Convert(color.NRGBA{R: n.R, G: n.G, B: n.B, A: 0xff}).(color.Gray)
}
