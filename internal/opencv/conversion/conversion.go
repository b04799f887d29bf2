package conversion

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ConvertToGrayscale converts multi-channel images to single-channel grayscale.
// The caller owns the returned Mat.
func ConvertToGrayscale(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot convert empty Mat to grayscale")
	}

	dst := gocv.NewMat()
	switch src.Channels() {
	case 1:
		src.CopyTo(&dst)
	case 3:
		gocv.CvtColor(src, &dst, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(src, &dst, gocv.ColorBGRAToGray)
	default:
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("unsupported channel count: %d", src.Channels())
	}

	return dst, nil
}

// ResizeSquare resizes src to size x size. The caller owns the returned Mat.
func ResizeSquare(src gocv.Mat, size int, interpolation gocv.InterpolationFlags) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot resize empty Mat")
	}

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Point{X: size, Y: size}, 0, 0, interpolation)
	if dst.Rows() != size || dst.Cols() != size {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("resize produced %dx%d, want %dx%d", dst.Cols(), dst.Rows(), size, size)
	}
	return dst, nil
}

// MatToGray copies a single-channel 8-bit Mat into a Go grayscale image.
func MatToGray(src gocv.Mat) (*image.Gray, error) {
	if src.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("expected 8-bit single-channel Mat, got type %v", src.Type())
	}

	rows, cols := src.Rows(), src.Cols()
	data := src.ToBytes()
	if len(data) != rows*cols {
		return nil, fmt.Errorf("mat holds %d bytes, want %d", len(data), rows*cols)
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	copy(img.Pix, data)
	return img, nil
}
