package imp

import (
	"image"
)

// ToGray converts any image into a grayscale picture of the same size.
// Images that already are grayscale are returned as is.
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	model := dst.ColorModel()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, model.Convert(src.At(x, y)))
		}
	}
	return dst
}

func copyGray(src, dst *image.Gray) {
	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.SetGray(x, y, src.GrayAt(x, y))
		}
	}
}
