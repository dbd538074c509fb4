package imp

import (
	"errors"
	"image"
	"math"
)

// Normalize linearly stretches a grayscale image so that its darkest and
// brightest samples map to 0 and 255. A constant (or empty) image is copied
// unchanged, since there is no intensity range to stretch.
func Normalize(src, dst *image.Gray) error {
	if src.Bounds() != dst.Bounds() {
		return errors.New("src and dst should have the same bounds")
	}

	hist := HistogramOf(src)
	lo, hi, ok := hist.Levels()
	if !ok || lo == hi {
		copyGray(src, dst)
		return nil
	}

	span := float64(hi - lo)
	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := src.GrayAt(x, y)
			c.Y = uint8(math.Round(float64((int(c.Y)-lo)*255) / span))
			dst.SetGray(x, y, c)
		}
	}
	return nil
}
