package imp

import (
	"errors"
	"image"
	"math"
)

// Equalize flattens the intensity distribution of a grayscale image: each
// level v is remapped to round(255*CDF(v)), where CDF is the cumulative
// distribution of the input histogram. A uniform or empty source is copied
// unchanged, since its CDF carries no usable spread.
func Equalize(src, dst *image.Gray) error {
	if src.Bounds() != dst.Bounds() {
		return errors.New("src and dst should have the same bounds")
	}

	hist := HistogramOf(src)
	lo, hi, ok := hist.Levels()
	if !ok || lo == hi {
		copyGray(src, dst)
		return nil
	}

	cdf := hist.CDF()
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(math.Round(255 * cdf[i]))
	}

	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := src.GrayAt(x, y)
			c.Y = lut[c.Y]
			dst.SetGray(x, y, c)
		}
	}
	return nil
}
