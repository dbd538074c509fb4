package imp

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Gamma applies power-law (gamma) correction to a grayscale image:
// out = 255 * (in/255)^gamma, rounded and clamped to [0, 255]. Values of
// gamma below 1 brighten the image, values above 1 darken it. The mapping
// is evaluated once per level through a 256-entry lookup table.
func Gamma(src, dst *image.Gray, gamma float64) error {
	if gamma <= 0 {
		return fmt.Errorf("gamma should be positive, got %g", gamma)
	}
	if src.Bounds() != dst.Bounds() {
		return errors.New("src and dst should have the same bounds")
	}

	var lut [256]uint8
	for i := range lut {
		lut[i] = clamp8(255 * math.Pow(float64(i)/255, gamma))
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

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
