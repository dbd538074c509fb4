package imp

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxLevelDiff(a, b *image.Gray) int {
	max := 0
	rect := a.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			d := int(a.GrayAt(x, y).Y) - int(b.GrayAt(x, y).Y)
			if d < 0 {
				d = -d
			}
			if d > max {
				max = d
			}
		}
	}
	return max
}

func TestGammaKnownValues(t *testing.T) {
	src := testRaster()
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Gamma(src, dst, 2.0))

	// round(255 * (v/255)^2) for v in {10, 50, 100, 200}
	expected := map[uint8]uint8{10: 0, 50: 10, 100: 39, 200: 157}
	h := HistogramOf(dst)
	for in, out := range expected {
		assert.Equal(t, 4, h[out], "level %d should map to %d", in, out)
	}
	assert.Equal(t, src.Bounds(), dst.Bounds(), "shape should be preserved")
}

func TestGammaIdentity(t *testing.T) {
	src := testRaster()
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Gamma(src, dst, 1.0))
	assert.Equal(t, 0, maxLevelDiff(src, dst), "gamma=1 should be the identity")
}

func TestGammaRejectsInvalidValues(t *testing.T) {
	src := testRaster()
	dst := image.NewGray(src.Bounds())
	assert.Error(t, Gamma(src, dst, 0), "gamma=0 is invalid")
	assert.Error(t, Gamma(src, dst, -0.5), "negative gamma is invalid")
}

func TestGammaDoesNotMutateSource(t *testing.T) {
	src := testRaster()
	want := testRaster()
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Gamma(src, dst, 0.4))
	assert.Equal(t, 0, maxLevelDiff(src, want), "source should be left untouched")
}

func TestBoundsMismatch(t *testing.T) {
	src := testRaster()
	dst := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.Error(t, Gamma(src, dst, 0.5))
	assert.Error(t, Equalize(src, dst))
	assert.Error(t, Normalize(src, dst))
}

func TestEqualizeSpreadsRange(t *testing.T) {
	src := testRaster()
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Equalize(src, dst))

	h := HistogramOf(dst)
	_, hi, ok := h.Levels()
	require.True(t, ok)
	assert.Equal(t, 255, hi, "the brightest band should reach 255")
	assert.Equal(t, 16, h.Total(), "sample count should be preserved")
}

func TestEqualizeUniformIsIdentity(t *testing.T) {
	src := grayImage([][]uint8{{42, 42}, {42, 42}})
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Equalize(src, dst))
	assert.Equal(t, 0, maxLevelDiff(src, dst), "uniform input should map to itself")
}

func TestEqualizeNearIdempotentOnFlatHistogram(t *testing.T) {
	// 16x16 image containing each of the 256 levels exactly once.
	src := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(y*16 + x)})
		}
	}
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Equalize(src, dst))
	assert.LessOrEqual(t, maxLevelDiff(src, dst), 1,
		"an already flat histogram should change by at most rounding error")
}

func TestNormalizeStretches(t *testing.T) {
	src := grayImage([][]uint8{{50, 100}, {150, 150}})
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Normalize(src, dst))

	h := HistogramOf(dst)
	assert.Equal(t, 1, h[0], "darkest sample should map to 0")
	assert.Equal(t, 2, h[255], "brightest samples should map to 255")
	assert.Equal(t, 1, h[128], "(100-50)*255/100 rounds to 128")
}

func TestNormalizeRoundsExactMidpointsUp(t *testing.T) {
	// 50*255/100 is exactly 127.5 and must round to 128; a precomputed
	// 255/span factor lands at 127.49999999999999 instead.
	src := grayImage([][]uint8{{0, 50}, {100, 100}})
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Normalize(src, dst))

	h := HistogramOf(dst)
	assert.Equal(t, 1, h[0])
	assert.Equal(t, 1, h[128], "the exact midpoint should round up")
	assert.Equal(t, 2, h[255])
}

func TestNormalizeConstantIsIdentity(t *testing.T) {
	src := grayImage([][]uint8{{9, 9}, {9, 9}})
	dst := image.NewGray(src.Bounds())
	require.NoError(t, Normalize(src, dst))
	assert.Equal(t, 0, maxLevelDiff(src, dst), "constant input should map to itself")
}

func TestMethodApply(t *testing.T) {
	src := testRaster()

	for _, m := range Methods() {
		out, err := m.Apply(src, 2.0)
		require.NoError(t, err, "%s should apply cleanly", m)
		assert.Equal(t, src.Bounds(), out.Bounds(), "%s should preserve shape", m)
	}
}

func TestMethodGammaContrastReachesFullRange(t *testing.T) {
	src := testRaster()
	out, err := GammaContrast.Apply(src, 2.0)
	require.NoError(t, err)

	// gamma=2 maps the bands to {0, 10, 39, 157}; the stretch then rescales
	// [0, 157] to [0, 255].
	h := HistogramOf(out)
	assert.Equal(t, 4, h[0])
	assert.Equal(t, 4, h[16])
	assert.Equal(t, 4, h[63])
	assert.Equal(t, 4, h[255])
}

func TestMethodApplyRejectsInvalidGamma(t *testing.T) {
	src := testRaster()
	_, err := GammaCorrection.Apply(src, -1)
	assert.Error(t, err)

	// equalization takes no parameters, so gamma is ignored
	_, err = HistogramEqualization.Apply(src, -1)
	assert.NoError(t, err)
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		parsed, err := ParseMethod(m.Slug())
		require.NoError(t, err)
		assert.Equal(t, m, parsed, "slug should round-trip")

		parsed, err = ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed, "display name should round-trip")
	}

	_, err := ParseMethod("sharpen")
	assert.Error(t, err, "unknown methods should be rejected")
}

func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "Histogram Equalization", HistogramEqualization.Label(0.6))
	assert.Equal(t, "Gamma Correction (gamma=0.60)", GammaCorrection.Label(0.6))
}
