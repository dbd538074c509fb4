package imp

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// A Histogram counts how many samples of a grayscale image fall on each of
// the 256 intensity levels.
type Histogram [256]int

// HistogramOf computes the intensity histogram of img in a single pass.
func HistogramOf(img *image.Gray) Histogram {
	var h Histogram
	rect := img.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			h[img.GrayAt(x, y).Y]++
		}
	}
	return h
}

// Total returns the number of samples counted in the histogram.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// MaxCount returns the largest bin count. Plots are scaled against it.
func (h *Histogram) MaxCount() int {
	max := 0
	for _, n := range h {
		if n > max {
			max = n
		}
	}
	return max
}

// Levels returns the lowest and highest occupied intensity levels.
// ok is false when the histogram is empty.
func (h *Histogram) Levels() (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, n := range h {
		if n == 0 {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	return lo, hi, lo >= 0
}

// CDF returns the cumulative distribution of the histogram, normalized so
// that the last entry is 1. An empty histogram yields all zeros.
func (h *Histogram) CDF() [256]float64 {
	var cdf [256]float64
	total := h.Total()
	if total == 0 {
		return cdf
	}
	sum := 0
	for i, n := range h {
		sum += n
		cdf[i] = float64(sum) / float64(total)
	}
	return cdf
}

// Mean returns the mean intensity level of the underlying image.
func (h *Histogram) Mean() float64 {
	levels, weights := h.series()
	return stat.Mean(levels, weights)
}

// StdDev returns the intensity standard deviation of the underlying image.
func (h *Histogram) StdDev() float64 {
	levels, weights := h.series()
	return stat.StdDev(levels, weights)
}

func (h *Histogram) series() (levels, weights []float64) {
	levels = make([]float64, len(h))
	weights = make([]float64, len(h))
	for i, n := range h {
		levels[i] = float64(i)
		weights[i] = float64(n)
	}
	return levels, weights
}
