package imp

import (
	"fmt"
	"image"
	"strings"
)

// Method selects one of the supported enhancement transforms.
type Method int

const (
	HistogramEqualization Method = iota
	GammaCorrection
	GammaContrast
)

// DefaultGamma is the gamma value used when the user doesn't give one.
const DefaultGamma = 0.6

// Methods lists the supported methods in display order.
func Methods() []Method {
	return []Method{HistogramEqualization, GammaCorrection, GammaContrast}
}

func (m Method) String() string {
	switch m {
	case HistogramEqualization:
		return "Histogram Equalization"
	case GammaCorrection:
		return "Gamma Correction"
	case GammaContrast:
		return "Gamma + Contrast"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Slug returns a short name for the method, suitable for file names and
// command line flags.
func (m Method) Slug() string {
	switch m {
	case HistogramEqualization:
		return "equalize"
	case GammaCorrection:
		return "gamma"
	case GammaContrast:
		return "gamma-contrast"
	}
	return "unknown"
}

// UsesGamma reports whether the method takes a gamma parameter.
func (m Method) UsesGamma() bool {
	return m == GammaCorrection || m == GammaContrast
}

// Label returns the method name together with its parameters, as shown in
// status messages and reports.
func (m Method) Label(gamma float64) string {
	if m.UsesGamma() {
		return fmt.Sprintf("%s (gamma=%.2f)", m, gamma)
	}
	return m.String()
}

// ParseMethod resolves a method from its slug or display name.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equalize", "eq", "histogram equalization":
		return HistogramEqualization, nil
	case "gamma", "gamma correction":
		return GammaCorrection, nil
	case "gamma-contrast", "contrast", "gamma + contrast":
		return GammaContrast, nil
	}
	return 0, fmt.Errorf("unknown enhancement method %q", s)
}

// Apply runs the method on src and returns the enhanced image. The source
// is left untouched.
func (m Method) Apply(src *image.Gray, gamma float64) (*image.Gray, error) {
	dst := image.NewGray(src.Bounds())
	var err error
	switch m {
	case HistogramEqualization:
		err = Equalize(src, dst)
	case GammaCorrection:
		err = Gamma(src, dst, gamma)
	case GammaContrast:
		if err = Gamma(src, dst, gamma); err == nil {
			err = Normalize(dst, dst)
		}
	default:
		err = fmt.Errorf("unknown enhancement method %d", int(m))
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}
