package session

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/cveillard/radiant/imp"
	"github.com/cveillard/radiant/report"
)

// State tracks how far the current session has progressed.
type State int

const (
	NoImage State = iota
	ImageLoaded
	MethodSelected
	ResultReady
)

func (s State) String() string {
	switch s {
	case NoImage:
		return "no image loaded"
	case ImageLoaded:
		return "image loaded"
	case MethodSelected:
		return "method selected"
	case ResultReady:
		return "result ready"
	}
	return "unknown"
}

var (
	// ErrNoImage is returned when an action requires a loaded image.
	ErrNoImage = errors.New("no image loaded")
	// ErrNoMethod is returned when applying before selecting a method.
	ErrNoMethod = errors.New("no enhancement method selected")
	// ErrNoResult is returned when saving or reporting before an apply.
	ErrNoResult = errors.New("no result to save")
)

// A Result is one applied enhancement, labeled by its method.
type Result struct {
	Method imp.Method
	Gamma  float64
	Image  *image.Gray
}

// Label returns the method label with its parameters.
func (r Result) Label() string {
	return r.Method.Label(r.Gamma)
}

// A Session owns the state of the tool between user actions: the loaded
// image, the selected method and the enhancement results applied so far.
// Transforms never mutate the loaded image; every apply produces a fresh
// raster.
type Session struct {
	state   State
	name    string
	gray    *image.Gray
	method  imp.Method
	gamma   float64
	results []Result
	last    int
}

// New returns an empty session.
func New() *Session {
	return &Session{gamma: imp.DefaultGamma}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Name returns the base name (without extension) of the loaded image.
func (s *Session) Name() string {
	return s.name
}

// Original returns the loaded grayscale image, or nil.
func (s *Session) Original() *image.Gray {
	return s.gray
}

// Results returns the applied enhancements in apply order.
func (s *Session) Results() []Result {
	return s.results
}

// Current returns the most recently applied result.
func (s *Session) Current() (Result, bool) {
	if s.state != ResultReady {
		return Result{}, false
	}
	return s.results[s.last], true
}

// Load reads an image file, converts it to grayscale and resets any earlier
// results. The session is left unchanged when the file cannot be read.
func (s *Session) Load(path string) error {
	img, err := imp.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	s.gray = imp.ToGray(img)
	s.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s.results = nil
	s.last = 0
	s.state = ImageLoaded
	return nil
}

// Select chooses the enhancement method for the next apply. The gamma value
// is validated only for methods that use it.
func (s *Session) Select(m imp.Method, gamma float64) error {
	if s.state == NoImage {
		return ErrNoImage
	}
	if m.UsesGamma() {
		if gamma <= 0 {
			return errors.Errorf("gamma should be positive, got %g", gamma)
		}
		s.gamma = gamma
	}
	s.method = m
	if s.state == ImageLoaded {
		s.state = MethodSelected
	}
	return nil
}

// Apply runs the selected method on the loaded image and stores the result.
// Re-applying a method replaces its previous result.
func (s *Session) Apply() error {
	switch s.state {
	case NoImage:
		return ErrNoImage
	case ImageLoaded:
		return ErrNoMethod
	}

	enhanced, err := s.method.Apply(s.gray, s.gamma)
	if err != nil {
		return err
	}

	res := Result{Method: s.method, Gamma: s.gamma, Image: enhanced}
	s.last = -1
	for i := range s.results {
		if s.results[i].Method == res.Method {
			s.results[i] = res
			s.last = i
			break
		}
	}
	if s.last < 0 {
		s.results = append(s.results, res)
		s.last = len(s.results) - 1
	}
	s.state = ResultReady
	return nil
}

// SaveImage writes the most recent result to path, in the format given by
// the file extension.
func (s *Session) SaveImage(path string) error {
	res, ok := s.Current()
	if !ok {
		return s.notReady()
	}
	if err := imp.Save(path, res.Image); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// WriteReport assembles the PDF report for every applied result and writes
// it to path.
func (s *Session) WriteReport(path string) error {
	if s.state != ResultReady {
		return s.notReady()
	}
	rep := &report.Report{
		Title:    s.name,
		Original: s.gray,
	}
	for _, res := range s.results {
		rep.Entries = append(rep.Entries, report.Entry{
			Label: res.Label(),
			Image: res.Image,
		})
	}
	return rep.WriteFile(path)
}

func (s *Session) notReady() error {
	switch s.state {
	case NoImage:
		return ErrNoImage
	case ImageLoaded:
		return ErrNoMethod
	}
	return ErrNoResult
}
