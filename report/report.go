package report

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/cveillard/radiant/imp"
)

// Page geometry, in PDF points on an A4 page.
const (
	margin    = 54.0
	gutter    = 24.0
	panelHigh = 290.0
	captionEm = 10.0
	titleEm   = 16.0
)

// Images larger than this are downscaled before they are embedded, so that
// reports stay a reasonable size.
const maxEmbedSize = 1024

// An Entry is one enhancement result to lay out against the original.
type Entry struct {
	Label string
	Image *image.Gray
}

// A Report lays out the original image, each enhancement result and their
// histograms into a paginated PDF document, one page per entry. The layout
// mirrors the on-screen view: images on the left, histograms on the right,
// original above enhanced.
type Report struct {
	Title    string
	Original *image.Gray
	Entries  []Entry
}

// WriteFile writes the report to path. The document is assembled in memory
// and moved into place afterwards, so a failed build never leaves a partial
// file behind.
func (r *Report) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.pdf")
	if err != nil {
		return errors.Wrap(err, "write report")
	}
	_, err = tmp.Write(buf.Bytes())
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write report")
	}
	return nil
}

// Write assembles the report and writes the PDF document to w.
func (r *Report) Write(w io.Writer) error {
	if r.Original == nil {
		return errors.New("report: no original image")
	}
	if len(r.Entries) == 0 {
		return errors.New("report: no results")
	}

	doc, err := document.WriteMultiPage(w, document.A4, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	titleFont := standard.TimesBold.New()
	bodyFont := standard.TimesRoman.New()

	origXObj := embed(r.Original)
	origHist := imp.HistogramOf(r.Original)

	for i, entry := range r.Entries {
		page := doc.AddPage()
		p := &pageWriter{
			Page:  page,
			paper: document.A4,
			title: titleFont,
			body:  bodyFont,
		}

		p.pageTitle(fmt.Sprintf("%s - %s", r.Title, entry.Label))

		top := p.paper.URy - margin - titleEm - gutter
		colWide := (p.paper.URx - 2*margin - gutter) / 2
		left := margin
		right := margin + colWide + gutter

		enhHist := imp.HistogramOf(entry.Image)
		p.imagePanel("Original", origXObj, r.Original, left, top, colWide)
		p.histogramPanel("Original Histogram", &origHist, right, top, colWide)

		top -= panelHigh + gutter
		p.imagePanel("Enhanced", embed(entry.Image), entry.Image, left, top, colWide)
		p.histogramPanel("Enhanced Histogram", &enhHist, right, top, colWide)

		p.pageNumber(i + 1)
		if err := page.Close(); err != nil {
			return err
		}
	}

	return doc.Close()
}

// embed wraps a grayscale image into a PDF image XObject, downscaling
// oversized inputs first.
func embed(img *image.Gray) *pdfimage.PNG {
	bounds := img.Bounds()
	if bounds.Dx() > maxEmbedSize || bounds.Dy() > maxEmbedSize {
		return &pdfimage.PNG{Data: imaging.Fit(img, maxEmbedSize, maxEmbedSize, imaging.Lanczos)}
	}
	return &pdfimage.PNG{Data: img}
}

// pageWriter draws the panels of a single report page.
type pageWriter struct {
	*document.Page
	paper *pdf.Rectangle
	title font.Font
	body  font.Font
}

func (p *pageWriter) pageTitle(s string) {
	p.TextBegin()
	p.TextSetFont(p.title, titleEm)
	p.TextFirstLine((p.paper.LLx+p.paper.URx)/2, p.paper.URy-margin-titleEm)
	p.TextShowAligned(s, 0, 0.5)
	p.TextEnd()
}

func (p *pageWriter) pageNumber(n int) {
	p.TextBegin()
	p.TextSetFont(p.body, captionEm)
	p.TextFirstLine((p.paper.LLx+p.paper.URx)/2, margin-20)
	p.TextShowAligned(fmt.Sprintf("- %d -", n), 0, 0.5)
	p.TextEnd()
}

// caption writes a centered panel caption with its baseline at y.
func (p *pageWriter) caption(s string, x, y, width float64) {
	p.TextBegin()
	p.TextSetFont(p.body, captionEm)
	p.TextFirstLine(x+width/2, y)
	p.TextShowAligned(s, 0, 0.5)
	p.TextEnd()
}

// imagePanel draws a captioned image, scaled to fit the panel box while
// preserving its aspect ratio, with an intensity statistics line below.
func (p *pageWriter) imagePanel(name string, obj *pdfimage.PNG, img *image.Gray, x, top, width float64) {
	p.caption(name, x, top, width)

	boxTop := top - captionEm
	boxHigh := panelHigh - 3*captionEm

	bounds := img.Bounds()
	q := float64(bounds.Dx()) / float64(bounds.Dy())
	w, h := width, width/q
	if h > boxHigh {
		w, h = boxHigh*q, boxHigh
	}

	p.PushGraphicsState()
	p.Transform(matrix.Translate(x+(width-w)/2, boxTop-h))
	p.Transform(matrix.Scale(w, h))
	p.DrawXObject(obj)
	p.PopGraphicsState()

	hist := imp.HistogramOf(img)
	stats := fmt.Sprintf("%dx%d px, mean %.1f, stddev %.1f",
		bounds.Dx(), bounds.Dy(), hist.Mean(), hist.StdDev())
	p.caption(stats, x, top-panelHigh+captionEm, width)
}

// histogramPanel draws a captioned 256-bin bar chart of hist, scaled so the
// tallest bin fills the plot height.
func (p *pageWriter) histogramPanel(name string, hist *imp.Histogram, x, top, width float64) {
	p.caption(name, x, top, width)

	plotTop := top - 2*captionEm
	plotHigh := panelHigh - 5*captionEm
	base := plotTop - plotHigh

	max := hist.MaxCount()
	if max > 0 {
		barWide := width / 256
		for i, n := range hist {
			if n == 0 {
				continue
			}
			barHigh := plotHigh * float64(n) / float64(max)
			p.Rectangle(x+float64(i)*barWide, base, barWide, barHigh)
		}
		p.Fill()
	}

	// axes
	p.SetLineWidth(0.5)
	p.MoveTo(x, plotTop)
	p.LineTo(x, base)
	p.LineTo(x+width, base)
	p.Stroke()

	p.TextBegin()
	p.TextSetFont(p.body, captionEm-2)
	p.TextFirstLine(x, base-captionEm)
	p.TextShow("0")
	p.TextEnd()
	p.TextBegin()
	p.TextSetFont(p.body, captionEm-2)
	p.TextFirstLine(x+width, base-captionEm)
	p.TextShowAligned("255", 0, 1)
	p.TextEnd()

	p.caption(fmt.Sprintf("Pixel Intensity (max count %d)", max),
		x, top-panelHigh+captionEm, width)
}
