package report

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *Report {
	original := image.NewGray(image.Rect(0, 0, 4, 4))
	enhanced := image.NewGray(image.Rect(0, 0, 4, 4))
	levels := []uint8{10, 50, 100, 200}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			original.SetGray(x, y, color.Gray{Y: levels[y]})
			enhanced.SetGray(x, y, color.Gray{Y: 255 - levels[y]})
		}
	}
	return &Report{
		Title:    "scan",
		Original: original,
		Entries: []Entry{
			{Label: "Histogram Equalization", Image: enhanced},
			{Label: "Gamma Correction (gamma=0.60)", Image: enhanced},
		},
	}
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().Write(&buf))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"),
		"output should be a PDF document")
	assert.Greater(t, buf.Len(), 1000, "two pages of content should not be empty")

	// The original is embedded once and shared between pages, each result
	// adds its own image object.
	images := bytes.Count(buf.Bytes(), []byte("/Subtype/Image"))
	assert.Equal(t, 3, images, "each page should show the original and its result")
}

func TestWriteRejectsEmptyReport(t *testing.T) {
	rep := testReport()
	rep.Entries = nil
	assert.Error(t, rep.Write(&bytes.Buffer{}), "a report without results is rejected")

	rep = testReport()
	rep.Original = nil
	assert.Error(t, rep.Write(&bytes.Buffer{}), "a report needs the original image")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_report.pdf")
	require.NoError(t, testReport().WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestWriteFileLeavesNoPartialFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "scan_report.pdf")

	err := testReport().WriteFile(path)
	assert.Error(t, err, "writing into a missing directory should fail")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file should be left behind")
}

func TestWriteFileFailedBuildKeepsTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	rep := testReport()
	rep.Entries = nil
	assert.Error(t, rep.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data), "a failed build should not clobber the target")
}
