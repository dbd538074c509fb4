package imp

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read reads an image from an io.Reader. Importing the imaging package
// registers decoders for png, jpeg, gif, tiff and bmp.
func Read(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Save creates a file and writes an image to it. The encoder is chosen from
// the file extension (png, jpg, gif, tif, bmp).
func Save(filename string, img image.Image) error {
	return imaging.Save(img, filename, imaging.JPEGQuality(100))
}
