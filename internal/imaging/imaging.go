package imaging

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	imglib "github.com/disintegration/imaging"

	"github.com/akeil/resizer/internal/fs"
	"github.com/akeil/resizer/internal/logging"
)

// DefaultQuality is the JPEG and WebP quality used when none is given.
const DefaultQuality = 95

// Open decodes the image file at path.
// The image keeps the pixel format of its encoding.
func Open(path string) (image.Image, error) {
	return imglib.Open(path)
}

// Resize creates a copy of the given image, scaled to exactly width x height
// with a Gaussian kernel. The aspect ratio is not preserved.
//
// If one of width or height is zero, the other is derived from the aspect ratio.
// If both are zero, the result is an empty image.
func Resize(i image.Image, width, height int) image.Image {
	return imglib.Resize(i, width, height, imglib.Gaussian)
}

type encodeFunc func(w io.Writer, i image.Image) error

// encoderFor selects an encoder from the extension of path.
func encoderFor(path string, quality int) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".webp" {
		return func(w io.Writer, i image.Image) error {
			return webp.Encode(w, i, &webp.Options{Quality: float32(quality)})
		}, nil
	}

	f, err := imglib.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}
	return func(w io.Writer, i image.Image) error {
		return imglib.Encode(w, i, f, imglib.JPEGQuality(quality))
	}, nil
}

// Save encodes the image in the format given by the extension of path
// and writes it to path.
//
// The image is written to a temporary file first and moved into place
// when encoding succeeds; a failed save leaves no file behind.
func Save(i image.Image, path string, quality int) error {
	enc, err := encoderFor(path, quality)
	if err != nil {
		return err
	}

	tmp := fs.TempName(path)
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	err = enc(f, i)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logging.Warning("Failed to remove temporary file %v: %v", tmp, rmErr)
		}
		return err
	}

	err = fs.Move(tmp, path)
	if err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			logging.Warning("Failed to remove temporary file %v: %v", tmp, rmErr)
		}
		return err
	}
	return nil
}

// Codec decodes and encodes image files.
type Codec struct {
	// Quality for lossy formats, 1..100.
	Quality int
}

// Decode implements resizer.Decoder.
func (c Codec) Decode(path string) (image.Image, error) {
	return Open(path)
}

// Encode implements resizer.Encoder.
func (c Codec) Encode(i image.Image, path string) error {
	q := c.Quality
	if q == 0 {
		q = DefaultQuality
	}
	return Save(i, path, q)
}

// Gaussian is a resizer.Resampler using Resize.
type Gaussian struct{}

// Resample implements resizer.Resampler.
func (Gaussian) Resample(i image.Image, width, height int) image.Image {
	return Resize(i, width, height)
}
