// Package resizer resizes raster images to exact dimensions
// and reports basic image metadata.
package resizer

import (
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/akeil/resizer/internal/logging"
)

// Decoder reads and decodes the image file at the given path.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// Resampler creates a new image, scaled to width x height.
type Resampler interface {
	Resample(i image.Image, width, height int) image.Image
}

// Encoder encodes an image and writes it to the given path.
// The image format is chosen from the path's extension.
type Encoder interface {
	Encode(i image.Image, path string) error
}

// Resizer executes commands against a Decoder, Resampler and Encoder
// and prints results to its output.
type Resizer struct {
	decoder   Decoder
	resampler Resampler
	encoder   Encoder
	out       io.Writer
}

// New creates a Resizer which prints results to out.
func New(d Decoder, r Resampler, e Encoder, out io.Writer) *Resizer {
	return &Resizer{
		decoder:   d,
		resampler: r,
		encoder:   e,
		out:       out,
	}
}

// Run validates and executes the given command.
//
// Invalid commands fail with an argument error before any file is read.
// Unreadable input fails with a decode error,
// a failure to save the result with an encode error.
func (r *Resizer) Run(cmd Command) error {
	err := cmd.Validate()
	if err != nil {
		return err
	}

	switch c := cmd.(type) {
	case ResizeCommand:
		return r.resize(c)
	case InfoCommand:
		return r.info(c)
	default:
		return NewArgumentError("unsupported command %T", cmd)
	}
}

func (r *Resizer) resize(c ResizeCommand) error {
	src, err := r.decode(c.Input)
	if err != nil {
		return err
	}

	start := time.Now()
	dst := r.resampler.Resample(src, int(c.Width), int(c.Height))
	logging.Info("Resized %q from %v to %v in %v", c.Input, size(src), size(dst), time.Since(start))

	err = r.encoder.Encode(dst, c.Output)
	if err != nil {
		logging.Debug("Failed to save %q: %v", c.Output, err)
		return newEncodeError(c.Output, err)
	}
	logging.Debug("Saved %q", c.Output)

	fmt.Fprintf(r.out, "Resized image size: %v\n", size(dst))
	return nil
}

func (r *Resizer) info(c InfoCommand) error {
	i, err := r.decode(c.Input)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Image dimensions: %v\n", size(i))
	fmt.Fprintf(r.out, "Image color type: %v\n", ColorTypeOf(i))
	return nil
}

func (r *Resizer) decode(path string) (image.Image, error) {
	logging.Debug("Decode %q", path)
	i, err := r.decoder.Decode(path)
	if err != nil {
		logging.Debug("Failed to decode %q: %v", path, err)
		return nil, newDecodeError(path, err)
	}
	return i, nil
}

// size formats the dimensions of an image as WIDTHxHEIGHT.
func size(i image.Image) string {
	b := i.Bounds()
	return fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
}

// SetLogLevel sets the verbosity for diagnostic output.
// Valid levels are "debug", "info", "warning" and "error";
// anything else disables logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}

// SetLogOutput directs diagnostic output to w instead of stderr.
func SetLogOutput(w io.Writer) {
	logging.SetOutput(w)
}
