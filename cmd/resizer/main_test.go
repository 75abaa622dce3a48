package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/resizer"
	"github.com/akeil/resizer/internal/imaging"
)

// writeFixture encodes a width x height JPEG into dir.
func writeFixture(t *testing.T, dir string, width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 96, A: 255})
		}
	}

	path := filepath.Join(dir, "test_image.jpeg")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func invoke(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, newResizer)
	return code, stdout.String(), stderr.String()
}

func TestResize(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, 1080, 1005)
	output := filepath.Join(dir, "resized.png")

	code, stdout, stderr := invoke("resize", input, "800", "600", "--output", output)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Resized image size: 800x600\n", stdout)

	img, err := imaging.Open(output)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

// Resizing an already resized image to the same size keeps the dimensions.
// Pixels may differ slightly from a single resize, which is expected.
func TestResizeTwice(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, 1080, 1005)
	first := filepath.Join(dir, "first.jpg")
	second := filepath.Join(dir, "second.jpg")

	code, _, stderr := invoke("resize", input, "800", "600", "-o", first)
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := invoke("resize", first, "800", "600", "-o", second)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Resized image size: 800x600\n", stdout)

	img, err := imaging.Open(second)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
}

func TestResizeIgnoresAspectRatio(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, 120, 40)

	for _, dims := range [][2]string{{"40", "120"}, {"300", "7"}, {"1", "1"}} {
		output := filepath.Join(dir, "out_"+dims[0]+"x"+dims[1]+".webp")
		code, stdout, stderr := invoke("resize", input, dims[0], dims[1], "-o", output)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "Resized image size: "+dims[0]+"x"+dims[1]+"\n", stdout)
	}
}

func TestInfo(t *testing.T) {
	input := writeFixture(t, t.TempDir(), 1080, 1005)

	code, stdout, stderr := invoke("info", input)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Image dimensions: 1080x1005\nImage color type: Rgb8\n", stdout)
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.png")

	code, stdout, stderr := invoke("info", missing)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to decode")

	output := filepath.Join(dir, "out.png")
	code, stdout, stderr = invoke("resize", missing, "10", "10", "-o", output)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to decode")

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no output should be written")
}

func TestUnsupportedOutputFormat(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, 64, 48)
	output := filepath.Join(dir, "out.xyz")

	code, stdout, stderr := invoke("resize", input, "32", "24", "-o", output)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to save")

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no output should be written")
}

// Both dimensions zero yields an empty image, which PNG cannot store.
func TestResizeZeroTarget(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, 64, 48)

	code, _, stderr := invoke("resize", input, "0", "0", "-o", filepath.Join(dir, "empty.png"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to save")

	// a single zero keeps the aspect ratio
	code, stdout, stderr := invoke("resize", input, "0", "24", "-o", filepath.Join(dir, "half.png"))
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Resized image size: 32x24\n", stdout)
}

type counting struct {
	decoded, resampled, encoded int
}

func (c *counting) Decode(path string) (image.Image, error) {
	c.decoded++
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func (c *counting) Resample(i image.Image, width, height int) image.Image {
	c.resampled++
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *counting) Encode(i image.Image, path string) error {
	c.encoded++
	return nil
}

func TestArgumentErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"resize", "in.png", "abc", "600", "--output", "out.png"},
		{"resize", "in.png", "800", "6.5", "--output", "out.png"},
		{"resize", "in.png", "-800", "600", "--output", "out.png"},
		{"resize", "in.png", "800", "600"},
		{"resize", "in.png", "800"},
		{"resize", "in.png", "800", "600", "-o", "out.png", "--quality", "0"},
		{"info"},
		{"info", "a.png", "b.png"},
		{"convert", "in.png"},
		{"in.png", "800", "600"},
		{"--log-level", "debug"},
	}

	for _, args := range cases {
		c := &counting{}
		build := func(s settings, out io.Writer) *resizer.Resizer {
			return resizer.New(c, c, c, out)
		}

		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr, build)

		assert.Equal(t, 1, code, "exit code for %q", args)
		assert.Empty(t, stdout.String(), "stdout for %q", args)
		assert.Contains(t, stderr.String(), "Error:", "stderr for %q", args)
		assert.Contains(t, stderr.String(), "usage:", "stderr for %q", args)
		assert.Zero(t, c.decoded+c.resampled+c.encoded, "no I/O expected for %q", args)
	}
}

func TestParseArgs(t *testing.T) {
	cmd, s, err := parseArgs([]string{"--log-level", "debug", "resize", "a.jpg", "800", "600", "-o", "b.png", "-q", "80"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, resizer.ResizeCommand{Input: "a.jpg", Width: 800, Height: 600, Output: "b.png"}, cmd)
	assert.Equal(t, "debug", s.logLevel)
	assert.Equal(t, 80, s.quality)

	_, s, err = parseArgs([]string{"resize", "a.jpg", "8", "6", "-o", "b.jpg"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, imaging.DefaultQuality, s.quality)

	cmd, s, err = parseArgs([]string{"info", "a.jpg"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, resizer.InfoCommand{Input: "a.jpg"}, cmd)
	assert.Equal(t, "warning", s.logLevel)

	_, _, err = parseArgs([]string{"--log-level", "loud", "info", "a.jpg"}, io.Discard)
	assert.True(t, resizer.IsArgumentError(err))
}

func TestHelp(t *testing.T) {
	code, stdout, stderr := invoke("--help")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "resize")
	assert.Contains(t, stderr, "info")

	code, _, _ = invoke("--log-level", "debug", "--help")
	assert.Equal(t, 0, code)
}

func TestHelpRequested(t *testing.T) {
	assert.True(t, helpRequested([]string{"--help"}))
	assert.True(t, helpRequested([]string{"--log-level", "debug", "-h"}))
	assert.True(t, helpRequested([]string{"--version"}))
	assert.True(t, helpRequested([]string{"help", "resize"}))
	assert.False(t, helpRequested([]string{"--log-level", "debug"}))
	assert.False(t, helpRequested([]string{"info", "--", "--help"}))
}
