package resizer

import (
	"image"
)

// ColorType describes the channel layout of a decoded image.
type ColorType int

// Color types, named after their channels and bits per channel.
const (
	Unknown ColorType = iota
	L8
	L16
	A8
	A16
	Rgb8
	Rgba8
	Rgba16
	Cmyk8
	Indexed8
)

var colorTypeNames = map[ColorType]string{
	Unknown:  "Unknown",
	L8:       "L8",
	L16:      "L16",
	A8:       "A8",
	A16:      "A16",
	Rgb8:     "Rgb8",
	Rgba8:    "Rgba8",
	Rgba16:   "Rgba16",
	Cmyk8:    "Cmyk8",
	Indexed8: "Indexed8",
}

func (c ColorType) String() string {
	name, ok := colorTypeNames[c]
	if !ok {
		return colorTypeNames[Unknown]
	}
	return name
}

// ColorTypeOf reports the color type of the given image,
// derived from its in-memory pixel format.
//
// JPEG images decode to YCbCr and are reported as Rgb8.
func ColorTypeOf(i image.Image) ColorType {
	switch i.(type) {
	case *image.Gray:
		return L8
	case *image.Gray16:
		return L16
	case *image.Alpha:
		return A8
	case *image.Alpha16:
		return A16
	case *image.YCbCr:
		return Rgb8
	case *image.NYCbCrA, *image.RGBA, *image.NRGBA:
		return Rgba8
	case *image.RGBA64, *image.NRGBA64:
		return Rgba16
	case *image.CMYK:
		return Cmyk8
	case *image.Paletted:
		return Indexed8
	default:
		return Unknown
	}
}
