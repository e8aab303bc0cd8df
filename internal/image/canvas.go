package imagepkg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Print raster constants. Every print is ReferenceWidth pixels wide; the
// height follows the physical aspect ratio.
const (
	ReferenceWidth = 1390

	MinWidthMM     = 30.0
	MaxWidthMM     = 200.0
	MinHeightMM    = 100.0
	MaxHeightMM    = 300.0
	MinAspectRatio = 1.2
	MaxAspectRatio = 3.0
	MinCanvasH     = 1000
	MaxCanvasH     = 5000
)

// CanvasSize validates the catalog's physical size and returns the print
// raster size. There is no fallback: a wrong size would print stretched.
func CanvasSize(widthMM, heightMM float64) (int, int, error) {
	if widthMM <= 0 || heightMM <= 0 || math.IsNaN(widthMM) || math.IsNaN(heightMM) {
		return 0, 0, fmt.Errorf("%w: width_mm=%v height_mm=%v", ErrMissingDimensions, widthMM, heightMM)
	}
	if widthMM < MinWidthMM || widthMM > MaxWidthMM {
		return 0, 0, &DimensionError{Field: "width_mm", Value: widthMM, Min: MinWidthMM, Max: MaxWidthMM, Unit: "mm"}
	}
	if heightMM < MinHeightMM || heightMM > MaxHeightMM {
		return 0, 0, &DimensionError{Field: "height_mm", Value: heightMM, Min: MinHeightMM, Max: MaxHeightMM, Unit: "mm"}
	}
	ratio := heightMM / widthMM
	if ratio < MinAspectRatio || ratio > MaxAspectRatio {
		return 0, 0, &DimensionError{Field: "aspect_ratio", Value: ratio, Min: MinAspectRatio, Max: MaxAspectRatio}
	}
	h := int(math.Round(ratio * ReferenceWidth))
	if h < MinCanvasH || h > MaxCanvasH {
		return 0, 0, &DimensionError{Field: "canvas_height", Value: float64(h), Min: MinCanvasH, Max: MaxCanvasH, Unit: "px"}
	}
	return ReferenceWidth, h, nil
}

var namedColors = map[string]color.NRGBA{
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black": {A: 0xff},
	"red":   {R: 0xff, A: 0xff},
	"green": {G: 0x80, A: 0xff},
	"blue":  {B: 0xff, A: 0xff},
	"gray":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"pink":  {R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa and a few CSS names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("unsupported color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("unsupported color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// colorOr parses s, falling back to def for empty or bad input.
func colorOr(s string, def color.NRGBA) color.NRGBA {
	if strings.TrimSpace(s) == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

// opaque drops alpha; print rasters have no transparency.
func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// StrokeFor picks a black outline for light fills and a white one for dark.
func StrokeFor(fill color.NRGBA) color.NRGBA {
	lum := 0.299*float64(fill.R) + 0.587*float64(fill.G) + 0.114*float64(fill.B)
	if lum > 150 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
