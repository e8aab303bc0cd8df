package imagepkg

import (
	"image"
	"image/color"

	"github.com/youruser/caseprint/internal/placement"
)

// DrawImageSticker fits src into a size×size box centred on at and rotates
// it about its centre.
func DrawImageSticker(dst *image.NRGBA, src image.Image, at placement.Point, size, deg float64) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	fitW, fitH := placement.FitContain(w, h, size, size)
	if fitW <= 0 || fitH <= 0 {
		return
	}
	m := placement.Mul(
		placement.CenteredRotation(at, fitW, fitH, deg),
		placement.Scale(fitW/float64(w), fitH/float64(h)),
	)
	DrawTransformed(dst, m, src, nil)
}

// DrawGlyphSticker draws a glyph (usually an emoji or symbol) as text of the
// given size. Glyph stickers are not outlined.
func DrawGlyphSticker(dst *image.NRGBA, glyph string, fill color.NRGBA, at placement.Point, size, deg float64) error {
	return DrawTextAt(dst, glyph, TextStyle{Font: DefaultFont, Size: size, Fill: fill}, at, deg)
}
