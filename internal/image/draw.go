package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/placement"
)

// DrawTransformed draws src onto dst through m, which maps source pixels to
// destination pixels. A non-nil mask (in dst coordinates) clips the draw.
// Large downscales are pre-resized with Lanczos so the bilinear pass does not
// alias.
func DrawTransformed(dst draw.Image, m placement.Matrix, src image.Image, mask image.Image) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	// Matrices are built against a zero-origin source.
	m = placement.Mul(m, placement.Translate(-float64(b.Min.X), -float64(b.Min.Y)))
	src, m = prescale(src, m)

	var opts *draw.Options
	if mask != nil {
		opts = &draw.Options{DstMask: mask}
	}
	draw.BiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, opts)
}

func prescale(src image.Image, m placement.Matrix) (image.Image, placement.Matrix) {
	sx := math.Hypot(m[0], m[3])
	sy := math.Hypot(m[1], m[4])
	if sx >= 0.5 && sy >= 0.5 {
		return src, m
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rw := max(1, int(math.Round(float64(w)*sx)))
	rh := max(1, int(math.Round(float64(h)*sy)))
	resized := imaging.Resize(src, rw, rh, imaging.Lanczos)
	return resized, placement.Mul(m, placement.Scale(float64(w)/float64(rw), float64(h)/float64(rh)))
}

// FillRect paints r with a solid colour, replacing what was there.
func FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func subImage(dst *image.NRGBA, r image.Rectangle) *image.NRGBA {
	return dst.SubImage(r).(*image.NRGBA)
}

func toRect(r image.Rectangle) placement.Rect {
	return placement.Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// PlaceInCell fits img into cell with the grid transform convention and clips
// the draw to the cell.
func PlaceInCell(dst *image.NRGBA, cell image.Rectangle, img image.Image, t design.Transform) {
	b := img.Bounds()
	m := placement.CellImageMatrix(toRect(cell), b.Dx(), b.Dy(), t)
	DrawTransformed(subImage(dst, cell), m, img, nil)
}
