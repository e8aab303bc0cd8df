// Package placement is the coordinate mapping shared by the compositor and the
// editor surface. Percent transforms, masked-area anchors and overlay scale all
// come from here so preview and print agree on where things land.
package placement

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/layout"
)

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Matrix maps source pixels to destination pixels:
// (x, y) -> (m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]).
type Matrix = f64.Aff3

var IdentityMatrix = Matrix{1, 0, 0, 0, 1, 0}

func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, tx, 0, 1, ty}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0}
}

// Rotate turns clockwise by deg on screen (y grows downward).
func Rotate(deg float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Matrix{c, -s, 0, s, c, 0}
}

// Mul composes matrices so that the rightmost is applied first.
func Mul(ms ...Matrix) Matrix {
	out := IdentityMatrix
	for _, m := range ms {
		out = Matrix{
			out[0]*m[0] + out[1]*m[3], out[0]*m[1] + out[1]*m[4], out[0]*m[2] + out[1]*m[5] + out[2],
			out[3]*m[0] + out[4]*m[3], out[3]*m[1] + out[4]*m[4], out[3]*m[2] + out[4]*m[5] + out[5],
		}
	}
	return out
}

func Apply(m Matrix, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// FitContain scales a srcW×srcH image to fit inside boxW×boxH, keeping aspect.
func FitContain(srcW, srcH int, boxW, boxH float64) (w, h float64) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	k := math.Min(boxW/float64(srcW), boxH/float64(srcH))
	return float64(srcW) * k, float64(srcH) * k
}

// SingleImageMatrix places a full-canvas image: translate to the canvas
// centre, apply the user scale, then offset by percent of the canvas, and draw
// the fitted image centred on that point. The offset is applied after the
// scale, so it is scaled with it.
func SingleImageMatrix(canvasW, canvasH float64, srcW, srcH int, t design.Transform) Matrix {
	fitW, fitH := FitContain(srcW, srcH, canvasW, canvasH)
	return Mul(
		Translate(canvasW/2, canvasH/2),
		Scale(t.Scale, t.Scale),
		Translate(t.X/100*canvasW, t.Y/100*canvasH),
		Translate(-fitW/2, -fitH/2),
		Scale(fitW/float64(srcW), fitH/float64(srcH)),
	)
}

// CellImageMatrix places an image in a grid or film cell. It is the same
// composition as SingleImageMatrix except the offset is a percent of the
// fitted image size, matching a CSS scale-then-translate.
func CellImageMatrix(cell Rect, srcW, srcH int, t design.Transform) Matrix {
	fitW, fitH := FitContain(srcW, srcH, cell.Width, cell.Height)
	c := cell.Center()
	return Mul(
		Translate(c.X, c.Y),
		Scale(t.Scale, t.Scale),
		Translate(t.X/100*fitW, t.Y/100*fitH),
		Translate(-fitW/2, -fitH/2),
		Scale(fitW/float64(srcW), fitH/float64(srcH)),
	)
}

// MaskedArea is the printable content rectangle of a w×h canvas. Sticker and
// text positions are percentages of this rectangle, not of the canvas.
func MaskedArea(l layout.PhoneLayout, w, h float64) Rect {
	c := l.ContentArea
	return Rect{
		X:      c.Left / 100 * w,
		Y:      c.Top / 100 * h,
		Width:  c.Width() / 100 * w,
		Height: c.Height() / 100 * h,
	}
}

// Anchor converts a percent position inside area to canvas pixels.
func Anchor(area Rect, p design.Position) Point {
	return Point{
		X: area.X + p.X/100*area.Width,
		Y: area.Y + p.Y/100*area.Height,
	}
}

// OverlayScale converts preview-pixel font and sticker sizes to print pixels.
func OverlayScale(canvasW float64) float64 {
	return math.Max(4.5, canvasW/300)
}

// CenteredRotation places a w×h block centred on at, rotated by deg about its
// own centre.
func CenteredRotation(at Point, w, h, deg float64) Matrix {
	return Mul(
		Translate(at.X, at.Y),
		Rotate(deg),
		Translate(-w/2, -h/2),
	)
}

// DragTransform updates t for a drag of (dx, dy) output pixels. refW and refH
// are what the offset percentages refer to: the canvas for a full-canvas
// image, the fitted image size for a grid cell. The scale applied to offsets
// is divided back out.
func DragTransform(t design.Transform, dx, dy, refW, refH float64) design.Transform {
	if t.Scale == 0 || refW == 0 || refH == 0 {
		return t
	}
	t.X += dx / (t.Scale * refW) * 100
	t.Y += dy / (t.Scale * refH) * 100
	return t
}

// ZoomTransform multiplies the scale, clamped to the editor's range.
func ZoomTransform(t design.Transform, factor float64) design.Transform {
	t.Scale = math.Max(design.MinScale, math.Min(design.MaxScale, t.Scale*factor))
	return t
}
