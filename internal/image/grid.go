package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/placement"
)

// GridGutter is the line width between grid cells, in print pixels.
const GridGutter = 2

// GridLayout splits a w×h canvas into cells for count images (2→2×1, 3→3×1,
// 4→2×2) separated by gutter-wide lines. The last row and column absorb the
// rounding remainder so the cells tile the canvas exactly.
func GridLayout(w, h, count, gutter int) (cells, gutters []image.Rectangle) {
	rows, cols := design.GridShape(count)
	xs := splitSpan(0, w, cols, gutter)
	ys := splitSpan(0, h, rows, gutter)
	for _, y := range ys {
		for _, x := range xs {
			cells = append(cells, image.Rect(x[0], y[0], x[1], y[1]))
		}
	}
	for i := 1; i < len(xs); i++ {
		gutters = append(gutters, image.Rect(xs[i-1][1], 0, xs[i][0], h))
	}
	for i := 1; i < len(ys); i++ {
		gutters = append(gutters, image.Rect(0, ys[i-1][1], w, ys[i][0]))
	}
	return cells, gutters
}

// splitSpan divides [from, to) into n spans separated by gap.
func splitSpan(from, to, n, gap int) [][2]int {
	if n < 1 {
		n = 1
	}
	size := (to - from - gap*(n-1)) / n
	out := make([][2]int, n)
	start := from
	for i := range out {
		end := start + size
		if i == n-1 {
			end = to
		}
		out[i] = [2]int{start, end}
		start = end + gap
	}
	return out
}

// ScaledGutter is the gutter width for a canvas w pixels wide, so previews
// keep the print proportions.
func ScaledGutter(w int) int {
	return max(1, int(math.Round(float64(GridGutter)*float64(w)/ReferenceWidth)))
}

// Slot is one image placed by a template. A nil Image leaves a gap.
type Slot struct {
	Image     image.Image
	Transform design.Transform
}

// DrawGrid places slots into a count-image grid and paints the gutters in
// border after the cells.
func DrawGrid(dst *image.NRGBA, slots []Slot, count, gutter int, border color.Color) {
	b := dst.Bounds()
	cells, gutters := GridLayout(b.Dx(), b.Dy(), count, gutter)
	for i, cell := range cells {
		if i >= len(slots) || slots[i].Image == nil {
			continue
		}
		PlaceInCell(dst, cell.Add(b.Min), slots[i].Image, slots[i].Transform)
	}
	for _, g := range gutters {
		FillRect(dst, g.Add(b.Min), border)
	}
}

// DrawSingle places one image over the whole canvas, clipped by mask.
func DrawSingle(dst *image.NRGBA, slot Slot, mask image.Image) {
	if slot.Image == nil {
		return
	}
	b := dst.Bounds()
	sb := slot.Image.Bounds()
	m := placement.SingleImageMatrix(float64(b.Dx()), float64(b.Dy()), sb.Dx(), sb.Dy(), slot.Transform)
	DrawTransformed(dst, m, slot.Image, mask)
}
