package imagepkg

import (
	"image"
	"image/color"
	"math"
)

// Film strip geometry at ReferenceWidth. NewFilmLayout scales it to the
// width it is asked for so previews match the print.
const (
	FilmColumnWidth = 96
	FilmHoleWidth   = 44
	FilmHoleHeight  = 30
	FilmHolePitch   = 80
	FilmMargin      = 24
	FilmFrameGap    = 24
)

var (
	FilmBase      = color.NRGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff}
	FilmHoleColor = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
)

// FilmLayout is the geometry of a film-strip print: perforation holes down
// both side columns and frames stacked between them.
type FilmLayout struct {
	Frames []image.Rectangle
	Holes  []image.Rectangle
}

// NewFilmLayout lays out frames vertically between two perforation columns.
// Holes are spaced at FilmHolePitch and centred in their column; the run of
// holes is centred vertically so both ends look the same. All geometry is
// scaled by w/ReferenceWidth.
func NewFilmLayout(w, h, frames int) FilmLayout {
	var fl FilmLayout
	if frames < 1 {
		frames = 1
	}
	k := float64(w) / ReferenceWidth
	px := func(v float64) int { return int(math.Round(v * k)) }

	// Hole count is decided in reference units so every scale gets the same run.
	refH := float64(h) / k
	n := int((refH - FilmHolePitch + FilmHoleHeight) / FilmHolePitch)
	if n < 1 {
		n = 1
	}
	run := float64((n-1)*FilmHolePitch + FilmHoleHeight)
	top := (refH - run) / 2
	holeX := float64(FilmColumnWidth-FilmHoleWidth) / 2
	for _, colX := range []float64{0, ReferenceWidth - FilmColumnWidth} {
		x := colX + holeX
		for i := 0; i < n; i++ {
			y := top + float64(i*FilmHolePitch)
			fl.Holes = append(fl.Holes, image.Rect(
				px(x), px(y),
				max(px(x)+1, px(x+FilmHoleWidth)), max(px(y)+1, px(y+FilmHoleHeight)),
			))
		}
	}

	margin := max(1, px(FilmMargin))
	left := px(FilmColumnWidth + FilmMargin)
	right := w - left
	gap := max(1, px(FilmFrameGap))
	for _, span := range splitSpan(margin, h-margin, frames, gap) {
		fl.Frames = append(fl.Frames, image.Rect(left, span[0], right, span[1]))
	}
	return fl
}

// DrawFilm paints the film base and perforations and places slots into the
// frames.
func DrawFilm(dst *image.NRGBA, slots []Slot, count int) {
	b := dst.Bounds()
	FillRect(dst, b, FilmBase)
	fl := NewFilmLayout(b.Dx(), b.Dy(), count)
	for _, hole := range fl.Holes {
		FillRect(dst, hole.Add(b.Min), FilmHoleColor)
	}
	for i, frame := range fl.Frames {
		if i >= len(slots) || slots[i].Image == nil {
			continue
		}
		PlaceInCell(dst, frame.Add(b.Min), slots[i].Image, slots[i].Transform)
	}
}
