package editor

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/youruser/caseprint/internal/clippath"
	"github.com/youruser/caseprint/internal/design"
	imagepkg "github.com/youruser/caseprint/internal/image"
	"github.com/youruser/caseprint/internal/layout"
	"github.com/youruser/caseprint/internal/placement"
)

// PhotoNode is the phone-back photograph behind the design.
type PhotoNode struct {
	Image image.Image
}

func (n *PhotoNode) render(dst *image.NRGBA, _ frame) error {
	imagepkg.DrawSingle(dst, imagepkg.Slot{Image: n.Image, Transform: design.DefaultTransform()}, nil)
	return nil
}

// ClipGroup holds the user's images. Single-image templates are clipped by
// the model's case outline; grid and film templates clip each image to its
// cell.
type ClipGroup struct {
	Template   design.Template
	Background color.NRGBA
	Border     color.NRGBA
	Images     []*ImageNode

	stage *Stage
}

func (g *ClipGroup) slots() []imagepkg.Slot {
	out := make([]imagepkg.Slot, g.Template.ImageCount)
	for i, n := range g.Images {
		if i < len(out) && n.Image != nil {
			out[i] = imagepkg.Slot{Image: n.Image, Transform: n.Transform}
		}
	}
	return out
}

// cells returns the cell rectangles of a grid or film template at a w×h size.
func (g *ClipGroup) cells(w, h int) []image.Rectangle {
	switch g.Template.Kind() {
	case design.KindGrid:
		cells, _ := imagepkg.GridLayout(w, h, g.Template.ImageCount, imagepkg.ScaledGutter(w))
		return cells
	case design.KindFilm:
		return imagepkg.NewFilmLayout(w, h, g.Template.ImageCount).Frames
	}
	return nil
}

// render paints the content layer. With a phone photo underneath, only the
// case outline is painted so the photo shows around it.
func (g *ClipGroup) render(dst *image.NRGBA, f frame) error {
	s := g.stage
	var mask *image.Alpha
	if s.Photo != nil || g.Template.Kind() == design.KindSingle {
		mask = clippath.Mask(clippath.BuildForID(s.family.ClipPathID, float64(f.w), float64(f.h)), f.w, f.h)
	}

	switch g.Template.Kind() {
	case design.KindGrid, design.KindFilm:
		layer := dst
		if s.Photo != nil {
			layer = image.NewNRGBA(dst.Bounds())
		}
		if g.Template.Kind() == design.KindGrid {
			imagepkg.FillRect(layer, layer.Bounds(), g.Background)
			imagepkg.DrawGrid(layer, g.slots(), g.Template.ImageCount, imagepkg.ScaledGutter(f.w), g.Border)
		} else {
			imagepkg.DrawFilm(layer, g.slots(), g.Template.ImageCount)
		}
		if layer != dst {
			b := dst.Bounds()
			draw.DrawMask(dst, b, layer, b.Min, mask, image.Point{}, draw.Over)
		}
	default:
		if s.Photo != nil {
			draw.DrawMask(dst, dst.Bounds(), image.NewUniform(g.Background), image.Point{}, mask, image.Point{}, draw.Over)
		} else {
			imagepkg.FillRect(dst, dst.Bounds(), g.Background)
		}
		imagepkg.DrawSingle(dst, g.slots()[0], mask)
	}
	return nil
}

// ImageNode is a draggable, zoomable user image.
type ImageNode struct {
	Image     image.Image
	Transform design.Transform

	stage *Stage
	index int
}

// Drag moves the image by (dx, dy) stage pixels.
func (n *ImageNode) Drag(dx, dy float64) {
	g := n.stage.Content
	if g.Template.Kind() == design.KindSingle {
		n.Transform = placement.DragTransform(n.Transform, dx, dy, n.stage.Width, n.stage.Height)
		return
	}
	w, h := n.stage.size(1)
	cells := g.cells(w, h)
	if n.index >= len(cells) || n.Image == nil {
		return
	}
	b := n.Image.Bounds()
	fitW, fitH := placement.FitContain(b.Dx(), b.Dy(), float64(cells[n.index].Dx()), float64(cells[n.index].Dy()))
	n.Transform = placement.DragTransform(n.Transform, dx, dy, fitW, fitH)
}

// Zoom multiplies the scale, clamped to the allowed range.
func (n *ImageNode) Zoom(factor float64) {
	n.Transform = placement.ZoomTransform(n.Transform, factor)
}

// Reset returns the image to fit-centred.
func (n *ImageNode) Reset() {
	n.Transform = design.DefaultTransform()
}

// StickerNode is a glyph or image sticker. Size is in stage pixels.
type StickerNode struct {
	Sticker design.Sticker
	Image   image.Image
}

func (n *StickerNode) render(dst *image.NRGBA, f frame) error {
	s := n.Sticker
	at := placement.Anchor(f.area, s.Position)
	size := s.Size * f.ratio
	switch s.Kind {
	case design.StickerImage:
		if n.Image == nil {
			return nil
		}
		imagepkg.DrawImageSticker(dst, n.Image, at, size, s.Rotation)
	case design.StickerGlyph:
		fill, err := imagepkg.ParseColor(s.Color)
		if err != nil {
			fill = color.NRGBA{A: 0xff}
		}
		if err := imagepkg.DrawGlyphSticker(dst, s.Glyph, fill, at, size, s.Rotation); err != nil {
			slog.Warn("skipping sticker", "id", s.ID, "error", err)
		}
	}
	return nil
}

// TextNode is one text element. FontSize is in stage pixels.
type TextNode struct {
	Element design.TextElement
}

func (n *TextNode) render(dst *image.NRGBA, f frame) error {
	el := n.Element
	fill, err := imagepkg.ParseColor(el.Color)
	if err != nil {
		fill = color.NRGBA{A: 0xff}
	}
	st := imagepkg.TextStyle{Font: el.Font, Size: el.FontSize * f.ratio, Fill: fill, Stroke: true}
	if err := imagepkg.DrawTextAt(dst, el.Text, st, placement.Anchor(f.area, el.Position), el.Rotation); err != nil {
		slog.Warn("skipping text", "id", el.ID, "error", err)
	}
	return nil
}

// MaskOverlayNode draws the model's raster mask (camera frame, case edge)
// over everything at its percent position.
type MaskOverlayNode struct {
	Image    image.Image
	Position layout.MaskPosition
}

func (n *MaskOverlayNode) render(dst *image.NRGBA, f frame) error {
	if n.Image == nil {
		return nil
	}
	b := n.Image.Bounds()
	if b.Empty() {
		return nil
	}
	p := n.Position
	x, y := p.X/100*float64(f.w), p.Y/100*float64(f.h)
	w, h := p.Width/100*float64(f.w), p.Height/100*float64(f.h)
	m := placement.Mul(
		placement.Translate(x, y),
		placement.Scale(w/float64(b.Dx()), h/float64(b.Dy())),
	)
	imagepkg.DrawTransformed(dst, m, n.Image, nil)
	return nil
}
