// Package editor is the retained scene behind the interactive design surface.
// A Stage is sized in preview pixels; ExportRasterAtScale re-renders the same
// nodes at a higher pixel ratio through the clip functions and placement math
// the compositor uses, so a preview crop matches the printed crop.
package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/layout"
	"github.com/youruser/caseprint/internal/placement"
)

// PreviewWidth is the stage width at which one preview pixel equals one
// overlay unit of the compositor.
const PreviewWidth = 300

var ErrPixelRatio = errors.New("pixel ratio must be positive")

// Layouts resolves a model to its family. *layout.Registry implements it.
type Layouts interface {
	Family(model string) (layout.Family, layout.Match)
}

// Node is one element of the scene.
type Node interface {
	render(dst *image.NRGBA, f frame) error
}

// frame is the per-export render state.
type frame struct {
	stage *Stage
	ratio float64
	w, h  int
	area  placement.Rect
}

// Stage is the scene root. Render order is Photo, Content, Overlays, Mask.
type Stage struct {
	Width  float64
	Height float64
	Model  string

	Photo    *PhotoNode
	Content  *ClipGroup
	Overlays []Node
	Mask     *MaskOverlayNode

	family layout.Family
}

// NewStage resolves model once; every render reuses that family.
func NewStage(layouts Layouts, model string, width, height float64) *Stage {
	fam, _ := layouts.Family(model)
	return newStage(fam, model, width, height)
}

func newStage(fam layout.Family, model string, width, height float64) *Stage {
	s := &Stage{
		Width:  width,
		Height: height,
		Model:  model,
		family: fam,
	}
	s.Content = &ClipGroup{
		stage:      s,
		Template:   design.TemplateFor(design.TemplateClassic, 1),
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Border:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	return s
}

// AddImage appends an image node to the clipped content layer.
func (s *Stage) AddImage(img image.Image, t design.Transform) *ImageNode {
	n := &ImageNode{Image: img, Transform: t, stage: s, index: len(s.Content.Images)}
	s.Content.Images = append(s.Content.Images, n)
	return n
}

func (s *Stage) AddSticker(st design.Sticker, img image.Image) *StickerNode {
	n := &StickerNode{Sticker: st, Image: img}
	s.Overlays = append(s.Overlays, n)
	return n
}

func (s *Stage) AddText(el design.TextElement) *TextNode {
	n := &TextNode{Element: el}
	s.Overlays = append(s.Overlays, n)
	return n
}

// SetMaskOverlay places img over the stage at the model's mask position.
func (s *Stage) SetMaskOverlay(img image.Image) {
	s.Mask = &MaskOverlayNode{Image: img, Position: s.family.MaskPosition}
}

func (s *Stage) size(ratio float64) (int, int) {
	return int(math.Round(s.Width * ratio)), int(math.Round(s.Height * ratio))
}

// Render draws the stage at its own size.
func (s *Stage) Render() (*image.NRGBA, error) {
	return s.ExportRasterAtScale(1)
}

// ExportRasterAtScale re-renders the scene at Width·ratio × Height·ratio.
// It is the cheap preview path; print files go through the compositor.
func (s *Stage) ExportRasterAtScale(ratio float64) (*image.NRGBA, error) {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("%w: %v", ErrPixelRatio, ratio)
	}
	w, h := s.size(ratio)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("stage %gx%g at ratio %v is empty", s.Width, s.Height, ratio)
	}
	f := frame{
		stage: s,
		ratio: ratio,
		w:     w,
		h:     h,
		area:  placement.MaskedArea(s.family.Layout(s.Model), float64(w), float64(h)),
	}
	dst := imaging.New(w, h, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	nodes := make([]Node, 0, len(s.Overlays)+3)
	if s.Photo != nil {
		nodes = append(nodes, s.Photo)
	}
	if s.Content != nil {
		nodes = append(nodes, s.Content)
	}
	nodes = append(nodes, s.Overlays...)
	if s.Mask != nil {
		nodes = append(nodes, s.Mask)
	}
	for _, n := range nodes {
		if err := n.render(dst, f); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
