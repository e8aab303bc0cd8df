package imagepkg

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/youruser/caseprint/internal/clippath"
	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/layout"
	"github.com/youruser/caseprint/internal/metrics"
	"github.com/youruser/caseprint/internal/placement"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// DefaultLoadLimit bounds concurrent decodes per compose call.
const DefaultLoadLimit = 8

// LayoutSource resolves a model to its family. Compose looks the model up
// once and takes geometry and the clip path from the same family.
// *layout.Registry implements it.
type LayoutSource interface {
	Family(model string) (layout.Family, layout.Match)
}

// Compositor renders design snapshots into print rasters. It holds no
// per-call state and is safe for concurrent use.
type Compositor struct {
	Layouts   LayoutSource
	Decoder   Decoder
	LoadLimit int
	Gutter    int
}

func NewCompositor(layouts LayoutSource, dec Decoder) *Compositor {
	return &Compositor{
		Layouts:   layouts,
		Decoder:   dec,
		LoadLimit: DefaultLoadLimit,
		Gutter:    GridGutter,
	}
}

func (c *Compositor) gutter() int {
	if c.Gutter < 0 {
		return 0
	}
	return c.Gutter
}

// Compose renders req. Invalid dimensions and structural request errors are
// returned; assets that fail to load are logged, listed in Result.Skipped and
// left out of the raster. ctx bounds asset loading only.
func (c *Compositor) Compose(ctx context.Context, req design.Request) (*Result, error) {
	start := time.Now()
	req = req.Normalized()
	kind := string(req.Template.Kind())

	res, err := c.compose(ctx, req)

	metrics.ComposeDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.Compositions.WithLabelValues(kind, outcome).Inc()
	if err == nil {
		slog.Info("composed design",
			"id", req.ID,
			"model", req.Model,
			"template", req.Template.ID,
			"size", fmt.Sprintf("%dx%d", res.Width, res.Height),
			"skipped", len(res.Skipped),
			"elapsed", time.Since(start),
		)
	}
	return res, err
}

func (c *Compositor) compose(ctx context.Context, req design.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	w, h, err := CanvasSize(req.WidthMM, req.HeightMM)
	if err != nil {
		return nil, fmt.Errorf("canvas for %q: %w", req.Model, err)
	}
	fam, _ := c.Layouts.Family(req.Model)

	n := req.Template.ImageCount
	refs := make([]string, 0, n+len(req.Stickers))
	for i := 0; i < n; i++ {
		if i < len(req.Images) {
			refs = append(refs, req.Images[i].Src)
		} else {
			refs = append(refs, "")
		}
	}
	for _, s := range req.Stickers {
		if s.Kind == design.StickerImage {
			refs = append(refs, s.Src)
		} else {
			refs = append(refs, "")
		}
	}
	loaded := LoadAll(ctx, c.Decoder, refs, c.LoadLimit)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}
	images, stickerImages := loaded[:n], loaded[n:]

	res := &Result{ID: req.ID, Width: w, Height: h}
	for i, l := range images {
		if l.Err != nil {
			res.skip("image", i, l.Ref, l.Err)
		}
	}
	for i := n; i < len(req.Images); i++ {
		if req.Images[i].Src != "" {
			res.skip("image", i, req.Images[i].Src, ErrNoSlot)
		}
	}

	bg := colorOr(req.Background, white)
	canvas := imaging.New(w, h, opaque(bg))

	slots := make([]Slot, n)
	for i, l := range images {
		if l.OK() {
			slots[i] = Slot{Image: l.Image, Transform: req.Images[i].Transform}
		}
	}
	switch req.Template.Kind() {
	case design.KindGrid:
		DrawGrid(canvas, slots, n, c.gutter(), opaque(colorOr(req.BorderColor, white)))
	case design.KindFilm:
		DrawFilm(canvas, slots, n)
	default:
		mask := clippath.Mask(clippath.BuildForID(fam.ClipPathID, float64(w), float64(h)), w, h)
		DrawSingle(canvas, slots[0], mask)
	}

	area := placement.MaskedArea(fam.Layout(req.Model), float64(w), float64(h))
	scale := placement.OverlayScale(float64(w))

	for i, s := range req.Stickers {
		at := placement.Anchor(area, s.Position)
		size := s.Size * scale
		switch s.Kind {
		case design.StickerImage:
			l := stickerImages[i]
			if !l.OK() {
				err := l.Err
				if err == nil {
					err = ErrEmptyRef
				}
				res.skip("sticker", i, l.Ref, err)
				continue
			}
			DrawImageSticker(canvas, l.Image, at, size, s.Rotation)
		case design.StickerGlyph:
			if err := DrawGlyphSticker(canvas, s.Glyph, colorOr(s.Color, black), at, size, s.Rotation); err != nil {
				res.skip("sticker", i, s.Glyph, err)
			}
		}
	}

	for i, t := range req.TextElements {
		st := TextStyle{
			Font:   t.Font,
			Size:   t.FontSize * scale,
			Fill:   colorOr(t.Color, black),
			Stroke: true,
		}
		if err := DrawTextAt(canvas, t.Text, st, placement.Anchor(area, t.Position), t.Rotation); err != nil {
			res.skip("text", i, t.ID, err)
		}
	}

	res.Image = canvas
	return res, nil
}
