package editor

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/youruser/caseprint/internal/design"
	imagepkg "github.com/youruser/caseprint/internal/image"
)

// Options control how FromRequest builds a stage.
type Options struct {
	// Width of the stage in preview pixels; PreviewWidth when zero.
	Width float64
	// PhoneAssets loads the family's phone photo and mask overlay.
	PhoneAssets bool
	LoadLimit   int
}

// FromRequest builds a stage for req, loading every referenced image in one
// fan-out. Assets that fail to load are logged and left out. The stage keeps
// the print aspect ratio when the request carries valid dimensions and the
// model's editor size otherwise.
func FromRequest(ctx context.Context, layouts Layouts, dec imagepkg.Decoder, req design.Request, opts Options) (*Stage, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	fam, _ := layouts.Family(req.Model)
	width := opts.Width
	if width <= 0 {
		width = PreviewWidth
	}
	var height float64
	if cw, ch, err := imagepkg.CanvasSize(req.WidthMM, req.HeightMM); err == nil {
		height = width * float64(ch) / float64(cw)
	} else {
		d := fam.Editor
		height = width * float64(d.Height) / float64(d.Width)
	}

	n := req.Template.ImageCount
	refs := make([]string, 0, n+len(req.Stickers)+2)
	for i := 0; i < n; i++ {
		ref := ""
		if i < len(req.Images) {
			ref = req.Images[i].Src
		}
		refs = append(refs, ref)
	}
	for _, s := range req.Stickers {
		ref := ""
		if s.Kind == design.StickerImage {
			ref = s.Src
		}
		refs = append(refs, ref)
	}
	var photoRef, maskRef string
	if opts.PhoneAssets {
		photoRef, maskRef = fam.PhotoAsset, fam.MaskAsset
	}
	refs = append(refs, photoRef, maskRef)

	limit := opts.LoadLimit
	if limit == 0 {
		limit = imagepkg.DefaultLoadLimit
	}
	loaded := imagepkg.LoadAll(ctx, dec, refs, limit)
	for i, l := range loaded {
		if l.Err != nil {
			slog.Warn("editor asset not loaded", "index", i, "error", l.Err)
		}
	}

	s := newStage(fam, req.Model, width, height)
	s.Content.Template = req.Template
	if c, err := imagepkg.ParseColor(req.Background); err == nil {
		s.Content.Background = opaque(c)
	}
	if c, err := imagepkg.ParseColor(req.BorderColor); err == nil {
		s.Content.Border = opaque(c)
	}
	for i := 0; i < n; i++ {
		t := design.DefaultTransform()
		if i < len(req.Images) {
			t = req.Images[i].Transform
		}
		s.AddImage(loaded[i].Image, t)
	}
	for i, st := range req.Stickers {
		s.AddSticker(st, loaded[n+i].Image)
	}
	for _, el := range req.TextElements {
		s.AddText(el)
	}
	if photo := loaded[len(loaded)-2]; photo.OK() {
		s.Photo = &PhotoNode{Image: photo.Image}
	}
	if mask := loaded[len(loaded)-1]; mask.OK() {
		s.SetMaskOverlay(mask.Image)
	}
	return s, nil
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}
