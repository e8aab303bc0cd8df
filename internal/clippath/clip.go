package clippath

import (
	"image"

	"golang.org/x/image/vector"
)

// ClipFunc traces a clip region onto a sink.
type ClipFunc func(Sink)

// Build returns a clip function that traces spec scaled to a w×h container.
// The path is parsed once; the returned function can be replayed any number
// of times.
func Build(spec Spec, w, h float64) ClipFunc {
	if spec.ViewBox.Width <= 0 || spec.ViewBox.Height <= 0 {
		return FullRect(w, h)
	}
	cmds := ParsePath(spec.Path)
	if len(cmds) == 0 {
		return FullRect(w, h)
	}
	t := ParseTransform(spec.Transform)
	m := Mapping{
		ScaleX:    w / spec.ViewBox.Width,
		ScaleY:    h / spec.ViewBox.Height,
		OffsetX:   t.X,
		OffsetY:   t.Y,
		UserScale: t.Scale,
	}
	return func(s Sink) {
		Replay(cmds, s, m)
	}
}

// BuildForID builds the clip registered under id, usually a family's
// ClipPathID. Unknown ids get a full-rectangle clip.
func BuildForID(id string, w, h float64) ClipFunc {
	spec, ok := Lookup(id)
	if !ok {
		return FullRect(w, h)
	}
	return Build(spec, w, h)
}

// FullRect clips nothing inside a w×h container.
func FullRect(w, h float64) ClipFunc {
	fw, fh := float32(w), float32(h)
	return func(s Sink) {
		s.MoveTo(0, 0)
		s.LineTo(fw, 0)
		s.LineTo(fw, fh)
		s.LineTo(0, fh)
		s.ClosePath()
	}
}

// Mask rasterizes clip into a w×h coverage mask with the nonzero fill rule.
// Anti-aliased edges carry partial alpha.
func Mask(clip ClipFunc, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	z := vector.NewRasterizer(w, h)
	clip(z)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
