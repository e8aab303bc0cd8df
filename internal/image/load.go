package imagepkg

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
)

// Loaded is the outcome of one decode. Failures are data, not control flow:
// the compositor skips entries with Err set and keeps going.
type Loaded struct {
	Ref   string
	Image image.Image
	Err   error
}

// OK reports whether the entry holds a usable image.
func (l Loaded) OK() bool {
	return l.Err == nil && l.Image != nil
}

// LoadAll decodes refs concurrently, at most limit at a time (0 = unbounded),
// and returns results in input order. Blank refs are left as empty entries.
func LoadAll(ctx context.Context, dec Decoder, refs []string, limit int) []Loaded {
	out := make([]Loaded, len(refs))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, ref := range refs {
		out[i].Ref = ref
		if ref == "" {
			continue
		}
		i, ref := i, ref
		g.Go(func() error {
			img, err := dec.Decode(ctx, ref)
			out[i].Image, out[i].Err = img, err
			return nil
		})
	}
	_ = g.Wait()
	return out
}
