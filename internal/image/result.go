package imagepkg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/youruser/caseprint/internal/metrics"
)

// Skipped records an asset that was left out of a composition.
type Skipped struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	Ref   string `json:"ref"`
	Error string `json:"error"`
}

// Result is a finished print raster.
type Result struct {
	ID      string
	Image   *image.NRGBA
	Width   int
	Height  int
	Skipped []Skipped
}

func (r *Result) skip(kind string, i int, ref string, err error) {
	ref = shortRef(ref)
	slog.Warn("skipping asset", "kind", kind, "index", i, "ref", ref, "error", err)
	metrics.SkippedAssets.WithLabelValues(kind).Inc()
	r.Skipped = append(r.Skipped, Skipped{Kind: kind, Index: i, Ref: ref, Error: err.Error()})
}

// shortRef keeps data URLs out of logs.
func shortRef(ref string) string {
	const limit = 80
	if len(ref) <= limit {
		return ref
	}
	return ref[:limit] + "..."
}

// EncodePNG writes the raster as a maximally compressed PNG.
func (r *Result) EncodePNG(w io.Writer) error {
	if r.Image == nil {
		return fmt.Errorf("encode png: empty result")
	}
	return imaging.Encode(w, r.Image, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

func (r *Result) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL returns the PNG as a data:image/png;base64 URL.
func (r *Result) DataURL() (string, error) {
	b, err := r.PNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}
