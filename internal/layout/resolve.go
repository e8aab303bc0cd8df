package layout

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/youruser/caseprint/internal/metrics"
)

// Registry is an immutable model -> family table. All lookups (layout, mask
// position, dimensions, clip path) go through Family so they agree.
type Registry struct {
	models     map[string]string
	normalized map[string]string
	keys       []string // normalized keys, sorted
}

var defaultRegistry = mustRegistry(nil)

// Default returns the registry built from the compiled-in model table.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(aliases map[string]string) *Registry {
	r, err := NewRegistry(aliases)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry builds a registry from the compiled-in table plus extra aliases
// (model name -> family name). Aliases override table entries.
func NewRegistry(aliases map[string]string) (*Registry, error) {
	r := &Registry{
		models:     make(map[string]string, len(models)+len(aliases)),
		normalized: make(map[string]string, len(models)+len(aliases)),
	}
	for name, fam := range models {
		r.models[name] = fam
	}
	for name, fam := range aliases {
		if _, ok := families[fam]; !ok {
			return nil, fmt.Errorf("alias %q: unknown family %q", name, fam)
		}
		r.models[name] = fam
	}
	for name, fam := range r.models {
		n := normalize(name)
		if n == "" {
			continue
		}
		r.normalized[n] = fam
	}
	for n := range r.normalized {
		r.keys = append(r.keys, n)
	}
	sort.Strings(r.keys)
	return r, nil
}

// normalize folds case and drops spacing so "iPhone 17 Pro-Max" and
// "iphone17promax" compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Family resolves a model name: exact key, normalized key, substring either
// way, then the default family. It never fails.
func (r *Registry) Family(modelName string) (Family, Match) {
	if fam, ok := r.models[modelName]; ok {
		return families[fam], MatchExact
	}
	n := normalize(modelName)
	if n != "" {
		if fam, ok := r.normalized[n]; ok {
			return families[fam], MatchNormalized
		}
		if key := r.substringKey(n); key != "" {
			return families[r.normalized[key]], MatchSubstring
		}
	}
	slog.Warn("unknown phone model, using default layout",
		"model", modelName,
		"default", DefaultModel,
	)
	metrics.LayoutFallbacks.Inc()
	return families[DefaultFamily], MatchDefault
}

// substringKey prefers keys contained in the input (longest wins), then keys
// containing the input (shortest wins). Ties break lexically via sorted keys.
func (r *Registry) substringKey(n string) string {
	best := ""
	for _, k := range r.keys {
		if strings.Contains(n, k) && len(k) > len(best) {
			best = k
		}
	}
	if best != "" {
		return best
	}
	for _, k := range r.keys {
		if strings.Contains(k, n) && (best == "" || len(k) < len(best)) {
			best = k
		}
	}
	return best
}

// Resolve returns the printable layout for a model.
func (r *Registry) Resolve(modelName string) PhoneLayout {
	f, _ := r.Family(modelName)
	return f.Layout(modelName)
}

func (r *Registry) MaskPosition(modelName string) MaskPosition {
	f, _ := r.Family(modelName)
	return f.MaskPosition
}

// PhoneDimensions returns display pixels for the given UI variant. Unknown
// variants get the editor size.
func (r *Registry) PhoneDimensions(modelName string, variant Variant) Dimensions {
	f, _ := r.Family(modelName)
	if variant == VariantThumbnail {
		return f.Thumbnail
	}
	return f.Editor
}

func (r *Registry) ClipPathID(modelName string) string {
	f, _ := r.Family(modelName)
	return f.ClipPathID
}

// Models returns every known model name, sorted.
func (r *Registry) Models() []string {
	out := make([]string, 0, len(r.models))
	for name := range r.models {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve uses the default registry.
func Resolve(modelName string) PhoneLayout {
	return defaultRegistry.Resolve(modelName)
}

// PhoneDimensions uses the default registry.
func PhoneDimensions(modelName string, variant Variant) Dimensions {
	return defaultRegistry.PhoneDimensions(modelName, variant)
}
