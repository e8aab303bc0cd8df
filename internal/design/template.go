package design

import "strings"

// Kind selects the image placement algorithm.
type Kind string

const (
	KindSingle Kind = "single"
	KindGrid   Kind = "grid"
	KindFilm   Kind = "film"
)

const (
	TemplateClassic   = "classic"
	Template2in1      = "2-in-1"
	Template3in1      = "3-in-1"
	Template4in1      = "4-in-1"
	TemplateFilmStrip = "film-strip"

	DefaultFilmFrames = 3
)

type Template struct {
	ID         string `json:"id"`
	ImageCount int    `json:"image_count"`
}

// TemplateFor resolves a template id. AI style ids and unknown ids render as a
// single image; film strips keep a requested frame count of 2–4.
func TemplateFor(id string, requested int) Template {
	id = strings.ToLower(strings.TrimSpace(id))
	switch id {
	case Template2in1:
		return Template{ID: id, ImageCount: 2}
	case Template3in1:
		return Template{ID: id, ImageCount: 3}
	case Template4in1:
		return Template{ID: id, ImageCount: 4}
	case TemplateFilmStrip:
		n := requested
		if n < 2 || n > 4 {
			n = DefaultFilmFrames
		}
		return Template{ID: id, ImageCount: n}
	case "":
		return Template{ID: TemplateClassic, ImageCount: 1}
	default:
		return Template{ID: id, ImageCount: 1}
	}
}

// Kind returns the placement algorithm for the template.
func (t Template) Kind() Kind {
	switch {
	case t.ID == TemplateFilmStrip:
		return KindFilm
	case t.ImageCount >= 2:
		return KindGrid
	default:
		return KindSingle
	}
}

// IsAIStyle reports whether the id names an AI style preset.
func (t Template) IsAIStyle() bool {
	return strings.HasPrefix(t.ID, "ai-") || strings.HasPrefix(t.ID, "ai_")
}

// GridShape returns rows and columns for an image count: 2→2×1, 3→3×1, 4→2×2.
func GridShape(count int) (rows, cols int) {
	switch count {
	case 2:
		return 2, 1
	case 3:
		return 3, 1
	case 4:
		return 2, 2
	default:
		return 1, 1
	}
}
