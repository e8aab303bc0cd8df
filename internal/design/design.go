// Package design holds the immutable snapshot of a customer's case design that
// the compositor consumes. Nothing here renders; it only describes.
package design

import (
	"strings"

	"github.com/google/uuid"
)

// Transform is the pan/zoom state of one image slot. X and Y are percent
// offsets from the centered position; Scale 1 with X=Y=0 means fit centered.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

const (
	MinScale = 0.1
	MaxScale = 5.0
)

func DefaultTransform() Transform {
	return Transform{Scale: 1}
}

type ImageSlot struct {
	Src       string    `json:"src"`
	Transform Transform `json:"transform"`
}

// Position is a percent position inside the masked content area.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StickerKind string

const (
	StickerGlyph StickerKind = "glyph"
	StickerImage StickerKind = "image"
)

// Sticker is an overlay placed by the user. Size is in preview pixels.
type Sticker struct {
	ID       string      `json:"id"`
	Kind     StickerKind `json:"kind"`
	Glyph    string      `json:"glyph,omitempty"`
	Src      string      `json:"src,omitempty"`
	Color    string      `json:"color,omitempty"`
	Position Position    `json:"position"`
	Size     float64     `json:"size"`
	Rotation float64     `json:"rotation"`
}

// TextElement is one block of user text. FontSize is in preview pixels.
type TextElement struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Font     string   `json:"font,omitempty"`
	FontSize float64  `json:"font_size"`
	Color    string   `json:"color,omitempty"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation"`
}

// TextStyle styles the legacy single text field.
type TextStyle struct {
	Font     string    `json:"font,omitempty"`
	FontSize float64   `json:"font_size"`
	Color    string    `json:"color,omitempty"`
	Position *Position `json:"position,omitempty"`
	Rotation float64   `json:"rotation"`
}

// Request is everything needed to compose one print raster.
type Request struct {
	ID           string        `json:"id"`
	Model        string        `json:"model"`
	Template     Template      `json:"template"`
	Images       []ImageSlot   `json:"images"`
	Background   string        `json:"background"`
	BorderColor  string        `json:"border_color,omitempty"`
	Stickers     []Sticker     `json:"stickers"`
	Text         string        `json:"text,omitempty"`
	TextStyle    TextStyle     `json:"text_style"`
	TextElements []TextElement `json:"text_elements"`
	WidthMM      float64       `json:"width_mm"`
	HeightMM     float64       `json:"height_mm"`
}

const (
	DefaultBackground  = "#ffffff"
	DefaultBorderColor = "#ffffff"
	DefaultTextColor   = "#000000"
	DefaultFontSize    = 24
	DefaultStickerSize = 40
)

// DefaultTextPosition is where the legacy text field lands without a position.
var DefaultTextPosition = Position{X: 50, Y: 85}

// NewID returns a fresh design id.
func NewID() string {
	return uuid.NewString()
}

// Normalized returns a deep copy with defaults filled in. The original is
// left untouched so callers can keep mutating their own state.
func (r Request) Normalized() Request {
	out := r
	out.Template = TemplateFor(r.Template.ID, r.Template.ImageCount)
	if strings.TrimSpace(out.Background) == "" {
		out.Background = DefaultBackground
	}
	if strings.TrimSpace(out.BorderColor) == "" {
		out.BorderColor = DefaultBorderColor
	}

	out.Images = make([]ImageSlot, len(r.Images))
	for i, img := range r.Images {
		if img.Transform.Scale == 0 {
			img.Transform.Scale = 1
		}
		out.Images[i] = img
	}

	out.Stickers = make([]Sticker, len(r.Stickers))
	for i, s := range r.Stickers {
		if s.Size <= 0 {
			s.Size = DefaultStickerSize
		}
		out.Stickers[i] = s
	}

	out.TextElements = make([]TextElement, 0, len(r.TextElements)+1)
	for _, t := range r.TextElements {
		out.TextElements = append(out.TextElements, t.withDefaults())
	}
	if len(out.TextElements) == 0 && strings.TrimSpace(r.Text) != "" {
		pos := DefaultTextPosition
		if r.TextStyle.Position != nil {
			pos = *r.TextStyle.Position
		}
		out.TextElements = append(out.TextElements, TextElement{
			ID:       "legacy-text",
			Text:     r.Text,
			Font:     r.TextStyle.Font,
			FontSize: r.TextStyle.FontSize,
			Color:    r.TextStyle.Color,
			Position: pos,
			Rotation: r.TextStyle.Rotation,
		}.withDefaults())
	}
	return out
}

func (t TextElement) withDefaults() TextElement {
	if t.FontSize <= 0 {
		t.FontSize = DefaultFontSize
	}
	if strings.TrimSpace(t.Color) == "" {
		t.Color = DefaultTextColor
	}
	return t
}
