package design

import (
	"fmt"
	"strings"
)

// Manifest renders a plain-text summary of the design for the print job sheet.
func (r Request) Manifest() string {
	lines := []string{}
	if r.ID != "" {
		lines = append(lines, "# "+r.ID)
	}
	lines = append(lines, "model: "+r.Model)
	lines = append(lines, fmt.Sprintf("template: %s (%d)", r.Template.ID, r.Template.ImageCount))
	if r.Template.IsAIStyle() {
		lines = append(lines, "style: ai preset")
	}
	lines = append(lines, fmt.Sprintf("size: %gx%g mm", r.WidthMM, r.HeightMM))

	filled := 0
	for _, img := range r.Images {
		if img.Src != "" {
			filled++
		}
	}
	lines = append(lines, fmt.Sprintf("images: %d/%d", filled, r.Template.ImageCount))
	lines = append(lines, "background: "+r.Background)
	if len(r.Stickers) > 0 {
		lines = append(lines, fmt.Sprintf("stickers: %d", len(r.Stickers)))
	}
	for _, t := range r.TextElements {
		lines = append(lines, "text: "+strings.ReplaceAll(t.Text, "\n", " / "))
	}
	return strings.Join(lines, "\n")
}
