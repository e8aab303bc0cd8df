package design

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest marks structural problems with a design snapshot.
var ErrInvalidRequest = errors.New("invalid design request")

// Validate checks a normalized request. Dimension ranges are checked by the
// compositor, which owns the physical size contract.
func (r Request) Validate() error {
	var problems []string
	for i, img := range r.Images {
		if img.Transform.Scale < 0 {
			problems = append(problems, fmt.Sprintf("images[%d].transform.scale must be positive", i))
		}
	}
	for i, s := range r.Stickers {
		switch s.Kind {
		case StickerGlyph:
			if strings.TrimSpace(s.Glyph) == "" {
				problems = append(problems, fmt.Sprintf("stickers[%d]: glyph sticker without glyph", i))
			}
		case StickerImage:
		default:
			problems = append(problems, fmt.Sprintf("stickers[%d]: unknown kind %q", i, s.Kind))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
	}
	return nil
}
