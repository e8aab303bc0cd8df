package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/caseprint/internal/placement"
)

const (
	DefaultFont = "regular"

	lineHeightFactor = 1.2
	strokeSamples    = 16
)

var (
	fontsMu sync.RWMutex
	fonts   = map[string]*opentype.Font{}

	builtinFonts = sync.OnceValue(func() error {
		for name, ttf := range map[string][]byte{
			"regular":     goregular.TTF,
			"bold":        gobold.TTF,
			"italic":      goitalic.TTF,
			"bold-italic": gobolditalic.TTF,
			"mono":        gomono.TTF,
		} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				return fmt.Errorf("parse builtin font %q: %w", name, err)
			}
			fontsMu.Lock()
			if _, ok := fonts[name]; !ok {
				fonts[name] = f
			}
			fontsMu.Unlock()
		}
		return nil
	})
)

// RegisterFont makes a TrueType/OpenType font available to text elements
// under name (case-insensitive).
func RegisterFont(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	fontsMu.Lock()
	fonts[strings.ToLower(name)] = f
	fontsMu.Unlock()
	return nil
}

// lookupFont falls back to the regular face for unknown names.
func lookupFont(name string) (*opentype.Font, error) {
	if err := builtinFonts(); err != nil {
		return nil, err
	}
	fontsMu.RLock()
	defer fontsMu.RUnlock()
	if f, ok := fonts[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return fonts[DefaultFont], nil
}

// TextStyle describes one rendered text block. Size is in output pixels.
type TextStyle struct {
	Font   string
	Size   float64
	Fill   color.NRGBA
	Stroke bool
}

// RenderText draws text into a transparent image just large enough to hold
// it. Lines are split on '\n', centred horizontally and spaced at 1.2× the
// font size. With Stroke set, an outline in StrokeFor(Fill) is drawn under the
// fill. Blank text returns nil.
func RenderText(text string, st TextStyle) (*image.NRGBA, error) {
	if strings.TrimSpace(text) == "" || st.Size <= 0 {
		return nil, nil
	}
	f, err := lookupFont(st.Font)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: st.Size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("font face %q at %.1f: %w", st.Font, st.Size, err)
	}
	defer face.Close()

	lines := strings.Split(text, "\n")
	widths := make([]float64, len(lines))
	maxW := 0.0
	for i, line := range lines {
		widths[i] = fromFixed(font.MeasureString(face, line))
		maxW = math.Max(maxW, widths[i])
	}
	fm := face.Metrics()
	ascent, descent := fromFixed(fm.Ascent), fromFixed(fm.Descent)
	lineH := st.Size * lineHeightFactor

	strokeW := 0.0
	if st.Stroke {
		strokeW = math.Max(2, st.Size*0.06)
	}
	pad := math.Ceil(strokeW) + 2
	w := int(math.Ceil(maxW + 2*pad))
	h := int(math.Ceil(lineH*float64(len(lines)) + 2*pad))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	drawPass := func(c color.NRGBA, dx, dy float64) {
		d := font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
		for i, line := range lines {
			cy := pad + lineH*(float64(i)+0.5)
			x := pad + (maxW-widths[i])/2
			d.Dot = fixed.Point26_6{
				X: toFixed(x + dx),
				Y: toFixed(cy + (ascent-descent)/2 + dy),
			}
			d.DrawString(line)
		}
	}
	if st.Stroke {
		stroke := StrokeFor(st.Fill)
		for k := 0; k < strokeSamples; k++ {
			s, c := math.Sincos(2 * math.Pi * float64(k) / strokeSamples)
			drawPass(stroke, c*strokeW, s*strokeW)
		}
	}
	drawPass(st.Fill, 0, 0)
	return img, nil
}

// DrawTextAt renders text centred on at, rotated by deg about that point.
func DrawTextAt(dst *image.NRGBA, text string, st TextStyle, at placement.Point, deg float64) error {
	block, err := RenderText(text, st)
	if err != nil || block == nil {
		return err
	}
	b := block.Bounds()
	DrawTransformed(dst, placement.CenteredRotation(at, float64(b.Dx()), float64(b.Dy()), deg), block, nil)
	return nil
}

// drawLines draws left-aligned lines starting at (x, y), one line per
// lineHeightFactor·size. Used for label sheets.
func drawLines(dst *image.NRGBA, lines []string, x, y float64, st TextStyle) error {
	f, err := lookupFont(st.Font)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: st.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return err
	}
	defer face.Close()
	d := font.Drawer{Dst: dst, Src: image.NewUniform(st.Fill), Face: face}
	ascent := fromFixed(face.Metrics().Ascent)
	for i, line := range lines {
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(y + ascent + float64(i)*st.Size*lineHeightFactor)}
		d.DrawString(line)
	}
	return nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
