package imagepkg

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/caseprint/internal/design"
)

// Label sheet geometry: A6 landscape at 150 dpi.
const (
	LabelWidth  = 874
	LabelHeight = 620

	labelMargin   = 32
	labelQRSize   = 240
	labelThumbW   = 260
	labelFontSize = 20
)

// ComposeJobLabel builds the sheet that travels with a print job: a
// thumbnail of the raster, a QR code of the design id and the manifest text.
func ComposeJobLabel(res *Result, req design.Request) (*image.NRGBA, error) {
	if res == nil || res.Image == nil {
		return nil, fmt.Errorf("label: no composed image")
	}
	id := req.ID
	if id == "" {
		id = res.ID
	}
	if id == "" {
		return nil, fmt.Errorf("label: design has no id")
	}

	sheet := imaging.New(LabelWidth, LabelHeight, white)

	thumb := imaging.Fit(res.Image, labelThumbW, LabelHeight-2*labelMargin, imaging.Lanczos)
	ty := (LabelHeight - thumb.Bounds().Dy()) / 2
	sheet = imaging.Paste(sheet, thumb, image.Pt(labelMargin, ty))

	qr, err := GenerateQRImage(QRPayload(id), labelQRSize)
	if err != nil {
		return nil, err
	}
	qx := LabelWidth - labelMargin - labelQRSize
	sheet = imaging.Paste(sheet, qr, image.Pt(qx, labelMargin))

	req.ID = id
	lines := strings.Split(req.Normalized().Manifest(), "\n")
	x := float64(labelMargin*2 + labelThumbW)
	y := float64(labelMargin*2 + labelQRSize)
	if err := drawLines(sheet, lines, x, y, TextStyle{Font: "mono", Size: labelFontSize, Fill: black}); err != nil {
		return nil, fmt.Errorf("label text: %w", err)
	}
	return sheet, nil
}
