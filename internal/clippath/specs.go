package clippath

import "github.com/youruser/caseprint/internal/layout"

type ViewBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Spec is a phone-case outline authored in its own viewBox.
type Spec struct {
	ID        string  `json:"id"`
	ViewBox   ViewBox `json:"view_box"`
	Path      string  `json:"path"`
	Transform string  `json:"transform,omitempty"`
}

// Outlines wind clockwise, camera cutouts counter-clockwise so the nonzero
// rule leaves the cutout empty.
var specs = map[string]Spec{
	layout.FamilyIPhoneProMax: {
		ID:      layout.FamilyIPhoneProMax,
		ViewBox: ViewBox{Width: 300, Height: 620},
		Path: "M28,0 H272 C287.46,0 300,12.54 300,28 V592 C300,607.46 287.46,620 272,620 H28 C12.54,620 0,607.46 0,592 V28 C0,12.54 12.54,0 28,0 Z " +
			"M32,12.4 C20.95,12.4 12,21.35 12,32.4 V128.8 C12,139.85 20.95,148.8 32,148.8 H130 C141.05,148.8 150,139.85 150,128.8 V32.4 C150,21.35 141.05,12.4 130,12.4 Z",
	},
	layout.FamilyIPhonePro: {
		ID:      layout.FamilyIPhonePro,
		ViewBox: ViewBox{Width: 290, Height: 590},
		Path: "M26,0 H264 C278.36,0 290,11.64 290,26 V564 C290,578.36 278.36,590 264,590 H26 C11.64,590 0,578.36 0,564 V26 C0,11.64 11.64,0 26,0 Z " +
			"M30.6,11.8 C20.11,11.8 11.6,20.31 11.6,30.8 V122.6 C11.6,133.09 20.11,141.6 30.6,141.6 H126 C136.49,141.6 145,133.09 145,122.6 V30.8 C145,20.31 136.49,11.8 126,11.8 Z",
	},
	layout.FamilyIPhone: {
		ID:      layout.FamilyIPhone,
		ViewBox: ViewBox{Width: 290, Height: 590},
		Path: "M26,0 H264 C278.36,0 290,11.64 290,26 V564 C290,578.36 278.36,590 264,590 H26 C11.64,590 0,578.36 0,564 V26 C0,11.64 11.64,0 26,0 Z " +
			"M27.6,11.8 C18.76,11.8 11.6,18.96 11.6,27.8 V102 C11.6,110.84 18.76,118 27.6,118 H100 C108.84,118 116,110.84 116,102 V27.8 C116,18.96 108.84,11.8 100,11.8 Z",
	},
	layout.FamilyIPhonePlus: {
		ID:      layout.FamilyIPhonePlus,
		ViewBox: ViewBox{Width: 300, Height: 620},
		Path: "M28,0 H272 C287.46,0 300,12.54 300,28 V592 C300,607.46 287.46,620 272,620 H28 C12.54,620 0,607.46 0,592 V28 C0,12.54 12.54,0 28,0 Z " +
			"M28,12.4 C19.16,12.4 12,19.56 12,28.4 V108 C12,116.84 19.16,124 28,124 H104 C112.84,124 120,116.84 120,108 V28.4 C120,19.56 112.84,12.4 104,12.4 Z",
	},
	layout.FamilyIPhoneAir: {
		ID:      layout.FamilyIPhoneAir,
		ViewBox: ViewBox{Width: 296, Height: 620},
		Path: "M27,0 H269 C283.91,0 296,12.09 296,27 V593 C296,607.91 283.91,620 269,620 H27 C12.09,620 0,607.91 0,593 V27 C0,12.09 12.09,0 27,0 Z " +
			"M22.88,12.4 C15.15,12.4 8.88,18.67 8.88,26.4 V72.8 C8.88,80.53 15.15,86.8 22.88,86.8 H273.12 C280.85,86.8 287.12,80.53 287.12,72.8 V26.4 C287.12,18.67 280.85,12.4 273.12,12.4 Z",
	},
	layout.FamilyGalaxyUltra: {
		ID:      layout.FamilyGalaxyUltra,
		ViewBox: ViewBox{Width: 300, Height: 630},
		Path: "M12,0 L288,0 Q300,0 300,12 L300,618 Q300,630 288,630 L12,630 Q0,630 0,618 L0,12 Q0,0 12,0 Z " +
			"M23,18.9 C18.58,18.9 15,22.48 15,26.9 V199.9 C15,204.32 18.58,207.9 23,207.9 H55 C59.42,207.9 63,204.32 63,199.9 V26.9 C63,22.48 59.42,18.9 55,18.9 Z",
	},
	layout.FamilyGalaxy: {
		ID:      layout.FamilyGalaxy,
		ViewBox: ViewBox{Width: 290, Height: 600},
		Path: "M20,0 L270,0 Q290,0 290,20 L290,580 Q290,600 270,600 L20,600 Q0,600 0,580 L0,20 Q0,0 20,0 Z " +
			"M22.5,18 C18.08,18 14.5,21.58 14.5,26 V190 C14.5,194.42 18.08,198 22.5,198 H52.9 C57.32,198 60.9,194.42 60.9,190 V26 C60.9,21.58 57.32,18 52.9,18 Z",
	},
	layout.FamilyPixel: {
		ID:        layout.FamilyPixel,
		ViewBox:   ViewBox{Width: 296, Height: 620},
		Path:      "M29,0 H267 C283.02,0 296,12.98 296,29 V591 C296,607.02 283.02,620 267,620 H29 C12.98,620 0,607.02 0,591 V29 C0,12.98 12.98,0 29,0 Z",
		Transform: "translate(1.48, 3.1) scale(0.99)",
	},
}

// Lookup returns the clip spec registered under id.
func Lookup(id string) (Spec, bool) {
	s, ok := specs[id]
	return s, ok
}
