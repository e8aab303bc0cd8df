package layout

// Family groups models that share printable geometry. Layout, mask position,
// display dimensions and the clip path all hang off the family so the lookups
// cannot disagree about a model.
type Family struct {
	Name         string
	ContentArea  ContentArea
	CameraArea   CameraArea
	SafeZones    SafeZones
	CornerRadius float64
	MaskPosition MaskPosition
	Editor       Dimensions
	Thumbnail    Dimensions
	ClipPathID   string
	PhotoAsset   string
	MaskAsset    string
}

const (
	FamilyIPhoneProMax = "iphone-pro-max"
	FamilyIPhonePro    = "iphone-pro"
	FamilyIPhone       = "iphone"
	FamilyIPhonePlus   = "iphone-plus"
	FamilyIPhoneAir    = "iphone-air"
	FamilyGalaxyUltra  = "galaxy-ultra"
	FamilyGalaxy       = "galaxy"
	FamilyPixel        = "pixel"

	DefaultFamily = FamilyIPhonePro
	DefaultModel  = "iPhone 15 Pro"
)

// Camera modules shared between families.
var (
	proCamera = CameraArea{
		Top: 2, Left: 4, Width: 46, Height: 22, BorderRadius: 36,
		Margin: Margin{Top: 1, Left: 1, Right: 1.5, Bottom: 1.5},
	}
	dualCamera = CameraArea{
		Top: 2, Left: 4, Width: 36, Height: 18, BorderRadius: 30,
		Margin: Margin{Top: 1, Left: 1, Right: 1.5, Bottom: 1.5},
	}
	plateauCamera = CameraArea{
		Top: 2, Left: 3, Width: 94, Height: 12, BorderRadius: 28,
		Margin: Margin{Top: 1, Left: 0, Right: 0, Bottom: 1.5},
	}
	verticalLensCamera = CameraArea{
		Top: 3, Left: 5, Width: 16, Height: 30, BorderRadius: 12,
		Margin: Margin{Top: 1, Left: 1, Right: 2, Bottom: 2},
	}
	barCamera = CameraArea{
		Top: 17, Left: 0, Width: 100, Height: 9, BorderRadius: 20,
		Margin: Margin{Top: 1, Bottom: 1.5},
	}
)

var (
	standardInset = ContentArea{Top: 1.5, Left: 2, Right: 2, Bottom: 1.5, BorderRadius: 48}
	galaxyInset   = ContentArea{Top: 1.2, Left: 1.8, Right: 1.8, Bottom: 1.2, BorderRadius: 36}
	pixelInset    = ContentArea{Top: 1.4, Left: 2.2, Right: 2.2, Bottom: 1.4, BorderRadius: 52}

	appleDeadZones  = SafeZones{TopDeadZone: 28, BottomDeadZone: 4, LeftDeadZone: 6, RightDeadZone: 4}
	dualDeadZones   = SafeZones{TopDeadZone: 24, BottomDeadZone: 4, LeftDeadZone: 6, RightDeadZone: 4}
	airDeadZones    = SafeZones{TopDeadZone: 17, BottomDeadZone: 4, LeftDeadZone: 4, RightDeadZone: 4}
	galaxyDeadZones = SafeZones{TopDeadZone: 6, BottomDeadZone: 4, LeftDeadZone: 24, RightDeadZone: 4}
	pixelDeadZones  = SafeZones{TopDeadZone: 30, BottomDeadZone: 4, LeftDeadZone: 3, RightDeadZone: 3}
)

func withMask(c ContentArea, mask string) ContentArea {
	c.Mask = mask
	return c
}

var families = map[string]Family{
	FamilyIPhoneProMax: {
		Name:         FamilyIPhoneProMax,
		ContentArea:  withMask(standardInset, "masks/iphone-pro-max.png"),
		CameraArea:   proCamera,
		SafeZones:    appleDeadZones,
		CornerRadius: 56,
		MaskPosition: MaskPosition{X: 7.5, Y: 3.2, Width: 85, Height: 93.6},
		Editor:       Dimensions{Width: 300, Height: 620},
		Thumbnail:    Dimensions{Width: 150, Height: 310},
		ClipPathID:   FamilyIPhoneProMax,
		PhotoAsset:   "phones/iphone-pro-max.png",
		MaskAsset:    "masks/iphone-pro-max.png",
	},
	FamilyIPhonePro: {
		Name:         FamilyIPhonePro,
		ContentArea:  withMask(standardInset, "masks/iphone-pro.png"),
		CameraArea:   proCamera,
		SafeZones:    appleDeadZones,
		CornerRadius: 52,
		MaskPosition: MaskPosition{X: 8, Y: 3.5, Width: 84, Height: 93},
		Editor:       Dimensions{Width: 290, Height: 590},
		Thumbnail:    Dimensions{Width: 145, Height: 295},
		ClipPathID:   FamilyIPhonePro,
		PhotoAsset:   "phones/iphone-pro.png",
		MaskAsset:    "masks/iphone-pro.png",
	},
	FamilyIPhone: {
		Name:         FamilyIPhone,
		ContentArea:  withMask(standardInset, "masks/iphone.png"),
		CameraArea:   dualCamera,
		SafeZones:    dualDeadZones,
		CornerRadius: 52,
		MaskPosition: MaskPosition{X: 8, Y: 3.5, Width: 84, Height: 93},
		Editor:       Dimensions{Width: 290, Height: 590},
		Thumbnail:    Dimensions{Width: 145, Height: 295},
		ClipPathID:   FamilyIPhone,
		PhotoAsset:   "phones/iphone.png",
		MaskAsset:    "masks/iphone.png",
	},
	FamilyIPhonePlus: {
		Name:         FamilyIPhonePlus,
		ContentArea:  withMask(standardInset, "masks/iphone-plus.png"),
		CameraArea:   dualCamera,
		SafeZones:    dualDeadZones,
		CornerRadius: 56,
		MaskPosition: MaskPosition{X: 7.5, Y: 3.2, Width: 85, Height: 93.6},
		Editor:       Dimensions{Width: 300, Height: 620},
		Thumbnail:    Dimensions{Width: 150, Height: 310},
		ClipPathID:   FamilyIPhonePlus,
		PhotoAsset:   "phones/iphone-plus.png",
		MaskAsset:    "masks/iphone-plus.png",
	},
	FamilyIPhoneAir: {
		Name:         FamilyIPhoneAir,
		ContentArea:  withMask(standardInset, "masks/iphone-air.png"),
		CameraArea:   plateauCamera,
		SafeZones:    airDeadZones,
		CornerRadius: 54,
		MaskPosition: MaskPosition{X: 7.8, Y: 3.2, Width: 84.4, Height: 93.6},
		Editor:       Dimensions{Width: 296, Height: 620},
		Thumbnail:    Dimensions{Width: 148, Height: 310},
		ClipPathID:   FamilyIPhoneAir,
		PhotoAsset:   "phones/iphone-air.png",
		MaskAsset:    "masks/iphone-air.png",
	},
	FamilyGalaxyUltra: {
		Name:         FamilyGalaxyUltra,
		ContentArea:  withMask(galaxyInset, "masks/galaxy-ultra.png"),
		CameraArea:   verticalLensCamera,
		SafeZones:    galaxyDeadZones,
		CornerRadius: 24,
		MaskPosition: MaskPosition{X: 7, Y: 3, Width: 86, Height: 94},
		Editor:       Dimensions{Width: 300, Height: 630},
		Thumbnail:    Dimensions{Width: 150, Height: 315},
		ClipPathID:   FamilyGalaxyUltra,
		PhotoAsset:   "phones/galaxy-ultra.png",
		MaskAsset:    "masks/galaxy-ultra.png",
	},
	FamilyGalaxy: {
		Name:         FamilyGalaxy,
		ContentArea:  withMask(galaxyInset, "masks/galaxy.png"),
		CameraArea:   verticalLensCamera,
		SafeZones:    galaxyDeadZones,
		CornerRadius: 40,
		MaskPosition: MaskPosition{X: 7.5, Y: 3.2, Width: 85, Height: 93.6},
		Editor:       Dimensions{Width: 290, Height: 600},
		Thumbnail:    Dimensions{Width: 145, Height: 300},
		ClipPathID:   FamilyGalaxy,
		PhotoAsset:   "phones/galaxy.png",
		MaskAsset:    "masks/galaxy.png",
	},
	FamilyPixel: {
		Name:         FamilyPixel,
		ContentArea:  withMask(pixelInset, "masks/pixel.png"),
		CameraArea:   barCamera,
		SafeZones:    pixelDeadZones,
		CornerRadius: 58,
		MaskPosition: MaskPosition{X: 7, Y: 3, Width: 86, Height: 94},
		Editor:       Dimensions{Width: 296, Height: 620},
		Thumbnail:    Dimensions{Width: 148, Height: 310},
		ClipPathID:   FamilyPixel,
		PhotoAsset:   "phones/pixel.png",
		MaskAsset:    "masks/pixel.png",
	},
}

// models maps catalog model names to families. Keys are matched exactly first,
// then by normalized name, then by substring.
var models = map[string]string{
	"iPhone 13":         FamilyIPhone,
	"iPhone 13 Pro":     FamilyIPhonePro,
	"iPhone 13 Pro Max": FamilyIPhoneProMax,
	"iPhone 14":         FamilyIPhone,
	"iPhone 14 Plus":    FamilyIPhonePlus,
	"iPhone 14 Pro":     FamilyIPhonePro,
	"iPhone 14 Pro Max": FamilyIPhoneProMax,
	"iPhone 15":         FamilyIPhone,
	"iPhone 15 Plus":    FamilyIPhonePlus,
	"iPhone 15 Pro":     FamilyIPhonePro,
	"iPhone 15 Pro Max": FamilyIPhoneProMax,
	"iPhone 16":         FamilyIPhone,
	"iPhone 16 Plus":    FamilyIPhonePlus,
	"iPhone 16 Pro":     FamilyIPhonePro,
	"iPhone 16 Pro Max": FamilyIPhoneProMax,
	"iPhone 17":         FamilyIPhone,
	"iPhone Air":        FamilyIPhoneAir,
	"iPhone 17 Pro":     FamilyIPhonePro,
	"iPhone 17 Pro Max": FamilyIPhoneProMax,
	"Galaxy S23":        FamilyGalaxy,
	"Galaxy S23 Ultra":  FamilyGalaxyUltra,
	"Galaxy S24":        FamilyGalaxy,
	"Galaxy S24 Ultra":  FamilyGalaxyUltra,
	"Galaxy S25":        FamilyGalaxy,
	"Galaxy S25 Ultra":  FamilyGalaxyUltra,
	"Pixel 8":           FamilyPixel,
	"Pixel 8 Pro":       FamilyPixel,
	"Pixel 9":           FamilyPixel,
	"Pixel 9 Pro":       FamilyPixel,
	"Pixel 9 Pro XL":    FamilyPixel,
}

// Families returns the names of every shipped family.
func Families() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	return out
}

// LookupFamily returns a family by name.
func LookupFamily(name string) (Family, bool) {
	f, ok := families[name]
	return f, ok
}

// Layout is the printable layout of modelID in this family.
func (f Family) Layout(modelID string) PhoneLayout {
	return PhoneLayout{
		ModelID:     modelID,
		Family:      f.Name,
		ContentArea: f.ContentArea,
		CameraArea:  f.CameraArea,
		SafeZones:   f.SafeZones,
		Edges:       Edges{Top: 0, Left: 0, Right: 100, Bottom: 100, CornerRadius: f.CornerRadius},
	}
}
