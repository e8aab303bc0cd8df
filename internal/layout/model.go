package layout

// ContentArea is the printable design surface as percent insets from each edge.
type ContentArea struct {
	Top          float64 `json:"top"`
	Left         float64 `json:"left"`
	Right        float64 `json:"right"`
	Bottom       float64 `json:"bottom"`
	BorderRadius float64 `json:"border_radius"`
	Mask         string  `json:"mask"`
}

// Width returns the content width as a percent of the case width.
func (c ContentArea) Width() float64 {
	return 100 - c.Left - c.Right
}

// Height returns the content height as a percent of the case height.
func (c ContentArea) Height() float64 {
	return 100 - c.Top - c.Bottom
}

type Margin struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// CameraArea is the exclusion rectangle over the rear camera module.
type CameraArea struct {
	Top          float64 `json:"top"`
	Left         float64 `json:"left"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	BorderRadius float64 `json:"border_radius"`
	Margin       Margin  `json:"margin"`
}

// SafeZones are advisory placement bounds in percent. They are not enforced.
type SafeZones struct {
	TopDeadZone    float64 `json:"top_dead_zone"`
	BottomDeadZone float64 `json:"bottom_dead_zone"`
	LeftDeadZone   float64 `json:"left_dead_zone"`
	RightDeadZone  float64 `json:"right_dead_zone"`
}

type Edges struct {
	Top          float64 `json:"top"`
	Left         float64 `json:"left"`
	Right        float64 `json:"right"`
	Bottom       float64 `json:"bottom"`
	CornerRadius float64 `json:"corner_radius"`
}

// PhoneLayout is the printable geometry for one phone model.
type PhoneLayout struct {
	ModelID     string      `json:"model_id"`
	Family      string      `json:"family"`
	ContentArea ContentArea `json:"content_area"`
	CameraArea  CameraArea  `json:"camera_area"`
	SafeZones   SafeZones   `json:"safe_zones"`
	Edges       Edges       `json:"edges"`
}

// CameraInDeadZone reports whether the camera area, including its margin,
// sits entirely inside the top or left dead zone band.
func (l PhoneLayout) CameraInDeadZone() bool {
	c := l.CameraArea
	bottom := c.Top + c.Height + c.Margin.Bottom
	right := c.Left + c.Width + c.Margin.Right
	return bottom <= l.SafeZones.TopDeadZone || right <= l.SafeZones.LeftDeadZone
}

// MaskPosition places a raster mask asset over a phone-back photo, in percent.
type MaskPosition struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions are display pixels for one UI size variant.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Variant string

const (
	VariantEditor    Variant = "editor"
	VariantThumbnail Variant = "thumbnail"
)

// Match describes how a model name was resolved.
type Match string

const (
	MatchExact      Match = "exact"
	MatchNormalized Match = "normalized"
	MatchSubstring  Match = "substring"
	MatchDefault    Match = "default"
)
