package clippath

import (
	"regexp"
	"strings"
)

var (
	translateRe = regexp.MustCompile(`translate\(([^)]*)\)`)
	scaleRe     = regexp.MustCompile(`scale\(([^)]*)\)`)
)

// Transform is the nudge applied to a path in viewBox space before it is
// scaled to the container: p' = p*Scale + (X, Y).
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// ParseTransform extracts translate(x[,y]) and a uniform scale(s) from an SVG
// transform attribute. Anything it does not understand is ignored.
func ParseTransform(s string) Transform {
	t := Transform{Scale: 1}
	if s = strings.TrimSpace(s); s == "" {
		return t
	}
	if m := translateRe.FindStringSubmatch(s); m != nil {
		v := parseCoords(m[1])
		if len(v) >= 1 {
			t.X = v[0]
		}
		if len(v) >= 2 {
			t.Y = v[1]
		}
	}
	if m := scaleRe.FindStringSubmatch(s); m != nil {
		if v := parseCoords(m[1]); len(v) >= 1 && v[0] > 0 {
			t.Scale = v[0]
		}
	}
	return t
}
