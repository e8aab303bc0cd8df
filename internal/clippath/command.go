// Package clippath parses SVG path data for phone-case outlines and replays it
// onto any path sink at an arbitrary scale. Preview and export both go through
// Build, so the only resolution-dependent input is the container size.
package clippath

// Op is a normalized path operation. Relative SVG commands are converted to
// absolute coordinates while parsing, so only these ops reach a replay.
type Op string

const (
	MoveTo          Op = "M"
	LineTo          Op = "L"
	HLineTo         Op = "H"
	VLineTo         Op = "V"
	CubicBezier     Op = "C"
	QuadraticBezier Op = "Q"
	ClosePath       Op = "Z"
)

// arity is the number of arguments consumed by one repetition of an op.
var arity = map[Op]int{
	MoveTo:          2,
	LineTo:          2,
	HLineTo:         1,
	VLineTo:         1,
	CubicBezier:     6,
	QuadraticBezier: 4,
	ClosePath:       0,
}

// Command is one path operation with absolute viewBox coordinates.
type Command struct {
	Op   Op        `json:"op"`
	Args []float64 `json:"args"`
}

// Sink receives replayed path segments. *vector.Rasterizer satisfies it.
type Sink interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}
