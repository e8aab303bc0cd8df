package clippath

// Mapping converts viewBox coordinates to container coordinates as
// ((coord*UserScale)+Offset)*Scale on each axis.
type Mapping struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
	UserScale        float64
}

// Identity maps viewBox coordinates onto themselves.
var Identity = Mapping{ScaleX: 1, ScaleY: 1, UserScale: 1}

func (m Mapping) x(v float64) float32 {
	return float32((v*m.userScale() + m.OffsetX) * m.ScaleX)
}

func (m Mapping) y(v float64) float32 {
	return float32((v*m.userScale() + m.OffsetY) * m.ScaleY)
}

func (m Mapping) userScale() float64 {
	if m.UserScale == 0 {
		return 1
	}
	return m.UserScale
}

// Replay draws cmds onto sink. It tracks the current point so H and V get
// their missing axis, starts a subpath when drawing begins without a moveto,
// and closes every open subpath the way a fill would.
func Replay(cmds []Command, sink Sink, m Mapping) {
	var (
		curX, curY     float64
		startX, startY float64
		open           bool
	)
	begin := func() {
		if !open {
			sink.MoveTo(m.x(curX), m.y(curY))
			startX, startY = curX, curY
			open = true
		}
	}

	for _, c := range cmds {
		if len(c.Args) < arity[c.Op] {
			continue
		}
		a := c.Args
		switch c.Op {
		case MoveTo:
			if open {
				sink.ClosePath()
			}
			curX, curY = a[0], a[1]
			startX, startY = curX, curY
			sink.MoveTo(m.x(curX), m.y(curY))
			open = true
		case LineTo:
			begin()
			curX, curY = a[0], a[1]
			sink.LineTo(m.x(curX), m.y(curY))
		case HLineTo:
			begin()
			curX = a[0]
			sink.LineTo(m.x(curX), m.y(curY))
		case VLineTo:
			begin()
			curY = a[0]
			sink.LineTo(m.x(curX), m.y(curY))
		case CubicBezier:
			begin()
			curX, curY = a[4], a[5]
			sink.CubeTo(m.x(a[0]), m.y(a[1]), m.x(a[2]), m.y(a[3]), m.x(curX), m.y(curY))
		case QuadraticBezier:
			begin()
			curX, curY = a[2], a[3]
			sink.QuadTo(m.x(a[0]), m.y(a[1]), m.x(curX), m.y(curY))
		case ClosePath:
			if open {
				sink.ClosePath()
				open = false
			}
			curX, curY = startX, startY
		}
	}
	if open {
		sink.ClosePath()
	}
}
