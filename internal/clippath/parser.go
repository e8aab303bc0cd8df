package clippath

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/youruser/caseprint/internal/metrics"
)

// Command letters exclude e/E so exponents stay inside their number.
var segmentRe = regexp.MustCompile(`([A-DF-Za-df-z])([^A-DF-Za-df-z]*)`)

var numberRe = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// ParsePath tokenizes SVG path data into absolute commands. It never fails:
// unsupported commands are skipped with a
// warning and incomplete argument groups are ignored.
func ParsePath(d string) []Command {
	var (
		cmds           []Command
		curX, curY     float64
		startX, startY float64
	)

	for _, match := range segmentRe.FindAllStringSubmatch(d, -1) {
		letter := match[1]
		op := Op(strings.ToUpper(letter))
		n, ok := arity[op]
		if !ok {
			slog.Warn("dropping unsupported path command", "command", letter)
			metrics.DroppedPathCommands.Inc()
			continue
		}
		relative := letter != string(op)
		args := parseCoords(match[2])

		if op == ClosePath {
			cmds = append(cmds, Command{Op: ClosePath})
			curX, curY = startX, startY
			continue
		}

		for i := 0; i+n <= len(args); i += n {
			group := append([]float64(nil), args[i:i+n]...)
			if relative {
				toAbsolute(op, group, curX, curY)
			}
			cur := op
			// Extra pairs after a moveto are implicit linetos.
			if op == MoveTo && i > 0 {
				cur = LineTo
			}
			cmds = append(cmds, Command{Op: cur, Args: group})

			switch cur {
			case MoveTo:
				curX, curY = group[0], group[1]
				startX, startY = curX, curY
			case HLineTo:
				curX = group[0]
			case VLineTo:
				curY = group[0]
			default:
				curX, curY = group[n-2], group[n-1]
			}
		}
	}
	return cmds
}

func toAbsolute(op Op, args []float64, curX, curY float64) {
	switch op {
	case HLineTo:
		args[0] += curX
	case VLineTo:
		args[0] += curY
	default:
		for i := 0; i+1 < len(args); i += 2 {
			args[i] += curX
			args[i+1] += curY
		}
	}
}

// parseCoords extracts every number in s. Signs and a second decimal point
// start a new number, so "10-20" and "1.5.5" both yield two values.
func parseCoords(s string) []float64 {
	var coords []float64
	for _, part := range numberRe.FindAllString(s, -1) {
		val, err := strconv.ParseFloat(part, 64)
		if err == nil {
			coords = append(coords, val)
		}
	}
	return coords
}
