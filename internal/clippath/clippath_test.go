package clippath

import (
	"math"
	"testing"

	"github.com/youruser/caseprint/internal/layout"
)

type segment struct {
	op  string
	pts []float32
}

type recorder struct {
	segs []segment
}

func (r *recorder) MoveTo(ax, ay float32) {
	r.segs = append(r.segs, segment{"M", []float32{ax, ay}})
}

func (r *recorder) LineTo(bx, by float32) {
	r.segs = append(r.segs, segment{"L", []float32{bx, by}})
}

func (r *recorder) QuadTo(bx, by, cx, cy float32) {
	r.segs = append(r.segs, segment{"Q", []float32{bx, by, cx, cy}})
}

func (r *recorder) CubeTo(bx, by, cx, cy, dx, dy float32) {
	r.segs = append(r.segs, segment{"C", []float32{bx, by, cx, cy, dx, dy}})
}

func (r *recorder) ClosePath() {
	r.segs = append(r.segs, segment{"Z", nil})
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Command
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "absolute commands",
			input: "M10,20 L30 40 H50 V60 Z",
			want: []Command{
				{Op: MoveTo, Args: []float64{10, 20}},
				{Op: LineTo, Args: []float64{30, 40}},
				{Op: HLineTo, Args: []float64{50}},
				{Op: VLineTo, Args: []float64{60}},
				{Op: ClosePath},
			},
		},
		{
			name:  "relative commands become absolute",
			input: "m10 10 l5 0 v5 h-5 z",
			want: []Command{
				{Op: MoveTo, Args: []float64{10, 10}},
				{Op: LineTo, Args: []float64{15, 10}},
				{Op: VLineTo, Args: []float64{15}},
				{Op: HLineTo, Args: []float64{10}},
				{Op: ClosePath},
			},
		},
		{
			name:  "curves",
			input: "M0,0 C1,2 3,4 5,6 Q7,8 9,10",
			want: []Command{
				{Op: MoveTo, Args: []float64{0, 0}},
				{Op: CubicBezier, Args: []float64{1, 2, 3, 4, 5, 6}},
				{Op: QuadraticBezier, Args: []float64{7, 8, 9, 10}},
			},
		},
		{
			name:  "implicit lineto after moveto",
			input: "M0 0 10 0 10 10",
			want: []Command{
				{Op: MoveTo, Args: []float64{0, 0}},
				{Op: LineTo, Args: []float64{10, 0}},
				{Op: LineTo, Args: []float64{10, 10}},
			},
		},
		{
			name:  "exponent stays in number",
			input: "M1e1,2E1",
			want: []Command{
				{Op: MoveTo, Args: []float64{10, 20}},
			},
		},
		{
			name:  "sign starts a new number",
			input: "M10-20 L30-40 L-5-5Z",
			want: []Command{
				{Op: MoveTo, Args: []float64{10, -20}},
				{Op: LineTo, Args: []float64{30, -40}},
				{Op: LineTo, Args: []float64{-5, -5}},
				{Op: ClosePath},
			},
		},
		{
			name:  "second decimal point starts a new number",
			input: "M1.5.5 L2.5.5",
			want: []Command{
				{Op: MoveTo, Args: []float64{1.5, 0.5}},
				{Op: LineTo, Args: []float64{2.5, 0.5}},
			},
		},
		{
			name:  "double dot splits",
			input: "M1..2 3 4",
			want: []Command{
				{Op: MoveTo, Args: []float64{1, 0.2}},
				{Op: LineTo, Args: []float64{3, 4}},
			},
		},
		{
			name:  "unsupported arc dropped",
			input: "M0 0 A5 5 0 0 1 10 10 L20 20",
			want: []Command{
				{Op: MoveTo, Args: []float64{0, 0}},
				{Op: LineTo, Args: []float64{20, 20}},
			},
		},
		{
			name:  "incomplete group ignored",
			input: "M0 0 L5",
			want: []Command{
				{Op: MoveTo, Args: []float64{0, 0}},
			},
		},
		{
			name:  "garbage",
			input: "hello world !!! ,,, 12",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePath(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i].Op != tt.want[i].Op {
					t.Errorf("cmd %d op = %s, want %s", i, got[i].Op, tt.want[i].Op)
				}
				if len(got[i].Args) != len(tt.want[i].Args) {
					t.Fatalf("cmd %d args = %v, want %v", i, got[i].Args, tt.want[i].Args)
				}
				for j := range got[i].Args {
					if math.Abs(got[i].Args[j]-tt.want[i].Args[j]) > 1e-9 {
						t.Errorf("cmd %d arg %d = %v, want %v", i, j, got[i].Args[j], tt.want[i].Args[j])
					}
				}
			}
		})
	}
}

func TestParsePathNeverPanics(t *testing.T) {
	inputs := []string{"", "Z", "zzzz", "M", "M,", "C1 2", "\x00\xff", "e5", "MNaN,Inf", "M 1 2 X 3 4 T 5 6 S 1 2 3 4"}
	for _, in := range inputs {
		_ = ParsePath(in)
	}
}

func TestReplayTracksCurrentPoint(t *testing.T) {
	rec := &recorder{}
	Replay(ParsePath("M10,10 H50 V30 H10 Z"), rec, Identity)

	want := []segment{
		{"M", []float32{10, 10}},
		{"L", []float32{50, 10}},
		{"L", []float32{50, 30}},
		{"L", []float32{10, 30}},
		{"Z", nil},
	}
	if len(rec.segs) != len(want) {
		t.Fatalf("segments = %v, want %v", rec.segs, want)
	}
	for i := range want {
		if rec.segs[i].op != want[i].op {
			t.Errorf("segment %d op = %s, want %s", i, rec.segs[i].op, want[i].op)
		}
		for j := range want[i].pts {
			if rec.segs[i].pts[j] != want[i].pts[j] {
				t.Errorf("segment %d = %v, want %v", i, rec.segs[i].pts, want[i].pts)
			}
		}
	}
}

func TestReplayClosesOpenSubpaths(t *testing.T) {
	rec := &recorder{}
	Replay(ParsePath("M0 0 L10 0 L10 10 M20 20 L30 20 L30 30"), rec, Identity)

	closes := 0
	for _, s := range rec.segs {
		if s.op == "Z" {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("closes = %d, want 2 (%v)", closes, rec.segs)
	}
}

func TestReplayLineAfterCloseRestartsAtSubpathStart(t *testing.T) {
	rec := &recorder{}
	Replay(ParsePath("M5 5 L10 5 L10 10 Z L0 10"), rec, Identity)

	// After Z the pen is back at (5,5), so the next segment starts there.
	idx := -1
	for i, s := range rec.segs {
		if s.op == "Z" {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(rec.segs) {
		t.Fatalf("unexpected segments %v", rec.segs)
	}
	next := rec.segs[idx+1]
	if next.op != "M" || next.pts[0] != 5 || next.pts[1] != 5 {
		t.Errorf("segment after close = %v, want M 5 5", next)
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in   string
		want Transform
	}{
		{"", Transform{Scale: 1}},
		{"translate(3)", Transform{X: 3, Scale: 1}},
		{"translate(3, -4)", Transform{X: 3, Y: -4, Scale: 1}},
		{"translate(1.48 3.1) scale(0.99)", Transform{X: 1.48, Y: 3.1, Scale: 0.99}},
		{"rotate(45)", Transform{Scale: 1}},
		{"scale(-2)", Transform{Scale: 1}},
	}
	for _, tt := range tests {
		got := ParseTransform(tt.in)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 || math.Abs(got.Scale-tt.want.Scale) > 1e-9 {
			t.Errorf("ParseTransform(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestBuildScalesLinearly(t *testing.T) {
	for _, fam := range layout.Families() {
		spec, ok := Lookup(fam)
		if !ok {
			t.Fatalf("no clip spec for family %s", fam)
		}
		small, large := &recorder{}, &recorder{}
		Build(spec, 100, 200)(small)
		Build(spec, 1000, 2000)(large)

		if len(small.segs) != len(large.segs) {
			t.Fatalf("%s: segment counts differ %d vs %d", fam, len(small.segs), len(large.segs))
		}
		for i := range small.segs {
			if small.segs[i].op != large.segs[i].op {
				t.Fatalf("%s: segment %d op differs", fam, i)
			}
			for j := range small.segs[i].pts {
				want := small.segs[i].pts[j] * 10
				got := large.segs[i].pts[j]
				if math.Abs(float64(got-want)) > 1e-2 {
					t.Errorf("%s: segment %d coord %d = %v, want %v", fam, i, j, got, want)
				}
			}
		}
	}
}

func TestBuildAppliesTranslateBeforeScale(t *testing.T) {
	spec := Spec{
		ViewBox:   ViewBox{Width: 100, Height: 100},
		Path:      "M0,0 L100,0 L100,100 Z",
		Transform: "translate(10, 20)",
	}
	rec := &recorder{}
	Build(spec, 200, 400)(rec)

	first := rec.segs[0]
	if first.pts[0] != 20 || first.pts[1] != 80 {
		t.Errorf("first point = %v, want [20 80]", first.pts)
	}
}

func TestBuildWithoutPathIsFullRect(t *testing.T) {
	rec := &recorder{}
	Build(Spec{ViewBox: ViewBox{Width: 10, Height: 10}}, 50, 80)(rec)
	if len(rec.segs) != 5 {
		t.Fatalf("segments = %v, want full rectangle", rec.segs)
	}
	corner := rec.segs[2].pts
	if corner[0] != 50 || corner[1] != 80 {
		t.Errorf("far corner = %v, want [50 80]", corner)
	}
}

func TestMask(t *testing.T) {
	t.Run("full rect is opaque", func(t *testing.T) {
		m := Mask(FullRect(20, 10), 20, 10)
		for y := 0; y < 10; y++ {
			for x := 0; x < 20; x++ {
				if a := m.AlphaAt(x, y).A; a != 0xff {
					t.Fatalf("alpha at %d,%d = %d, want 255", x, y, a)
				}
			}
		}
	})

	t.Run("case outline with camera cutout", func(t *testing.T) {
		spec, _ := Lookup(layout.FamilyIPhoneProMax)
		m := Mask(Build(spec, 300, 620), 300, 620)

		if a := m.AlphaAt(150, 400).A; a != 0xff {
			t.Errorf("body alpha = %d, want 255", a)
		}
		if a := m.AlphaAt(0, 0).A; a != 0 {
			t.Errorf("rounded corner alpha = %d, want 0", a)
		}
		if a := m.AlphaAt(81, 80).A; a != 0 {
			t.Errorf("camera cutout alpha = %d, want 0", a)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		m := Mask(FullRect(0, 0), 0, 0)
		if !m.Bounds().Empty() {
			t.Errorf("bounds = %v, want empty", m.Bounds())
		}
	})
}

func TestMaskParityAcrossResolutions(t *testing.T) {
	spec, _ := Lookup(layout.FamilyGalaxyUltra)
	small := Mask(Build(spec, 150, 315), 150, 315)
	large := Mask(Build(spec, 600, 1260), 600, 1260)

	// Sample pixel centres well away from edges; coverage must agree.
	for y := 5; y < 315; y += 10 {
		for x := 5; x < 150; x += 10 {
			s := small.AlphaAt(x, y).A
			l := large.AlphaAt(x*4+2, y*4+2).A
			if (s == 0xff && l == 0) || (s == 0 && l == 0xff) {
				t.Errorf("coverage mismatch at %d,%d: small=%d large=%d", x, y, s, l)
			}
		}
	}
}

func TestBuildForIDFamilyConsistency(t *testing.T) {
	reg := layout.Default()
	spellings := []string{"iPhone 17 Pro Max", "iphone 17 pro max", "IPHONE17PROMAX", "iPhone-17-Pro-Max", "Apple iPhone 17 Pro Max (2025)"}
	for _, s := range spellings {
		if id := reg.ClipPathID(s); id != layout.FamilyIPhoneProMax {
			t.Errorf("ClipPathID(%q) = %s, want %s", s, id, layout.FamilyIPhoneProMax)
		}
	}

	ref := &recorder{}
	BuildForID(reg.ClipPathID(spellings[0]), 100, 200)(ref)
	for _, s := range spellings[1:] {
		rec := &recorder{}
		BuildForID(reg.ClipPathID(s), 100, 200)(rec)
		if len(rec.segs) != len(ref.segs) {
			t.Errorf("%q traced %d segments, want %d", s, len(rec.segs), len(ref.segs))
		}
	}
}
