package viewpath

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 0.05 }

func rectApprox(t *testing.T, got, exp Rect) {
	t.Helper()
	if !(approx(got.X, exp.X) && approx(got.Y, exp.Y) && approx(got.W, exp.W) && approx(got.H, exp.H)) {
		t.Fatalf("expected bounds %v, got %v", exp, got)
	}
}

func TestRectPath(t *testing.T) {
	p := RectPath(Rect{X: 10, Y: 20, W: 100, H: 50})
	if len(p) != 5 {
		t.Fatalf("expected 4 points and a close, got %s", p)
	}
	if _, ok := p[len(p)-1].(Close); !ok {
		t.Fatalf("rectangle should be closed: %s", p)
	}
	rectApprox(t, p.Bounds(), Rect{X: 10, Y: 20, W: 100, H: 50})

	if p := RectPath(Rect{W: 0, H: 10}); len(p) != 0 {
		t.Fatalf("degenerate rectangle should give an empty path, got %s", p)
	}
}

func TestRoundedRectPath(t *testing.T) {
	r := Rect{W: 100, H: 40}
	for _, corners := range []Corner{TopLeft, TopRight | BottomLeft, AllCorners} {
		p := RoundedRectPath(r, corners, 10)
		rectApprox(t, p.Bounds(), r)

		var arcs int
		for _, op := range p {
			if _, ok := op.(CubicTo); ok {
				arcs++
			}
		}
		exp := 0
		for c := TopLeft; c <= BottomRight; c <<= 1 {
			if corners&c != 0 {
				exp++
			}
		}
		if arcs != exp {
			t.Errorf("corners %s: expected %d arcs, got %d", corners, exp, arcs)
		}
	}

	// radius is clamped to half the smallest side
	p := RoundedRectPath(r, AllCorners, 1000)
	rectApprox(t, p.Bounds(), r)

	if p := RoundedRectPath(Rect{}, AllCorners, 10); len(p) != 0 {
		t.Fatalf("zero sized bounds should give an empty path, got %s", p)
	}
}

func TestOvalBounds(t *testing.T) {
	r := Rect{X: -5, Y: 3, W: 60, H: 20}
	rectApprox(t, OvalPath(r).Bounds(), r)
}

func TestReversed(t *testing.T) {
	p := RectPath(Rect{W: 10, H: 10})
	rev := p.Reversed()
	if len(rev) != len(p) {
		t.Fatalf("expected same length, got %s", rev)
	}
	// the reversed rectangle starts at its last corner and goes back
	if got := fixed.Point26_6(rev[0].(MoveTo)); got != toFixedP(0, 10) {
		t.Fatalf("unexpected start %v", got)
	}
	if got := fixed.Point26_6(rev[len(rev)-2].(LineTo)); got != toFixedP(0, 0) {
		t.Fatalf("unexpected end %v", got)
	}
	if _, ok := rev[len(rev)-1].(Close); !ok {
		t.Fatal("closed state should be kept")
	}

	// reversing twice gives back the same drawing
	twice := OvalPath(Rect{W: 30, H: 20}).Reversed().Reversed()
	if twice.String() != OvalPath(Rect{W: 30, H: 20}).String() {
		t.Fatalf("double reversal mismatch:\n%s\n%s", twice, OvalPath(Rect{W: 30, H: 20}))
	}
}

func TestAppendAndTransform(t *testing.T) {
	var p Path
	p.Append(RectPath(Rect{W: 10, H: 10}))
	p.Append(OvalPath(Rect{X: 20, W: 10, H: 10}))
	rectApprox(t, p.Bounds(), Rect{W: 30, H: 10})

	moved := p.Transform(rasterx.Identity.Translate(5, 5))
	rectApprox(t, moved.Bounds(), Rect{X: 5, Y: 5, W: 30, H: 10})
}

type recorder struct{ calls []string }

func (r *recorder) Start(a fixed.Point26_6)            { r.calls = append(r.calls, "start") }
func (r *recorder) Line(b fixed.Point26_6)             { r.calls = append(r.calls, "line") }
func (r *recorder) QuadBezier(b, c fixed.Point26_6)    { r.calls = append(r.calls, "quad") }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.calls = append(r.calls, "cube") }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.calls = append(r.calls, "close")
	} else {
		r.calls = append(r.calls, "stop")
	}
}

func TestAddTo(t *testing.T) {
	var r recorder
	RectPath(Rect{W: 1, H: 1}).AddTo(&r)
	got := strings.Join(r.calls, " ")
	if got != "stop start line line line close stop" {
		t.Fatalf("unexpected calls %s", got)
	}
}

func TestParseSVGPath(t *testing.T) {
	p, err := ParseSVGPath("M10,10 h20 v20 H10 z m5 5 l1-1 Q 20 20 30 30 c1,1 2,2 3,3 Z")
	if err != nil {
		t.Fatal(err)
	}
	exp := "M10.000,10.000 L30.000,10.000 L30.000,30.000 L10.000,30.000 Z " +
		"M15.000,15.000 L16.000,14.000 Q20.000,20.000,30.000,30.000 C31.000,31.000,32.000,32.000,33.000,33.000 Z"
	if p.String() != exp {
		t.Fatalf("expected\n%s\ngot\n%s", exp, p)
	}

	for _, bad := range []string{"L10 10", "M10", "M0 0 Q1 2 3", "M0 0 X2", "M0 0 Z 1"} {
		if _, err := ParseSVGPath(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestReadMaskSVG(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50">
	<title>mask</title>
	<rect x="0" y="25" width="100" height="25"/>
	<ellipse cx="50" cy="25" rx="60" ry="25"/>
	<path d="M0 0 L10 0 L10 10 Z"/>
</svg>`
	p, viewBox, err := ReadMaskSVG(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if viewBox != (Rect{W: 100, H: 50}) {
		t.Fatalf("unexpected viewBox %v", viewBox)
	}
	rectApprox(t, p.Bounds(), Rect{X: -10, W: 120, H: 50})

	if _, _, err := ReadMaskSVG(strings.NewReader(`<svg width="10" height="10"></svg>`)); err == nil {
		t.Fatal("expected error for a document without shapes")
	}
}

func TestGradientColorAt(t *testing.T) {
	g := Gradient{
		Direction: Linear{0, 0, 1, 0},
		Stops: []GradStop{
			{StopColor: color.White, Offset: 0.2, Opacity: 1},
			{StopColor: color.White, Offset: 0.8, Opacity: 0},
		},
	}
	if g.IsRadial() {
		t.Fatal("linear gradient reported as radial")
	}
	if a := g.ColorAt(0).A; a != 255 {
		t.Errorf("expected padding with the first stop, got alpha %d", a)
	}
	if a := g.ColorAt(0.5).A; a < 120 || a > 135 {
		t.Errorf("expected half opacity in the middle, got alpha %d", a)
	}
	if a := g.ColorAt(1).A; a != 0 {
		t.Errorf("expected padding with the last stop, got alpha %d", a)
	}
}

