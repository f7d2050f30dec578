package view

import (
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/srwiley/rasterx"
)

func TestNewNode(t *testing.T) {
	n := NewNode(100, 40)
	if n.Bounds() != (viewpath.Rect{W: 100, H: 40}) {
		t.Fatalf("unexpected bounds %v", n.Bounds())
	}
	l := n.Layer()
	if l.Opacity != 1 || !l.Transform.IsIdentity() {
		t.Fatalf("new layer should be opaque and untransformed: %+v", l)
	}
	if l.Mask != nil || len(l.Sublayers) != 0 || l.Shadow.IsVisible() {
		t.Fatal("new layer should be bare")
	}
	n.SetBounds(viewpath.Rect{X: 1, Y: 2, W: 3, H: 4})
	if n.Bounds().MaxY() != 6 {
		t.Fatalf("unexpected bounds %v", n.Bounds())
	}
}

func TestSublayers(t *testing.T) {
	var l Layer
	content := &ShapeLayer{Role: RoleContent}
	bg1 := &GradientLayer{Role: RoleBackground}
	bg2 := &GradientLayer{Role: RoleBackground}

	l.AddSublayer(content)
	l.InsertSublayer(bg1, 0)
	if l.Sublayers[0] != Sublayer(bg1) || l.Sublayers[1] != Sublayer(content) {
		t.Fatalf("unexpected order %v", l.Sublayers)
	}
	l.InsertSublayer(bg2, 10) // clamped
	if l.Sublayers[2] != Sublayer(bg2) {
		t.Fatalf("unexpected order %v", l.Sublayers)
	}
	if removed := l.RemoveSublayers(RoleBackground); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(l.Sublayers) != 1 || l.Sublayers[0] != Sublayer(content) {
		t.Fatalf("content layer should be kept: %v", l.Sublayers)
	}
}

func TestShadowVisibility(t *testing.T) {
	if (Shadow{Color: color.Black, Opacity: 0}).IsVisible() {
		t.Error("null opacity should hide the shadow")
	}
	if (Shadow{Color: color.Transparent, Opacity: 1}).IsVisible() {
		t.Error("transparent color should hide the shadow")
	}
	if !(Shadow{Color: color.Black, Opacity: 0.5}).IsVisible() {
		t.Error("expected a visible shadow")
	}
}

func TestGradientLayer(t *testing.T) {
	g := &GradientLayer{
		Frame:  viewpath.Rect{W: 200, H: 100},
		Colors: []color.Color{color.White, color.Black, color.White},
		Start:  viewpath.Point{X: 0, Y: 0.5},
		End:    viewpath.Point{X: 1, Y: 0.5},
	}
	grad := g.Gradient()
	if len(grad.Stops) != 3 || grad.Stops[1].Offset != 0.5 || grad.Stops[2].Offset != 1 {
		t.Fatalf("implicit locations should be evenly spread: %+v", grad.Stops)
	}
	if grad.IsRadial() {
		t.Fatal("axial gradient reported as radial")
	}
	if off := g.OffsetAt(50, 80); math.Abs(off-0.25) > 1e-9 {
		t.Fatalf("expected offset 0.25, got %f", off)
	}

	g.Type = Radial
	g.Start, g.End = viewpath.Point{X: 0.5, Y: 0.5}, viewpath.Point{X: 1, Y: 0.5}
	if !g.Gradient().IsRadial() {
		t.Fatal("expected radial gradient")
	}
	if off := g.OffsetAt(100, 50); off != 0 {
		t.Fatalf("center should be at offset 0, got %f", off)
	}
	if off := g.OffsetAt(200, 50); math.Abs(off-1) > 1e-9 {
		t.Fatalf("edge should be at offset 1, got %f", off)
	}
}

func TestTransform(t *testing.T) {
	bounds := viewpath.Rect{W: 100, H: 50}

	if m := Identity.Matrix(bounds); m != rasterx.Identity {
		t.Fatalf("identity should project to identity, got %v", m)
	}

	// scaling happens around the center
	m := Scaling(0.1, 0.1).Matrix(bounds)
	x, y := m.Transform(50, 25)
	if math.Abs(x-50) > 1e-9 || math.Abs(y-25) > 1e-9 {
		t.Fatalf("center should stay in place, got %f,%f", x, y)
	}

	half := Translation(-100, 0).Lerp(Identity, 0.5)
	if half.Affine.E != -50 {
		t.Fatalf("expected half translation, got %v", half.Affine)
	}

	flip := RotationAroundY(math.Pi/2, -1./500)
	if flip.IsIdentity() {
		t.Fatal("flip should not be identity")
	}
	if m := flip.Matrix(bounds); math.Abs(m.A) > 1e-9 {
		t.Fatalf("a quarter turn should squeeze the layer to a line, got %v", m)
	}
}
