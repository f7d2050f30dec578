package viewraster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func coloredNode(w, h float64, c color.Color) *view.Node {
	n := view.NewNode(w, h)
	n.Layer().BackgroundColor = c
	return n
}

// saveForInspection writes the image in the test temp dir, for debugging
func saveForInspection(t *testing.T, n view.View, opts Options) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, n, opts))
	require.NoError(t, os.WriteFile(filepath.Join(t.TempDir(), "out.png"), buf.Bytes(), 0o644))
}

func TestBackground(t *testing.T) {
	n := coloredNode(20, 10, red)
	img := Render(n, Options{})
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
	require.Equal(t, red, img.NRGBAAt(10, 5))

	img = Render(n, Options{Scale: 2, Margin: 5, Background: color.White})
	require.Equal(t, 60, img.Bounds().Dx())
	require.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, img.NRGBAAt(2, 2))
	require.Equal(t, red, img.NRGBAAt(30, 20))
}

func TestCornerRadiusClips(t *testing.T) {
	n := coloredNode(40, 40, red)
	require.NoError(t, decor.New().ApplyCornerRadius(n, 10))
	img := Render(n, Options{})
	require.Zero(t, img.NRGBAAt(0, 0).A)
	require.Equal(t, red, img.NRGBAAt(20, 20))
	require.Equal(t, red, img.NRGBAAt(20, 0))
}

func TestRoundSomeCorners(t *testing.T) {
	n := coloredNode(40, 40, red)
	require.NoError(t, decor.New().RoundCorners(n, viewpath.TopLeft, 10))
	img := Render(n, Options{})
	require.Zero(t, img.NRGBAAt(0, 0).A)
	require.Equal(t, red, img.NRGBAAt(39, 0))
	require.Equal(t, red, img.NRGBAAt(0, 39))
}

func TestCurveMasks(t *testing.T) {
	type pixel struct {
		x, y  int
		alpha uint8
	}
	for _, test := range []struct {
		edge   decor.Edge
		pixels []pixel
	}{
		{decor.EdgeTop, []pixel{{0, 0, 0}, {99, 0, 0}, {0, 39, 0xff}, {99, 39, 0xff}, {50, 5, 0xff}, {50, 20, 0xff}}},
		{decor.EdgeBottom, []pixel{{0, 39, 0}, {99, 39, 0}, {0, 0, 0xff}, {99, 0, 0xff}, {50, 34, 0xff}, {50, 20, 0xff}}},
	} {
		n := coloredNode(100, 40, red)
		d := decor.New()
		if test.edge == decor.EdgeTop {
			require.NoError(t, d.ApplyTopCurve(n, 4))
		} else {
			require.NoError(t, d.ApplyBottomCurve(n, 4))
		}
		img := Render(n, Options{})
		for _, p := range test.pixels {
			require.Equal(t, p.alpha, img.NRGBAAt(p.x, p.y).A, "%s edge at (%d, %d)", test.edge, p.x, p.y)
		}
	}
}

func TestFadeMask(t *testing.T) {
	n := coloredNode(10, 100, color.White)
	require.NoError(t, decor.New().ApplyFade(n, decor.FadeSpec{Style: decor.FadeBottom, Percentage: 0.1}))
	img := Render(n, Options{})
	require.Equal(t, uint8(0xff), img.NRGBAAt(5, 50).A)
	require.Less(t, img.NRGBAAt(5, 99).A, uint8(40))
}

func TestLinearBackground(t *testing.T) {
	n := view.NewNode(10, 100)
	require.NoError(t, decor.New().ApplyLinearBackground(n, red, nil, blue, decor.TopToBottom))
	img := Render(n, Options{})
	top, bottom := img.NRGBAAt(5, 0), img.NRGBAAt(5, 99)
	require.Greater(t, top.R, uint8(200))
	require.Less(t, top.B, uint8(50))
	require.Greater(t, bottom.B, uint8(200))
	require.Less(t, bottom.R, uint8(50))
	require.Equal(t, uint8(0xff), top.A)
}

func TestBorder(t *testing.T) {
	n := coloredNode(40, 40, color.White)
	require.NoError(t, decor.New().ApplyBorder(n, 0, blue, 4))
	img := Render(n, Options{})
	require.Equal(t, blue, img.NRGBAAt(1, 20))
	require.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, img.NRGBAAt(20, 20))
}

func TestShadow(t *testing.T) {
	n := coloredNode(20, 20, color.White)
	require.NoError(t, decor.New().ApplyShadow(n, decor.Shadow{Color: color.Black, Opacity: 1, Offset: viewpath.Point{Y: 5}}))
	margin := FitMargin(n.Layer(), n.Bounds())
	require.Equal(t, 5., margin)

	img := Render(n, Options{Margin: margin})
	below := img.NRGBAAt(15, 5+20+2)
	require.Equal(t, uint8(0xff), below.A)
	require.Zero(t, below.R)
	// the view is drawn on top of its shadow
	require.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, img.NRGBAAt(15, 15))

	saveForInspection(t, n, Options{Margin: margin})
}

func TestInnerGlowRing(t *testing.T) {
	n := view.NewNode(20, 20)
	require.NoError(t, decor.New().ApplyInnerGlow(n, blue, 4, 1))
	margin := FitMargin(n.Layer(), n.Bounds())
	require.Equal(t, 10., margin)

	img := Render(n, Options{Margin: margin})
	require.Greater(t, img.NRGBAAt(8, 20).A, uint8(0))
	require.Zero(t, img.NRGBAAt(20, 20).A)
}

func TestOpacityAndTransform(t *testing.T) {
	n := coloredNode(40, 40, red)
	n.Layer().Opacity = 0
	require.Zero(t, Render(n, Options{}).NRGBAAt(20, 20).A)

	n.Layer().Opacity = 1
	n.Layer().Transform = view.Scaling(0.5, 0.5)
	img := Render(n, Options{})
	require.Zero(t, img.NRGBAAt(2, 2).A)
	require.Equal(t, uint8(0xff), img.NRGBAAt(20, 20).A)

	n.Layer().Transform = view.RotationAroundY(1.5707963267948966, -1./500)
	require.Zero(t, Render(n, Options{}).NRGBAAt(20, 20).A)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, coloredNode(12, 7, red), Options{}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 7, img.Bounds().Dy())
}

func TestZeroSizedView(t *testing.T) {
	img := Render(view.NewNode(0, 0), Options{})
	require.Zero(t, img.Bounds().Dx())
}
