package viewfyne

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/viewdecor/decor"
	"github.com/benoitkugler/viewdecor/viewpath"
)

func TestViewBounds(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(fyne.NewSize(20, 10))
	require.Equal(t, fyne.NewSize(20, 10), v.MinSize())

	v.Resize(fyne.NewSize(80, 40))
	require.Equal(t, viewpath.Rect{W: 80, H: 40}, v.Bounds())
	require.Equal(t, 1., v.Layer().Opacity)
}

func TestViewPaints(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(fyne.NewSize(20, 10))
	v.Resize(fyne.NewSize(40, 20))
	require.NoError(t, decor.New().ApplyBorder(v, 4, color.Black, 1))
	v.Layer().BackgroundColor = color.White

	objects := test.WidgetRenderer(v).Objects()
	require.Len(t, objects, 1)
	_, ok := objects[0].(*canvas.Raster)
	require.True(t, ok)

	img := v.paint(80, 40) // HiDPI raster
	require.Equal(t, 80, img.Bounds().Dx())
	_, _, _, a := img.At(40, 20).RGBA()
	require.Equal(t, uint32(0xffff), a)
}

func TestViewMarginShowsShadow(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(fyne.NewSize(20, 10))
	v.SetMargin(6)
	require.Equal(t, fyne.NewSize(32, 22), v.MinSize())

	v.Resize(fyne.NewSize(52, 32))
	require.Equal(t, viewpath.Rect{W: 40, H: 20}, v.Bounds())
	v.Layer().BackgroundColor = color.White
	require.NoError(t, decor.New().ApplyShadow(v, decor.Shadow{Color: color.Black, Opacity: 1, Offset: viewpath.Point{Y: 4}}))

	img := v.paint(52, 32)
	require.Equal(t, 52, img.Bounds().Dx())
	// below the view, in the margin
	_, _, _, a := img.At(26, 6+20+2).RGBA()
	require.Equal(t, uint32(0xffff), a)
	// above the view, nothing
	_, _, _, a = img.At(26, 2).RGBA()
	require.Zero(t, a)
}

func TestSchedulerTick(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(fyne.NewSize(20, 10))
	v.Resize(fyne.NewSize(40, 20))
	anim, err := decor.TransitionSpec{Kind: decor.TransitionSlideFromLeft}.Animation(v.Bounds())
	require.NoError(t, err)

	step := tick(v, anim)
	step(0)
	require.Equal(t, 0., v.Layer().Opacity)
	require.Equal(t, -40., v.Layer().Transform.Affine.E)
	step(1)
	require.Equal(t, 1., v.Layer().Opacity)
	require.True(t, v.Layer().Transform.IsIdentity())
}
