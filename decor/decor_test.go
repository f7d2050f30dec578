package decor

import (
	"bytes"
	"errors"
	"image/color"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func TestCornerRadius(t *testing.T) {
	d := New()
	for _, radius := range []float64{0, 0.5, 12, 1e6} {
		n := view.NewNode(100, 40)
		require.NoError(t, d.ApplyCornerRadius(n, radius))
		require.Equal(t, radius, n.Layer().CornerRadius)
		require.True(t, n.Layer().MasksToBounds)
	}

	n := view.NewNode(100, 40)
	err := d.ApplyCornerRadius(n, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
	var rangeErr *OutOfRangeParameterError
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, "radius", rangeErr.Param)
	require.Equal(t, view.NewLayer(), *n.Layer())

	require.Error(t, d.ApplyCornerRadius(n, math.NaN()))
}

func TestRoundCorners(t *testing.T) {
	d := New()
	n := view.NewNode(100, 40)
	for _, corners := range []viewpath.Corner{viewpath.TopLeft, viewpath.TopLeft | viewpath.BottomRight, viewpath.AllCorners} {
		require.NoError(t, d.RoundCorners(n, corners, 8))
		mask, ok := n.Layer().Mask.(*view.ShapeLayer)
		require.True(t, ok)
		require.Equal(t, view.RoleMask, mask.Kind())
		require.Equal(t, n.Bounds(), mask.Frame)
		require.Equal(t, viewpath.RoundedRectPath(n.Bounds(), corners, 8), mask.Path)
	}
	// masks are replaced, never stacked
	require.Empty(t, n.Layer().Sublayers)

	require.ErrorIs(t, d.RoundCorners(n, viewpath.AllCorners, -2), ErrOutOfRange)
}

func TestDegenerateBoundsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	d := New(WithLogger(log.New(&buf, "", 0)))
	n := view.NewNode(0, 0)
	require.NoError(t, d.RoundCorners(n, viewpath.AllCorners, 4))
	require.NotNil(t, n.Layer().Mask)
	require.Contains(t, buf.String(), "zero sized bounds")
}

func TestBorder(t *testing.T) {
	d := New()
	n := view.NewNode(100, 40)
	require.NoError(t, d.ApplyBorder(n, 6, red, 2))
	l := n.Layer()
	require.Equal(t, 6., l.CornerRadius)
	require.Equal(t, color.Color(red), l.BorderColor)
	require.Equal(t, 2., l.BorderWidth)

	require.ErrorIs(t, d.ApplyBorder(n, 6, red, -1), ErrOutOfRange)
	require.ErrorIs(t, d.ApplyBorder(n, -6, red, 1), ErrOutOfRange)
	require.Equal(t, 2., l.BorderWidth)
}

func TestShadow(t *testing.T) {
	d := New()
	n := view.NewNode(100, 40)
	n.Layer().MasksToBounds = true
	require.NoError(t, d.ApplyShadow(n, DefaultShadow))
	s := n.Layer().Shadow
	require.False(t, n.Layer().MasksToBounds)
	require.Equal(t, 0.5, s.Opacity)
	require.Equal(t, viewpath.Point{Y: 2}, s.Offset)
	require.Equal(t, 4., s.Radius)
	require.Nil(t, s.Path)
	require.True(t, s.IsVisible())

	bad := DefaultShadow
	bad.Opacity = 1.5
	require.ErrorIs(t, d.ApplyShadow(n, bad), ErrOutOfRange)
	bad = DefaultShadow
	bad.Radius = -1
	require.ErrorIs(t, d.ApplyShadow(n, bad), ErrOutOfRange)
	require.Equal(t, 0.5, n.Layer().Shadow.Opacity)
}

func TestInnerGlow(t *testing.T) {
	d := New()
	n := view.NewNode(100, 40)
	require.NoError(t, d.ApplyInnerGlow(n, blue, 5, 0.8))
	s := n.Layer().Shadow
	require.Equal(t, 0.8, s.Opacity)
	require.Equal(t, viewpath.Point{}, s.Offset)
	require.Equal(t, viewpath.Rect{X: -5, Y: -5, W: 110, H: 50}, s.Path.Bounds())
	require.False(t, n.Layer().MasksToBounds)

	d.RemoveInnerGlow(n)
	require.Equal(t, view.NewNode(100, 40).Layer(), n.Layer())

	require.ErrorIs(t, d.ApplyInnerGlow(n, blue, 5, -0.1), ErrOutOfRange)
	require.ErrorIs(t, d.ApplyInnerGlow(n, blue, -5, 0.1), ErrOutOfRange)
	require.Zero(t, n.Layer().Shadow.Opacity)
}

func TestErrorMessages(t *testing.T) {
	err := error(&OutOfRangeParameterError{Op: "ApplyFade", Param: "percentage", Value: 0.6, Min: 0, Max: 0.5, Exclusive: true})
	require.Equal(t, "decor: ApplyFade: percentage 0.6 not in (0, 0.5)", err.Error())
	require.False(t, errors.Is(err, ErrInvalidGeometry))

	err = &InvalidGeometryError{Op: "ApplyTopCurve", Param: "divisor", Value: 0}
	require.Equal(t, "decor: ApplyTopCurve: invalid divisor 0", err.Error())
	require.False(t, errors.Is(err, ErrOutOfRange))
}

func TestPathMask(t *testing.T) {
	d := New()
	n := view.NewNode(100, 40)
	p := viewpath.OvalPath(n.Bounds())
	d.ApplyPathMask(n, p)
	require.Equal(t, p, n.Layer().Mask.(*view.ShapeLayer).Path)
	d.RemoveMask(n)
	require.Nil(t, n.Layer().Mask)
}
