// Implements a raster backend for decorated views,
// by wrapping rasterx.
package viewraster

import (
	"image/color"

	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Painter fills and strokes paths on a destination image.
type Painter struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewPainter returns a painter drawing on `dst`, with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewPainter(dst draw.Image) *Painter {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	return &Painter{
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, dst, b)),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, dst, b)),
	}
}

func toRasterxGradient(grad viewpath.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case viewpath.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
	case viewpath.Radial:
		points[0], points[1], points[2], points[3], points[4], _ = dir[0], dir[1], dir[2], dir[3], dir[4], dir[5] // in rasterx fr is ignored
		isRadial = true
	}
	out := rasterx.Gradient{
		Points:   points,
		Stops:    toRasterxStops(grad.Stops),
		Matrix:   rasterx.Identity,
		Spread:   rasterx.PadSpread,
		Units:    rasterx.ObjectBoundingBox,
		IsRadial: isRadial,
	}
	out.Bounds.X, out.Bounds.Y, out.Bounds.W, out.Bounds.H = grad.Bounds.X, grad.Bounds.Y, grad.Bounds.W, grad.Bounds.H
	return out
}

// toRasterxStops moves the alpha of the stop colors into their opacity,
// since rasterx ignores it.
// A fully transparent stop borrows the hue of its neighbor, so that
// fading to transparent does not go through black.
func toRasterxStops(stops []viewpath.GradStop) []rasterx.GradStop {
	out := make([]rasterx.GradStop, len(stops))
	for i, s := range stops {
		c := color.NRGBAModel.Convert(s.StopColor).(color.NRGBA)
		out[i] = rasterx.GradStop{
			StopColor: color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff},
			Offset:    s.Offset,
			Opacity:   s.Opacity * float64(c.A) / 0xff,
		}
	}
	for i := range out {
		if out[i].Opacity != 0 {
			continue
		}
		if i > 0 && out[i-1].Opacity != 0 {
			out[i].StopColor = out[i-1].StopColor
		} else if i+1 < len(out) && out[i+1].Opacity != 0 {
			out[i].StopColor = out[i+1].StopColor
		}
	}
	return out
}

// resolve gradient color
// `pattern` is either a color.Color or a viewpath.Gradient
func setColorFromPattern(pattern interface{}, scanner rasterx.Scanner) {
	switch pattern := pattern.(type) {
	case color.Color:
		scanner.SetColor(pattern)
	case viewpath.Gradient:
		rasterxGradient := toRasterxGradient(pattern)
		scanner.SetColor(rasterxGradient.GetColorFunction(1))
	}
}

// Fill fills `path` (in pixels) with `pattern`, a color.Color
// or a viewpath.Gradient, using the non-zero winding rule.
func (pt *Painter) Fill(path viewpath.Path, pattern interface{}) {
	pt.filler.Clear()
	path.AddTo(pt.filler)
	setColorFromPattern(pattern, pt.filler.Scanner)
	pt.filler.Draw()
	pt.filler.Clear()
}

// Stroke draws the outline of `path` (in pixels), with round joins.
func (pt *Painter) Stroke(path viewpath.Path, width float64, c color.Color) {
	pt.dasher.Clear()
	pt.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	path.AddTo(pt.dasher)
	setColorFromPattern(c, pt.dasher.Scanner)
	pt.dasher.Draw()
	pt.dasher.Clear()
}
