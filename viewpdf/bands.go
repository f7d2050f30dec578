package viewpdf

import (
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// band is a region of a gradient with (almost) constant color
type band struct {
	region viewpath.Path // in the coordinates of the parent layer
	color  color.NRGBA
}

// gradientBands splits the frame of `g` in bands: `steps` bands
// along the ramp, plus one for each padded area reached by the frame.
// Bands are stripes orthogonal to the axis for axial gradients, and
// rings around the center for radial ones. They cover the whole frame.
func gradientBands(g *view.GradientLayer, steps int) []band {
	grad := g.Gradient()
	f := g.Frame

	// range of the offsets reached in the frame
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range [4]viewpath.Point{
		{X: f.X, Y: f.Y}, {X: f.MaxX(), Y: f.Y},
		{X: f.X, Y: f.MaxY()}, {X: f.MaxX(), Y: f.MaxY()},
	} {
		o := g.OffsetAt(p.X, p.Y)
		lo, hi = math.Min(lo, o), math.Max(hi, o)
	}
	if g.Type == view.Radial {
		lo = 0 // the center may be inside the frame
	}

	type span struct{ t0, t1, at float64 }
	var spans []span
	// outside of [0, 1] the color is padded
	a, b := math.Max(lo, 0), math.Min(hi, 1)
	if lo < a {
		spans = append(spans, span{lo, a, a})
	}
	if b > a {
		for i := 0; i < steps; i++ {
			t0 := a + float64(i)*(b-a)/float64(steps)
			t1 := a + float64(i+1)*(b-a)/float64(steps)
			spans = append(spans, span{t0, t1, (t0 + t1) / 2})
		}
	}
	if hi > b {
		spans = append(spans, span{b, hi, b})
	}
	if len(spans) == 0 { // constant offset
		spans = append(spans, span{lo, hi, lo})
	}

	out := make([]band, len(spans))
	for i, sp := range spans {
		var region viewpath.Path
		if g.Type == view.Radial {
			region = ringRegion(g, sp.t0, sp.t1)
		} else {
			region = stripeRegion(g, sp.t0, sp.t1)
		}
		out[i] = band{region: region, color: grad.ColorAt(sp.at)}
	}
	return out
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

// stripeRegion returns the points with offset in [t0, t1].
// The stripe is computed in the unit square, then mapped to the frame.
func stripeRegion(g *view.GradientLayer, t0, t1 float64) viewpath.Path {
	f := g.Frame
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return viewpath.RectPath(f)
	}
	toFrame := rasterx.Identity.Translate(f.X, f.Y).Scale(f.W, f.H)
	// long enough to cross the unit square
	k := 2 + math.Hypot(g.Start.X, g.Start.Y)
	nx, ny := -dy/l*k, dx/l*k
	at := func(t, side float64) fixed.Point26_6 {
		return toFixed(toFrame.Transform(g.Start.X+t*dx+side*nx, g.Start.Y+t*dy+side*ny))
	}

	var p viewpath.Path
	p.Start(at(t0, 1))
	p.Line(at(t1, 1))
	p.Line(at(t1, -1))
	p.Line(at(t0, -1))
	p.Stop(true)
	return p
}

// ringRegion returns the points with offset in [t0, t1]: an ellipse
// with a reversed inner ellipse, punched by the non-zero winding rule.
func ringRegion(g *view.GradientLayer, t0, t1 float64) viewpath.Path {
	f := g.Frame
	r := math.Hypot(g.End.X-g.Start.X, g.End.Y-g.Start.Y)
	if r == 0 {
		return viewpath.RectPath(f)
	}
	c := f.UnitPoint(g.Start)
	ellipse := func(t float64) viewpath.Path {
		rx, ry := r*t*f.W, r*t*f.H
		return viewpath.OvalPath(viewpath.Rect{X: c.X - rx, Y: c.Y - ry, W: 2 * rx, H: 2 * ry})
	}
	p := ellipse(t1)
	if t0 > 0 {
		p.Append(ellipse(t0).Reversed())
	}
	return p
}
