package viewpdf

import (
	"image/color"
	"math"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/srwiley/rasterx"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

const (
	// gradients are drawn as this many bands
	gradientSteps = 48
	// blurred shadows are drawn as this many outlines
	shadowSteps = 4
)

// Options configures WriteFile.
type Options struct {
	// Margin is the room left around the view bounds, so that
	// shadows are not cut. See viewraster.FitMargin.
	Margin float64
}

// WriteFile draws the view on a single page PDF, one point
// per view unit, and saves it at `path`.
func WriteFile(path string, v view.View, opts Options) error {
	margin := math.Max(opts.Margin, 0)
	b := v.Bounds()
	w, h := math.Max(b.W, 0)+2*margin, math.Max(b.H, 0)+2*margin

	ap := contentstream.NewAppearance(w, h)
	// PDF y axis points up
	ap.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, h}},
	)
	Draw(NewCanvas(&ap), v, margin)
	ap.Ops(contentstream.OpRestore{})

	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, ap.ToPageObject(true))
	return doc.WriteFile(path, nil)
}

// Draw paints the view on `c`, its bounds being moved to (margin, margin).
// The canvas y axis is expected to point down.
func Draw(c Canvas, v view.View, margin float64) {
	l := v.Layer()
	if l.Opacity <= 0 {
		return
	}
	bounds := v.Bounds()
	c.Save()
	defer c.Restore()
	c.Concat(rasterx.Identity.Translate(margin-bounds.X, margin-bounds.Y))
	if !l.Transform.IsIdentity() {
		m := l.Transform.Matrix(bounds)
		if math.Abs(m.A*m.D-m.B*m.C) < 1e-9 {
			return // seen edge-on
		}
		c.Concat(m)
	}

	d := drawer{c: c, bounds: bounds, opacity: math.Min(l.Opacity, 1)}
	if l.Shadow.IsVisible() {
		d.shadow(l)
	}
	d.content(l)
}

// drawer paints one layer
type drawer struct {
	c       Canvas
	bounds  viewpath.Rect
	opacity float64
}

func (d drawer) fill(p viewpath.Path, c color.Color, opacity float64) {
	p.AddTo(d.c)
	d.c.Fill(c, opacity)
}

func (d drawer) clip(p viewpath.Path) {
	p.AddTo(d.c)
	d.c.Clip()
}

func (d drawer) outline(l *view.Layer, inset float64) viewpath.Path {
	return viewpath.RoundedRectPath(d.bounds.Inset(inset, inset), viewpath.AllCorners, math.Max(l.CornerRadius-inset, 0))
}

// shadow draws the shadow path, or the outline of the layer
// content. A blur is approximated by outlines growing
// from -Radius/2 to Radius/2.
func (d drawer) shadow(l *view.Layer) {
	s := l.Shadow
	d.c.Save()
	defer d.c.Restore()
	d.c.Concat(rasterx.Identity.Translate(s.Offset.X, s.Offset.Y))

	opacity := math.Min(s.Opacity, 1) * d.opacity
	if len(s.Path) != 0 {
		d.fill(s.Path, s.Color, opacity)
		return
	}
	if mask, ok := l.Mask.(*view.ShapeLayer); ok {
		d.fill(mask.Path, s.Color, opacity)
		return
	}
	if s.Radius <= 0 {
		d.fill(d.outline(l, 0), s.Color, opacity)
		return
	}
	// the stacked outlines reach `opacity` where they all overlap
	step := 1 - math.Pow(1-opacity, 1./shadowSteps)
	for i := 0; i < shadowSteps; i++ {
		grow := s.Radius * ((float64(i)+0.5)/shadowSteps - 0.5)
		d.fill(d.outline(l, -grow), s.Color, step)
	}
}

// content draws the background, sublayers and border, inside the clips.
func (d drawer) content(l *view.Layer) {
	d.c.Save()
	defer d.c.Restore()
	if l.MasksToBounds {
		d.clip(d.outline(l, 0))
	}
	switch mask := l.Mask.(type) {
	case *view.ShapeLayer:
		d.clip(mask.Path)
	case *view.GradientLayer:
		d.fade(l, mask)
		return
	}
	d.paint(l, d.opacity)
}

// fade draws the content once per band of the mask, with
// the opacity of the band.
func (d drawer) fade(l *view.Layer, mask *view.GradientLayer) {
	if mask.Frame.IsEmpty() || len(mask.Colors) == 0 {
		return
	}
	for _, b := range gradientBands(mask, gradientSteps) {
		if b.color.A == 0 {
			continue
		}
		d.c.Save()
		d.clip(viewpath.RectPath(mask.Frame))
		d.clip(b.region)
		d.paint(l, d.opacity*float64(b.color.A)/255)
		d.c.Restore()
	}
}

func (d drawer) paint(l *view.Layer, opacity float64) {
	if l.BackgroundColor != nil {
		d.fill(d.outline(l, 0), l.BackgroundColor, opacity)
	}
	for _, s := range l.Sublayers {
		d.sublayer(s, opacity)
	}
	if bw := l.BorderWidth; bw > 0 {
		var c color.Color = color.Black
		if l.BorderColor != nil {
			c = l.BorderColor
		}
		// the border is drawn inside the bounds
		d.outline(l, bw/2).AddTo(d.c)
		d.c.Stroke(c, opacity, bw)
	}
}

func (d drawer) sublayer(s view.Sublayer, opacity float64) {
	switch s := s.(type) {
	case *view.ShapeLayer:
		var c color.Color = color.Black
		if s.FillColor != nil {
			c = s.FillColor
		}
		d.fill(s.Path, c, opacity)
	case *view.GradientLayer:
		if s.Frame.IsEmpty() || len(s.Colors) == 0 {
			return
		}
		d.c.Save()
		d.clip(viewpath.RectPath(s.Frame))
		for _, b := range gradientBands(s, gradientSteps) {
			if b.color.A == 0 {
				continue
			}
			d.fill(b.region, b.color, opacity)
		}
		d.c.Restore()
	}
}
