package viewraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Options configures Render.
type Options struct {
	// Scale is the number of pixels per view unit, 1 if zero.
	Scale float64
	// Margin is the room left around the view bounds, in view units,
	// so that shadows are not cut. See FitMargin.
	Margin float64
	// Background fills the whole image. Transparent if nil.
	Background color.Color
}

// FitMargin returns a margin large enough to contain
// the shadow of the layer.
func FitMargin(l *view.Layer, bounds viewpath.Rect) float64 {
	s := l.Shadow
	if !s.IsVisible() {
		return 0
	}
	// the blur is a gaussian of deviation radius/2: 3 deviations are enough
	m := 1.5*s.Radius + math.Max(math.Abs(s.Offset.X), math.Abs(s.Offset.Y))
	if len(s.Path) != 0 {
		pb := s.Path.Bounds()
		m += math.Max(0, math.Max(
			math.Max(bounds.X-pb.X, pb.MaxX()-bounds.MaxX()),
			math.Max(bounds.Y-pb.Y, pb.MaxY()-bounds.MaxY()),
		))
	}
	return math.Ceil(m)
}

// renderer maps view coordinates to the pixels of an image
type renderer struct {
	bounds   viewpath.Rect
	scale    float64
	toPixels rasterx.Matrix2D
	rect     image.Rectangle
}

// Render rasterizes the view and its decorations.
// The view bounds are drawn at (Margin, Margin), scaled by Scale.
func Render(v view.View, opts Options) *image.NRGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	margin := math.Max(opts.Margin, 0)
	bounds := v.Bounds()
	w := int(math.Ceil((math.Max(bounds.W, 0) + 2*margin) * scale))
	h := int(math.Ceil((math.Max(bounds.H, 0) + 2*margin) * scale))
	rd := renderer{
		bounds:   bounds,
		scale:    scale,
		toPixels: rasterx.Identity.Scale(scale, scale).Translate(margin-bounds.X, margin-bounds.Y),
		rect:     image.Rect(0, 0, w, h),
	}

	dst := image.NewRGBA(rd.rect)
	if opts.Background != nil {
		draw.Draw(dst, rd.rect, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if w == 0 || h == 0 {
		return imaging.Clone(dst)
	}
	l := v.Layer()
	rd.composite(dst, rd.layer(l), l.Opacity, l.Transform)
	return imaging.Clone(dst)
}

// WritePNG renders the view and encodes it as PNG.
func WritePNG(w io.Writer, v view.View, opts Options) error {
	return imaging.Encode(w, Render(v, opts), imaging.PNG)
}

// pixelRect maps a rectangle in view coordinates to pixels
func (rd *renderer) pixelRect(r viewpath.Rect) viewpath.Rect {
	x0, y0 := rd.toPixels.Transform(r.X, r.Y)
	x1, y1 := rd.toPixels.Transform(r.MaxX(), r.MaxY())
	return viewpath.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// layer returns the untransformed layer, with its shadow.
func (rd *renderer) layer(l *view.Layer) *image.RGBA {
	content := rd.content(l)
	if !l.Shadow.IsVisible() {
		return content
	}
	out := image.NewRGBA(rd.rect)
	draw.Draw(out, rd.rect, rd.shadow(l.Shadow, content), image.Point{}, draw.Over)
	draw.Draw(out, rd.rect, content, image.Point{}, draw.Over)
	return out
}

// content draws the background, sublayers and border, then applies the clips.
func (rd *renderer) content(l *view.Layer) *image.RGBA {
	img := image.NewRGBA(rd.rect)
	pt := NewPainter(img)
	outline := viewpath.RoundedRectPath(rd.bounds, viewpath.AllCorners, l.CornerRadius)
	if l.BackgroundColor != nil {
		pt.Fill(outline.Transform(rd.toPixels), l.BackgroundColor)
	}
	for _, s := range l.Sublayers {
		rd.paint(pt, s)
	}
	if l.BorderWidth > 0 {
		bw := l.BorderWidth
		var c color.Color = color.Black
		if l.BorderColor != nil {
			c = l.BorderColor
		}
		// the border is drawn inside the bounds
		border := viewpath.RoundedRectPath(rd.bounds.Inset(bw/2, bw/2), viewpath.AllCorners, math.Max(l.CornerRadius-bw/2, 0))
		pt.Stroke(border.Transform(rd.toPixels), bw*rd.scale, c)
	}
	if l.MasksToBounds {
		img = clip(img, rd.alpha(&view.ShapeLayer{Frame: rd.bounds, Path: outline}))
	}
	if l.Mask != nil {
		img = clip(img, rd.alpha(l.Mask))
	}
	return img
}

// paint draws a sublayer
func (rd *renderer) paint(pt *Painter, s view.Sublayer) {
	switch s := s.(type) {
	case *view.ShapeLayer:
		var c color.Color = color.Black
		if s.FillColor != nil {
			c = s.FillColor
		}
		pt.Fill(s.Path.Transform(rd.toPixels), c)
	case *view.GradientLayer:
		if s.Frame.IsEmpty() || len(s.Colors) == 0 {
			return
		}
		grad := s.Gradient()
		grad.Bounds = rd.pixelRect(s.Frame)
		pt.Fill(viewpath.RectPath(s.Frame).Transform(rd.toPixels), grad)
	}
}

// alpha rasterizes a mask layer
func (rd *renderer) alpha(s view.Sublayer) *image.Alpha {
	out := image.NewAlpha(rd.rect)
	rd.paint(NewPainter(out), s)
	return out
}

// clip returns img, where the transparent areas of mask are erased.
func clip(img *image.RGBA, mask image.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.DrawMask(out, out.Bounds(), img, image.Point{}, mask, image.Point{}, draw.Src)
	return out
}

// shadow returns the blurred silhouette of the shadow path,
// or of the layer content when there is no custom path.
func (rd *renderer) shadow(s view.Shadow, content *image.RGBA) *image.NRGBA {
	c := color.NRGBAModel.Convert(s.Color).(color.NRGBA)
	c.A = uint8(float64(c.A) * math.Min(s.Opacity, 1))

	dx, dy := s.Offset.X*rd.scale, s.Offset.Y*rd.scale
	silhouette := image.NewNRGBA(rd.rect)
	if len(s.Path) != 0 {
		m := rasterx.Identity.Translate(dx, dy).Mult(rd.toPixels)
		NewPainter(silhouette).Fill(s.Path.Transform(m), c)
	} else {
		mp := image.Pt(-int(math.Round(dx)), -int(math.Round(dy)))
		draw.DrawMask(silhouette, rd.rect, image.NewUniform(c), image.Point{}, content, mp, draw.Src)
	}
	if s.Radius <= 0 {
		return silhouette
	}
	return imaging.Blur(silhouette, s.Radius*rd.scale/2)
}

// composite draws the layer image on dst, with the given opacity and transform.
func (rd *renderer) composite(dst *image.RGBA, layer *image.RGBA, opacity float64, t view.Transform) {
	if opacity <= 0 {
		return
	}
	var src image.Image = layer
	if opacity < 1 {
		faded := image.NewRGBA(rd.rect)
		draw.DrawMask(faded, rd.rect, layer, image.Point{}, image.NewUniform(color.Alpha{A: uint8(opacity * 0xff)}), image.Point{}, draw.Src)
		src = faded
	}
	if t.IsIdentity() {
		draw.Draw(dst, rd.rect, src, image.Point{}, draw.Over)
		return
	}
	// conjugate the view transform to work in pixels
	m := rd.toPixels.Mult(t.Matrix(rd.bounds)).Mult(rd.toPixels.Invert())
	if math.Abs(m.A*m.D-m.B*m.C) < 1e-9 {
		return // seen edge-on
	}
	draw.BiLinear.Transform(dst, f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}, src, rd.rect, draw.Over, nil)
}
