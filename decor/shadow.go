package decor

import (
	"image/color"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// Shadow are the parameters of a drop shadow.
type Shadow struct {
	Color   color.Color
	Opacity float64 // in [0, 1]
	Offset  viewpath.Point
	Radius  float64 // blur radius, non negative
}

// DefaultShadow is a soft black shadow, slightly below the view.
var DefaultShadow = Shadow{
	Color:   color.Black,
	Opacity: 0.5,
	Offset:  viewpath.Point{Y: 2},
	Radius:  4,
}

func (s Shadow) validate(op string) error {
	if err := checkUnit(op, "opacity", s.Opacity); err != nil {
		return err
	}
	return checkNonNegative(op, "radius", s.Radius)
}

// ApplyShadow casts a drop shadow. Since the shadow is drawn outside
// of the view, clipping to bounds is disabled.
// A custom shadow path, such as the one installed by ApplyInnerGlow,
// is kept.
func (d *Decorator) ApplyShadow(v view.View, s Shadow) error {
	if err := s.validate("ApplyShadow"); err != nil {
		return err
	}
	l := v.Layer()
	l.MasksToBounds = false
	l.Shadow.Color = s.Color
	l.Shadow.Opacity = s.Opacity
	l.Shadow.Offset = s.Offset
	l.Shadow.Radius = s.Radius
	return nil
}

// glowPath returns the ring between `bounds` grown by `radius`
// and `bounds` itself: the inner rectangle is reversed so that
// it is subtracted under the non-zero winding rule.
func glowPath(bounds viewpath.Rect, radius float64) viewpath.Path {
	out := viewpath.RectPath(bounds.Inset(-radius, -radius))
	out.Append(viewpath.RectPath(bounds).Reversed())
	return out
}

// ApplyInnerGlow draws a glow of the given color inside the edges of the view.
// It is implemented with a shadow cast by a ring around the bounds,
// and replaces any drop shadow.
func (d *Decorator) ApplyInnerGlow(v view.View, c color.Color, radius, opacity float64) error {
	const op = "ApplyInnerGlow"
	if err := checkNonNegative(op, "radius", radius); err != nil {
		return err
	}
	if err := checkUnit(op, "opacity", opacity); err != nil {
		return err
	}
	bounds := v.Bounds()
	if bounds.IsEmpty() {
		d.logger.Printf("decor: %s: view has zero sized bounds %v", op, bounds)
	}
	l := v.Layer()
	l.MasksToBounds = false
	l.Shadow = view.Shadow{
		Color:   c,
		Opacity: opacity,
		Radius:  radius,
		Path:    glowPath(bounds, radius),
	}
	return nil
}

// RemoveInnerGlow resets the shadow of the view, removing
// the glow path as well as the shadow parameters.
func (d *Decorator) RemoveInnerGlow(v view.View) {
	v.Layer().Shadow = view.Shadow{}
}
