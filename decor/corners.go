package decor

import (
	"image/color"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// ApplyCornerRadius rounds the four corners of the view and clips
// its content to the rounded outline.
// A negative radius is rejected with an *OutOfRangeParameterError.
func (d *Decorator) ApplyCornerRadius(v view.View, radius float64) error {
	if err := checkNonNegative("ApplyCornerRadius", "radius", radius); err != nil {
		return err
	}
	l := v.Layer()
	l.CornerRadius = radius
	l.MasksToBounds = true
	return nil
}

// RoundCorners rounds only the selected corners, by installing
// a rounded rectangle mask built from the current bounds.
// The mask is not updated when the bounds change: call again after layout.
func (d *Decorator) RoundCorners(v view.View, corners viewpath.Corner, radius float64) error {
	if err := checkNonNegative("RoundCorners", "radius", radius); err != nil {
		return err
	}
	path := viewpath.RoundedRectPath(v.Bounds(), corners, radius)
	d.installMask(v, "RoundCorners", path)
	return nil
}

// ApplyBorder strokes the outline of the view, with the given corner radius.
func (d *Decorator) ApplyBorder(v view.View, cornerRadius float64, c color.Color, width float64) error {
	if err := checkNonNegative("ApplyBorder", "cornerRadius", cornerRadius); err != nil {
		return err
	}
	if err := checkNonNegative("ApplyBorder", "width", width); err != nil {
		return err
	}
	l := v.Layer()
	l.CornerRadius = cornerRadius
	l.BorderColor = c
	l.BorderWidth = width
	return nil
}
