package decor

import (
	"math"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// Edge is the side of the view bent by a curve mask.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "<unknown Edge>"
	}
}

func (e Edge) op() string {
	if e == EdgeBottom {
		return "ApplyBottomCurve"
	}
	return "ApplyTopCurve"
}

// CurvePath returns the outline of the view with its `edge` bent outward
// as an arc. The arc is the union of an oval, slightly wider than the view,
// and of the half of the view opposite to the curved edge.
// The horizontal overflow of the oval is width / divisor; the vertical
// one is a quarter of the height.
// `divisor` must be a finite, positive number.
func CurvePath(bounds viewpath.Rect, edge Edge, divisor float64) (viewpath.Path, error) {
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) || divisor <= 0 {
		return nil, &InvalidGeometryError{Op: edge.op(), Param: "divisor", Value: divisor}
	}
	hOffset := bounds.W / divisor
	vOffset := bounds.H / 4
	oval := viewpath.Rect{X: bounds.X - hOffset/2, W: bounds.W + hOffset, H: bounds.H}
	half := viewpath.Rect{X: bounds.X, W: bounds.W, H: bounds.H / 2}
	switch edge {
	case EdgeBottom:
		oval.Y = bounds.Y + vOffset/2
		half.Y = bounds.Y
	default:
		oval.Y = bounds.Y - vOffset/2
		half.Y = bounds.Y + bounds.H/2
	}
	out := viewpath.OvalPath(oval)
	out.Append(viewpath.RectPath(half))
	return out, nil
}

func (d *Decorator) applyCurve(v view.View, edge Edge, divisor float64) error {
	path, err := CurvePath(v.Bounds(), edge, divisor)
	if err != nil {
		return err
	}
	d.installMask(v, edge.op(), path)
	return nil
}

// ApplyTopCurve masks the view so that its top edge is an arc.
// See CurvePath for the meaning of `divisor`.
func (d *Decorator) ApplyTopCurve(v view.View, divisor float64) error {
	return d.applyCurve(v, EdgeTop, divisor)
}

// ApplyBottomCurve masks the view so that its bottom edge is an arc.
// See CurvePath for the meaning of `divisor`.
func (d *Decorator) ApplyBottomCurve(v view.View, divisor float64) error {
	return d.applyCurve(v, EdgeBottom, divisor)
}
