package decor

import (
	"image/color"
	"math"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// Direction is the axis of a linear gradient.
type Direction uint8

const (
	TopToBottom Direction = iota
	LeftToRight
	TopLeftToBottomRight
	BottomLeftToTopRight
	TopRightToBottomLeft
	BottomRightToTopLeft
)

func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "vertical"
	case LeftToRight:
		return "horizontal"
	case TopLeftToBottomRight:
		return "topLeftToBottomRight"
	case BottomLeftToTopRight:
		return "bottomLeftToTopRight"
	case TopRightToBottomLeft:
		return "topRightToBottomLeft"
	case BottomRightToTopLeft:
		return "bottomRightToTopLeft"
	default:
		return "<unknown Direction>"
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for d := TopToBottom; d <= BottomRightToTopLeft; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Points returns the start and end points of the gradient axis,
// in the unit square of the view.
func (d Direction) Points() (start, end viewpath.Point) {
	switch d {
	case LeftToRight:
		return viewpath.Point{X: 0, Y: 0.5}, viewpath.Point{X: 1, Y: 0.5}
	case TopLeftToBottomRight:
		return viewpath.Point{X: 0, Y: 0}, viewpath.Point{X: 1, Y: 1}
	case BottomLeftToTopRight:
		return viewpath.Point{X: 0, Y: 1}, viewpath.Point{X: 1, Y: 0}
	case TopRightToBottomLeft:
		return viewpath.Point{X: 1, Y: 0}, viewpath.Point{X: 0, Y: 1}
	case BottomRightToTopLeft:
		return viewpath.Point{X: 1, Y: 1}, viewpath.Point{X: 0, Y: 0}
	default:
		return viewpath.Point{X: 0.5, Y: 0}, viewpath.Point{X: 0.5, Y: 1}
	}
}

// GradientSpec describes a background color ramp.
type GradientSpec struct {
	Type   view.GradientType
	Colors []color.Color
	// Locations are optional stop positions in [0, 1], non decreasing.
	// When nil, the colors are evenly spread.
	Locations []float64
	// Direction is used by axial gradients. Radial gradients are
	// centered in the view and reach its corners.
	Direction Direction
}

func (g GradientSpec) validate(op string) error {
	if len(g.Colors) == 0 {
		return &OutOfRangeParameterError{Op: op, Param: "colors count", Value: 0, Min: 1, Max: math.Inf(1)}
	}
	if g.Type > view.Radial {
		return &OutOfRangeParameterError{Op: op, Param: "type", Value: float64(g.Type), Min: 0, Max: float64(view.Radial)}
	}
	if g.Direction > BottomRightToTopLeft {
		return &OutOfRangeParameterError{Op: op, Param: "direction", Value: float64(g.Direction), Min: 0, Max: float64(BottomRightToTopLeft)}
	}
	if g.Locations == nil {
		return nil
	}
	if n, m := len(g.Locations), len(g.Colors); n != m {
		return &OutOfRangeParameterError{Op: op, Param: "locations count", Value: float64(n), Min: float64(m), Max: float64(m)}
	}
	prev := 0.
	for _, loc := range g.Locations {
		if err := checkRange(op, "location", loc, prev, 1); err != nil {
			return err
		}
		prev = loc
	}
	return nil
}

func (g GradientSpec) layer(bounds viewpath.Rect) *view.GradientLayer {
	out := &view.GradientLayer{
		Frame:  bounds,
		Type:   g.Type,
		Colors: append([]color.Color(nil), g.Colors...),
		Role:   view.RoleBackground,
	}
	if g.Locations != nil {
		out.Locations = append([]float64(nil), g.Locations...)
	}
	if g.Type == view.Radial {
		out.Start, out.End = viewpath.Point{X: 0.5, Y: 0.5}, viewpath.Point{X: 1, Y: 1}
	} else {
		out.Start, out.End = g.Direction.Points()
	}
	return out
}

func (d *Decorator) applyBackground(v view.View, op string, g GradientSpec) error {
	if err := g.validate(op); err != nil {
		return err
	}
	bounds := v.Bounds()
	if bounds.IsEmpty() {
		d.logger.Printf("decor: %s: view has zero sized bounds %v", op, bounds)
	}
	l := v.Layer()
	l.RemoveSublayers(view.RoleBackground)
	l.InsertSublayer(g.layer(bounds), 0)
	return nil
}

// ApplyGradient installs a gradient filling the view, below
// its other sublayers. It replaces the background installed by
// a previous call.
func (d *Decorator) ApplyGradient(v view.View, g GradientSpec) error {
	return d.applyBackground(v, "ApplyGradient", g)
}

// ApplyLinearBackground installs a two colors (or three, if `middle` is not nil)
// evenly spread linear gradient, as the bottom-most layer of the view.
// It replaces the background installed by a previous call.
func (d *Decorator) ApplyLinearBackground(v view.View, top, middle, bottom color.Color, dir Direction) error {
	colors, locations := []color.Color{top, bottom}, []float64{0, 1}
	if middle != nil {
		colors, locations = []color.Color{top, middle, bottom}, []float64{0, 0.5, 1}
	}
	return d.applyBackground(v, "ApplyLinearBackground", GradientSpec{
		Type:      view.Axial,
		Colors:    colors,
		Locations: locations,
		Direction: dir,
	})
}

// ApplyRadialBackground installs a radial gradient, from `inner` at the
// center of the view to `outer` at its corners.
func (d *Decorator) ApplyRadialBackground(v view.View, inner, outer color.Color) error {
	return d.applyBackground(v, "ApplyRadialBackground", GradientSpec{
		Type:   view.Radial,
		Colors: []color.Color{inner, outer},
	})
}
