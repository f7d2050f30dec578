package decor

import (
	"image/color"

	"github.com/benoitkugler/viewdecor/view"
	"github.com/benoitkugler/viewdecor/viewpath"
)

// FadeStyle selects which edges of a view fade out.
type FadeStyle uint8

const (
	FadeBottom FadeStyle = iota
	FadeTop
	FadeLeft
	FadeRight
	// FadeVertical fades both the top and bottom edges.
	FadeVertical
	// FadeHorizontal fades both the left and right edges.
	FadeHorizontal
)

func (s FadeStyle) String() string {
	switch s {
	case FadeBottom:
		return "bottom"
	case FadeTop:
		return "top"
	case FadeLeft:
		return "left"
	case FadeRight:
		return "right"
	case FadeVertical:
		return "vertical"
	case FadeHorizontal:
		return "horizontal"
	default:
		return "<unknown FadeStyle>"
	}
}

// DefaultFadePercentage is the size of the faded band,
// relative to the view size.
const DefaultFadePercentage = 0.07

// FadeSpec configures ApplyFade.
type FadeSpec struct {
	Style FadeStyle
	// Percentage is the relative size of the faded band, in (0, 0.5).
	Percentage float64
}

// DefaultFade fades the bottom edge.
var DefaultFade = FadeSpec{Style: FadeBottom, Percentage: DefaultFadePercentage}

func (f FadeSpec) validate() error {
	if f.Style > FadeHorizontal {
		return &OutOfRangeParameterError{Op: "ApplyFade", Param: "style", Value: float64(f.Style), Min: 0, Max: float64(FadeHorizontal)}
	}
	return checkOpenRange("ApplyFade", "percentage", f.Percentage, 0, 0.5)
}

// Stops returns the inner stop positions of the fade: the ramp
// is fully opaque between `start` and `end`.
func (f FadeSpec) Stops() (start, end float64) {
	return f.Percentage, 1 - f.Percentage
}

// mask returns the gradient mask implementing the fade.
// Opaque areas of the mask keep the content, transparent ones hide it.
func (f FadeSpec) mask(bounds viewpath.Rect) *view.GradientLayer {
	opaque, clear := color.Color(color.White), color.Color(color.Transparent)
	g := &view.GradientLayer{Frame: bounds, Type: view.Axial, Role: view.RoleMask}
	p := f.Percentage
	switch f.Style {
	case FadeBottom:
		g.Colors = []color.Color{opaque, clear}
		g.Start, g.End = viewpath.Point{X: 0.5, Y: 1 - p}, viewpath.Point{X: 0.5, Y: 1}
	case FadeTop:
		g.Colors = []color.Color{opaque, clear}
		g.Start, g.End = viewpath.Point{X: 0.5, Y: p}, viewpath.Point{X: 0.5, Y: 0}
	case FadeLeft:
		g.Colors = []color.Color{opaque, clear}
		g.Start, g.End = viewpath.Point{X: p, Y: 0.5}, viewpath.Point{X: 0, Y: 0.5}
	case FadeRight:
		g.Colors = []color.Color{opaque, clear}
		g.Start, g.End = viewpath.Point{X: 1 - p, Y: 0.5}, viewpath.Point{X: 1, Y: 0.5}
	case FadeVertical, FadeHorizontal:
		start, end := f.Stops()
		g.Colors = []color.Color{clear, opaque, opaque, clear}
		g.Locations = []float64{0, start, end, 1}
		if f.Style == FadeVertical {
			g.Start, g.End = viewpath.Point{X: 0.5, Y: 0}, viewpath.Point{X: 0.5, Y: 1}
		} else {
			g.Start, g.End = viewpath.Point{X: 0, Y: 0.5}, viewpath.Point{X: 1, Y: 0.5}
		}
	}
	return g
}

// ApplyFade masks the view with a transparency ramp, so that
// the edges selected by `f.Style` fade out.
// The mask replaces any previous one.
func (d *Decorator) ApplyFade(v view.View, f FadeSpec) error {
	if err := f.validate(); err != nil {
		return err
	}
	bounds := v.Bounds()
	if bounds.IsEmpty() {
		d.logger.Printf("decor: ApplyFade: view has zero sized bounds %v, installing a degenerate mask", bounds)
	}
	v.Layer().Mask = f.mask(bounds)
	return nil
}
