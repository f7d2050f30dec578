package view

import (
	"image/color"
	"math"

	"github.com/benoitkugler/viewdecor/viewpath"
)

// GradientType selects how the colors are spread.
type GradientType uint8

const (
	// Axial gradients vary along the line from Start to End.
	Axial GradientType = iota
	// Radial gradients vary from Start (the center) up to
	// the distance between Start and End.
	Radial
)

func (t GradientType) String() string {
	switch t {
	case Axial:
		return "axial"
	case Radial:
		return "radial"
	default:
		return "<unknown GradientType>"
	}
}

// GradientLayer fills its frame with a color ramp.
// Start and End are expressed in the unit square of the frame:
// (0,0) is the top left corner and (1,1) the bottom right one.
type GradientLayer struct {
	Frame viewpath.Rect
	Type  GradientType
	// Colors are the stop colors, in order.
	Colors []color.Color
	// Locations are the stop positions in [0,1]. When nil,
	// the stops are evenly spread.
	Locations  []float64
	Start, End viewpath.Point
	Role       Role
}

func (g *GradientLayer) Kind() Role            { return g.Role }
func (g *GradientLayer) Bounds() viewpath.Rect { return g.Frame }

// locations returns the explicit or implicit stop positions
func (g *GradientLayer) locations() []float64 {
	if len(g.Locations) == len(g.Colors) {
		return g.Locations
	}
	out := make([]float64, len(g.Colors))
	if len(out) == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(len(out)-1)
	}
	return out
}

// Gradient returns the backend independent description of the layer,
// expressed relatively to its frame.
func (g *GradientLayer) Gradient() viewpath.Gradient {
	locs := g.locations()
	stops := make([]viewpath.GradStop, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = viewpath.GradStop{StopColor: c, Offset: locs[i], Opacity: 1}
	}
	out := viewpath.Gradient{
		Stops:  stops,
		Bounds: g.Frame,
	}
	switch g.Type {
	case Radial:
		r := math.Hypot(g.End.X-g.Start.X, g.End.Y-g.Start.Y)
		out.Direction = viewpath.Radial{g.Start.X, g.Start.Y, g.Start.X, g.Start.Y, r, 0}
	default:
		out.Direction = viewpath.Linear{g.Start.X, g.Start.Y, g.End.X, g.End.Y}
	}
	return out
}

// OffsetAt returns the position in the color ramp of the point (x, y),
// expressed in the coordinates of the parent layer.
func (g *GradientLayer) OffsetAt(x, y float64) float64 {
	if g.Frame.IsEmpty() {
		return 0
	}
	// work in the unit square
	u := (x - g.Frame.X) / g.Frame.W
	v := (y - g.Frame.Y) / g.Frame.H
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	if g.Type == Radial {
		r := math.Hypot(dx, dy)
		if r == 0 {
			return 0
		}
		return math.Hypot(u-g.Start.X, v-g.Start.Y) / r
	}
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((u-g.Start.X)*dx + (v-g.Start.Y)*dy) / l2
}
