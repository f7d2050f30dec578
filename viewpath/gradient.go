package viewpath

import (
	"image/color"
)

// GradStop represents a stop in a gradient
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a description of a linear or radial gradient,
// independent of any painting backend.
// The direction is expressed in the unit square of Bounds, and the
// colors are padded outside of the stops.
type Gradient struct {
	Direction gradientDirecter
	Stops     []GradStop
	Bounds    Rect
}

// radial or linear
type gradientDirecter interface {
	isRadial() bool
}

// x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) isRadial() bool { return true }

// IsRadial returns true for radial gradients.
func (g Gradient) IsRadial() bool {
	return g.Direction != nil && g.Direction.isRadial()
}

// ColorAt returns the color of the gradient at `offset`, interpolating
// linearly between the surrounding stops and padding outside of them.
// The opacity of the stops is applied to the alpha channel.
func (g Gradient) ColorAt(offset float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if offset <= first.Offset {
		return stopColor(first)
	}
	if offset >= last.Offset {
		return stopColor(last)
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if offset > s1.Offset {
			continue
		}
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return stopColor(s1)
		}
		t := (offset - s0.Offset) / span
		c0, c1 := stopColor(s0), stopColor(s1)
		return color.NRGBA{
			R: lerp8(c0.R, c1.R, t),
			G: lerp8(c0.G, c1.G, t),
			B: lerp8(c0.B, c1.B, t),
			A: lerp8(c0.A, c1.A, t),
		}
	}
	return stopColor(last)
}

func stopColor(s GradStop) color.NRGBA {
	if s.StopColor == nil {
		return color.NRGBA{}
	}
	c := color.NRGBAModel.Convert(s.StopColor).(color.NRGBA)
	c.A = uint8(float64(c.A)*s.Opacity + 0.5)
	return c
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
