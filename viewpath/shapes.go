package viewpath

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent.
// All the closed shapes are drawn clockwise (in a y-down space),
// so that they merge when appended under the non-zero winding rule.

// kappa is the distance of the control points, relative to the radius,
// used to approximate a quarter of circle by a cubic bezier.
const kappa = 0.5522847498307936

// Point is a location in view coordinates.
type Point struct{ X, Y float64 }

// Rect defines a bounding box, such as the bounds of
// a view or a path extent.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// IsEmpty returns true for rectangles without area.
func (r Rect) IsEmpty() bool { return !(r.W > 0 && r.H > 0) }

// Inset returns the rectangle shrunk by dx on the left and right,
// and by dy on the top and bottom. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// UnitPoint maps a point expressed in the unit square
// (0,0 is the top left corner, 1,1 the bottom right one)
// to view coordinates.
func (r Rect) UnitPoint(u Point) Point {
	return Point{X: r.X + u.X*r.W, Y: r.Y + u.Y*r.H}
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// FixedToPoint converts a fixed point to float coordinates.
func FixedToPoint(a fixed.Point26_6) Point {
	return Point{X: float64(a.X) / 64, Y: float64(a.Y) / 64}
}

// Corner is a set of rectangle corners.
type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomLeft
	BottomRight

	AllCorners = TopLeft | TopRight | BottomLeft | BottomRight
)

func (c Corner) String() string {
	if c == 0 {
		return "none"
	}
	if c == AllCorners {
		return "all"
	}
	var out []byte
	for _, n := range [...]struct {
		c    Corner
		name string
	}{{TopLeft, "topLeft"}, {TopRight, "topRight"}, {BottomLeft, "bottomLeft"}, {BottomRight, "bottomRight"}} {
		if c&n.c != 0 {
			if len(out) != 0 {
				out = append(out, '|')
			}
			out = append(out, n.name...)
		}
	}
	return string(out)
}

// RectPath returns the path of the rectangle r.
// A degenerate rectangle gives an empty path.
func RectPath(r Rect) Path {
	var p Path
	p.AddRect(r)
	return p
}

// AddRect adds the rectangle r to the path.
func (p *Path) AddRect(r Rect) {
	if r.IsEmpty() {
		return
	}
	rasterx.AddRect(r.X, r.Y, r.MaxX(), r.MaxY(), 0, p)
}

// RoundedRectPath returns the path of the rectangle r, where only the
// given corners are rounded with `radius`.
// The radius is clamped to half the smallest side.
func RoundedRectPath(r Rect, corners Corner, radius float64) Path {
	var p Path
	p.AddRoundedRect(r, corners, radius)
	return p
}

// AddRoundedRect adds the rectangle r, with the selected corners rounded.
// A degenerate rectangle adds nothing.
func (p *Path) AddRoundedRect(r Rect, corners Corner, radius float64) {
	if r.IsEmpty() {
		return
	}
	if radius <= 0 || corners == 0 {
		p.AddRect(r)
		return
	}
	if m := math.Min(r.W, r.H) / 2; radius > m {
		radius = m
	}
	radiusOf := func(c Corner) float64 {
		if corners&c != 0 {
			return radius
		}
		return 0
	}
	tl, tr, br, bl := radiusOf(TopLeft), radiusOf(TopRight), radiusOf(BottomRight), radiusOf(BottomLeft)
	minX, minY, maxX, maxY := r.X, r.Y, r.MaxX(), r.MaxY()

	p.Start(toFixedP(minX+tl, minY))
	p.Line(toFixedP(maxX-tr, minY))
	p.quarterArc(maxX-tr, minY, maxX, minY+tr, tr, 1, 0, 0, 1)
	p.Line(toFixedP(maxX, maxY-br))
	p.quarterArc(maxX, maxY-br, maxX-br, maxY, br, 0, 1, -1, 0)
	p.Line(toFixedP(minX+bl, maxY))
	p.quarterArc(minX+bl, maxY, minX, maxY-bl, bl, -1, 0, 0, -1)
	p.Line(toFixedP(minX, minY+tl))
	p.quarterArc(minX, minY+tl, minX+tl, minY, tl, 0, -1, 1, 0)
	p.Stop(true)
}

// quarterArc joins (x0,y0) to (x1,y1) with a quarter of circle of radius r.
// (dx0,dy0) is the unit tangent at the start and (dx1,dy1) the one at the end.
// Nothing is added for a null radius.
func (p *Path) quarterArc(x0, y0, x1, y1, r, dx0, dy0, dx1, dy1 float64) {
	if r <= 0 {
		return
	}
	k := r * kappa
	p.CubeBezier(toFixedP(x0+dx0*k, y0+dy0*k), toFixedP(x1-dx1*k, y1-dy1*k), toFixedP(x1, y1))
}

// OvalPath returns the ellipse inscribed in r.
func OvalPath(r Rect) Path {
	var p Path
	p.AddOval(r)
	return p
}

// AddOval adds the ellipse inscribed in r, starting at its right-most point.
// A degenerate rectangle adds nothing.
func (p *Path) AddOval(r Rect) {
	if r.IsEmpty() {
		return
	}
	c := r.Center()
	rx, ry := r.W/2, r.H/2
	kx, ky := rx*kappa, ry*kappa
	p.Start(toFixedP(c.X+rx, c.Y))
	p.CubeBezier(toFixedP(c.X+rx, c.Y+ky), toFixedP(c.X+kx, c.Y+ry), toFixedP(c.X, c.Y+ry))
	p.CubeBezier(toFixedP(c.X-kx, c.Y+ry), toFixedP(c.X-rx, c.Y+ky), toFixedP(c.X-rx, c.Y))
	p.CubeBezier(toFixedP(c.X-rx, c.Y-ky), toFixedP(c.X-kx, c.Y-ry), toFixedP(c.X, c.Y-ry))
	p.CubeBezier(toFixedP(c.X+kx, c.Y-ry), toFixedP(c.X+rx, c.Y-ky), toFixedP(c.X+rx, c.Y))
	p.Stop(true)
}
