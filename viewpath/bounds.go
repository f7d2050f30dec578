package viewpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the exact bounding box of a path, needed to
// resolve gradients expressed relatively to a mask extent

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0, p1 := FixedToPoint(l[0]), FixedToPoint(l[1])
	return bezierLine(p0.X, p1.X, t), bezierLine(p0.Y, p1.Y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]fixed.Point26_6

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0, p1, p2 := FixedToPoint(cu[0]), FixedToPoint(cu[1]), FixedToPoint(cu[2])
	aX, bX := quadraticDerivative(p0.X, p1.X, p2.X)
	aY, bY := quadraticDerivative(p0.Y, p1.Y, p2.Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0, p1, p2 := FixedToPoint(cu[0]), FixedToPoint(cu[1]), FixedToPoint(cu[2])
	return bezierQuad(p0.X, p1.X, p2.X, t), bezierQuad(p0.Y, p1.Y, p2.Y, t)
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p0, c0, c1, p1 := FixedToPoint(cu[0]), FixedToPoint(cu[1]), FixedToPoint(cu[2]), FixedToPoint(cu[3])
	aX, bX, cX := cubicDerivative(p0.X, c0.X, c1.X, p1.X)
	aY, bY, cY := cubicDerivative(p0.Y, c0.Y, c1.Y, p1.Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0, c0, c1, p1 := FixedToPoint(cu[0]), FixedToPoint(cu[1]), FixedToPoint(cu[2]), FixedToPoint(cu[3])
	return bezierCube(p0.X, c0.X, c1.X, p1.X, t), bezierCube(p0.Y, c0.Y, c1.Y, p1.Y, t)
}

func bezierCube(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac = Determinant
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solve(a, b, c float64, s bool) float64 {
	sign := 1.
	if !s {
		sign = -1.
	}
	return (-b + (math.Sqrt((b*b)-(4*a*c)) * sign)) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c, a simple line
		return linearRoots(b, c)
	}
	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{solve(a, b, c, true)}
	}
	return []float64{solve(a, b, c, true), solve(a, b, c, false)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

// extent accumulates the bounding box of several curves
type extent struct {
	minX, minY, maxX, maxY float64
	seen                   bool
}

func (e *extent) add(x, y float64) {
	if !e.seen {
		e.minX, e.maxX, e.minY, e.maxY = x, x, y, y
		e.seen = true
		return
	}
	e.minX = math.Min(x, e.minX)
	e.minY = math.Min(y, e.minY)
	e.maxX = math.Max(x, e.maxX)
	e.maxY = math.Max(y, e.maxY)
}

func (e *extent) addCurve(curve bezier) {
	resX, resY := curve.criticalPoints()
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		e.add(curve.evaluateCurve(t))
	}
}

// Bounds returns the smallest rectangle enclosing the path,
// taking into account the extrema of the bezier curves (not only
// their control points).
// The empty rectangle is returned for an empty path.
func (p Path) Bounds() Rect {
	var (
		e       extent
		current fixed.Point26_6
		start   fixed.Point26_6
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			start = current
			pt := FixedToPoint(current)
			e.add(pt.X, pt.Y)
		case LineTo:
			e.addCurve(line{current, fixed.Point26_6(op)})
			current = fixed.Point26_6(op)
		case QuadTo:
			e.addCurve(quadBezier{current, op[0], op[1]})
			current = op[1]
		case CubicTo:
			e.addCurve(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			current = start
		}
	}
	if !e.seen {
		return Rect{}
	}
	return Rect{X: e.minX, Y: e.minY, W: e.maxX - e.minX, H: e.maxY - e.minY}
}
