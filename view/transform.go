package view

import (
	"math"

	"github.com/benoitkugler/viewdecor/viewpath"
	"github.com/srwiley/rasterx"
)

// Transform places a layer on screen. It is applied around
// the center of the layer.
// In addition to the 2D affine part, a rotation around the
// vertical axis (with a perspective term) models flips.
type Transform struct {
	Affine rasterx.Matrix2D
	// RotationY is the angle, in radians, around the vertical axis.
	RotationY float64
	// Perspective is the m34 coefficient of the 3D matrix,
	// usually -1/distance.
	Perspective float64
}

// Identity leaves the layer untouched.
var Identity = Transform{Affine: rasterx.Identity}

// Translation returns the transform moving a layer by (tx, ty).
func Translation(tx, ty float64) Transform {
	return Transform{Affine: rasterx.Identity.Translate(tx, ty)}
}

// Scaling returns the transform scaling a layer by (sx, sy).
func Scaling(sx, sy float64) Transform {
	return Transform{Affine: rasterx.Identity.Scale(sx, sy)}
}

// RotationAroundY returns the transform rotating a layer by `angle`
// around its vertical axis, seen with the given perspective.
func RotationAroundY(angle, perspective float64) Transform {
	return Transform{Affine: rasterx.Identity, RotationY: angle, Perspective: perspective}
}

// IsIdentity returns true if the transform has no effect.
// The perspective alone has no effect without rotation.
func (t Transform) IsIdentity() bool {
	return t.Affine == rasterx.Identity && t.RotationY == 0
}

// Lerp interpolates component-wise from t (f = 0) to `to` (f = 1).
func (t Transform) Lerp(to Transform, f float64) Transform {
	lerp := func(a, b float64) float64 { return a + (b-a)*f }
	return Transform{
		Affine: rasterx.Matrix2D{
			A: lerp(t.Affine.A, to.Affine.A),
			B: lerp(t.Affine.B, to.Affine.B),
			C: lerp(t.Affine.C, to.Affine.C),
			D: lerp(t.Affine.D, to.Affine.D),
			E: lerp(t.Affine.E, to.Affine.E),
			F: lerp(t.Affine.F, to.Affine.F),
		},
		RotationY:   lerp(t.RotationY, to.RotationY),
		Perspective: lerp(t.Perspective, to.Perspective),
	}
}

// Matrix projects the transform on the screen plane, for a layer
// with the given bounds. The rotation around the vertical axis is
// rendered as an horizontal squeeze.
func (t Transform) Matrix(bounds viewpath.Rect) rasterx.Matrix2D {
	c := bounds.Center()
	sx := math.Cos(t.RotationY)
	if t.Perspective != 0 && bounds.W > 0 {
		// the edge moving away shrinks the projected width a bit more
		depth := math.Abs(math.Sin(t.RotationY)) * bounds.W / 2
		sx /= 1 - t.Perspective*depth
	}
	return rasterx.Identity.Translate(c.X, c.Y).Mult(t.Affine).Scale(sx, 1).Translate(-c.X, -c.Y)
}
