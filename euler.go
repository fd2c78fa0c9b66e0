package so3

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// RQ decomposes a into a near-identity residual R and the Euler angles
// (x, y, z) such that a = R · Rz(z) · Ry(y) · Rx(x). For a valid rotation
// matrix the residual is the identity up to numerical noise.
//
// The decomposition eliminates the lower-triangular entries one axis at a
// time by right-multiplying with elementary rotations; it is direct, not
// iterative.
func RQ(a mat.Matrix) (*mat.Dense, r3.Vector) {
	x := -math.Atan2(-a.At(2, 1), a.At(2, 2))
	var b mat.Dense
	b.Mul(a, Rx(-x).Mat())

	y := -math.Atan2(b.At(2, 0), b.At(2, 2))
	var c mat.Dense
	c.Mul(&b, Ry(-y).Mat())

	z := -math.Atan2(-c.At(1, 0), c.At(1, 1))
	var res mat.Dense
	res.Mul(&c, Rz(-z).Mat())

	return &res, r3.Vector{X: x, Y: y, Z: z}
}

// XYZ returns the Euler angles (x, y, z) such that r = Rz(z) · Ry(y) · Rx(x),
// obtained via [RQ].
func (r Rotation) XYZ() r3.Vector {
	_, q := RQ(r.Mat())
	return q
}

// YPR returns the yaw, pitch and roll angles of r, the [Rotation.XYZ] triple
// in reverse order.
func (r Rotation) YPR() r3.Vector {
	q := r.XYZ()
	return r3.Vector{X: q.Z, Y: q.Y, Z: q.X}
}

// RPY returns the roll, pitch and yaw angles of r. It is identical to
// [Rotation.XYZ] and exists for symmetry with [Rotation.YPR].
func (r Rotation) RPY() r3.Vector {
	return r.XYZ()
}
