package so3

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Strict enables precondition checks on operations that otherwise assume
// their inputs are valid, such as the unit-axis requirement of [ExpmapAxis].
// It defaults to off; with Strict off, violating a precondition yields an
// unspecified result (no silent correction is performed).
var Strict bool

// ExpmapAxis returns the rotation of theta radians around the unit vector
// axis, computed with Rodrigues' formula
//
//	R = I + sin(θ)·ŵ + (1−cos(θ))·ŵ²
//
// expanded into closed-form entries. axis must have unit norm; with [Strict]
// enabled a non-unit axis panics.
func ExpmapAxis(axis r3.Vector, theta float64) Rotation {
	wx, wy, wz := axis.X, axis.Y, axis.Z
	xx, yy, zz := wx*wx, wy*wy, wz*wz
	if Strict {
		if n := xx + yy + zz; math.Abs(n-1) > 1e-9 {
			panic(fmt.Sprintf("ExpmapAxis: axis must have unit norm, got ‖axis‖² = %g", n))
		}
	}

	s, c := math.Sincos(theta)
	c1 := 1 - c

	swx, swy, swz := wx*s, wy*s, wz*s
	c00, c01, c02 := c1*xx, c1*wx*wy, c1*wx*wz
	c11, c12 := c1*yy, c1*wy*wz
	c22 := c1 * zz

	return Rot(
		c+c00, -swz+c01, swy+c02,
		swz+c01, c+c11, -swx+c12,
		-swy+c02, swx+c12, c+c22,
	)
}

// Expmap is the exponential map of SO(3): it returns the rotation around the
// axis w/‖w‖ by ‖w‖ radians. Tangent vectors with norm below 1e-10 map to
// [Identity].
func Expmap(w r3.Vector) Rotation {
	t := w.Norm()
	if t < 1e-10 {
		return Identity
	}
	return ExpmapAxis(w.Mul(1/t), t)
}

// Logmap is the logarithm map of SO(3), the inverse of [Expmap]: it returns
// the canonical coordinates of r, a vector pointing along the rotation axis
// with the rotation angle in radians as its norm.
//
// At a rotation angle of π the axis is only determined up to sign; Logmap
// returns one of the two valid representatives.
func Logmap(r Rotation) r3.Vector {
	tr := r.r1.X + r.r2.Y + r.r3.Z

	// At theta = ±π, ±3π, ... the trace is -1 and the skew part of R
	// vanishes, so the generic branch below would return zero. Recover the
	// axis from a diagonal entry that is not -1 instead; at least one of
	// the three always qualifies.
	if math.Abs(tr+1) < 1e-10 {
		switch {
		case math.Abs(r.r3.Z+1) > 1e-10:
			return r3.Vector{X: r.r3.X, Y: r.r3.Y, Z: 1 + r.r3.Z}.
				Mul(math.Pi / math.Sqrt(2+2*r.r3.Z))
		case math.Abs(r.r2.Y+1) > 1e-10:
			return r3.Vector{X: r.r2.X, Y: 1 + r.r2.Y, Z: r.r2.Z}.
				Mul(math.Pi / math.Sqrt(2+2*r.r2.Y))
		default:
			// abs(r.r1.X+1) > 1e-10 holds here.
			return r3.Vector{X: 1 + r.r1.X, Y: r.r1.Y, Z: r.r1.Z}.
				Mul(math.Pi / math.Sqrt(2+2*r.r1.X))
		}
	}

	var magnitude float64
	tr3 := tr - 3 // always negative
	if tr3 < -1e-7 {
		theta := math.Acos((tr - 1) / 2)
		magnitude = theta / (2 * math.Sin(theta))
	} else {
		// When theta is near 0, ±2π, ... the trace is near 3 and
		// θ/(2 sin θ) is 0/0; use the second-order approximation
		// magnitude ≈ 1/2 − (tr−3)²/12 instead.
		magnitude = 0.5 - tr3*tr3/12
	}
	return r3.Vector{
		X: r.r2.Z - r.r3.Y,
		Y: r.r3.X - r.r1.Z,
		Z: r.r1.Y - r.r2.X,
	}.Mul(magnitude)
}
