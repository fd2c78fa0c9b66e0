package so3

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// CoordinatesMode selects the local coordinate chart used by
// [Rotation.Retract] and [Rotation.LocalCoordinates].
type CoordinatesMode int

const (
	// ExpmapMode uses the exponential map. It is exact over the whole
	// group but evaluates trigonometric functions.
	ExpmapMode CoordinatesMode = iota
	// CayleyMode uses a closed-form rational Cayley transform. It avoids
	// trigonometry entirely but is only a first-order approximation of the
	// exponential map, valid for small tangent vectors.
	CayleyMode
	// SlowCayleyMode computes the same chart as CayleyMode through the
	// generic matrix Cayley transform. It serves as a reference for the
	// hand-expanded closed forms and agrees with CayleyMode to numerical
	// precision.
	SlowCayleyMode
)

// Retract maps the tangent vector w at r to a nearby rotation, using the
// chart selected by mode. It is the inverse of [Rotation.LocalCoordinates].
// An invalid mode panics.
func (r Rotation) Retract(w r3.Vector, mode CoordinatesMode) Rotation {
	switch mode {
	case ExpmapMode:
		return r.Mul(Expmap(w))
	case CayleyMode:
		return r.Mul(cayleyChart(w))
	case SlowCayleyMode:
		var half mat.Dense
		half.Scale(-0.5, Skew(w))
		return r.Mul(FromMat(cayley(&half)))
	default:
		panic(fmt.Sprintf("invalid CoordinatesMode %d", mode))
	}
}

// LocalCoordinates maps the rotation o into the tangent space at r, using
// the chart selected by mode. It is the inverse of [Rotation.Retract]. An
// invalid mode panics.
func (r Rotation) LocalCoordinates(o Rotation, mode CoordinatesMode) r3.Vector {
	switch mode {
	case ExpmapMode:
		return Logmap(r.Between(o, nil, nil))
	case CayleyMode:
		return cayleyLocal(r.Between(o, nil, nil))
	case SlowCayleyMode:
		omega := cayley(r.Between(o, nil, nil).Mat())
		return r3.Vector{
			X: omega.At(2, 1),
			Y: omega.At(0, 2),
			Z: omega.At(1, 0),
		}.Mul(-2)
	default:
		panic(fmt.Sprintf("invalid CoordinatesMode %d", mode))
	}
}

// cayleyChart returns the Cayley transform of skew(w)/−2 with the nine
// entries expanded in closed form, avoiding the matrix inverse of the
// generic transform.
func cayleyChart(w r3.Vector) Rotation {
	x, y, z := w.X, w.Y, w.Z
	x2, y2, z2 := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	f := 1 / (4 + x2 + y2 + z2)
	f2 := 2 * f
	return Rot(
		(4+x2-y2-z2)*f, (xy-2*z)*f2, (xz+2*y)*f2,
		(xy+2*z)*f2, (4-x2+y2-z2)*f, (yz-2*x)*f2,
		(xz-2*y)*f2, (yz+2*x)*f2, (4-x2-y2+z2)*f,
	)
}

// cayleyLocal inverts [cayleyChart]: it recovers the tangent vector from a
// rotation near the identity. The closed form solves the fixed-point
// elimination of the rational chart entries.
func cayleyLocal(rot Rotation) r3.Vector {
	a, b, c := rot.r1.X, rot.r2.X, rot.r3.X
	d, e, f := rot.r1.Y, rot.r2.Y, rot.r3.Y
	g, h, i := rot.r1.Z, rot.r2.Z, rot.r3.Z
	di, ce, cd, fg := d*i, c*e, c*d, f*g
	m := 1 + e - f*h + i + e*i
	k := 2 / (cd*h + m + a*m - g*(c+ce) - b*(d+di-fg))
	return r3.Vector{
		X: (a*f - cd + f) * k,
		Y: (b*f - ce - c) * k,
		Z: (fg - di - d) * k,
	}.Mul(-2)
}

// cayley returns the Cayley transform (I−A)·(I+A)⁻¹ of a 3×3 matrix. The
// transform is an involution, so it serves both directions of the
// SlowCayleyMode chart. It panics if I+A is singular, which for a skew input
// means the target lies outside the chart.
func cayley(a mat.Matrix) *mat.Dense {
	var plus, minus mat.Dense
	plus.Add(identity3, a)
	minus.Sub(identity3, a)
	var c mat.Dense
	// (I−A) commutes with (I+A)⁻¹, so solving (I+A)·X = I−A yields the
	// transform in either factor order.
	if err := c.Solve(&plus, &minus); err != nil {
		panic("cayley: I+A is singular")
	}
	return &c
}
