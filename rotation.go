package so3

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Rotation is an element of SO(3), stored as the three orthonormal columns
// r1, r2, r3 of a rotation matrix:
//
//	| r1.X r2.X r3.X |
//	| r1.Y r2.Y r3.Y |
//	| r1.Z r2.Z r3.Z |
//
// Columns have unit norm, are mutually orthogonal, and the determinant is +1.
// Rotation is an immutable value type: every operation returns a new value,
// so sharing rotations between goroutines needs no synchronization.
type Rotation struct {
	r1, r2, r3 r3.Vector
}

// Identity is the identity rotation.
var Identity = Rotation{
	r1: r3.Vector{X: 1},
	r2: r3.Vector{Y: 1},
	r3: r3.Vector{Z: 1},
}

// FromCols returns the rotation with columns r1, r2, r3.
//
// The columns are stored as given; the caller is responsible for passing an
// orthonormal, right-handed triple.
func FromCols(r1, r2, r3 r3.Vector) Rotation {
	return Rotation{r1: r1, r2: r2, r3: r3}
}

// Rot returns the rotation with the given matrix entries, in row-major
// order.
//
// The entries are stored as given; the caller is responsible for passing a
// valid member of SO(3).
func Rot(
	r11, r12, r13,
	r21, r22, r23,
	r31, r32, r33 float64,
) Rotation {
	return Rotation{
		r1: r3.Vector{X: r11, Y: r21, Z: r31},
		r2: r3.Vector{X: r12, Y: r22, Z: r32},
		r3: r3.Vector{X: r13, Y: r23, Z: r33},
	}
}

// FromMat returns the rotation whose matrix is the upper-left 3×3 of m. The
// columns are extracted directly; the caller is responsible for passing an
// orthonormal matrix.
func FromMat(m mat.Matrix) Rotation {
	return Rot(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	)
}

// Rx returns the rotation of th radians around the x axis.
//
// The convention for all three elementary rotations is right-handed: a
// positive angle rotates the next axis into the one after it, so Rz with a
// positive angle rotates positive x into positive y.
func Rx(th float64) Rotation {
	st, ct := math.Sincos(th)
	return Rot(
		1, 0, 0,
		0, ct, -st,
		0, st, ct,
	)
}

// Ry returns the rotation of th radians around the y axis.
//
// See [Rx] for the sign convention.
func Ry(th float64) Rotation {
	st, ct := math.Sincos(th)
	return Rot(
		ct, 0, st,
		0, 1, 0,
		-st, 0, ct,
	)
}

// Rz returns the rotation of th radians around the z axis.
//
// See [Rx] for the sign convention.
func Rz(th float64) Rotation {
	st, ct := math.Sincos(th)
	return Rot(
		ct, -st, 0,
		st, ct, 0,
		0, 0, 1,
	)
}

// RzRyRx returns the product Rz(z) · Ry(y) · Rx(x), i.e. a rotation around
// the x axis followed by one around y followed by one around z.
//
// The entries are expanded in closed form; this is considerably faster than
// composing the three elementary matrices.
func RzRyRx(x, y, z float64) Rotation {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)
	ssc := sx * sy * cz
	csc := cx * sy * cz
	sss := sx * sy * sz
	css := cx * sy * sz
	return Rot(
		cy*cz, -cx*sz+ssc, sx*sz+csc,
		cy*sz, cx*cz+sss, -sx*cz+css,
		-sy, sx*cy, cx*cy,
	)
}

// YPR returns the rotation with the given yaw, pitch and roll angles,
// equivalent to RzRyRx(roll, pitch, yaw).
func YPR(yaw, pitch, roll float64) Rotation {
	return RzRyRx(roll, pitch, yaw)
}

// R1 returns the first column of the rotation matrix.
func (r Rotation) R1() r3.Vector { return r.r1 }

// R2 returns the second column of the rotation matrix.
func (r Rotation) R2() r3.Vector { return r.r2 }

// R3 returns the third column of the rotation matrix.
func (r Rotation) R3() r3.Vector { return r.r3 }

// Column returns the index'th column of the rotation matrix. It panics if
// index is not 1, 2 or 3.
func (r Rotation) Column(index int) r3.Vector {
	switch index {
	case 1:
		return r.r1
	case 2:
		return r.r2
	case 3:
		return r.r3
	default:
		panic(fmt.Sprintf("invalid column index %d, must be 1, 2 or 3", index))
	}
}

// Mat returns the rotation matrix as a newly allocated 3×3 dense matrix.
func (r Rotation) Mat() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		r.r1.X, r.r2.X, r.r3.X,
		r.r1.Y, r.r2.Y, r.r3.Y,
		r.r1.Z, r.r2.Z, r.r3.Z,
	})
}

// Transposed returns the transpose of the rotation matrix as a newly
// allocated 3×3 dense matrix. For a rotation the transpose is also the
// inverse; see [Rotation.Inverse] for the group operation.
func (r Rotation) Transposed() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		r.r1.X, r.r1.Y, r.r1.Z,
		r.r2.X, r.r2.Y, r.r2.Z,
		r.r3.X, r.r3.Y, r.r3.Z,
	})
}

// Equals reports whether the matrix entries of r and o are equal to within
// the absolute tolerance tol.
func (r Rotation) Equals(o Rotation, tol float64) bool {
	a := [9]float64{
		r.r1.X, r.r2.X, r.r3.X,
		r.r1.Y, r.r2.Y, r.r3.Y,
		r.r1.Z, r.r2.Z, r.r3.Z,
	}
	b := [9]float64{
		o.r1.X, o.r2.X, o.r3.X,
		o.r1.Y, o.r2.Y, o.r3.Y,
		o.r1.Z, o.r2.Z, o.r3.Z,
	}
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func (r Rotation) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		r.r1.X, r.r2.X, r.r3.X,
		r.r1.Y, r.r2.Y, r.r3.Y,
		r.r1.Z, r.r2.Z, r.r3.Z)
}
