package so3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// FromQuat returns the rotation described by the unit quaternion q. The
// quaternion is assumed to be normalized; the caller owns that invariant.
func FromQuat(q quat.Number) Rotation {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return Rot(
		1-2*(y*y+z*z), 2*(x*y-z*w), 2*(x*z+y*w),
		2*(x*y+z*w), 1-2*(x*x+z*z), 2*(y*z-x*w),
		2*(x*z-y*w), 2*(y*z+x*w), 1-2*(x*x+y*y),
	)
}

// Quat returns r as a unit quaternion. The sign is not canonical: q and −q
// describe the same rotation and either may be returned.
func (r Rotation) Quat() quat.Number {
	m00, m01, m02 := r.r1.X, r.r2.X, r.r3.X
	m10, m11, m12 := r.r1.Y, r.r2.Y, r.r3.Y
	m20, m21, m22 := r.r1.Z, r.r2.Z, r.r3.Z

	// Branch on the largest of the trace and the diagonal entries to keep
	// the square root argument away from zero.
	var q quat.Number
	if tr := m00 + m11 + m22; tr > 0 {
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{
			Real: s / 4,
			Imag: (m21 - m12) / s,
			Jmag: (m02 - m20) / s,
			Kmag: (m10 - m01) / s,
		}
	} else if m00 > m11 && m00 > m22 {
		s := 2 * math.Sqrt(1 + m00 - m11 - m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: s / 4,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	} else if m11 > m22 {
		s := 2 * math.Sqrt(1 + m11 - m00 - m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: s / 4,
			Kmag: (m12 + m21) / s,
		}
	} else {
		s := 2 * math.Sqrt(1 + m22 - m00 - m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: s / 4,
		}
	}

	return quat.Scale(1/quat.Abs(q), q)
}
