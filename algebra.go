package so3

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Jacobians are with respect to a right perturbation in the body frame: an
// input R is perturbed to R·Expmap(δ) and the Jacobian is ∂out/∂δ at δ=0.
// Every operation takes optional 3×3 out-slots for them; passing nil skips
// the computation entirely.

var identity3 = mat.NewDense(3, 3, []float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
})

// Skew returns the skew-symmetric matrix ŵ of v, the 3×3 matrix with
// ŵ·u = v × u for all u.
func Skew(v r3.Vector) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

// Mul returns the composition r·o, without computing Jacobians. See
// [Rotation.Compose].
func (r Rotation) Mul(o Rotation) Rotation {
	return FromCols(r.Apply(o.r1), r.Apply(o.r2), r.Apply(o.r3))
}

// Apply returns the point p rotated by r, without computing Jacobians. See
// [Rotation.Rotate].
func (r Rotation) Apply(p r3.Vector) r3.Vector {
	return r.r1.Mul(p.X).Add(r.r2.Mul(p.Y)).Add(r.r3.Mul(p.Z))
}

// Compose returns the composition r·o.
//
// If h1 or h2 is non-nil it receives the Jacobian of the result with respect
// to r resp. o: h1 ← oᵀ and h2 ← I.
func (r Rotation) Compose(o Rotation, h1, h2 *mat.Dense) Rotation {
	if h1 != nil {
		h1.CloneFrom(o.Transposed())
	}
	if h2 != nil {
		h2.CloneFrom(identity3)
	}
	return r.Mul(o)
}

// Inverse returns the inverse rotation, the transpose of r.
//
// If h is non-nil it receives the Jacobian of the result with respect to r,
// h ← −R.
func (r Rotation) Inverse(h *mat.Dense) Rotation {
	if h != nil {
		h.Scale(-1, r.Mat())
	}
	return Rot(
		r.r1.X, r.r1.Y, r.r1.Z,
		r.r2.X, r.r2.Y, r.r2.Z,
		r.r3.X, r.r3.Y, r.r3.Z,
	)
}

// Between returns the relative rotation rᵀ·o that takes r to o.
//
// If h1 or h2 is non-nil it receives the Jacobian of the result with respect
// to r resp. o: h1 ← −(oᵀ·R) and h2 ← I.
func (r Rotation) Between(o Rotation, h1, h2 *mat.Dense) Rotation {
	if h1 != nil {
		var m mat.Dense
		m.Mul(o.Transposed(), r.Mat())
		h1.Scale(-1, &m)
	}
	if h2 != nil {
		h2.CloneFrom(identity3)
	}
	return r.Inverse(nil).Mul(o)
}

// Rotate returns the point p rotated by r, R·p.
//
// If hr or hp is non-nil it receives the Jacobian of the result with respect
// to the rotation resp. the point: hr ← R·(−p)^ and hp ← R.
func (r Rotation) Rotate(p r3.Vector, hr, hp *mat.Dense) r3.Vector {
	if hr != nil {
		hr.Mul(r.Mat(), Skew(p.Mul(-1)))
	}
	if hp != nil {
		hp.CloneFrom(r.Mat())
	}
	return r.Apply(p)
}

// Unrotate returns the point p rotated back by r, q = Rᵀ·p.
//
// If hr or hp is non-nil it receives the Jacobian of the result with respect
// to the rotation resp. the point: hr ← q^ and hp ← Rᵀ.
func (r Rotation) Unrotate(p r3.Vector, hr, hp *mat.Dense) r3.Vector {
	q := r3.Vector{
		X: r.r1.Dot(p),
		Y: r.r2.Dot(p),
		Z: r.r3.Dot(p),
	}
	if hr != nil {
		hr.CloneFrom(Skew(q))
	}
	if hp != nil {
		hp.CloneFrom(r.Transposed())
	}
	return q
}
