package so3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
)

func TestQuatRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	// The half-turns exercise the three low-trace extraction branches.
	for _, r := range sampleRotations {
		assertRotNear(t, FromQuat(r.Quat()), r, epsilon)
	}
}

func TestQuatIsUnit(t *testing.T) {
	const epsilon = 1e-12
	for _, r := range sampleRotations {
		if n := quat.Abs(r.Quat()); math.Abs(n-1) > epsilon {
			t.Fatalf("%v: quaternion norm %g", r, n)
		}
	}
}

func TestFromQuatKnown(t *testing.T) {
	const epsilon = 1e-9
	th := 0.8
	s, c := math.Sincos(th / 2)
	assertRotNear(t, FromQuat(quat.Number{Real: c, Kmag: s}), Rz(th), epsilon)
	assertRotNear(t, FromQuat(quat.Number{Real: c, Imag: s}), Rx(th), epsilon)
	assertRotNear(t, FromQuat(quat.Number{Real: 1}), Identity, epsilon)
}
