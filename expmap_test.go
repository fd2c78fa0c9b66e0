package so3

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestExpmapElementary(t *testing.T) {
	const epsilon = 1e-9
	assertRotNear(t, Expmap(r3.Vector{X: math.Pi / 2}), Rx(math.Pi/2), epsilon)
	assertRotNear(t, Expmap(r3.Vector{Y: math.Pi / 2}), Ry(math.Pi/2), epsilon)
	assertRotNear(t, Expmap(r3.Vector{Z: math.Pi / 2}), Rz(math.Pi/2), epsilon)
}

func TestExpmapTiny(t *testing.T) {
	w := r3.Vector{X: 1e-12, Y: -3e-13, Z: 2e-12}
	assertRotNear(t, Expmap(w), Identity, 0)
}

func TestExpLogRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	ws := []r3.Vector{
		{},
		{X: 0.1},
		{Y: -0.7},
		{Z: 2.9},
		{X: 0.4, Y: -0.9, Z: 1.3},
		{X: -1.2, Y: 0.3, Z: -0.8},
		{X: 1e-8, Y: 2e-8, Z: -1e-8},
		{X: 3.1, Y: 0.1, Z: 0.1}, // norm just under pi
	}
	for _, w := range ws {
		if w.Norm() >= math.Pi {
			t.Fatalf("test vector %v outside the injectivity radius", w)
		}
		assertVecNear(t, Logmap(Expmap(w)), w, epsilon)
	}
}

func TestLogmapAtPi(t *testing.T) {
	const epsilon = 1e-9
	rots := []Rotation{
		Rx(math.Pi),
		Ry(math.Pi),
		Rz(math.Pi),
		ExpmapAxis(r3.Vector{X: 1, Y: 1}.Normalize(), math.Pi),
		ExpmapAxis(r3.Vector{X: 1, Y: 1, Z: 1}.Normalize(), math.Pi),
	}
	for _, r := range rots {
		w := Logmap(r)
		if math.Abs(w.Norm()-math.Pi) > epsilon {
			t.Fatalf("Logmap(%v) has angle %g, expected π", r, w.Norm())
		}
		// The axis is only determined up to sign at π, so compare
		// rotations, not tangent vectors.
		assertRotNear(t, Expmap(w), r, epsilon)
	}
}

func TestLogmapNearZero(t *testing.T) {
	const epsilon = 1e-12
	w := r3.Vector{X: 4e-5, Y: -2e-5, Z: 3e-5}
	assertVecNear(t, Logmap(Expmap(w)), w, epsilon)
}

func TestExpmapAxisStrict(t *testing.T) {
	defer func(old bool) { Strict = old }(Strict)

	Strict = true
	assertPanics(t, func() {
		ExpmapAxis(r3.Vector{X: 1, Y: 1}, 0.5)
	})
	// A unit axis passes.
	ExpmapAxis(r3.Vector{X: 1}, 0.5)
}
