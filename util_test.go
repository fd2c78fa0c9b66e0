package so3

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertVecNear(t *testing.T, got, want r3.Vector, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Norm(); d > epsilon {
		t.Fatalf("got %v, expected %v (off by %g)", got, want, d)
	}
}

func assertRotNear(t *testing.T, got, want Rotation, epsilon float64) {
	t.Helper()
	if !got.Equals(want, epsilon) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertMatNear(t *testing.T, got, want mat.Matrix, epsilon float64) {
	t.Helper()
	if !mat.EqualApprox(got, want, epsilon) {
		t.Fatalf("got\n%.6v\nexpected\n%.6v", mat.Formatted(got), mat.Formatted(want))
	}
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
}
