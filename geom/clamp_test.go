package geom

import (
	"testing"

	"github.com/shadowndacorner/vectormath"
	"github.com/shadowndacorner/vectormath/internal/testutil"
)

func TestClampMagnitudeShortUnchanged(t *testing.T) {
	for _, v := range []vectormath.Vector3{
		{},
		vectormath.NewVector3(1, 0, 0),
		vectormath.NewVector3(0.3, -0.4, 0),
	} {
		if got := ClampMagnitude(v, 1); got != v {
			t.Fatalf("ClampMagnitude(%+v) = %+v, want unchanged", v, got)
		}
	}

	if got := ClampMagnitude(vectormath.Vector3{}, 0); got != (vectormath.Vector3{}) {
		t.Fatalf("zero vector with zero max = %+v", got)
	}
}

func TestClampMagnitudeLong(t *testing.T) {
	got := ClampMagnitude(vectormath.NewVector3(3, 0, 4), 2.5)
	testutil.RequireSliceNearlyEqual(t, []float32{got.X, got.Y, got.Z}, []float32{1.5, 0, 2}, 1e-6)
}

func TestClampMagnitudeProperties(t *testing.T) {
	const eps = 1e-4
	for _, max := range []float32{0, 0.5, 1, 3} {
		for _, v := range testutil.DeterministicVector3s(9, 4, 128) {
			got := ClampMagnitude(v, max)
			length := v.Length()

			if got.Length() > max+eps {
				t.Fatalf("max=%v: |%+v| = %v", max, got, got.Length())
			}
			if length <= max {
				if got != v {
					t.Fatalf("max=%v: %+v changed to %+v", max, v, got)
				}
				continue
			}
			testutil.RequireNearlyEqual(t, "length", got.Length(), max, eps)
			if max > 0 {
				testutil.RequireNearlyEqual(t, "direction", got.Normalize().Dot(v.Normalize()), 1, eps)
			}
		}
	}
}
