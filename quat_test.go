package vectormath_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/shadowndacorner/vectormath"
	"github.com/shadowndacorner/vectormath/internal/testutil"
)

func vec3s(v vectormath.Vector3) []float32 { return []float32{v.X, v.Y, v.Z} }

func TestQuatRotateMatchesMatrix(t *testing.T) {
	for _, q := range testutil.DeterministicUnitQuats(1, 16) {
		m := vectormath.Matrix3FromQuat(q)
		for _, v := range testutil.DeterministicVector3s(2, 3, 8) {
			testutil.RequireSliceNearlyEqual(t, vec3s(q.Rotate(v)), vec3s(m.MulVector3(v)), 1e-5)
		}
	}
}

func TestQuatRotationAxis(t *testing.T) {
	q := vectormath.QuatRotation(math32.Pi/2, vectormath.NewVector3(0, 0, 1))
	got := q.Rotate(vectormath.NewVector3(1, 0, 0))
	testutil.RequireSliceNearlyEqual(t, vec3s(got), []float32{0, 1, 0}, 1e-6)

	m := vectormath.RotationZ(math32.Pi / 2).MulVector3(vectormath.NewVector3(1, 0, 0))
	testutil.RequireSliceNearlyEqual(t, vec3s(m.XYZ()), []float32{0, 1, 0}, 1e-6)
}

func TestQuatMulComposes(t *testing.T) {
	qs := testutil.DeterministicUnitQuats(4, 2)
	a, b := qs[0], qs[1]
	v := vectormath.NewVector3(0.5, -1, 2)

	testutil.RequireSliceNearlyEqual(t, vec3s(a.Mul(b).Rotate(v)), vec3s(a.Rotate(b.Rotate(v))), 1e-5)
	testutil.RequireSliceNearlyEqual(t, vec3s(a.Mul(a.Conj()).Rotate(v)), vec3s(v), 1e-5)
}
