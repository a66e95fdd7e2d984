package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/shadowndacorner/vectormath"
	"github.com/shadowndacorner/vectormath/internal/testutil"
)

func eulerSlice(v vectormath.Vector3) []float32 { return []float32{v.X, v.Y, v.Z} }

func TestEulerRoundTrip(t *testing.T) {
	e := vectormath.NewVector3(0.3, 0.5, -0.2)
	got := ToEulerAngle(FromEuler(e))
	testutil.RequireSliceNearlyEqual(t, eulerSlice(got), eulerSlice(e), 1e-5)
}

func TestEulerRoundTripAwayFromGimbalLock(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		e := vectormath.NewVector3(
			(rng.Float32()*2-1)*1.2,
			(rng.Float32()*2-1)*3,
			(rng.Float32()*2-1)*3,
		)
		got := ToEulerAngle(FromEuler(e))
		testutil.RequireSliceNearlyEqual(t, eulerSlice(got), eulerSlice(e), 5e-4)
	}
}

func TestFromEulerIsUnit(t *testing.T) {
	for _, v := range testutil.DeterministicVector3s(5, math32.Pi, 64) {
		testutil.RequireNearlyEqual(t, "length", FromEuler(v).Length(), 1, 1e-5)
	}
}

func TestFromEulerSingleAxes(t *testing.T) {
	const angle = 0.8
	s, c := math32.Sin(angle/2), math32.Cos(angle/2)

	for _, tc := range []struct {
		name  string
		euler vectormath.Vector3
		want  vectormath.Quat
	}{
		{"zero", vectormath.Vector3{}, vectormath.IdentityQuat()},
		{"pitch about Y", vectormath.NewVector3(angle, 0, 0), vectormath.NewQuat(0, s, 0, c)},
		{"yaw about Z", vectormath.NewVector3(0, angle, 0), vectormath.NewQuat(0, 0, s, c)},
		{"roll about X", vectormath.NewVector3(0, 0, angle), vectormath.NewQuat(s, 0, 0, c)},
	} {
		got := FromEuler(tc.euler)
		testutil.RequireSliceNearlyEqual(t,
			[]float32{got.X, got.Y, got.Z, got.W},
			[]float32{tc.want.X, tc.want.Y, tc.want.Z, tc.want.W},
			1e-6)
	}
}

func TestToEulerAngleClampsPitch(t *testing.T) {
	// 2*a*a evaluates to 1.0000001 in float32, just outside asin's domain.
	a := math.Float32frombits(0x3F3504F4)
	for _, tc := range []struct {
		name string
		q    vectormath.Quat
		want float32
	}{
		{"positive overshoot", vectormath.NewQuat(0, a, 0, a), math32.Pi / 2},
		{"negative overshoot", vectormath.NewQuat(0, -a, 0, a), -math32.Pi / 2},
		{"far outside", vectormath.NewQuat(0, 2, 0, 2), math32.Pi / 2},
	} {
		e := ToEulerAngle(tc.q)
		testutil.RequireFinite(t, e.X, e.Y, e.Z)
		if e.X != tc.want {
			t.Fatalf("%s: pitch = %v, want %v", tc.name, e.X, tc.want)
		}
	}
}

func TestToEulerAngleIdentity(t *testing.T) {
	if got := ToEulerAngle(vectormath.IdentityQuat()); got != (vectormath.Vector3{}) {
		t.Fatalf("got %+v, want zero", got)
	}
}
