package testutil

import (
	"math/rand"

	"github.com/shadowndacorner/vectormath"
)

// DeterministicVector3s returns n vectors with components uniform in
// [-amplitude, amplitude], using a fixed seed for reproducibility.
func DeterministicVector3s(seed int64, amplitude float32, n int) []vectormath.Vector3 {
	rng := rand.New(rand.NewSource(seed))
	comp := func() float32 { return (rng.Float32()*2 - 1) * amplitude }

	out := make([]vectormath.Vector3, n)
	for i := range out {
		out[i] = vectormath.NewVector3(comp(), comp(), comp())
	}
	return out
}

// DeterministicUnitQuats returns n normalized quaternions from a fixed seed.
func DeterministicUnitQuats(seed int64, n int) []vectormath.Quat {
	rng := rand.New(rand.NewSource(seed))
	comp := func() float32 { return rng.Float32()*2 - 1 }

	out := make([]vectormath.Quat, n)
	for i := range out {
		q := vectormath.NewQuat(comp(), comp(), comp(), comp())
		for q.Norm() < 1e-4 {
			q = vectormath.NewQuat(comp(), comp(), comp(), comp())
		}
		out[i] = q.Normalize()
	}
	return out
}

// DeterministicColumns returns three float64 columns of length n holding
// coordinates uniform in [-amplitude, amplitude].
func DeterministicColumns(seed int64, amplitude float64, n int) (x, y, z []float64) {
	rng := rand.New(rand.NewSource(seed))
	x, y, z = make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = (rng.Float64()*2 - 1) * amplitude
		y[i] = (rng.Float64()*2 - 1) * amplitude
		z[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return x, y, z
}
