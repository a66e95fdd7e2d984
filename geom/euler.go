package geom

import (
	"github.com/chewxy/math32"
	"github.com/shadowndacorner/vectormath"
)

// FromEuler converts Euler angles in radians to a quaternion.
// euler.X is pitch, euler.Y is yaw and euler.Z is roll.
func FromEuler(euler vectormath.Vector3) vectormath.Quat {
	pitch := euler.X
	yaw := euler.Y
	roll := euler.Z

	t0 := math32.Cos(yaw * 0.5)
	t1 := math32.Sin(yaw * 0.5)
	t2 := math32.Cos(roll * 0.5)
	t3 := math32.Sin(roll * 0.5)
	t4 := math32.Cos(pitch * 0.5)
	t5 := math32.Sin(pitch * 0.5)

	return vectormath.NewQuat(
		t0*t3*t4-t1*t2*t5,
		t0*t2*t5+t1*t3*t4,
		t1*t2*t4-t0*t3*t5,
		t0*t2*t4+t1*t3*t5,
	)
}

// ToEulerAngle converts a quaternion to Euler angles (pitch, yaw, roll) in
// radians, laid out as in [FromEuler]. The two are inverses away from gimbal
// lock (pitch near ±π/2); at the singularity yaw and roll are not unique.
func ToEulerAngle(q vectormath.Quat) vectormath.Vector3 {
	ysqr := q.Y * q.Y

	// roll (x-axis rotation)
	t0 := 2 * (q.W*q.X + q.Y*q.Z)
	t1 := 1 - 2*(q.X*q.X+ysqr)
	roll := math32.Atan2(t0, t1)

	// pitch (y-axis rotation); rounding can push the argument just past ±1
	t2 := 2 * (q.W*q.Y - q.Z*q.X)
	if t2 > 1 {
		t2 = 1
	}
	if t2 < -1 {
		t2 = -1
	}
	pitch := math32.Asin(t2)

	// yaw (z-axis rotation)
	t3 := 2 * (q.W*q.Z + q.X*q.Y)
	t4 := 1 - 2*(ysqr+q.Z*q.Z)
	yaw := math32.Atan2(t3, t4)

	return vectormath.NewVector3(pitch, yaw, roll)
}
