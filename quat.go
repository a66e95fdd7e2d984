package vectormath

import "github.com/chewxy/math32"

// Quat is a quaternion x*i + y*j + z*k + w. Unit quaternions represent
// rotations; nothing here requires the input to be normalized.
type Quat struct {
	X, Y, Z, W float32
}

// NewQuat returns the quaternion with the given components.
func NewQuat(x, y, z, w float32) Quat { return Quat{X: x, Y: y, Z: z, W: w} }

// IdentityQuat returns the rotation that leaves vectors unchanged.
func IdentityQuat() Quat { return Quat{W: 1} }

// QuatRotation returns the rotation of angle radians around the unit axis.
func QuatRotation(angle float32, axis Vector3) Quat {
	s := math32.Sin(angle * 0.5)
	c := math32.Cos(angle * 0.5)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// Dot returns the 4-component dot product of q and p.
func (q Quat) Dot(p Quat) float32 { return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W }

// Norm returns the squared length of q.
func (q Quat) Norm() float32 { return q.Dot(q) }

// Length returns the length of q.
func (q Quat) Length() float32 { return math32.Sqrt(q.Norm()) }

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	inv := 1 / q.Length()
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conj returns the conjugate of q.
func (q Quat) Conj() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Neg returns -q, which represents the same rotation as q.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

// Mul returns the Hamilton product q * p (apply p, then q).
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y + q.Y*p.W + q.Z*p.X - q.X*p.Z,
		Z: q.W*p.Z + q.Z*p.W + q.X*p.Y - q.Y*p.X,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// Rotate rotates v by the unit quaternion q.
func (q Quat) Rotate(v Vector3) Vector3 {
	tmpX := q.W*v.X + q.Y*v.Z - q.Z*v.Y
	tmpY := q.W*v.Y + q.Z*v.X - q.X*v.Z
	tmpZ := q.W*v.Z + q.X*v.Y - q.Y*v.X
	tmpW := q.X*v.X + q.Y*v.Y + q.Z*v.Z
	return NewVector3(
		tmpW*q.X+tmpX*q.W-tmpY*q.Z+tmpZ*q.Y,
		tmpW*q.Y+tmpY*q.W-tmpZ*q.X+tmpX*q.Z,
		tmpW*q.Z+tmpZ*q.W-tmpX*q.Y+tmpY*q.X,
	)
}
