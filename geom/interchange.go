package geom

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/shadowndacorner/vectormath"
)

// ToF32Vec2 returns v as an f32.Vec2.
func ToF32Vec2(v vectormath.Vector2) f32.Vec2 { return f32.Vec2{v.X, v.Y} }

// ToF32Vec3 returns v as an f32.Vec3, dropping the padding slot.
func ToF32Vec3(v vectormath.Vector3) f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// ToF32Vec4 returns v as an f32.Vec4.
func ToF32Vec4(v vectormath.Vector4) f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// FromF32Vec3 returns v as a Vector3.
func FromF32Vec3(v f32.Vec3) vectormath.Vector3 { return vectormath.NewVector3(v[0], v[1], v[2]) }

// FromF32Vec4 returns v as a Vector4.
func FromF32Vec4(v f32.Vec4) vectormath.Vector4 { return vectormath.NewVector4(v[0], v[1], v[2], v[3]) }

// ToF32Mat3 returns m as an f32.Mat3. f32 matrices are row major, so the
// entry in column c, row r lands at index 3*r+c.
func ToF32Mat3(m vectormath.Matrix3) f32.Mat3 {
	var out f32.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = m.Elem(c, r)
		}
	}
	return out
}

// ToF32Mat4 returns m as a row-major f32.Mat4.
func ToF32Mat4(m vectormath.Matrix4) f32.Mat4 {
	var out f32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*r+c] = m.Elem(c, r)
		}
	}
	return out
}

// FromF32Mat4 returns the row-major m as a column-major Matrix4.
func FromF32Mat4(m f32.Mat4) vectormath.Matrix4 {
	var out vectormath.Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out.SetElem(c, r, m[4*r+c])
		}
	}
	return out
}

// ToF64Aff3 returns the XY part of t as a 2D affine matrix, as consumed by
// golang.org/x/image/draw transformers. Z inputs and outputs are ignored.
func ToF64Aff3(t vectormath.Transform3) f64.Aff3 {
	return f64.Aff3{
		float64(t.Cols[0].X), float64(t.Cols[1].X), float64(t.Cols[3].X),
		float64(t.Cols[0].Y), float64(t.Cols[1].Y), float64(t.Cols[3].Y),
	}
}
