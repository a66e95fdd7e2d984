package vectormath

import "github.com/chewxy/math32"

// Matrix3 is a column-major 3x3 matrix. Each column is a padded [Vector3],
// so the matrix occupies twelve floats.
type Matrix3 struct {
	Cols [3]Vector3
}

// Matrix4 is a column-major 4x4 matrix.
type Matrix4 struct {
	Cols [4]Vector4
}

// NewMatrix3 builds a matrix from its columns.
func NewMatrix3(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{Cols: [3]Vector3{c0, c1, c2}}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return NewMatrix3(NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1))
}

// Matrix3FromQuat returns the rotation matrix of the unit quaternion q.
func Matrix3FromQuat(q Quat) Matrix3 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return NewMatrix3(
		NewVector3(1-yy-zz, xy+wz, xz-wy),
		NewVector3(xy-wz, 1-xx-zz, yz+wx),
		NewVector3(xz+wy, yz-wx, 1-xx-yy),
	)
}

// Elem returns the entry in column col, row row.
func (m Matrix3) Elem(col, row int) float32 { return m.Cols[col].Elem(row) }

// MulVector3 returns m * v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return m.Cols[0].Scale(v.X).Add(m.Cols[1].Scale(v.Y)).Add(m.Cols[2].Scale(v.Z))
}

// Mul returns m * n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return NewMatrix3(m.MulVector3(n.Cols[0]), m.MulVector3(n.Cols[1]), m.MulVector3(n.Cols[2]))
}

// NewMatrix4 builds a matrix from its columns.
func NewMatrix4(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4{Cols: [4]Vector4{c0, c1, c2, c3}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return NewMatrix4(
		Vector4{1, 0, 0, 0},
		Vector4{0, 1, 0, 0},
		Vector4{0, 0, 1, 0},
		Vector4{0, 0, 0, 1},
	)
}

// Translation4 returns a matrix translating points by t.
func Translation4(t Vector3) Matrix4 {
	m := Identity4()
	m.Cols[3] = Vector4{t.X, t.Y, t.Z, 1}
	return m
}

// Scale4 returns a matrix scaling each axis by the matching component of s.
func Scale4(s Vector3) Matrix4 {
	return NewMatrix4(
		Vector4{s.X, 0, 0, 0},
		Vector4{0, s.Y, 0, 0},
		Vector4{0, 0, s.Z, 0},
		Vector4{0, 0, 0, 1},
	)
}

// RotationX returns a rotation of angle radians around the X axis.
func RotationX(angle float32) Matrix4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	m := Identity4()
	m.Cols[1] = Vector4{0, c, s, 0}
	m.Cols[2] = Vector4{0, -s, c, 0}
	return m
}

// RotationY returns a rotation of angle radians around the Y axis.
func RotationY(angle float32) Matrix4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	m := Identity4()
	m.Cols[0] = Vector4{c, 0, -s, 0}
	m.Cols[2] = Vector4{s, 0, c, 0}
	return m
}

// RotationZ returns a rotation of angle radians around the Z axis.
func RotationZ(angle float32) Matrix4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	m := Identity4()
	m.Cols[0] = Vector4{c, s, 0, 0}
	m.Cols[1] = Vector4{-s, c, 0, 0}
	return m
}

// Elem returns the entry in column col, row row.
func (m Matrix4) Elem(col, row int) float32 { return m.Cols[col].Elem(row) }

// SetElem sets the entry in column col, row row.
func (m *Matrix4) SetElem(col, row int, v float32) { m.Cols[col].SetElem(row, v) }

// Row returns row r as a vector.
func (m Matrix4) Row(r int) Vector4 {
	return Vector4{m.Cols[0].Elem(r), m.Cols[1].Elem(r), m.Cols[2].Elem(r), m.Cols[3].Elem(r)}
}

// MulVector4 returns m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return m.Cols[0].Scale(v.X).
		Add(m.Cols[1].Scale(v.Y)).
		Add(m.Cols[2].Scale(v.Z)).
		Add(m.Cols[3].Scale(v.W))
}

// MulPoint3 returns m * (p, 1). No homogeneous divide is performed.
func (m Matrix4) MulPoint3(p Point3) Vector4 { return m.MulVector4(p.Vector4()) }

// MulVector3 returns m * (v, 0), ignoring the translation column.
func (m Matrix4) MulVector3(v Vector3) Vector4 {
	return m.MulVector4(Vector4{v.X, v.Y, v.Z, 0})
}

// Mul returns m * n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	return NewMatrix4(
		m.MulVector4(n.Cols[0]),
		m.MulVector4(n.Cols[1]),
		m.MulVector4(n.Cols[2]),
		m.MulVector4(n.Cols[3]),
	)
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	return NewMatrix4(m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}

// Determinant returns the determinant of m.
func (m Matrix4) Determinant() float32 {
	return m.determinant(m.cofactors())
}

func (m Matrix4) determinant(adj [16]float32) float32 {
	c0 := m.Cols[0]
	return c0.X*adj[0] + c0.Y*adj[4] + c0.Z*adj[8] + c0.W*adj[12]
}

// Inverse returns the inverse of m. A singular matrix yields non-finite
// entries; callers that cannot rule that out should check Determinant first.
func (m Matrix4) Inverse() Matrix4 {
	c := m.cofactors()
	inv := 1 / m.determinant(c)

	var out Matrix4
	for i := range c {
		out.SetElem(i/4, i%4, c[i]*inv)
	}
	return out
}

// cofactors returns the adjugate of m, column-major.
func (m Matrix4) cofactors() [16]float32 {
	a := func(c, r int) float32 { return m.Cols[c].Elem(r) }

	s0 := a(0, 0)*a(1, 1) - a(1, 0)*a(0, 1)
	s1 := a(0, 0)*a(1, 2) - a(1, 0)*a(0, 2)
	s2 := a(0, 0)*a(1, 3) - a(1, 0)*a(0, 3)
	s3 := a(0, 1)*a(1, 2) - a(1, 1)*a(0, 2)
	s4 := a(0, 1)*a(1, 3) - a(1, 1)*a(0, 3)
	s5 := a(0, 2)*a(1, 3) - a(1, 2)*a(0, 3)

	c5 := a(2, 2)*a(3, 3) - a(3, 2)*a(2, 3)
	c4 := a(2, 1)*a(3, 3) - a(3, 1)*a(2, 3)
	c3 := a(2, 1)*a(3, 2) - a(3, 1)*a(2, 2)
	c2 := a(2, 0)*a(3, 3) - a(3, 0)*a(2, 3)
	c1 := a(2, 0)*a(3, 2) - a(3, 0)*a(2, 2)
	c0 := a(2, 0)*a(3, 1) - a(3, 0)*a(2, 1)

	return [16]float32{
		a(1, 1)*c5 - a(1, 2)*c4 + a(1, 3)*c3,
		-a(0, 1)*c5 + a(0, 2)*c4 - a(0, 3)*c3,
		a(3, 1)*s5 - a(3, 2)*s4 + a(3, 3)*s3,
		-a(2, 1)*s5 + a(2, 2)*s4 - a(2, 3)*s3,

		-a(1, 0)*c5 + a(1, 2)*c2 - a(1, 3)*c1,
		a(0, 0)*c5 - a(0, 2)*c2 + a(0, 3)*c1,
		-a(3, 0)*s5 + a(3, 2)*s2 - a(3, 3)*s1,
		a(2, 0)*s5 - a(2, 2)*s2 + a(2, 3)*s1,

		a(1, 0)*c4 - a(1, 1)*c2 + a(1, 3)*c0,
		-a(0, 0)*c4 + a(0, 1)*c2 - a(0, 3)*c0,
		a(3, 0)*s4 - a(3, 1)*s2 + a(3, 3)*s0,
		-a(2, 0)*s4 + a(2, 1)*s2 - a(2, 3)*s0,

		-a(1, 0)*c3 + a(1, 1)*c1 - a(1, 2)*c0,
		a(0, 0)*c3 - a(0, 1)*c1 + a(0, 2)*c0,
		-a(3, 0)*s3 + a(3, 1)*s1 - a(3, 2)*s0,
		a(2, 0)*s3 - a(2, 1)*s1 + a(2, 2)*s0,
	}
}
