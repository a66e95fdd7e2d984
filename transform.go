package vectormath

// Transform3 is an affine transform: a 3x3 rotation/scale block in Cols[0..2]
// and a translation in Cols[3]. With padded columns it occupies sixteen floats.
type Transform3 struct {
	Cols [4]Vector3
}

// NewTransform3 builds a transform from an upper 3x3 block and a translation.
func NewTransform3(upper Matrix3, translation Vector3) Transform3 {
	return Transform3{Cols: [4]Vector3{upper.Cols[0], upper.Cols[1], upper.Cols[2], translation}}
}

// IdentityTransform3 returns the identity transform.
func IdentityTransform3() Transform3 {
	return NewTransform3(Identity3(), Vector3{})
}

// TransformFromQuat returns the rigid transform rotating by q and then
// translating by t.
func TransformFromQuat(q Quat, t Vector3) Transform3 {
	return NewTransform3(Matrix3FromQuat(q), t)
}

// Upper3x3 returns the rotation/scale block.
func (t Transform3) Upper3x3() Matrix3 {
	return NewMatrix3(t.Cols[0], t.Cols[1], t.Cols[2])
}

// Translation returns the translation column.
func (t Transform3) Translation() Vector3 { return t.Cols[3] }

// TransformPoint applies t to p.
func (t Transform3) TransformPoint(p Point3) Point3 {
	v := t.Upper3x3().MulVector3(p.Vector3()).Add(t.Cols[3])
	return NewPoint3(v.X, v.Y, v.Z)
}

// TransformVector applies the 3x3 block of t to v.
func (t Transform3) TransformVector(v Vector3) Vector3 {
	return t.Upper3x3().MulVector3(v)
}

// Matrix4 returns t as a 4x4 matrix with bottom row (0, 0, 0, 1).
func (t Transform3) Matrix4() Matrix4 {
	col := func(v Vector3, w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }
	return NewMatrix4(col(t.Cols[0], 0), col(t.Cols[1], 0), col(t.Cols[2], 0), col(t.Cols[3], 1))
}
