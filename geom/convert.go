package geom

import "github.com/shadowndacorner/vectormath"

// ToPoint3 discards the W component of v. No homogeneous divide is performed.
func ToPoint3(v vectormath.Vector4) vectormath.Point3 {
	return vectormath.NewPoint3(v.X, v.Y, v.Z)
}

// WorldPointToModel converts a world-space point to model-local space.
// invModelToWorld must be the inverse of the model matrix, e.g.
// modelMatrix.Inverse(); it is used as given.
func WorldPointToModel(invModelToWorld vectormath.Matrix4, point vectormath.Point3) vectormath.Point3 {
	return ToPoint3(invModelToWorld.MulPoint3(point))
}

// ModelPointToWorld converts a model-local point to world space using the
// model matrix itself.
func ModelPointToWorld(modelToWorld vectormath.Matrix4, point vectormath.Point3) vectormath.Point3 {
	return ToPoint3(modelToWorld.MulPoint3(point))
}
