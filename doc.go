// Package vectormath provides fixed-layout float32 vector, point, quaternion,
// matrix and transform types for 3D math.
//
// Every type is a plain struct of float32 fields declared in component order,
// so a value can be handed to graphics back ends as a flat run of floats (see
// package geom). Three-component types carry one padding slot and are four
// floats wide:
//
//   - [Vector2], [Point2]:  2 floats
//   - [Vector3], [Point3]:  4 floats (X, Y, Z, padding)
//   - [Vector4], [Quat]:    4 floats
//   - [Matrix3]:           12 floats, three padded columns
//   - [Matrix4]:           16 floats, four columns
//   - [Transform3]:        16 floats, 3x3 block plus translation column
//
// Matrices are column-major: m.Cols[c] is column c and m.Elem(c, r) is the
// entry in column c, row r. Transforming a vector multiplies it on the right
// (M * v).
package vectormath
