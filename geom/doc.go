// Package geom provides free-standing helpers over the vectormath types.
//
// The helpers fall into a few families:
//
//   - flat views: [Vector3Floats], [Matrix4View], [Floats] and friends expose
//     a value's components as float32s for graphics and other C-style APIs
//   - conversions: [ToPoint3], [WorldPointToModel], [FromEuler], [ToEulerAngle]
//   - construction: [MakeShadowMatrix]
//   - shaping: [ClampMagnitude], [SetFloats3], [Pack4] and the packed types
//   - interchange with golang.org/x/image/math/f32: [ToF32Mat4] and friends
//
// Every function is pure and total over finite inputs; none return errors.
// Numeric edge cases pass through to IEEE arithmetic, except that
// [ToEulerAngle] clamps its arcsine argument to [-1, 1].
package geom
