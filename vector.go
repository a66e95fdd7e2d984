package vectormath

import "github.com/chewxy/math32"

// Vector2 is a 2-component vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3-component vector stored in four floats.
// The trailing slot is padding; it is ignored by == and by every operation.
type Vector3 struct {
	X, Y, Z float32
	_       float32
}

// Vector4 is a 4-component vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// SplatVector3 returns a vector with all components set to s.
func SplatVector3(s float32) Vector3 { return Vector3{X: s, Y: s, Z: s} }

// Elem returns component i (0 = X, 1 = Y). It panics for other indices.
func (v Vector2) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vectormath: Vector2 index out of range")
}

// Add returns v + u.
func (v Vector2) Add(u Vector2) Vector2 { return Vector2{v.X + u.X, v.Y + u.Y} }

// Sub returns v - u.
func (v Vector2) Sub(u Vector2) Vector2 { return Vector2{v.X - u.X, v.Y - u.Y} }

// Scale returns v * s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and u.
func (v Vector2) Dot(u Vector2) float32 { return v.X*u.X + v.Y*u.Y }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Elem returns component i (0 = X, 1 = Y, 2 = Z). It panics for other indices.
func (v Vector3) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vectormath: Vector3 index out of range")
}

// Add returns v + u.
func (v Vector3) Add(u Vector3) Vector3 { return NewVector3(v.X+u.X, v.Y+u.Y, v.Z+u.Z) }

// Sub returns v - u.
func (v Vector3) Sub(u Vector3) Vector3 { return NewVector3(v.X-u.X, v.Y-u.Y, v.Z-u.Z) }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return NewVector3(-v.X, -v.Y, -v.Z) }

// Scale returns v * s.
func (v Vector3) Scale(s float32) Vector3 { return NewVector3(v.X*s, v.Y*s, v.Z*s) }

// Div returns v / s. Division by zero follows IEEE rules.
func (v Vector3) Div(s float32) Vector3 { return NewVector3(v.X/s, v.Y/s, v.Z/s) }

// MulPerElem returns the component-wise product of v and u.
func (v Vector3) MulPerElem(u Vector3) Vector3 { return NewVector3(v.X*u.X, v.Y*u.Y, v.Z*u.Z) }

// Dot returns the dot product of v and u.
func (v Vector3) Dot(u Vector3) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns the cross product v x u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return NewVector3(
		v.Y*u.Z-v.Z*u.Y,
		v.Z*u.X-v.X*u.Z,
		v.X*u.Y-v.Y*u.X,
	)
}

// LengthSqr returns the squared length of v.
func (v Vector3) LengthSqr() float32 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length.
// A zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 { return v.Scale(1 / v.Length()) }

// Elem returns component i (0 = X ... 3 = W). It panics for other indices.
func (v Vector4) Elem(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vectormath: Vector4 index out of range")
}

// SetElem sets component i (0 = X ... 3 = W). It panics for other indices.
func (v *Vector4) SetElem(i int, s float32) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	case 3:
		v.W = s
	default:
		panic("vectormath: Vector4 index out of range")
	}
}

// XYZ returns the first three components of v.
func (v Vector4) XYZ() Vector3 { return NewVector3(v.X, v.Y, v.Z) }

// Add returns v + u.
func (v Vector4) Add(u Vector4) Vector4 { return Vector4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W} }

// Sub returns v - u.
func (v Vector4) Sub(u Vector4) Vector4 { return Vector4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W} }

// Scale returns v * s.
func (v Vector4) Scale(s float32) Vector4 { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the 4-component dot product of v and u.
func (v Vector4) Dot(u Vector4) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

// Length returns the Euclidean length of v.
func (v Vector4) Length() float32 { return math32.Sqrt(v.Dot(v)) }
