package geom

import (
	"golang.org/x/exp/constraints"

	"github.com/shadowndacorner/vectormath"
)

// Scalar is the set of component types a packed vector can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Packable is the set of vectors that can be packed.
type Packable interface {
	vectormath.Vector2 | vectormath.Vector3 | vectormath.Vector4
}

// Packed2 is a compact 2-slot interchange vector. The zero value is all zeros.
type Packed2[T Scalar] [2]T

// Packed3 is a compact 3-slot interchange vector. The zero value is all zeros.
type Packed3[T Scalar] [3]T

// Packed4 is a compact 4-slot interchange vector. The zero value is all zeros.
type Packed4[T Scalar] [4]T

// components returns the source components and how many of them are
// meaningful.
func components[V Packable](v V) (c [4]float32, n int) {
	switch s := any(v).(type) {
	case vectormath.Vector2:
		return [4]float32{s.X, s.Y}, 2
	case vectormath.Vector3:
		return [4]float32{s.X, s.Y, s.Z}, 3
	case vectormath.Vector4:
		return [4]float32{s.X, s.Y, s.Z, s.W}, 4
	}
	return c, 0
}

// pack converts up to len(dst) source components into dst. Slots past the
// source dimension keep their zero value; source components past len(dst)
// are dropped.
func pack[T Scalar, V Packable](dst []T, v V) {
	c, n := components(v)
	for i := 0; i < n && i < len(dst); i++ {
		dst[i] = T(c[i])
	}
}

// Pack2 converts v to a Packed2, keeping X and Y. Z and W are dropped.
func Pack2[T Scalar, V Packable](v V) Packed2[T] {
	var p Packed2[T]
	pack(p[:], v)
	return p
}

// Pack3 converts v to a Packed3. A Vector2 leaves the third slot zero; the W
// of a Vector4 is dropped.
func Pack3[T Scalar, V Packable](v V) Packed3[T] {
	var p Packed3[T]
	pack(p[:], v)
	return p
}

// Pack4 converts v to a Packed4. Slots the source does not have stay zero.
func Pack4[T Scalar, V Packable](v V) Packed4[T] {
	var p Packed4[T]
	pack(p[:], v)
	return p
}

// Lossless reports whether packing v into n slots keeps every component.
// Conversion precision is not considered.
func Lossless[V Packable](v V, n int) bool {
	_, dim := components(v)
	return dim <= n
}

// Unpack returns the stored components as a Vector4, zero-filling Z and W.
func (p Packed2[T]) Unpack() vectormath.Vector4 {
	return vectormath.NewVector4(float32(p[0]), float32(p[1]), 0, 0)
}

// Unpack returns the stored components as a Vector4, zero-filling W.
func (p Packed3[T]) Unpack() vectormath.Vector4 {
	return vectormath.NewVector4(float32(p[0]), float32(p[1]), float32(p[2]), 0)
}

// Unpack returns the stored components as a Vector4.
func (p Packed4[T]) Unpack() vectormath.Vector4 {
	return vectormath.NewVector4(float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3]))
}
