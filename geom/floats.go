package geom

import (
	"unsafe"

	"github.com/shadowndacorner/vectormath"
)

// SetFloats2 copies X and Y of v into dst[0:2]. dst[2:] is left untouched.
// It panics if len(dst) < 2.
func SetFloats2(dst []float32, v vectormath.Vector2) {
	copy(dst[:2], Vector2Floats(&v))
}

// SetFloats3 copies X, Y and Z of v into dst[0:3]. dst[3:] is left untouched.
// It panics if len(dst) < 3.
func SetFloats3(dst []float32, v vectormath.Vector3) {
	copy(dst[:3], Vector3Floats(&v))
}

// SetFloats4 copies the four components of v into dst[0:4]. dst[4:] is left
// untouched. It panics if len(dst) < 4.
func SetFloats4(dst []float32, v vectormath.Vector4) {
	copy(dst[:4], Vector4Floats(&v))
}

// SetFloats2At writes X and Y of v to the two floats starting at dst.
// The caller guarantees that dst heads a buffer of at least 2 floats.
func SetFloats2At(dst *float32, v vectormath.Vector2) {
	SetFloats2(unsafe.Slice(dst, 2), v)
}

// SetFloats3At writes X, Y and Z of v to the three floats starting at dst.
// The caller guarantees that dst heads a buffer of at least 3 floats.
func SetFloats3At(dst *float32, v vectormath.Vector3) {
	SetFloats3(unsafe.Slice(dst, 3), v)
}

// SetFloats4At writes the components of v to the four floats starting at dst.
// The caller guarantees that dst heads a buffer of at least 4 floats.
func SetFloats4At(dst *float32, v vectormath.Vector4) {
	SetFloats4(unsafe.Slice(dst, 4), v)
}
