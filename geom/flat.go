package geom

import (
	"unsafe"

	"github.com/shadowndacorner/vectormath"
)

// Number of float32 slots in the flat view of each type. Three-component
// types include their padding slot.
const (
	Point2Len     = 2
	Point3Len     = 4
	Vector2Len    = 2
	Vector3Len    = 4
	Vector4Len    = 4
	QuatLen       = 4
	Matrix3Len    = 12
	Matrix4Len    = 16
	Transform3Len = 16
)

// Flattenable is the closed set of types with a flat float32 view.
type Flattenable interface {
	*vectormath.Point2 | *vectormath.Point3 |
		*vectormath.Vector2 | *vectormath.Vector3 | *vectormath.Vector4 |
		*vectormath.Quat |
		*vectormath.Matrix3 | *vectormath.Matrix4 |
		*vectormath.Transform3
}

func floats[T any](p *T, n int) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(p)), n)
}

// Point2Floats returns the 2 components of p. The slice aliases p.
func Point2Floats(p *vectormath.Point2) []float32 { return floats(p, Point2Len) }

// Point3Floats returns the 4 slots of p (X, Y, Z, padding). The slice aliases p.
func Point3Floats(p *vectormath.Point3) []float32 { return floats(p, Point3Len) }

// Vector2Floats returns the 2 components of v. The slice aliases v.
func Vector2Floats(v *vectormath.Vector2) []float32 { return floats(v, Vector2Len) }

// Vector3Floats returns the 4 slots of v (X, Y, Z, padding). The slice aliases v.
func Vector3Floats(v *vectormath.Vector3) []float32 { return floats(v, Vector3Len) }

// Vector4Floats returns the 4 components of v. The slice aliases v.
func Vector4Floats(v *vectormath.Vector4) []float32 { return floats(v, Vector4Len) }

// QuatFloats returns X, Y, Z, W of q. The slice aliases q.
func QuatFloats(q *vectormath.Quat) []float32 { return floats(q, QuatLen) }

// Matrix3Floats returns the 12 slots of m: three padded columns. The slice aliases m.
func Matrix3Floats(m *vectormath.Matrix3) []float32 { return floats(m, Matrix3Len) }

// Matrix4Floats returns the 16 entries of m in column-major order. The slice aliases m.
func Matrix4Floats(m *vectormath.Matrix4) []float32 { return floats(m, Matrix4Len) }

// Transform3Floats returns the 16 slots of t: four padded columns. The slice aliases t.
func Transform3Floats(t *vectormath.Transform3) []float32 { return floats(t, Transform3Len) }

// Floats returns the flat view of any [Flattenable] value.
// The slice aliases the value and must not outlive it.
func Floats[T Flattenable](v T) []float32 {
	switch p := any(v).(type) {
	case *vectormath.Point2:
		return Point2Floats(p)
	case *vectormath.Point3:
		return Point3Floats(p)
	case *vectormath.Vector2:
		return Vector2Floats(p)
	case *vectormath.Vector3:
		return Vector3Floats(p)
	case *vectormath.Vector4:
		return Vector4Floats(p)
	case *vectormath.Quat:
		return QuatFloats(p)
	case *vectormath.Matrix3:
		return Matrix3Floats(p)
	case *vectormath.Matrix4:
		return Matrix4Floats(p)
	case *vectormath.Transform3:
		return Transform3Floats(p)
	}
	return nil
}

// View is a read-only flat view over a value's float32 slots.
// It aliases the value it was taken from: later writes to the value are
// visible through the view.
type View struct {
	s []float32
}

// Len returns the number of float32 slots.
func (v View) Len() int { return len(v.s) }

// At returns slot i.
func (v View) At(i int) float32 { return v.s[i] }

// CopyTo copies the slots into dst and returns the number copied.
func (v View) CopyTo(dst []float32) int { return copy(dst, v.s) }

// Floats returns a copy of the slots.
func (v View) Floats() []float32 {
	out := make([]float32, len(v.s))
	copy(out, v.s)
	return out
}

// Point2View returns a read-only view of p.
func Point2View(p *vectormath.Point2) View { return View{Point2Floats(p)} }

// Point3View returns a read-only view of p.
func Point3View(p *vectormath.Point3) View { return View{Point3Floats(p)} }

// Vector2View returns a read-only view of v.
func Vector2View(v *vectormath.Vector2) View { return View{Vector2Floats(v)} }

// Vector3View returns a read-only view of v.
func Vector3View(v *vectormath.Vector3) View { return View{Vector3Floats(v)} }

// Vector4View returns a read-only view of v.
func Vector4View(v *vectormath.Vector4) View { return View{Vector4Floats(v)} }

// QuatView returns a read-only view of q.
func QuatView(q *vectormath.Quat) View { return View{QuatFloats(q)} }

// Matrix3View returns a read-only view of m.
func Matrix3View(m *vectormath.Matrix3) View { return View{Matrix3Floats(m)} }

// Matrix4View returns a read-only view of m.
func Matrix4View(m *vectormath.Matrix4) View { return View{Matrix4Floats(m)} }

// Transform3View returns a read-only view of t.
func Transform3View(t *vectormath.Transform3) View { return View{Transform3Floats(t)} }

// ViewOf returns a read-only view of any [Flattenable] value.
func ViewOf[T Flattenable](v T) View { return View{Floats(v)} }
