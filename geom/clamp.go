package geom

import "github.com/shadowndacorner/vectormath"

// ClampMagnitude returns v unchanged if its length is at most max, and
// otherwise v rescaled to length max with the same direction.
// max must not be negative.
func ClampMagnitude(v vectormath.Vector3, max float32) vectormath.Vector3 {
	length := v.Length()
	if length > max {
		return v.Div(length).Scale(max)
	}
	return v
}
