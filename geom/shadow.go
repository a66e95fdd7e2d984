package geom

import "github.com/shadowndacorner/vectormath"

// MakeShadowMatrix returns a matrix projecting points onto plane along rays
// from light, for planar shadow effects.
//
// plane holds the normal in XYZ and the offset in W, so points p on the plane
// satisfy plane·(p, 1) = 0. light.W should be 1 for a point light at
// light.XYZ and 0 for a directional light shining along light.XYZ.
//
// Entry (c, r) is dot - light[r]*plane[c] on the diagonal and
// -light[r]*plane[c] elsewhere, where dot is the 4-component dot product of
// plane and light. The result is homogeneous: divide by W after transforming.
func MakeShadowMatrix(plane, light vectormath.Vector4) vectormath.Matrix4 {
	dot := plane.X*light.X + plane.Y*light.Y + plane.Z*light.Z + plane.W*light.W

	var m vectormath.Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			v := -(light.Elem(r) * plane.Elem(c))
			if c == r {
				v = dot - light.Elem(r)*plane.Elem(c)
			}
			m.SetElem(c, r, v)
		}
	}
	return m
}

// ProjectShadow transforms p by a shadow matrix and performs the homogeneous
// divide. If the resulting W is zero (a point level with the light) p is
// returned unchanged.
func ProjectShadow(shadow vectormath.Matrix4, p vectormath.Point3) vectormath.Point3 {
	h := shadow.MulPoint3(p)
	if h.W == 0 {
		return p
	}
	return vectormath.NewPoint3(h.X/h.W, h.Y/h.W, h.Z/h.W)
}
