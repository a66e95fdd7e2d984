package vectormath

// Point2 is a 2D affine point.
type Point2 struct {
	X, Y float32
}

// Point3 is a 3D affine point stored in four floats.
// The trailing slot is padding, as in [Vector3].
type Point3 struct {
	X, Y, Z float32
	_       float32
}

// NewPoint2 returns the point (x, y).
func NewPoint2(x, y float32) Point2 { return Point2{X: x, Y: y} }

// NewPoint3 returns the point (x, y, z).
func NewPoint3(x, y, z float32) Point3 { return Point3{X: x, Y: y, Z: z} }

// Sub returns the vector from q to p.
func (p Point2) Sub(q Point2) Vector2 { return Vector2{p.X - q.X, p.Y - q.Y} }

// Add returns p displaced by v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// Elem returns component i (0 = X, 1 = Y, 2 = Z). It panics for other indices.
func (p Point3) Elem(i int) float32 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic("vectormath: Point3 index out of range")
}

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vector3 { return NewVector3(p.X-q.X, p.Y-q.Y, p.Z-q.Z) }

// Add returns p displaced by v.
func (p Point3) Add(v Vector3) Point3 { return NewPoint3(p.X+v.X, p.Y+v.Y, p.Z+v.Z) }

// Vector3 returns the position vector of p.
func (p Point3) Vector3() Vector3 { return NewVector3(p.X, p.Y, p.Z) }

// Vector4 returns p in homogeneous form with w = 1.
func (p Point3) Vector4() Vector4 { return Vector4{p.X, p.Y, p.Z, 1} }

// Dist returns the distance between p and q.
func (p Point3) Dist(q Point3) float32 { return p.Sub(q).Length() }
