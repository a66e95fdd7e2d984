package geom_test

import (
	"fmt"

	"github.com/shadowndacorner/vectormath"
	"github.com/shadowndacorner/vectormath/geom"
)

func ExampleMakeShadowMatrix() {
	ground := vectormath.NewVector4(0, 1, 0, 0)
	sun := vectormath.NewVector4(0, 10, 0, 1)

	shadow := geom.MakeShadowMatrix(ground, sun)
	p := geom.ProjectShadow(shadow, vectormath.NewPoint3(0, 5, 0))
	fmt.Printf("%.1f %.1f %.1f\n", p.X, p.Y, p.Z)

	// Output:
	// 0.0 0.0 0.0
}

func ExampleWorldPointToModel() {
	model := vectormath.Translation4(vectormath.NewVector3(0, 0, 2))
	local := geom.WorldPointToModel(model.Inverse(), vectormath.NewPoint3(0, 0, 5))
	fmt.Println(local.X, local.Y, local.Z)

	// Output:
	// 0 0 3
}

func ExampleVector3Floats() {
	v := vectormath.NewVector3(1, 2, 3)
	f := geom.Vector3Floats(&v)
	f[0] = 10

	fmt.Println(len(f), v.X)

	// Output:
	// 4 10
}

func ExamplePack3() {
	p := geom.Pack3[float32](vectormath.NewVector2(1, 2))
	fmt.Println(p)

	// Output:
	// [1 2 0]
}

func ExampleClampMagnitude() {
	v := geom.ClampMagnitude(vectormath.NewVector3(3, 0, 4), 1)
	fmt.Printf("%.1f %.1f %.1f\n", v.X, v.Y, v.Z)

	// Output:
	// 0.6 0.0 0.8
}
