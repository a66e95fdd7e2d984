package geom

import (
	"testing"

	"github.com/shadowndacorner/vectormath"
)

func TestPackedZeroValue(t *testing.T) {
	var p4 Packed4[float32]
	if p4 != (Packed4[float32]{0, 0, 0, 0}) {
		t.Fatalf("zero Packed4 = %v", p4)
	}
	var p2 Packed2[int16]
	if p2 != (Packed2[int16]{}) {
		t.Fatalf("zero Packed2 = %v", p2)
	}
}

func TestPackFillsMissingSlotsWithZero(t *testing.T) {
	if got := Pack3[float32](vectormath.NewVector2(1, 2)); got != (Packed3[float32]{1, 2, 0}) {
		t.Fatalf("Pack3(Vector2) = %v, want [1 2 0]", got)
	}
	if got := Pack4[float64](vectormath.NewVector3(1, 2, 3)); got != (Packed4[float64]{1, 2, 3, 0}) {
		t.Fatalf("Pack4(Vector3) = %v, want [1 2 3 0]", got)
	}
	if got := Pack4[float32](vectormath.NewVector4(1, 2, 3, 4)); got != (Packed4[float32]{1, 2, 3, 4}) {
		t.Fatalf("Pack4(Vector4) = %v, want [1 2 3 4]", got)
	}
}

func TestPackTruncates(t *testing.T) {
	v := vectormath.NewVector4(1, 2, 3, 4)
	if got := Pack2[float32](v); got != (Packed2[float32]{1, 2}) {
		t.Fatalf("Pack2(Vector4) = %v, want [1 2]", got)
	}
	if got := Pack3[float32](v); got != (Packed3[float32]{1, 2, 3}) {
		t.Fatalf("Pack3(Vector4) = %v, want [1 2 3]", got)
	}

	if Lossless(v, 3) {
		t.Fatal("Lossless(Vector4, 3) = true")
	}
	if !Lossless(vectormath.NewVector2(1, 2), 3) {
		t.Fatal("Lossless(Vector2, 3) = false")
	}
	if !Lossless(vectormath.NewVector3(1, 2, 3), 3) {
		t.Fatal("Lossless(Vector3, 3) = false")
	}
}

func TestPackCastsComponents(t *testing.T) {
	got := Pack4[int32](vectormath.NewVector4(1.9, -2.7, 300, 0.2))
	if want := (Packed4[int32]{1, -2, 300, 0}); got != want {
		t.Fatalf("Pack4[int32] = %v, want %v", got, want)
	}

	u := Pack2[uint8](vectormath.NewVector2(7, 200))
	if u != (Packed2[uint8]{7, 200}) {
		t.Fatalf("Pack2[uint8] = %v, want [7 200]", u)
	}
}

func TestUnpack(t *testing.T) {
	if got := Pack2[float32](vectormath.NewVector2(1, 2)).Unpack(); got != vectormath.NewVector4(1, 2, 0, 0) {
		t.Fatalf("Packed2.Unpack = %+v", got)
	}
	if got := Pack3[int8](vectormath.NewVector3(1, 2, 3)).Unpack(); got != vectormath.NewVector4(1, 2, 3, 0) {
		t.Fatalf("Packed3.Unpack = %+v", got)
	}
	v := vectormath.NewVector4(0.5, -1, 2, 8)
	if got := Pack4[float64](v).Unpack(); got != v {
		t.Fatalf("Packed4.Unpack = %+v, want %+v", got, v)
	}
}
