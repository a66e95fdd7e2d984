package batch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/shadowndacorner/vectormath"
)

var (
	// ErrLengthMismatch is returned when columns differ in length.
	ErrLengthMismatch = errors.New("batch: column length mismatch")
	// ErrNegativeMax is returned for a negative magnitude limit.
	ErrNegativeMax = errors.New("batch: negative magnitude limit")
)

// scratchBuf holds pooled scratch memory for intermediate columns.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (col []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func checkLengths(n int, cols ...[]float64) error {
	for _, c := range cols {
		if len(c) != n {
			return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(c), n)
		}
	}
	return nil
}

// Lengths computes dst[i] = |(x[i], y[i], z[i])|.
// All four slices must have the same length.
func Lengths(dst, x, y, z []float64) error {
	if err := checkLengths(len(dst), x, y, z); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}

	xy, buf := getScratch(len(dst))
	vecmath.Magnitude(xy, x, y)
	vecmath.Magnitude(dst, xy, z)
	putScratch(buf)
	return nil
}

// ClampMagnitudes rescales, in place, every row (x[i], y[i], z[i]) longer
// than max to length max. Shorter rows are left exactly as they are.
func ClampMagnitudes(x, y, z []float64, max float64) error {
	if max < 0 {
		return ErrNegativeMax
	}
	if err := checkLengths(len(x), y, z); err != nil {
		return err
	}
	if len(x) == 0 {
		return nil
	}

	factors, buf := getScratch(len(x))
	defer putScratch(buf)

	if err := Lengths(factors, x, y, z); err != nil {
		return err
	}
	for i, length := range factors {
		if length > max {
			factors[i] = max / length
		} else {
			factors[i] = 1
		}
	}

	vecmath.MulBlockInPlace(x, factors)
	vecmath.MulBlockInPlace(y, factors)
	vecmath.MulBlockInPlace(z, factors)
	return nil
}

// Split3 unpacks vectors into x, y and z columns.
func Split3(vs []vectormath.Vector3) (x, y, z []float64) {
	x = make([]float64, len(vs))
	y = make([]float64, len(vs))
	z = make([]float64, len(vs))
	for i, v := range vs {
		x[i], y[i], z[i] = float64(v.X), float64(v.Y), float64(v.Z)
	}
	return x, y, z
}

// Merge3 packs columns back into dst, converting to float32.
func Merge3(dst []vectormath.Vector3, x, y, z []float64) error {
	if err := checkLengths(len(dst), x, y, z); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = vectormath.NewVector3(float32(x[i]), float32(y[i]), float32(z[i]))
	}
	return nil
}
