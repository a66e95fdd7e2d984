// Package batch applies vector helpers to structure-of-arrays float64
// columns, as found in vertex and particle buffers.
//
// Columns hold one coordinate each (x, y, z). The heavy lifting is done by
// the block kernels of github.com/cwbudde/algo-vecmath, which pick SIMD
// implementations (AVX2, SSE2, NEON) at run time.
package batch
