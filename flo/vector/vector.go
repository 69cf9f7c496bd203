// package vector provides kernels over slices of flo.E4M3. Most of them have
// a few implementations, the exported functions use whichever did best in
// the benchmarks in vector_test.go.
package vector

import (
	"github.com/pfcm/minifloat/flo"
)

// Widen converts each element of src to float32, writing into dst. dst must
// be at least as long as src.
func Widen(dst []float32, src []flo.E4M3) {
	dst = dst[:len(src)]
	for i, f := range src {
		dst[i] = f.Float32()
	}
}

// Narrow converts each element of src to the nearest flo.E4M3, writing into
// dst. dst must be at least as long as src.
func Narrow(dst []flo.E4M3, src []float32) {
	dst = dst[:len(src)]
	for i, f := range src {
		dst[i] = flo.FromFloat32(f)
	}
}

// Add computes out[i] = a[i]+b[i] for each i up to n.
func Add(a, b, out []flo.E4M3, n int) { binary(flo.Add, a, b, out, n) }

// Sub computes out[i] = a[i]-b[i] for each i up to n.
func Sub(a, b, out []flo.E4M3, n int) { binary(flo.Sub, a, b, out, n) }

// Mul computes out[i] = a[i]*b[i] for each i up to n.
func Mul(a, b, out []flo.E4M3, n int) { binary(flo.Mul, a, b, out, n) }

// Div computes out[i] = a[i]/b[i] for each i up to n.
func Div(a, b, out []flo.E4M3, n int) { binary(flo.Div, a, b, out, n) }

func binary(op func(a, b flo.E4M3) flo.E4M3, a, b, out []flo.E4M3, n int) {
	// Reslicing up front panics early on short inputs and lets the
	// compiler drop the bounds checks in the loop.
	a, b, out = a[:n], b[:n], out[:n]
	for i := range out {
		out[i] = op(a[i], b[i])
	}
}

// Dot returns the sum of a[i]*b[i]. Products and the running sum are kept in
// float32; nothing is narrowed, so the caller decides how to round. b must be
// at least as long as a.
func Dot(a, b []flo.E4M3) float32 {
	b = b[:len(a)]
	var acc float32
	for i, x := range a {
		acc += x.Float32() * b[i].Float32()
	}
	return acc
}
