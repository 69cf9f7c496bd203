// package interp provides helpers for interpolating 8 bit float samples.
package interp

import (
	"github.com/pfcm/minifloat/flo"
)

// L does linear interpolation:
//
//	L(a, b, c) = (1-c)*a + c*b
//		= a + c*(b-a)
//
// With fixed point the first form is the safer one, but here the whole
// expression is worked out in float32 and only rounded once at the end, so
// the short form is fine. c is not clamped: values outside [0, 1]
// extrapolate.
func L(a, b, c flo.E4M3) flo.E4M3 {
	fa := a.Float32()
	return flo.FromFloat32(fa + c.Float32()*(b.Float32()-fa))
}

// Slice interpolates between a and b element-wise with the single weight c,
// writing into out. All three slices must be the same length.
func Slice(a, b []flo.E4M3, c flo.E4M3, out []flo.E4M3) {
	a, b = a[:len(out)], b[:len(out)]
	for i := range out {
		out[i] = L(a[i], b[i], c)
	}
}
