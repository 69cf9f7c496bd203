// package dct implements a discrete cosine transform (DCT-II) on flo.E4M3s.
package dct

import (
	"math"

	"github.com/pfcm/minifloat/flo"
	"github.com/pfcm/minifloat/flo/vector"
)

// Matrix builds a DCT matrix. The result is square with size n, and each element
// [i][j] = cos(pi/n * (j + 1/2) * i), rounded to the nearest E4M3.
func Matrix(n int) [][]flo.E4M3 {
	out := make([][]flo.E4M3, n)
	for i := range out {
		out[i] = make([]flo.E4M3, n)
	}
	var piOverN = math.Pi / float64(n)
	for i := range out {
		for j := range out[i] {
			f := math.Cos(piOverN * (float64(j) + 0.5) * float64(i))
			out[i][j] = flo.FromFloat64(f)
		}
	}
	return out
}

// Transform multiplies in by mat, writing into out. Each row is accumulated
// in float32 and rounded once.
// TODO: use an algorithm that isn't O(N^2)
func Transform(in, out []flo.E4M3, mat [][]flo.E4M3) {
	for i := range out {
		out[i] = flo.FromFloat32(vector.Dot(mat[i], in))
	}
}
