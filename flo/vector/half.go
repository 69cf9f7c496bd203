package vector

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/pfcm/minifloat/flo"
)

// EncodeFloat16 converts src to binary16, writing into dst. This is exact.
func EncodeFloat16(dst []float16.Float16, src []flo.E4M3) {
	dst = dst[:len(src)]
	for i, f := range src {
		dst[i] = f.Float16()
	}
}

// DecodeFloat16 converts binary16 values to the nearest flo.E4M3s.
func DecodeFloat16(dst []flo.E4M3, src []float16.Float16) {
	dst = dst[:len(src)]
	for i, h := range src {
		dst[i] = flo.FromFloat16(h)
	}
}

// EncodeBFloat16 converts src to little endian bfloat16s, 2 bytes per value.
// Every E4M3 fits in a bfloat16 exactly.
func EncodeBFloat16(src []flo.E4M3) []byte {
	f := make([]float32, len(src))
	Widen(f, src)
	return bfloat16.EncodeFloat32(f)
}

// DecodeBFloat16 reads little endian bfloat16s and narrows them. buf must
// have an even length.
func DecodeBFloat16(buf []byte) []flo.E4M3 {
	f := bfloat16.DecodeFloat32(buf)
	out := make([]flo.E4M3, len(f))
	Narrow(out, f)
	return out
}
