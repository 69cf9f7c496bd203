package flo

import (
	"github.com/x448/float16"
)

// Float16 converts f to an IEEE 754 binary16. Every E4M3 fits exactly: the
// subnormals of E4M3 are normal binary16 values and 448 is well below 65504.
func (f E4M3) Float16() float16.Float16 {
	return float16.Fromfloat32(f.Float32())
}

// FromFloat16 converts a binary16 to the nearest E4M3, with the same rules as
// FromFloat32. binary16 infinities saturate to ±448.
func FromFloat16(h float16.Float16) E4M3 {
	return FromFloat32(h.Float32())
}
