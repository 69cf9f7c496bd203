// package flo provides an 8 bit floating point type with 1 sign bit, 4
// exponent bits and 3 significand bits (E4M3). It covers 2^-9 to 448 in both
// signs, with roughly one decimal digit of precision.
//
// There are no infinities. The only non-finite encodings are 0x7f and 0xff,
// which are NaN, so the largest magnitude is a finite 448. Arithmetic is done
// by widening to float32, computing there and narrowing the result back.
package flo

import (
	"math"
	"math/bits"
	"strconv"
)

// E4M3 is an 8 bit float. From the most significant bit down the layout is
// one sign bit, four exponent bits with a bias of 7 and three significand
// bits.
type E4M3 uint8

const (
	signMask E4M3 = 0x80
	expMask  E4M3 = 0x78
	mantMask E4M3 = 0x07
	absMask       = expMask | mantMask

	expBits   = 4
	mantBits  = 3
	bias      = 7
	f32Bias   = 127
	mantShift = 23 - mantBits

	f32SignMask uint32 = 1 << 31
	f32QNaN     uint32 = 0x7fc00000
)

const (
	// Zero is positive zero. Negative zero is 0x80.
	Zero E4M3 = 0x00
	// One is 1.0.
	One E4M3 = 0x38
	// MaxE4M3 is the largest finite value: 448.
	MaxE4M3 E4M3 = 0x7e
	// SmallestNormal is the smallest positive value with an implicit
	// leading one: 2^-6.
	SmallestNormal E4M3 = 0x08
	// SmallestNonzero is the smallest positive subnormal: 2^-9.
	SmallestNonzero E4M3 = 0x01
	// NaN is the positive NaN. 0xff is also NaN.
	NaN E4M3 = 0x7f
)

// rebias maps each of the 16 exponent fields to the float32 exponent field
// for the same power of two, already shifted into position. subnormals holds
// the complete float32 bit patterns for the encodings with a zero exponent,
// indexed by significand. Both are filled in once, before main, and never
// written again.
var rebias, subnormals = func() (r [1 << expBits]uint32, s [1 << mantBits]uint32) {
	for i := range r {
		// Smallest is 0-7+127 = 120, so this never goes negative.
		r[i] = uint32(i-bias+f32Bias) << 23
	}
	// s[0] stays zero. The rest are m * 2^(1-bias-mantBits), normalised so
	// the highest set bit of m becomes the implicit one.
	for m := 1; m < len(s); m++ {
		shift := mantBits + 1 - bits.Len8(uint8(m))
		e := 1 - bias - shift
		s[m] = uint32(e+f32Bias)<<23 | uint32((m<<shift)&int(mantMask))<<mantShift
	}
	return r, s
}()

// RebiasedExponent returns the float32 exponent bits, in position, for the
// exponent field i. Only the low 4 bits of i are used.
func RebiasedExponent(i uint8) uint32 {
	return rebias[i&0xf]
}

// Frombits returns the E4M3 with the given encoding.
func Frombits(b uint8) E4M3 { return E4M3(b) }

// Bits returns the raw encoding of f.
func (f E4M3) Bits() uint8 { return uint8(f) }

// split breaks f into its raw fields, without applying any biases.
func (f E4M3) split() (sign, exponent, mantissa uint8) {
	return uint8(f >> 7), uint8(f>>mantBits) & 0xf, uint8(f & mantMask)
}

// Components returns the sign, exponent and significand fields of f, with no
// bias applied.
func (f E4M3) Components() (sign, exponent, mantissa uint8) {
	return f.split()
}

// Float32 widens f to a float32. Every E4M3 other than NaN is exactly
// representable, so this never loses anything.
func (f E4M3) Float32() float32 {
	sign, exp, mant := f.split()
	s := uint32(sign) << 31
	switch {
	case exp == 0xf && mant == uint8(mantMask):
		return math.Float32frombits(s | f32QNaN)
	case exp == 0:
		return math.Float32frombits(s | subnormals[mant])
	}
	return math.Float32frombits(s | rebias[exp] | uint32(mant)<<mantShift)
}

// Widen converts f to a float32.
func Widen(f E4M3) float32 { return f.Float32() }

// Narrow converts a float32 to the nearest E4M3. See FromFloat32.
func Narrow(f float32) E4M3 { return FromFloat32(f) }

// IsNaN reports whether f is one of the two NaN encodings.
func (f E4M3) IsNaN() bool { return f&absMask == NaN }

// IsFinite reports whether f is not NaN. There are no infinities.
func (f E4M3) IsFinite() bool { return !f.IsNaN() }

// IsZero reports whether f is positive or negative zero.
func (f E4M3) IsZero() bool { return f&absMask == 0 }

// IsSubnormal reports whether f is non-zero with a zero exponent field.
func (f E4M3) IsSubnormal() bool { return f&expMask == 0 && f&mantMask != 0 }

// Signbit reports whether the sign bit is set, including for -0 and 0xff.
func (f E4M3) Signbit() bool { return f&signMask != 0 }

// Equal compares the values of a and b: NaN is not equal to anything and
// +0 equals -0.
func (a E4M3) Equal(b E4M3) bool {
	return a.Float32() == b.Float32()
}

// Less reports whether a < b. It is false if either is NaN.
func (a E4M3) Less(b E4M3) bool {
	return a.Float32() < b.Float32()
}

func (f E4M3) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}
