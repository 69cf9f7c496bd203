package flo

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

const (
	f32Inf       uint32 = 0x7f800000
	f32Max       uint32 = 0x43e00000 // 448
	f32MinNormal uint32 = (1 - bias + f32Bias) << 23

	f64Bias             = 1023
	f64MantShift        = 52 - mantBits
	f64SignMask  uint64 = 1 << 63
	f64Inf       uint64 = 0x7ff0000000000000
	f64Max       uint64 = 0x407c000000000000 // 448
	f64MinNormal uint64 = (1 - bias + f64Bias) << 52
)

// Adding one of these to a value below SmallestNormal leaves the sum's last
// significand bit worth 2^-9, the spacing of the subnormals, so the FPU does
// the rounding for us.
const (
	denorm32 float32 = 1 << (23 - (bias - 1 + mantBits))
	denorm64 float64 = 1 << (52 - (bias - 1 + mantBits))
)

// FromFloat32 converts a float32 to the nearest E4M3, rounding ties to even.
// It saturates: anything with a magnitude of 448 or more, including the
// infinities, becomes ±448. NaNs become NaN with the same sign. Values too
// small for the subnormals become zero of the same sign.
func FromFloat32(f float32) E4M3 {
	b := math.Float32bits(f)
	sign := E4M3(b>>24) & signMask
	b &^= f32SignMask
	switch {
	case b > f32Inf:
		return sign | NaN
	case b >= f32Max:
		return sign | MaxE4M3
	case b < f32MinNormal:
		r := math.Float32bits(math.Float32frombits(b)+denorm32) - math.Float32bits(denorm32)
		return sign | E4M3(r)
	}
	// Round the significand down to 3 bits. A carry out of the significand
	// rolls into the exponent, which is what we want.
	b += 1<<(mantShift-1) - 1 + ((b >> mantShift) & 1)
	return sign | E4M3((b>>mantShift)-(f32Bias-bias)<<mantBits)
}

// FromFloat64 is FromFloat32 for float64s. It rounds once, directly to E4M3,
// rather than going through float32.
func FromFloat64(f float64) E4M3 {
	b := math.Float64bits(f)
	sign := E4M3(b>>56) & signMask
	b &^= f64SignMask
	switch {
	case b > f64Inf:
		return sign | NaN
	case b >= f64Max:
		return sign | MaxE4M3
	case b < f64MinNormal:
		r := math.Float64bits(math.Float64frombits(b)+denorm64) - math.Float64bits(denorm64)
		return sign | E4M3(r)
	}
	b += 1<<(f64MantShift-1) - 1 + ((b >> f64MantShift) & 1)
	return sign | E4M3((b>>f64MantShift)-(f64Bias-bias)<<mantBits)
}

// E4M3ToFloat converts f to any float type.
func E4M3ToFloat[T constraints.Float](f E4M3) T {
	return T(f.Float32())
}

// E4M3FromFloat converts a float of any type into the nearest E4M3, with the
// same rules as FromFloat32.
func E4M3FromFloat[T constraints.Float](f T) E4M3 {
	// float32 -> float64 is exact, so this only rounds once either way.
	return FromFloat64(float64(f))
}

// Precision describes what happens to a value when it is narrowed to E4M3.
type Precision int

const (
	// PrecisionExact means the value survives the round trip, this
	// includes zeros and NaNs.
	PrecisionExact Precision = iota
	// PrecisionInexact means the value is in range but rounds.
	PrecisionInexact
	// PrecisionUnderflow means a non-zero value rounds to zero.
	PrecisionUnderflow
	// PrecisionOverflow means the magnitude is above 448 and saturates.
	PrecisionOverflow
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionInexact:
		return "inexact"
	case PrecisionUnderflow:
		return "underflow"
	case PrecisionOverflow:
		return "overflow"
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

// PrecisionFromFloat32 reports how FromFloat32(f) would treat f, without
// callers needing to compare the result themselves.
func PrecisionFromFloat32(f float32) Precision {
	if math.IsNaN(float64(f)) {
		return PrecisionExact
	}
	a := math.Abs(float64(f))
	if a > 448 {
		return PrecisionOverflow
	}
	e := FromFloat32(f)
	switch {
	case e.Float32() == f:
		return PrecisionExact
	case e.IsZero():
		return PrecisionUnderflow
	}
	return PrecisionInexact
}
