package flo

// Neg flips the sign bit of f and nothing else, so it is exact for every
// encoding including NaN and zero.
func Neg(f E4M3) E4M3 { return f ^ signMask }

// Abs clears the sign bit of f.
func Abs(f E4M3) E4M3 { return f & absMask }

// Add returns a+b, computed in float32 and rounded to the nearest E4M3.
func Add(a, b E4M3) E4M3 { return FromFloat32(a.Float32() + b.Float32()) }

// Sub returns a-b, computed in float32 and rounded to the nearest E4M3.
func Sub(a, b E4M3) E4M3 { return FromFloat32(a.Float32() - b.Float32()) }

// Mul returns a*b, computed in float32 and rounded to the nearest E4M3.
func Mul(a, b E4M3) E4M3 { return FromFloat32(a.Float32() * b.Float32()) }

// Div returns a/b, computed in float32 and rounded to the nearest E4M3.
// Division by zero gives an infinite float32, which saturates to ±448; 0/0
// gives NaN.
func Div(a, b E4M3) E4M3 { return FromFloat32(a.Float32() / b.Float32()) }

// FMA returns a*b+c. The product of two E4M3s always fits in a float32
// exactly, so the only roundings are the float32 addition and the final
// narrowing; the product itself is never rounded to E4M3.
func FMA(a, b, c E4M3) E4M3 {
	return FromFloat32(a.Float32()*b.Float32() + c.Float32())
}

// The methods below mirror the functions so calls can be chained, e.g.
// a.Mul(b).Add(c).

func (a E4M3) Neg() E4M3          { return Neg(a) }
func (a E4M3) Abs() E4M3          { return Abs(a) }
func (a E4M3) Add(b E4M3) E4M3    { return Add(a, b) }
func (a E4M3) Sub(b E4M3) E4M3    { return Sub(a, b) }
func (a E4M3) Mul(b E4M3) E4M3    { return Mul(a, b) }
func (a E4M3) Div(b E4M3) E4M3    { return Div(a, b) }
func (a E4M3) FMA(b, c E4M3) E4M3 { return FMA(a, b, c) }
