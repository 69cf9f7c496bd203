package interp

import (
	"testing"

	"github.com/pfcm/minifloat/flo"
)

func TestL(t *testing.T) {
	f := func(f float32) flo.E4M3 {
		return flo.FromFloat32(f)
	}
	for _, c := range []struct {
		a, b, c flo.E4M3
		out     flo.E4M3
	}{{
		a:   f(0.5),
		b:   f(0),
		c:   f(1.0),
		out: f(0),
	}, {
		a:   f(0.5),
		b:   f(-0.5),
		c:   f(0.5),
		out: f(0),
	}, {
		a:   f(2),
		b:   f(4),
		c:   f(0.25),
		out: f(2.5),
	}, {
		// 1 + 0.375*(1.125-1) = 1.046875, rounds back down to 1.
		a:   f(1),
		b:   f(1.125),
		c:   f(0.375),
		out: f(1),
	}, {
		a:   f(1),
		b:   f(2),
		c:   f(2),
		out: f(3),
	}, {
		a:   f(-448),
		b:   f(448),
		c:   f(0.5),
		out: f(0),
	}} {
		got := L(c.a, c.b, c.c)
		if got != c.out {
			t.Errorf("L(%v, %v, %v) = %v, want: %v", c.a, c.b, c.c, got, c.out)
		}
	}
}

func TestLNaN(t *testing.T) {
	if got := L(flo.One, flo.NaN, flo.One); !got.IsNaN() {
		t.Errorf("L(1, NaN, 1) = %v, want NaN", got)
	}
}

func TestSlice(t *testing.T) {
	a := []flo.E4M3{flo.FromFloat32(0), flo.FromFloat32(8)}
	b := []flo.E4M3{flo.FromFloat32(4), flo.FromFloat32(0)}
	out := make([]flo.E4M3, 2)
	Slice(a, b, flo.FromFloat32(0.5), out)
	if out[0] != flo.FromFloat32(2) || out[1] != flo.FromFloat32(4) {
		t.Errorf("Slice = %v, want: [2 4]", out)
	}
}
