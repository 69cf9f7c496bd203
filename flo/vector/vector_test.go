package vector

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pfcm/minifloat/flo"
)

var sizes = []int{0, 1, 3, 53, 127, 1009, 4096, 4097, 100007}

var fmas = []struct {
	name string
	f    func(a, b, c, out []flo.E4M3, n int)
}{
	{"simple", fmaSimple},
	{"unsafe", fmaUnsafe},
	{"____wg", fmaWG},
	{"_group", fmaGroup},
	{"___FMA", FMA},
}

func BenchmarkFMA(b *testing.B) {
	for _, size := range sizes[1:] {
		b.Run(fmt.Sprintf("%6d", size), func(b *testing.B) {
			var (
				x   = randE4M3s(size)
				y   = randE4M3s(size)
				z   = randE4M3s(size)
				out = randE4M3s(size)
			)
			for _, f := range fmas {
				b.Run(f.name, func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						f.f(x, y, z, out, size)
					}
				})
			}
		})
	}
}

func TestFMA(t *testing.T) {
	for _, size := range append(sizes, 16*batch+5) {
		for _, f := range fmas {
			if f.name == "simple" {
				continue
			}
			t.Run(fmt.Sprintf("%s/%d", f.name, size), func(t *testing.T) {
				var (
					a    = newTestDatum("a", randE4M3s, size)
					b    = newTestDatum("b", randE4M3s, size)
					c    = newTestDatum("c", randE4M3s, size)
					out  = newTestDatum("out", randE4M3s, size)
					want = make([]flo.E4M3, size)
				)
				fmaSimple(a.get(), b.get(), c.get(), want, size)

				f.f(a.get(), b.get(), c.get(), out.get(), size)

				a.check(t, a.orig)
				b.check(t, b.orig)
				c.check(t, c.orig)
				out.check(t, want)
			})
		}
	}
}

func TestFMAValues(t *testing.T) {
	e := func(fs ...float32) []flo.E4M3 {
		out := make([]flo.E4M3, len(fs))
		Narrow(out, fs)
		return out
	}
	a := e(1, 2, 1.125, 448)
	b := e(1, 3, 1.125, 2)
	c := e(1, 1, -1.25, 0)
	got := make([]flo.E4M3, 4)
	FMA(a, b, c, got, 4)
	if diff := cmp.Diff(got, e(2, 7, 1.0/64, 448)); diff != "" {
		t.Errorf("FMA: unexpected diff (-got,+want):\n%v", diff)
	}
}

func TestBinary(t *testing.T) {
	e := func(fs ...float32) []flo.E4M3 {
		out := make([]flo.E4M3, len(fs))
		Narrow(out, fs)
		return out
	}
	a := e(1, 2, -3, 0.5, 0)
	b := e(1, 0.5, 2, 0.25, 1)
	for _, c := range []struct {
		name string
		f    func(a, b, out []flo.E4M3, n int)
		want []flo.E4M3
	}{
		{"Add", Add, e(2, 2.5, -1, 0.75, 1)},
		{"Sub", Sub, e(0, 1.5, -5, 0.25, -1)},
		{"Mul", Mul, e(1, 1, -6, 0.125, 0)},
		{"Div", Div, e(1, 4, -1.5, 2, 0)},
	} {
		got := make([]flo.E4M3, len(a))
		c.f(a, b, got, len(a))
		if diff := cmp.Diff(got, c.want); diff != "" {
			t.Errorf("%s: unexpected diff (-got,+want):\n%v", c.name, diff)
		}
	}
}

func TestBinaryShort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add with a short output did not panic")
		}
	}()
	Add(make([]flo.E4M3, 4), make([]flo.E4M3, 4), make([]flo.E4M3, 3), 4)
}

func TestWidenNarrow(t *testing.T) {
	all := make([]flo.E4M3, 256)
	for i := range all {
		all[i] = flo.E4M3(i)
	}
	f := make([]float32, len(all))
	Widen(f, all)
	back := make([]flo.E4M3, len(all))
	Narrow(back, f)
	for i := range all {
		if all[i].IsNaN() {
			if !back[i].IsNaN() {
				t.Errorf("%02x: round trip = %02x, want NaN", i, uint8(back[i]))
			}
			continue
		}
		if back[i] != all[i] {
			t.Errorf("%02x: round trip = %02x", i, uint8(back[i]))
		}
	}
}

func TestDot(t *testing.T) {
	e := func(fs ...float32) []flo.E4M3 {
		out := make([]flo.E4M3, len(fs))
		Narrow(out, fs)
		return out
	}
	for _, c := range []struct {
		a, b []flo.E4M3
		want float32
	}{
		{nil, nil, 0},
		{e(1, 2, 3), e(4, 5, 6), 32},
		{e(1.125, -1), e(1.125, 1.25), 0.015625},
		// way beyond 448, accumulating in float32 does not saturate.
		{e(448, 448), e(448, 448), 2 * 448 * 448},
	} {
		if got := Dot(c.a, c.b); got != c.want {
			t.Errorf("Dot(%v, %v) = %v, want: %v", c.a, c.b, got, c.want)
		}
	}
}

const pad = 13

type testDatum[T comparable] struct {
	name      string
	b         []T
	orig      []T
	pre, post []T
}

func newTestDatum[T comparable](name string, init func(int) []T, size int) testDatum[T] {
	b := init(size + pad*2)
	pre, post := make([]T, pad), make([]T, pad)
	copy(pre, b)
	copy(post, b[size+pad:])
	orig := make([]T, size)
	copy(orig, b[pad:])
	return testDatum[T]{name: name, b: b, orig: orig, pre: pre, post: post}
}

func (t testDatum[T]) get() []T {
	return t.b[pad : len(t.b)-pad]
}

func (td testDatum[T]) check(t *testing.T, want []T) {
	t.Helper()
	if diff := cmp.Diff(td.b[pad:len(td.b)-pad], want); diff != "" {
		t.Errorf("arg %q: unexpected diff (-got,+want):\n%v", td.name, diff)
	}
	if diff := cmp.Diff(td.b[:pad], td.pre); diff != "" {
		t.Errorf("arg %q: diff before slice (-got,+want):\n%v", td.name, diff)
	}
	if diff := cmp.Diff(td.b[len(td.b)-pad:], td.post); diff != "" {
		t.Errorf("arg %q: diff after slice (-got,+want):\n%v", td.name, diff)
	}
}

func randE4M3s(n int) []flo.E4M3 {
	b := make([]byte, n)
	rand.Read(b)
	out := make([]flo.E4M3, n)
	for i := range b {
		out[i] = flo.E4M3(b[i])
	}
	return out
}
