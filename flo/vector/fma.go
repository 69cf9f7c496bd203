package vector

import (
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/pfcm/minifloat/flo"
)

// batch is how many elements each goroutine handles in the concurrent
// implementations.
const batch = 4096

// FMA does a vector fused multiply-add with flo.E4M3s. It takes 4 vector
// arguments a, b, c and out, and computes out[i] = a[i]*b[i]+c[i] for each i
// up to n, rounding each result once.
func FMA(a, b, c, out []flo.E4M3, n int) {
	if n < 16*batch {
		fmaSimple(a, b, c, out, n)
		return
	}
	fmaGroup(a, b, c, out, n)
}

func fmaSimple(a, b, c, out []flo.E4M3, n int) {
	a, b, c, out = a[:n], b[:n], c[:n], out[:n]
	for i := range out {
		out[i] = flo.FMA(a[i], b[i], c[i])
	}
}

func fmaUnsafe(a, b, c, out []flo.E4M3, n int) {
	if n == 0 {
		return
	}
	_, _, _, _ = a[n-1], b[n-1], c[n-1], out[n-1]
	ap := unsafe.Pointer(&a[0])
	bp := unsafe.Pointer(&b[0])
	cp := unsafe.Pointer(&c[0])
	outp := unsafe.Pointer(&out[0])
	for i := 0; i < n; i++ {
		x := (*flo.E4M3)(unsafe.Add(ap, i))
		y := (*flo.E4M3)(unsafe.Add(bp, i))
		z := (*flo.E4M3)(unsafe.Add(cp, i))
		o := (*flo.E4M3)(unsafe.Add(outp, i))
		*o = flo.FMA(*x, *y, *z)
	}
}

func fmaWG(a, b, c, out []flo.E4M3, n int) {
	if n < batch {
		fmaSimple(a, b, c, out, n)
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < n; i += batch {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			num := min(n-i, batch)
			fmaSimple(a[i:], b[i:], c[i:], out[i:], num)
		}()
	}
	wg.Wait()
}

// fmaGroup is like fmaWG but never runs more goroutines than there are Ps,
// which keeps it from falling over on very large inputs.
func fmaGroup(a, b, c, out []flo.E4M3, n int) {
	if n < batch {
		fmaSimple(a, b, c, out, n)
		return
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i += batch {
		i := i
		g.Go(func() error {
			fmaSimple(a[i:], b[i:], c[i:], out[i:], min(n-i, batch))
			return nil
		})
	}
	// Nothing in here returns an error.
	_ = g.Wait()
}
