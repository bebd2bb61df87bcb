package field

import (
	"runtime"
	"sync"
)

// forEachBand splits [0, n) into contiguous bands, one per worker, and runs
// fn on each band concurrently. It returns once every band is done.
func forEachBand(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}
	perBand := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += perBand {
		hi := lo + perBand
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
