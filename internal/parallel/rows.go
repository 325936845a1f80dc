package parallel

import "runtime"

// bandsPerWorker is the number of row bands queued per worker.
const bandsPerWorker = 4

// Rows calls fn for consecutive row bands [y0, y1) covering [0, height).
// Bands never overlap, so fn may write the rows it is given without
// synchronization.
//
// workers == 1 runs a single band on the calling goroutine; workers <= 0
// uses GOMAXPROCS. Rows returns when every band is done.
func Rows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || height == 1 {
		fn(0, height)
		return
	}

	bands := Bands(height, workers*bandsPerWorker)

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	runAll(workers, work)
}

// Bands splits [0, height) into at most n contiguous, non-empty bands of
// nearly equal size.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))
	size := (height + n - 1) / n

	bands := make([][2]int, 0, n)
	for y := 0; y < height; y += size {
		bands = append(bands, [2]int{y, min(y+size, height)})
	}
	return bands
}
