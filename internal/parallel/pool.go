// Package parallel runs independent row bands of a raster on a pool of
// goroutines.
package parallel

import "sync"

// stealingPool runs a fixed batch of functions on per-worker queues.
//
// The batch is queued round-robin before any worker starts. A worker drains
// its own queue and then steals from the others, so bands whose cost
// differs (early exits in bounded searches) still spread evenly.
type stealingPool struct {
	queues []chan func()
}

// runAll executes every function in work on at most workers goroutines and
// returns when all of them have finished.
func runAll(workers int, work []func()) {
	if len(work) == 0 {
		return
	}
	workers = max(1, min(workers, len(work)))

	p := &stealingPool{queues: make([]chan func(), workers)}
	for i := range p.queues {
		p.queues[i] = make(chan func(), (len(work)+workers-1)/workers)
	}
	for i, fn := range work {
		p.queues[i%workers] <- fn
	}
	for _, q := range p.queues {
		close(q)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for id := range workers {
		go func() {
			defer wg.Done()
			p.worker(id)
		}()
	}
	wg.Wait()
}

// worker drains its own queue, then the queues of the other workers.
func (p *stealingPool) worker(id int) {
	n := len(p.queues)
	for i := range n {
		for fn := range p.queues[(id+i)%n] {
			fn()
		}
	}
}
