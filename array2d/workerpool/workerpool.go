// Copyright 2025 The go-array2d Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join loops over flat index ranges. A Pool is created once and
// shared across many operations, so the per-operation cost is a handful
// of channel sends instead of goroutine spawns.
//
// Pixel pipelines invoke bulk operations (fills, per-row transforms) many
// times per frame; spawning goroutines per call would dominate the cost
// of the memory-bound work itself.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, plane := range planes {
//	    plane.FillParallel(0, pool)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task is one unit of work plus the barrier it reports completion to.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned
// immediately. workers <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		// Buffered so a dispatching caller never blocks on a busy worker.
		tasks: make(chan task, workers*2),
	}
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after pending work completes. Close is
// idempotent; loops dispatched after Close run sequentially on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all ranges complete; fn receives half-open
// [start, end) bounds.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with range boundaries rounded up to a
// multiple of granule (the final range absorbs the remainder). Callers
// use this to keep per-worker ranges aligned to the platform vector
// width, so adjacent workers never split a vector-sized block.
func (p *Pool) ParallelForAligned(n, granule int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if granule < 1 {
		granule = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + p.workers - 1) / p.workers
	chunk = (chunk + granule - 1) / granule * granule
	workers := (n + chunk - 1) / chunk
	if workers == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForBatched executes fn over [0, n) in batch-sized ranges handed
// out by atomic work stealing. Better load balancing than ParallelFor
// when per-index cost varies. Blocks until all batches complete.
func (p *Pool) ParallelForBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batch < 1 {
		batch = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	batches := (n + batch - 1) / batch
	workers := min(p.workers, batches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					b := int(next.Add(1)) - 1
					start := b * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
