// Copyright 2025 The go-array2d Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor_CoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 10000
	counts := make([]int32, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestParallelFor_ZeroAndNegative(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelFor(-5, func(start, end int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestParallelForAligned_Boundaries(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n, granule = 1000, 16
	var mu sync.Mutex
	var starts []int

	pool.ParallelForAligned(n, granule, func(start, end int) {
		mu.Lock()
		starts = append(starts, start)
		mu.Unlock()
	})

	for _, s := range starts {
		if s%granule != 0 {
			t.Errorf("range start %d not aligned to %d", s, granule)
		}
	}
}

func TestParallelForAligned_CoversRange(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n = 4097 // deliberately not a granule multiple
	counts := make([]int32, n)
	pool.ParallelForAligned(n, 64, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestParallelForBatched_CoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 1003
	counts := make([]int32, n)
	pool.ParallelForBatched(n, 7, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // idempotent

	var total int64
	pool.ParallelFor(100, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != 100 {
		t.Errorf("total = %d, want 100", total)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Many operations against the same pool must not deadlock or leak.
	for range 100 {
		var total int64
		pool.ParallelFor(512, func(start, end int) {
			atomic.AddInt64(&total, int64(end-start))
		})
		if total != 512 {
			t.Fatalf("total = %d, want 512", total)
		}
	}
}
