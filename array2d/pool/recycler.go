// Copyright 2025 go-array2d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pool recycles Array2D instances across processing passes.
//
// A batch pipeline typically needs a handful of scratch planes per frame,
// all of similar shape. Routing them through a Recycler instead of
// allocating per frame lets the hysteresis reuse policy of Array2D.Resize
// do its work: a recycled instance resized to a near-identical shape
// keeps its allocation, so steady-state frames allocate nothing.
package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/ajroetker/go-array2d/array2d"
)

// DefaultMaxIdle is the free-list bound used when NewRecycler is given a
// non-positive limit.
const DefaultMaxIdle = 16

// Recycler is a bounded free-list of retired Array2D instances. Get and
// Put are safe for concurrent use; the arrays themselves keep their
// single-owner contract.
type Recycler[T array2d.Element] struct {
	mu      sync.Mutex
	idle    *queue.Queue
	maxIdle int
}

// NewRecycler returns a Recycler keeping at most maxIdle retired arrays.
// maxIdle <= 0 means DefaultMaxIdle.
func NewRecycler[T array2d.Element](maxIdle int) *Recycler[T] {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Recycler[T]{
		idle:    queue.New(),
		maxIdle: maxIdle,
	}
}

// Get returns an owning w×h array, reshaping a retired instance when one
// is available and allocating otherwise. Pass ClearData to guarantee a
// zeroed array; a recycled instance holds stale elements from its
// previous life.
func (r *Recycler[T]) Get(w, h int, flags array2d.Flags) *array2d.Array2D[T] {
	r.mu.Lock()
	var a *array2d.Array2D[T]
	if r.idle.Length() > 0 {
		a = r.idle.Remove().(*array2d.Array2D[T])
	}
	r.mu.Unlock()

	if a == nil {
		return array2d.New[T](w, h, flags)
	}
	a.Resize(w, h, flags, 0)
	return a
}

// Put retires a for reuse. The caller must not touch a afterwards.
// When the free list is full the array is released instead of kept;
// referencing views are detached before being kept, since they own no
// allocation worth recycling. Put(nil) is a no-op.
func (r *Recycler[T]) Put(a *array2d.Array2D[T]) {
	if a == nil {
		return
	}
	if a.IsReference() {
		a.Free()
	}

	r.mu.Lock()
	if r.idle.Length() < r.maxIdle {
		r.idle.Add(a)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	a.Free()
}

// Idle returns the current number of retired arrays held.
func (r *Recycler[T]) Idle() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idle.Length()
}
