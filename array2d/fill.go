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

package array2d

import "github.com/ajroetker/go-array2d/array2d/workerpool"

// MinParallelFillElems is the minimum element count before FillParallel
// dispatches to the pool. A fill is memory-bound, so the fork-join
// overhead only pays for itself on large buffers; below this the
// sequential loop wins.
const MinParallelFillElems = 32768

// Fill assigns v to every element of the active region.
func (a *Array2D[T]) Fill(v T) {
	if a.data != nil && !a.ref {
		flat := a.active()
		for i := range flat {
			flat[i] = v
		}
		return
	}
	for _, row := range a.rows {
		for i := range row {
			row[i] = v
		}
	}
}

// FillParallel assigns v to every element, splitting the work across the
// pool's workers. All writes complete before the call returns. A nil pool
// or an array below MinParallelFillElems falls back to Fill.
//
// The result is identical to Fill; only the write order differs, and no
// two workers touch the same element.
func (a *Array2D[T]) FillParallel(v T, pool *workerpool.Pool) {
	n := a.width * a.height
	if pool == nil || n < MinParallelFillElems {
		a.Fill(v)
		return
	}

	if a.ref {
		// No contiguous store to split; hand out whole rows instead.
		pool.ParallelFor(a.height, func(start, end int) {
			for y := start; y < end; y++ {
				row := a.rows[y]
				for i := range row {
					row[i] = v
				}
			}
		})
		return
	}

	flat := a.active()
	pool.ParallelForAligned(n, laneCount[T](), func(start, end int) {
		chunk := flat[start:end]
		for i := range chunk {
			chunk[i] = v
		}
	})
}

// active returns the flat view of the active w×h region, skipping offset
// headroom. Owning arrays only.
func (a *Array2D[T]) active() []T {
	return a.data[a.off : a.off+a.width*a.height]
}
