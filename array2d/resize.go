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

// Resize reshapes the array to w×h, reusing the current allocation when
// the new shape stays within the hysteresis band (see reuseAllocation).
// Element contents are NOT preserved across a resize; pass ClearData to
// zero the newly active region, which otherwise may hold stale elements
// from a reused allocation.
//
// offset shifts row 0 by that many elements into the flat backing store,
// leaving headroom at the front of the buffer. MultiArray2D uses this for
// slot-staggered layouts; plain callers pass 0. Negative offsets are
// treated as zero.
//
// Resizing a Referencing view is a contract violation (a view cannot take
// ownership; reconstruct it instead). Under the array2ddebug build tag it
// panics; in normal builds it detaches from the external memory and
// rebuilds the array as Owning.
func (a *Array2D[T]) Resize(w, h int, flags Flags, offset int) {
	assertTrue(!a.ref, "Resize: referencing array cannot take ownership")
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if offset < 0 {
		offset = 0
	}

	a.realloc(w, h, offset)

	if flags.has(ClearData) {
		clear(a.data[offset : offset+w*h])
	}
}

// realloc re-derives the row table and backing store for the new shape.
// The row table and the data buffer are judged independently: the table
// by height, the buffer by total element count.
func (a *Array2D[T]) realloc(w, h, offset int) {
	if a.rows != nil && !reuseAllocation(a.height, h) {
		a.rows = nil
	}
	if a.rows == nil || cap(a.rows) < h {
		a.rows = make([][]T, h)
	} else {
		a.rows = a.rows[:h]
	}

	if a.data != nil && !reuseAllocation(a.width*a.height, w*h) {
		a.data = nil
	}
	// The band is judged on element counts alone; a grown offset can still
	// outsize a reusable buffer, so the length check stays.
	if need := w*h + offset; a.data == nil || len(a.data) < need {
		a.data = make([]T, need)
	}

	a.width = w
	a.height = h
	a.off = offset
	a.ref = false

	for y := range a.rows {
		a.rows[y] = a.data[offset+y*w : offset+(y+1)*w]
	}
}
