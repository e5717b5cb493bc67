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

// Array2D is a resizable 2D grid of elements stored in row-major order.
//
// An Array2D is in one of three states:
//
//   - Empty: width or height is zero, no backing store.
//   - Owning: holds a contiguous backing store it allocated itself.
//   - Referencing: wraps row slices owned by external code (see
//     NewFromRows with ByReference); it never allocates or releases the
//     wrapped memory.
//
// The zero value is a valid empty array, ready to be resized. This makes
// Array2D convenient as a struct member that is shaped later.
//
// Array2D is not safe for concurrent mutation; see the package
// documentation for the concurrency contract.
type Array2D[T Element] struct {
	width, height int
	data          []T   // owning backing store; nil for Empty and Referencing
	rows          [][]T // length == height; row y is a width-length view
	off           int   // element offset of row 0 into data
	ref           bool  // Referencing state
}

// NewEmpty returns an empty array with no backing store. Equivalent to the
// zero value; resize before use.
func NewEmpty[T Element]() *Array2D[T] {
	return &Array2D[T]{}
}

// New returns an owning w×h array. Negative dimensions are treated as
// zero. The backing store of a fresh array is zeroed (a property of Go
// allocation), so ClearData is a no-op here; it matters on Resize, where
// a reused allocation holds stale elements.
//
// Allocation failure panics; there is no degraded mode.
func New[T Element](w, h int, flags Flags) *Array2D[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	a := &Array2D[T]{
		width:  w,
		height: h,
		data:   make([]T, w*h),
		rows:   make([][]T, h),
	}
	for y := range a.rows {
		a.rows[y] = a.data[y*w : (y+1)*w]
	}
	return a
}

// NewFromRows returns a w×h array built from the first h rows of src.
//
// By default the elements are deep-copied into a fresh owning backing
// store; mutating src afterwards is not observable through the result.
//
// With ByReference, the src row slices are stored directly (truncated to
// w elements) and no allocation or copy happens. The result is a
// Referencing view: mutations of the shared memory are visible on both
// sides, and releasing the view never releases the external memory. The
// external owner must keep the rows valid for the view's entire lifetime.
//
// src must provide at least h rows of at least w elements each; a shorter
// source is a contract violation (assertion under the array2ddebug build
// tag, slice-bounds panic otherwise).
func NewFromRows[T Element](w, h int, src [][]T, flags Flags) *Array2D[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	assertTrue(len(src) >= h, "NewFromRows: source has fewer rows than requested height")
	a := &Array2D[T]{width: w, height: h, rows: make([][]T, h)}

	if flags.has(ByReference) {
		a.ref = true
		for y := range a.rows {
			assertTrue(len(src[y]) >= w, "NewFromRows: source row shorter than requested width")
			a.rows[y] = src[y][:w]
		}
		return a
	}

	a.data = make([]T, w*h)
	for y := range a.rows {
		assertTrue(len(src[y]) >= w, "NewFromRows: source row shorter than requested width")
		a.rows[y] = a.data[y*w : (y+1)*w]
		copy(a.rows[y], src[y][:w])
	}
	return a
}

// Row returns the y-th row as a width-length slice.
//
// y must be in [0, Height()); the index is not checked in normal builds.
func (a *Array2D[T]) Row(y int) []T {
	assertIndex(y, a.height, "row")
	return a.rows[y]
}

// At returns the element at column x, row y.
//
// Coordinates are not checked in normal builds.
func (a *Array2D[T]) At(x, y int) T {
	assertIndex(x, a.width, "column")
	assertIndex(y, a.height, "row")
	return a.rows[y][x]
}

// Set stores v at column x, row y.
//
// Coordinates are not checked in normal builds.
func (a *Array2D[T]) Set(x, y int, v T) {
	assertIndex(x, a.width, "column")
	assertIndex(y, a.height, "row")
	a.rows[y][x] = v
}

// Rows returns the row table: one width-length slice per row. For an
// owning array every row aliases the flat backing store.
func (a *Array2D[T]) Rows() [][]T {
	return a.rows
}

// Flat returns the flat backing store, including any offset headroom
// requested at Resize time. Element (x, y) lives at index
// Offset()+y*Width()+x.
//
// Flat returns nil for Referencing and Empty arrays: only an owning array
// has a contiguous store of its own.
func (a *Array2D[T]) Flat() []T {
	return a.data
}

// Width returns the number of columns.
func (a *Array2D[T]) Width() int {
	return a.width
}

// Height returns the number of rows.
func (a *Array2D[T]) Height() int {
	return a.height
}

// Offset returns the element offset of row 0 into the flat backing store,
// as requested by the last Resize. Zero for freshly constructed arrays.
func (a *Array2D[T]) Offset() int {
	return a.off
}

// Valid reports whether the array holds at least one element, i.e. both
// dimensions are positive.
func (a *Array2D[T]) Valid() bool {
	return a.width > 0 && a.height > 0
}

// IsReference reports whether the array is a Referencing view over
// externally owned memory.
func (a *Array2D[T]) IsReference() bool {
	return a.ref
}

// Free releases the backing store (a no-op for the memory behind a
// Referencing view) and resets the array to the Empty state. Free is
// idempotent and safe on an already-empty array.
func (a *Array2D[T]) Free() {
	a.data = nil
	a.rows = nil
	a.width = 0
	a.height = 0
	a.off = 0
	a.ref = false
}

// Clone returns an owning deep copy with the same shape and elements.
// Cloning a Referencing view detaches from the external memory. The clone
// is compact: any offset headroom of the source is not carried over.
func (a *Array2D[T]) Clone() *Array2D[T] {
	c := New[T](a.width, a.height, 0)
	for y, row := range a.rows {
		copy(c.rows[y], row)
	}
	return c
}

// CopyFrom reshapes a to match src and copies every element. The receiver
// keeps its own backing store where the reuse policy allows.
func (a *Array2D[T]) CopyFrom(src *Array2D[T]) {
	a.Resize(src.width, src.height, 0, 0)
	for y, row := range src.rows {
		copy(a.rows[y], row)
	}
}
