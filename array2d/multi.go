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

// MultiArray2D is a fixed-count collection of same-shaped owning arrays
// that are constructed and resized as one unit, e.g. one plane per color
// channel. The slot count is fixed at construction.
//
// Slot i is resized with per-slot offset (i+1)*offset, staggering each
// slot's rows within its own buffer. Slots never share a buffer; the
// offset reserves headroom inside a slot, it does not interleave slots.
type MultiArray2D[T Element] struct {
	slots []Array2D[T]
}

// NewMulti returns a collection of n independent owning w×h arrays.
// Negative n is treated as zero. flags and offset are forwarded to the
// per-slot resize, with slot i receiving offset (i+1)*offset.
func NewMulti[T Element](n, w, h int, flags Flags, offset int) *MultiArray2D[T] {
	if n < 0 {
		n = 0
	}
	m := &MultiArray2D[T]{slots: make([]Array2D[T], n)}
	m.Resize(w, h, flags, offset)
	return m
}

// Resize reshapes every slot to w×h, slot i with offset (i+1)*offset.
// Per-slot semantics are exactly those of Array2D.Resize.
func (m *MultiArray2D[T]) Resize(w, h int, flags Flags, offset int) {
	for i := range m.slots {
		m.slots[i].Resize(w, h, flags, (i+1)*offset)
	}
}

// Slot returns the i-th array for mutation.
//
// i must be in [0, Count()); the index is not checked in normal builds.
func (m *MultiArray2D[T]) Slot(i int) *Array2D[T] {
	assertIndex(i, len(m.slots), "slot")
	return &m.slots[i]
}

// Count returns the number of slots.
func (m *MultiArray2D[T]) Count() int {
	return len(m.slots)
}

// Free releases every slot; the collection keeps its slot count and can
// be resized back into use.
func (m *MultiArray2D[T]) Free() {
	for i := range m.slots {
		m.slots[i].Free()
	}
}
