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

// Element is a constraint for types that can be stored in an Array2D.
// It is limited to fixed-size numeric types so that the ClearData flag
// (bulk zero of the active region) is always well defined.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Flags controls construction and resize behavior. Flags values are
// combined with bitwise OR.
type Flags uint

const (
	// ClearData zero-fills the newly active region of the array.
	// Fresh allocations in Go are already zeroed; the flag matters when a
	// resize reuses a previous allocation that holds stale elements.
	ClearData Flags = 1 << iota

	// ByReference makes NewFromRows wrap the supplied row slices directly
	// instead of deep-copying them. The resulting array is a non-owning
	// view: it never allocates or releases the underlying memory, and the
	// external owner must keep that memory valid for the view's lifetime.
	ByReference
)

// has reports whether all bits of f are set in fl.
func (fl Flags) has(f Flags) bool {
	return fl&f == f
}
