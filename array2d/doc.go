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

// Package array2d provides resizable, row-major 2D arrays for
// pixel-buffer processing.
//
// The core type is Array2D[T], a contiguous width×height grid of numeric
// elements with O(1) row access. An Array2D either owns its backing store
// or wraps externally owned row slices as a zero-copy view. Resizing
// reuses the existing allocation when the new shape stays within a
// hysteresis band of the old one, which amortizes the repeated
// resize-to-similar-size calls common in batch image pipelines.
//
// Basic usage:
//
//	a := array2d.New[float32](640, 480, 0)
//	a.Row(3)[5] = 1.0
//	v := a.At(5, 3)
//
//	// Resize in place; a nearby shape reuses the allocation.
//	a.Resize(640, 360, array2d.ClearData, 0)
//
// Wrapping external rows without copying:
//
//	view := array2d.NewFromRows(w, h, rows, array2d.ByReference)
//
// MultiArray2D[T] bundles a fixed number of same-shaped arrays that are
// constructed and resized together, e.g. one plane per color channel.
//
// # Bounds checking
//
// Row, At, Set and Slot do not bounds-check their indices in normal
// builds; out-of-range access is undefined behavior (in practice a
// slice-bounds panic or a read of the wrong row). Building with the
// array2ddebug tag turns violations into panics that report the offending
// index.
//
// # Concurrency
//
// Instances have a single logical owner and perform no internal locking.
// The only concurrency-aware operation is FillParallel, a fork-join fill
// over the flat element range that completes before returning.
package array2d
