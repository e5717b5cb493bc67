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

import "unsafe"

// vectorWidth is the width in bytes of the widest vector registers the
// CPU offers, detected at startup by the per-architecture init (see
// dispatch_amd64.go and dispatch_arm64.go). 16 bytes is the floor: every
// supported platform has at least 128-bit vectors.
var vectorWidth = 16

// VectorWidth returns the detected vector register width in bytes.
// FillParallel aligns worker range boundaries to this width so that a
// vectorized fill never has its blocks split across workers.
func VectorWidth() int {
	return vectorWidth
}

// laneCount returns how many elements of T fit in one vector register.
func laneCount[T Element]() int {
	var zero T
	return max(1, vectorWidth/int(unsafe.Sizeof(zero)))
}
