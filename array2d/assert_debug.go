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

//go:build array2ddebug

package array2d

import "fmt"

// Debug builds turn contract violations into panics that name the
// offending index. Enable with: go build -tags array2ddebug

func assertIndex(i, n int, what string) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("array2d: %s index %d out of range [0,%d)", what, i, n))
	}
}

func assertTrue(cond bool, msg string) {
	if !cond {
		panic("array2d: " + msg)
	}
}
