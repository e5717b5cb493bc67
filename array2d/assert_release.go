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

//go:build !array2ddebug

package array2d

// Normal builds compile the assertions away entirely: indexing is on the
// hot path of pixel processing and a contract violation there is
// documented undefined behavior, not a guarded error.

func assertIndex(i, n int, what string) {}

func assertTrue(cond bool, msg string) {}
