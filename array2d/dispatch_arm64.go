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

//go:build arm64

package array2d

import "golang.org/x/sys/cpu"

func init() {
	// NEON is 128-bit everywhere on arm64. SVE vectors are at least that
	// wide; 256-bit is the common implementation in server parts, so use
	// it as the alignment granule when SVE is present.
	if cpu.ARM64.HasSVE {
		vectorWidth = 32
	}
}
