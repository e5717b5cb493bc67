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

// reuseAllocation decides whether a resize keeps the current allocation.
//
// The policy is a hysteresis band around the current logical size: reuse
// unless the request grows past it or shrinks below a quarter of it.
// Batch pipelines resize the same arrays to near-identical shapes frame
// after frame; the band turns those resizes into no-op reshapes while
// bounding retained memory to at most 4x the largest active size.
//
// The decision compares logical sizes, not slice capacities: a previous
// reuse may have left the allocation larger than current, and judging
// against current keeps the retained memory bound tight.
func reuseAllocation(current, requested int) bool {
	return requested <= current && 4*requested >= current
}
