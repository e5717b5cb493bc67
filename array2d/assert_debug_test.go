// Copyright 2025 The go-array2d Authors. SPDX-License-Identifier: Apache-2.0

//go:build array2ddebug

package array2d

import "testing"

// These tests only exist under the array2ddebug tag, where contract
// violations are promoted to panics:
//
//	go test -tags array2ddebug ./...

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestDebugAssertions(t *testing.T) {
	a := New[float32](4, 3, 0)

	mustPanic(t, "row out of range", func() { a.Row(3) })
	mustPanic(t, "negative row", func() { a.Row(-1) })
	mustPanic(t, "column out of range", func() { a.At(4, 0) })
	mustPanic(t, "set out of range", func() { a.Set(0, 3, 1) })

	m := NewMulti[float32](2, 4, 3, 0, 0)
	mustPanic(t, "slot out of range", func() { m.Slot(2) })

	view := NewFromRows(2, 2, [][]float32{{1, 2}, {3, 4}}, ByReference)
	mustPanic(t, "resize of referencing view", func() { view.Resize(2, 2, 0, 0) })

	mustPanic(t, "short source", func() { NewFromRows(2, 3, [][]float32{{1, 2}}, 0) })
}
