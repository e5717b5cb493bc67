// Copyright 2025 The go-array2d Authors. SPDX-License-Identifier: Apache-2.0

package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-array2d/array2d"
)

func TestRecycler_ReusesInstanceAndAllocation(t *testing.T) {
	r := NewRecycler[float32](4)

	a := r.Get(100, 100, 0)
	flat := a.Flat()
	r.Put(a)

	// A near-identical shape must come back as the same instance with the
	// same backing allocation (hysteresis reuse).
	b := r.Get(100, 90, 0)
	require.Same(t, a, b)
	require.Same(t, &flat[0], &b.Flat()[0])
}

func TestRecycler_GetAllocatesWhenEmpty(t *testing.T) {
	r := NewRecycler[float32](4)

	a := r.Get(10, 10, 0)
	require.True(t, a.Valid())
	require.Equal(t, 10, a.Width())
	require.Equal(t, 0, r.Idle())
}

func TestRecycler_ClearDataOnRecycledInstance(t *testing.T) {
	r := NewRecycler[int32](4)

	a := r.Get(16, 16, 0)
	a.Fill(9)
	r.Put(a)

	b := r.Get(16, 16, array2d.ClearData)
	for y := range 16 {
		for x := range 16 {
			require.Zero(t, b.At(x, y), "stale element at (%d,%d)", x, y)
		}
	}
}

func TestRecycler_BoundsFreeList(t *testing.T) {
	r := NewRecycler[uint8](2)

	for range 5 {
		r.Put(array2d.New[uint8](4, 4, 0))
	}
	require.Equal(t, 2, r.Idle())
}

func TestRecycler_DefaultBound(t *testing.T) {
	r := NewRecycler[uint8](0)
	for range DefaultMaxIdle + 3 {
		r.Put(array2d.New[uint8](2, 2, 0))
	}
	require.Equal(t, DefaultMaxIdle, r.Idle())
}

func TestRecycler_PutNil(t *testing.T) {
	r := NewRecycler[float64](2)
	r.Put(nil)
	require.Equal(t, 0, r.Idle())
}

func TestRecycler_DetachesReferencingViews(t *testing.T) {
	src := [][]float32{{1, 2}, {3, 4}}
	view := array2d.NewFromRows(2, 2, src, array2d.ByReference)

	r := NewRecycler[float32](2)
	r.Put(view)

	got := r.Get(2, 2, 0)
	require.Same(t, view, got)
	require.False(t, got.IsReference())

	// The recycled instance owns fresh storage; the external rows stay
	// untouched.
	got.Fill(0)
	require.Equal(t, float32(1), src[0][0])
}

func TestRecycler_ConcurrentGetPut(t *testing.T) {
	r := NewRecycler[int64](8)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				a := r.Get(32, 32, 0)
				a.Set(0, 0, 1)
				r.Put(a)
			}
		}()
	}
	wg.Wait()
}
