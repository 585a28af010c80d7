// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

func TestNew_Fresh(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 4, 17, 1024} {
		b := ring.New[int](capacity)
		assert.Equal(t, capacity, b.Len())
		assert.Equal(t, 0, b.WriteIdx())
		assert.Equal(t, 0, b.ReadIdx())
		assert.Equal(t, 0, b.NumValuesInBuffer())
	}
}

func TestNew_NonPositiveCapacityPanics(t *testing.T) {
	for _, capacity := range []int{0, -1, -1024} {
		assert.PanicsWithValue(t, "ring: capacity must be positive", func() {
			ring.New[int](capacity)
		}, "capacity %d", capacity)
	}
}

func TestBuffer_FIFORoundTrip(t *testing.T) {
	const capacity = 8
	for n := 0; n <= capacity; n++ {
		b := ring.New[int](capacity)
		for i := 0; i < n; i++ {
			b.PutPostInc(i * 3)
		}
		for i := 0; i < n; i++ {
			require.Equal(t, i*3, b.GetPostInc(), "n=%d i=%d", n, i)
		}
	}
}

func TestBuffer_Wraparound(t *testing.T) {
	b := ring.New[string](5)
	for i := 0; i < 5; i++ {
		require.Equal(t, i, b.WriteIdx())
		b.PutPostInc("x")
	}
	assert.Equal(t, 0, b.WriteIdx())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, b.ReadIdx())
		b.GetPostInc()
	}
	assert.Equal(t, 0, b.ReadIdx())
}

func TestBuffer_PutLastWriteWins(t *testing.T) {
	b := ring.New[int](4)
	b.SetWriteIdx(2)
	b.Put(7)
	b.Put(9)
	assert.Equal(t, 2, b.WriteIdx())
	b.SetReadIdx(2)
	assert.Equal(t, 9, b.Get())
}

func TestBuffer_GetIsIdempotent(t *testing.T) {
	b := ring.New[int](2)
	b.PutPostInc(42)
	assert.Equal(t, 42, b.Get())
	assert.Equal(t, 42, b.Get())
	assert.Equal(t, 0, b.ReadIdx())
}

func TestBuffer_NumValuesInBuffer(t *testing.T) {
	b := ring.New[int](4)
	for i := 0; i < 3; i++ {
		b.PutPostInc(i)
	}
	assert.Equal(t, 3, b.NumValuesInBuffer())

	// A full buffer reads the same as an empty one.
	b.PutPostInc(3)
	assert.Equal(t, 0, b.NumValuesInBuffer())

	// Read cursor ahead of write cursor gives a negative difference.
	b.SetWriteIdx(1)
	b.SetReadIdx(3)
	assert.Equal(t, -2, b.NumValuesInBuffer())
}

func TestBuffer_SetCursors(t *testing.T) {
	b := ring.New[int](6)
	for k := 0; k < 6; k++ {
		b.SetWriteIdx(k)
		b.SetReadIdx(k)
		require.Equal(t, k, b.WriteIdx())
		require.Equal(t, k, b.ReadIdx())
		b.Put(100 + k)
		require.Equal(t, 100+k, b.Get())
	}
	// Every slot was written exactly at its index.
	b.SetReadIdx(0)
	for k := 0; k < 6; k++ {
		require.Equal(t, 100+k, b.GetPostInc())
	}
}

func TestBuffer_Reset(t *testing.T) {
	b := ring.New[int](3)
	b.PutPostInc(5)
	b.PutPostInc(6)
	b.GetPostInc()
	b.Reset()

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 0, b.WriteIdx())
	assert.Equal(t, 0, b.ReadIdx())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, b.GetPostInc(), "slot %d survived reset", i)
	}
}

func TestBuffer_ReadPastWriteIsStale(t *testing.T) {
	b := ring.New[int](3)
	b.PutPostInc(1)
	assert.Equal(t, 1, b.GetPostInc())
	// Nothing new was written; the read is not refused.
	assert.Equal(t, 0, b.GetPostInc())
	assert.Equal(t, 2, b.ReadIdx())
}

func TestBuffer_OutOfRangeCursorFaultsOnAccess(t *testing.T) {
	if ringDebug {
		t.Skip("setter asserts under ringdebug")
	}
	b := ring.New[int](4)
	b.SetReadIdx(4)
	assert.Equal(t, 4, b.ReadIdx())
	assert.Panics(t, func() { b.Get() })

	b.SetWriteIdx(-1)
	assert.Equal(t, -1, b.WriteIdx())
	assert.Panics(t, func() { b.Put(1) })
}

func TestBuffer_ScenarioFullCycle(t *testing.T) {
	b := ring.New[int](4)
	for _, v := range []int{10, 20, 30, 40} {
		b.PutPostInc(v)
	}
	require.Equal(t, 0, b.WriteIdx())

	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, b.GetPostInc())
	}
	assert.Equal(t, []int{10, 20, 30, 40}, got)
	assert.Equal(t, 0, b.ReadIdx())
}

func TestBuffer_ScenarioWrapOverFreedSlot(t *testing.T) {
	b := ring.New[int](3)
	b.PutPostInc(1)
	require.Equal(t, 1, b.GetPostInc())
	b.PutPostInc(2)
	b.PutPostInc(3)
	b.PutPostInc(4)
	require.Equal(t, 1, b.WriteIdx())

	assert.Equal(t, 2, b.GetPostInc())
	assert.Equal(t, 3, b.GetPostInc())
	assert.Equal(t, 4, b.GetPostInc())
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := ring.New[int](3)
	b.PutPostInc(1)
	b.PutPostInc(2)
	b.GetPostInc()

	c := b.Clone()
	assert.Equal(t, b.State(), c.State())

	c.Put(99)
	c.PutPostInc(100)
	b.SetReadIdx(2)
	c.SetReadIdx(2)
	assert.Equal(t, 0, b.Get())
	assert.Equal(t, 100, c.Get())
	assert.Equal(t, 2, b.WriteIdx())
	assert.Equal(t, 0, c.WriteIdx())
}

func TestBuffer_State(t *testing.T) {
	b := ring.New[float32](4)
	b.PutPostInc(0.5)
	b.PutPostInc(0.25)
	b.GetPostInc()
	assert.Equal(t, ring.State{
		Capacity:  4,
		WriteIdx:  2,
		ReadIdx:   1,
		NumValues: 1,
		Buffered:  -1,
	}, b.State())
}
