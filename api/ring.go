// File: api/ring.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor-addressed ring buffer contracts.

package api

// Ring is a fixed-capacity ring with caller-managed write and read cursors.
//
// Implementations perform no bounds or fill checks: reading past the write
// cursor yields stale data, and cursors set outside [0, Len()) fault on the
// next access. NumValuesInBuffer returns write-read, which is 0 both when the
// ring is empty and when it is exactly full.
type Ring[T any] interface {
	// Put stores v at the write cursor without advancing it.
	Put(v T)
	// PutPostInc stores v and advances the write cursor, wrapping at Len().
	PutPostInc(v T)
	// Get returns the value at the read cursor without advancing it.
	Get() T
	// GetPostInc returns the value at the read cursor and advances it.
	GetPostInc() T
	// Reset replaces storage with a fresh block and zeroes both cursors.
	Reset()
	WriteIdx() int
	SetWriteIdx(pos int)
	ReadIdx() int
	SetReadIdx(pos int)
	// NumValuesInBuffer returns WriteIdx()-ReadIdx(), signed and unwrapped.
	NumValuesInBuffer() int
	// Len returns the fixed capacity.
	Len() int
}

// CheckedRing is the opt-in strict contract. Advancing and cursor jumps are
// validated against an exact fill count and report errors instead of
// silently producing stale data.
type CheckedRing[T any] interface {
	Put(v T)
	// PutPostInc fails with ErrOverflow when Buffered() == Len().
	PutPostInc(v T) error
	Get() T
	// GetPostInc fails with ErrUnderflow when Buffered() == 0.
	GetPostInc() (T, error)
	Reset()
	WriteIdx() int
	// SetWriteIdx fails with ErrIndexOutOfRange outside [0, Len()).
	SetWriteIdx(pos int) error
	ReadIdx() int
	// SetReadIdx fails with ErrIndexOutOfRange outside [0, Len()).
	SetReadIdx(pos int) error
	NumValuesInBuffer() int
	// Buffered returns the exact number of unread values in [0, Len()].
	Buffered() int
	Len() int
}
