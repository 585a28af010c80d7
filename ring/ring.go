// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unchecked cursor-addressed ring buffer.

package ring

import (
	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// noCopy makes go vet's copylocks check flag value copies of Buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is a fixed-capacity ring with independent write and read cursors.
// Use New to construct one; the zero value has no storage.
//
// Cursors sit on separate cache lines so one externally synchronized writer
// and one reader do not contend on the same line.
type Buffer[T any] struct {
	noCopy noCopy
	data   []T
	size   int
	write  int
	_      cpu.CacheLinePad
	read   int
	_      cpu.CacheLinePad
}

// New allocates a buffer of the given capacity with both cursors at 0.
// It panics if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{
		data: make([]T, capacity),
		size: capacity,
	}
}

// Put stores v at the write cursor. The cursor does not move, so repeated
// calls overwrite the same slot.
func (b *Buffer[T]) Put(v T) {
	b.data[b.write] = v
}

// PutPostInc stores v and advances the write cursor, wrapping to 0.
func (b *Buffer[T]) PutPostInc(v T) {
	b.data[b.write] = v
	b.write++
	if b.write >= b.size {
		b.write = 0
	}
}

// Get returns the value at the read cursor without advancing it.
func (b *Buffer[T]) Get() T {
	return b.data[b.read]
}

// GetPostInc returns the value at the read cursor and advances it,
// wrapping to 0. It does not look at the write cursor.
func (b *Buffer[T]) GetPostInc() T {
	v := b.data[b.read]
	b.read++
	if b.read >= b.size {
		b.read = 0
	}
	return v
}

// Reset swaps in freshly allocated storage of the same capacity and zeroes
// both cursors. Slots read back as the zero value of T afterwards.
func (b *Buffer[T]) Reset() {
	b.data = make([]T, b.size)
	b.write = 0
	b.read = 0
}

// WriteIdx returns the write cursor.
func (b *Buffer[T]) WriteIdx() int { return b.write }

// SetWriteIdx moves the write cursor to pos. pos must be in [0, Len());
// it is not validated.
func (b *Buffer[T]) SetWriteIdx(pos int) {
	assertCursor("write", pos, b.size)
	b.write = pos
}

// ReadIdx returns the read cursor.
func (b *Buffer[T]) ReadIdx() int { return b.read }

// SetReadIdx moves the read cursor to pos. pos must be in [0, Len());
// it is not validated.
func (b *Buffer[T]) SetReadIdx(pos int) {
	assertCursor("read", pos, b.size)
	b.read = pos
}

// NumValuesInBuffer returns WriteIdx()-ReadIdx() as is. The result is
// negative when the read cursor is ahead, and 0 means either empty or full.
// Use Checked.Buffered for an exact count.
func (b *Buffer[T]) NumValuesInBuffer() int {
	return b.write - b.read
}

// Len returns the capacity fixed at construction.
func (b *Buffer[T]) Len() int { return b.size }

// Clone returns a deep copy with its own storage and the same cursors.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{
		data:  make([]T, b.size),
		size:  b.size,
		write: b.write,
		read:  b.read,
	}
	copy(c.data, b.data)
	return c
}
