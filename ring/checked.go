// File: ring/checked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Opt-in validating wrapper over Buffer with an exact fill count.

package ring

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

var _ api.CheckedRing[any] = (*Checked[any])(nil)

// Checked wraps a Buffer and refuses operations that the plain buffer would
// let through silently: advancing past a full or empty ring and moving a
// cursor out of range. Violations leave the ring untouched and return an
// error wrapping api.ErrOverflow, api.ErrUnderflow or api.ErrIndexOutOfRange.
type Checked[T any] struct {
	buf      *Buffer[T]
	buffered int
	opts     options
}

// NewChecked allocates a checked ring. It panics if capacity is not positive.
func NewChecked[T any](capacity int, opts ...Option) *Checked[T] {
	return &Checked[T]{
		buf:  New[T](capacity),
		opts: newOptions(opts),
	}
}

// Put stores v at the write cursor. It does not count as a buffered value
// until the cursor advances.
func (c *Checked[T]) Put(v T) { c.buf.Put(v) }

// PutPostInc stores v and advances the write cursor.
func (c *Checked[T]) PutPostInc(v T) error {
	if c.buffered == c.buf.size {
		return c.violation("put_post_inc", "overflow",
			errors.Wrapf(api.ErrOverflow, "%s: %d of %d slots unread", c.opts.name, c.buffered, c.buf.size))
	}
	c.buf.PutPostInc(v)
	c.buffered++
	return nil
}

// Get returns the value at the read cursor without advancing it.
func (c *Checked[T]) Get() T { return c.buf.Get() }

// GetPostInc returns the value at the read cursor and advances it.
// On an empty ring it returns the zero value and leaves the cursor alone.
func (c *Checked[T]) GetPostInc() (T, error) {
	if c.buffered == 0 {
		var zero T
		return zero, c.violation("get_post_inc", "underflow",
			errors.Wrapf(api.ErrUnderflow, "%s: nothing to read at %d", c.opts.name, c.buf.read))
	}
	c.buffered--
	return c.buf.GetPostInc(), nil
}

// Reset clears storage, cursors and the fill count.
func (c *Checked[T]) Reset() {
	c.buf.Reset()
	c.buffered = 0
}

// WriteIdx returns the write cursor.
func (c *Checked[T]) WriteIdx() int { return c.buf.write }

// SetWriteIdx moves the write cursor and recomputes the fill count.
func (c *Checked[T]) SetWriteIdx(pos int) error {
	if err := c.checkRange("set_write_idx", pos); err != nil {
		return err
	}
	c.buf.write = pos
	c.recount()
	return nil
}

// ReadIdx returns the read cursor.
func (c *Checked[T]) ReadIdx() int { return c.buf.read }

// SetReadIdx moves the read cursor and recomputes the fill count.
func (c *Checked[T]) SetReadIdx(pos int) error {
	if err := c.checkRange("set_read_idx", pos); err != nil {
		return err
	}
	c.buf.read = pos
	c.recount()
	return nil
}

// NumValuesInBuffer has the same ambiguous semantics as Buffer's.
func (c *Checked[T]) NumValuesInBuffer() int { return c.buf.NumValuesInBuffer() }

// Buffered returns the exact number of unread values.
func (c *Checked[T]) Buffered() int { return c.buffered }

// Len returns the capacity.
func (c *Checked[T]) Len() int { return c.buf.size }

// Unchecked exposes the wrapped buffer. Advancing it directly bypasses the
// fill count.
func (c *Checked[T]) Unchecked() *Buffer[T] { return c.buf }

// State returns the cursor snapshot including the exact fill count.
func (c *Checked[T]) State() State {
	s := c.buf.State()
	s.Buffered = c.buffered
	return s
}

// Register exposes State as a probe under the ring's name.
func (c *Checked[T]) Register(d api.Debug) {
	d.RegisterProbe(c.opts.name, func() any { return c.State() })
}

// recount derives the fill count from the cursors after a jump. Coinciding
// cursors count as empty.
func (c *Checked[T]) recount() {
	n := (c.buf.write - c.buf.read) % c.buf.size
	if n < 0 {
		n += c.buf.size
	}
	c.buffered = n
}

func (c *Checked[T]) checkRange(op string, pos int) error {
	if pos >= 0 && pos < c.buf.size {
		return nil
	}
	return c.violation(op, "out_of_range",
		errors.Wrapf(api.ErrIndexOutOfRange, "%s: %s(%d) with capacity %d", c.opts.name, op, pos, c.buf.size),
		zap.Int("pos", pos))
}

func (c *Checked[T]) violation(op, kind string, err error, fields ...zap.Field) error {
	if c.opts.metrics != nil {
		c.opts.metrics.Inc(defaultName + "." + c.opts.name + "." + kind)
	}
	if ce := c.opts.logger.Check(zap.DebugLevel, "ring violation"); ce != nil {
		ce.Write(append([]zap.Field{
			zap.String("ring", c.opts.name),
			zap.String("op", op),
			zap.String("kind", kind),
			zap.Int("write_idx", c.buf.write),
			zap.Int("read_idx", c.buf.read),
			zap.Int("capacity", c.buf.size),
			zap.Error(err),
		}, fields...)...)
	}
	return err
}
