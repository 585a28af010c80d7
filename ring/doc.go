// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffers with caller-managed cursors.
//
// Buffer is the zero-overhead primitive: Put/Get access the slot under the
// write/read cursor, the PostInc variants advance the cursor modulo the
// capacity, and nothing else is checked. In particular:
//
//   - GetPostInc never compares against the write cursor. Reading past what
//     was written returns stale or zero values.
//   - SetWriteIdx/SetReadIdx accept any int. A cursor outside [0, Len())
//     panics with a runtime index error on the next Put or Get.
//   - NumValuesInBuffer is WriteIdx()-ReadIdx(). It can be negative, and it
//     is 0 both for an empty buffer and for one that is exactly full.
//
// Callers that need validation opt in to Checked, which wraps a Buffer,
// tracks an exact fill count and returns errors from api instead.
//
// Building with -tags ringdebug adds range assertions to the cursor setters
// of Buffer. Default builds carry no such checks.
//
// Neither type is safe for concurrent use.
package ring
