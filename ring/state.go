// File: ring/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor snapshots for debug probes.

package ring

import "github.com/momentics/hioload-ring/api"

// State is a point-in-time copy of a buffer's cursors.
type State struct {
	Capacity  int `json:"capacity"`
	WriteIdx  int `json:"write_idx"`
	ReadIdx   int `json:"read_idx"`
	NumValues int `json:"num_values"`
	// Buffered is the exact fill count, or -1 when the ring does not track one.
	Buffered int `json:"buffered"`
}

// State returns the current cursor snapshot.
func (b *Buffer[T]) State() State {
	return State{
		Capacity:  b.size,
		WriteIdx:  b.write,
		ReadIdx:   b.read,
		NumValues: b.write - b.read,
		Buffered:  -1,
	}
}

// Register exposes State as a probe under name.
func (b *Buffer[T]) Register(d api.Debug, name string) {
	d.RegisterProbe(name, func() any { return b.State() })
}
