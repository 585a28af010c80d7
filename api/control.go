// File: api/control.go
// Package api defines the Metrics interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Metrics is a counter sink for ring diagnostics.
type Metrics interface {
	// Inc increments the integer counter under key.
	Inc(key string)
	Set(key string, value any)
	GetSnapshot() map[string]any
}
