// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for hioload-ring.
//
// Provides concurrent-safe registries including:
//   - Named debug probes exporting ring cursor snapshots
//   - Counter telemetry for checked ring violations
package control
