//go:build ringdebug

// File: ring/assert_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor range assertions, compiled in with -tags ringdebug.

package ring

import "fmt"

func assertCursor(name string, pos, size int) {
	if pos < 0 || pos >= size {
		panic(fmt.Sprintf("ring: %s cursor %d outside [0, %d)", name, pos, size))
	}
}
