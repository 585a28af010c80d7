// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for hioload-ring.

package api

import "fmt"

// Errors reported by checked rings. Callers match them with errors.Is.
var (
	ErrOverflow        = fmt.Errorf("ring overflow")
	ErrUnderflow       = fmt.Errorf("ring underflow")
	ErrIndexOutOfRange = fmt.Errorf("ring index out of range")
)
