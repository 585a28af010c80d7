//go:build !ringdebug

package ring_test

const ringDebug = false
