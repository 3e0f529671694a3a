package crypto

import "runtime"

// Wipe zeroes b, typically a derived key once the cipher holds its own
// schedule. Best effort only: the runtime may have copied the bytes.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
