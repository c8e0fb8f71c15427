package common

// WipeByteArray zeroes the slice in place so credentials do not linger
// in memory after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
