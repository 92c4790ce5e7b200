package common

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are wiped with it once they have been handed to the auth layer.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
