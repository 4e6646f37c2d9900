package common

import (
	"encoding/base64"
	"io"
)

// MakeRandBase64String reads size bytes from r and returns them encoded with
// standard padded base64.
func MakeRandBase64String(r io.Reader, size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
