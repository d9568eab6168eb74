package merkle

import (
	"encoding/hex"
	"fmt"
)

// DigestSize is the byte length of every digest in a tree.
const DigestSize = 32

// Digest is a fixed 32-byte Keccak-256 output. Two digests are equal iff
// their bytes are equal.
type Digest [DigestSize]byte

// DigestFromBytes copies b into a Digest.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, fmt.Errorf("digest must be %d bytes, got %d", DigestSize, len(b))
	}

	copy(d[:], b)
	return d, nil
}

// DigestFromHex parses a 64-character hex string into a Digest.
func DigestFromHex(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest hex: %w", err)
	}

	return DigestFromBytes(b)
}

// Hex returns the lowercase hex encoding of d.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}
