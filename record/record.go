// Package record implements the wire contracts around the path verifier:
// the fixed-order statement an execution environment feeds in, and the
// leaf||root||validity-flag attestation record it gets back.
package record

import (
	"errors"
	"fmt"

	"merklepath/merkle"
)

// EncodedSize is the byte length of an encoded record: leaf || root || flag.
const EncodedSize = 2*merkle.DigestSize + 1

var (
	ErrBadLength   = errors.New("invalid record length")
	ErrBadValidity = errors.New("invalid validity flag")
)

// Record is the attestation produced for a statement: the leaf, the
// claimed root and whether the path verified.
type Record struct {
	Leaf  merkle.Digest
	Root  merkle.Digest
	Valid bool
}

// Attest verifies the statement and wraps the verdict in a record.
func Attest(st Statement) Record {
	return Record{
		Leaf:  st.Leaf,
		Root:  st.Root,
		Valid: merkle.Verify(st.Leaf, st.Root, st.Proof),
	}
}

// Encode serializes r as leaf || root || validity-flag. The flag byte is
// 0x01 for a verified path and 0x00 otherwise.
func (r Record) Encode() []byte {
	out := make([]byte, 0, EncodedSize)
	out = append(out, r.Leaf[:]...)
	out = append(out, r.Root[:]...)
	if r.Valid {
		out = append(out, 0x01)
	} else {
		out = append(out, 0x00)
	}

	return out
}

// DecodeRecord parses the layout produced by Encode.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) != EncodedSize {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrBadLength, len(b))
	}

	var rec Record
	copy(rec.Leaf[:], b[:merkle.DigestSize])
	copy(rec.Root[:], b[merkle.DigestSize:2*merkle.DigestSize])

	switch b[EncodedSize-1] {
	case 0x00:
	case 0x01:
		rec.Valid = true
	default:
		return Record{}, fmt.Errorf("%w: 0x%02x", ErrBadValidity, b[EncodedSize-1])
	}

	return rec, nil
}
