package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"merklepath/merkle"
)

// Direction flag bytes of the statement wire layout.
const (
	flagLeft  = 0x00 // verified digest is the left operand
	flagRight = 0x01 // verified digest is the right operand
)

var ErrBadDirection = errors.New("invalid direction flag")

// Statement is the raw verification input an execution environment feeds
// the verifier: a leaf, a claimed root and the sibling path.
type Statement struct {
	Leaf  merkle.Digest
	Root  merkle.Digest
	Proof merkle.Proof
}

// ReadStatement decodes a statement from r. The layout is fixed: the leaf
// digest, the root digest, a big-endian uint32 proof length, that many
// sibling digests, then that many one-byte direction flags.
func ReadStatement(r io.Reader) (Statement, error) {
	var st Statement

	if _, err := io.ReadFull(r, st.Leaf[:]); err != nil {
		return Statement{}, fmt.Errorf("read leaf: %w", err)
	}
	if _, err := io.ReadFull(r, st.Root[:]); err != nil {
		return Statement{}, fmt.Errorf("read root: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return Statement{}, fmt.Errorf("read proof length: %w", err)
	}

	// The count is untrusted input: grow the proof as siblings actually
	// arrive so a short stream fails at the first missing read instead of
	// sizing an allocation from the header.
	for i := uint32(0); i < count; i++ {
		var step merkle.Step
		if _, err := io.ReadFull(r, step.Sibling[:]); err != nil {
			return Statement{}, fmt.Errorf("read sibling %d: %w", i, err)
		}

		st.Proof = append(st.Proof, step)
	}

	flags := make([]byte, len(st.Proof))
	if _, err := io.ReadFull(r, flags); err != nil {
		return Statement{}, fmt.Errorf("read direction flags: %w", err)
	}

	for i, flag := range flags {
		switch flag {
		case flagLeft:
		case flagRight:
			st.Proof[i].Right = true
		default:
			return Statement{}, fmt.Errorf("%w: flag %d is 0x%02x", ErrBadDirection, i, flag)
		}
	}

	return st, nil
}

// WriteStatement encodes st to w in the layout ReadStatement expects.
func WriteStatement(w io.Writer, st Statement) error {
	if _, err := w.Write(st.Leaf[:]); err != nil {
		return fmt.Errorf("write leaf: %w", err)
	}
	if _, err := w.Write(st.Root[:]); err != nil {
		return fmt.Errorf("write root: %w", err)
	}

	if err := binary.Write(w, binary.BigEndian, uint32(len(st.Proof))); err != nil {
		return fmt.Errorf("write proof length: %w", err)
	}

	for i, step := range st.Proof {
		if _, err := w.Write(step.Sibling[:]); err != nil {
			return fmt.Errorf("write sibling %d: %w", i, err)
		}
	}

	flags := make([]byte, len(st.Proof))
	for i, step := range st.Proof {
		if step.Right {
			flags[i] = flagRight
		}
	}
	if _, err := w.Write(flags); err != nil {
		return fmt.Errorf("write direction flags: %w", err)
	}

	return nil
}
