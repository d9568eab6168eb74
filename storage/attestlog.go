// Package storage persists attestation records produced by the path
// verifier, keyed by leaf digest.
package storage

import (
	"fmt"

	"merklepath/merkle"
	"merklepath/record"
)

const attestPrefix = "a"

// AttestationLog stores encoded verification records in a KvStore. A later
// record for the same leaf overwrites the earlier one.
type AttestationLog struct {
	db KvStore
}

func NewAttestationLog(db KvStore) *AttestationLog {
	return &AttestationLog{db: db}
}

// Put stores the encoded record under its leaf digest.
func (l *AttestationLog) Put(rec record.Record) error {
	return l.db.Put(attestKey(rec.Leaf), rec.Encode())
}

// Get returns the stored record for leaf, or ErrNotFound.
func (l *AttestationLog) Get(leaf merkle.Digest) (record.Record, error) {
	value, err := l.db.Get(attestKey(leaf))
	if err != nil {
		return record.Record{}, err
	}

	rec, err := record.DecodeRecord(value)
	if err != nil {
		return record.Record{}, fmt.Errorf("corrupt record for %s: %w", leaf.Hex(), err)
	}

	return rec, nil
}

// Delete removes the record for leaf, if any.
func (l *AttestationLog) Delete(leaf merkle.Digest) error {
	return l.db.Delete(attestKey(leaf))
}

func (l *AttestationLog) Close() error {
	return l.db.Close()
}

func attestKey(leaf merkle.Digest) []byte {
	return append([]byte(attestPrefix), leaf[:]...)
}
