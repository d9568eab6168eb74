package storage

import "fmt"

var ErrNotFound = fmt.Errorf("not found")

// KvStore is the minimal key-value surface the attestation log needs.
type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}
