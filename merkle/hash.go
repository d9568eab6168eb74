package merkle

import "golang.org/x/crypto/sha3"

// HashLeaf hashes arbitrary data into a leaf digest with a single pass of
// Keccak-256. The scheme applies no domain separation between leaves and
// internal nodes, so a 64-byte payload equal to a concatenated digest pair
// collides with the corresponding pair hash. Kept as-is for compatibility
// with external verifiers of the same trees.
func HashLeaf(data []byte) Digest {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var d Digest
	h.Sum(d[:0])
	return d
}

// HashPair hashes left||right into a parent digest. Order-sensitive.
func HashPair(left, right Digest) Digest {
	h := sha3.NewLegacyKeccak256()
	h.Write(left[:])
	h.Write(right[:])

	var d Digest
	h.Sum(d[:0])
	return d
}
