package merkle

// Step is one level of a Merkle path. Right reports whether the digest
// under verification is the right operand at this level, i.e. the sibling
// is hashed on the left.
type Step struct {
	Sibling Digest
	Right   bool
}

// Proof is an ordered Merkle path from the level closest to the leaf up to
// the level closest to the root. Depth is caller-determined; the verifier
// enforces no bound.
type Proof []Step

// Verify folds proof onto leaf and reports whether the result equals root.
// An empty proof verifies iff leaf == root. Every invalid input, of any
// kind, yields false; Verify never returns an error.
func Verify(leaf, root Digest, proof Proof) bool {
	current := leaf
	for _, step := range proof {
		if step.Right {
			current = HashPair(step.Sibling, current)
		} else {
			current = HashPair(current, step.Sibling)
		}
	}

	return current == root
}

// VerifySplit is Verify for the legacy layout that carries siblings and
// direction bits as two separate sequences. A length mismatch between them
// returns false without hashing anything.
func VerifySplit(leaf, root Digest, siblings []Digest, rights []bool) bool {
	if len(siblings) != len(rights) {
		return false
	}

	current := leaf
	for i, sibling := range siblings {
		if rights[i] {
			current = HashPair(sibling, current)
		} else {
			current = HashPair(current, sibling)
		}
	}

	return current == root
}
