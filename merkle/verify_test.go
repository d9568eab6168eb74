package merkle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fourLeafTree builds the reference tree over data1..data4 and returns the
// leaves, the two internal nodes and the root.
func fourLeafTree() (h [4]Digest, n1, n2, root Digest) {
	h[0] = HashLeaf([]byte("data1"))
	h[1] = HashLeaf([]byte("data2"))
	h[2] = HashLeaf([]byte("data3"))
	h[3] = HashLeaf([]byte("data4"))

	n1 = HashPair(h[0], h[1])
	n2 = HashPair(h[2], h[3])
	root = HashPair(n1, n2)
	return h, n1, n2, root
}

func TestVerifyZeroDepth(t *testing.T) {
	r := require.New(t)

	leaf := HashLeaf([]byte("data1"))
	other := HashLeaf([]byte("data2"))

	r.True(Verify(leaf, leaf, nil))
	r.True(Verify(leaf, leaf, Proof{}))
	r.False(Verify(leaf, other, nil))
}

func TestVerifySingleLevel(t *testing.T) {
	r := require.New(t)

	left := HashLeaf([]byte("data1"))
	right := HashLeaf([]byte("data2"))
	root := HashPair(left, right)

	r.True(Verify(left, root, Proof{{Sibling: right}}))
	r.True(Verify(right, root, Proof{{Sibling: left, Right: true}}))

	// swapped direction bits must fail
	r.False(Verify(left, root, Proof{{Sibling: right, Right: true}}))
	r.False(Verify(right, root, Proof{{Sibling: left}}))
}

func TestVerifyFourLeafTree(t *testing.T) {
	r := require.New(t)

	h, n1, n2, root := fourLeafTree()

	r.True(Verify(h[0], root, Proof{{Sibling: h[1]}, {Sibling: n2}}))
	r.True(Verify(h[3], root, Proof{{Sibling: h[2], Right: true}, {Sibling: n1, Right: true}}))

	// wrong sibling at the first level
	r.False(Verify(h[0], root, Proof{{Sibling: h[0]}, {Sibling: n2}}))
	// proof for a different leaf
	r.False(Verify(h[1], root, Proof{{Sibling: h[1]}, {Sibling: n2}}))
}

func TestVerifyTamper(t *testing.T) {
	r := require.New(t)

	h, _, n2, root := fourLeafTree()
	proof := Proof{{Sibling: h[1]}, {Sibling: n2}}
	r.True(Verify(h[0], root, proof))

	// flip one bit of the leaf
	leaf := h[0]
	leaf[7] ^= 0x10
	r.False(Verify(leaf, root, proof))

	// flip one bit of the root
	badRoot := root
	badRoot[31] ^= 0x01
	r.False(Verify(h[0], badRoot, proof))

	// flip one bit in each sibling, one at a time
	for i := range proof {
		tampered := Proof{proof[0], proof[1]}
		tampered[i].Sibling[0] ^= 0x80
		r.False(Verify(h[0], root, tampered))
	}

	// swap one direction bit, one at a time
	for i := range proof {
		tampered := Proof{proof[0], proof[1]}
		tampered[i].Right = !tampered[i].Right
		r.False(Verify(h[0], root, tampered))
	}
}

func TestVerifyWrongDepth(t *testing.T) {
	r := require.New(t)

	h, _, n2, root := fourLeafTree()

	// too short and too long proofs fail the final comparison, no panic
	r.False(Verify(h[0], root, Proof{{Sibling: h[1]}}))
	r.False(Verify(h[0], root, Proof{{Sibling: h[1]}, {Sibling: n2}, {Sibling: n2}}))
}

func TestVerifySplit(t *testing.T) {
	r := require.New(t)

	h, n1, n2, root := fourLeafTree()

	r.True(VerifySplit(h[0], root, []Digest{h[1], n2}, []bool{false, false}))
	r.True(VerifySplit(h[3], root, []Digest{h[2], n1}, []bool{true, true}))
	r.False(VerifySplit(h[0], root, []Digest{h[1], n2}, []bool{false, true}))
}

func TestVerifySplitShapeMismatch(t *testing.T) {
	r := require.New(t)

	h, _, n2, root := fourLeafTree()

	r.False(VerifySplit(h[0], root, []Digest{h[1], n2}, []bool{false}))
	r.False(VerifySplit(h[0], root, []Digest{h[1]}, []bool{false, false}))
	r.False(VerifySplit(h[0], root, nil, []bool{false}))

	// mismatch wins even when the content would otherwise match trivially
	r.False(VerifySplit(h[0], h[0], []Digest{n2}, nil))
}
