package merkle

import (
	"fmt"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/solsafe/solsafe/crypto/hash"
)

func TestCommitEmpty(t *testing.T) {
	c := qt.New(t)
	_, err := Commit(nil)
	c.Assert(err, qt.ErrorIs, ErrEmptyInput)
	_, err = Commit([][]byte{})
	c.Assert(err, qt.ErrorIs, ErrEmptyInput)
}

func TestSingleLeaf(t *testing.T) {
	c := qt.New(t)
	com, err := Commit([][]byte{[]byte("only")})
	c.Assert(err, qt.IsNil)
	// a single leaf is the root itself and needs no siblings
	c.Assert([]byte(com.Root), qt.DeepEquals, hash.Sum(hash.TagLeaf, []byte("only")))
	c.Assert(com.Proofs[0].Siblings, qt.HasLen, 0)
	c.Assert(VerifyProof([]byte("only"), com.Root, com.Proofs[0]), qt.IsTrue)
}

func TestAllLeavesVerify(t *testing.T) {
	c := qt.New(t)
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 33} {
		items := make([][]byte, n)
		for i := range items {
			items[i] = []byte(fmt.Sprintf("evidence-%d", i))
		}
		com, err := Commit(items)
		c.Assert(err, qt.IsNil)
		wantLen := 0
		if n > 1 {
			wantLen = int(math.Ceil(math.Log2(float64(n))))
		}
		for i, item := range items {
			c.Assert(com.Proofs[i].Siblings, qt.HasLen, wantLen,
				qt.Commentf("n=%d leaf=%d", n, i))
			c.Assert(VerifyProof(item, com.Root, com.Proofs[i]), qt.IsTrue,
				qt.Commentf("n=%d leaf=%d", n, i))
		}
	}
}

func TestTamperedItem(t *testing.T) {
	c := qt.New(t)
	items := [][]byte{[]byte("evidence-a"), []byte("evidence-b"), []byte("evidence-c")}
	com, err := Commit(items)
	c.Assert(err, qt.IsNil)

	c.Assert(VerifyProof([]byte("evidence-b"), com.Root, com.Proofs[1]), qt.IsTrue)

	// flipping one byte of the item invalidates the proof
	tampered := []byte("evidence-B")
	c.Assert(VerifyProof(tampered, com.Root, com.Proofs[1]), qt.IsFalse)

	// a root built from a different item set rejects the original leaf
	other, err := Commit([][]byte{[]byte("evidence-a"), []byte("evidence-x"), []byte("evidence-c")})
	c.Assert(err, qt.IsNil)
	c.Assert(VerifyProof([]byte("evidence-b"), other.Root, com.Proofs[1]), qt.IsFalse)
}

func TestOrderSensitivity(t *testing.T) {
	c := qt.New(t)
	a, err := Commit([][]byte{[]byte("one"), []byte("two")})
	c.Assert(err, qt.IsNil)
	b, err := Commit([][]byte{[]byte("two"), []byte("one")})
	c.Assert(err, qt.IsNil)
	c.Assert(a.Root, qt.Not(qt.DeepEquals), b.Root)
}

func TestDeterminism(t *testing.T) {
	c := qt.New(t)
	items := [][]byte{[]byte("x"), []byte("y"), []byte("z")}
	a, err := Commit(items)
	c.Assert(err, qt.IsNil)
	b, err := Commit(items)
	c.Assert(err, qt.IsNil)
	c.Assert(a.Root, qt.DeepEquals, b.Root)
	for i := range a.Proofs {
		c.Assert(a.Proofs[i].Siblings, qt.DeepEquals, b.Proofs[i].Siblings)
	}
}

func TestWrongIndexFails(t *testing.T) {
	c := qt.New(t)
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	com, err := Commit(items)
	c.Assert(err, qt.IsNil)
	// a valid proof presented under the wrong index must not verify
	bad := &Proof{Index: 0, Siblings: com.Proofs[1].Siblings}
	c.Assert(VerifyProof([]byte("b"), com.Root, bad), qt.IsFalse)
	c.Assert(VerifyProof([]byte("a"), com.Root, nil), qt.IsFalse)
}

func TestDuplicateSelfTieBreak(t *testing.T) {
	c := qt.New(t)
	// with three leaves the third is paired with itself; its parent must
	// be H(NODE, leaf2, leaf2), not a promotion of the unpaired leaf
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	com, err := Commit(items)
	c.Assert(err, qt.IsNil)

	l0 := hash.Sum(hash.TagLeaf, []byte("a"))
	l1 := hash.Sum(hash.TagLeaf, []byte("b"))
	l2 := hash.Sum(hash.TagLeaf, []byte("c"))
	n0 := hash.Sum(hash.TagNode, l0, l1)
	n1 := hash.Sum(hash.TagNode, l2, l2)
	root := hash.Sum(hash.TagNode, n0, n1)
	c.Assert([]byte(com.Root), qt.DeepEquals, root)

	// the self-paired leaf's proof carries itself as first sibling
	c.Assert([]byte(com.Proofs[2].Siblings[0]), qt.DeepEquals, l2)
}
