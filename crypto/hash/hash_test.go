package hash

import (
	"crypto/sha256"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSum(t *testing.T) {
	c := qt.New(t)

	// Equivalent to hashing the flat concatenation.
	want := sha256.Sum256([]byte("LEAF:" + "hello" + "world"))
	got := Sum(TagLeaf, []byte("hello"), []byte("world"))
	c.Assert(got, qt.DeepEquals, want[:])
	c.Assert(got, qt.HasLen, Size)

	// Same bytes under different tags must not collide.
	c.Assert(Sum(TagLeaf, []byte("x")), qt.Not(qt.DeepEquals), Sum(TagNode, []byte("x")))

	// Part boundaries are not part of the binding, only the tag is.
	c.Assert(Sum(TagNode, []byte("ab"), []byte("c")), qt.DeepEquals, Sum(TagNode, []byte("a"), []byte("bc")))
}

func TestSumDeterministic(t *testing.T) {
	c := qt.New(t)
	a := Sum(TagCommit, []byte{1}, []byte("salt"))
	b := Sum(TagCommit, []byte{1}, []byte("salt"))
	c.Assert(a, qt.DeepEquals, b)
}
