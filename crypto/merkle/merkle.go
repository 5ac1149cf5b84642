// Package merkle implements the evidence commitment tree: an ordered
// binary Merkle tree over opaque evidence items, with per-leaf inclusion
// proofs. Item order is part of the commitment; reordering items changes
// the root. When a level has an odd number of nodes the last node is
// paired with itself (duplicate-self) rather than promoted unpaired. The
// on-chain anchored roots commit to this exact shape, so the tie-break
// must not change.
package merkle

import (
	"bytes"
	"fmt"

	"github.com/solsafe/solsafe/crypto/hash"
	"github.com/solsafe/solsafe/types"
)

// ErrEmptyInput is returned by Commit when given zero items.
var ErrEmptyInput = fmt.Errorf("empty evidence item set")

// Proof holds the sibling digests needed to recompute the root from one
// leaf, ordered from the leaf level upwards, together with the leaf index.
// It is independently shareable and verifiable without the full tree.
type Proof struct {
	Index    uint64           `json:"index"`
	Siblings []types.HexBytes `json:"siblings"`
}

// Commitment is the result of committing to an ordered evidence item set:
// the root digest and one inclusion proof per item, in item order. The
// intermediate tree levels are discarded once the proofs are extracted.
type Commitment struct {
	Root   types.HexBytes `json:"root"`
	Proofs []*Proof       `json:"proofs"`
}

// Commit builds the Merkle tree over items and extracts a proof for every
// leaf. It is deterministic: the same ordered item sequence always yields
// the same root and proofs.
func Commit(items [][]byte) (*Commitment, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	leaves := make([][]byte, len(items))
	for i, item := range items {
		leaves[i] = hash.Sum(hash.TagLeaf, item)
	}
	levels := [][][]byte{leaves}
	for cur := leaves; len(cur) > 1; {
		next := make([][]byte, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			left := cur[i]
			right := left // duplicate-self for an unmatched last node
			if i+1 < len(cur) {
				right = cur[i+1]
			}
			next[i/2] = hash.Sum(hash.TagNode, left, right)
		}
		levels = append(levels, next)
		cur = next
	}

	proofs := make([]*Proof, len(items))
	for i := range items {
		proof := &Proof{Index: uint64(i)}
		idx := i
		for _, level := range levels[:len(levels)-1] {
			sib := idx ^ 1
			if sib >= len(level) {
				sib = idx
			}
			proof.Siblings = append(proof.Siblings, level[sib])
			idx >>= 1
		}
		proofs[i] = proof
	}
	return &Commitment{
		Root:   levels[len(levels)-1][0],
		Proofs: proofs,
	}, nil
}

// VerifyProof checks that item is the leaf at proof.Index of the tree with
// the given root. A failed check is a legitimate boolean outcome, not an
// error: malformed or wrong-length proofs simply return false.
func VerifyProof(item, root []byte, proof *Proof) bool {
	if proof == nil {
		return false
	}
	current := hash.Sum(hash.TagLeaf, item)
	idx := proof.Index
	for _, sibling := range proof.Siblings {
		if idx%2 == 0 {
			current = hash.Sum(hash.TagNode, current, sibling)
		} else {
			current = hash.Sum(hash.TagNode, sibling, current)
		}
		idx >>= 1
	}
	return bytes.Equal(current, root)
}
