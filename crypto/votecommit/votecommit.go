// Package votecommit implements the juror commit/reveal scheme. A juror
// commits to a boolean vote for a case by publishing a hiding, binding
// commitment together with a nullifier that ties the commitment to that
// case only. The (vote, salt) secret stays with the juror until the
// reveal, where the same recomputation proves the published commitment
// was built from exactly that pair.
package votecommit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/solsafe/solsafe/crypto/hash"
	"github.com/solsafe/solsafe/types"
	"github.com/solsafe/solsafe/util"
)

// New generates a vote commitment for caseID. If salt is nil a fresh
// 32-byte random salt is drawn; a salt of any other length is rejected.
// The returned record contains the secret vote and salt: the caller must
// publish only Commitment and Nullifier and keep the rest local.
func New(caseID uint64, vote bool, salt []byte) (*types.VoteCommitment, error) {
	if salt == nil {
		salt = util.RandomBytes(hash.SaltSize)
	}
	if len(salt) != hash.SaltSize {
		return nil, fmt.Errorf("invalid salt length %d, expected %d", len(salt), hash.SaltSize)
	}
	commitment := hash.Sum(hash.TagCommit, []byte{voteByte(vote)}, salt)
	nullifier := hash.Sum(hash.TagNullifier, caseIDBytes(caseID), commitment)
	vc := &types.VoteCommitment{
		CaseID:     caseID,
		Vote:       vote,
		Salt:       salt,
		Commitment: commitment,
		Nullifier:  nullifier,
	}
	if err := vc.Validate(); err != nil {
		return nil, err
	}
	return vc, nil
}

// VerifyReveal reports whether (vote, salt) is the pair that produced
// commitment. Any mismatch, including a wrong-length salt, yields false;
// this is a trust decision, not an error. The comparison does not need to
// be constant-time since the commitment is public from the commit phase.
func VerifyReveal(commitment []byte, vote bool, salt []byte) bool {
	if len(salt) != hash.SaltSize {
		return false
	}
	recomputed := hash.Sum(hash.TagCommit, []byte{voteByte(vote)}, salt)
	return bytes.Equal(recomputed, commitment)
}

func voteByte(vote bool) byte {
	if vote {
		return 1
	}
	return 0
}

// caseIDBytes encodes the case ID as the on-chain program does, with
// to_le_bytes() over a u64.
func caseIDBytes(caseID uint64) []byte {
	b := make([]byte, hash.CaseIDSize)
	binary.LittleEndian.PutUint64(b, caseID)
	return b
}
