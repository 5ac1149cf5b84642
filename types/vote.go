package types

import "fmt"

// VoteCommitment is a juror's vote secret together with the two public
// values derived from it. Only Commitment and Nullifier ever leave the
// juror's machine before the reveal; Vote and Salt stay in the local store.
// A commitment is tied to exactly one case: the nullifier binds it to the
// CaseID it was generated for.
type VoteCommitment struct {
	CaseID     uint64   `json:"caseId"     cbor:"0,keyasint"`
	Vote       bool     `json:"vote"       cbor:"1,keyasint"`
	Salt       HexBytes `json:"salt"       cbor:"2,keyasint"`
	Commitment HexBytes `json:"commitment" cbor:"3,keyasint"`
	Nullifier  HexBytes `json:"nullifier"  cbor:"4,keyasint"`
}

// Validate checks the byte-array lengths of the commitment record. It is
// called on construction and again after loading from the store, so
// malformed cryptographic material fails fast instead of propagating.
func (vc *VoteCommitment) Validate() error {
	if len(vc.Salt) != SaltLen {
		return fmt.Errorf("invalid salt length %d, expected %d", len(vc.Salt), SaltLen)
	}
	if len(vc.Commitment) != DigestLen {
		return fmt.Errorf("invalid commitment length %d, expected %d", len(vc.Commitment), DigestLen)
	}
	if len(vc.Nullifier) != DigestLen {
		return fmt.Errorf("invalid nullifier length %d, expected %d", len(vc.Nullifier), DigestLen)
	}
	return nil
}
