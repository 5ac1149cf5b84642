package api

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/solsafe/solsafe/crypto/merkle"
	"github.com/solsafe/solsafe/types"
)

// EvidenceItem is one artifact submitted by a reporter. Data carries the
// raw item bytes to be committed; URI is the external storage locator
// where the raw bytes were (or will be) uploaded.
type EvidenceItem struct {
	Name      string         `json:"name"`
	MediaType string         `json:"mediaType"`
	URI       string         `json:"uri"`
	Data      types.HexBytes `json:"data"`
}

// NewEvidence is the request to commit to an ordered evidence set for a
// case. Item order is significant: it is part of the commitment.
type NewEvidence struct {
	CaseID          uint64         `json:"caseId"`
	ReportedAddress common.Address `json:"reportedAddress"`
	Items           []EvidenceItem `json:"items"`
}

// NewEvidenceResponse returns the stored bundle key and the Merkle
// commitment. The root is the value to anchor on-chain; each descriptor
// carries the siblings needed to later prove its item's inclusion.
type NewEvidenceResponse struct {
	BundleID string                `json:"bundleId"`
	Bundle   *types.EvidenceBundle `json:"bundle"`
}

// VerifyEvidence is the request to check one evidence item against an
// anchored root.
type VerifyEvidence struct {
	Item  types.HexBytes `json:"item"`
	Root  types.HexBytes `json:"root"`
	Proof merkle.Proof   `json:"proof"`
}

// VerifyEvidenceResponse carries the boolean outcome of the trust
// decision; an invalid proof is a legitimate false, not an error.
type VerifyEvidenceResponse struct {
	Valid bool `json:"valid"`
}

// NewVote is the request to commit to a vote for a case. Salt is
// optional; when omitted a fresh random salt is generated server-side.
type NewVote struct {
	CaseID uint64         `json:"caseId"`
	Vote   bool           `json:"vote"`
	Salt   types.HexBytes `json:"salt,omitempty"`
}

// NewVoteResponse carries exactly the two values to publish on-chain.
// The vote and salt never appear here; they stay in the local store until
// the reveal.
type NewVoteResponse struct {
	CaseID     uint64         `json:"caseId"`
	Commitment types.HexBytes `json:"commitment"`
	Nullifier  types.HexBytes `json:"nullifier"`
}

// RevealVote is the request to retrieve the vote secret for a case.
type RevealVote struct {
	CaseID uint64 `json:"caseId"`
}

// RevealVoteResponse is the full secret, self-checked against the stored
// commitment, ready to be sent in the on-chain reveal instruction. The
// local entry is consumed: the commitment is never reused.
type RevealVoteResponse struct {
	CaseID     uint64         `json:"caseId"`
	Vote       bool           `json:"vote"`
	Salt       types.HexBytes `json:"salt"`
	Commitment types.HexBytes `json:"commitment"`
	Nullifier  types.HexBytes `json:"nullifier"`
}
