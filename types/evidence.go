package types

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// EvidenceDescriptor describes one evidence artifact inside a bundle: its
// display name, media type, size and the locator of the raw bytes in
// external content storage, plus its position in the Merkle tree and the
// siblings needed to prove inclusion against the bundle root.
type EvidenceDescriptor struct {
	Name      string     `json:"name"      cbor:"0,keyasint,omitempty"`
	MediaType string     `json:"mediaType" cbor:"1,keyasint,omitempty"`
	Size      int64      `json:"size"      cbor:"2,keyasint,omitempty"`
	URI       string     `json:"uri"       cbor:"3,keyasint,omitempty"`
	Index     uint64     `json:"index"     cbor:"4,keyasint"`
	Siblings  []HexBytes `json:"siblings"  cbor:"5,keyasint,omitempty"`
}

// EvidenceBundle is the canonical metadata object uploaded alongside the
// raw evidence files. The on-chain program records only the storage
// locator of this object and the Root bytes; it never parses the tree.
type EvidenceBundle struct {
	CaseID          uint64               `json:"caseId"            cbor:"0,keyasint"`
	ReportedAddress common.Address       `json:"reportedAddress"   cbor:"1,keyasint,omitempty"`
	Root            HexBytes             `json:"root"              cbor:"2,keyasint"`
	Items           []EvidenceDescriptor `json:"items"             cbor:"3,keyasint"`
}

func (b *EvidenceBundle) String() string {
	data, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(data)
}
