// Package hash provides the single hash primitive used across the
// solsafe crypto layer. Every digest in the protocol is a sha256 over a
// UTF-8 domain tag followed by the raw input parts, with no length
// prefixing between parts: the tag alone disambiguates the call sites.
// The on-chain program anchors roots and commitments computed with this
// exact scheme, so the tags and the hash function are fixed.
package hash

import "crypto/sha256"

const (
	// Size is the digest length in bytes.
	Size = sha256.Size
	// SaltSize is the length of vote commitment salts in bytes.
	SaltSize = 32
	// CaseIDSize is the length of a little-endian encoded case ID in bytes.
	CaseIDSize = 8
)

// Domain separation tags. No two call sites may share a tag.
const (
	// TagLeaf prefixes evidence items when hashed into Merkle leaves.
	TagLeaf = "LEAF:"
	// TagNode prefixes the concatenation of two child digests.
	TagNode = "NODE:"
	// TagCommit prefixes the vote byte and salt of a vote commitment.
	TagCommit = "COMMIT:"
	// TagNullifier prefixes the case ID and commitment of a nullifier.
	TagNullifier = "NULLIFIER:"
	// TagChecksum prefixes persisted envelope payloads. The checksum is
	// corruption detection only: whoever can rewrite the payload can
	// rewrite the checksum too.
	TagChecksum = "CHECKSUM:"
)

// Sum returns the sha256 digest of tag followed by all parts in order.
func Sum(tag string, parts ...[]byte) []byte {
	h := sha256.New()
	h.Write([]byte(tag))
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
