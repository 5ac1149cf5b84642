package types

const (
	// DigestLen is the length of every protocol digest in bytes.
	DigestLen = 32
	// SaltLen is the length of a vote commitment salt in bytes.
	SaltLen = 32
	// MaxEvidenceItems is the maximum number of evidence items accepted in
	// a single bundle through the API.
	MaxEvidenceItems = 256
	// MaxEvidenceItemSize is the maximum size of a single inline evidence
	// item accepted through the API, in bytes.
	MaxEvidenceItemSize = 1 << 20
)
