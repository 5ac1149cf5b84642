package api

const (
	// PingEndpoint is the endpoint for checking the API status
	PingEndpoint = "/ping"
	// EvidenceEndpoint is the endpoint for submitting an evidence set and
	// committing to it
	EvidenceEndpoint = "/evidence"
	// BundleURLParam is the URL parameter carrying the bundle content key
	BundleURLParam = "bundleId"
	// EvidenceBundleEndpoint is the endpoint to fetch a stored evidence
	// bundle by its content key
	EvidenceBundleEndpoint = "/evidence/{" + BundleURLParam + "}"
	// EvidenceVerifyEndpoint is the endpoint for verifying one evidence
	// item against a bundle root
	EvidenceVerifyEndpoint = "/evidence/verify"
	// VotesEndpoint is the endpoint for committing a vote
	VotesEndpoint = "/votes"
	// VoteRevealEndpoint is the endpoint for retrieving and checking the
	// vote secret before the on-chain reveal
	VoteRevealEndpoint = "/votes/reveal"
)
