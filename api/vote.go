package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solsafe/solsafe/crypto/hash"
	"github.com/solsafe/solsafe/crypto/votecommit"
	"github.com/solsafe/solsafe/log"
	"github.com/solsafe/solsafe/storage"
)

// newVote generates a vote commitment for a case and persists the secret
// POST /votes
func (a *API) newVote(w http.ResponseWriter, r *http.Request) {
	req := &NewVote{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	var salt []byte
	if len(req.Salt) > 0 {
		if len(req.Salt) != hash.SaltSize {
			ErrMalformedSalt.Withf("got %d bytes, expected %d", len(req.Salt), hash.SaltSize).Write(w)
			return
		}
		salt = req.Salt
	}
	vc, err := votecommit.New(req.CaseID, req.Vote, salt)
	if err != nil {
		ErrGenericInternalServerError.Withf("could not generate commitment: %v", err).Write(w)
		return
	}
	// the secret must survive until the reveal phase; only the public
	// pair leaves this handler
	if err := a.storage.SetVoteCommitment(vc); err != nil {
		ErrGenericInternalServerError.Withf("could not persist commitment: %v", err).Write(w)
		return
	}
	log.Infow("vote committed",
		"caseId", vc.CaseID, "nullifier", vc.Nullifier.String())
	httpWriteJSON(w, &NewVoteResponse{
		CaseID:     vc.CaseID,
		Commitment: vc.Commitment,
		Nullifier:  vc.Nullifier,
	})
}

// revealVote retrieves the vote secret for a case, self-checks it against
// the stored commitment and consumes the entry
// POST /votes/reveal
func (a *API) revealVote(w http.ResponseWriter, r *http.Request) {
	req := &RevealVote{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	vc, err := a.storage.VoteCommitment(req.CaseID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			ErrNoVoteCommitment.Withf("case %d", req.CaseID).Write(w)
		case errors.Is(err, storage.ErrIntegrity):
			// the juror must be warned: the vote secret may be lost or
			// tampered with, and the reveal cannot proceed from here
			ErrVoteCommitmentCorrupted.Withf("case %d", req.CaseID).Write(w)
		default:
			ErrGenericInternalServerError.Withf("could not load commitment: %v", err).Write(w)
		}
		return
	}
	if !votecommit.VerifyReveal(vc.Commitment, vc.Vote, vc.Salt) {
		ErrVoteCommitmentCorrupted.Withf("case %d: reveal recomputation mismatch", req.CaseID).Write(w)
		return
	}
	if err := a.storage.RemoveVoteCommitment(req.CaseID); err != nil {
		ErrGenericInternalServerError.Withf("could not consume commitment: %v", err).Write(w)
		return
	}
	log.Infow("vote reveal released", "caseId", vc.CaseID)
	httpWriteJSON(w, &RevealVoteResponse{
		CaseID:     vc.CaseID,
		Vote:       vc.Vote,
		Salt:       vc.Salt,
		Commitment: vc.Commitment,
		Nullifier:  vc.Nullifier,
	})
}
