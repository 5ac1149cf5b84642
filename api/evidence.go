package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/solsafe/solsafe/crypto/merkle"
	"github.com/solsafe/solsafe/log"
	"github.com/solsafe/solsafe/storage"
	"github.com/solsafe/solsafe/types"
)

// newEvidence commits to an ordered evidence set and stores the bundle
// POST /evidence
func (a *API) newEvidence(w http.ResponseWriter, r *http.Request) {
	req := &NewEvidence{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	if len(req.Items) == 0 {
		ErrEmptyEvidenceSet.Write(w)
		return
	}
	if len(req.Items) > types.MaxEvidenceItems {
		ErrEvidenceTooLarge.Withf("%d items, maximum is %d", len(req.Items), types.MaxEvidenceItems).Write(w)
		return
	}
	items := make([][]byte, len(req.Items))
	for i, item := range req.Items {
		if len(item.Data) == 0 {
			ErrMalformedBody.Withf("item %d has no data", i).Write(w)
			return
		}
		if len(item.Data) > types.MaxEvidenceItemSize {
			ErrEvidenceTooLarge.Withf("item %d exceeds %d bytes", i, types.MaxEvidenceItemSize).Write(w)
			return
		}
		items[i] = item.Data
	}
	com, err := merkle.Commit(items)
	if err != nil {
		ErrGenericInternalServerError.Withf("could not build commitment: %v", err).Write(w)
		return
	}
	bundle := &types.EvidenceBundle{
		CaseID:          req.CaseID,
		ReportedAddress: req.ReportedAddress,
		Root:            com.Root,
		Items:           make([]types.EvidenceDescriptor, len(req.Items)),
	}
	for i, item := range req.Items {
		bundle.Items[i] = types.EvidenceDescriptor{
			Name:      item.Name,
			MediaType: item.MediaType,
			Size:      int64(len(item.Data)),
			URI:       item.URI,
			Index:     uint64(i),
			Siblings:  com.Proofs[i].Siblings,
		}
	}
	key, err := a.storage.SetBundle(bundle)
	if err != nil {
		ErrGenericInternalServerError.Withf("could not store bundle: %v", err).Write(w)
		return
	}
	log.Infow("evidence bundle committed",
		"caseId", req.CaseID, "items", len(items), "root", com.Root.String(), "bundleId", key)
	httpWriteJSON(w, &NewEvidenceResponse{BundleID: key, Bundle: bundle})
}

// evidenceBundle retrieves a stored evidence bundle
// GET /evidence/{bundleId}
func (a *API) evidenceBundle(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, BundleURLParam)
	bundle, err := a.storage.Bundle(key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			ErrBundleNotFound.Write(w)
		case errors.Is(err, storage.ErrStorage):
			ErrGenericInternalServerError.WithErr(err).Write(w)
		default:
			ErrMalformedBundleID.WithErr(err).Write(w)
		}
		return
	}
	httpWriteJSON(w, bundle)
}

// verifyEvidence checks one evidence item against an anchored root
// POST /evidence/verify
func (a *API) verifyEvidence(w http.ResponseWriter, r *http.Request) {
	req := &VerifyEvidence{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	valid := merkle.VerifyProof(req.Item, req.Root, &req.Proof)
	httpWriteJSON(w, &VerifyEvidenceResponse{Valid: valid})
}
