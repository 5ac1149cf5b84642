//nolint:lll
package api

import (
	"fmt"
	"net/http"
)

// The custom Error type satisfies the error interface.
// Error() returns a human-readable description of the error.
//
// Error codes in the 40001-49999 range are the user's fault,
// and they return HTTP Status 400 or 404 (or even 204), whatever is most appropriate.
//
// Error codes 50001-59999 are the server's fault
// and they return HTTP Status 500 or 503, or something else if appropriate.
//
// NEVER change any of the current error codes, only append new errors after the current last 4XXX or 5XXX.
// If a code is ever retired, do not reuse it.
var (
	ErrResourceNotFound   = Error{Code: 40001, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("resource not found")}
	ErrMalformedBody      = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed JSON body")}
	ErrEmptyEvidenceSet   = Error{Code: 40003, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("evidence set is empty")}
	ErrEvidenceTooLarge   = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("evidence set too large")}
	ErrMalformedBundleID  = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed bundle ID")}
	ErrBundleNotFound     = Error{Code: 40006, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("bundle not found")}
	ErrMalformedSalt      = Error{Code: 40007, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed salt")}
	ErrNoVoteCommitment   = Error{Code: 40008, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("no vote commitment for case")}

	ErrMarshalingServerJSONFailed = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("marshaling (server-side) JSON failed")}
	ErrGenericInternalServerError = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("internal server error")}
	ErrVoteCommitmentCorrupted    = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("stored vote commitment failed integrity check")}
)
