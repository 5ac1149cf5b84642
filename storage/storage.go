// Package storage holds the off-chain artifacts of the dispute protocol
// in a prefixed key-value store: the jurors' vote commitment secrets kept
// between the commit and reveal phases, and the evidence bundle metadata
// objects referenced from external content storage. The following
// prefixes are used:
//   - 'vc/' for vote commitment envelopes, keyed by case ID
//   - 'eb/' for evidence bundles, keyed by content hash
//
// Vote commitment entries are wrapped in a checksummed envelope so that
// on-disk corruption is detected at load time instead of producing a
// wrong reveal. Losing an entry is not consensus critical: it only
// prevents that juror from revealing.
package storage

import (
	"fmt"
	"sync"

	"go.vocdoni.io/dvote/db"
)

var (
	// Prefixes for the keys in the database.
	commitmentPrefix = []byte("vc/")
	bundlePrefix     = []byte("eb/")
)

const (
	// maxKeySize is the number of bytes of the content hash used as the
	// key of stored evidence bundles.
	maxKeySize = 12
)

// The three failure modes of the store are distinct and must not be
// conflated: only ErrIntegrity indicates possible tampering.
var (
	// ErrNotFound is returned when the requested key is absent. This is a
	// normal outcome, e.g. a juror that has not committed for a case yet.
	ErrNotFound = fmt.Errorf("not found")
	// ErrIntegrity is returned when a stored envelope fails its checksum.
	// The entry is unusable and the caller must warn the juror that the
	// vote secret may be lost or tampered with.
	ErrIntegrity = fmt.Errorf("integrity check failed")
	// ErrStorage wraps failures of the underlying storage medium. It is
	// never retried internally; retrying is the caller's decision.
	ErrStorage = fmt.Errorf("storage medium error")
)

// Storage persists protocol artifacts in a prefixed key-value database,
// wrapping each record in a checksummed envelope.
type Storage struct {
	db db.Database
	// commitmentLock serializes writes to the commitment prefix; the key
	// space is advisory-single-writer and a race between two saves to the
	// same case would otherwise resolve in an unspecified order.
	commitmentLock sync.Mutex
}

// New creates a new Storage instance.
func New(db db.Database) *Storage {
	return &Storage{db: db}
}

// Close closes the storage.
func (s *Storage) Close() {
	s.db.Close()
}
