package storage

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/solsafe/solsafe/types"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/prefixeddb"
)

// SetBundle stores an evidence bundle and returns its key: the first 12
// bytes of the sha256 of the canonical encoding, hex encoded. The same
// bundle always maps to the same key, so re-uploading is a no-op
// overwrite.
func (s *Storage) SetBundle(bundle *types.EvidenceBundle) (string, error) {
	data, err := encodeArtifact(bundle)
	if err != nil {
		return "", err
	}
	key := hashKey(data)
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), bundlePrefix)
	if err := wTx.Set(key, data); err != nil {
		wTx.Discard()
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := wTx.Commit(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return hex.EncodeToString(key), nil
}

// Bundle retrieves an evidence bundle by the key returned from SetBundle.
// It returns ErrNotFound if no bundle exists under the key.
func (s *Storage) Bundle(key string) (*types.EvidenceBundle, error) {
	bkey, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("malformed bundle key: %w", err)
	}
	rTx := prefixeddb.NewPrefixedReader(s.db, bundlePrefix)
	data, err := rTx.Get(bkey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	bundle := &types.EvidenceBundle{}
	if err := decodeArtifact(data, bundle); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return bundle, nil
}
