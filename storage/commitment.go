package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/solsafe/solsafe/crypto/hash"
	"github.com/solsafe/solsafe/log"
	"github.com/solsafe/solsafe/types"
	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/prefixeddb"
)

// envelope wraps a persisted vote commitment for tamper detection. The
// checksum covers the deterministic encoding of the payload and uses the
// protocol hash primitive under its own domain tag; it detects corruption
// but is no defense against an attacker who can also rewrite the
// checksum. An envelope is always written as one atomic unit and fully
// overwritten on every save, never partially updated.
type envelope struct {
	Payload   []byte    `json:"serializedPayload" cbor:"0,keyasint"`
	Checksum  []byte    `json:"checksum"          cbor:"1,keyasint"`
	WrittenAt time.Time `json:"writtenAt"         cbor:"2,keyasint"`
}

// caseKey encodes a case ID into its store key, one entry per case.
func caseKey(caseID uint64) []byte {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, caseID)
	return key
}

// SetVoteCommitment persists a juror's vote commitment secret under its
// case ID, unconditionally overwriting any prior entry for that case.
func (s *Storage) SetVoteCommitment(vc *types.VoteCommitment) error {
	if err := vc.Validate(); err != nil {
		return fmt.Errorf("invalid vote commitment: %w", err)
	}
	payload, err := encodeArtifact(vc)
	if err != nil {
		return err
	}
	data, err := encodeArtifact(&envelope{
		Payload:   payload,
		Checksum:  hash.Sum(hash.TagChecksum, payload),
		WrittenAt: time.Now(),
	})
	if err != nil {
		return err
	}

	s.commitmentLock.Lock()
	defer s.commitmentLock.Unlock()
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), commitmentPrefix)
	if err := wTx.Set(caseKey(vc.CaseID), data); err != nil {
		wTx.Discard()
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := wTx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// VoteCommitment loads the vote commitment secret stored for a case. It
// returns ErrNotFound if the juror has no entry for the case and
// ErrIntegrity if the stored envelope fails its checksum. A corrupted
// entry is deleted on read, so a subsequent load reports ErrNotFound
// rather than failing integrity forever; the juror is warned on the first
// load either way.
func (s *Storage) VoteCommitment(caseID uint64) (*types.VoteCommitment, error) {
	rTx := prefixeddb.NewPrefixedReader(s.db, commitmentPrefix)
	data, err := rTx.Get(caseKey(caseID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	env := &envelope{}
	if err := decodeArtifact(data, env); err != nil {
		s.dropCorrupted(caseID)
		return nil, fmt.Errorf("%w: undecodable envelope: %v", ErrIntegrity, err)
	}
	if !bytes.Equal(env.Checksum, hash.Sum(hash.TagChecksum, env.Payload)) {
		s.dropCorrupted(caseID)
		return nil, fmt.Errorf("%w: checksum mismatch for case %d", ErrIntegrity, caseID)
	}
	vc := &types.VoteCommitment{}
	if err := decodeArtifact(env.Payload, vc); err != nil {
		s.dropCorrupted(caseID)
		return nil, fmt.Errorf("%w: undecodable payload: %v", ErrIntegrity, err)
	}
	if err := vc.Validate(); err != nil {
		s.dropCorrupted(caseID)
		return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return vc, nil
}

// RemoveVoteCommitment deletes the entry for a case. It is idempotent:
// removing an absent entry is not an error.
func (s *Storage) RemoveVoteCommitment(caseID uint64) error {
	s.commitmentLock.Lock()
	defer s.commitmentLock.Unlock()
	wTx := prefixeddb.NewPrefixedWriteTx(s.db.WriteTx(), commitmentPrefix)
	if err := wTx.Delete(caseKey(caseID)); err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		wTx.Discard()
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := wTx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (s *Storage) dropCorrupted(caseID uint64) {
	if err := s.RemoveVoteCommitment(caseID); err != nil {
		log.Warnw("could not delete corrupted vote commitment",
			"caseId", caseID, "err", err)
	}
}
