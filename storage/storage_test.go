package storage

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"
	"github.com/solsafe/solsafe/crypto/merkle"
	"github.com/solsafe/solsafe/types"
	"go.vocdoni.io/dvote/db/metadb"
)

func TestBundle(t *testing.T) {
	c := qt.New(t)

	stg := New(metadb.NewTest(t))

	com, err := merkle.Commit([][]byte{[]byte("evidence-a"), []byte("evidence-b")})
	c.Assert(err, qt.IsNil)

	bundle := &types.EvidenceBundle{
		CaseID:          7,
		ReportedAddress: common.HexToAddress("0x00000000000000000000000000000000deadbeef"),
		Root:            com.Root,
		Items: []types.EvidenceDescriptor{
			{
				Name:      "screenshot.png",
				MediaType: "image/png",
				Size:      1024,
				URI:       "ipfs://bafytest",
				Index:     0,
				Siblings:  com.Proofs[0].Siblings,
			},
			{
				Name:      "report.txt",
				MediaType: "text/plain",
				Size:      42,
				URI:       "ipfs://bafytest2",
				Index:     1,
				Siblings:  com.Proofs[1].Siblings,
			},
		},
	}

	key, err := stg.SetBundle(bundle)
	c.Assert(err, qt.IsNil)
	c.Assert(key, qt.HasLen, maxKeySize*2)

	loaded, err := stg.Bundle(key)
	c.Assert(err, qt.IsNil)
	c.Assert(loaded.CaseID, qt.Equals, bundle.CaseID)
	c.Assert(loaded.Root, qt.DeepEquals, bundle.Root)
	c.Assert(loaded.Items, qt.HasLen, 2)
	c.Assert(loaded.Items[1].Name, qt.Equals, "report.txt")

	// content addressing: the same bundle maps to the same key
	key2, err := stg.SetBundle(bundle)
	c.Assert(err, qt.IsNil)
	c.Assert(key2, qt.Equals, key)

	_, err = stg.Bundle("ffffffffffffffffffffffff")
	c.Assert(err, qt.ErrorIs, ErrNotFound)

	_, err = stg.Bundle("not-hex")
	c.Assert(err, qt.IsNotNil)
}
