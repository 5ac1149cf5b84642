package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHexBytesSetString(t *testing.T) {
	c := qt.New(t)

	var b HexBytes
	c.Assert(b.SetString("deadbeef"), qt.IsNil)
	c.Assert([]byte(b), qt.DeepEquals, []byte{0xde, 0xad, 0xbe, 0xef})

	c.Assert(b.SetString("0xdeadbeef"), qt.IsNil)
	c.Assert([]byte(b), qt.DeepEquals, []byte{0xde, 0xad, 0xbe, 0xef})

	c.Assert(b.SetString("0Xdeadbeef"), qt.IsNil)
	c.Assert([]byte(b), qt.DeepEquals, []byte{0xde, 0xad, 0xbe, 0xef})

	c.Assert(b.SetString("not-hex"), qt.IsNotNil)
}

func TestHexBytesJSON(t *testing.T) {
	c := qt.New(t)

	b := HexBytes{0x01, 0x02, 0xff}
	enc, err := b.MarshalJSON()
	c.Assert(err, qt.IsNil)
	c.Assert(string(enc), qt.Equals, `"0102ff"`)

	var dec HexBytes
	c.Assert(dec.UnmarshalJSON([]byte(`"0x0102ff"`)), qt.IsNil)
	c.Assert(dec, qt.DeepEquals, b)
}
