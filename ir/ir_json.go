package ir

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// The JSON bridge maps atoms to strings and lists to arrays. Atoms
// holding invalid UTF-8 cannot round-trip through a JSON string, so
// they are wrapped as {"hex": "..."} objects.

type hexAtom struct {
	Hex string `json:"hex"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Type {
	case AtomType:
		if utf8.Valid(n.Bytes) {
			return json.Marshal(string(n.Bytes))
		}
		return json.Marshal(&hexAtom{Hex: hex.EncodeToString(n.Bytes)})
	case ListType:
		if n.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(n.Values)
	}
	return nil, fmt.Errorf("cannot marshal node type %s", n.Type)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return fmt.Errorf("cannot unmarshal empty input into expression")
	}
	switch d[0] {
	case '"':
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return err
		}
		n.Type = AtomType
		n.Bytes = []byte(s)
		n.Values = nil
		return nil
	case '[':
		var vs []*Node
		if err := json.Unmarshal(d, &vs); err != nil {
			return err
		}
		n.Type = ListType
		n.Bytes = nil
		n.Values = vs
		return nil
	case '{':
		var ha hexAtom
		if err := json.Unmarshal(d, &ha); err != nil {
			return err
		}
		b, err := hex.DecodeString(ha.Hex)
		if err != nil {
			return fmt.Errorf("bad hex atom: %w", err)
		}
		n.Type = AtomType
		n.Bytes = b
		n.Values = nil
		return nil
	}
	return fmt.Errorf("cannot unmarshal %q into expression", d)
}
