// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bytes"
	"strings"

	"github.com/creachadair/jcell"
)

// JSON renders v as compact JSON text. See jcell.Encoder for the treatment
// of tagged strings, byte strings and non-finite numbers.
func (v Value) JSON() string {
	var buf strings.Builder
	if err := Walk(v, jcell.NewEncoder(&buf)); err != nil {
		panic(err) // writes to a strings.Builder do not fail
	}
	return buf.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := Walk(v, jcell.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Objects are kept
// in insertion order.
func (v *Value) UnmarshalJSON(data []byte) error {
	d := NewDecoder(Insertion)
	p := jcell.NewParser(nil)
	p.Update(data)
	if err := p.FinishParse(d); err != nil {
		return err
	}
	*v = d.Value()
	return nil
}
