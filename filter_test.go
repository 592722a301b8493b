// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jcell"
)

func TestRenameKeys(t *testing.T) {
	var buf strings.Builder
	v := jcell.RenameKeys(jcell.NewEncoder(&buf), map[string]string{"a": "x", "y": "a"})

	p := jcell.NewParser(nil)
	p.Update([]byte(`{"a": {"a": 1, "b": 2}, "y": ["a"]}`))
	if err := p.FinishParse(v); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := buf.String(), `{"x":{"x":1,"b":2},"a":["a"]}`; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
}

// plain is a Visitor that implements none of the optional interfaces.
type plain struct{ rec *recorder }

func (p plain) BeginObject(tag jcell.Tag, loc jcell.Pos) error { return p.rec.BeginObject(tag, loc) }
func (p plain) EndObject(loc jcell.Pos) error                  { return p.rec.EndObject(loc) }
func (p plain) BeginArray(tag jcell.Tag, loc jcell.Pos) error  { return p.rec.BeginArray(tag, loc) }
func (p plain) EndArray(loc jcell.Pos) error                   { return p.rec.EndArray(loc) }
func (p plain) Key(name []byte, loc jcell.Pos) error           { return p.rec.Key(name, loc) }
func (p plain) String(s []byte, tag jcell.Tag, loc jcell.Pos) error {
	return p.rec.String(s, tag, loc)
}
func (p plain) ByteString(d []byte, tag jcell.Tag, loc jcell.Pos) error {
	return p.rec.ByteString(d, tag, loc)
}
func (p plain) Int64(v int64, tag jcell.Tag, loc jcell.Pos) error   { return p.rec.Int64(v, tag, loc) }
func (p plain) Uint64(v uint64, tag jcell.Tag, loc jcell.Pos) error { return p.rec.Uint64(v, tag, loc) }
func (p plain) Double(v float64, tag jcell.Tag, loc jcell.Pos) error {
	return p.rec.Double(v, tag, loc)
}
func (p plain) Bool(v bool, loc jcell.Pos) error        { return p.rec.Bool(v, loc) }
func (p plain) Null(tag jcell.Tag, loc jcell.Pos) error { return p.rec.Null(tag, loc) }

type flushCounter struct {
	jcell.Filter
	n int
}

func (f *flushCounter) Flush() error { f.n++; return f.Filter.Flush() }

func TestFilter(t *testing.T) {
	t.Run("Half", func(t *testing.T) {
		rec := new(recorder)
		f := jcell.Filter{Visitor: plain{rec}}
		if err := f.Half(0x3c00, jcell.TagNone, jcell.Pos{}); err != nil {
			t.Fatalf("Half: %v", err)
		}
		if got, want := rec.output(), "double 1\n"; got != want {
			t.Errorf("Half: got %q, want %q", got, want)
		}
	})

	t.Run("Comment", func(t *testing.T) {
		rec := new(recorder)
		p := jcell.NewParser(&jcell.Options{AllowComments: true})
		p.Update([]byte("/* x */ 1"))
		if err := p.FinishParse(jcell.Filter{Visitor: rec}); err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if diff := diffStrings("comment \"/* x */\"\nuint64 1", rec.output()); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}

		// Comments are dropped when the wrapped visitor does not want them.
		rec = new(recorder)
		p.Reinitialize()
		p.Update([]byte("/* x */ 1"))
		if err := p.FinishParse(jcell.Filter{Visitor: plain{rec}}); err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if diff := diffStrings("uint64 1", rec.output()); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Flush", func(t *testing.T) {
		fc := &flushCounter{Filter: jcell.Filter{Visitor: new(recorder)}}
		st := jcell.NewStream(strings.NewReader(`1 [2] {"3":3}`), nil)
		for st.ParseOne(fc) == nil {
		}
		if fc.n != 3 {
			t.Errorf("Got %d flushes, want 3", fc.n)
		}
	})
}
