// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcell_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jcell"
	"github.com/google/go-cmp/cmp"
)

func TestStream(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"true", "bool true"},
		{"  null\n", "null"},

		{`[0, 5, -6.32, 0.1e-2]`, `
[
uint64 0
uint64 5
double -6.32
double 0.001
]`},

		{`["", "a b c", "a\tb", "a b"]`, `
[
string ""
string "a b c"
string "a\tb"
string "a b"
]`},

		{`{}`, "{\n}"},

		{`{"a":15}`, `
{
key "a"
uint64 15
}`},

		{`{"x":null, "y":[true]}`, `
{
key "x"
null
key "y"
[
bool true
]
}`},

		{`[18446744073709551616, -9223372036854775809, 9223372036854775808]`, `
[
string(bigint) "18446744073709551616"
string(bigint) "-9223372036854775809"
uint64 9223372036854775808
]`},

		{`[]`, "[\n]"},
		{`12345`, "uint64 12345"},
	}

	for _, test := range tests {
		for _, size := range []int{1, 2, 3, jcell.DefaultChunkSize} {
			st := jcell.NewStream(strings.NewReader(test.input), nil)
			st.SetChunkSize(size)
			rec := new(recorder)
			if err := st.Parse(rec); err != nil {
				t.Errorf("Parse %#q (chunk %d) failed: %v", test.input, size, err)
			}

			if diff := diffStrings(test.want, rec.output()); diff != "" {
				t.Errorf("Input: %#q (chunk %d)\nOutput: (-want, +got)\n%s", test.input, size, diff)
			}
		}
	}
}

func TestStreamErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
		estr  string
	}{
		// Various kinds of unbalanced object bits.
		{`{`, `{`,
			`at 1:2: unexpected end of input: incomplete value`},
		{`}`, ``, `at 1:1: invalid syntax: unexpected '}'`},
		{`{false:1}`, `{`,
			`at 1:2: invalid syntax: expected member name, got 'f'`},
		{`{"true":}`, `
{
key "true"`,
			`at 1:9: invalid syntax: unexpected '}'`},
		{`{"true":1,`, `
{
key "true"
uint64 1`,
			`at 1:11: unexpected end of input: incomplete value`},

		// Unbalanced array bits.
		{`[`, `[`,
			`at 1:2: unexpected end of input: incomplete value`},
		{`]`, ``, `at 1:1: invalid syntax: unexpected ']'`},
		{`[15,]`, `
[
uint64 15`,
			`at 1:5: invalid syntax: trailing comma before "]"`},

		// Invalid values.
		{`1 2`, `uint64 1`,
			`at 1:3: extra characters after document: unexpected '2'`},
		{`"what did you`, ``,
			`at 1:1: unexpected end of input: unterminated string`},
		{"[1,\n 2,\n x]", `
[
uint64 1
uint64 2`,
			`at 3:2: invalid syntax: expected value, got 'x'`},
		{``, ``, `at 1:1: unexpected end of input: no value in input`},
	}

	for _, test := range tests {
		st := jcell.NewStream(strings.NewReader(test.input), nil)
		rec := new(recorder)
		err := st.Parse(rec)
		if err == nil {
			t.Error("Parse did not report an error")
			continue
		}

		if diff := diffStrings(test.want, rec.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		if diff := diffStrings(test.estr, err.Error()); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseOne(t *testing.T) {
	const input = `{ "love": true } [] "ok" 5`
	const want = `
{
key "love"
bool true
}
---
[
]
---
string "ok"
---
uint64 5
---`
	for _, size := range []int{1, 7, jcell.DefaultChunkSize} {
		rec := new(recorder)
		st := jcell.NewStream(strings.NewReader(input), nil)
		st.SetChunkSize(size)
		for {
			err := st.ParseOne(rec)
			if err == io.EOF {
				break
			} else if err != nil {
				t.Fatalf("ParseOne failed: %v", err)
			}
			rec.pr(jcell.Pos{}, "---")
		}

		if diff := diffStrings(want, rec.output()); diff != "" {
			t.Errorf("Input: %#q (chunk %d)\nOutput: (-want, +got)\n%s", input, size, diff)
		}
	}
}

func TestStreamComments(t *testing.T) {
	const input = "[1, // one\n 2 /* two */,]"
	st := jcell.NewStream(strings.NewReader(input), nil)
	st.AllowComments(true)
	st.AllowTrailingCommas(true)
	rec := new(recorder)
	if err := st.Parse(rec); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	const want = `
[
uint64 1
comment "// one\n"
uint64 2
comment "/* two */"
]`
	if diff := diffStrings(want, rec.output()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

// recorder is a jcell.Visitor that records a line of text for each event.
type recorder struct {
	buf bytes.Buffer

	pos       bool  // prefix each line with the event position
	stopEvery int   // if > 0, return ErrStop after every stopEvery events
	failAfter int   // if > 0, fail on event number failAfter
	err       error // the error to report with failAfter
	n         int   // events recorded
}

func (r *recorder) pr(loc jcell.Pos, msg string, args ...any) error {
	if r.pos && loc.IsValid() {
		fmt.Fprintf(&r.buf, "%v ", loc)
	}
	fmt.Fprintf(&r.buf, msg, args...)
	r.buf.WriteByte('\n')
	r.n++
	if r.failAfter > 0 && r.n == r.failAfter {
		return r.err
	}
	if r.stopEvery > 0 && r.n%r.stopEvery == 0 {
		return jcell.ErrStop
	}
	return nil
}

func (r *recorder) output() string { return r.buf.String() }

func tagged(name string, tag jcell.Tag) string {
	if tag == jcell.TagNone {
		return name
	}
	return name + "(" + tag.String() + ")"
}

func (r *recorder) BeginObject(tag jcell.Tag, loc jcell.Pos) error { return r.pr(loc, "%s", tagged("{", tag)) }
func (r *recorder) EndObject(loc jcell.Pos) error                  { return r.pr(loc, "}") }
func (r *recorder) BeginArray(tag jcell.Tag, loc jcell.Pos) error { return r.pr(loc, "%s", tagged("[", tag)) }
func (r *recorder) EndArray(loc jcell.Pos) error                  { return r.pr(loc, "]") }

func (r *recorder) Key(name []byte, loc jcell.Pos) error { return r.pr(loc, "key %q", name) }

func (r *recorder) String(text []byte, tag jcell.Tag, loc jcell.Pos) error {
	return r.pr(loc, "%s %q", tagged("string", tag), text)
}

func (r *recorder) ByteString(data []byte, tag jcell.Tag, loc jcell.Pos) error {
	return r.pr(loc, "%s %x", tagged("bytes", tag), data)
}

func (r *recorder) Int64(v int64, tag jcell.Tag, loc jcell.Pos) error {
	return r.pr(loc, "%s %d", tagged("int64", tag), v)
}

func (r *recorder) Uint64(v uint64, tag jcell.Tag, loc jcell.Pos) error {
	return r.pr(loc, "%s %d", tagged("uint64", tag), v)
}

func (r *recorder) Double(v float64, tag jcell.Tag, loc jcell.Pos) error {
	return r.pr(loc, "%s %v", tagged("double", tag), v)
}

func (r *recorder) Bool(v bool, loc jcell.Pos) error { return r.pr(loc, "bool %v", v) }

func (r *recorder) Null(tag jcell.Tag, loc jcell.Pos) error { return r.pr(loc, "%s", tagged("null", tag)) }

func (r *recorder) Comment(text []byte, loc jcell.Pos) error { return r.pr(loc, "comment %q", text) }
