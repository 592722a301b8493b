// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell_test

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jcell"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

// encode parses input with opts and returns its compact encoding.
func encode(t *testing.T, opts *jcell.Options, input string) string {
	t.Helper()
	var buf strings.Builder
	p := jcell.NewParser(opts)
	p.Update([]byte(input))
	if err := p.FinishParse(jcell.NewEncoder(&buf)); err != nil {
		t.Fatalf("Parse %#q: %v", input, err)
	}
	return buf.String()
}

func TestEncoder(t *testing.T) {
	tests := []struct {
		opts        *jcell.Options
		input, want string
	}{
		{nil, `null`, `null`},
		{nil, ` [ ] `, `[]`},
		{nil, `{"a": [1, -2, 3.5, true, null, "x\ny"], "b": {}}`,
			`{"a":[1,-2,3.5,true,null,"x\ny"],"b":{}}`},
		{nil, `[1E2, 0.5e-7, -0.0]`, `[100.0,5e-8,-0.0]`},
		{nil, `[18446744073709551616, -9223372036854775809]`,
			`[18446744073709551616,-9223372036854775809]`},
		{&jcell.Options{LosslessNumbers: true}, `[1.10, 2e5]`, `[1.10,2e5]`},
		{&jcell.Options{AllowNaNInf: true}, `[NaN, -Infinity]`, `[null,null]`},
		{nil, `"\u0000\u001f\u2028/\""`, `"\u0000\u001f\u2028/\""`},
		{nil, `{"k":{"k":{"k":[[]]}}}`, `{"k":{"k":{"k":[[]]}}}`},
	}
	for _, tc := range tests {
		if got := encode(t, tc.opts, tc.input); got != tc.want {
			t.Errorf("Encode %#q: got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestEncoderDocuments(t *testing.T) {
	var buf strings.Builder
	enc := jcell.NewEncoder(&buf)
	st := jcell.NewStream(strings.NewReader(`{"a" : 1}  [2, 3] "four"`), nil)
	for {
		err := st.ParseOne(enc)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("ParseOne: %v", err)
		}
	}
	if got, want := buf.String(), "{\"a\":1}\n[2,3]\n\"four\""; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
}

func TestEncoderEvents(t *testing.T) {
	var buf strings.Builder
	enc := jcell.NewEncoder(&buf)
	var none jcell.Pos
	check := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("Encoder: unexpected error: %v", err)
		}
	}
	data := []byte{0xfb, 0xff}
	check(enc.BeginArray(jcell.TagNone, none))
	check(enc.ByteString(data, jcell.TagNone, none))
	check(enc.ByteString(data, jcell.TagBase64, none))
	check(enc.ByteString(data, jcell.TagBase16, none))
	check(enc.Half(0x3c00, jcell.TagNone, none))
	check(enc.Double(math.Inf(1), jcell.TagNone, none))
	check(enc.Int64(math.MinInt64, jcell.TagNone, none))
	check(enc.Uint64(math.MaxUint64, jcell.TagNone, none))
	check(enc.String([]byte("12x"), jcell.TagBigInt, none))
	check(enc.String([]byte("-1.5e3"), jcell.TagBigDec, none))
	check(enc.Null(jcell.TagUndefined, none))
	check(enc.EndArray(none))

	const want = `["-_8","+/8=","fbff",1.0,null,-9223372036854775808,18446744073709551615,"12x",-1.5e3,null]`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestEncoderWriteError(t *testing.T) {
	bad := errors.New("write failed")
	p := jcell.NewParser(nil)
	p.Update([]byte(`[1, 2]`))
	if err := p.FinishParse(jcell.NewEncoder(failWriter{bad})); err != bad {
		t.Errorf("Parse: got %v, want %v", err, bad)
	}
}

// Check that accepting comments and trailing commas agrees with the
// standardization of the same input by hujson.
func TestHuJSONCompat(t *testing.T) {
	inputs := []string{
		`{ /* c */ "a": [1, 2,], // end
		  "b": "x", }`,
		`[ // leading
		  {"k": null,},
		  /* trailing */ ]`,
		`// only a comment before
		true`,
	}
	opts := &jcell.Options{AllowComments: true, AllowTrailingCommas: true}
	for _, in := range inputs {
		std, err := hujson.Standardize([]byte(in))
		if err != nil {
			t.Fatalf("Standardize %#q: %v", in, err)
		}
		got := encode(t, opts, in)
		want := encode(t, nil, string(std))
		if got != want {
			t.Errorf("Input %#q:\ngot  %#q\nwant %#q", in, got, want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\tb\n", `"a\tb\n"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{`"\`, `"\"\\"`},
		{"caf\u00e9", "\"caf\u00e9\""},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"\xff", `"\ufffd"`},
	}
	for _, tc := range tests {
		got := jcell.Quote(tc.input)
		if got != tc.want {
			t.Errorf("Quote(%q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
		ok          bool
	}{
		{`""`, "", true},
		{`"a\tb"`, "a\tb", true},
		{`"\u00e9\/"`, "\u00e9/", true},
		{`"\ud83d\ude00"`, "\U0001F600", true},
		{`"\ud83d"`, "\ufffd", true},
		{`"\q"`, "\ufffd", true},
		{`"\u12"`, "", false},
		{`"\`, "", false},
		{`abc`, "", false},
	}
	for _, tc := range tests {
		got, err := jcell.Unquote(tc.input)
		if !tc.ok {
			if err == nil {
				t.Errorf("Unquote(%#q): got %q, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
		} else if string(got) != tc.want {
			t.Errorf("Unquote(%#q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}
