// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcell

import (
	"errors"
	"io"
)

// DefaultChunkSize is the size of the reads a Stream makes from its input.
const DefaultChunkSize = 4096

// Stream is a stream parser that consumes input from an io.Reader in
// fixed-size chunks, and delivers events to a Visitor corresponding with the
// structure of the input.
type Stream struct {
	r   io.Reader
	p   *Parser
	buf []byte
	eof bool
}

// NewStream constructs a new Stream that consumes input from r. If opts ==
// nil, the stream accepts strict JSON.
func NewStream(r io.Reader, opts *Options) *Stream {
	return &Stream{r: r, p: NewParser(opts), buf: make([]byte, DefaultChunkSize)}
}

// AllowComments configures the parser associated with s to accept (true) or
// reject (false) comments.
func (s *Stream) AllowComments(ok bool) { s.p.opts.AllowComments = ok }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (s *Stream) AllowTrailingCommas(ok bool) { s.p.opts.AllowTrailingCommas = ok }

// SetChunkSize sets the size of the reads s makes from its input. It has no
// effect if n <= 0. Call it before parsing begins.
func (s *Stream) SetChunkSize(n int) {
	if n > 0 {
		s.buf = make([]byte, n)
	}
}

// Pos reports the position of the next unconsumed byte of the input.
func (s *Stream) Pos() Pos { return s.p.Pos() }

// Parse parses a single document from the input and delivers events to v
// until either an error occurs or the input is exhausted. Anything other than
// whitespace after the document is an error. In case of a syntax error, the
// returned error has type [*SyntaxError].
func (s *Stream) Parse(v Visitor) error {
	s.p.opts.Trailing = RejectTrailing
	for {
		if err := s.fill(); err != nil {
			return err
		}
		if s.eof && s.p.SourceExhausted() {
			return s.p.FinishParse(v)
		}
		if err := s.p.ParseSome(v); err != nil {
			return err
		}
	}
}

// ParseOne parses a single document from the front of the input and delivers
// events to v until the document is complete or an error occurs. Calling
// ParseOne repeatedly consumes a sequence of concatenated documents. If no
// further document is available from the input, ParseOne returns io.EOF. In
// case of a syntax error, the returned error has type [*SyntaxError].
func (s *Stream) ParseOne(v Visitor) error {
	s.p.opts.Trailing = StopAtDocument
	if s.p.Done() {
		s.p.Reset()
	}
	for !s.p.Done() {
		if err := s.fill(); err != nil {
			return err
		}
		if s.eof && s.p.SourceExhausted() {
			if s.p.state == stRoot || s.p.state == stBOM {
				return io.EOF
			}
			return s.p.FinishParse(v)
		}
		if err := s.p.ParseSome(v); err != nil {
			return err
		}
	}
	return nil
}

// fill reads the next chunk of input, if the parser has consumed the last.
func (s *Stream) fill() error {
	if s.eof || !s.p.SourceExhausted() {
		return nil
	}
	n, err := s.r.Read(s.buf)
	if n > 0 {
		s.p.Update(s.buf[:n])
	}
	if errors.Is(err, io.EOF) {
		s.eof = true
	} else if err != nil {
		return err
	}
	return nil
}
