// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/creachadair/jcell/internal/escape"
	"github.com/creachadair/jcell/numconv"
)

// A state is a state of the parser's state machine. The structural states say
// what may begin at the next token; the lexical states continue a token that
// is partially consumed.
type state byte

const (
	// Structural states.
	stBOM               state = iota // start of stream, possible byte-order mark
	stRoot                           // top-level value expected
	stObjectKeyOrEnd                 // after "{": member name or "}"
	stObjectKey                      // after ",": member name
	stObjectColon                    // after member name: ":"
	stObjectValue                    // after ":": member value
	stObjectCommaOrEnd               // after member value: "," or "}"
	stArrayValueOrEnd                // after "[": value or "]"
	stArrayValue                     // after ",": value
	stArrayCommaOrEnd                // after element: "," or "]"
	stDone                           // top-level value complete

	// Lexical states.
	stBOM2          // read 0xEF, want 0xBB
	stBOM3          // read 0xEF 0xBB, want 0xBF
	stString        // string body
	stStringEscape  // after "\"
	stStringHex     // inside the four hex digits of a \u escape
	stStringLowEsc  // after a high surrogate, want "\"
	stStringLowU    // after a high surrogate and "\", want "u"
	stNumMinus      // after "-"
	stNumZero       // after a leading "0"
	stNumInt        // in the integer digits
	stNumDot        // after ".", want a digit
	stNumFrac       // in the fraction digits
	stNumExp        // after "e" or "E"
	stNumExpSign    // after the exponent sign, want a digit
	stNumExpDigits  // in the exponent digits
	stLiteral       // matching true, false, null, NaN, Infinity
	stSlash         // after "/", want "/" or "*"
	stLineComment   // inside // ...
	stBlockComment  // inside /* ...
	stBlockStar     // inside /* ... after "*"
	stError         // failed; only Reset or Reinitialize will recover
)

// A Parser is an incremental JSON parser. Input is supplied in chunks of any
// size with Update, and ParseSome advances the parser as far as the buffered
// input allows, delivering events to a Visitor as soon as each token is
// complete. A token may be split across any number of chunks; the parser
// records the partial token and resumes where it left off.
//
// A typical use:
//
//	p := jcell.NewParser(nil)
//	for chunk := range chunks {
//	   p.Update(chunk)
//	   if err := p.ParseSome(v); err != nil {
//	      return err
//	   }
//	}
//	return p.FinishParse(v)
//
// A Parser is not safe for concurrent use.
type Parser struct {
	opts Options

	state state
	ret   state  // state to resume after a comment
	stack []byte // open containers, '{' or '['

	input []byte // buffered input; input[pos:] is unconsumed
	pos   int

	at    Pos  // position of input[pos]
	cr    bool // the previous byte was '\r'
	start Pos  // position of the first byte of the current token

	buf     []byte           // text of the current token
	isKey   bool             // the current string is a member name
	isFloat bool             // the current number has a fraction or exponent
	lit     string           // the literal being matched
	litN    int              // bytes of lit matched so far
	hexN    int              // hex digits read in the current \u escape
	hexVal  rune             // value of the hex digits read so far
	hi      rune             // pending high surrogate, or 0
	utf     escape.UTF8State // validation of multi-byte sequences
	utfMark int              // offset in buf of the pending multi-byte sequence

	stopped bool
	err     error
}

// NewParser constructs a parser with the given options. If opts == nil, the
// parser accepts strict JSON.
func NewParser(opts *Options) *Parser {
	p := new(Parser)
	if opts != nil {
		p.opts = *opts
	}
	p.Reinitialize()
	return p
}

// Options returns the options in effect for p.
func (p *Parser) Options() Options { return p.opts }

// Update adds chunk to the input buffered by p. The parser may retain chunk
// until it has been consumed, so the caller must not modify its contents
// until SourceExhausted reports true. If input from a previous update has not
// been fully consumed, the unconsumed part is copied and chunk is appended.
func (p *Parser) Update(chunk []byte) {
	if p.pos < len(p.input) {
		rest := p.input[p.pos:]
		p.input = append(rest[:len(rest):len(rest)], chunk...)
	} else {
		p.input = chunk
	}
	p.pos = 0
}

// SourceExhausted reports whether all the buffered input has been consumed.
func (p *Parser) SourceExhausted() bool { return p.pos >= len(p.input) }

// Done reports whether a complete top-level document has been parsed.
func (p *Parser) Done() bool { return p.state == stDone }

// Stopped reports whether the most recent call to ParseSome was halted by a
// visitor returning ErrStop.
func (p *Parser) Stopped() bool { return p.stopped }

// Finished reports whether p will make no further progress without a Reset:
// either a document is complete or parsing has failed.
func (p *Parser) Finished() bool { return p.state == stDone || p.state == stError }

// Err reports the error that halted p, or nil.
func (p *Parser) Err() error { return p.err }

// Pos reports the position of the next unconsumed input byte.
func (p *Parser) Pos() Pos { return p.at }

// Depth reports the number of objects and arrays currently open.
func (p *Parser) Depth() int { return len(p.stack) }

// Remaining returns the buffered input not yet consumed. The slice is only
// valid until the next call to a method of p.
func (p *Parser) Remaining() []byte { return p.input[p.pos:] }

// Reset discards the parse state so that p is ready for a new document,
// continuing from the current position in the input. Buffered input that was
// not consumed is retained, and positions continue to count from the start of
// the stream. Reset is how a caller parses back-to-back documents from one
// stream with the StopAtDocument option.
func (p *Parser) Reset() {
	p.state = stRoot
	p.stack = p.stack[:0]
	p.buf = p.buf[:0]
	p.hi = 0
	p.utf = escape.UTF8State{}
	p.stopped = false
	p.err = nil
}

// Reinitialize discards the parse state and any buffered input, and resets
// the position to the start of a new stream.
func (p *Parser) Reinitialize() {
	p.Reset()
	p.state = stBOM
	p.input, p.pos = nil, 0
	p.at, p.cr = startPos, false
}

// ParseSome consumes as much of the buffered input as possible, delivering
// events to v. It returns nil when the input is exhausted, or when a document
// is complete and the parser is configured with StopAtDocument.
//
// If a method of v returns ErrStop, ParseSome returns ErrStop with the parser
// positioned after the token that produced the event; calling ParseSome again
// resumes from there. If v reports any other error, or the input is invalid,
// the parser fails and reports the same error on every later call until it is
// reset. Syntax errors have concrete type *SyntaxError.
func (p *Parser) ParseSome(v Visitor) error {
	if p.err != nil {
		return p.err
	}
	p.stopped = false
	for p.pos < len(p.input) {
		if p.state == stDone && p.opts.Trailing == StopAtDocument {
			return nil
		}
		if err := p.step(p.input[p.pos], v); err != nil {
			return p.checkVisit(err)
		}
	}
	return nil
}

// FinishParse reports that no further input will arrive. It parses any
// remaining buffered input, completes a final top-level number or line
// comment, and reports an error if the document is incomplete.
func (p *Parser) FinishParse(v Visitor) error {
	if err := p.ParseSome(v); err != nil {
		return err
	}
	switch p.state {
	case stDone:
		return nil
	case stNumZero, stNumInt, stNumFrac, stNumExpDigits:
		if len(p.stack) == 0 {
			return p.checkVisit(p.endNumber(v))
		}
	case stLineComment:
		p.state = p.ret
		if err := p.comment(v); err != nil {
			return p.checkVisit(err)
		}
		if p.state == stDone {
			return nil
		}
	case stString, stStringEscape, stStringHex, stStringLowEsc, stStringLowU:
		return p.failAt(p.start, UnexpectedEOF, "unterminated string")
	}
	if p.state == stRoot || p.state == stBOM {
		return p.fail(UnexpectedEOF, "no value in input")
	}
	return p.fail(UnexpectedEOF, "incomplete value")
}

// CheckDone reports an error if the buffered input contains anything other
// than whitespace. It is intended for use after a document completes in
// StopAtDocument mode, when the caller expects no further documents.
func (p *Parser) CheckDone() error {
	if p.err != nil {
		return p.err
	}
	for p.pos < len(p.input) {
		if !isSpace(p.input[p.pos]) {
			return p.fail(ExtraCharacters, fmt.Sprintf("unexpected %q", p.input[p.pos]))
		}
		p.advance()
	}
	return nil
}

// checkVisit records err as the failure of the parser unless it is ErrStop.
func (p *Parser) checkVisit(err error) error {
	if err == nil {
		return nil
	} else if errors.Is(err, ErrStop) {
		p.stopped = true
		return ErrStop
	}
	if p.state != stError {
		p.state = stError
		p.err = err
	}
	return p.err
}

// advance consumes one byte of input and updates the position.
func (p *Parser) advance() {
	b := p.input[p.pos]
	p.pos++
	p.at.Offset++
	switch b {
	case '\n':
		if !p.cr {
			p.at.Line++
		}
		p.at.Column = 1
		p.cr = false
	case '\r':
		p.at.Line++
		p.at.Column = 1
		p.cr = true
	default:
		p.at.Column++
		p.cr = false
	}
}

func (p *Parser) fail(kind ErrorKind, msg string) error { return p.failAt(p.at, kind, msg) }

func (p *Parser) failAt(at Pos, kind ErrorKind, msg string) error {
	p.state = stError
	p.err = &SyntaxError{Kind: kind, Pos: at, Message: msg}
	return p.err
}

// step processes the next input byte b in the current state. It either
// consumes b or changes state so that b will be reprocessed.
func (p *Parser) step(b byte, v Visitor) error {
	switch p.state {
	case stBOM:
		if b == 0xEF {
			p.skipBOM()
			p.state = stBOM2
			return nil
		}
		p.state = stRoot
		return nil
	case stBOM2, stBOM3:
		want := byte(0xBB)
		if p.state == stBOM3 {
			want = 0xBF
		}
		if b != want {
			return p.fail(InvalidUTF8, "incomplete byte-order mark")
		}
		p.skipBOM()
		if p.state == stBOM2 {
			p.state = stBOM3
		} else {
			p.state = stRoot
		}
		return nil

	case stRoot, stObjectKeyOrEnd, stObjectKey, stObjectColon, stObjectValue,
		stObjectCommaOrEnd, stArrayValueOrEnd, stArrayValue, stArrayCommaOrEnd, stDone:
		return p.structural(b, v)

	case stString:
		return p.stringByte(b, v)
	case stStringEscape:
		return p.escapeByte(b)
	case stStringHex:
		return p.hexByte(b)
	case stStringLowEsc:
		if b == '\\' {
			p.advance()
			p.state = stStringLowU
			return nil
		}
		return p.unpaired(stString)
	case stStringLowU:
		if b == 'u' {
			p.advance()
			p.hexN, p.hexVal, p.state = 0, 0, stStringHex
			return nil
		}
		return p.unpaired(stStringEscape)

	case stNumMinus, stNumZero, stNumInt, stNumDot, stNumFrac, stNumExp, stNumExpSign, stNumExpDigits:
		return p.numberByte(b, v)

	case stLiteral:
		if b != p.lit[p.litN] {
			return p.fail(InvalidSyntax, fmt.Sprintf("invalid literal, want %q", p.lit))
		}
		p.advance()
		if p.litN++; p.litN == len(p.lit) {
			return p.endLiteral(v)
		}
		return nil

	case stSlash:
		switch b {
		case '/':
			p.state = stLineComment
		case '*':
			p.state = stBlockComment
		default:
			return p.fail(InvalidSyntax, fmt.Sprintf("invalid %q in comment", b))
		}
		p.buf = append(p.buf, b)
		p.advance()
		return nil
	case stLineComment:
		p.buf = append(p.buf, b)
		p.advance()
		if b == '\n' || b == '\r' {
			p.state = p.ret
			return p.comment(v)
		}
		return nil
	case stBlockComment, stBlockStar:
		p.buf = append(p.buf, b)
		p.advance()
		if p.state == stBlockStar && b == '/' {
			p.state = p.ret
			return p.comment(v)
		} else if b == '*' {
			p.state = stBlockStar
		} else {
			p.state = stBlockComment
		}
		return nil

	case stError:
		return p.err
	}
	panic(fmt.Sprintf("parser: invalid state %d", p.state))
}

// skipBOM consumes a byte of a byte-order mark. The mark occupies offsets in
// the stream but does not advance the column.
func (p *Parser) skipBOM() {
	p.pos++
	p.at.Offset++
}

// structural handles a byte in one of the states between tokens.
func (p *Parser) structural(b byte, v Visitor) error {
	if isSpace(b) {
		p.advance()
		return nil
	}
	if b == '/' {
		if !p.opts.AllowComments {
			return p.fail(InvalidSyntax, "comments are not allowed")
		}
		p.ret = p.state
		p.start = p.at
		p.buf = append(p.buf[:0], b)
		p.state = stSlash
		p.advance()
		return nil
	}

	switch p.state {
	case stRoot, stObjectValue:
		return p.beginValue(b, v)

	case stArrayValueOrEnd, stArrayValue:
		if b == ']' {
			if p.state == stArrayValue && !p.opts.AllowTrailingCommas {
				return p.fail(InvalidSyntax, "trailing comma before \"]\"")
			}
			return p.endContainer(v)
		}
		return p.beginValue(b, v)

	case stObjectKeyOrEnd, stObjectKey:
		if b == '"' {
			p.beginString(true)
			return nil
		} else if b == '}' {
			if p.state == stObjectKey && !p.opts.AllowTrailingCommas {
				return p.fail(InvalidSyntax, "trailing comma before \"}\"")
			}
			return p.endContainer(v)
		}
		return p.fail(InvalidSyntax, fmt.Sprintf("expected member name, got %q", b))

	case stObjectColon:
		if b != ':' {
			return p.fail(InvalidSyntax, fmt.Sprintf("expected \":\", got %q", b))
		}
		p.advance()
		p.state = stObjectValue
		return nil

	case stObjectCommaOrEnd, stArrayCommaOrEnd:
		closer := byte('}')
		if p.state == stArrayCommaOrEnd {
			closer = ']'
		}
		if b == ',' {
			p.advance()
			if p.state == stArrayCommaOrEnd {
				p.state = stArrayValue
			} else {
				p.state = stObjectKey
			}
			return nil
		} else if b == closer {
			return p.endContainer(v)
		}
		return p.fail(InvalidSyntax, fmt.Sprintf("expected \",\" or %q, got %q", closer, b))

	case stDone:
		return p.fail(ExtraCharacters, fmt.Sprintf("unexpected %q", b))
	}
	panic("parser: not a structural state")
}

// beginValue starts a value whose first byte is b.
func (p *Parser) beginValue(b byte, v Visitor) error {
	p.start = p.at
	switch b {
	case '{', '[':
		if len(p.stack) >= p.opts.maxDepth() {
			return p.fail(DepthExceeded, fmt.Sprintf("depth limit %d", p.opts.maxDepth()))
		}
		p.stack = append(p.stack, b)
		p.advance()
		if b == '{' {
			p.state = stObjectKeyOrEnd
			return v.BeginObject(TagNone, p.start)
		}
		p.state = stArrayValueOrEnd
		return v.BeginArray(TagNone, p.start)

	case '"':
		p.beginString(false)
		return nil

	case '-':
		p.beginNumber(stNumMinus)
		return nil
	case '0':
		p.beginNumber(stNumZero)
		return nil
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.beginNumber(stNumInt)
		return nil

	case 't':
		return p.beginLiteral("true")
	case 'f':
		return p.beginLiteral("false")
	case 'n':
		return p.beginLiteral("null")
	case 'N', 'I':
		if p.opts.AllowNaNInf {
			if b == 'N' {
				return p.beginLiteral("NaN")
			}
			return p.beginLiteral("Infinity")
		}
	case '.', '+':
		return p.fail(InvalidNumber, fmt.Sprintf("number may not begin with %q", b))
	case ']', '}':
		return p.fail(InvalidSyntax, fmt.Sprintf("unexpected %q", b))
	}
	return p.fail(InvalidSyntax, fmt.Sprintf("expected value, got %q", b))
}

// endContainer closes the innermost object or array with the byte at p.pos.
func (p *Parser) endContainer(v Visitor) error {
	at := p.at
	open := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.advance()
	p.afterValue()
	var err error
	if open == '{' {
		err = v.EndObject(at)
	} else {
		err = v.EndArray(at)
	}
	return p.completed(err, v)
}

// afterValue sets the state following a complete value.
func (p *Parser) afterValue() {
	switch {
	case len(p.stack) == 0:
		p.state = stDone
	case p.stack[len(p.stack)-1] == '{':
		p.state = stObjectCommaOrEnd
	default:
		p.state = stArrayCommaOrEnd
	}
}

// completed reports err from a visitor event that finished a value. If the
// event completed a top-level document, v is flushed.
func (p *Parser) completed(err error, v Visitor) error {
	if err == nil && p.state == stDone {
		return flush(v)
	}
	return err
}

func (p *Parser) beginString(isKey bool) {
	p.start = p.at
	p.buf = p.buf[:0]
	p.isKey = isKey
	p.hi = 0
	p.utf = escape.UTF8State{}
	p.state = stString
	p.advance()
}

// stringByte handles a byte in the body of a string.
func (p *Parser) stringByte(b byte, v Visitor) error {
	if p.utf.Pending() {
		if p.utf.Next(b) {
			p.buf = append(p.buf, b)
			p.advance()
			return nil
		}
		// The byte does not continue the sequence; replace the incomplete
		// sequence and process b afresh.
		if !p.opts.ReplaceInvalid {
			return p.fail(InvalidUTF8, fmt.Sprintf("invalid continuation byte %#02x", b))
		}
		p.buf = utf8.AppendRune(p.buf[:p.utfMark], utf8.RuneError)
		return nil
	}

	switch {
	case b == '"':
		p.advance()
		if p.isKey {
			p.state = stObjectColon
			return v.Key(p.buf, p.start)
		}
		p.afterValue()
		return p.completed(v.String(p.buf, TagNone, p.start), v)
	case b == '\\':
		p.state = stStringEscape
	case b < ' ':
		return p.fail(InvalidSyntax, fmt.Sprintf("unescaped control character %q", b))
	case b < utf8.RuneSelf:
		p.buf = append(p.buf, b)
	default:
		p.utfMark = len(p.buf)
		if p.utf.Next(b) {
			p.buf = append(p.buf, b)
		} else if p.opts.ReplaceInvalid {
			p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
		} else {
			return p.fail(InvalidUTF8, fmt.Sprintf("invalid byte %#02x", b))
		}
	}
	p.advance()
	return nil
}

// escapeByte handles the byte following a backslash in a string.
func (p *Parser) escapeByte(b byte) error {
	if c, ok := escape.Simple(b); ok {
		p.buf = append(p.buf, c)
		p.state = stString
	} else if b == 'u' {
		p.hexN, p.hexVal, p.state = 0, 0, stStringHex
	} else if p.opts.ReplaceInvalid {
		p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
		p.state = stString
	} else {
		return p.fail(InvalidEscape, fmt.Sprintf("invalid %q after escape", b))
	}
	p.advance()
	return nil
}

// hexByte handles a byte of the four hex digits of a \u escape.
func (p *Parser) hexByte(b byte) error {
	d := escape.HexValue(b)
	if d < 0 {
		if !p.opts.ReplaceInvalid {
			return p.fail(InvalidEscape, fmt.Sprintf("invalid hex digit %q in Unicode escape", b))
		}
		if p.hi != 0 {
			p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
			p.hi = 0
		}
		p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
		p.state = stString
		return nil // reprocess b as part of the string body
	}
	p.advance()
	p.hexVal = p.hexVal<<4 | d
	if p.hexN++; p.hexN < 4 {
		return nil
	}

	r := p.hexVal
	p.state = stString
	if p.hi != 0 {
		hi := p.hi
		p.hi = 0
		if escape.IsLowSurrogate(r) {
			p.buf = utf8.AppendRune(p.buf, escape.CombineSurrogates(hi, r))
			return nil
		} else if !p.opts.ReplaceInvalid {
			return p.fail(InvalidEscape, "unpaired surrogate in Unicode escape")
		}
		p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
	}
	switch {
	case escape.IsHighSurrogate(r):
		p.hi = r
		p.state = stStringLowEsc
	case escape.IsLowSurrogate(r):
		if !p.opts.ReplaceInvalid {
			return p.fail(InvalidEscape, "unpaired surrogate in Unicode escape")
		}
		p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
	default:
		p.buf = utf8.AppendRune(p.buf, r)
	}
	return nil
}

// unpaired handles a high surrogate escape that is not followed by an escape
// for its low surrogate. The current byte is reprocessed in state next.
func (p *Parser) unpaired(next state) error {
	if !p.opts.ReplaceInvalid {
		return p.fail(InvalidEscape, "unpaired surrogate in Unicode escape")
	}
	p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
	p.hi = 0
	p.state = next
	return nil
}

func (p *Parser) beginNumber(next state) {
	p.buf = append(p.buf[:0], p.input[p.pos])
	p.isFloat = false
	p.state = next
	p.advance()
}

// numberByte handles a byte while scanning a number. Numbers have no closing
// delimiter, so a number is complete when a byte arrives that cannot extend
// it; that byte is then reprocessed in the following state.
func (p *Parser) numberByte(b byte, v Visitor) error {
	digit := '0' <= b && b <= '9'
	next := p.state
	switch p.state {
	case stNumMinus:
		switch {
		case b == '0':
			next = stNumZero
		case digit:
			next = stNumInt
		case b == 'I' && p.opts.AllowNaNInf:
			p.lit, p.litN, p.state = "-Infinity", 1, stLiteral
			return nil
		default:
			return p.fail(InvalidNumber, fmt.Sprintf("expected digit after \"-\", got %q", b))
		}

	case stNumZero, stNumInt:
		switch {
		case digit && p.state == stNumZero:
			return p.fail(InvalidNumber, "extra leading zeroes")
		case digit:
		case b == '.':
			next = stNumDot
		case b == 'e' || b == 'E':
			next = stNumExp
		default:
			return p.endNumber(v)
		}

	case stNumDot:
		if !digit {
			return p.fail(InvalidNumber, "no digits after decimal point")
		}
		next = stNumFrac

	case stNumFrac:
		switch {
		case digit:
		case b == 'e' || b == 'E':
			next = stNumExp
		default:
			return p.endNumber(v)
		}

	case stNumExp:
		switch {
		case b == '+' || b == '-':
			next = stNumExpSign
		case digit:
			next = stNumExpDigits
		default:
			return p.fail(InvalidNumber, "missing exponent digits")
		}

	case stNumExpSign:
		if !digit {
			return p.fail(InvalidNumber, "missing exponent digits")
		}
		next = stNumExpDigits

	case stNumExpDigits:
		if !digit {
			return p.endNumber(v)
		}
	}
	if next == stNumDot || next == stNumExp {
		p.isFloat = true
	}
	p.buf = append(p.buf, b)
	p.state = next
	p.advance()
	return nil
}

// endNumber reports the number in p.buf, which is complete. The next input
// byte, if any, has not been consumed.
func (p *Parser) endNumber(v Visitor) error {
	if p.pos < len(p.input) && isNumberTail(p.input[p.pos]) {
		return p.fail(InvalidNumber, fmt.Sprintf("unexpected %q in number", p.input[p.pos]))
	}
	p.afterValue()

	text := p.buf
	var err error
	switch {
	case p.isFloat && p.opts.LosslessNumbers:
		err = v.String(text, TagBigDec, p.start)
	case p.isFloat:
		f, cerr := numconv.ParseFloat(text)
		if cerr != nil {
			err = v.String(text, TagBigDec, p.start)
		} else {
			err = v.Double(f, TagNone, p.start)
		}
	case text[0] == '-':
		n, cerr := numconv.ParseInt(text)
		if cerr != nil {
			err = v.String(text, TagBigInt, p.start)
		} else {
			err = v.Int64(n, TagNone, p.start)
		}
	default:
		n, cerr := numconv.ParseUint(text)
		if cerr != nil {
			err = v.String(text, TagBigInt, p.start)
		} else {
			err = v.Uint64(n, TagNone, p.start)
		}
	}
	return p.completed(err, v)
}

func (p *Parser) beginLiteral(lit string) error {
	p.start = p.at
	p.lit, p.litN = lit, 1
	p.state = stLiteral
	p.advance()
	return nil
}

func (p *Parser) endLiteral(v Visitor) error {
	p.afterValue()
	var err error
	switch p.lit {
	case "true":
		err = v.Bool(true, p.start)
	case "false":
		err = v.Bool(false, p.start)
	case "null":
		err = v.Null(TagNone, p.start)
	case "NaN":
		err = v.Double(math.NaN(), TagNone, p.start)
	case "Infinity":
		err = v.Double(math.Inf(1), TagNone, p.start)
	case "-Infinity":
		err = v.Double(math.Inf(-1), TagNone, p.start)
	default:
		panic("parser: unknown literal " + p.lit)
	}
	return p.completed(err, v)
}

// comment reports the comment text in p.buf to v, if v wants comments.
func (p *Parser) comment(v Visitor) error {
	if cv, ok := v.(CommentVisitor); ok {
		return cv.Comment(p.buf, p.start)
	}
	return nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// isNumberTail reports whether b may not directly follow a complete number.
func isNumberTail(b byte) bool {
	return b == '.' || b == '+' || b == '-' || ('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
