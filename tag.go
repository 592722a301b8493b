// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcell

// A Tag is a semantic annotation on a value. A tag tells a consumer how to
// reinterpret a generic representation, for example that a string holds the
// digits of an integer too large for 64 bits. Tags do not affect parsing or
// comparison.
type Tag uint8

// Constants defining the valid Tag values.
const (
	TagNone        Tag = iota // no annotation
	TagNoEsc                  // string needs no escaping
	TagBigInt                 // string holds an arbitrary-precision integer
	TagBigDec                 // string holds an arbitrary-precision decimal
	TagBigFloat               // string holds an arbitrary-precision binary float
	TagDateTime               // string holds an RFC 3339 date and time
	TagEpochSecond            // number of seconds since the epoch
	TagEpochMilli             // number of milliseconds since the epoch
	TagEpochNano              // number of nanoseconds since the epoch
	TagBase16                 // bytes rendered in hexadecimal
	TagBase64                 // bytes rendered in standard base64
	TagBase64URL              // bytes rendered in unpadded URL-safe base64
	TagURI                    // string holds a URI
	TagUndefined              // null stands for an undefined value
	TagClamped                // typed array with clamped conversion

	numTags
)

var tagStr = [...]string{
	TagNone:        "n/a",
	TagNoEsc:       "unescaped",
	TagBigInt:      "bigint",
	TagBigDec:      "bigdec",
	TagBigFloat:    "bigfloat",
	TagDateTime:    "datetime",
	TagEpochSecond: "epoch-second",
	TagEpochMilli:  "epoch-milli",
	TagEpochNano:   "epoch-nano",
	TagBase16:      "base16",
	TagBase64:      "base64",
	TagBase64URL:   "base64url",
	TagURI:         "uri",
	TagUndefined:   "undefined",
	TagClamped:     "clamped",
}

func (t Tag) String() string {
	if t >= numTags {
		return "unknown tag"
	}
	return tagStr[t]
}

// IsNumber reports whether t marks a string as holding number text.
func (t Tag) IsNumber() bool { return t == TagBigInt || t == TagBigDec || t == TagBigFloat }

// IsBinary reports whether t names a text rendering of a byte string.
func (t Tag) IsBinary() bool { return t == TagBase16 || t == TagBase64 || t == TagBase64URL }
