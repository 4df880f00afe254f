package structpack

import (
	"fmt"
	"strings"
)

// Kind categorizes a codec error.
type Kind string

const (
	// KindShortBuffer marks a checked decode (or PackInto) that would
	// read or write past the end of the data buffer.
	KindShortBuffer Kind = "short_buffer"

	// KindMissingValue marks a checked encode that ran out of input
	// values before the format string was exhausted.
	KindMissingValue Kind = "missing_value"
)

// Error is the structured error type returned by Pack, Unpack, and their
// variants. It carries the operation, the format code being processed, and
// the byte offset or value index where the call was aborted.
type Error struct {
	Op     string // "pack", "pack_into", "unpack", "unpack_from"
	Kind   Kind
	Code   byte // format code of the offending field, 0 if none
	Offset int  // byte offset (short_buffer) or value index (missing_value)
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(e.Op)
	b.WriteString("] ")
	b.WriteString(string(e.Kind))
	if e.Code != 0 {
		fmt.Fprintf(&b, " at code %q", e.Code)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target matches this error. Two Errors match when
// their Kinds are equal, so errors.Is(err, ErrShortBuffer) works without
// comparing offsets.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is matching.
var (
	ErrShortBuffer  = &Error{Kind: KindShortBuffer}
	ErrMissingValue = &Error{Kind: KindMissingValue}
)

func shortBuffer(op string, code byte, off, span, have int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindShortBuffer,
		Code:   code,
		Offset: off,
		Detail: fmt.Sprintf("need %d bytes at offset %d, buffer has %d", span, off, have),
	}
}

func missingValue(op string, code byte, index int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindMissingValue,
		Code:   code,
		Offset: index,
		Detail: fmt.Sprintf("no value for field %d", index),
	}
}
