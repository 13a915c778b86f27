// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"
	"unicode/utf8"
)

// EndOfInput is the value of Error.Found when the input ended before the
// lexer could complete a token.
const EndOfInput rune = -1

// ErrorKind classifies a lexical error. An ErrorKind is itself an error, so
// callers can test for a kind with errors.Is:
//
//	if errors.Is(err, jtok.InvalidNumber) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedByte       ErrorKind = iota + 1 // byte cannot begin or continue a token
	UnterminatedString                        // input ended inside a string
	InvalidEscape                             // unknown character after a backslash
	InvalidUnicodeEscape                      // malformed or unpaired \u escape
	InvalidNumber                             // number does not match the JSON grammar
)

var errorKindStr = [...]string{
	UnexpectedByte:       "unexpected byte",
	UnterminatedString:   "unterminated string",
	InvalidEscape:        "invalid escape",
	InvalidUnicodeEscape: "invalid Unicode escape",
	InvalidNumber:        "invalid number",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// Error is the concrete type of errors reported by the Lexer.
type Error struct {
	Kind   ErrorKind
	Offset int  // byte offset where the problem was detected
	Found  rune // the offending byte value, or EndOfInput
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: found %s", e.Kind, e.Offset, foundString(e.Found))
}

// Unwrap reports the kind of e, for use with errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func foundString(r rune) string {
	if r == EndOfInput {
		return "end of input"
	} else if r >= utf8.RuneSelf {
		return fmt.Sprintf(`'\x%02x'`, r)
	}
	return fmt.Sprintf("%q", r)
}
