// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }

// Unquote decodes a JSON string literal. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error of concrete type *Error if src is not exactly one
// well-formed string literal; offsets are relative to the start of src. If src
// contains no escapes, the result shares storage with src.
func Unquote(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, &Error{Kind: UnexpectedByte, Offset: 0, Found: EndOfInput}
	} else if src[0] != '"' {
		return nil, &Error{Kind: UnexpectedByte, Offset: 0, Found: rune(src[0])}
	}
	l := NewLexer(src)
	tok, err := l.scanString()
	if err != nil {
		return nil, err
	} else if end := tok.Span.End; end != len(src) {
		return nil, &Error{Kind: UnexpectedByte, Offset: end, Found: rune(src[end])}
	}
	return tok.Value, nil
}
