// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// EOF is the value of Error.Found when decoding ran off the end of the input.
const EOF rune = -1

// A Reason classifies a decoding failure.
type Reason byte

// Constants defining the valid Reason values.
const (
	Unterminated Reason = iota + 1 // no closing quotation mark
	BadEscape                      // unknown character after a backslash
	BadUnicode                     // malformed or unpaired \u escape
)

var reasonStr = [...]string{
	Unterminated: "unterminated string",
	BadEscape:    "invalid escape",
	BadUnicode:   "invalid Unicode escape",
}

func (r Reason) String() string {
	if int(r) >= len(reasonStr) || reasonStr[r] == "" {
		return "unknown reason"
	}
	return reasonStr[r]
}

// Error reports a decoding failure at a byte offset of the input to Decode.
type Error struct {
	Reason Reason
	Pos    int  // offset of the backslash or "u" at fault, or the input length
	Found  rune // the offending byte, or EOF
}

func (e *Error) Error() string {
	if e.Found == EOF {
		return fmt.Sprintf("%v at offset %d: unexpected end of input", e.Reason, e.Pos)
	}
	return fmt.Sprintf("%v at offset %d: found %q", e.Reason, e.Pos, e.Found)
}

var controlDec = [...]byte{
	'"':  '"',
	'/':  '/',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Decode decodes the body of a JSON string. The input must begin just after
// the opening double quotation mark; decoding stops at the first unescaped
// closing quotation mark. Decode reports the decoded text and the number of
// bytes consumed from src, including the closing quote.
//
// If the body contains no escape sequences, the decoded text is identical to
// the first n-1 bytes of src and Decode returns a nil slice to spare the
// caller a copy. Otherwise the result is freshly allocated.
//
// Bytes other than escapes are copied through unchanged, whether or not they
// are valid UTF-8.
func Decode(src mem.RO) (dec []byte, n int, err error) {
	lit := 0 // start of the pending run of unescaped bytes
	i := 0
	for i < src.Len() {
		switch src.At(i) {
		case '"':
			if dec != nil {
				dec = mem.Append(dec, src.Slice(lit, i))
			}
			return dec, i + 1, nil
		case '\\':
			if dec == nil {
				dec = make([]byte, 0, i+16)
			}
			dec = mem.Append(dec, src.Slice(lit, i))
			var w int
			dec, w, err = unescape(dec, src, i)
			if err != nil {
				return nil, i, err
			}
			i += w
			lit = i
		default:
			i++
		}
	}
	return nil, i, &Error{Reason: Unterminated, Pos: src.Len(), Found: EOF}
}

// unescape decodes the escape sequence whose backslash is at src[i] and
// appends its value to dec. It returns the updated buffer and the width of
// the escape sequence in bytes.
func unescape(dec []byte, src mem.RO, i int) ([]byte, int, error) {
	if i+1 >= src.Len() {
		return dec, 0, &Error{Reason: Unterminated, Pos: src.Len(), Found: EOF}
	}
	c := src.At(i + 1)
	if c != 'u' {
		if int(c) < len(controlDec) && controlDec[c] != 0 {
			return append(dec, controlDec[c]), 2, nil
		}
		return dec, 0, &Error{Reason: BadEscape, Pos: i, Found: rune(c)}
	}

	r, err := hex4(src, i+1)
	if err != nil {
		return dec, 0, err
	}
	switch {
	case 0xD800 <= r && r < 0xDC00:
		// A high surrogate must be followed directly by an escaped low surrogate.
		if j := i + 6; j+1 < src.Len() && src.At(j) == '\\' && src.At(j+1) == 'u' {
			lo, err := hex4(src, j+1)
			if err != nil {
				return dec, 0, err
			}
			if 0xDC00 <= lo && lo <= 0xDFFF {
				return utf8.AppendRune(dec, utf16.DecodeRune(r, lo)), 12, nil
			}
		}
		return dec, 0, &Error{Reason: BadUnicode, Pos: i + 1, Found: 'u'}
	case 0xDC00 <= r && r <= 0xDFFF:
		return dec, 0, &Error{Reason: BadUnicode, Pos: i + 1, Found: 'u'}
	}
	return utf8.AppendRune(dec, r), 6, nil
}

// hex4 decodes the four hexadecimal digits following the "u" at src[u].
func hex4(src mem.RO, u int) (rune, error) {
	var v rune
	for k := u + 1; k <= u+4; k++ {
		if k >= src.Len() {
			return 0, &Error{Reason: BadUnicode, Pos: u, Found: EOF}
		}
		d, ok := hexVal(src.At(k))
		if !ok {
			return 0, &Error{Reason: BadUnicode, Pos: u, Found: rune(src.At(k))}
		}
		v = v<<4 | rune(d)
	}
	return v, nil
}

func hexVal(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
