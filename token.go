// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jtok/internal/escape"
	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid  Kind = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LBracket             // left square bracket "["
	RBracket             // right square bracket "]"
	Colon                // colon ":"
	Comma                // comma ","
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
	String               // quoted string
	Number               // number
	EOF                  // end of input

	// Do not modify the order of these constants without updating the
	// range checks in the predicates below.
)

var kindStr = [...]string{
	Invalid:  "invalid token",
	LBrace:   `"{"`,
	RBrace:   `"}"`,
	LBracket: `"["`,
	RBracket: `"]"`,
	Colon:    `":"`,
	Comma:    `","`,
	True:     "true",
	False:    "false",
	Null:     "null",
	String:   "string",
	Number:   "number",
	EOF:      "end of input",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// IsStructural reports whether k is one of the punctuation tokens { } [ ] : ,
func (k Kind) IsStructural() bool { return LBrace <= k && k <= Comma }

// IsKeyword reports whether k is one of the constants true, false, or null.
func (k Kind) IsKeyword() bool { return True <= k && k <= Null }

// IsLiteral reports whether k denotes a JSON scalar value.
func (k Kind) IsLiteral() bool { return True <= k && k <= Number }

// A Token is a single lexical unit of the input.
type Token struct {
	Kind Kind
	Span Span

	// Value holds the payload of String and Number tokens, and is nil for
	// all other kinds.
	//
	// For a String, Value is the decoded contents with escapes resolved.
	// For a Number, Value is the source text exactly as written.
	//
	// Value may share storage with the lexer input, so the caller must copy
	// it if the input may change.
	Value []byte
}

// Text returns the payload of t as a string.
func (t Token) Text() string { return string(t.Value) }

// Int64 parses the value of a Number token as a signed integer.
// It reports an error if t is not a Number or does not fit in an int64.
func (t Token) Int64() (int64, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("token is %v, not number", t.Kind)
	}
	return strconv.ParseInt(string(t.Value), 10, 64)
}

// Float64 parses the value of a Number token as a floating-point value.
// It reports an error if t is not a Number or is out of range.
func (t Token) Float64() (float64, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("token is %v, not number", t.Kind)
	}
	return strconv.ParseFloat(string(t.Value), 64)
}

// String renders t for diagnostics, e.g. "string@3-8 "abc"".
func (t Token) String() string {
	var val string
	switch t.Kind {
	case String:
		val = " " + string(escape.AppendQuote(nil, mem.B(t.Value)))
	case Number:
		val = " " + string(t.Value)
	}
	return fmt.Sprintf("%v@%v%s", t.Kind, t.Span, val)
}
