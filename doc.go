// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a lexical analyzer for JSON.
//
// # Lexing
//
// The Lexer type converts a JSON input buffer into a sequence of tokens.
// Construct a lexer from a byte slice and call its Next method to advance
// through the input. Next returns the next token, or reports an error:
//
//	lex := jtok.NewLexer(input)
//	for {
//	   tok, err := lex.Next()
//	   if err != nil {
//	      log.Fatalf("Lexing failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", tok)
//	   if tok.Kind == jtok.EOF {
//	      break
//	   }
//	}
//
// The same loop can be written with the All iterator:
//
//	for tok, err := range lex.All() { ... }
//
// Every token carries the Span of input it occupies. Spans are half-open byte
// ranges, so tok.Span.Of(input) reproduces the source text of any token. The
// end of input is reported by a token of kind EOF with an empty span. Once the
// lexer reaches the end, it continues to report the same EOF token.
//
// # Values
//
// String and Number tokens carry a payload in their Value field. For strings
// the payload is the decoded text, with escape sequences resolved. For numbers
// it is the source text exactly as written: the lexer does not convert numbers
// to a fixed-width type, so values of any size or precision are preserved. Use
// the Int64 and Float64 methods, or a package like math/big, to convert them.
//
// # Errors
//
// Lexical errors have concrete type *Error, which records the kind of error,
// the byte offset at which it was detected, and the offending byte (or
// EndOfInput). Errors are terminal: the lexer does not attempt to recover, and
// should be discarded after the first error. Use errors.Is to check the kind:
//
//	if errors.Is(err, jtok.UnterminatedString) {
//	   log.Print("Missing close quote")
//	}
//
// The kinds are:
//
//	Kind                 | Reported at                 | Cause
//	-------------------- | --------------------------- | -----------------------------
//	UnexpectedByte       | the offending byte          | no token can start or continue here
//	UnterminatedString   | the opening quote           | input ended inside a string
//	InvalidEscape        | the backslash               | unknown escape character
//	InvalidUnicodeEscape | the "u" of the escape       | bad hex digits or unpaired surrogate
//	InvalidNumber        | the first byte of the number| number does not match the grammar
package jtok
