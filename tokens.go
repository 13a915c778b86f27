// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

// Tokens lexes all of input and returns its tokens in order. On success the
// last token has kind EOF and no other token does. Otherwise Tokens returns
// nil and the first error reported by the lexer.
func Tokens(input []byte) ([]Token, error) {
	var out []Token
	for tok, err := range NewLexer(input).All() {
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

// MustTokens is as Tokens, but panics if input is not lexically valid.
// It is intended for tests and static inputs.
func MustTokens(input []byte) []Token {
	toks, err := Tokens(input)
	if err != nil {
		panic(err)
	}
	return toks
}
