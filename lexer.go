// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"iter"
	"strings"

	"github.com/creachadair/jtok/internal/escape"
	"go4.org/mem"
)

// A Lexer reads lexical tokens from a JSON input buffer. Each call to Next
// advances the lexer to the next token, or reports an error.
//
// A Lexer does not copy its input, and the caller must not modify the input
// while the lexer or any of its tokens are in use. After Next reports an
// error the lexer should be discarded.
type Lexer struct {
	input []byte
	pos   int // offset of the next unread byte
}

// NewLexer constructs a new lexer that consumes input. An empty input is
// valid, and yields only an EOF token.
func NewLexer(input []byte) *Lexer { return &Lexer{input: input} }

// Next advances l to the next token of the input and returns it, or reports
// an error of concrete type *Error.
//
// At the end of the input, Next returns a token of kind EOF with an empty
// span at the end offset. Once EOF has been reached, all further calls return
// the same token.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Span: Span{Pos: l.pos, End: l.pos}}, nil
	}

	switch ch := l.input[l.pos]; ch {
	case '{', '}', '[', ']', ':', ',':
		start := l.pos
		l.pos++
		return Token{Kind: selfDelim(ch), Span: Span{Pos: start, End: l.pos}}, nil
	case 't':
		return l.scanKeyword("true", True)
	case 'f':
		return l.scanKeyword("false", False)
	case 'n':
		return l.scanKeyword("null", Null)
	case '"':
		return l.scanString()
	default:
		if isNumStart(ch) {
			return l.scanNumber()
		}
		return Token{}, l.fail(UnexpectedByte, l.pos, rune(ch))
	}
}

// All returns an iterator over the remaining tokens of l. The sequence ends
// after the EOF token, or after the first error.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if !yield(tok, err) || err != nil || tok.Kind == EOF {
				return
			}
		}
	}
}

// Pos returns the current offset of the lexer in its input.
func (l *Lexer) Pos() int { return l.pos }

// Input returns the input buffer of l. The caller must not modify it.
func (l *Lexer) Input() []byte { return l.input }

// Location returns the complete location of span in the input of l.
func (l *Lexer) Location(span Span) Location { return Locate(l.input, span) }

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

// scanKeyword matches word byte for byte at the current offset.  On a
// mismatch the lexer stops at the first byte that differs.
func (l *Lexer) scanKeyword(word string, kind Kind) (Token, error) {
	start := l.pos
	rest, want := mem.B(l.input[start:]), mem.S(word)

	k := 0
	for k < want.Len() && k < rest.Len() && rest.At(k) == want.At(k) {
		k++
	}
	if k == want.Len() {
		l.pos += k
		return Token{Kind: kind, Span: Span{Pos: start, End: l.pos}}, nil
	}
	return Token{}, l.fail(UnexpectedByte, start+k, l.byteAt(start+k))
}

func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	body := l.input[start+1:]
	dec, n, err := escape.Decode(mem.B(body))
	if err != nil {
		var eerr *escape.Error
		if !errors.As(err, &eerr) {
			return Token{}, err
		}
		switch eerr.Reason {
		case escape.BadEscape:
			return Token{}, l.fail(InvalidEscape, start+1+eerr.Pos, eerr.Found)
		case escape.BadUnicode:
			return Token{}, l.fail(InvalidUnicodeEscape, start+1+eerr.Pos, eerr.Found)
		default:
			return Token{}, l.fail(UnterminatedString, start, EndOfInput)
		}
	}
	if dec == nil {
		dec = body[:n-1] // no escapes, share the input
	}
	l.pos = start + 1 + n
	return Token{Kind: String, Span: Span{Pos: start, End: l.pos}, Value: dec}, nil
}

// scanNumber matches the JSON number grammar at the current offset:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// Any violation is reported at the first byte of the number.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	i := start
	if l.input[i] == '-' {
		i++
	}

	// Integer part: exactly 0, or a nonzero digit followed by digits.
	// That is: 0 and 10 are OK, 01 is not.
	if l.byteAt(i) == '0' {
		i++
		if isDigit(l.byteAt(i)) {
			return Token{}, l.fail(InvalidNumber, start, l.byteAt(i))
		}
	} else if j := l.digits(i); j > i {
		i = j
	} else {
		return Token{}, l.fail(InvalidNumber, start, l.byteAt(i))
	}

	// Optional fraction, requiring at least one digit.
	if l.byteAt(i) == '.' {
		j := l.digits(i + 1)
		if j == i+1 {
			return Token{}, l.fail(InvalidNumber, start, l.byteAt(j))
		}
		i = j
	}

	// Optional exponent, with an optional sign and at least one digit.
	if ch := l.byteAt(i); ch == 'e' || ch == 'E' {
		i++
		if ch := l.byteAt(i); ch == '+' || ch == '-' {
			i++
		}
		j := l.digits(i)
		if j == i {
			return Token{}, l.fail(InvalidNumber, start, l.byteAt(j))
		}
		i = j
	}

	l.pos = i
	return Token{Kind: Number, Span: Span{Pos: start, End: i}, Value: l.input[start:i]}, nil
}

// digits returns the offset of the first non-digit at or after i.
func (l *Lexer) digits(i int) int {
	for i < len(l.input) && isDigit(rune(l.input[i])) {
		i++
	}
	return i
}

// byteAt returns the byte at offset i of the input, or EndOfInput if i is
// past the end.
func (l *Lexer) byteAt(i int) rune {
	if i < len(l.input) {
		return rune(l.input[i])
	}
	return EndOfInput
}

// fail moves the lexer to offset and reports an error of the given kind.
func (l *Lexer) fail(kind ErrorKind, offset int, found rune) error {
	l.pos = offset
	return &Error{Kind: kind, Offset: offset, Found: found}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(rune(ch)) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LBrace, RBrace, LBracket, RBracket, Colon, Comma}

func selfDelim(ch byte) Kind {
	if i := strings.IndexByte("{}[]:,", ch); i >= 0 {
		return self[i]
	}
	return Invalid
}
