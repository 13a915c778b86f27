// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jtok"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029", `"\u2028 \u2029"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"a\xffb", `"a\ufffdb"`},
	}
	for _, test := range tests {
		got := jtok.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  error
	}{
		{``, ``, jtok.UnexpectedByte},                   // missing quotes
		{`"missing quote`, ``, jtok.UnterminatedString}, // missing quotes
		{`missing quote"`, ``, jtok.UnexpectedByte},     // missing quotes
		{`"a" `, ``, jtok.UnexpectedByte},               // trailing input
		{`""`, ``, nil},                                 // ok
		{`"ok go"`, "ok go", nil},                       // ok
		{`"abc\ndef"`, "abc\ndef", nil},                 // C escapes
		{`"\tabc\n"`, "\tabc\n", nil},                   // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", nil},             // C escapes
		{`"a \u0026 b"`, "a & b", nil},                  // short Unicode escape
		{`"\u"`, ``, jtok.InvalidUnicodeEscape},         // incomplete Unicode escape
		{`"\u00"`, ``, jtok.InvalidUnicodeEscape},       // incomplete Unicode escape
		{`"\u00x9"`, ``, jtok.InvalidUnicodeEscape},     // invalid Unicode escape
		{`"a\qb"`, ``, jtok.InvalidEscape},              // invalid escape
		{`"a\"b"`, `a"b`, nil},                          // ok
		{`"a\\b\\cd"`, `a\b\cd`, nil},                   // ok
		{`"\ud834\udd1e"`, string(rune(0x1D11E)), nil},  // surrogate pair
	}

	for _, test := range tests {
		got, err := jtok.Unquote([]byte(test.input))
		if err != nil {
			if test.fail == nil {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else if !errors.Is(err, test.fail) {
				t.Errorf("Unquote(%#q): got %v, want %v", test.input, err, test.fail)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail != nil {
			t.Errorf("Unquote(%#q): got nil, want %v", test.input, test.fail)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
