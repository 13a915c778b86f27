// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jtok/internal/escape"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input  string // the body of a string, after the open quote
		want   string
		n      int
		shared bool // no escapes, so the result is nil
	}{
		{`"`, "", 1, true},
		{`abc"`, "abc", 4, true},
		{`abc" trailing`, "abc", 4, true},
		{`a\"b"`, `a"b`, 5, false},
		{`\\\/"`, `\/`, 5, false},
		{`x\ty\nz"rest`, "x\ty\nz", 8, false},
		{`\u0041\u0062c"`, "Abc", 14, false},
		{`\uD83D\uDE00"`, string(rune(0x1F600)), 13, false},
		{"raw \xff\x01 bytes\"", "raw \xff\x01 bytes", 13, true},
	}
	for _, test := range tests {
		dec, n, err := escape.Decode(mem.S(test.input))
		if err != nil {
			t.Errorf("Decode(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if n != test.n {
			t.Errorf("Decode(%#q): consumed %d bytes, want %d", test.input, n, test.n)
		}
		if (dec == nil) != test.shared {
			t.Errorf("Decode(%#q): result is nil=%v, want %v", test.input, dec == nil, test.shared)
		}
		got := string(dec)
		if dec == nil {
			got = test.input[:n-1]
		}
		if got != test.want {
			t.Errorf("Decode(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestDecode_errors(t *testing.T) {
	tests := []struct {
		input string
		want  escape.Error
	}{
		{``, escape.Error{Reason: escape.Unterminated, Pos: 0, Found: escape.EOF}},
		{`abc`, escape.Error{Reason: escape.Unterminated, Pos: 3, Found: escape.EOF}},
		{`ab\`, escape.Error{Reason: escape.Unterminated, Pos: 3, Found: escape.EOF}},
		{`ab\"`, escape.Error{Reason: escape.Unterminated, Pos: 4, Found: escape.EOF}},
		{`a\e"`, escape.Error{Reason: escape.BadEscape, Pos: 1, Found: 'e'}},
		{`\U0041"`, escape.Error{Reason: escape.BadEscape, Pos: 0, Found: 'U'}},
		{`\u004"`, escape.Error{Reason: escape.BadUnicode, Pos: 1, Found: '"'}},
		{`\u00`, escape.Error{Reason: escape.BadUnicode, Pos: 1, Found: escape.EOF}},
		{`\udbff"`, escape.Error{Reason: escape.BadUnicode, Pos: 1, Found: 'u'}},
		{`\udbff\udbff"`, escape.Error{Reason: escape.BadUnicode, Pos: 1, Found: 'u'}},
		{`\udfff"`, escape.Error{Reason: escape.BadUnicode, Pos: 1, Found: 'u'}},
		{`\ud800\udc0`, escape.Error{Reason: escape.BadUnicode, Pos: 7, Found: escape.EOF}},
	}
	for _, test := range tests {
		dec, _, err := escape.Decode(mem.S(test.input))
		var got *escape.Error
		if !errors.As(err, &got) {
			t.Errorf("Decode(%#q): got %q, %v; want *escape.Error", test.input, dec, err)
			continue
		}
		if diff := cmp.Diff(test.want, *got); diff != "" {
			t.Errorf("Decode(%#q): error (-want, +got)\n%s", test.input, diff)
		}
		if dec != nil {
			t.Errorf("Decode(%#q): got %q with error, want nil", test.input, dec)
		}
	}
}

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"tab\there", `"tab\there"`},
		{"\x7f\x1f", `"` + "\x7f" + `\u001f"`},
		{`"quoted"`, `"\"quoted\""`},
		{string(rune(0xe9)) + "t" + string(rune(0xe9)), `"` + string(rune(0xe9)) + "t" + string(rune(0xe9)) + `"`},
	}
	for _, test := range tests {
		got := string(escape.AppendQuote([]byte("prefix:"), mem.S(test.input)))
		if want := "prefix:" + test.want; got != want {
			t.Errorf("AppendQuote(%#q): got %#q, want %#q", test.input, got, want)
		}
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  escape.Error
		want string
	}{
		{escape.Error{Reason: escape.BadEscape, Pos: 3, Found: 'q'},
			`invalid escape at offset 3: found 'q'`},
		{escape.Error{Reason: escape.Unterminated, Pos: 9, Found: escape.EOF},
			`unterminated string at offset 9: unexpected end of input`},
		{escape.Error{Reason: 99, Pos: 0, Found: 'x'},
			`unknown reason at offset 0: found 'x'`},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error: got %#q, want %#q", got, test.want)
		}
	}
}
