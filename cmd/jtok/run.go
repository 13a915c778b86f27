// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jtok"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/tailscale/hujson"
)

const (
	formatDump = "dump"
	formatText = "text"
)

// options carry the command-line settings of the program.
type options struct {
	HuJSON   bool   // standardize HuJSON input before lexing
	Format   string // one of formatDump, formatText
	AllLines bool   // lex every input line rather than only the first
	NoColor  bool   // disable colors in diagnostics
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// run lexes lines from r and writes their tokens to w. A diagnostic for the
// first lexical error is written to ew, and the error is returned.
func run(r io.Reader, w, ew io.Writer, opts options) error {
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := readLine(br)
		if err == io.EOF && (n > 1 || opts.AllLines) {
			return nil
		} else if err != nil && err != io.EOF {
			return fmt.Errorf("read line %d: %w", n, err)
		}

		if err := lexLine(line, w, ew, opts); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if !opts.AllLines || err == io.EOF {
			return nil
		}
	}
}

// readLine reads a single line from br without its line terminator. It
// reports io.EOF only if no further input is available.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, err
}

func lexLine(line []byte, w, ew io.Writer, opts options) error {
	if opts.HuJSON {
		std, err := hujson.Standardize(bytes.Clone(line))
		if err != nil {
			return fmt.Errorf("standardize: %w", err)
		}
		line = std // offsets are preserved by standardization
	}

	toks, err := jtok.Tokens(line)
	if err != nil {
		var lerr *jtok.Error
		if errors.As(err, &lerr) {
			diagnose(ew, line, lerr, opts.NoColor)
		}
		return err
	}

	switch opts.Format {
	case formatText:
		for _, tok := range toks {
			fmt.Fprintf(w, "%-10s %v\n", jtok.Locate(line, tok.Span), tok)
		}
	default:
		dumper.Fdump(w, toks)
	}
	return nil
}

// diagnose writes a description of err to w, followed by the text of the
// line containing the error with a caret under the offending column.
func diagnose(w io.Writer, input []byte, err *jtok.Error, noColor bool) {
	bold := color.New(color.FgRed, color.Bold)
	caret := color.New(color.FgYellow)
	if noColor {
		bold.DisableColor()
		caret.DisableColor()
	}

	loc := jtok.Locate(input, jtok.Span{Pos: err.Offset, End: err.Offset})
	text := lineAt(input, err.Offset)

	bold.Fprintf(w, "error: %v\n", err)
	prefix := fmt.Sprintf("%d | ", loc.First.Line)
	fmt.Fprintf(w, "%s%s\n", prefix, text)
	caret.Fprintf(w, "%s^\n", strings.Repeat(" ", len(prefix)+loc.First.Column))
}

// lineAt returns the line of input containing offset, without its terminator.
func lineAt(input []byte, offset int) []byte {
	offset = min(offset, len(input))
	start := bytes.LastIndexByte(input[:offset], '\n') + 1
	end := len(input)
	if i := bytes.IndexByte(input[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return bytes.TrimSuffix(input[start:end], []byte("\r"))
}
