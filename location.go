// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"bytes"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// IsEmpty reports whether s covers no input.
func (s Span) IsEmpty() bool { return s.Pos == s.End }

// Of returns the portion of input covered by s. The result is a view of
// input, not a copy. If s does not fit within input, Of returns nil.
func (s Span) Of(input []byte) []byte {
	if s.Pos < 0 || s.Pos > s.End || s.End > len(input) {
		return nil
	}
	return input[s.Pos:s.End]
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// String renders loc as "L:C-C" if the span lies on a single line, or as
// "L:C-L:C" otherwise.
func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%s-%d", loc.First, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// Locate computes the line and column offsets of span within input.
// Offsets past the end of input are clamped to its length.
func Locate(input []byte, span Span) Location {
	return Location{
		Span:  span,
		First: lineCol(input, span.Pos),
		Last:  lineCol(input, span.End),
	}
}

func lineCol(input []byte, pos int) LineCol {
	pos = min(max(pos, 0), len(input))
	head := input[:pos]
	col := pos
	if i := bytes.LastIndexByte(head, '\n'); i >= 0 {
		col = pos - i - 1
	}
	return LineCol{Line: bytes.Count(head, []byte{'\n'}) + 1, Column: col}
}
