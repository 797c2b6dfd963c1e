/*
File    : curvelang/lexer/reader.go
*/

// Package lexer implements the character reader and scanner for curvelang
// source text: a byte-oriented cursor that case-folds to upper case and
// tracks (line, column), feeding a hand-written lexer that yields a lazy,
// finite token stream terminated by EOF.
package lexer

import (
	"bytes"
	"io"
)

// Reader is the character-level source cursor (component 1 of the
// pipeline). It reads the entire source once, case-folds it to upper
// case (identifiers are matched case-insensitively and the language has
// no string literals, so folding eagerly is safe), and exposes Peek,
// Advance, and Position.
type Reader struct {
	src    []byte
	offset int // index into src of Current
	length int

	Current byte // the character at offset, or 0 at end of input
	Line    int  // line of the last character returned by Advance (1-indexed)
	Column  int  // column of the last character returned by Advance (1-indexed)
}

// NewReader reads r to completion and returns a Reader positioned
// before the first character.
func NewReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src := bytes.ToUpper(data)
	rd := &Reader{src: src, length: len(src), Line: 1, Column: 0}
	if rd.length > 0 {
		rd.Current = rd.src[0]
	}
	return rd, nil
}

// Peek returns the current character without consuming it, or 0 at
// end of input.
func (rd *Reader) Peek() byte {
	return rd.Current
}

// Advance consumes and returns the current character, advancing Line
// and Column. \r, \n, and \r\n each advance the line counter exactly
// once; Column resets to 0 on a line advance.
func (rd *Reader) Advance() byte {
	c := rd.Current
	if c == 0 {
		return 0
	}
	rd.offset++
	switch c {
	case '\n':
		rd.Line++
		rd.Column = 0
	case '\r':
		if rd.offset < rd.length && rd.src[rd.offset] == '\n' {
			rd.offset++
		}
		rd.Line++
		rd.Column = 0
	default:
		rd.Column++
	}
	if rd.offset < rd.length {
		rd.Current = rd.src[rd.offset]
	} else {
		rd.Current = 0
	}
	return c
}

// PeekAt looks ahead n characters past Current without consuming
// anything (PeekAt(1) is the character after Current). Returns 0 past
// end of input.
func (rd *Reader) PeekAt(n int) byte {
	idx := rd.offset + n
	if idx < 0 || idx >= rd.length {
		return 0
	}
	return rd.src[idx]
}

// Position returns the (line, column) of the character just consumed
// by the most recent Advance.
func (rd *Reader) Position() (line, col int) {
	return rd.Line, rd.Column
}
