/*
File    : curvelang/eval/eval.go
*/

// Package eval wires the pipeline's reader, lexer, parser, generator,
// and rendering sink into the single top-level entry point a file-mode
// run calls: parse and evaluate a complete
// program, then hand its accepted points to a Sink.
package eval

import (
	"io"

	"github.com/curvelang/curvelang/lexer"
	"github.com/curvelang/curvelang/parser"
	"github.com/curvelang/curvelang/render"
)

// Run reads a complete program from r, parses and evaluates it
// statement by statement (ORIGIN/SCALE/ROT/FOR/DEF/LET run as they are
// parsed), drains the resulting points, and renders them to sink. A
// parse or runtime error aborts before any points are drained or
// rendered.
func Run(r io.Reader, sink render.Sink) error {
	rd, err := lexer.NewReader(r)
	if err != nil {
		return err
	}
	lx := lexer.NewLexer(rd)
	p := parser.NewParser(lx)

	if err := p.ParseProgram(); err != nil {
		return err
	}

	points, err := p.Generator().Drain()
	if err != nil {
		return err
	}
	return sink.Render(points, p.Generator().Viewport())
}
