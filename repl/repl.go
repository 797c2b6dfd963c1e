/*
File    : curvelang/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop: each
// line is one statement, parsed and evaluated against symbol table and
// generator state that persist for the whole session, with readline
// history and colored feedback.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/curvelang/curvelang/ast"
	"github.com/curvelang/curvelang/generator"
	"github.com/curvelang/curvelang/lexer"
	"github.com/curvelang/curvelang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session. Its visual fields are cosmetic only;
// all interpreter state lives in the symbol table and generator it
// creates in Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl returns a Repl configured with the given display strings.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Enter one statement per line, terminated with ';'.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.points' to see how many points have accumulated so far.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against a single persistent symbol table
// and generator, so that a DEF or LET on one line is visible to every
// line after it, and every accepted point accumulates across the whole
// session.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	symbols := ast.NewSymbolTable()
	gen := generator.NewGenerator()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".points" {
			yellowColor.Fprintf(writer, "%d points accumulated\n", gen.Count())
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, symbols, gen)
	}
}

// executeWithRecovery parses and evaluates one statement line against
// the session's shared state, recovering from any panic so a single
// bad line cannot end the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, symbols *ast.SymbolTable, gen *generator.Generator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	rd, err := lexer.NewReader(strings.NewReader(line))
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	lx := lexer.NewLexer(rd)
	p := parser.NewParserWithState(lx, symbols, gen)
	p.Warn = func(discarded int) {
		yellowColor.Fprintf(writer, "warning: %d point(s) discarded outside the viewport\n", discarded)
	}

	if err := p.ParseStatement(); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	yellowColor.Fprintf(writer, "ok (%d points so far)\n", gen.Count())
}
