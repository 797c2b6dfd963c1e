/*
File    : curvelang/parser/parser.go
*/

// Package parser implements the expression parser and the statement
// parser/evaluator (components 3 and 4 of the pipeline): classical
// recursive descent over the lexer's token stream, building an
// expression AST against a shared variable symbol table, and
// executing each of the six statement forms as soon as it is parsed.
package parser

import (
	"github.com/curvelang/curvelang/ast"
	"github.com/curvelang/curvelang/generator"
	"github.com/curvelang/curvelang/lexer"
)

// Parser holds one token of lookahead plus the two pieces of state
// statement execution mutates: the live variable symbol table and the
// point generator's transform. Parsing and evaluation of statements
// happen in the same pass, so by the time ParseProgram returns, every
// accepted point has already been submitted to Generator().
type Parser struct {
	lx  *lexer.Lexer
	cur lexer.Token

	symbols *ast.SymbolTable
	gen     *generator.Generator

	// Warn, if non-nil, is called once per FOR statement that
	// discarded at least one point to the viewport, reporting how many
	// were dropped (spec: "may be reported via a warning message at
	// the end of a FOR statement").
	Warn func(discarded int)
}

// NewParser wraps lx in a Parser with a fresh symbol table and point
// generator.
func NewParser(lx *lexer.Lexer) *Parser {
	return NewParserWithState(lx, ast.NewSymbolTable(), generator.NewGenerator())
}

// NewParserWithState wraps lx in a Parser that shares an existing
// symbol table and generator rather than starting fresh, so a REPL
// session can parse one line at a time while carrying variable
// bindings, the transform, and accumulated points across lines.
func NewParserWithState(lx *lexer.Lexer, symbols *ast.SymbolTable, gen *generator.Generator) *Parser {
	p := &Parser{lx: lx, symbols: symbols, gen: gen}
	p.advance()
	return p
}

// Generator returns the point generator statements mutate and submit
// to.
func (p *Parser) Generator() *generator.Generator { return p.gen }

// Symbols returns the live variable symbol table.
func (p *Parser) Symbols() *ast.SymbolTable { return p.symbols }

func (p *Parser) advance() {
	p.cur = p.lx.NextToken()
}

// eat requires the current token to be kind, reporting IllegalToken or
// SyntaxError instead of a misleading mismatch when the current token
// is itself ILLEGAL (spec §9: illegal-token propagation must be
// checked before the expected-kind check). On success it consumes the
// token and advances.
func (p *Parser) eat(kind lexer.TokenKind) (lexer.Token, error) {
	if p.cur.Kind == lexer.ILLEGAL {
		return lexer.Token{}, &AnalysisError{Kind: IllegalToken, Token: p.cur}
	}
	if p.cur.Kind != kind {
		return lexer.Token{}, &AnalysisError{Kind: SyntaxError, Token: p.cur, Expected: []lexer.TokenKind{kind}}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// syntaxErrorExpected builds the SyntaxError/IllegalToken for a
// position that doesn't correspond to a single eat call (e.g. a
// statement dispatch or an atom with several alternatives).
func (p *Parser) syntaxErrorExpected(kinds ...lexer.TokenKind) error {
	if p.cur.Kind == lexer.ILLEGAL {
		return &AnalysisError{Kind: IllegalToken, Token: p.cur}
	}
	return &AnalysisError{Kind: SyntaxError, Token: p.cur, Expected: kinds}
}

// parseBareName eats a NAME token (IDENT or the reserved T) without
// resolving it against the symbol table — used by DEF (which
// introduces a slot) and LET (which looks the name up itself to
// enforce pre-existence).
func (p *Parser) parseBareName() (lexer.Token, error) {
	if p.cur.Kind == lexer.ILLEGAL {
		return lexer.Token{}, &AnalysisError{Kind: IllegalToken, Token: p.cur}
	}
	if p.cur.Kind != lexer.IDENT && p.cur.Kind != lexer.T {
		return lexer.Token{}, &AnalysisError{Kind: SyntaxError, Token: p.cur, Expected: []lexer.TokenKind{lexer.IDENT}}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// ParseProgram parses and evaluates `(Statement ';')* EOF`. The
// statement separator is mandatory and terminal, not separating: the
// program ends between statements only, at EOF. The first error
// aborts the whole program; no statement after the failing one runs.
func (p *Parser) ParseProgram() error {
	for p.cur.Kind != lexer.EOF {
		if err := p.parseStatement(); err != nil {
			return err
		}
		if _, err := p.eat(lexer.SEMI); err != nil {
			return err
		}
	}
	return nil
}

// ParseStatement parses and evaluates exactly one `Statement ';'`,
// without requiring EOF to follow — the form a REPL line takes, as
// opposed to ParseProgram's whole-file grammar.
func (p *Parser) ParseStatement() error {
	if p.cur.Kind == lexer.EOF {
		return nil
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	_, err := p.eat(lexer.SEMI)
	return err
}

func (p *Parser) parseStatement() error {
	switch p.cur.Kind {
	case lexer.ORIGIN:
		return p.parseOrigin()
	case lexer.SCALE:
		return p.parseScale()
	case lexer.ROT:
		return p.parseRot()
	case lexer.FOR:
		return p.parseFor()
	case lexer.DEF:
		return p.parseDef()
	case lexer.LET:
		return p.parseLet()
	case lexer.ILLEGAL:
		return &AnalysisError{Kind: IllegalToken, Token: p.cur}
	default:
		return p.syntaxErrorExpected(lexer.ORIGIN, lexer.SCALE, lexer.ROT, lexer.FOR, lexer.DEF, lexer.LET)
	}
}
