/*
File    : curvelang/parser/expr.go
*/
package parser

import (
	"github.com/curvelang/curvelang/ast"
	"github.com/curvelang/curvelang/lexer"
)

// parseExpression implements `Expression → Term (('+' | '-') Term)*`,
// left-associative.
func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		opTok := p.cur
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		fn, _ := lexer.OperatorFuncFor(opTok.Kind)
		left = &ast.BinaryNode{Op: string(opTok.Kind), Fn: fn, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm implements `Term → Factor (('*' | '/') Factor)*`,
// left-associative.
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.MUL || p.cur.Kind == lexer.DIV {
		opTok := p.cur
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		fn, _ := lexer.OperatorFuncFor(opTok.Kind)
		left = &ast.BinaryNode{Op: string(opTok.Kind), Fn: fn, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor implements `Factor → ('+' | '-')? Component`. Unary '+'
// is transparent; unary '-' compiles to Binary(subtract, Const(0), x)
// so the AST carries no separate unary-node kind.
func (p *Parser) parseFactor() (ast.Node, error) {
	switch p.cur.Kind {
	case lexer.PLUS:
		p.advance()
		return p.parseComponent()
	case lexer.MINUS:
		p.advance()
		operand, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		fn, _ := lexer.OperatorFuncFor(lexer.MINUS)
		return &ast.BinaryNode{Op: "-", Fn: fn, Left: &ast.ConstNode{Value: 0}, Right: operand}, nil
	default:
		return p.parseComponent()
	}
}

// parseComponent implements `Component → Atom ('**' Component)?`,
// right-associative (the recursive call on the right-hand side, not a
// loop, is what makes 2**3**2 parse as 2**(3**2)).
func (p *Parser) parseComponent() (ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.POWER {
		p.advance()
		right, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		fn, _ := lexer.OperatorFuncFor(lexer.POWER)
		return &ast.BinaryNode{Op: "**", Fn: fn, Left: atom, Right: right}, nil
	}
	return atom, nil
}

// parseAtom implements `Atom → NUMBER | NAME | FUNC '(' ArgList? ')' |
// '(' Expression ')'`. NAME is resolved against the live symbol table
// at parse time, not deferred: an undefined variable is a
// parse-time (analysis) error, never a runtime one.
func (p *Parser) parseAtom() (ast.Node, error) {
	switch p.cur.Kind {
	case lexer.CONST:
		v := p.cur.Value
		p.advance()
		return &ast.ConstNode{Value: v}, nil

	case lexer.IDENT, lexer.T:
		tok := p.cur
		p.advance()
		cell, ok := p.symbols.Lookup(tok.Lexeme)
		if !ok {
			return nil, &AnalysisError{Kind: UndefinedVariable, Token: tok}
		}
		return &ast.VariableNode{Name: tok.Lexeme, Cell: cell}, nil

	case lexer.LPAREN:
		p.advance()
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.RPAREN); err != nil {
			return nil, err
		}
		return node, nil

	case lexer.FUNC:
		name, fn := p.cur.Lexeme, p.cur.Fn
		p.advance()
		if _, err := p.eat(lexer.LPAREN); err != nil {
			return nil, err
		}
		var args []ast.Node
		if p.cur.Kind != lexer.RPAREN {
			list, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			args = list
		}
		if _, err := p.eat(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.CallNode{Name: name, Fn: fn, Args: args}, nil

	case lexer.ILLEGAL:
		return nil, &AnalysisError{Kind: IllegalToken, Token: p.cur}

	default:
		return nil, &AnalysisError{
			Kind:     SyntaxError,
			Token:    p.cur,
			Expected: []lexer.TokenKind{lexer.CONST, lexer.IDENT, lexer.LPAREN, lexer.FUNC},
		}
	}
}

// parseArgList implements `ArgList → Expression (',' Expression)*`.
// Arity is not checked here: it is validated at evaluation time by the
// OperatorFunc the FUNC token carries.
func (p *Parser) parseArgList() ([]ast.Node, error) {
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	args := []ast.Node{first}
	for p.cur.Kind == lexer.COMMA {
		p.advance()
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}
