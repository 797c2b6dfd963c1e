/*
File    : curvelang/parser/stmt.go
*/
package parser

import (
	"fmt"

	"github.com/curvelang/curvelang/lexer"
)

// parseOrigin implements `ORIGIN IS '(' Expression ',' Expression ')'`,
// evaluating both coordinates immediately and installing them as the
// generator's translation.
func (p *Parser) parseOrigin() error {
	if _, err := p.eat(lexer.ORIGIN); err != nil {
		return err
	}
	if _, err := p.eat(lexer.IS); err != nil {
		return err
	}
	if _, err := p.eat(lexer.LPAREN); err != nil {
		return err
	}
	xNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.COMMA); err != nil {
		return err
	}
	yNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.RPAREN); err != nil {
		return err
	}
	x, err := xNode.Eval()
	if err != nil {
		return err
	}
	y, err := yNode.Eval()
	if err != nil {
		return err
	}
	p.gen.SetOrigin(x, y)
	return nil
}

// parseScale implements `SCALE IS '(' Expression ',' Expression ')'`.
func (p *Parser) parseScale() error {
	if _, err := p.eat(lexer.SCALE); err != nil {
		return err
	}
	if _, err := p.eat(lexer.IS); err != nil {
		return err
	}
	if _, err := p.eat(lexer.LPAREN); err != nil {
		return err
	}
	sxNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.COMMA); err != nil {
		return err
	}
	syNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.RPAREN); err != nil {
		return err
	}
	sx, err := sxNode.Eval()
	if err != nil {
		return err
	}
	sy, err := syNode.Eval()
	if err != nil {
		return err
	}
	p.gen.SetScale(sx, sy)
	return nil
}

// parseRot implements `ROT IS Expression`.
func (p *Parser) parseRot() error {
	if _, err := p.eat(lexer.ROT); err != nil {
		return err
	}
	if _, err := p.eat(lexer.IS); err != nil {
		return err
	}
	node, err := p.parseExpression()
	if err != nil {
		return err
	}
	theta, err := node.Eval()
	if err != nil {
		return err
	}
	p.gen.SetRot(theta)
	return nil
}

// parseFor implements
// `FOR T FROM Expression TO Expression STEP Expression DRAW '(' Expression ',' Expression ')'`.
// The three range bounds are evaluated eagerly, once, before the loop
// starts; the draw expressions are parsed into an AST once and then
// evaluated lazily, once per iteration, against T's cell rebound to
// the current parameter value.
func (p *Parser) parseFor() error {
	if _, err := p.eat(lexer.FOR); err != nil {
		return err
	}
	if _, err := p.eat(lexer.T); err != nil {
		return err
	}
	if _, err := p.eat(lexer.FROM); err != nil {
		return err
	}
	fromNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.TO); err != nil {
		return err
	}
	toNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.STEP); err != nil {
		return err
	}
	stepNode, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.DRAW); err != nil {
		return err
	}
	if _, err := p.eat(lexer.LPAREN); err != nil {
		return err
	}
	xExpr, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.COMMA); err != nil {
		return err
	}
	yExpr, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.eat(lexer.RPAREN); err != nil {
		return err
	}

	from, err := fromNode.Eval()
	if err != nil {
		return err
	}
	to, err := toNode.Eval()
	if err != nil {
		return err
	}
	step, err := stepNode.Eval()
	if err != nil {
		return err
	}
	if step <= 0 {
		return fmt.Errorf("FOR step must be positive, got %v", step)
	}

	discardedBefore := p.gen.Discarded
	for t := from; t <= to; t += step {
		p.symbols.SetParam(t)
		x, err := xExpr.Eval()
		if err != nil {
			return err
		}
		y, err := yExpr.Eval()
		if err != nil {
			return err
		}
		if _, err := p.gen.Submit(x, y); err != nil {
			return err
		}
	}
	if dropped := p.gen.Discarded - discardedBefore; dropped > 0 && p.Warn != nil {
		p.Warn(dropped)
	}
	return nil
}

// parseDef implements `DEF NAME '=' Expression`. T may not be
// redefined; every other name gets a fresh slot, shadowing any prior
// one (existing VariableNodes bound to the old Cell are unaffected).
func (p *Parser) parseDef() error {
	if _, err := p.eat(lexer.DEF); err != nil {
		return err
	}
	nameTok, err := p.parseBareName()
	if err != nil {
		return err
	}
	if nameTok.Kind == lexer.T {
		return &AnalysisError{Kind: ReservedName, Token: nameTok}
	}
	if _, err := p.eat(lexer.ASSIGN); err != nil {
		return err
	}
	node, err := p.parseExpression()
	if err != nil {
		return err
	}
	p.symbols.Define(nameTok.Lexeme, node)
	return nil
}

// parseLet implements `LET NAME '=' Expression`. The name must already
// be defined; LET rebinds its existing Cell in place so that every
// VariableNode already referencing it observes the new body on its
// next Eval.
func (p *Parser) parseLet() error {
	if _, err := p.eat(lexer.LET); err != nil {
		return err
	}
	nameTok, err := p.parseBareName()
	if err != nil {
		return err
	}
	if !p.symbols.Defined(nameTok.Lexeme) {
		return &AnalysisError{Kind: UndefinedVariable, Token: nameTok}
	}
	if _, err := p.eat(lexer.ASSIGN); err != nil {
		return err
	}
	node, err := p.parseExpression()
	if err != nil {
		return err
	}
	p.symbols.Rebind(nameTok.Lexeme, node)
	return nil
}
