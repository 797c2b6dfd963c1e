/*
File    : curvelang/parser/errors.go
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/curvelang/curvelang/lexer"
)

// AnalysisErrorKind classifies an error detected before evaluation
// (spec §7): a malformed token, an unexpected token, an unresolved
// name, or the one reserved-name violation the language defines
// (redefining T).
type AnalysisErrorKind int

const (
	IllegalToken AnalysisErrorKind = iota
	SyntaxError
	UndefinedVariable
	ReservedName
)

func (k AnalysisErrorKind) String() string {
	switch k {
	case IllegalToken:
		return "IllegalToken"
	case SyntaxError:
		return "SyntaxError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case ReservedName:
		return "ReservedName"
	default:
		return "AnalysisError"
	}
}

// AnalysisError is the single error type the parser returns. It
// carries the offending token, the set of token kinds that would have
// been accepted (meaningful only for SyntaxError), and the token's
// source position for a line/column pointer.
type AnalysisError struct {
	Kind     AnalysisErrorKind
	Token    lexer.Token
	Expected []lexer.TokenKind
}

func (e *AnalysisError) Error() string {
	var msg string
	switch e.Kind {
	case IllegalToken:
		msg = fmt.Sprintf("illegal token %q", e.Token.Lexeme)
	case UndefinedVariable:
		msg = fmt.Sprintf("undefined variable %q", e.Token.Lexeme)
	case ReservedName:
		msg = fmt.Sprintf("%q is a reserved name and cannot be redefined", e.Token.Lexeme)
	case SyntaxError:
		kinds := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			kinds[i] = string(k)
		}
		msg = fmt.Sprintf("unexpected %s %q, expected one of [%s]",
			e.Token.Kind, e.Token.Lexeme, strings.Join(kinds, ", "))
	default:
		msg = "analysis error"
	}
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, msg)
}
