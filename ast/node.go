/*
File    : curvelang/ast/node.go
*/

// Package ast defines the expression AST node variants and the
// variable symbol table they share. A Node evaluates to a float64 or
// an error; nodes do not retain references to the tokens they were
// parsed from beyond what the variant itself needs.
package ast

import (
	"github.com/curvelang/curvelang/lexer"
)

// Node is the sum type of the expression AST: Const, Binary, Call, or
// Variable. Each node exclusively owns its children except Variable,
// which holds a non-owning reference to a symbol-table slot.
type Node interface {
	// Eval computes this node's value, recursing into children as
	// needed. Evaluation never panics; arithmetic domain results
	// (NaN, ±Inf) propagate as ordinary values and are never reported
	// as errors here. The returned error carries only a built-in's arity
	// failure or a child's error; flagging non-finite coordinates is left
	// to the generator's Strict mode.
	Eval() (float64, error)
}

// ConstNode is a leaf holding a fixed number.
type ConstNode struct {
	Value float64
}

func (n *ConstNode) Eval() (float64, error) { return n.Value, nil }

// BinaryNode is an internal node combining two children with the
// arithmetic closure carried by the operator's token.
type BinaryNode struct {
	Op          string
	Fn          lexer.OperatorFunc
	Left, Right Node
}

func (n *BinaryNode) Eval() (float64, error) {
	l, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	return n.Fn([]float64{l, r})
}

// CallNode is an internal node invoking a built-in function: every
// argument is evaluated first, then Fn is invoked with the resulting
// vector. Fn validates its own arity.
type CallNode struct {
	Name string
	Fn   lexer.OperatorFunc
	Args []Node
}

func (n *CallNode) Eval() (float64, error) {
	vals := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		v, err := arg.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return n.Fn(vals)
}

// Cell is a stable, mutable slot in the variable symbol table: its
// identity never changes for the lifetime of the table, but its
// contents may be replaced (by LET, or by the FOR driver rebinding T).
// A VariableNode's reference to a Cell therefore survives whatever
// reassignment happens to the name after the node was built.
type Cell struct {
	Node Node
}

// VariableNode is a leaf holding a shared, non-owning reference to a
// symbol-table Cell. Evaluation dereferences the cell and evaluates
// whatever node currently lives there, so a LET that replaces the
// cell's contents is immediately visible to every VariableNode that
// already points at it.
type VariableNode struct {
	Name string
	Cell *Cell
}

func (n *VariableNode) Eval() (float64, error) {
	return n.Cell.Node.Eval()
}
