// Package ast defines the tree internal/translator builds and
// internal/evaluator walks (spec.md §3, §4.2). It depends only on
// internal/operator and internal/rational: it deliberately knows
// nothing about internal/value, the same way the teacher's pkg/ast
// knows nothing about internal/interp/runtime — internal/evaluator is
// the one that converts an ast.Literal into a runtime Value, at eval
// time (its desymbolize, the contract of spec.md §4.4), not the other
// way round.
package ast

import (
	"fmt"

	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
)

// LiteralKind distinguishes the three shapes a parsed atom can take
// before the evaluator resolves it against an environment.
type LiteralKind int

const (
	LitBigNum LiteralKind = iota
	LitBoolean
	LitSymbol
)

// Literal is an already-tokenized atom: a number, a boolean, or a bare
// identifier (symbol) still waiting to be looked up.
type Literal struct {
	Kind LiteralKind
	Num  rational.Rational
	Bool bool
	Sym  string
}

func (l Literal) String() string {
	switch l.Kind {
	case LitBigNum:
		return l.Num.String()
	case LitBoolean:
		if l.Bool {
			return "true"
		}
		return "false"
	default:
		return l.Sym
	}
}

// Head is the operator or user-defined function an SExpr applies.
type Head struct {
	IsOperator bool
	Op         operator.Type
	Name       string // set when !IsOperator: a user-defined function/variable name
}

func (h Head) String() string {
	if h.IsOperator {
		return h.Op.String()
	}
	return h.Name
}

// Expression is a parenthesised head-then-arguments S-expression.
type Expression struct {
	Head Head
	Args []ArgType
}

func (e Expression) String() string {
	s := "(" + e.Head.String()
	for _, a := range e.Args {
		s += " " + a.String()
	}
	return s + ")"
}

// ArgType is either a literal Atom or a nested S-expression (spec.md
// §3 "ArgType").
type ArgType struct {
	IsAtom bool
	Atom   Literal
	SExpr  Expression
}

// NewAtom wraps a Literal as an ArgType.
func NewAtom(l Literal) ArgType { return ArgType{IsAtom: true, Atom: l} }

// NewSExpr wraps an Expression as an ArgType.
func NewSExpr(e Expression) ArgType { return ArgType{IsAtom: false, SExpr: e} }

func (a ArgType) String() string {
	if a.IsAtom {
		return a.Atom.String()
	}
	return a.SExpr.String()
}

// GoString supports `%#v`-style debug dumps (see cmd/pcalc/cmd's
// `parse --dump-ast`, which formats this tree with kr/pretty).
func (a ArgType) GoString() string {
	if a.IsAtom {
		return fmt.Sprintf("Atom(%s)", a.Atom.String())
	}
	return fmt.Sprintf("SExpr(%s)", a.SExpr.String())
}
