// Package evaluator implements the tree-walking interpreter of
// spec.md §4.4: it resolves symbols via internal/environment and
// dispatches to internal/operator/internal/builtins for everything
// that is not a special form.
package evaluator

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/builtins"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Evaluator walks ASTs against an environment. It holds no state of
// its own; every method threads env as an explicit parameter, per
// spec.md §9 "Avoiding mutable globals".
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval implements the evaluator contract of spec.md §4.4, with an
// explicit trampoline over nested `if` tail positions so that a chain
// of N nested conditionals does not grow the host call stack
// proportionally to N (spec.md §8).
func (e *Evaluator) Eval(node ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	for {
		if node.IsAtom {
			return desymbolize(node.Atom, env)
		}

		expr := node.SExpr
		if expr.Head.IsOperator && expr.Head.Op.IsSpecialForm() {
			switch expr.Head.Op {
			case operator.Quote:
				return e.evalQuote(expr, env)
			case operator.Define:
				return e.evalDefine(expr, env)
			case operator.Lambda:
				return e.evalLambda(expr, env)
			case operator.If:
				branch, err := e.selectIfBranch(expr, env)
				if err != nil {
					return nil, err
				}
				if !branch.IsAtom && branch.SExpr.Head.IsOperator && branch.SExpr.Head.Op == operator.If {
					node = branch
					continue // tail-position trampoline, spec.md §4.4
				}
				return e.Eval(branch, env)
			}
		}

		if expr.Head.IsOperator {
			return builtins.Dispatch(expr.Head.Op, e, expr.Args, env)
		}

		return e.evalFunctionCall(expr, env)
	}
}

// desymbolize resolves an ast.Literal into a runtime value.Value,
// following the symbol binding once if it is a Symbol (spec.md §4.4
// "desymbolize is the contract name").
func desymbolize(lit ast.Literal, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	switch lit.Kind {
	case ast.LitBigNum:
		return value.BigNum{N: lit.Num}, nil
	case ast.LitBoolean:
		return value.Boolean{B: lit.Bool}, nil
	default:
		return env.Lookup(lit.Sym)
	}
}

func (e *Evaluator) evalFunctionCall(expr ast.Expression, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	fn, err := env.Lookup(expr.Head.Name)
	if err != nil {
		return nil, err
	}
	proc, ok := fn.(value.Proc)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "%s is not a procedure", expr.Head.Name)
	}

	args := make([]value.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.Apply(proc, args)
}

// Apply implements procedure application (spec.md §4.4 "Procedure
// application"): a fresh child of the closure's captured frame, with
// parameters bound positionally, evaluating the body in that child.
func (e *Evaluator) Apply(proc value.Proc, args []value.Value) (value.Value, *calcerr.CalcError) {
	if len(args) != len(proc.Params) {
		return nil, calcerr.Arity("<lambda>", calcerr.Exactly, len(proc.Params))
	}
	parent, _ := proc.Env.(*environment.Frame)
	frame := environment.NewChild(parent)
	for i, name := range proc.Params {
		frame.Bind(name, args[i])
	}
	return e.Eval(proc.Body, frame)
}
