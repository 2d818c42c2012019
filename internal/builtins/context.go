// Package builtins implements the operator/function dispatch table of
// spec.md §4.5-4.6: the concrete behavior behind every non-special-form
// operator in internal/operator's catalogue.
//
// Every builtin function takes a Context first, the same shape the
// teacher's internal/interp/builtins package uses (`func Pos(ctx
// Context, args []Value) Value`): Context is the thin seam that lets
// this package call back into internal/evaluator (to evaluate
// arguments, and to apply user Procs for map/reduce/filter/matrix-from-fn)
// without importing it — internal/evaluator imports internal/builtins,
// so the reverse import would cycle.
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Context is implemented by *evaluator.Evaluator.
type Context interface {
	// Eval evaluates node in env, following the normal (non-special-form)
	// evaluation rules.
	Eval(node ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError)
	// Apply calls a user Proc with already-evaluated arguments.
	Apply(proc value.Proc, args []value.Value) (value.Value, *calcerr.CalcError)
}

// evalAll evaluates every arg left-to-right, the uniform applicator
// spec.md §4.4 describes for non-special-form operators.
func evalAll(ctx Context, args []ast.ArgType, env *environment.Frame) ([]value.Value, *calcerr.CalcError) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ctx.Eval(a, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
