// Logic family: and, or, not, xor (spec.md §4.6). `and`/`or` evaluate
// their arguments lazily, left to right, short-circuiting as soon as
// the result is determined — unlike every other non-special-form
// operator, which evaluates all of its arguments eagerly. This is why
// Dispatch hands them the unevaluated ast.ArgType slice instead of
// calling evalAll first, the same split original_source draws between
// arithmetic's do_op (eager fold) and logic's and_or (its own loop).
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func andOr(ctx Context, op operator.Type, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	shortCircuitOn := op == operator.Or // `or` stops at the first true, `and` at the first false
	for _, a := range args {
		v, err := ctx.Eval(a, env)
		if err != nil {
			return nil, err
		}
		b, ok := v.(value.Boolean)
		if !ok {
			return nil, calcerr.New(calcerr.NonBoolean, "%s requires boolean arguments, got %s", op, v.Kind())
		}
		if b.B == shortCircuitOn {
			return value.Boolean{B: shortCircuitOn}, nil
		}
	}
	return value.Boolean{B: !shortCircuitOn}, nil
}

func boolNot(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("not", calcerr.Exactly, 1)
	}
	b, ok := vals[0].(value.Boolean)
	if !ok {
		return nil, calcerr.New(calcerr.NonBoolean, "not requires a boolean argument, got %s", vals[0].Kind())
	}
	return value.Boolean{B: !b.B}, nil
}

func boolXor(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) < 2 {
		return nil, calcerr.Arity("xor", calcerr.AtLeast, 2)
	}
	acc, ok := vals[0].(value.Boolean)
	if !ok {
		return nil, calcerr.New(calcerr.NonBoolean, "xor requires boolean arguments, got %s", vals[0].Kind())
	}
	result := acc.B
	for _, v := range vals[1:] {
		b, ok := v.(value.Boolean)
		if !ok {
			return nil, calcerr.New(calcerr.NonBoolean, "xor requires boolean arguments, got %s", v.Kind())
		}
		result = result != b.B
	}
	return value.Boolean{B: result}, nil
}
