// RoundIdent family: round, floor, ceiling, zero?, odd?, even? (spec.md
// §4.6). round/floor/ceiling use Euclidean division of numerator by
// denominator (spec.md §9's resolution of that Open Question);
// odd?/even? require an integral argument.
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func roundIdent(ctx Context, op operator.Type, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity(op.String(), calcerr.Exactly, 1)
	}
	n, err := bigNumOf(vals[0])
	if err != nil {
		return nil, err
	}

	switch op {
	case operator.Round:
		return value.BigNum{N: rational.Round(n)}, nil
	case operator.Floor:
		return value.BigNum{N: rational.Floor(n)}, nil
	case operator.Ceiling:
		return value.BigNum{N: rational.Ceil(n)}, nil
	case operator.ZeroP:
		return value.Boolean{B: n.IsZero()}, nil
	case operator.OddP, operator.EvenP:
		if !n.IsInteger() {
			return nil, calcerr.New(calcerr.BadArgType, "%s requires an integral argument, got %s", op, n)
		}
		i, ierr := n.Int64()
		if ierr != nil {
			return nil, calcerr.New(calcerr.BadArgType, "%s: %v", op, ierr)
		}
		odd := i%2 != 0
		if op == operator.OddP {
			return value.Boolean{B: odd}, nil
		}
		return value.Boolean{B: !odd}, nil
	default:
		panic("builtins: unreachable RoundIdent operator " + op.String())
	}
}
