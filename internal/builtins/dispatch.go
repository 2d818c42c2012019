package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Dispatch routes an operator call to its implementation, mirroring
// original_source/src/calc/operator/mod.rs's `eval` match over
// OperatorType (see SPEC_FULL.md's SUPPLEMENTED FEATURES). Special forms
// (quote/define/lambda/if) never reach here: internal/evaluator
// intercepts them before calling Dispatch.
func Dispatch(op operator.Type, ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	switch op {
	case operator.Add, operator.Sub, operator.Mul:
		return arithmeticFold(ctx, op, args, env)
	case operator.Div:
		return divide(ctx, args, env)
	case operator.Rem:
		return remainder(ctx, args, env)
	case operator.Pow:
		return power(ctx, args, env)

	case operator.Log, operator.Ln, operator.Exp,
		operator.Sin, operator.Cos, operator.Tan,
		operator.ASin, operator.ACos, operator.ATan,
		operator.SinH, operator.CosH, operator.TanH,
		operator.ASinH, operator.ACosH, operator.ATanH:
		return transcendental(ctx, op, args, env)

	case operator.Eq, operator.NEq, operator.Lt, operator.LtEq, operator.Gt, operator.GtEq:
		return ordering(ctx, op, args, env)

	case operator.Round, operator.Floor, operator.Ceiling,
		operator.ZeroP, operator.OddP, operator.EvenP:
		return roundIdent(ctx, op, args, env)

	case operator.And, operator.Or:
		return andOr(ctx, op, args, env)
	case operator.Not:
		return boolNot(ctx, args, env)
	case operator.Xor:
		return boolXor(ctx, args, env)

	case operator.List:
		return list(ctx, args, env)
	case operator.Cons:
		return cons(ctx, args, env)
	case operator.Car:
		return car(ctx, args, env)
	case operator.Cdr:
		return cdr(ctx, args, env)
	case operator.Cadr:
		return cxr(ctx, args, env, "ad")
	case operator.Cddr:
		return cxr(ctx, args, env, "dd")
	case operator.Caddr:
		return cxr(ctx, args, env, "add")
	case operator.Cdddr:
		return cxr(ctx, args, env, "ddd")
	case operator.ListLen:
		return listLen(ctx, args, env)

	case operator.Map:
		return mapOp(ctx, args, env)
	case operator.Reduce:
		return reduceOp(ctx, args, env)
	case operator.Filter:
		return filterOp(ctx, args, env)
	case operator.Sort:
		return sortOp(ctx, args, env)
	case operator.RangeList:
		return rangeList(ctx, args, env)

	case operator.Table:
		return table(ctx, args, env)
	case operator.Help:
		return help(ctx, args, env)

	case operator.MatrixMake:
		return matrixMake(ctx, args, env)
	case operator.MatrixAppend:
		return matrixAppend(ctx, args, env)
	case operator.MatrixSet:
		return matrixSet(ctx, args, env)
	case operator.MatrixGet:
		return matrixGet(ctx, args, env)
	case operator.MatrixDet:
		return matrixDet(ctx, args, env)
	case operator.MatrixInv:
		return matrixInv(ctx, args, env)
	case operator.MatrixFromFn:
		return matrixFromFn(ctx, args, env)

	default:
		// Cannot happen: every operator.Type is handled above or is a
		// special form intercepted by internal/evaluator before Dispatch
		// is ever called. A panic here is a programmer error, not a user
		// error (spec.md §7 "Internal impossibilities").
		panic("builtins: unhandled operator " + op.String())
	}
}
