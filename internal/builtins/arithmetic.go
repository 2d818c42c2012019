// Arithmetic family: +, -, *, /, % (spec.md §4.6).
//
// Grounded on original_source/src/calc/operator/arithmetic.rs's do_op
// (a left fold with an operator-specific identity/minimum-arity pair)
// and divrem (the shared two-arg-minimum division/remainder fold).
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func arithmeticFold(ctx Context, op operator.Type, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}

	switch op {
	case operator.Add:
		if len(vals) == 0 {
			return value.BigNum{N: rational.NewInt(0)}, nil
		}
	case operator.Mul:
		if len(vals) == 0 {
			return value.BigNum{N: rational.NewInt(1)}, nil
		}
	case operator.Sub:
		if len(vals) == 0 {
			return nil, calcerr.Arity(op.String(), calcerr.AtLeast, 1)
		}
		if len(vals) == 1 {
			n, err := bigNumOf(vals[0])
			if err != nil {
				return nil, err
			}
			return value.BigNum{N: rational.Neg(n)}, nil
		}
	}

	if allMatrices(vals) {
		return matrixFold(op, vals)
	}

	acc, err := bigNumOf(vals[0])
	if err != nil {
		return nil, err
	}
	for _, v := range vals[1:] {
		n, err := bigNumOf(v)
		if err != nil {
			return nil, err
		}
		switch op {
		case operator.Add:
			acc = rational.Add(acc, n)
		case operator.Sub:
			acc = rational.Sub(acc, n)
		case operator.Mul:
			acc = rational.Mul(acc, n)
		}
	}
	return value.BigNum{N: acc}, nil
}

func divide(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, calcerr.Arity("/", calcerr.AtLeast, 1)
	}

	if len(vals) == 1 {
		if m, ok := vals[0].(value.Matrix); ok {
			return matrixInverse(m)
		}
		n, err := bigNumOf(vals[0])
		if err != nil {
			return nil, err
		}
		inv, ierr := rational.Inv(n)
		if ierr != nil {
			return nil, calcerr.New(calcerr.DivideByZero, "division by zero")
		}
		return value.BigNum{N: inv}, nil
	}

	acc, err := bigNumOf(vals[0])
	if err != nil {
		return nil, err
	}
	for _, v := range vals[1:] {
		n, err := bigNumOf(v)
		if err != nil {
			return nil, err
		}
		q, derr := rational.Div(acc, n)
		if derr != nil {
			return nil, calcerr.New(calcerr.DivideByZero, "division by zero")
		}
		acc = q
	}
	return value.BigNum{N: acc}, nil
}

func remainder(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) < 2 {
		return nil, calcerr.Arity("%", calcerr.AtLeast, 2)
	}
	acc, err := bigNumOf(vals[0])
	if err != nil {
		return nil, err
	}
	for _, v := range vals[1:] {
		n, err := bigNumOf(v)
		if err != nil {
			return nil, err
		}
		r, rerr := rational.Rem(acc, n)
		if rerr != nil {
			return nil, calcerr.New(calcerr.DivideByZero, "division by zero")
		}
		acc = r
	}
	return value.BigNum{N: acc}, nil
}

func power(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, calcerr.Arity("pow", calcerr.Exactly, 2)
	}
	base, err := bigNumOf(vals[0])
	if err != nil {
		return nil, err
	}
	exp, err := bigNumOf(vals[1])
	if err != nil {
		return nil, err
	}
	if !exp.IsInteger() {
		// Non-integral exponents fall back to the documented
		// float path, same as the Transcendental family.
		f := mathPow(base.Float64(), exp.Float64())
		r, ferr := rational.FromFloat(f)
		if ferr != nil {
			return nil, calcerr.New(calcerr.BadArgType, "pow produced a non-finite result")
		}
		return value.BigNum{N: r}, nil
	}
	n, nerr := exp.Int64()
	if nerr != nil {
		return nil, calcerr.New(calcerr.BadArgType, "exponent too large")
	}
	neg := n < 0
	if neg {
		n = -n
	}
	acc := rational.NewInt(1)
	for i := int64(0); i < n; i++ {
		acc = rational.Mul(acc, base)
	}
	if neg {
		inv, ierr := rational.Inv(acc)
		if ierr != nil {
			return nil, calcerr.New(calcerr.DivideByZero, "division by zero")
		}
		acc = inv
	}
	return value.BigNum{N: acc}, nil
}

func bigNumOf(v value.Value) (rational.Rational, *calcerr.CalcError) {
	n, ok := v.(value.BigNum)
	if !ok {
		return rational.Rational{}, calcerr.New(calcerr.BadArgType, "expected a number, got %s", v.Kind())
	}
	return n.N, nil
}

func allMatrices(vals []value.Value) bool {
	for _, v := range vals {
		if _, ok := v.(value.Matrix); !ok {
			return false
		}
	}
	return len(vals) > 0
}
