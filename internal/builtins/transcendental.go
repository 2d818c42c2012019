// Transcendental family: log, ln, exp, sin, cos, tan and their inverse
// and hyperbolic forms (spec.md §4.5, §9 "Transcendentals"). Each
// converts its rational argument to float64, applies the math
// routine, and converts the float back to an exact rational via
// rational.FromFloat — the one documented lossy path in the numeric
// kernel.
package builtins

import (
	"math"

	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func mathPow(base, exp float64) float64 { return math.Pow(base, exp) }

func transcendental(ctx Context, op operator.Type, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
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
	f := n.Float64()

	var out float64
	switch op {
	case operator.Log:
		out = math.Log10(f)
	case operator.Ln:
		out = math.Log(f)
	case operator.Exp:
		out = math.Exp(f)
	case operator.Sin:
		out = math.Sin(f)
	case operator.Cos:
		out = math.Cos(f)
	case operator.Tan:
		out = math.Tan(f)
	case operator.ASin:
		out = math.Asin(f)
	case operator.ACos:
		out = math.Acos(f)
	case operator.ATan:
		out = math.Atan(f)
	case operator.SinH:
		out = math.Sinh(f)
	case operator.CosH:
		out = math.Cosh(f)
	case operator.TanH:
		out = math.Tanh(f)
	case operator.ASinH:
		out = math.Asinh(f)
	case operator.ACosH:
		out = math.Acosh(f)
	case operator.ATanH:
		out = math.Atanh(f)
	}

	r, ferr := rational.FromFloat(out)
	if ferr != nil {
		return nil, calcerr.New(calcerr.BadArgType, "%s(%s) is not a finite number", op, n)
	}
	return value.BigNum{N: r}, nil
}
