// Ordering/equality family: =, !=, <, <=, >, >= (spec.md §4.6). Exactly
// two args, both of the same kind; equality across kinds is an error
// (spec.md §9 Open Question: "pick error for consistency with ordering").
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func ordering(ctx Context, op operator.Type, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, calcerr.Arity(op.String(), calcerr.Exactly, 2)
	}

	if op == operator.Eq || op == operator.NEq {
		eq, eerr := equalValues(vals[0], vals[1])
		if eerr != nil {
			return nil, eerr
		}
		return value.Boolean{B: eq == (op == operator.Eq)}, nil
	}

	cmp, cerr := compareValues(vals[0], vals[1])
	if cerr != nil {
		return nil, cerr
	}

	var b bool
	switch op {
	case operator.Lt:
		b = cmp < 0
	case operator.LtEq:
		b = cmp <= 0
	case operator.Gt:
		b = cmp > 0
	case operator.GtEq:
		b = cmp >= 0
	}
	return value.Boolean{B: b}, nil
}

// equalValues implements same-kind equality for every kind, including
// List and Matrix (which compareValues, used for <, <=, >, >=, does
// not order).
func equalValues(a, b value.Value) (bool, *calcerr.CalcError) {
	if a.Kind() != b.Kind() {
		return false, calcerr.New(calcerr.BadArgType, "cannot compare %s with %s", a.Kind(), b.Kind())
	}
	switch av := a.(type) {
	case value.List:
		bv := b.(value.List)
		if len(av.Items) != len(bv.Items) {
			return false, nil
		}
		for i := range av.Items {
			eq, err := equalValues(av.Items[i], bv.Items[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case value.Matrix:
		bv := b.(value.Matrix)
		if av.Rows != bv.Rows || av.Cols != bv.Cols {
			return false, nil
		}
		for i := range av.Data {
			if rational.Compare(av.Data[i], bv.Data[i]) != 0 {
				return false, nil
			}
		}
		return true, nil
	default:
		cmp, err := compareValues(a, b)
		if err != nil {
			return false, err
		}
		return cmp == 0, nil
	}
}

// compareValues orders two same-kind values, failing for a kind that
// it does not order (List, Matrix, Proc, Void) or for mismatched kinds.
func compareValues(a, b value.Value) (int, *calcerr.CalcError) {
	if a.Kind() != b.Kind() {
		return 0, calcerr.New(calcerr.BadArgType, "cannot compare %s with %s", a.Kind(), b.Kind())
	}
	switch av := a.(type) {
	case value.BigNum:
		return rational.Compare(av.N, b.(value.BigNum).N), nil
	case value.Boolean:
		bv := b.(value.Boolean)
		switch {
		case av.B == bv.B:
			return 0, nil
		case !av.B && bv.B:
			return -1, nil
		default:
			return 1, nil
		}
	case value.Symbol:
		bv := b.(value.Symbol)
		switch {
		case av.Name == bv.Name:
			return 0, nil
		case av.Name < bv.Name:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return 0, calcerr.New(calcerr.BadArgType, "%s values are not orderable", a.Kind())
	}
}
