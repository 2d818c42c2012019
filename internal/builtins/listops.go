// Listings family: list, cons, car, cdr, cadr, cddr, caddr, cdddr, and
// the supplemented list-len (spec.md §4.6; SPEC_FULL.md "Supplemented
// features"). Grounded on original_source/src/calc/operator/listops.rs's
// cons/car/cdr and the cadr/cddr/caddr/cdddr compositions mod.rs builds
// from them.
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func list(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	return value.List{Items: vals}, nil
}

func cons(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, calcerr.Arity("cons", calcerr.Exactly, 2)
	}
	l, ok := vals[1].(value.List)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "cons requires a list as its second argument, got %s", vals[1].Kind())
	}
	items := make([]value.Value, 0, len(l.Items)+1)
	items = append(items, vals[0])
	items = append(items, l.Items...)
	return value.List{Items: items}, nil
}

func listOf(v value.Value) (value.List, *calcerr.CalcError) {
	l, ok := v.(value.List)
	if !ok {
		return value.List{}, calcerr.New(calcerr.BadArgType, "expected a list, got %s", v.Kind())
	}
	return l, nil
}

func car(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("car", calcerr.Exactly, 1)
	}
	l, lerr := listOf(vals[0])
	if lerr != nil {
		return nil, lerr
	}
	if len(l.Items) == 0 {
		return nil, calcerr.New(calcerr.BadArgType, "car: empty list")
	}
	return l.Items[0], nil
}

func cdr(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("cdr", calcerr.Exactly, 1)
	}
	l, lerr := listOf(vals[0])
	if lerr != nil {
		return nil, lerr
	}
	if len(l.Items) == 0 {
		return nil, calcerr.New(calcerr.BadArgType, "cdr: empty list")
	}
	return value.List{Items: l.Items[1:]}, nil
}

// cxr applies car (for each 'a') and cdr (for each 'd') in the given
// compositional order, e.g. "ad" is car(cdr(x)) -- cadr -- and "add"
// is car(cdr(cdr(x))) -- caddr.
func cxr(ctx Context, args []ast.ArgType, env *environment.Frame, ops string) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("c"+ops+"r", calcerr.Exactly, 1)
	}
	cur := vals[0]
	for i := len(ops) - 1; i >= 0; i-- {
		l, lerr := listOf(cur)
		if lerr != nil {
			return nil, lerr
		}
		if len(l.Items) == 0 {
			return nil, calcerr.New(calcerr.BadArgType, "c%sr: empty list", ops)
		}
		switch ops[i] {
		case 'a':
			cur = l.Items[0]
		case 'd':
			cur = value.List{Items: l.Items[1:]}
		}
	}
	return cur, nil
}

func listLen(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("list-len", calcerr.Exactly, 1)
	}
	l, lerr := listOf(vals[0])
	if lerr != nil {
		return nil, lerr
	}
	return value.BigNum{N: rational.NewInt(int64(len(l.Items)))}, nil
}
