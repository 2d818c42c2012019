// Transforms family: map, reduce, filter, sort, range-list (spec.md
// §4.6). map/reduce/filter apply a user Proc (itself evaluated from a
// `lambda` argument) through ctx.Apply; sort and range-list are pure
// list builders.
package builtins

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/maruel/natural"

	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func procOf(v value.Value) (value.Proc, *calcerr.CalcError) {
	p, ok := v.(value.Proc)
	if !ok {
		return value.Proc{}, calcerr.New(calcerr.BadArgType, "expected a procedure, got %s", v.Kind())
	}
	return p, nil
}

func mapOp(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) < 2 {
		return nil, calcerr.Arity("map", calcerr.AtLeast, 2)
	}
	proc, perr := procOf(vals[0])
	if perr != nil {
		return nil, perr
	}
	lists := vals[1:]
	if len(lists) != len(proc.Params) {
		return nil, calcerr.New(calcerr.BadNumberOfArgs, "map: procedure takes %d argument(s) but %d list(s) were given", len(proc.Params), len(lists))
	}

	ls := make([]value.List, len(lists))
	n := -1
	for i, v := range lists {
		l, lerr := listOf(v)
		if lerr != nil {
			return nil, lerr
		}
		ls[i] = l
		if n == -1 {
			n = len(l.Items)
		} else if n != len(l.Items) {
			return nil, calcerr.New(calcerr.BadArgType, "map: all lists must have the same length")
		}
	}

	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		callArgs := make([]value.Value, len(ls))
		for j, l := range ls {
			callArgs[j] = l.Items[i]
		}
		v, aerr := ctx.Apply(proc, callArgs)
		if aerr != nil {
			return nil, aerr
		}
		out[i] = v
	}
	return value.List{Items: out}, nil
}

func reduceOp(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 3 {
		return nil, calcerr.Arity("reduce", calcerr.Exactly, 3)
	}
	proc, perr := procOf(vals[0])
	if perr != nil {
		return nil, perr
	}
	if len(proc.Params) != 2 {
		return nil, calcerr.New(calcerr.BadNumberOfArgs, "reduce: procedure must take exactly 2 parameters, got %d", len(proc.Params))
	}
	l, lerr := listOf(vals[2])
	if lerr != nil {
		return nil, lerr
	}
	if len(l.Items) == 0 {
		return nil, calcerr.New(calcerr.BadArgType, "reduce: list must be non-empty")
	}

	acc := vals[1]
	for _, item := range l.Items {
		v, aerr := ctx.Apply(proc, []value.Value{acc, item})
		if aerr != nil {
			return nil, aerr
		}
		acc = v
	}
	return acc, nil
}

func filterOp(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, calcerr.Arity("filter", calcerr.Exactly, 2)
	}
	proc, perr := procOf(vals[0])
	if perr != nil {
		return nil, perr
	}
	if len(proc.Params) != 1 {
		return nil, calcerr.New(calcerr.BadNumberOfArgs, "filter: procedure must take exactly 1 parameter, got %d", len(proc.Params))
	}
	l, lerr := listOf(vals[1])
	if lerr != nil {
		return nil, lerr
	}

	var out []value.Value
	for _, item := range l.Items {
		v, aerr := ctx.Apply(proc, []value.Value{item})
		if aerr != nil {
			return nil, aerr
		}
		b, ok := v.(value.Boolean)
		if !ok {
			return nil, calcerr.New(calcerr.NonBoolean, "filter: predicate must return a boolean, got %s", v.Kind())
		}
		if b.B {
			out = append(out, item)
		}
	}
	return value.List{Items: out}, nil
}

func sortOp(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("sort", calcerr.Exactly, 1)
	}
	l, lerr := listOf(vals[0])
	if lerr != nil {
		return nil, lerr
	}
	if len(l.Items) == 0 {
		return value.List{}, nil
	}

	kind := l.Items[0].Kind()
	for _, v := range l.Items {
		if v.Kind() != kind {
			return nil, calcerr.New(calcerr.BadArgType, "sort: mixed-kind list (%s and %s)", kind, v.Kind())
		}
	}

	items := make([]value.Value, len(l.Items))
	copy(items, l.Items)

	if kind == value.KindSymbol {
		sortSymbols(items)
		return value.List{Items: items}, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		cmp, cerr := compareValues(items[i], items[j])
		if cerr != nil {
			return false
		}
		return cmp < 0
	})
	return value.List{Items: items}, nil
}

// sortSymbols orders Symbol values by Unicode collation (locale "und",
// the root collation) via golang.org/x/text/collate, the same
// comparison library the teacher's internal/interp/builtins/strings.go
// uses for its string-compare builtins; ties (equal collation keys)
// are broken with maruel/natural. The collator does not compare digit
// runs numerically, so "item10" sorts before "item2".
func sortSymbols(items []value.Value) {
	col := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		a := items[i].(value.Symbol).Name
		b := items[j].(value.Symbol).Name
		switch col.CompareString(a, b) {
		case -1:
			return true
		case 1:
			return false
		default:
			return natural.Less(a, b)
		}
	})
}

func rangeList(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 && len(vals) != 3 {
		return nil, calcerr.New(calcerr.BadNumberOfArgs, "range-list expects 2 or 3 arguments, got %d", len(vals))
	}
	a, aerr := intArg(vals[0])
	if aerr != nil {
		return nil, aerr
	}
	b, berr := intArg(vals[1])
	if berr != nil {
		return nil, berr
	}
	step := int64(1)
	if len(vals) == 3 {
		s, serr := intArg(vals[2])
		if serr != nil {
			return nil, serr
		}
		step = s
	}
	if step == 0 {
		return nil, calcerr.New(calcerr.BadArgType, "range-list: step must not be zero")
	}
	if (step > 0 && a > b) || (step < 0 && a < b) {
		return nil, calcerr.New(calcerr.BadArgType, "range-list: step direction does not match a..b")
	}

	var items []value.Value
	if step > 0 {
		for i := a; i < b; i += step {
			items = append(items, value.BigNum{N: rational.NewInt(i)})
		}
	} else {
		for i := a; i > b; i += step {
			items = append(items, value.BigNum{N: rational.NewInt(i)})
		}
	}
	return value.List{Items: items}, nil
}

func intArg(v value.Value) (int64, *calcerr.CalcError) {
	n, err := bigNumOf(v)
	if err != nil {
		return 0, err
	}
	i, ierr := n.Int64()
	if ierr != nil {
		return 0, calcerr.New(calcerr.BadArgType, "range-list requires integral bounds: %v", ierr)
	}
	return i, nil
}
