// Table and Help (spec.md §4.5-4.6). `table`'s semantics are the Open
// Question SPEC_FULL.md resolves: it decomposes a Matrix into a List
// of row-Lists for display, since the upstream special::table
// implementation was not present in original_source's kept files.
package builtins

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/helptext"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func table(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	vals, err := evalAll(ctx, args, env)
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, calcerr.Arity("table", calcerr.Exactly, 1)
	}
	m, ok := vals[0].(value.Matrix)
	if !ok {
		return nil, calcerr.New(calcerr.BadArgType, "table requires a Matrix, got %s", vals[0].Kind())
	}
	rows := make([]value.Value, m.Rows)
	for r := 0; r < m.Rows; r++ {
		row := make([]value.Value, m.Cols)
		for c := 0; c < m.Cols; c++ {
			row[c] = value.BigNum{N: m.At(r, c)}
		}
		rows[r] = value.List{Items: row}
	}
	return value.List{Items: rows}, nil
}

// help takes zero or more Symbol arguments (spec.md §4.6); unlike
// every other operator, its arguments are symbol *names*, not values
// to resolve, so it reads them straight from the AST rather than
// through evalAll.
func help(ctx Context, args []ast.ArgType, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	topics := make([]string, 0, len(args))
	for _, a := range args {
		if !a.IsAtom || a.Atom.Kind != ast.LitSymbol {
			return nil, calcerr.New(calcerr.BadArgType, "help expects symbol names as arguments")
		}
		topics = append(topics, a.Atom.Sym)
	}
	// Help's result is text, and spec.md's Value union has no string
	// variant; Symbol is the closest carrier (an opaque identifier
	// string) and is never itself looked up again, since `help`'s
	// result is returned directly to the REPL's pretty-printer rather
	// than bound to a name.
	return value.Symbol{Name: helptext.Help(topics)}, nil
}
