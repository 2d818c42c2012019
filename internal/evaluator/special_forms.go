package evaluator

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// evalQuote implements spec.md §4.4 `quote`: exactly one argument,
// returned without further evaluation. Per the Open Question resolved
// in DESIGN.md, quoting an SExpr reifies it as a List of its
// arguments' literal components (not evaluated), rather than
// returning the AST node itself.
func (e *Evaluator) evalQuote(expr ast.Expression, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	if len(expr.Args) != 1 {
		return nil, calcerr.Arity("quote", calcerr.Exactly, 1)
	}
	return quoteArg(expr.Args[0]), nil
}

func quoteArg(a ast.ArgType) value.Value {
	if a.IsAtom {
		switch a.Atom.Kind {
		case ast.LitBigNum:
			return value.BigNum{N: a.Atom.Num}
		case ast.LitBoolean:
			return value.Boolean{B: a.Atom.Bool}
		default:
			return value.Symbol{Name: a.Atom.Sym}
		}
	}
	items := make([]value.Value, len(a.SExpr.Args))
	for i, arg := range a.SExpr.Args {
		items[i] = quoteArg(arg)
	}
	return value.List{Items: items}
}

// evalDefine implements spec.md §4.4 `define`: two args. The first is
// either a bare Symbol (bind a variable) or an SExpr(Variable(name),
// params...) shorthand for (define name (lambda (params...) body)).
// Always binds into the enclosing frame and returns Void.
func (e *Evaluator) evalDefine(expr ast.Expression, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	if len(expr.Args) != 2 {
		return nil, calcerr.Arity("define", calcerr.Exactly, 2)
	}

	first, body := expr.Args[0], expr.Args[1]

	if first.IsAtom && first.Atom.Kind == ast.LitSymbol {
		v, err := e.Eval(body, env)
		if err != nil {
			return nil, err
		}
		env.Bind(first.Atom.Sym, v)
		return value.Void{}, nil
	}

	if !first.IsAtom && !first.SExpr.Head.IsOperator {
		params, err := paramNames(first.SExpr.Args)
		if err != nil {
			return nil, err
		}
		proc := value.Proc{Params: params, Body: body, Env: env}
		env.Bind(first.SExpr.Head.Name, proc)
		return value.Void{}, nil
	}

	return nil, calcerr.New(calcerr.BadArgType, "define requires a symbol or (name params...) as its first argument")
}

// evalLambda implements spec.md §4.4 `lambda`: two args, a parameter
// list and a body expression; captures the current frame (lexical
// capture), not the call-site frame.
func (e *Evaluator) evalLambda(expr ast.Expression, env *environment.Frame) (value.Value, *calcerr.CalcError) {
	if len(expr.Args) != 2 {
		return nil, calcerr.Arity("lambda", calcerr.Exactly, 2)
	}
	paramList := expr.Args[0]
	if paramList.IsAtom || paramList.SExpr.Head.IsOperator {
		return nil, calcerr.New(calcerr.BadArgType, "lambda's first argument must be a parameter list")
	}
	params, err := paramNamesFromHeadedList(paramList.SExpr)
	if err != nil {
		return nil, err
	}
	return value.Proc{Params: params, Body: expr.Args[1], Env: env}, nil
}

// selectIfBranch evaluates the condition and returns the unevaluated
// branch that should run, letting Eval's trampoline decide whether to
// recurse or loop in place.
func (e *Evaluator) selectIfBranch(expr ast.Expression, env *environment.Frame) (ast.ArgType, *calcerr.CalcError) {
	if len(expr.Args) != 3 {
		return ast.ArgType{}, calcerr.Arity("if", calcerr.Exactly, 3)
	}
	cond, err := e.Eval(expr.Args[0], env)
	if err != nil {
		return ast.ArgType{}, err
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		return ast.ArgType{}, calcerr.New(calcerr.NonBoolean, "if condition must be a boolean, got %s", cond.Kind())
	}
	if b.B {
		return expr.Args[1], nil
	}
	return expr.Args[2], nil
}

// paramNames reads a flat ArgType list of Variable atoms as parameter
// names, used for the (define (name params...) body) shorthand where
// the head already carries the function name and params are the
// head's arguments.
func paramNames(args []ast.ArgType) ([]string, *calcerr.CalcError) {
	names := make([]string, len(args))
	for i, a := range args {
		if !a.IsAtom || a.Atom.Kind != ast.LitSymbol {
			return nil, calcerr.New(calcerr.BadArgType, "parameter list must contain only identifiers")
		}
		names[i] = a.Atom.Sym
	}
	return names, nil
}

// paramNamesFromHeadedList reads `(x y z)` as parsed by the
// translator: since `x` parses as a Variable in head position, it
// ends up as a non-operator Head, and y/z as Atom(Symbol) args.
func paramNamesFromHeadedList(expr ast.Expression) ([]string, *calcerr.CalcError) {
	names := []string{expr.Head.Name}
	rest, err := paramNames(expr.Args)
	if err != nil {
		return nil, err
	}
	return append(names, rest...), nil
}
