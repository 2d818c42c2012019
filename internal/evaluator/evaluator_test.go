package evaluator

import (
	"testing"

	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/translator"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func run(t *testing.T, env *environment.Frame, src string) value.Value {
	t.Helper()
	node, terr := translator.Translate(src)
	if terr != nil {
		t.Fatalf("Translate(%q): %v", src, terr)
	}
	v, eerr := New().Eval(node, env)
	if eerr != nil {
		t.Fatalf("Eval(%q): %v", src, eerr)
	}
	return v
}

func runErr(t *testing.T, env *environment.Frame, src string) *calcerr.CalcError {
	t.Helper()
	node, terr := translator.Translate(src)
	if terr != nil {
		t.Fatalf("Translate(%q): %v", src, terr)
	}
	_, eerr := New().Eval(node, env)
	if eerr == nil {
		t.Fatalf("Eval(%q) succeeded, want an error", src)
	}
	return eerr
}

func asNum(t *testing.T, v value.Value) string {
	t.Helper()
	n, ok := v.(value.BigNum)
	if !ok {
		t.Fatalf("value = %#v, want BigNum", v)
	}
	return n.N.String()
}

func TestArithmeticFold(t *testing.T) {
	env := environment.New()
	if got := asNum(t, run(t, env, "(+ 1 2 3)")); got != "6" {
		t.Errorf("(+ 1 2 3) = %s, want 6", got)
	}
	if got := asNum(t, run(t, env, "(- 10 1 2)")); got != "7" {
		t.Errorf("(- 10 1 2) = %s, want 7", got)
	}
	if got := asNum(t, run(t, env, "(* 2 3 4)")); got != "24" {
		t.Errorf("(* 2 3 4) = %s, want 24", got)
	}
	if got := asNum(t, run(t, env, "(/ 1 2)")); got != "1/2" {
		t.Errorf("(/ 1 2) = %s, want 1/2", got)
	}
}

func TestDivideByZeroPropagates(t *testing.T) {
	env := environment.New()
	err := runErr(t, env, "(/ 1 0)")
	if err.Kind != calcerr.DivideByZero {
		t.Fatalf("Kind = %v, want DivideByZero", err.Kind)
	}
}

func TestDefineVariableThenUseIt(t *testing.T) {
	env := environment.New()
	run(t, env, "(define x 5)")
	if got := asNum(t, run(t, env, "(+ x x)")); got != "10" {
		t.Errorf("(+ x x) = %s, want 10", got)
	}
}

func TestDefineFunctionShorthand(t *testing.T) {
	env := environment.New()
	run(t, env, "(define (square x) (* x x))")
	if got := asNum(t, run(t, env, "(square 5)")); got != "25" {
		t.Errorf("(square 5) = %s, want 25", got)
	}
}

func TestLambdaClosesOverDefiningFrame(t *testing.T) {
	env := environment.New()
	run(t, env, "(define x 10)")
	run(t, env, "(define addx (lambda (y) (+ x y)))")
	if got := asNum(t, run(t, env, "(addx 5)")); got != "15" {
		t.Errorf("(addx 5) = %s, want 15", got)
	}
}

func TestIfBranches(t *testing.T) {
	env := environment.New()
	if got := asNum(t, run(t, env, "(if true 1 2)")); got != "1" {
		t.Errorf("if true = %s, want 1", got)
	}
	if got := asNum(t, run(t, env, "(if false 1 2)")); got != "2" {
		t.Errorf("if false = %s, want 2", got)
	}
}

func TestIfNonBooleanCondition(t *testing.T) {
	env := environment.New()
	err := runErr(t, env, "(if 1 2 3)")
	if err.Kind != calcerr.NonBoolean {
		t.Fatalf("Kind = %v, want NonBoolean", err.Kind)
	}
}

func TestDeeplyNestedIfDoesNotOverflow(t *testing.T) {
	env := environment.New()
	src := "0"
	for i := 0; i < 5000; i++ {
		src = "(if true " + src + " 0)"
	}
	got := asNum(t, run(t, env, src))
	if got != "0" {
		t.Fatalf("deeply nested if = %s, want 0", got)
	}
}

func TestQuoteReifiesAsList(t *testing.T) {
	env := environment.New()
	v := run(t, env, "(quote (list 1 2 3))")
	list, ok := v.(value.List)
	if !ok {
		t.Fatalf("quote result = %#v, want List", v)
	}
	if len(list.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(list.Items))
	}
}

func TestAndShortCircuits(t *testing.T) {
	env := environment.New()
	run(t, env, "(define (boom) (/ 1 0))")
	// (and false (boom)) must not evaluate (boom).
	got := run(t, env, "(and false (boom))")
	b, ok := got.(value.Boolean)
	if !ok || b.B {
		t.Fatalf("(and false ...) = %#v, want false", got)
	}
}

func TestUnboundSymbol(t *testing.T) {
	env := environment.New()
	err := runErr(t, env, "nope")
	if err.Kind != calcerr.UnboundSymbol {
		t.Fatalf("Kind = %v, want UnboundSymbol", err.Kind)
	}
}
