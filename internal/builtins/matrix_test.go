package builtins_test

import (
	"testing"

	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func TestMatrixMakeGetSet(t *testing.T) {
	v := eval(t, "(matrix-make 2 2 1 2 3 4)")
	m, ok := v.(value.Matrix)
	if !ok || m.Rows != 2 || m.Cols != 2 {
		t.Fatalf("matrix-make result = %#v", v)
	}
	if got := bigStr(t, eval(t, "(matrix-get (matrix-make 2 2 1 2 3 4) 1 0)")); got != "3" {
		t.Errorf("matrix-get(1,0) = %s, want 3", got)
	}
	v2 := eval(t, "(matrix-set (matrix-make 2 2 1 2 3 4) 0 0 9)")
	m2 := v2.(value.Matrix)
	if got := m2.At(0, 0).String(); got != "9" {
		t.Errorf("matrix-set overwrote wrong cell: %s, want 9", got)
	}
	// matrix-set must not mutate the original.
	orig := eval(t, "(matrix-make 2 2 1 2 3 4)").(value.Matrix)
	if got := orig.At(0, 0).String(); got != "1" {
		t.Errorf("matrix-set mutated its argument: At(0,0) = %s", got)
	}
}

func TestMatrixDeterminant(t *testing.T) {
	if got := bigStr(t, eval(t, "(matrix-det (matrix-make 2 2 1 2 3 4))")); got != "-2" {
		t.Errorf("det = %s, want -2", got)
	}
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	v := eval(t, "(matrix-inv (matrix-make 2 2 4 7 2 6))")
	inv, ok := v.(value.Matrix)
	if !ok {
		t.Fatalf("matrix-inv result = %#v", v)
	}
	if got := inv.At(0, 0).String(); got != "3/5" {
		t.Errorf("inv[0][0] = %s, want 3/5", got)
	}
}

func TestMatrixInverseSingularIsError(t *testing.T) {
	err := evalErr(t, "(matrix-inv (matrix-make 2 2 1 2 2 4))")
	if err.Kind != calcerr.SingularMatrix {
		t.Fatalf("Kind = %v, want SingularMatrix", err.Kind)
	}
}

func TestMatrixShapeMismatchIsError(t *testing.T) {
	err := evalErr(t, "(matrix-det (matrix-make 1 2 1 2))")
	if err.Kind != calcerr.MatrixShape {
		t.Fatalf("Kind = %v, want MatrixShape", err.Kind)
	}
}

func TestMatrixAppendStacksRows(t *testing.T) {
	v := eval(t, "(matrix-append (matrix-make 1 2 1 2) (matrix-make 1 2 3 4))")
	m, ok := v.(value.Matrix)
	if !ok || m.Rows != 2 || m.Cols != 2 {
		t.Fatalf("matrix-append result = %#v", v)
	}
}

func TestMatrixElementwiseAdd(t *testing.T) {
	v := eval(t, "(+ (matrix-make 1 2 1 2) (matrix-make 1 2 3 4))")
	m, ok := v.(value.Matrix)
	if !ok {
		t.Fatalf("result = %#v, want Matrix", v)
	}
	if got := m.At(0, 0).String(); got != "4" {
		t.Errorf("At(0,0) = %s, want 4", got)
	}
}
