package builtins_test

import (
	"testing"

	"github.com/cwbudde/go-pcalc/internal/value"
)

func TestTableDecomposesMatrixIntoRowLists(t *testing.T) {
	v := eval(t, "(table (matrix-make 2 2 1 2 3 4))")
	rows, ok := v.(value.List)
	if !ok || len(rows.Items) != 2 {
		t.Fatalf("table result = %#v", v)
	}
	row0, ok := rows.Items[0].(value.List)
	if !ok || len(row0.Items) != 2 {
		t.Fatalf("table row 0 = %#v", rows.Items[0])
	}
	if got := bigStr(t, row0.Items[1]); got != "2" {
		t.Errorf("row0[1] = %s, want 2", got)
	}
}

func TestHelpReturnsSymbolText(t *testing.T) {
	v := eval(t, "(help)")
	sym, ok := v.(value.Symbol)
	if !ok {
		t.Fatalf("help result = %#v, want Symbol", v)
	}
	if sym.Name == "" {
		t.Fatal("help text is empty")
	}
}
