package lexer

import (
	"testing"

	"github.com/cwbudde/go-pcalc/internal/token"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestScanParensAndOperator(t *testing.T) {
	toks := scanAll(t, "(+ 1 2)")
	want := []token.Type{token.LParen, token.Operator, token.Literal, token.Literal, token.RParen, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("scanned %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: Type = %v, want %v", i, toks[i].Type, typ)
		}
	}
}

func TestScanFraction(t *testing.T) {
	toks := scanAll(t, "22/7")
	if toks[0].Type != token.Literal {
		t.Fatalf("Type = %v, want Literal", toks[0].Type)
	}
	num, ok := toks[0].Value.(value.BigNum)
	if !ok {
		t.Fatalf("Value = %#v, want BigNum", toks[0].Value)
	}
	if got := num.N.String(); got != "22/7" {
		t.Errorf("N.String() = %q, want 22/7", got)
	}
}

func TestScanBooleans(t *testing.T) {
	toks := scanAll(t, "true false")
	for i, want := range []bool{true, false} {
		b, ok := toks[i].Value.(value.Boolean)
		if !ok || b.B != want {
			t.Errorf("token %d = %#v, want Boolean(%v)", i, toks[i].Value, want)
		}
	}
}

func TestScanVariable(t *testing.T) {
	toks := scanAll(t, "radius")
	if toks[0].Type != token.Variable || toks[0].Literal != "radius" {
		t.Fatalf("token = %+v", toks[0])
	}
}

func TestScanFancyOperatorAlias(t *testing.T) {
	toks := scanAll(t, "≤")
	if toks[0].Type != token.Operator {
		t.Fatalf("Type = %v, want Operator", toks[0].Type)
	}
}

func TestScanIllegalToken(t *testing.T) {
	l := New("@")
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected an error scanning '@'")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	l := New("(+ 1 2)")
	first, err := l.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	second, err := l.Peek()
	if err != nil {
		t.Fatalf("Peek again: %v", err)
	}
	if first != second {
		t.Fatalf("repeated Peek changed: %+v vs %+v", first, second)
	}
	next, err := l.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next != first {
		t.Fatalf("Next() after Peek() = %+v, want %+v", next, first)
	}
}

func TestLineColumnTracking(t *testing.T) {
	toks := scanAll(t, "(+ 1\n2)")
	// the second literal, "2", sits on line 2
	var lit2 token.Token
	for _, tk := range toks {
		if tk.Literal == "2" {
			lit2 = tk
		}
	}
	if lit2.Pos.Line != 2 {
		t.Fatalf("'2' Pos.Line = %d, want 2", lit2.Pos.Line)
	}
}
