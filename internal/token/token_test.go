package token

import "testing"

func TestTypeStringKnownValues(t *testing.T) {
	cases := map[Type]string{
		ILLEGAL:  "ILLEGAL",
		EOF:      "EOF",
		LParen:   "LPAREN",
		RParen:   "RPAREN",
		Operator: "OPERATOR",
		Literal:  "LITERAL",
		Variable: "VARIABLE",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(999).String(); got != "UNKNOWN" {
		t.Errorf("Type(999).String() = %q, want UNKNOWN", got)
	}
}

func TestPositionFields(t *testing.T) {
	pos := Position{Line: 3, Column: 7}
	tok := Token{Type: Variable, Literal: "x", Pos: pos}
	if tok.Pos.Line != 3 || tok.Pos.Column != 7 {
		t.Fatalf("Token.Pos = %+v", tok.Pos)
	}
}
