// Package token defines the lexical categories produced by
// internal/lexer, split out from the lexer itself the way the teacher
// separates pkg/token from internal/lexer: the token vocabulary is
// small and stable, while the scanner that produces tokens changes
// more often.
package token

import "github.com/cwbudde/go-pcalc/internal/value"

// Type identifies the lexical category of a Token.
type Type int

// Token categories, per spec.md §4.1.
const (
	ILLEGAL Type = iota
	EOF

	LParen
	RParen

	Operator // a word that names a built-in operator, e.g. "+" or "car"
	Literal  // a number or boolean literal, already resolved to a Value
	Variable // an identifier that is not an operator or boolean literal
)

// String names a Type, mirroring the teacher's TokenType.String() used
// in error messages and the `lex` debug command.
func (t Type) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	case Operator:
		return "OPERATOR"
	case Literal:
		return "LITERAL"
	case Variable:
		return "VARIABLE"
	default:
		return "UNKNOWN"
	}
}

// Position is a 1-based line/column location in the source text, used
// by error messages to point back at the offending word.
type Position struct {
	Line   int
	Column int
}

// Token is one lexeme: its category, the source text it was scanned
// from, its resolved literal/operator identity (when applicable), and
// its starting position.
type Token struct {
	Type    Type
	Literal string // the word as scanned (NFC-normalized for Variable), for error messages
	Value   value.Value
	Op      string // canonical operator name, set when Type == Operator
	Pos     Position
}
