// Package translator implements the recursive-descent parser of
// spec.md §4.2: it consumes the token stream internal/lexer produces
// and emits an ast.ArgType tree, performing no evaluation beyond
// recognizing literal tokens as Atoms.
package translator

import (
	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/lexer"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/token"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Translator turns a token stream into an AST.
type Translator struct {
	lex *lexer.Lexer
}

// New creates a Translator reading from lex.
func New(lex *lexer.Lexer) *Translator {
	return &Translator{lex: lex}
}

// Translate parses exactly one top-level expr (spec.md §4.2 grammar)
// and fails if anything but EOF follows it.
func Translate(source string) (ast.ArgType, *calcerr.CalcError) {
	t := New(lexer.New(source))
	expr, err := t.parseExpr()
	if err != nil {
		return ast.ArgType{}, err
	}
	tok, err := t.lex.Next()
	if err != nil {
		return ast.ArgType{}, err
	}
	if tok.Type != token.EOF {
		return ast.ArgType{}, calcerr.New(calcerr.BadToken, "trailing input after expression: %s", tok.Literal).WithPos(tok.Pos, tok.Literal)
	}
	return expr, nil
}

func (t *Translator) parseExpr() (ast.ArgType, *calcerr.CalcError) {
	tok, err := t.lex.Peek()
	if err != nil {
		return ast.ArgType{}, err
	}
	switch tok.Type {
	case token.LParen:
		return t.parseSExpr()
	case token.Literal:
		t.lex.Next()
		return ast.NewAtom(literalFromToken(tok)), nil
	case token.Variable:
		t.lex.Next()
		return ast.NewAtom(ast.Literal{Kind: ast.LitSymbol, Sym: tok.Literal}), nil
	case token.Operator:
		return ast.ArgType{}, calcerr.New(calcerr.BadToken, "operator %q used outside of a call position", tok.Literal).WithPos(tok.Pos, tok.Literal)
	case token.EOF:
		return ast.ArgType{}, calcerr.New(calcerr.BadToken, "unexpected end of input").WithPos(tok.Pos, "")
	default:
		return ast.ArgType{}, calcerr.New(calcerr.BadToken, "unexpected token %q", tok.Literal).WithPos(tok.Pos, tok.Literal)
	}
}

func (t *Translator) parseSExpr() (ast.ArgType, *calcerr.CalcError) {
	open, _ := t.lex.Next() // consume '('

	head, err := t.parseHead()
	if err != nil {
		return ast.ArgType{}, err
	}

	var args []ast.ArgType
	var peek token.Token
	for {
		peek, err = t.lex.Peek()
		if err != nil {
			return ast.ArgType{}, err
		}
		if peek.Type == token.RParen {
			t.lex.Next()
			break
		}
		if peek.Type == token.EOF {
			return ast.ArgType{}, calcerr.New(calcerr.BadToken, "unmatched '(' ").WithPos(open.Pos, "")
		}
		arg, err := t.parseArg()
		if err != nil {
			return ast.ArgType{}, err
		}
		args = append(args, arg)
	}

	return ast.NewSExpr(ast.Expression{Head: head, Args: args}), nil
}

// parseArg parses one argument, which may itself be an operator-headed
// nested call, an atom, or a further parenthesised expr.
func (t *Translator) parseArg() (ast.ArgType, *calcerr.CalcError) {
	tok, err := t.lex.Peek()
	if err != nil {
		return ast.ArgType{}, err
	}
	if tok.Type == token.Operator {
		return ast.ArgType{}, calcerr.New(calcerr.BadToken, "operator %q used outside of a call position", tok.Literal).WithPos(tok.Pos, tok.Literal)
	}
	return t.parseExpr()
}

// parseHead parses the head of an S-expression: an operator name or a
// user-defined identifier. An empty "()" is rejected here, since an
// RParen in head position means there was no head at all.
func (t *Translator) parseHead() (ast.Head, *calcerr.CalcError) {
	tok, err := t.lex.Next()
	if err != nil {
		return ast.Head{}, err
	}
	switch tok.Type {
	case token.Operator:
		op, _ := operator.Lookup(tok.Op)
		return ast.Head{IsOperator: true, Op: op}, nil
	case token.Variable:
		return ast.Head{IsOperator: false, Name: tok.Literal}, nil
	case token.RParen:
		return ast.Head{}, calcerr.New(calcerr.BadToken, "empty () is not a valid expression").WithPos(tok.Pos, "")
	default:
		return ast.Head{}, calcerr.New(calcerr.BadToken, "expected an operator or identifier, got %q", tok.Literal).WithPos(tok.Pos, tok.Literal)
	}
}

func literalFromToken(tok token.Token) ast.Literal {
	switch v := tok.Value.(type) {
	case value.BigNum:
		return ast.Literal{Kind: ast.LitBigNum, Num: v.N}
	case value.Boolean:
		return ast.Literal{Kind: ast.LitBoolean, Bool: v.B}
	default:
		return ast.Literal{Kind: ast.LitSymbol, Sym: tok.Literal}
	}
}
