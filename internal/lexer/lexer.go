// Package lexer implements the calculator's tokenizer (spec.md §4.1):
// a restartable stream that yields tokens lazily, with a one-token
// lookahead (Peek).
//
// Structurally grounded on the teacher's internal/lexer.Lexer (a
// position/readPosition/ch scanning trio over a string, with line and
// column tracking for error messages), cut down to the calculator's
// much smaller vocabulary: parens, operators, literals, variables.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/rational"
	"github.com/cwbudde/go-pcalc/internal/token"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Lexer scans source text into Tokens one at a time.
type Lexer struct {
	input        string
	position     int
	readPosition int
	line         int
	column       int
	ch           rune

	peeked    *token.Token
	peekedErr *calcerr.CalcError
}

// New creates a Lexer over source.
func New(source string) *Lexer {
	l := &Lexer{input: source, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly returns the same token until Next is called (spec.md
// §4.1 "peek is idempotent and does not advance").
func (l *Lexer) Peek() (token.Token, *calcerr.CalcError) {
	if l.peeked == nil {
		tok, err := l.scan()
		l.peeked = &tok
		l.peekedErr = err
	}
	return *l.peeked, l.peekedErr
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (token.Token, *calcerr.CalcError) {
	if l.peeked != nil {
		tok, err := *l.peeked, l.peekedErr
		l.peeked, l.peekedErr = nil, nil
		return tok, err
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Token, *calcerr.CalcError) {
	l.skipWhitespace()
	// l.column is already the 1-based column of l.ch. At end of input it
	// stays on the last character, so EOF is placed one past it.
	pos := token.Position{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		pos.Column++
		return token.Token{Type: token.EOF, Pos: pos}, nil
	case l.ch == '(':
		l.readChar()
		return token.Token{Type: token.LParen, Literal: "(", Pos: pos}, nil
	case l.ch == ')':
		l.readChar()
		return token.Token{Type: token.RParen, Literal: ")", Pos: pos}, nil
	default:
		word := l.readWord()
		return classify(word, pos)
	}
}

// readWord consumes the longest run of non-whitespace, non-paren
// characters starting at the current position (spec.md §4.1 "word").
func (l *Lexer) readWord() string {
	var sb strings.Builder
	for l.ch != 0 && l.ch != '(' && l.ch != ')' &&
		!unicode.IsSpace(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return sb.String()
}

// classify implements spec.md §4.1's priority order: operator name,
// boolean literal, numeric literal, else identifier.
func classify(word string, pos token.Position) (token.Token, *calcerr.CalcError) {
	if op, ok := operator.Lookup(word); ok {
		return token.Token{Type: token.Operator, Literal: word, Op: op.String(), Pos: pos}, nil
	}

	if word == "true" || word == "false" {
		return token.Token{
			Type:    token.Literal,
			Literal: word,
			Pos:     pos,
			Value:   value.Boolean{B: word == "true"},
		}, nil
	}

	if looksNumeric(word) {
		num, err := parseNumber(word)
		if err != nil {
			return token.Token{}, calcerr.New(calcerr.BadToken, "bad numeric literal: %s", word).WithPos(pos, word)
		}
		return token.Token{
			Type:    token.Literal,
			Literal: word,
			Pos:     pos,
			Value:   value.BigNum{N: num},
		}, nil
	}

	r, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(r) {
		return token.Token{}, calcerr.New(calcerr.BadToken, "unrecognized token: %s", word).WithPos(pos, word)
	}
	return token.Token{Type: token.Variable, Literal: norm.NFC.String(word), Pos: pos}, nil
}

// looksNumeric reports whether word has the shape of a number literal
// per spec.md §4.1: either "intA/intB" (no '.') or a decimal (no '/'),
// optionally signed. It does not itself validate the digits.
func looksNumeric(word string) bool {
	if word == "" {
		return false
	}
	body := word
	if body[0] == '-' || body[0] == '+' {
		body = body[1:]
	}
	if body == "" {
		return false
	}
	first := body[0]
	if first != '.' && !unicode.IsDigit(rune(first)) {
		return false
	}
	hasSlash := strings.ContainsRune(body, '/')
	hasDot := strings.ContainsRune(body, '.')
	if hasSlash && hasDot {
		return false
	}
	return true
}

func parseNumber(word string) (rational.Rational, error) {
	if strings.ContainsRune(word, '/') {
		if strings.HasPrefix(word, "/") || strings.HasSuffix(word, "/") {
			return rational.Rational{}, fmt.Errorf("leading/trailing slash in %q", word)
		}
		return rational.ParseFraction(word)
	}
	return rational.FromString(word)
}
