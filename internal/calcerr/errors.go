// Package calcerr implements the calculator's error taxonomy
// (spec.md §7), modeled on the teacher's internal/errors.CompilerError:
// a typed Kind, a message, and an optional source position, rendered
// with a caret pointing at the offending source.
package calcerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-pcalc/internal/token"
)

// Kind is the closed taxonomy of spec.md §7.
type Kind int

const (
	BadToken Kind = iota
	BadArgType
	BadNumberOfArgs
	NonBoolean
	UnboundSymbol
	DivideByZero
	MatrixShape
	SingularMatrix
)

func (k Kind) String() string {
	switch k {
	case BadToken:
		return "BadToken"
	case BadArgType:
		return "BadArgType"
	case BadNumberOfArgs:
		return "BadNumberOfArgs"
	case NonBoolean:
		return "NonBoolean"
	case UnboundSymbol:
		return "UnboundSymbol"
	case DivideByZero:
		return "DivideByZero"
	case MatrixShape:
		return "MatrixShape"
	case SingularMatrix:
		return "SingularMatrix"
	default:
		return "Unknown"
	}
}

// Bound is the arity-phrase half of a BadNumberOfArgs error, following
// the (name, bound-phrase, count) triple original_source/src/lib/types/operator.rs
// uses (see SPEC_FULL.md "Arity-message shape").
type Bound int

const (
	Exactly Bound = iota
	AtLeast
	AtMost
)

func (b Bound) String() string {
	switch b {
	case Exactly:
		return "exactly"
	case AtLeast:
		return "at least"
	case AtMost:
		return "at most"
	default:
		return "exactly"
	}
}

// CalcError is the single error type every calculator operation
// returns; none of its Kinds are fatal to the process (spec.md §7).
type CalcError struct {
	Kind Kind
	Msg  string
	Pos  *token.Position // nil when no source position applies
	Src  string          // source line, for the caret excerpt

	// Populated only for Kind == BadNumberOfArgs.
	OpName string
	Bound  Bound
	Count  int
}

func (e *CalcError) Error() string { return e.Format(false) }

// New builds a plain CalcError with no position information.
func New(kind Kind, format string, args ...any) *CalcError {
	return &CalcError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WithPos attaches a source position and the source line it came from.
func (e *CalcError) WithPos(pos token.Position, src string) *CalcError {
	e.Pos = &pos
	e.Src = src
	return e
}

// Arity builds a BadNumberOfArgs error carrying the (name, bound,
// count) triple spec.md §7 calls for.
func Arity(opName string, bound Bound, count int) *CalcError {
	return &CalcError{
		Kind:   BadNumberOfArgs,
		OpName: opName,
		Bound:  bound,
		Count:  count,
		Msg:    fmt.Sprintf("%s expects %s %d argument(s)", opName, bound, count),
	}
}

// Format renders the error, with a caret excerpt when a source position
// and source text are known; color adds ANSI highlighting to the caret
// and the message. Mirrors the teacher's CompilerError.Format(color bool).
func (e *CalcError) Format(color bool) string {
	var sb strings.Builder
	if e.Pos != nil {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
		if e.Src != "" {
			lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(e.Src)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}
	if color {
		sb.WriteString("\033[1m")
	}
	fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Msg)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}
