// Package repl implements the line-editor loop of spec.md §6, the
// external collaborator that drives internal/translator and
// internal/evaluator against one persistent root environment.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-pcalc/internal/ast"
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/evaluator"
	"github.com/cwbudde/go-pcalc/internal/operator"
	"github.com/cwbudde/go-pcalc/internal/prettyprint"
	"github.com/cwbudde/go-pcalc/internal/translator"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// REPL owns the one root environment frame that persists across
// inputs for the lifetime of the process (spec.md §4.3 "The root frame
// is created at REPL start and persists across inputs").
type REPL struct {
	in   *bufio.Scanner
	out  io.Writer
	env  *environment.Frame
	eval *evaluator.Evaluator
}

// New builds a REPL reading from in and writing results to out.
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		in:   bufio.NewScanner(in),
		out:  out,
		env:  environment.New(),
		eval: evaluator.New(),
	}
}

// Env exposes the root frame, so a caller (the CLI's --prelude flag)
// can bind values into it before the first input is read.
func (r *REPL) Env() *environment.Frame { return r.env }

// Run drives the read-eval-print loop until exit or EOF (spec.md §6
// "REPL contract"). prompt is printed before each read; pass "" to
// suppress it (piped, non-interactive input).
func (r *REPL) Run(prompt string) {
	for {
		if prompt != "" {
			fmt.Fprint(r.out, prompt)
		}
		if !r.in.Scan() {
			return
		}
		if r.Step(r.in.Text()) {
			return
		}
	}
}

// Step processes one line of input and reports whether the REPL
// should terminate (the "exit" command), matching the contract so
// that callers driving their own read loop (tests, Run) can reuse it
// line by line.
func (r *REPL) Step(line string) (done bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	first := firstWord(line)
	switch first {
	case "exit", "(exit", "(exit)":
		return true
	case "help", "(help", "(help)":
		topics := trimParens(strings.Fields(line)[1:])
		result, err := r.eval.Eval(helpNode(topics), r.env)
		r.print(result, err)
		return false
	}

	node, terr := translator.Translate(line)
	if terr != nil {
		fmt.Fprintln(r.out, prettyprint.FormatError(terr))
		return false
	}

	result, eerr := r.eval.Eval(node, r.env)
	r.print(result, eerr)
	return false
}

func (r *REPL) print(v value.Value, err *calcerr.CalcError) {
	if err != nil {
		fmt.Fprintln(r.out, prettyprint.FormatError(err))
		return
	}
	fmt.Fprintln(r.out, prettyprint.Format(v))
}

// helpNode builds the `(help topic...)` AST directly, the same way
// the translator would, since the REPL intercepts "help" before
// handing input to internal/translator (spec.md §6 "If the first word
// is help ... call help with the remaining words as topics").
func helpNode(topics []string) ast.ArgType {
	args := make([]ast.ArgType, len(topics))
	for i, t := range topics {
		args[i] = ast.NewAtom(ast.Literal{Kind: ast.LitSymbol, Sym: t})
	}
	return ast.NewSExpr(ast.Expression{
		Head: ast.Head{IsOperator: true, Op: operator.Help},
		Args: args,
	})
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func trimParens(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.Trim(w, "()"))
	}
	return out
}
