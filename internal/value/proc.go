package value

import "github.com/cwbudde/go-pcalc/internal/ast"

// Proc is a closure: a parameter list, the body expression captured at
// the `lambda` site, and the environment frame that was current at
// that site (spec.md §3, §9 "Closures and captured frames").
//
// Env holds a *environment.Frame. It is typed as any here, rather than
// internal/environment.Frame, because environment frames hold Values
// and Values (this Proc included) are held by frames: the two
// packages would otherwise import each other. internal/evaluator,
// which imports both, performs the one type assertion back to
// *environment.Frame at call sites (see Apply in internal/evaluator).
type Proc struct {
	Params []string
	Body   ast.ArgType
	Env    any
}

func (Proc) Kind() Kind { return KindProc }

func (p Proc) Clone() Value { return p }

func (p Proc) String() string {
	s := "("
	for i, name := range p.Params {
		if i > 0 {
			s += " "
		}
		s += name
	}
	return s + ") " + p.Body.String()
}
