// Package environment implements the lexical environment of spec.md
// §4.3: a stack of frames, each an identifier->Value mapping with an
// optional parent, shared by reference so a Proc can outlive the
// define that created it (spec.md §9 "Closures and captured frames").
package environment

import (
	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/value"
)

// Frame is one level of lexical scope. Frames are always referenced
// through a pointer so that child frames and captured closures share
// the same underlying bindings map as mutations occur.
type Frame struct {
	bindings map[string]value.Value
	parent   *Frame
}

// New creates a root frame with no parent. The REPL creates exactly
// one of these at startup and it persists across inputs (spec.md §3
// "Lifecycle").
func New() *Frame {
	return &Frame{bindings: make(map[string]value.Value)}
}

// NewChild pushes a new frame whose parent is f. Procedure application
// calls this with the Proc's captured frame, not the call site's frame
// (spec.md §4.3).
func NewChild(parent *Frame) *Frame {
	return &Frame{bindings: make(map[string]value.Value), parent: parent}
}

// Lookup searches f, then its ancestors, for name.
func (f *Frame) Lookup(name string) (value.Value, *calcerr.CalcError) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, calcerr.New(calcerr.UnboundSymbol, "unbound symbol: %s", name)
}

// Bind sets name in f's own bindings, shadowing any binding of the
// same name in a parent frame.
func (f *Frame) Bind(name string, v value.Value) {
	f.bindings[name] = v
}

// Names returns the identifiers bound directly in f (not ancestors),
// in no particular order.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.bindings))
	for name := range f.bindings {
		names = append(names, name)
	}
	return names
}
