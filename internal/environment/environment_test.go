package environment

import (
	"sort"
	"testing"

	"github.com/cwbudde/go-pcalc/internal/calcerr"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func TestBindAndLookup(t *testing.T) {
	root := New()
	root.Bind("x", value.Boolean{B: true})

	got, err := root.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if b, ok := got.(value.Boolean); !ok || !b.B {
		t.Fatalf("Lookup(x) = %#v", got)
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	root := New()
	root.Bind("x", value.Boolean{B: true})
	child := NewChild(root)

	got, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup from child: %v", err)
	}
	if b, ok := got.(value.Boolean); !ok || !b.B {
		t.Fatalf("child Lookup(x) = %#v", got)
	}
}

func TestBindShadowsParent(t *testing.T) {
	root := New()
	root.Bind("x", value.Boolean{B: true})
	child := NewChild(root)
	child.Bind("x", value.Boolean{B: false})

	got, _ := child.Lookup("x")
	if b := got.(value.Boolean); b.B {
		t.Fatal("child binding did not shadow parent")
	}
	rootVal, _ := root.Lookup("x")
	if b := rootVal.(value.Boolean); !b.B {
		t.Fatal("shadowing in child mutated the parent binding")
	}
}

func TestLookupUnbound(t *testing.T) {
	root := New()
	_, err := root.Lookup("nope")
	if err == nil || err.Kind != calcerr.UnboundSymbol {
		t.Fatalf("Lookup(nope) err = %v, want UnboundSymbol", err)
	}
}

func TestNamesOnlyOwnBindings(t *testing.T) {
	root := New()
	root.Bind("a", value.Boolean{B: true})
	child := NewChild(root)
	child.Bind("b", value.Boolean{B: true})

	names := child.Names()
	sort.Strings(names)
	if len(names) != 1 || names[0] != "b" {
		t.Fatalf("child.Names() = %v, want [b]", names)
	}
}
