package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-pcalc/internal/environment"
	"github.com/cwbudde/go-pcalc/internal/value"
)

func TestLoadPreludeYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prelude.yaml")
	doc := "pi: 3\nhalf: 1/2\nok: true\nname: hello\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env := environment.New()
	if err := loadPrelude(path, env); err != nil {
		t.Fatalf("loadPrelude: %v", err)
	}

	pi, err := env.Lookup("pi")
	if err != nil {
		t.Fatalf("Lookup(pi): %v", err)
	}
	if n, ok := pi.(value.BigNum); !ok || n.N.String() != "3" {
		t.Errorf("pi = %#v, want BigNum(3)", pi)
	}

	half, err := env.Lookup("half")
	if err != nil {
		t.Fatalf("Lookup(half): %v", err)
	}
	if n, ok := half.(value.BigNum); !ok || n.N.String() != "1/2" {
		t.Errorf("half = %#v, want BigNum(1/2)", half)
	}

	ok, err := env.Lookup("ok")
	if err != nil {
		t.Fatalf("Lookup(ok): %v", err)
	}
	if b, isBool := ok.(value.Boolean); !isBool || !b.B {
		t.Errorf("ok = %#v, want Boolean(true)", ok)
	}

	name, err := env.Lookup("name")
	if err != nil {
		t.Fatalf("Lookup(name): %v", err)
	}
	if s, isSym := name.(value.Symbol); !isSym || s.Name != "hello" {
		t.Errorf("name = %#v, want Symbol(hello)", name)
	}
}

func TestLoadPreludeMissingFile(t *testing.T) {
	env := environment.New()
	if err := loadPrelude(filepath.Join(t.TempDir(), "nope.yaml"), env); err == nil {
		t.Fatal("loadPrelude on a missing file should fail")
	}
}

func TestLoadPreludeJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prelude.json")
	doc := `{"pi": 3, "ok": true, "name": "hello"}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env := environment.New()
	if err := loadPreludeJSON(path, env); err != nil {
		t.Fatalf("loadPreludeJSON: %v", err)
	}

	pi, err := env.Lookup("pi")
	if err != nil {
		t.Fatalf("Lookup(pi): %v", err)
	}
	if n, ok := pi.(value.BigNum); !ok || n.N.String() != "3" {
		t.Errorf("pi = %#v, want BigNum(3)", pi)
	}
}

func TestPreludeValueUnsupportedType(t *testing.T) {
	if _, err := preludeValue([]any{1, 2, 3}); err == nil {
		t.Fatal("preludeValue on a slice should fail")
	}
}
