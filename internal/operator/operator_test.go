package operator

import "testing"

func TestLookupAndStringRoundTrip(t *testing.T) {
	for typ, name := range names {
		got, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)
			continue
		}
		if got != typ {
			t.Errorf("Lookup(%q) = %v, want %v", name, got, typ)
		}
		if typ.String() != name {
			t.Errorf("%v.String() = %q, want %q", typ, typ.String(), name)
		}
	}
}

func TestFancyAliases(t *testing.T) {
	cases := map[string]Type{"≤": LtEq, "≥": GtEq, "≠": NEq}
	for word, want := range cases {
		got, ok := Lookup(word)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v, %v, want %v, true", word, got, ok, want)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	if _, ok := Lookup("not-an-operator"); ok {
		t.Fatal("Lookup should miss on an unknown word")
	}
}

func TestIsSpecialForm(t *testing.T) {
	for _, typ := range []Type{Quote, Define, Lambda, If} {
		if !typ.IsSpecialForm() {
			t.Errorf("%v.IsSpecialForm() = false, want true", typ)
		}
	}
	if Add.IsSpecialForm() {
		t.Error("Add.IsSpecialForm() = true, want false")
	}
}
