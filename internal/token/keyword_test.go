package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Keyword{
		"int":        KwInt,
		"class":      KwClass,
		"this":       KwThis,
		"string":     KwString,
		"while":      KwWhile,
		"null":       KwNull,
		"__arglist":  KwArglist,
		"__refvalue": KwRefvalue,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
		if got.String() != lexeme {
			t.Fatalf("%v.String() = %q, want %q", got, got.String(), lexeme)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Int", "CLASS", "This", // регистр важен
		"var", "async", "nameof", "value", // контекстные — обычные идентификаторы
		"identifier", "A", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	all := Keywords()
	if len(all) != 81 {
		t.Fatalf("len(Keywords()) = %d, want 81", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, k := range all {
		name := k.String()
		if name == "" || seen[name] {
			t.Fatalf("bad or duplicate keyword name %q", name)
		}
		seen[name] = true
		if back, ok := LookupKeyword(name); !ok || back != k {
			t.Fatalf("LookupKeyword(%q) = %v,%v; want %v", name, back, ok, k)
		}
	}
}

func TestContextualKeywords(t *testing.T) {
	for _, s := range []string{"var", "await", "nameof", "value", "where"} {
		if !IsContextualKeyword(s) {
			t.Errorf("%q should be contextual", s)
		}
	}
	if IsContextualKeyword("int") {
		t.Errorf("reserved keyword reported as contextual")
	}
}
