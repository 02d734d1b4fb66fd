package fuzztests

import (
	"testing"

	"xdoc/internal/lexer"
	"xdoc/internal/parser"
	"xdoc/internal/testkit"
	"xdoc/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzTokenizeTerminates(f *testing.F) {
	addNameSeeds(f)
	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > maxFuzzInput {
			text = text[:maxFuzzInput]
		}
		toks := lexer.Tokenize(text, 0, lexer.Options{})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream of %q does not end with EOF", text)
		}
		for _, tok := range toks {
			if tok.Kind == token.Invalid || tok.HasDiagnostics() {
				t.Fatalf("lexer produced %+v for %q", tok, text)
			}
		}
	})
}

func FuzzParseIdentifierName(f *testing.F) {
	addNameSeeds(f)
	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > maxFuzzInput {
			text = text[:maxFuzzInput]
		}
		for _, offset := range []uint32{0, 1000} {
			n := parser.ParseIdentifierName(text, offset, parser.Options{})
			if err := testkit.CheckIdentifierInvariants(n, text, offset); err != nil {
				t.Fatalf("ParseIdentifierName(%q, %d): %v", text, offset, err)
			}
		}
	})
}
