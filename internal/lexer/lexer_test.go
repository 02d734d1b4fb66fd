package lexer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdoc/internal/lexer"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func texts(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"space", " ", []token.Kind{token.EOF}},
		{"mixed whitespace", " \t\r\n ", []token.Kind{token.EOF}},
		{"ident", "A", []token.Kind{token.Ident, token.EOF}},
		{"keyword", "int", []token.Kind{token.KwIdent, token.EOF}},
		{"qualified", "A.B", []token.Kind{token.Ident, token.Dot, token.Ident, token.EOF}},
		{"generic", "A{T}", []token.Kind{token.Ident, token.LBrace, token.Ident, token.RBrace, token.EOF}},
		{"angle generic", "List<int>", []token.Kind{token.Ident, token.Lt, token.KwIdent, token.Gt, token.EOF}},
		{"punct", ".", []token.Kind{token.Dot, token.EOF}},
		{"number", "1abc x", []token.Kind{token.Number, token.Ident, token.EOF}},
		{"verbatim", "@class", []token.Kind{token.Ident, token.EOF}},
		{"lone at", "@ 1", []token.Kind{token.At, token.Number, token.EOF}},
		{"unicode ident", "π_1 ω", []token.Kind{token.Ident, token.Ident, token.EOF}},
		{"unknown rune", "→x", []token.Kind{token.Unknown, token.Ident, token.EOF}},
		{"invalid utf8", "\xff", []token.Kind{token.Unknown, token.EOF}},
		{"control byte", "\x01", []token.Kind{token.Unknown, token.EOF}},
		{"entity", "A&lt;T&gt;", []token.Kind{
			token.Ident, token.Amp, token.Ident, token.Semicolon, token.Ident,
			token.Amp, token.Ident, token.Semicolon, token.EOF,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(lexer.Tokenize(tt.input, 0, lexer.Options{}))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Tokenize(%q) kinds mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestKeywordPromotion(t *testing.T) {
	for _, kw := range token.Keywords() {
		toks := lexer.Tokenize(kw.String(), 0, lexer.Options{})
		if len(toks) != 2 {
			t.Fatalf("%q: got %d tokens", kw, len(toks))
		}
		got := toks[0]
		if got.Kind != token.KwIdent || got.Keyword != kw || got.Text != kw.String() || !got.IsIdent() {
			t.Fatalf("%q lexed as %+v", kw, got)
		}
	}
	// контекстные ключевые слова и регистр — просто Ident
	for _, s := range []string{"var", "nameof", "Int", "@int"} {
		got := lexer.Tokenize(s, 0, lexer.Options{})[0]
		if got.Kind != token.Ident || got.Keyword != token.KwNone {
			t.Fatalf("%q lexed as %v/%v, want plain Ident", s, got.Kind, got.Keyword)
		}
	}
}

func TestNoVerbatimOption(t *testing.T) {
	got := kinds(lexer.Tokenize("@int", 0, lexer.Options{NoVerbatim: true}))
	want := []token.Kind{token.At, token.KwIdent, token.EOF}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestSpansAndTrivia(t *testing.T) {
	toks := lexer.Tokenize("  A .B\n", 100, lexer.Options{File: 3})
	if diff := cmp.Diff([]string{"A", ".", "B", ""}, texts(toks)); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}

	a := toks[0]
	if a.Span != (source.Span{File: 3, Start: 102, End: 103}) {
		t.Fatalf("A span = %v", a.Span)
	}
	if len(a.Leading) != 1 || a.Leading[0].Kind != token.TriviaSpace || a.Leading[0].Text != "  " {
		t.Fatalf("A leading = %+v", a.Leading)
	}
	if a.FullSpan() != (source.Span{File: 3, Start: 100, End: 103}) {
		t.Fatalf("A full span = %v", a.FullSpan())
	}

	eof := toks[3]
	if eof.Span != source.At(3, 107) {
		t.Fatalf("EOF span = %v", eof.Span)
	}
	if len(eof.Leading) != 1 || eof.Leading[0].Kind != token.TriviaNewline {
		t.Fatalf("EOF leading = %+v", eof.Leading)
	}
}

func TestLexerNeverReportsAndAlwaysTerminates(t *testing.T) {
	inputs := []string{"", "\x00", "<<<>>>", strings.Repeat("a.", 1000), "\u200d", "@", "@@x", "9" + strings.Repeat("_", 50)}
	for _, in := range inputs {
		toks := lexer.Tokenize(in, 0, lexer.Options{})
		if toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("%q: last token is %v", in, toks[len(toks)-1].Kind)
		}
		for _, tk := range toks {
			if tk.HasDiagnostics() || tk.Missing {
				t.Fatalf("%q: lexer produced diagnostics or missing token: %+v", in, tk)
			}
		}
		// тексты токенов и trivia вместе воспроизводят вход
		var sb strings.Builder
		for _, tk := range toks {
			for _, tr := range tk.Leading {
				sb.WriteString(tr.Text)
			}
			sb.WriteString(tk.Text)
		}
		if sb.String() != in {
			t.Fatalf("round trip: got %q, want %q", sb.String(), in)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New("A B", 0, lexer.Options{})
	if lx.Peek().Text != "A" || lx.Peek().Text != "A" {
		t.Fatalf("Peek must be idempotent")
	}
	if lx.Pos() != source.At(0, 0) {
		t.Fatalf("Pos = %v", lx.Pos())
	}
	if lx.Next().Text != "A" || lx.Next().Text != "B" {
		t.Fatalf("Next order broken")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF must be sticky")
	}

	spaced := lexer.New("  .", 7, lexer.Options{File: 2})
	if spaced.Pos() != source.At(2, 7) || spaced.Peek().Span.Start != 9 {
		t.Fatalf("Pos = %v, must sit before leading trivia", spaced.Pos())
	}
}
