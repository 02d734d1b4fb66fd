package token

import (
	"strings"

	"xdoc/internal/diag"
	"xdoc/internal/source"
)

// Token represents a single token of an attribute value with its location and trivia.
type Token struct {
	Kind     Kind
	Keyword  Keyword // заполнено только для KwIdent
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
	Missing  bool
	Diags    []diag.Diagnostic
}

// NewMissing synthesizes a zero-width token at pos that stands in for absent input.
// The token is a fresh value on every call and carries exactly one diagnostic.
func NewMissing(k Kind, pos source.Span, d diag.Diagnostic) Token {
	return Token{
		Kind:    k,
		Span:    source.At(pos.File, pos.Start),
		Missing: true,
		Diags:   []diag.Diagnostic{d},
	}
}

// IsIdent reports whether the token may serve as an identifier,
// either directly or as a promoted keyword.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == KwIdent }

// IsPromotedKeyword reports whether the token was lexed from a reserved keyword.
func (t Token) IsPromotedKeyword() bool { return t.Kind == KwIdent }

// IsVerbatim reports whether the token is an @-prefixed identifier.
func (t Token) IsVerbatim() bool {
	return t.Kind == Ident && strings.HasPrefix(t.Text, "@")
}

// IsPunct reports whether the token is punctuation (including Unknown characters).
func (t Token) IsPunct() bool {
	return t.Kind >= Dot && t.Kind <= Unknown
}

// Value returns the identifier value: Text without the verbatim '@'.
func (t Token) Value() string {
	if t.IsVerbatim() {
		return t.Text[1:]
	}
	return t.Text
}

// FullSpan covers the token together with its leading and trailing trivia.
func (t Token) FullSpan() source.Span {
	sp := t.Span
	for _, tr := range t.Leading {
		sp = sp.Cover(tr.Span)
	}
	for _, tr := range t.Trailing {
		sp = sp.Cover(tr.Span)
	}
	return sp
}

// HasDiagnostics reports whether any diagnostic is attached.
func (t Token) HasDiagnostics() bool { return len(t.Diags) != 0 }
