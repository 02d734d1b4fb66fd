package ast

import (
	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// Attribute is either a *NameAttribute or a *TextAttribute.
type Attribute interface {
	Node
	// Name returns the XML attribute name, e.g. "name" or "cref".
	Name() string
}

// NameAttribute is `name="<identifier>"`: its value is parsed as an IdentifierName.
type NameAttribute struct {
	NameTok    token.Token
	Equals     token.Token
	StartQuote token.Token
	Identifier *IdentifierName
	EndQuote   token.Token
}

func (a *NameAttribute) Kind() NodeKind { return KindNameAttribute }
func (a *NameAttribute) Name() string   { return a.NameTok.Text }

func (a *NameAttribute) FullSpan() source.Span {
	return coverTokens(a.NameTok, a.Equals, a.StartQuote, a.EndQuote).Cover(a.Identifier.FullSpan())
}

// Diagnostics собирает диагностики кавычек и '='; диагностики идентификатора
// остаются на самом IdentifierName.
func (a *NameAttribute) Diagnostics() []diag.Diagnostic {
	return collectDiags(a.NameTok, a.Equals, a.StartQuote, a.EndQuote)
}

// TextAttribute is any other attribute; its value is kept verbatim.
type TextAttribute struct {
	NameTok    token.Token
	Equals     token.Token
	StartQuote token.Token
	Value      string
	ValueSpan  source.Span
	EndQuote   token.Token
}

func (a *TextAttribute) Kind() NodeKind { return KindTextAttribute }
func (a *TextAttribute) Name() string   { return a.NameTok.Text }

func (a *TextAttribute) FullSpan() source.Span {
	return coverTokens(a.NameTok, a.Equals, a.StartQuote, a.EndQuote).Cover(a.ValueSpan)
}

func (a *TextAttribute) Diagnostics() []diag.Diagnostic {
	return collectDiags(a.NameTok, a.Equals, a.StartQuote, a.EndQuote)
}

func coverTokens(first token.Token, rest ...token.Token) source.Span {
	sp := first.FullSpan()
	for _, t := range rest {
		sp = sp.Cover(t.FullSpan())
	}
	return sp
}

func collectDiags(toks ...token.Token) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, t := range toks {
		if t.HasDiagnostics() {
			out = append(out, t.Diags...)
		}
	}
	return out
}
