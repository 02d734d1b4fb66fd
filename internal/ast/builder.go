package ast

import (
	"xdoc/internal/token"
)

// NewIdentifierName wraps tok. The token is taken by value, so the node owns it.
func NewIdentifierName(tok token.Token) *IdentifierName {
	return &IdentifierName{Token: tok}
}

// NewNameAttribute places ident as the value child of a name attribute.
// Никакой проверки: узел просто забирает переданные части.
func NewNameAttribute(name, equals, startQuote token.Token, ident *IdentifierName, endQuote token.Token) *NameAttribute {
	return &NameAttribute{
		NameTok:    name,
		Equals:     equals,
		StartQuote: startQuote,
		Identifier: ident,
		EndQuote:   endQuote,
	}
}

// NewTextAttribute builds an attribute whose value stays raw text.
func NewTextAttribute(name, equals, startQuote token.Token, value token.Token, endQuote token.Token) *TextAttribute {
	return &TextAttribute{
		NameTok:    name,
		Equals:     equals,
		StartQuote: startQuote,
		Value:      value.Text,
		ValueSpan:  value.Span,
		EndQuote:   endQuote,
	}
}
