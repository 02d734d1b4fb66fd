package ast

import (
	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// IdentifierName wraps exactly one identifier token, present or missing.
// A nil *IdentifierName is never handed out by the parser.
type IdentifierName struct {
	Token token.Token
}

func (n *IdentifierName) Kind() NodeKind { return KindIdentifierName }

// IsMissing reports whether the identifier was synthesized.
func (n *IdentifierName) IsMissing() bool { return n.Token.Missing }

// Span is the span of the identifier token itself (zero-width when missing).
func (n *IdentifierName) Span() source.Span { return n.Token.Span }

// FullSpan includes leading whitespace and any text the parser skipped.
func (n *IdentifierName) FullSpan() source.Span { return n.Token.FullSpan() }

// Text is the printed text: the token text, empty when missing.
func (n *IdentifierName) Text() string { return n.Token.Text }

// Value is the identifier without the verbatim '@' prefix.
func (n *IdentifierName) Value() string { return n.Token.Value() }

// Diagnostics of an identifier name are those of its single token: zero or one.
func (n *IdentifierName) Diagnostics() []diag.Diagnostic { return n.Token.Diags }

// Skipped returns the trivia holding text dropped after the identifier decision.
func (n *IdentifierName) Skipped() []token.Trivia {
	var out []token.Trivia
	for _, tr := range n.Token.Trailing {
		if tr.Kind == token.TriviaSkipped {
			out = append(out, tr)
		}
	}
	return out
}

func (n *IdentifierName) String() string { return n.Token.Text }
