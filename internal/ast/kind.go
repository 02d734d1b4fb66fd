package ast

import (
	"xdoc/internal/diag"
	"xdoc/internal/source"
)

// NodeKind tags every node of a doc-comment tree.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindIdentifierName
	KindNameAttribute
	KindTextAttribute
	KindElement
	KindDocComment
)

func (k NodeKind) String() string {
	switch k {
	case KindIdentifierName:
		return "IdentifierName"
	case KindNameAttribute:
		return "XmlNameAttribute"
	case KindTextAttribute:
		return "XmlTextAttribute"
	case KindElement:
		return "XmlElement"
	case KindDocComment:
		return "DocComment"
	default:
		return "Invalid"
	}
}

// Node is implemented by every tree node.
type Node interface {
	Kind() NodeKind
	// FullSpan covers the node including absorbed trivia and skipped text.
	FullSpan() source.Span
	// Diagnostics returns the diagnostics owned by this node (not its children).
	Diagnostics() []diag.Diagnostic
}
