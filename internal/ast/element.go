package ast

import (
	"xdoc/internal/diag"
	"xdoc/internal/source"
)

// Element is an XML element of a doc comment: `<name attrs...>children</name>`
// or the self-closing `<name attrs.../>`.
type Element struct {
	Name        string
	NameSpan    source.Span
	Attributes  []Attribute
	Children    []*Element
	SelfClosing bool
	Span        source.Span
	Diags       []diag.Diagnostic
}

func (e *Element) Kind() NodeKind                 { return KindElement }
func (e *Element) FullSpan() source.Span          { return e.Span }
func (e *Element) Diagnostics() []diag.Diagnostic { return e.Diags }

// Attr returns the first attribute named name, or nil.
func (e *Element) Attr(name string) Attribute {
	for _, a := range e.Attributes {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// DocComment is one block of consecutive `///` lines.
type DocComment struct {
	Span     source.Span
	Elements []*Element
	Diags    []diag.Diagnostic
}

func (d *DocComment) Kind() NodeKind                 { return KindDocComment }
func (d *DocComment) FullSpan() source.Span          { return d.Span }
func (d *DocComment) Diagnostics() []diag.Diagnostic { return d.Diags }
