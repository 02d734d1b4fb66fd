package diag

import (
	"xdoc/internal/source"
)

// Note points at a secondary location, e.g. the end tag that implicitly
// closed an element.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces Span with NewText. OldText, if set, guards the edit: it is
// applied only while the covered text still equals OldText.
type FixEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// IsInsert reports whether the edit only inserts text.
func (e FixEdit) IsInsert() bool { return e.Span.Empty() && e.OldText == "" }

type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
