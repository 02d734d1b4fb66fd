package diag

import "xdoc/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithInsert adds a single-edit fix that inserts text at pos.
func (d Diagnostic) WithInsert(title string, pos source.Span, text string) Diagnostic {
	at := source.At(pos.File, pos.Start)
	return d.WithFix(title, FixEdit{Span: at, NewText: text})
}

// WithDelete adds a single-edit fix that removes sp, guarded by its current text.
func (d Diagnostic) WithDelete(title string, sp source.Span, old string) Diagnostic {
	return d.WithFix(title, FixEdit{Span: sp, OldText: old})
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
