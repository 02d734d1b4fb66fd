package diag

import (
	"fmt"
	"sort"
	"strings"

	"xdoc/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation used by golden tests and the CLI short output. Entries are sorted
// deterministically and joined with '\n' (empty string when nothing remains).
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	base := fs.BaseDir()

	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, renderShort(fs, base, d.Severity.Label(), d.Code, d.Primary, d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			rendered = append(rendered, renderShort(fs, base, "note", d.Code, n.Span, n.Msg))
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})

	lines := make([]string, 0, len(rendered))
	for _, r := range rendered {
		lines = append(lines, fmt.Sprintf("%s %s %s:%d:%d %s", r.Severity, r.Code, r.Path, r.Line, r.Column, r.Message))
	}
	return strings.Join(lines, "\n")
}

func renderShort(fs *source.FileSet, base, sev string, code Code, sp source.Span, msg string) shortDiagnostic {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return shortDiagnostic{
		Severity: sev,
		Code:     code.ID(),
		Path:     f.FormatPath(base),
		Line:     start.Line,
		Column:   start.Col,
		Message:  strings.Join(strings.Fields(msg), " "),
	}
}
