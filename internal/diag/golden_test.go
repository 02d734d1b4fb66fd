package diag

import (
	"testing"

	"xdoc/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	file := fs.Add("/workspace/src/Widget.cs", []byte("/// <param name=\"\"/>\n/// <b\n"), 0)

	diags := []Diagnostic{
		NewError(DocUnterminatedTag, source.Span{File: file, Start: 25, End: 27}, "unterminated XML tag").
			WithNote(source.Span{File: file, Start: 25, End: 26}, "tag starts here"),
		NewError(SynMissingIdentifier, source.At(file, 17), "identifier expected"),
	}

	expected := "error SYN2102 src/Widget.cs:1:18 identifier expected\n" +
		"error DOC3001 src/Widget.cs:2:5 unterminated XML tag\n" +
		"note DOC3001 src/Widget.cs:2:5 tag starts here"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("empty input must render empty, got %q", got)
	}
}
