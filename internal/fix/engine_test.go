package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/xmldoc"
)

func scanDisk(t *testing.T, path string) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, err := fs.Load(path, source.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag(0)
	xmldoc.Scan(fs.Get(id), xmldoc.Options{Reporter: diag.BagReporter{Bag: bag}})
	bag.Sort()
	return fs, bag
}

func TestApplyStructuralFixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unquoted value", "/// <param name=A/>\n", "/// <param name=\"A\"/>\n"},
		{"bare attribute", "/// <param name/>\n", "/// <param name=\"\"/>\n"},
		{"missing equals", "/// <param name \"A\"/>\n", "/// <param name =\"A\"/>\n"},
		{"unterminated tag", "/// <param name=\"A\" <b/>\n", "/// <param name=\"A\"/> <b/>\n"},
		{"unterminated end tag", "/// <para>x</para\n", "/// <para>x</para>\n"},
		{"stray end tag", "/// text</para>\n", "/// text\n"},
		{"crlf kept", "/// <param name=A/>\r\n/// <b/>\r\n", "/// <param name=\"A\"/>\r\n/// <b/>\r\n"},
		{"mixed endings kept", "/// <param name=A/>\r\n/// <b/>\n/// x</i>\r\n", "/// <param name=\"A\"/>\r\n/// <b/>\n/// x\r\n"},
		{"bom kept", "\xEF\xBB\xBF/// <param name=A/>\n", "\xEF\xBB\xBF/// <param name=\"A\"/>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "a.cs")
			if err := os.WriteFile(path, []byte(tt.input), 0o600); err != nil {
				t.Fatal(err)
			}
			fs, bag := scanDisk(t, path)
			res, err := Apply(fs, bag.Items(), Options{})
			if err != nil {
				t.Fatalf("Apply: %v (skipped %+v)", err, res.Skipped)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Fatalf("content (-want +got):\n%s", diff)
			}
			if len(res.Files) != 1 || res.Files[0].Path != "a.cs" {
				t.Fatalf("files = %+v", res.Files)
			}

			_, after := scanDisk(t, path)
			for _, d := range after.Items() {
				if d.Code != diag.SynMissingIdentifier {
					t.Fatalf("diagnostic left after fixing: %s %s", d.Code.ID(), d.Message)
				}
			}
		})
	}
}

func TestApplyDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.cs")
	input := "/// <param name=A/>\n"
	if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
		t.Fatal(err)
	}
	fs, bag := scanDisk(t, path)
	res, err := Apply(fs, bag.Items(), Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Files[0].Content) != "/// <param name=\"A\"/>\n" || res.Files[0].EditCount != 2 {
		t.Fatalf("change = %+v", res.Files[0])
	}
	if got, _ := os.ReadFile(path); string(got) != input {
		t.Fatalf("dry run wrote the file: %q", got)
	}
	if len(res.Applied) != 2 || res.Applied[0].Line != 1 || res.Applied[0].Col != 17 {
		t.Fatalf("applied = %+v", res.Applied)
	}
}

func TestApplySkips(t *testing.T) {
	fs := source.NewFileSet()
	virtual := fs.AddVirtual("mem.cs", []byte("/// x</p>\n"))
	d := diag.NewWarning(diag.DocStrayEndTag, source.Span{File: virtual, Start: 5, End: 9}, "stray").
		WithDelete("remove </p>", source.Span{File: virtual, Start: 5, End: 9}, "</p>")

	res, err := Apply(fs, []diag.Diagnostic{d}, Options{})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}

	path := filepath.Join(t.TempDir(), "b.cs")
	if err := os.WriteFile(path, []byte("/// x</p>\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	id, err := fs.Load(path, source.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	stale := diag.NewWarning(diag.DocStrayEndTag, source.Span{File: id, Start: 5, End: 9}, "stale").
		WithDelete("remove </q>", source.Span{File: id, Start: 5, End: 9}, "</q>")
	first := diag.NewWarning(diag.DocStrayEndTag, source.Span{File: id, Start: 4, End: 9}, "first").
		WithDelete("remove x</p>", source.Span{File: id, Start: 4, End: 9}, "x</p>")
	overlap := diag.NewWarning(diag.DocStrayEndTag, source.Span{File: id, Start: 5, End: 9}, "overlap").
		WithDelete("remove </p>", source.Span{File: id, Start: 5, End: 9}, "</p>")

	res, err = Apply(fs, []diag.Diagnostic{stale, first, overlap}, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	var reasons []string
	for _, s := range res.Skipped {
		reasons = append(reasons, s.Reason)
	}
	want := []string{"existing text does not match expected content", "conflicts with a previously applied fix"}
	if diff := cmp.Diff(want, reasons); diff != "" {
		t.Fatalf("skip reasons (-want +got):\n%s", diff)
	}
	if string(res.Files[0].Content) != "/// \n" {
		t.Fatalf("content = %q", res.Files[0].Content)
	}
}

func TestRewriteKeepsLineEndings(t *testing.T) {
	src := []byte("ab\ncd\nef\n")
	crlf := []uint32{2, 8}
	tests := []struct {
		name  string
		edits []edit
		want  string
	}{
		{"no edits", nil, "ab\r\ncd\nef\r\n"},
		{"insert before ending", []edit{{FixEdit: diag.FixEdit{Span: source.Span{Start: 2, End: 2}, NewText: "X"}}}, "abX\r\ncd\nef\r\n"},
		{"delete across crlf", []edit{{FixEdit: diag.FixEdit{Span: source.Span{Start: 1, End: 4}}}}, "ad\nef\r\n"},
		{"replace at end", []edit{{FixEdit: diag.FixEdit{Span: source.Span{Start: 6, End: 8}, NewText: "EF"}}}, "ab\r\ncd\nEF\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, string(rewrite(src, tt.edits, crlf))); diff != "" {
				t.Fatalf("rewrite (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpansConflict(t *testing.T) {
	at := func(s, e uint32) source.Span { return source.Span{Start: s, End: e} }
	tests := []struct {
		a, b source.Span
		want bool
	}{
		{at(3, 3), at(3, 3), false},
		{at(3, 3), at(3, 5), false},
		{at(4, 4), at(3, 5), true},
		{at(5, 5), at(3, 5), false},
		{at(1, 4), at(3, 6), true},
		{at(1, 3), at(3, 6), false},
	}
	for _, tt := range tests {
		if got := spansConflict(tt.a, tt.b); got != tt.want {
			t.Errorf("spansConflict(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
