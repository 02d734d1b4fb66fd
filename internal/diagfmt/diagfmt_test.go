package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdoc/internal/diag"
	"xdoc/internal/lexer"
	"xdoc/internal/parser"
	"xdoc/internal/source"
	"xdoc/internal/xmldoc"
)

func scanBag(t *testing.T, path, content string) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(0)
	xmldoc.Scan(fs.Get(id), xmldoc.Options{Reporter: diag.BagReporter{Bag: bag}})
	bag.Sort()
	return fs, bag
}

func TestPrettyCaret(t *testing.T) {
	fs, bag := scanBag(t, "/home/user/project/src/a.cs", "class C {\n\t/// <param name=\"{T}\"/>\n}\n")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "src/a.cs:2:19: ERROR SYN2102: identifier expected\n" +
		"2 |     /// <param name=\"{T}\"/>\n" +
		"  |                      ^\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("Pretty mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs, bag := scanBag(t, "a.cs", "/// 日本</param>")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output:\n%s", buf.String())
	}
	// </param> без пары; каретка под '<' после двух широких рун
	caretCol := strings.Index(lines[2], "^") - strings.Index(lines[2], "|") - 2
	if caretCol != len("/// ")+4 {
		t.Fatalf("caret at %d:\n%s", caretCol, buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs, bag := scanBag(t, "a.cs", "/// <para><b>x</para> text</i>")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true})
	for _, want := range []string{
		"a.cs:1:12: WARNING DOC3005: element <b> is not closed\n",
		"  note: a.cs:1:15: implicitly closed by </para>\n",
		"  fix: remove </i>\n    delete 1:27-1:31\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output lacks %q:\n%s", want, buf.String())
		}
	}

	fs, bag = scanBag(t, "a.cs", "/// <param name=A/>")
	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{ShowFixes: true})
	if want := "  fix: insert \"\n    insert \"\\\"\" at 1:17\n"; !strings.Contains(buf.String(), want) {
		t.Fatalf("output lacks %q:\n%s", want, buf.String())
	}
}

func TestPrettyColorToggle(t *testing.T) {
	fs, bag := scanBag(t, "a.cs", `/// <param name=""/>`)
	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatal("plain output contains escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatal("colored output has no escape codes")
	}
}

func TestSummary(t *testing.T) {
	_, bag := scanBag(t, "a.cs", "/// <param name=\"\"/><param name=\".\"/>\n/// <para>")
	if got := Summary(bag); got != "2 errors, 1 warning" {
		t.Fatalf("Summary = %q", got)
	}
	if got := Summary(diag.NewBag(0)); got != "" {
		t.Fatalf("Summary(empty) = %q", got)
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, bag := scanBag(t, "a.cs", `/// <param name="."/>`)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	want := DiagnosticsOutput{Count: 1, Diagnostics: []DiagnosticJSON{{
		Severity: "ERROR",
		Code:     "SYN2102",
		Message:  "identifier expected",
		Location: LocationJSON{File: "a.cs", StartByte: 17, EndByte: 17, StartLine: 1, StartCol: 18, EndLine: 1, EndCol: 18},
	}}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<arg>", []byte("int A.B"))
	toks := lexer.Tokenize("int A.B", 0, lexer.Options{File: id})
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"  1: KwIdent(int)    \"int\" at 1:1-1:4\n" +
		"  2: Ident           \"A\" at 1:5-1:6 (leading: Space)\n" +
		"  3: Dot             \".\" at 1:6-1:7\n" +
		"  4: Ident           \"B\" at 1:7-1:8\n" +
		"  5: EOF             at 1:8-1:8\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokensJSON(t *testing.T) {
	toks := lexer.Tokenize("@class", 0, lexer.Options{})
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Kind != "Ident" || out[0].Text != "@class" || out[1].Kind != "EOF" {
		t.Fatalf("tokens = %+v", out)
	}
}

func TestTokenClasses(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<arg>", []byte("int value @var 1 ."))
	toks := lexer.Tokenize("int value @var 1 .", 0, lexer.Options{File: id})
	var got []string
	for _, tok := range toks {
		got = append(got, tokenClass(tok))
	}
	want := []string{"keyword", "contextual", "identifier", "number", "punctuation", "eof"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("classes (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"value\" (contextual) at 1:5-1:10") {
		t.Fatalf("pretty tokens:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "\"@var\" (contextual)") {
		t.Fatalf("verbatim identifier marked contextual:\n%s", buf.String())
	}
}

func TestIdentifierTree(t *testing.T) {
	n := parser.ParseIdentifierName("A{T}", 0, parser.Options{})
	var buf bytes.Buffer
	if err := FormatNodePretty(&buf, n, nil); err != nil {
		t.Fatal(err)
	}
	want := "IdentifierName (span: span(0-1), full: span(0-4))\n" +
		"├─ Ident \"A\"\n" +
		"├─ Skipped \"{\"\n" +
		"├─ Skipped \"T\"\n" +
		"└─ Skipped \"}\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingIdentifierTree(t *testing.T) {
	n := parser.ParseIdentifierName(" .", 10, parser.Options{})
	var buf bytes.Buffer
	if err := FormatNodePretty(&buf, n, nil); err != nil {
		t.Fatal(err)
	}
	want := "IdentifierName (span: span(10-10), full: span(10-12))\n" +
		"├─ Ident <missing>\n" +
		"├─ Skipped \".\"\n" +
		"└─ ERROR SYN2102: identifier expected (span: span(10-10))\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeJSON(t *testing.T) {
	n := parser.ParseIdentifierName("int", 0, parser.Options{})
	var buf bytes.Buffer
	if err := FormatNodeJSON(&buf, n); err != nil {
		t.Fatal(err)
	}
	var out NodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Type != "IdentifierName" || out.Text != "int" || out.Missing || out.Token == nil || out.Token.Keyword != "int" {
		t.Fatalf("node = %+v", out)
	}
}

func TestDocCommentTree(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.cs", []byte(`/// <param name="x" cref="T"/>`))
	docs := xmldoc.Scan(fs.Get(id), xmldoc.Options{})
	var buf bytes.Buffer
	if err := FormatNodePretty(&buf, docs[0], fs); err != nil {
		t.Fatal(err)
	}
	want := "DocComment (span: 1:1-1:31)\n" +
		"└─ XmlElement <param/> (span: 1:5-1:31)\n" +
		"   ├─ XmlNameAttribute name (span: 1:12-1:20)\n" +
		"   │  └─ IdentifierName (span: 1:18-1:19, full: 1:18-1:19)\n" +
		"   │     └─ Ident \"x\"\n" +
		"   └─ XmlTextAttribute cref = \"T\" (span: 1:21-1:29)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}
