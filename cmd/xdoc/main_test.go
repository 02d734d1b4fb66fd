package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags возвращает флаги к значениям по умолчанию: команды глобальные.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	runCleanup = nil
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	cleanup()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestNameCommand(t *testing.T) {
	out, _, err := execute(t, "name", "A.B")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"IdentifierName", `Ident "A"`, `Skipped "."`, `Skipped "B"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestNameCommandMissing(t *testing.T) {
	out, errOut, err := execute(t, "name", "--color=off", "--offset=4", "{T}")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Ident <missing>") {
		t.Fatalf("stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "<arg>:1:5: ERROR SYN2102: identifier expected") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestNameCommandJSON(t *testing.T) {
	out, _, err := execute(t, "name", "--format=json", "int")
	if err != nil {
		t.Fatal(err)
	}
	var node struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &node); err != nil {
		t.Fatal(err)
	}
	if node.Type != "IdentifierName" || node.Text != "int" {
		t.Fatalf("node = %+v", node)
	}
}

func TestTokenizeCommand(t *testing.T) {
	out, _, err := execute(t, "tokenize", "--format=json", "A{T}")
	if err != nil {
		t.Fatal(err)
	}
	var toks []map[string]any
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatal(err)
	}
	if len(toks) != 5 {
		t.Fatalf("got %d tokens:\n%s", len(toks), out)
	}
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.cs"), "/// <param name=\"a\"/>\nvoid F(int a) {}\n")
	writeFile(t, filepath.Join(dir, "bad.cs"), "/// <param name=\".\"/>\nvoid G(int b) {}\n")

	out, errOut, err := execute(t, "scan", "--color=off", dir)
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "bad.cs:1:18: ERROR SYN2102: identifier expected") {
		t.Fatalf("stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "2 file(s), 2 doc comment(s), 2 name(s), 1 missing; 1 error") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestScanCommandShort(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.cs"), "/// <param name=\".\"/>\n/// <param name=\"\"/>\n")

	out, _, err := execute(t, "scan", "--format=short", dir)
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("err = %v", err)
	}
	want := "error SYN2102 bad.cs:1:18 identifier expected\n" +
		"error SYN2102 bad.cs:2:18 identifier expected\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestScanCommandJSONWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xdoc.toml"), "[scan]\nextensions = [\".csx\"]\n[output]\nformat = \"json\"\n")
	writeFile(t, filepath.Join(dir, "a.csx"), "/// <typeparam name=\"T\"/>\n")
	writeFile(t, filepath.Join(dir, "b.cs"), "/// <param name=\"\"/>\n")

	out, _, err := execute(t, "scan", dir)
	if err != nil {
		t.Fatal(err)
	}
	var res scanJSON
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("%v:\n%s", err, out)
	}
	if len(res.Files) != 1 || res.Files[0].Path != "a.csx" || res.Files[0].Names[0] != "T" {
		t.Fatalf("files = %+v", res.Files)
	}
	if res.Diagnostics.Count != 0 {
		t.Fatalf("diagnostics = %+v", res.Diagnostics)
	}
}

func TestScanCommandTrace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cs"), "/// <param name=\"a\"/>\n")
	tracePath := filepath.Join(t.TempDir(), "scan.ndjson")

	if _, _, err := execute(t, "--trace", tracePath, "--trace-level=debug", "scan", dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"name":"scan-dir"`, `"scope":"file"`, `"scope":"driver"`, `"scope":"block"`, `names=1 missing=0"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("trace lacks %s:\n%s", want, data)
		}
	}
}

func TestScanCommandTimingsAndProfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cs"), "/// <param name=\"a\"/>\n")
	cpuPath := filepath.Join(t.TempDir(), "cpu.pprof")

	_, errOut, err := execute(t, "--cpu-profile", cpuPath, "scan", "--timings", dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"timings:", "  list ", "  load ", "  scan ", "  total "} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("stderr lacks %q:\n%s", want, errOut)
		}
	}
	if info, err := os.Stat(cpuPath); err != nil || info.Size() == 0 {
		t.Fatalf("cpu profile not written: %v", err)
	}
}

func TestScanCommandFix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cs")
	writeFile(t, path, "/// <param name=A/>\n/// text</para>\n/// <param name=\".\"/>\n")

	out, errOut, err := execute(t, "scan", "--fix", "--format=short", path)
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("err = %v", err)
	}
	for _, want := range []string{
		"fixed a.cs:1:17: insert \"",
		"fixed a.cs:2:9: remove </para>",
		"applied 3 fix(es) in 1 file(s)",
	} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("stderr lacks %q:\n%s", want, errOut)
		}
	}
	if out != "error SYN2102 a.cs:3:18 identifier expected\n" {
		t.Fatalf("stdout after fixing = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "/// <param name=\"A\"/>\n/// text\n/// <param name=\".\"/>\n"; string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}
}

func TestScanCommandCache(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.cs")
	writeFile(t, file, "/// <param name=\"a\"/>\n")
	cacheDir := filepath.Join(t.TempDir(), "cache")

	if _, _, err := execute(t, "scan", "--cache", "--cache-dir", cacheDir, file); err != nil {
		t.Fatal(err)
	}
	_, errOut, err := execute(t, "scan", "--cache", "--cache-dir", cacheDir, file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "1 cached") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestScanCommandTreeWithCache(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.cs")
	writeFile(t, file, "/// <param name=\"A\"/>\n")
	cacheDir := filepath.Join(t.TempDir(), "cache")

	for i := range 2 {
		out, _, err := execute(t, "scan", "--tree", "--cache", "--cache-dir", cacheDir, "--color", "off", file)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"DocComment", "IdentifierName", `Ident "A"`} {
			if !strings.Contains(out, want) {
				t.Fatalf("run %d: output lacks %q:\n%s", i, want, out)
			}
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--format=json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"tool": "xdoc"`) {
		t.Fatalf("output:\n%s", out)
	}
}
