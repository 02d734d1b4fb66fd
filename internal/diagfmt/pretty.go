package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"xdoc/internal/diag"
	"xdoc/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.path, p.gutter, p.caret} {
		// опция важнее глобального color.NoColor
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i, d := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s: %s\n",
			p.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
			p.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID()),
			d.Message)
		writeSnippet(w, p, fs, d.Primary, p.caret)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
					formatPath(fs.Get(n.Span.File), fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
				writeSnippet(w, p, fs, n.Span, p.note)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("fix:"), fix.Title)
				for _, e := range fix.Edits {
					fmt.Fprintf(w, "    %s\n", describeEdit(e, fs))
				}
			}
		}
	}
}

// writeSnippet печатает строку, в которой начинается sp, и подчёркивание.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, p palette, fs *source.FileSet, sp source.Span, caret *color.Color) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := strings.TrimRight(f.GetLine(start.Line), "\r")

	from := min(int(start.Col-1), len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col-1), len(line))
	}
	pad := displayWidth(line[:from])
	width := max(displayWidth(line[from:to]), 1)

	num := fmt.Sprintf("%d", start.Line)
	gutter := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), expandTabs(line))
	fmt.Fprintf(w, "%s %s %s%s\n", gutter, p.gutter.Sprint("|"), strings.Repeat(" ", pad),
		caret.Sprint("^"+strings.Repeat("~", width-1)))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}

// Summary returns e.g. "2 errors, 1 warning"; empty when the bag is empty.
func Summary(bag *diag.Bag) string {
	var parts []string
	for _, c := range []struct {
		n    int
		word string
	}{
		{bag.Count(diag.SevError), "error"},
		{bag.Count(diag.SevWarning), "warning"},
		{bag.Count(diag.SevInfo), "info"},
	} {
		switch {
		case c.n == 1:
			parts = append(parts, "1 "+c.word)
		case c.n > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", c.n, c.word))
		}
	}
	return strings.Join(parts, ", ")
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

func formatPos(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, _ := fs.Resolve(span)
		return fmt.Sprintf("%d:%d", start.Line, start.Col)
	}
	return fmt.Sprintf("offset %d", span.Start)
}

func describeEdit(e diag.FixEdit, fs *source.FileSet) string {
	switch {
	case e.Span.Empty():
		return fmt.Sprintf("insert %q at %s", e.NewText, formatPos(e.Span, fs))
	case e.NewText == "":
		return fmt.Sprintf("delete %s", formatSpan(e.Span, fs))
	default:
		return fmt.Sprintf("replace %s with %q", formatSpan(e.Span, fs), e.NewText)
	}
}
