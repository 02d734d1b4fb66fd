// Package fix applies the fix-its attached to doc comment diagnostics.
package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"xdoc/internal/diag"
	"xdoc/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options controls Apply.
type Options struct {
	// DryRun computes new contents without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title string
	Code  diag.Code
	Path  string
	Line  uint32
	Col   uint32
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Path   string
	Reason string
}

// FileChange summarises modifications performed on a file. Content is the
// text as written to disk, with the BOM and CRLF line endings restored.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte
}

// Result aggregates applied fixes, skipped ones, and file changes.
type Result struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Files   []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// edit — принятая правка с порядком, чтобы вставки в одну точку шли как были выданы.
type edit struct {
	diag.FixEdit
	order int
}

// Apply selects every fix of diagnostics that still fits the loaded file
// contents and writes the result. Fixes that overlap an already accepted one,
// have stale guards, or target virtual or NFC-normalized files are skipped.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result := &Result{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	byFile := make(map[source.FileID][]candidate)
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			file := f.Edits[0].Span.File
			if slices.ContainsFunc(f.Edits, func(e diag.FixEdit) bool { return e.Span.File != file }) {
				result.Skipped = append(result.Skipped, SkippedFix{Title: f.Title, Reason: "fix spans several files"})
				continue
			}
			byFile[file] = append(byFile[file], candidate{diag: d, fix: f, order: order})
			order++
		}
	}

	fileIDs := make([]source.FileID, 0, len(byFile))
	for id := range byFile {
		fileIDs = append(fileIDs, id)
	}
	slices.Sort(fileIDs)

	for _, id := range fileIDs {
		change, err := applyFile(fs, fs.Get(id), byFile[id], result, opts)
		if err != nil {
			return result, err
		}
		if change != nil {
			result.Files = append(result.Files, *change)
		}
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func applyFile(fs *source.FileSet, file *source.File, cands []candidate, result *Result, opts Options) (*FileChange, error) {
	path := file.FormatPath(fs.BaseDir())
	skipAll := func(reason string) {
		for _, c := range cands {
			result.Skipped = append(result.Skipped, SkippedFix{Title: c.fix.Title, Path: path, Reason: reason})
		}
	}
	switch {
	case file.Flags&source.FileVirtual != 0:
		skipAll("target file is virtual")
		return nil, nil
	case file.Flags&source.FileNormalizedNFC != 0:
		skipAll("file content was NFC-normalized on load")
		return nil, nil
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Or(
			cmp.Compare(a.fix.Edits[0].Span.Start, b.fix.Edits[0].Span.Start),
			cmp.Compare(a.order, b.order),
		)
	})

	var accepted []edit
	for _, c := range cands {
		if reason := check(file, c.fix.Edits, accepted); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: c.fix.Title, Path: path, Reason: reason})
			continue
		}
		for _, e := range c.fix.Edits {
			accepted = append(accepted, edit{FixEdit: e, order: len(accepted)})
		}
		start, _ := fs.Resolve(c.diag.Primary)
		result.Applied = append(result.Applied, AppliedFix{
			Title: c.fix.Title,
			Code:  c.diag.Code,
			Path:  path,
			Line:  start.Line,
			Col:   start.Col,
		})
	}
	if len(accepted) == 0 {
		return nil, nil
	}

	content := restoreBOM(rewrite(file.Content, accepted, file.CRLF), file.Flags)
	if !opts.DryRun {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, content, mode); err != nil {
			return nil, fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	return &FileChange{Path: path, EditCount: len(accepted), Content: content}, nil
}

// check returns why edits cannot be applied on top of accepted, or "".
func check(file *source.File, edits []diag.FixEdit, accepted []edit) string {
	for _, e := range edits {
		if e.Span.Start > e.Span.End || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(file.Content[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted {
			if spansConflict(prev.Span, e.Span) {
				return "conflicts with a previously applied fix"
			}
		}
	}
	return ""
}

// spansConflict reports whether two half-open spans overlap. Two insertions
// never conflict; an insertion conflicts with a span strictly containing it.
func spansConflict(a, b source.Span) bool {
	switch {
	case a.Empty() && b.Empty():
		return false
	case a.Empty():
		return b.Start < a.Start && a.Start < b.End
	case b.Empty():
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// rewrite applies non-overlapping edits in one forward pass. Every kept '\n'
// listed in crlf is written back as "\r\n"; other line endings stay as they are.
func rewrite(src []byte, edits []edit, crlf []uint32) []byte {
	slices.SortStableFunc(edits, func(a, b edit) int {
		return cmp.Or(
			cmp.Compare(a.Span.Start, b.Span.Start),
			cmp.Compare(a.Span.End, b.Span.End),
			cmp.Compare(a.order, b.order),
		)
	})
	var out bytes.Buffer
	out.Grow(len(src) + len(crlf))
	pos, next := uint32(0), 0
	copyTo := func(to uint32) {
		for ; next < len(crlf) && crlf[next] < to; next++ {
			if crlf[next] < pos {
				continue // внутри заменённого диапазона
			}
			out.Write(src[pos:crlf[next]])
			out.WriteString("\r\n")
			pos = crlf[next] + 1
		}
		out.Write(src[pos:to])
		pos = to
	}
	for _, e := range edits {
		copyTo(e.Span.Start)
		out.WriteString(e.NewText)
		pos = e.Span.End
	}
	copyTo(uint32(len(src)))
	return out.Bytes()
}

// restoreBOM возвращает BOM, снятый при загрузке.
func restoreBOM(content []byte, flags source.FileFlags) []byte {
	if flags&source.FileHadBOM != 0 {
		content = append([]byte("\xEF\xBB\xBF"), content...)
	}
	return content
}
