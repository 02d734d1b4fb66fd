package driver

import (
	"context"
	"fmt"
	"strconv"

	"xdoc/internal/ast"
	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/trace"
	"xdoc/internal/xmldoc"
)

// Summary is the cacheable digest of one scanned file.
type Summary struct {
	Blocks         int
	NameAttributes int
	Missing        int
	// Names lists the identifier text of every name attribute in file order;
	// missing identifiers contribute "".
	Names []string
}

// FileResult содержит результат сканирования одного файла
type FileResult struct {
	Path    string
	FileID  source.FileID
	Docs    []*ast.DocComment // nil, если результат взят из кэша (см. Options.NeedDocs)
	Summary Summary
	Bag     *diag.Bag
	Cached  bool
}

func summarize(docs []*ast.DocComment) Summary {
	sum := Summary{Blocks: len(docs)}
	for _, doc := range docs {
		for _, a := range ast.NameAttributes(doc) {
			sum.NameAttributes++
			if a.Identifier.IsMissing() {
				sum.Missing++
			}
			sum.Names = append(sum.Names, a.Identifier.Text())
		}
	}
	return sum
}

// ScanFile loads path into fs and parses its doc comments.
// A load failure is returned as an error; parse problems end up in the Bag.
func ScanFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (*FileResult, error) {
	loadPhase := opts.Timer.Begin("load")
	fileID, err := fs.Load(path, source.LoadOptions{NormalizeNFC: opts.NormalizeNFC})
	opts.Timer.End(loadPhase, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	scanPhase := opts.Timer.Begin("scan")
	defer opts.Timer.End(scanPhase, "")
	return scanLoaded(ctx, fs.Get(fileID), opts)
}

// scanLoaded не трогает FileSet, поэтому безопасен для параллельного вызова.
// В кэш попадает полный список диагностик; лимит применяется только к результату.
func scanLoaded(ctx context.Context, file *source.File, opts Options) (*FileResult, error) {
	_, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)
	res := &FileResult{
		Path:   file.Path,
		FileID: file.ID,
	}
	full := diag.NewBag(0)

	key := cacheKey(Digest(file.Hash), opts)
	if opts.Cache != nil && !opts.NeedDocs {
		var payload ScanPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Error(trace.FromContext(ctx), trace.ScopeFile, "cache-get", err, span.ID())
		}
		if ok && payload.ContentHash == Digest(file.Hash) {
			payload.restore(file.ID, full)
			res.Bag = capBag(full, opts.MaxDiagnostics)
			res.Summary = payload.Summary
			res.Cached = true
			span.WithExtra("cached", "true").End("")
			return res, nil
		}
	}

	xopts := opts.xmldocOptions()
	xopts.Reporter = diag.NewDedupReporter(diag.BagReporter{Bag: full})
	res.Docs = xmldoc.Scan(file, xopts)
	res.Summary = summarize(res.Docs)
	full.Sort()
	res.Bag = capBag(full, opts.MaxDiagnostics)
	traceBlocks(trace.FromContext(ctx), res.Docs, span.ID())

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toPayload(Digest(file.Hash), res.Summary, full.Items())); err != nil {
			trace.Error(trace.FromContext(ctx), trace.ScopeFile, "cache-put", err, span.ID())
		}
	}

	span.WithExtra("blocks", strconv.Itoa(res.Summary.Blocks)).
		WithExtra("names", strconv.Itoa(res.Summary.NameAttributes)).
		End("")
	return res, nil
}

// capBag copies the sorted diagnostics of full into a bag limited to limit.
func capBag(full *diag.Bag, limit int) *diag.Bag {
	if limit <= 0 {
		return full
	}
	out := diag.NewBag(limit)
	for _, d := range full.Items() {
		out.Add(d)
	}
	return out
}

// traceBlocks emits one block-scope point per doc comment (debug level only).
func traceBlocks(tr trace.Tracer, docs []*ast.DocComment, parent uint64) {
	if !tr.Level().ShouldEmit(trace.ScopeBlock) {
		return
	}
	for _, doc := range docs {
		names := ast.NameAttributes(doc)
		missing := 0
		for _, a := range names {
			if a.Identifier.IsMissing() {
				missing++
			}
		}
		trace.Point(tr, trace.ScopeBlock, "block",
			fmt.Sprintf("%d-%d names=%d missing=%d", doc.Span.Start, doc.Span.End, len(names), missing), parent)
	}
}
