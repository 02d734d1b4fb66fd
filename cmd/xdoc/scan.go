package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"xdoc/internal/diag"
	"xdoc/internal/diagfmt"
	"xdoc/internal/driver"
	"xdoc/internal/fix"
	"xdoc/internal/observ"
	"xdoc/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <path>",
	Short: "Check the doc comments of a file or directory",
	Long: `Scan finds /// doc comment blocks, parses their XML and the identifiers of
name attributes on param, paramref, typeparam and typeparamref, and reports problems.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	scanCmd.Flags().Bool("tree", false, "print the doc comment trees (single file only)")
	scanCmd.Flags().Bool("cache", false, "reuse results of unchanged files")
	scanCmd.Flags().String("cache-dir", "", "cache directory (default: [cache].dir or $XDG_CACHE_HOME/xdoc)")
	scanCmd.Flags().Bool("no-verbatim", false, "treat '@' as punctuation")
	scanCmd.Flags().Bool("timings", false, "report time spent in each scan phase")
	scanCmd.Flags().Bool("fix", false, "apply fix-its for structural problems and rescan")
}

type scanFileJSON struct {
	Path           string   `json:"path"`
	Blocks         int      `json:"blocks"`
	NameAttributes int      `json:"name_attributes"`
	Missing        int      `json:"missing"`
	Names          []string `json:"names,omitempty"`
	Cached         bool     `json:"cached,omitempty"`
}

type scanJSON struct {
	Files       []scanFileJSON            `json:"files"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
	Timings     *observ.Report            `json:"timings,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot scan %s: %w", path, err)
	}

	s, err := loadSettings(cmd, path)
	if err != nil {
		return err
	}
	format, err := s.outputFormat(cmd, "pretty", "short", "json")
	if err != nil {
		return err
	}
	if err := openCache(cmd, s); err != nil {
		return err
	}
	showTree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return err
	}
	applyFixes, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	s.opts.NeedDocs = showTree
	if showTimings {
		s.opts.Timer = observ.NewTimer()
	}

	fs, results, err := scanPath(cmd.Context(), path, info.IsDir(), s.opts)
	if err != nil {
		return err
	}
	if applyFixes {
		changed, err := runFixes(cmd, fs, results)
		if err != nil {
			return err
		}
		if changed {
			if fs, results, err = scanPath(cmd.Context(), path, info.IsDir(), s.opts); err != nil {
				return err
			}
		}
	}

	bag := driver.MergeBags(results)
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		if err := writeScanJSON(out, fs, results, bag, s); err != nil {
			return err
		}
	case "short":
		if text := diag.FormatShortDiagnostics(bag.Items(), fs, false); text != "" {
			fmt.Fprintln(out, text)
		}
	default:
		if showTree && len(results) == 1 {
			for _, doc := range results[0].Docs {
				if err := diagfmt.FormatNodePretty(out, doc, fs); err != nil {
					return err
				}
			}
		}
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			Max:       s.cfg.Diagnostics.Max,
			ShowNotes: true,
			ShowFixes: true,
		})
		writeScanSummary(cmd.ErrOrStderr(), results, diagfmt.Summary(bag))
	}
	if showTimings && format != "json" {
		fmt.Fprint(cmd.ErrOrStderr(), s.opts.Timer.Summary())
	}

	if bag.HasErrors() {
		return errHasErrors
	}
	return nil
}

// scanPath scans a directory tree or a single file.
func scanPath(ctx context.Context, path string, isDir bool, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	if isDir {
		return driver.ScanDir(ctx, path, opts)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSetWithBase(filepath.Dir(abs))
	res, err := driver.ScanFile(ctx, fs, abs, opts)
	if err != nil {
		return nil, nil, err
	}
	return fs, []driver.FileResult{*res}, nil
}

// runFixes applies every fix-it and reports what happened on stderr.
// It returns true when at least one file was rewritten.
func runFixes(cmd *cobra.Command, fs *source.FileSet, results []driver.FileResult) (bool, error) {
	res, err := fix.Apply(fs, driver.MergeBags(results).Items(), fix.Options{})
	if errors.Is(err, fix.ErrNoFixes) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	errOut := cmd.ErrOrStderr()
	for _, a := range res.Applied {
		fmt.Fprintf(errOut, "fixed %s:%d:%d: %s\n", a.Path, a.Line, a.Col, a.Title)
	}
	for _, sk := range res.Skipped {
		fmt.Fprintf(errOut, "skipped %s: %s (%s)\n", sk.Path, sk.Title, sk.Reason)
	}
	fmt.Fprintf(errOut, "applied %d fix(es) in %d file(s)\n", len(res.Applied), len(res.Files))
	return len(res.Files) > 0, nil
}

func openCache(cmd *cobra.Command, s *settings) error {
	enabled := s.cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		var err error
		if enabled, err = cmd.Flags().GetBool("cache"); err != nil {
			return err
		}
	}
	if !enabled {
		return nil
	}
	dir := s.cfg.Cache.Dir
	if flagDir, err := cmd.Flags().GetString("cache-dir"); err == nil && flagDir != "" {
		dir = flagDir
	}
	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return err
	}
	s.opts.Cache = cache
	return nil
}

func writeScanSummary(w io.Writer, results []driver.FileResult, diagSummary string) {
	var blocks, names, missing, cached int
	for _, r := range results {
		blocks += r.Summary.Blocks
		names += r.Summary.NameAttributes
		missing += r.Summary.Missing
		if r.Cached {
			cached++
		}
	}
	line := fmt.Sprintf("%d file(s), %d doc comment(s), %d name(s), %d missing", len(results), blocks, names, missing)
	if cached > 0 {
		line += fmt.Sprintf(", %d cached", cached)
	}
	if diagSummary != "" {
		line += "; " + diagSummary
	}
	fmt.Fprintln(w, line)
}

func writeScanJSON(w io.Writer, fs *source.FileSet, results []driver.FileResult, bag *diag.Bag, s *settings) error {
	out := scanJSON{Files: make([]scanFileJSON, 0, len(results))}
	for _, r := range results {
		out.Files = append(out.Files, scanFileJSON{
			Path:           fs.Get(r.FileID).FormatPath(fs.BaseDir()),
			Blocks:         r.Summary.Blocks,
			NameAttributes: r.Summary.NameAttributes,
			Missing:        r.Summary.Missing,
			Names:          r.Summary.Names,
			Cached:         r.Cached,
		})
	}
	out.Diagnostics = diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		Max:              s.cfg.Diagnostics.Max,
		IncludeNotes:     true,
		IncludeFixes:     true,
	})
	if s.opts.Timer != nil {
		report := s.opts.Timer.Report()
		out.Timings = &report
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
