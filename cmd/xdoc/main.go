package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"xdoc/internal/version"
)

// errHasErrors завершает процесс с кодом 1 без дополнительного сообщения:
// диагностики уже напечатаны.
var errHasErrors = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:           "xdoc",
	Short:         "Doc comment name attribute parser",
	Long:          `xdoc parses XML documentation comments and the identifiers named by their name attributes`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		stopProfiling, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		stopTracing, err := setupTracing(cmd)
		if err != nil {
			stopProfiling()
			return err
		}
		runCleanup = func() {
			stopTracing()
			stopProfiling()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cleanup()
	},
}

// runCleanup останавливает трассировку и профили; обе функции идемпотентны.
var runCleanup func()

func cleanup() {
	if runCleanup != nil {
		runCleanup()
	}
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to xdoc.toml (default: search upwards)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel files (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
}

// main sets the command version and executes the root command.
// Any error, including reported diagnostics, exits with status 1.
func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHasErrors) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		cleanup()
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal is isTerminal for writers that may not be files (tests).
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
