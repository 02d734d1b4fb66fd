package main

import (
	"github.com/spf13/cobra"

	"xdoc/internal/diagfmt"
	"xdoc/internal/driver"
)

var nameCmd = &cobra.Command{
	Use:   "name [flags] <text>",
	Short: "Parse a name attribute value",
	Long: `Name parses text as the value of a name attribute. The first token decides:
an identifier (keywords included) is taken, anything else yields a missing identifier.
Everything after the first token is skipped silently.`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	nameCmd.Flags().Uint32("offset", 0, "absolute offset of the first byte of text")
	nameCmd.Flags().Bool("no-verbatim", false, "treat '@' as punctuation")
}

func runName(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, ".")
	if err != nil {
		return err
	}
	format, err := s.outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}
	offset, err := cmd.Flags().GetUint32("offset")
	if err != nil {
		return err
	}

	result := driver.ParseName(args[0], offset, s.opts)
	if format == "json" {
		return diagfmt.FormatNodeJSON(cmd.OutOrStdout(), result.Node)
	}
	if err := diagfmt.FormatNodePretty(cmd.OutOrStdout(), result.Node, result.FileSet); err != nil {
		return err
	}
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: s.color,
			Max:   s.cfg.Diagnostics.Max,
		})
	}
	return nil
}
