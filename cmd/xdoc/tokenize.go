package main

import (
	"github.com/spf13/cobra"

	"xdoc/internal/diagfmt"
	"xdoc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <text>",
	Short: "Show the tokens of a name attribute value",
	Long:  `Tokenize lexes text the way the name parser does: keywords are reported as promoted identifiers`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-verbatim", false, "treat '@' as punctuation")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, ".")
	if err != nil {
		return err
	}
	format, err := s.outputFormat(cmd, "pretty", "json")
	if err != nil {
		return err
	}

	result := driver.Tokenize(args[0], s.opts)
	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
}
