package lexer

import "xdoc/internal/source"

// Options configures a Lexer. The zero value lexes into FileID 0.
type Options struct {
	File source.FileID
	// NoVerbatim disables "@ident" verbatim identifiers; '@' is then plain punctuation.
	NoVerbatim bool
}
