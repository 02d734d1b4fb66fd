package xmldoc

import (
	"slices"

	"xdoc/internal/diag"
	"xdoc/internal/parser"
)

// DefaultNameElements lists elements whose `name` attribute names a parameter.
var DefaultNameElements = []string{"param", "paramref", "typeparam", "typeparamref"}

type Options struct {
	// NameElements overrides DefaultNameElements when non-empty.
	NameElements []string
	// Parser is passed through to parser.ParseIdentifierName; File and
	// Reporter are filled in by this package.
	Parser parser.Options
	// Reporter receives structural diagnostics and missing identifiers.
	Reporter diag.Reporter
}

func (o Options) isNameElement(name string) bool {
	if len(o.NameElements) == 0 {
		return slices.Contains(DefaultNameElements, name)
	}
	return slices.Contains(o.NameElements, name)
}
