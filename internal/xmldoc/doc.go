// Package xmldoc finds `///` documentation comments in source text and
// builds their XML element tree.
//
// A block is a run of consecutive lines whose first non-blank characters are
// exactly "///". Before scanning, the indentation and the "///" prefix of
// every line are overwritten with spaces in a private copy of the block, so
// every span produced here points into the original file.
//
// The `name` attribute of the configured elements (param, paramref,
// typeparam, typeparamref by default) is handed to the identifier parser and
// wrapped with ast.NewNameAttribute. Every other attribute keeps its raw
// value. Entities such as &lt; are not decoded.
package xmldoc
