package driver

import (
	"bytes"

	"xdoc/internal/ast"
	"xdoc/internal/diag"
	"xdoc/internal/lexer"
	"xdoc/internal/parser"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// argPath is the display name of text passed on the command line.
const argPath = "<arg>"

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize lexes a single attribute value the way the name parser sees it.
func Tokenize(text string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(argPath, []byte(text))
	return &TokenizeResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Tokens:  lexer.Tokenize(text, 0, lexer.Options{File: fileID, NoVerbatim: opts.NoVerbatim}),
	}
}

type NameResult struct {
	FileSet *source.FileSet
	File    *source.File
	Node    *ast.IdentifierName
	Bag     *diag.Bag
}

// ParseName runs the identifier recovery parser on one attribute value.
// offset shifts every span, as if text started at that byte of its file.
func ParseName(text string, offset uint32, opts Options) *NameResult {
	fs := source.NewFileSet()
	// виртуальный файл дополняется пробелами, чтобы смещения резолвились в line:col
	content := append(bytes.Repeat([]byte{' '}, int(offset)), text...)
	fileID := fs.AddVirtual(argPath, content)

	bag := diag.NewBag(opts.MaxDiagnostics)
	node := parser.ParseIdentifierName(text, offset, parser.Options{
		File:     fileID,
		Lexer:    lexer.Options{NoVerbatim: opts.NoVerbatim},
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &NameResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Node:    node,
		Bag:     bag,
	}
}
