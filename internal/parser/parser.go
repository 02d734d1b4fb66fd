package parser

import (
	"xdoc/internal/ast"
	"xdoc/internal/diag"
	"xdoc/internal/lexer"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// MsgIdentifierExpected is the message of the only diagnostic this parser produces.
const MsgIdentifierExpected = "identifier expected"

// Options configures ParseIdentifierName.
type Options struct {
	File source.FileID
	// Lexer tweaks the tokenization of the value; File is taken from Options.File.
	Lexer lexer.Options
	// Reporter, if set, also receives the diagnostic attached to a missing identifier.
	Reporter diag.Reporter
}

// Parser — состояние разбора одного значения атрибута. Живёт один вызов.
type Parser struct {
	lx   *lexer.Lexer
	opts Options
}

// ParseIdentifierName parses the value of a name attribute. text is the raw
// attribute value and offset is the absolute position of its first byte.
//
// The result is never nil and always wraps exactly one token. Only the first
// token decides the outcome; everything after it is kept as skipped trivia
// without diagnostics. Text that would extend past absolute offset
// math.MaxUint32 is ignored.
func ParseIdentifierName(text string, offset uint32, opts Options) *ast.IdentifierName {
	lxOpts := opts.Lexer
	lxOpts.File = opts.File
	p := Parser{
		lx:   lexer.New(text, offset, lxOpts),
		opts: opts,
	}
	return p.parseIdentifierName()
}

func (p *Parser) parseIdentifierName() *ast.IdentifierName {
	var tok token.Token
	if p.lx.Peek().IsIdent() {
		tok = p.lx.Next()
	} else {
		tok = p.missingIdentifier()
	}
	// дальше переходов нет: всё оставшееся выбрасываем
	tok.Trailing = append(tok.Trailing, p.skipRest()...)
	return ast.NewIdentifierName(tok)
}

// missingIdentifier synthesizes a zero-width identifier at the current offset
// (before any whitespace) without consuming input.
func (p *Parser) missingIdentifier() token.Token {
	pos := p.lx.Pos()
	d := diag.NewError(diag.SynMissingIdentifier, pos, MsgIdentifierExpected)
	diag.Forward(p.opts.Reporter, d)
	return token.NewMissing(token.Ident, pos, d)
}

// skipRest drains the lexer up to and including EOF. Each dropped token turns
// into TriviaSkipped; whitespace around it is kept as is so the full span
// stays contiguous.
func (p *Parser) skipRest() []token.Trivia {
	var out []token.Trivia
	for {
		tok := p.lx.Next()
		out = append(out, tok.Leading...)
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, token.Trivia{Kind: token.TriviaSkipped, Span: tok.Span, Text: tok.Text})
	}
}
