package lexer

import (
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// Lexer re-tokenizes the raw text of an attribute value.
// It never reports diagnostics: every byte sequence has a classification.
type Lexer struct {
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

// New creates a lexer over text whose first byte sits at absolute offset base.
func New(text string, base uint32, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(opts.File, []byte(text), base),
		opts:   opts,
	}
}

// Tokenize lexes the whole text and returns the tokens terminated by EOF.
func Tokenize(text string, base uint32, opts Options) []token.Token {
	lx := New(text, base, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF; whitespace перед EOF становится его Leading.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	var tok token.Token
	if lx.cursor.EOF() {
		tok = token.Token{Kind: token.EOF, Span: lx.cursor.Here()}
	} else {
		tok = lx.scan()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Pos returns the zero-width span where the next token begins, before its
// leading trivia. Nothing is consumed.
func (lx *Lexer) Pos() source.Span {
	return source.At(lx.cursor.File, lx.Peek().FullSpan().Start)
}

func (lx *Lexer) scan() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор — scanIdentOrKeyword разберётся
		return lx.scanIdentOrKeyword()
	case ch == '@' && !lx.opts.NoVerbatim && lx.isIdentAfterAt():
		return lx.scanVerbatimIdent()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanPunct()
	}
}
