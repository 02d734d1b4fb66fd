package lexer

import (
	"xdoc/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует идентификатор и проверяет его через LookupKeyword.
// Ключевое слово не получает собственный вид токена: оно становится KwIdent.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	if !lx.scanIdentBody() {
		return lx.scanPunct()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.KwIdent, Keyword: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanVerbatimIdent сканирует "@ident". Такой идентификатор никогда не ключевое слово.
func (lx *Lexer) scanVerbatimIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	lx.scanIdentBody()
	return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

// scanIdentBody consumes an identifier start followed by continue characters.
// It reports false without moving the cursor when the current rune cannot start one.
func (lx *Lexer) scanIdentBody() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return false
		}
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if lx.cursor.EOF() || !isIdentContinueByte(b) {
				return true
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			return true
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) isIdentAfterAt() bool {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if b1 < utf8RuneSelf {
		return isIdentStartByte(b1)
	}
	save := lx.cursor.Mark()
	lx.cursor.Bump()
	r, sz := lx.peekRune()
	lx.cursor.Reset(save)
	return sz != 0 && isIdentStartRune(r)
}
