package lexer

import (
	"xdoc/internal/token"
)

// scanPunct выдаёт односимвольную пунктуацию. Неизвестный символ (включая
// не-ASCII руну, которая не может начинать идентификатор) — token.Unknown
// целиком, без диагностики.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	kind := token.Unknown
	if b := lx.cursor.Peek(); b < utf8RuneSelf {
		kind = token.LookupPunct(b)
		lx.cursor.Bump()
	} else {
		lx.bumpRune()
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

// scanNumber съедает цифры вместе с буквенными суффиксами и префиксами (0x1F, 10u, 1_000).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Number, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}
