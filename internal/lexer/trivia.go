package lexer

import (
	"xdoc/internal/token"
)

// collectLeadingTrivia собирает подряд идущие пробелы перед значимым токеном.
// - ' ', '\t', '\v', '\f' и Unicode-пробелы коалесцируются в один TriviaSpace
// - '\r' и '\n' коалесцируются в один TriviaNewline
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch {
		case lx.eatSpaces():
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.cursor.TextFrom(start),
			})
		case lx.eatNewlines():
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: lx.cursor.SpanFrom(start),
				Text: lx.cursor.TextFrom(start),
			})
		default:
			return
		}
	}
}

func (lx *Lexer) eatSpaces() bool {
	ate := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) {
			lx.cursor.Bump()
			ate = true
			continue
		}
		if b >= utf8RuneSelf {
			if r, sz := lx.peekRune(); sz != 0 && isSpaceRune(r) {
				lx.bumpRune()
				ate = true
				continue
			}
		}
		break
	}
	return ate
}

func (lx *Lexer) eatNewlines() bool {
	ate := false
	for b := lx.cursor.Peek(); !lx.cursor.EOF() && (b == '\n' || b == '\r'); b = lx.cursor.Peek() {
		lx.cursor.Bump()
		ate = true
	}
	return ate
}
