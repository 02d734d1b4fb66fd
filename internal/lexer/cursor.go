package lexer

import (
	"math"

	"xdoc/internal/source"
)

// Cursor представляет позицию внутри текста значения атрибута.
// Off is relative to Src; spans are produced in absolute file coordinates (Base + Off).
type Cursor struct {
	Src  []byte
	Off  uint32
	Base uint32
	File source.FileID
}

// NewCursor creates a cursor over src whose first byte sits at absolute offset base.
// Bytes that would lie past math.MaxUint32 are not addressable by a Span and
// are cut off, so every produced offset is Base+Off without wrap-around.
func NewCursor(file source.FileID, src []byte, base uint32) Cursor {
	if room := uint64(math.MaxUint32 - base); uint64(len(src)) > room {
		src = src[:room]
	}
	return Cursor{Src: src, Base: base, File: file}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.Src)) // #nosec G115 -- clamped in NewCursor
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.Src[c.Off], c.Src[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает абсолютный Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File,
		Start: c.Base + uint32(m),
		End:   c.Base + c.Off,
	}
}

// TextFrom возвращает исходный текст фрагмента, начиная с метки
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.Src[m:c.Off])
}

// Here returns the zero-width absolute span at the current position.
func (c *Cursor) Here() source.Span {
	return source.At(c.File, c.Base+c.Off)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
