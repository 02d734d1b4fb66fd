package xmldoc

import (
	"strings"

	"xdoc/internal/ast"
	"xdoc/internal/diag"
	"xdoc/internal/parser"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// scanner walks the masked XML of one block. pos is relative to src.
type scanner struct {
	src   []byte
	pos   int
	base  uint32
	file  source.FileID
	opts  Options
	stack []*ast.Element
	doc   *ast.DocComment
}

func parseXML(src []byte, base uint32, file source.FileID, opts Options) *ast.DocComment {
	s := &scanner{
		src:  src,
		base: base,
		file: file,
		opts: opts,
		doc:  &ast.DocComment{Span: source.Span{File: file, Start: base, End: base + off32(len(src))}},
	}
	s.run()
	return s.doc
}

func (s *scanner) run() {
	for s.pos < len(s.src) {
		if s.src[s.pos] != '<' {
			s.pos++ // текст между тегами нас не интересует
			continue
		}
		switch {
		case s.hasPrefix("<!--"):
			s.skipComment()
		case s.hasPrefix("</"):
			s.endTag()
		case s.pos+1 < len(s.src) && isNameStart(s.src[s.pos+1]):
			s.startTag()
		default:
			s.pos++
		}
	}
	for i := len(s.stack) - 1; i >= 0; i-- {
		el := s.stack[i]
		el.Span.End = s.doc.Span.End
		s.attach(&el.Diags, diag.NewWarning(diag.DocUnclosedElement, el.NameSpan, "element <"+el.Name+"> is not closed"))
	}
	s.stack = nil
}

func (s *scanner) startTag() {
	open := s.pos
	s.pos++ // '<'
	nameStart := s.pos
	s.scanName()
	el := &ast.Element{
		Name:     string(s.src[nameStart:s.pos]),
		NameSpan: s.span(nameStart, s.pos),
	}
	s.appendElement(el)

	// last — конец последнего значимого куска тега, туда вставляется "/>"
	last := s.pos
	for {
		s.skipSpace()
		switch {
		case s.pos >= len(s.src) || s.src[s.pos] == '<':
			el.Span = s.span(open, s.pos)
			d := diag.NewError(diag.DocUnterminatedTag, s.span(open, open+1), "unterminated XML tag <"+el.Name+">").
				WithInsert("close the tag with />", s.span(last, last), "/>")
			s.attach(&el.Diags, d)
			// незакрытый открывающий тег не получает потомков
			el.SelfClosing = true
			return
		case s.hasPrefix("/>"):
			s.pos += 2
			el.SelfClosing = true
			el.Span = s.span(open, s.pos)
			return
		case s.src[s.pos] == '>':
			s.pos++
			el.Span = s.span(open, s.pos)
			s.stack = append(s.stack, el)
			return
		case isNameStart(s.src[s.pos]):
			el.Attributes = append(el.Attributes, s.attribute(el.Name))
			last = s.pos
		default:
			s.pos++ // мусор внутри тега
			last = s.pos
		}
	}
}

func (s *scanner) appendElement(el *ast.Element) {
	if n := len(s.stack); n > 0 {
		parent := s.stack[n-1]
		parent.Children = append(parent.Children, el)
		return
	}
	s.doc.Elements = append(s.doc.Elements, el)
}

func (s *scanner) endTag() {
	open := s.pos
	s.pos += 2
	nameStart := s.pos
	s.scanName()
	name := string(s.src[nameStart:s.pos])
	nameEnd := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '>' && s.src[s.pos] != '<' {
		s.pos++
	}
	closed := s.pos < len(s.src) && s.src[s.pos] == '>'
	if closed {
		s.pos++
	}

	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].Name != name {
			continue
		}
		for j := len(s.stack) - 1; j > i; j-- {
			inner := s.stack[j]
			inner.Span.End = s.base + off32(open)
			d := diag.NewWarning(diag.DocUnclosedElement, inner.NameSpan, "element <"+inner.Name+"> is not closed").
				WithNote(s.span(open, nameEnd), "implicitly closed by </"+name+">")
			s.attach(&inner.Diags, d)
		}
		el := s.stack[i]
		el.Span.End = s.base + off32(s.pos)
		s.stack = s.stack[:i]
		if !closed {
			d := diag.NewError(diag.DocUnterminatedTag, s.span(open, open+2), "unterminated end tag </"+name+">").
				WithInsert("close the end tag", s.span(nameEnd, nameEnd), ">")
			s.attach(&el.Diags, d)
		}
		return
	}
	tag := s.span(open, s.pos)
	d := diag.NewWarning(diag.DocStrayEndTag, tag, "end tag </"+name+"> has no matching start tag").
		WithDelete("remove </"+name+">", tag, string(s.src[open:s.pos]))
	s.attach(&s.doc.Diags, d)
}

// attribute разбирает `name = "value"`; недостающие '=' и кавычки синтезируются.
func (s *scanner) attribute(element string) ast.Attribute {
	nameStart := s.pos
	s.scanName()
	nameTok := token.Token{Kind: token.Ident, Span: s.span(nameStart, s.pos), Text: string(s.src[nameStart:s.pos])}

	s.skipSpace()
	var gaps []gap
	var equals token.Token
	if s.pos < len(s.src) && s.src[s.pos] == '=' {
		equals = token.Token{Kind: token.Assign, Span: s.span(s.pos, s.pos+1), Text: "="}
		s.pos++
		s.skipSpace()
	} else {
		equals = s.missing(token.Assign)
		gaps = append(gaps, gap{&equals, diag.DocMissingEquals, "expected '=' after attribute " + nameTok.Text, "="})
	}

	var startQuote, endQuote token.Token
	var quote byte
	if s.pos < len(s.src) && (s.src[s.pos] == '"' || s.src[s.pos] == '\'') {
		quote = s.src[s.pos]
		startQuote = token.Token{Kind: quoteKind(quote), Span: s.span(s.pos, s.pos+1), Text: string(quote)}
		s.pos++
	} else {
		startQuote = s.missing(token.DQuote)
		gaps = append(gaps, gap{&startQuote, diag.DocMissingQuote, "attribute " + nameTok.Text + " value must be quoted", `"`})
	}

	valueStart := s.pos
	for s.pos < len(s.src) && !s.valueEnds(quote) {
		s.pos++
	}
	value := token.Token{Span: s.span(valueStart, s.pos), Text: string(s.src[valueStart:s.pos])}

	if quote != 0 && s.pos < len(s.src) && s.src[s.pos] == quote {
		endQuote = token.Token{Kind: quoteKind(quote), Span: s.span(s.pos, s.pos+1), Text: string(quote)}
		s.pos++
	} else {
		endQuote = s.missing(quoteKind(quote))
		gaps = append(gaps, gap{&endQuote, diag.DocMissingQuote, "missing closing quote for attribute " + nameTok.Text, closingQuote(quote)})
	}
	s.fillGaps(gaps)

	if nameTok.Text == "name" && s.opts.isNameElement(element) {
		popts := s.opts.Parser
		popts.File = s.file
		popts.Reporter = s.opts.Reporter
		ident := parser.ParseIdentifierName(value.Text, value.Span.Start, popts)
		return ast.NewNameAttribute(nameTok, equals, startQuote, ident, endQuote)
	}
	return ast.NewTextAttribute(nameTok, equals, startQuote, value, endQuote)
}

// valueEnds reports whether the current byte terminates an attribute value.
// Значение в кавычках не переходит на следующую строку.
func (s *scanner) valueEnds(quote byte) bool {
	b := s.src[s.pos]
	if quote != 0 {
		return b == quote || b == '<' || b == '\n'
	}
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '>' || b == '<' || s.hasPrefix("/>")
}

// gap — недостающий кусок атрибута: '=' или кавычка.
type gap struct {
	tok  *token.Token
	code diag.Code
	msg  string
	text string
}

func (s *scanner) missing(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.At(s.file, s.base+off32(s.pos)), Missing: true}
}

// fillGaps attaches one diagnostic to every missing token. The first gap at
// an offset carries a single insert for all gaps there: `name/>` gets `=""`.
func (s *scanner) fillGaps(gaps []gap) {
	for i, g := range gaps {
		d := diag.NewError(g.code, g.tok.Span, g.msg)
		if i == 0 || gaps[i-1].tok.Span.Start != g.tok.Span.Start {
			var text strings.Builder
			for _, next := range gaps[i:] {
				if next.tok.Span.Start != g.tok.Span.Start {
					break
				}
				text.WriteString(next.text)
			}
			d = d.WithInsert("insert "+text.String(), g.tok.Span, text.String())
		}
		g.tok.Diags = []diag.Diagnostic{d}
		diag.Forward(s.opts.Reporter, d)
	}
}

func (s *scanner) attach(dst *[]diag.Diagnostic, d diag.Diagnostic) {
	*dst = append(*dst, d)
	diag.Forward(s.opts.Reporter, d)
}

func (s *scanner) skipComment() {
	s.pos += 4
	for s.pos < len(s.src) && !s.hasPrefix("-->") {
		s.pos++
	}
	s.pos = min(s.pos+3, len(s.src))
}

func (s *scanner) scanName() {
	for s.pos < len(s.src) && isNameChar(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) hasPrefix(p string) bool {
	return len(s.src)-s.pos >= len(p) && string(s.src[s.pos:s.pos+len(p)]) == p
}

func (s *scanner) span(from, to int) source.Span {
	return source.Span{File: s.file, Start: s.base + off32(from), End: s.base + off32(to)}
}

func closingQuote(q byte) string {
	if q == 0 {
		return `"`
	}
	return string(q)
}

func quoteKind(q byte) token.Kind {
	if q == '\'' {
		return token.Quote
	}
	return token.DQuote
}

// XML name characters, ASCII subset plus any non-ASCII byte.
func isNameStart(b byte) bool {
	return b == '_' || b == ':' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= 0x80
}

func isNameChar(b byte) bool {
	return isNameStart(b) || b == '-' || b == '.' || (b >= '0' && b <= '9')
}
