package xmldoc

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"xdoc/internal/ast"
	"xdoc/internal/source"
)

// Block is the location of one doc comment inside a file.
type Block struct {
	Span  source.Span // от начала первой строки до конца последней (без '\n')
	Lines int
}

// FindBlocks returns the doc comment blocks of f in file order.
func FindBlocks(f *source.File) []Block {
	var (
		blocks []Block
		cur    *Block
	)
	content := f.Content
	for lineStart := 0; lineStart < len(content); {
		lineEnd := bytes.IndexByte(content[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(content)
		} else {
			lineEnd += lineStart
		}

		if docPrefixEnd(content[lineStart:lineEnd]) >= 0 {
			start, end := off32(lineStart), off32(lineEnd)
			if cur == nil {
				blocks = append(blocks, Block{Span: source.Span{File: f.ID, Start: start, End: end}})
				cur = &blocks[len(blocks)-1]
			}
			cur.Span.End = end
			cur.Lines++
		} else {
			cur = nil
		}
		lineStart = lineEnd + 1
	}
	return blocks
}

// Scan parses every doc comment block of f.
func Scan(f *source.File, opts Options) []*ast.DocComment {
	blocks := FindBlocks(f)
	out := make([]*ast.DocComment, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, ParseBlock(f, b, opts))
	}
	return out
}

// ParseBlock builds the element tree of a single block.
func ParseBlock(f *source.File, b Block, opts Options) *ast.DocComment {
	masked := maskPrefixes(f.Slice(b.Span))
	return parseXML(masked, b.Span.Start, f.ID, opts)
}

// ParseText parses text that already is bare doc-comment XML (no "///"
// prefixes). offset is the absolute position of its first byte.
func ParseText(text string, offset uint32, file source.FileID, opts Options) *ast.DocComment {
	return parseXML([]byte(text), offset, file, opts)
}

// docPrefixEnd returns the index just past "///" when line is a doc comment
// line, or -1. "////" is an ordinary comment.
func docPrefixEnd(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r') {
		i++
	}
	if !bytes.HasPrefix(line[i:], []byte("///")) {
		return -1
	}
	if i+3 < len(line) && line[i+3] == '/' {
		return -1
	}
	return i + 3
}

// maskPrefixes копирует блок и заменяет отступ и "///" каждой строки пробелами.
func maskPrefixes(block []byte) []byte {
	out := bytes.Clone(block)
	for lineStart := 0; lineStart < len(out); {
		lineEnd := bytes.IndexByte(out[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(out)
		} else {
			lineEnd += lineStart
		}
		if n := docPrefixEnd(out[lineStart:lineEnd]); n > 0 {
			for i := lineStart; i < lineStart+n; i++ {
				out[i] = ' '
			}
		}
		lineStart = lineEnd + 1
	}
	return out
}

func off32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
