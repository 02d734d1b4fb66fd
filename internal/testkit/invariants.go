// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"xdoc/internal/ast"
	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

// CheckIdentifierInvariants checks a node returned for an attribute value
// text that started at offset:
// 1) the node wraps exactly one token, present identifier or missing Ident
// 2) a missing token is zero-width with exactly one SynMissingIdentifier
// 3) a present token carries no diagnostics
// 4) the full span is exactly [offset, offset+len(text)]
// 5) trivia and the token tile the full span without gaps or overlaps
func CheckIdentifierInvariants(n *ast.IdentifierName, text string, offset uint32) error {
	if n == nil {
		return fmt.Errorf("nil identifier name")
	}
	tok := n.Token
	if tok.Missing {
		if tok.Kind != token.Ident || !tok.Span.Empty() || tok.Text != "" {
			return fmt.Errorf("malformed missing token: %+v", tok)
		}
		if len(tok.Diags) != 1 || tok.Diags[0].Code != diag.SynMissingIdentifier {
			return fmt.Errorf("missing token must carry one SynMissingIdentifier, got %+v", tok.Diags)
		}
	} else {
		if !tok.IsIdent() {
			return fmt.Errorf("present token has kind %v", tok.Kind)
		}
		if len(tok.Diags) != 0 {
			return fmt.Errorf("present token has diagnostics: %+v", tok.Diags)
		}
	}

	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return fmt.Errorf("text length overflow: %w", err)
	}
	want := source.Span{File: tok.Span.File, Start: offset, End: offset + textLen}
	if got := n.FullSpan(); got != want {
		return fmt.Errorf("full span %v, want %v", got, want)
	}

	pos := offset
	step := func(what string, sp source.Span) error {
		if sp.Start != pos {
			return fmt.Errorf("%s at %v, expected start %d", what, sp, pos)
		}
		pos = sp.End
		return nil
	}
	for _, tr := range tok.Leading {
		if err := step("leading "+tr.Kind.String(), tr.Span); err != nil {
			return err
		}
	}
	if err := step("token", tok.Span); err != nil {
		return err
	}
	for _, tr := range tok.Trailing {
		if err := step("trailing "+tr.Kind.String(), tr.Span); err != nil {
			return err
		}
		if uint32(len(tr.Text)) != tr.Span.Len() {
			return fmt.Errorf("trivia text %q does not match span %v", tr.Text, tr.Span)
		}
	}
	if pos != want.End {
		return fmt.Errorf("trivia ends at %d, want %d", pos, want.End)
	}
	return nil
}

// CheckDocInvariants checks a parsed doc comment against its file:
// 1) every node span lies inside the doc span, which lies inside the file
// 2) every missing token carries exactly one diagnostic
// 3) name attribute identifiers satisfy CheckIdentifierInvariants
func CheckDocInvariants(doc *ast.DocComment, sf *source.File) error {
	if doc == nil || sf == nil {
		return fmt.Errorf("nil doc or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if doc.Span.File != sf.ID || doc.Span.End > lenContent || doc.Span.Start > doc.Span.End {
		return fmt.Errorf("doc span %v outside file %d (len %d)", doc.Span, sf.ID, lenContent)
	}

	var firstErr error
	ast.Inspect(doc, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		sp := n.FullSpan()
		if sp.File != doc.Span.File || sp.Start < doc.Span.Start || sp.End > doc.Span.End {
			firstErr = fmt.Errorf("%v span %v outside doc span %v", n.Kind(), sp, doc.Span)
			return false
		}
		switch a := n.(type) {
		case *ast.NameAttribute:
			firstErr = checkMissing(a.NameTok, a.Equals, a.StartQuote, a.EndQuote)
			if firstErr == nil {
				value := sf.Slice(a.Identifier.FullSpan())
				firstErr = CheckIdentifierInvariants(a.Identifier, string(value), a.Identifier.FullSpan().Start)
			}
		case *ast.TextAttribute:
			firstErr = checkMissing(a.NameTok, a.Equals, a.StartQuote, a.EndQuote)
		}
		return firstErr == nil
	})
	return firstErr
}

func checkMissing(toks ...token.Token) error {
	for _, t := range toks {
		if t.Missing && len(t.Diags) != 1 {
			return fmt.Errorf("missing %v token carries %d diagnostics", t.Kind, len(t.Diags))
		}
		if t.Missing && !t.Span.Empty() {
			return fmt.Errorf("missing %v token is not zero-width: %v", t.Kind, t.Span)
		}
	}
	return nil
}
