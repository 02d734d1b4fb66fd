package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"xdoc/internal/source"
	"xdoc/internal/token"
)

type TokenOutput struct {
	Kind     string      `json:"kind"`
	Class    string      `json:"class"`
	Keyword  string      `json:"keyword,omitempty"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Missing  bool        `json:"missing,omitempty"`
	Leading  []string    `json:"leading,omitempty"`
	Trailing []string    `json:"trailing,omitempty"`
}

// tokenClass groups a token for display. Contextual keywords (var, value, ...)
// lex as plain identifiers but are marked separately.
func tokenClass(tok token.Token) string {
	switch {
	case tok.Kind == token.KwIdent:
		return "keyword"
	case tok.Kind == token.Ident && !tok.IsVerbatim() && token.IsContextualKeyword(tok.Text):
		return "contextual"
	case tok.IsIdent():
		return "identifier"
	case tok.IsPunct():
		return "punctuation"
	case tok.Kind == token.Number:
		return "number"
	case tok.Kind == token.EOF:
		return "eof"
	}
	return strings.ToLower(tok.Kind.String())
}

func triviaKinds(trivia []token.Trivia) []string {
	var out []string
	for _, tr := range trivia {
		out = append(out, tr.Kind.String())
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		kind := tok.Kind.String()
		if tok.Kind == token.KwIdent {
			kind += "(" + tok.Keyword.String() + ")"
		}
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, kind); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Missing {
			fmt.Fprint(w, " <missing>")
		}
		if tokenClass(tok) == "contextual" {
			fmt.Fprint(w, " (contextual)")
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if leading := triviaKinds(tok.Leading); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		if trailing := triviaKinds(tok.Trailing); len(trailing) > 0 {
			fmt.Fprintf(w, " (trailing: %s)", strings.Join(trailing, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:     tok.Kind.String(),
			Class:    tokenClass(tok),
			Text:     tok.Text,
			Span:     tok.Span,
			Missing:  tok.Missing,
			Leading:  triviaKinds(tok.Leading),
			Trailing: triviaKinds(tok.Trailing),
		}
		if tok.Kind == token.KwIdent {
			out.Keyword = tok.Keyword.String()
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
