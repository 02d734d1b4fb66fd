package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"xdoc/internal/ast"
	"xdoc/internal/source"
	"xdoc/internal/token"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func buildTreeNode(n ast.Node, fs *source.FileSet) *treeNode {
	switch n := n.(type) {
	case *ast.DocComment:
		node := &treeNode{label: fmt.Sprintf("DocComment (span: %s)", formatSpan(n.Span, fs))}
		for _, e := range n.Elements {
			node.children = append(node.children, buildTreeNode(e, fs))
		}
		node.children = append(node.children, diagNodes(n, fs)...)
		return node

	case *ast.Element:
		label := fmt.Sprintf("XmlElement <%s> (span: %s)", n.Name, formatSpan(n.Span, fs))
		if n.SelfClosing {
			label = fmt.Sprintf("XmlElement <%s/> (span: %s)", n.Name, formatSpan(n.Span, fs))
		}
		node := &treeNode{label: label}
		for _, a := range n.Attributes {
			node.children = append(node.children, buildTreeNode(a, fs))
		}
		for _, c := range n.Children {
			node.children = append(node.children, buildTreeNode(c, fs))
		}
		node.children = append(node.children, diagNodes(n, fs)...)
		return node

	case *ast.NameAttribute:
		node := &treeNode{label: fmt.Sprintf("XmlNameAttribute %s (span: %s)", n.Name(), formatSpan(n.FullSpan(), fs))}
		node.children = append(node.children, buildTreeNode(n.Identifier, fs))
		node.children = append(node.children, diagNodes(n, fs)...)
		return node

	case *ast.TextAttribute:
		node := &treeNode{label: fmt.Sprintf("XmlTextAttribute %s = %q (span: %s)", n.Name(), n.Value, formatSpan(n.FullSpan(), fs))}
		node.children = diagNodes(n, fs)
		return node

	case *ast.IdentifierName:
		node := &treeNode{label: fmt.Sprintf("IdentifierName (span: %s, full: %s)", formatSpan(n.Span(), fs), formatSpan(n.FullSpan(), fs))}
		node.children = append(node.children, &treeNode{label: tokenLabel(n.Token)})
		for _, tr := range n.Skipped() {
			node.children = append(node.children, &treeNode{label: fmt.Sprintf("Skipped %q", tr.Text)})
		}
		node.children = append(node.children, diagNodes(n, fs)...)
		return node
	}
	return &treeNode{label: "<nil>"}
}

func tokenLabel(tok token.Token) string {
	if tok.Missing {
		return fmt.Sprintf("%s <missing>", tok.Kind)
	}
	if tok.Kind == token.KwIdent {
		return fmt.Sprintf("%s(%s) %q", tok.Kind, tok.Keyword, tok.Text)
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}

func diagNodes(n ast.Node, fs *source.FileSet) []*treeNode {
	var out []*treeNode
	for _, d := range n.Diagnostics() {
		out = append(out, &treeNode{label: fmt.Sprintf("%s %s: %s (span: %s)", d.Severity, d.Code.ID(), d.Message, formatSpan(d.Primary, fs))})
	}
	return out
}

func writeTree(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label)
		writeTree(w, child, prefix+next)
	}
}

// FormatNodePretty prints the tree rooted at n with box-drawing branches.
// fs may be nil, in which case spans are printed as byte offsets.
func FormatNodePretty(w io.Writer, n ast.Node, fs *source.FileSet) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	root := buildTreeNode(n, fs)
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	writeTree(w, root, "")
	return nil
}

type NodeOutput struct {
	Type        string       `json:"type"`
	Span        source.Span  `json:"span"`
	Name        string       `json:"name,omitempty"`
	Text        string       `json:"text,omitempty"`
	Value       string       `json:"value,omitempty"`
	Missing     bool         `json:"missing,omitempty"`
	Token       *TokenOutput `json:"token,omitempty"`
	Skipped     []string     `json:"skipped,omitempty"`
	Diagnostics []string     `json:"diagnostics,omitempty"`
	Children    []NodeOutput `json:"children,omitempty"`
}

// BuildNodeOutput converts a tree into its JSON form.
func BuildNodeOutput(n ast.Node) NodeOutput {
	out := NodeOutput{Type: n.Kind().String(), Span: n.FullSpan()}
	for _, d := range n.Diagnostics() {
		out.Diagnostics = append(out.Diagnostics, d.Code.ID()+": "+d.Message)
	}
	switch n := n.(type) {
	case *ast.DocComment:
		for _, e := range n.Elements {
			out.Children = append(out.Children, BuildNodeOutput(e))
		}
	case *ast.Element:
		out.Name = n.Name
		for _, a := range n.Attributes {
			out.Children = append(out.Children, BuildNodeOutput(a))
		}
		for _, c := range n.Children {
			out.Children = append(out.Children, BuildNodeOutput(c))
		}
	case *ast.NameAttribute:
		out.Name = n.Name()
		out.Children = []NodeOutput{BuildNodeOutput(n.Identifier)}
	case *ast.TextAttribute:
		out.Name = n.Name()
		out.Value = n.Value
	case *ast.IdentifierName:
		out.Text = n.Text()
		out.Missing = n.IsMissing()
		tok := TokenOutput{Kind: n.Token.Kind.String(), Class: tokenClass(n.Token), Text: n.Token.Text, Span: n.Token.Span, Missing: n.Token.Missing}
		if n.Token.Kind == token.KwIdent {
			tok.Keyword = n.Token.Keyword.String()
		}
		out.Token = &tok
		for _, tr := range n.Skipped() {
			out.Skipped = append(out.Skipped, tr.Text)
		}
	}
	return out
}

// FormatNodeJSON writes the tree rooted at n as indented JSON.
func FormatNodeJSON(w io.Writer, n ast.Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildNodeOutput(n))
}
