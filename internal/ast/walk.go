package ast

// Inspect walks the tree rooted at n in depth-first order, calling fn for
// every node. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *DocComment:
		for _, e := range n.Elements {
			Inspect(e, fn)
		}
	case *Element:
		for _, a := range n.Attributes {
			Inspect(a, fn)
		}
		for _, c := range n.Children {
			Inspect(c, fn)
		}
	case *NameAttribute:
		if n.Identifier != nil {
			Inspect(n.Identifier, fn)
		}
	}
}

// NameAttributes returns every name attribute below n in document order.
func NameAttributes(n Node) []*NameAttribute {
	var out []*NameAttribute
	Inspect(n, func(x Node) bool {
		if a, ok := x.(*NameAttribute); ok {
			out = append(out, a)
		}
		return true
	})
	return out
}
