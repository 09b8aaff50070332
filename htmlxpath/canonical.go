package htmlxpath

import "strings"

// Canonical serializes n and its subtree back into HTML-like markup: a
// deterministic re-rendering used to check that tag/attribute structure
// round-trips through a parse (spec §8's "Round-trips"). It deliberately
// ignores text content — the arena's lazy spans are not addressed by this
// serializer, only the tree shape and attributes are.
//
// Adapted from the teacher's canonical (c14n) serializer in
// _examples/arturoeanton-go-xml/c14n.go, trimmed to this domain's simpler
// attribute model (no namespaces, no text/CDATA nodes to canonicalize).
func Canonical(n *Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

func writeCanonical(b *strings.Builder, n *Node) {
	name := n.Tag.String()
	b.WriteByte('<')
	b.WriteString(name)
	for _, attr := range n.Attributes {
		b.WriteByte(' ')
		b.WriteString(attr.Name.String())
		if !attr.Value.Exists {
			b.WriteString(`="`)
			b.WriteString(attr.Value.Literal)
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	for _, child := range n.Children {
		writeCanonical(b, child)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}
