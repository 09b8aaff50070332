package htmlxpath

import "github.com/google/uuid"

// AttributeValue is either Exists (boolean-present) or Literal(string),
// per spec §3.
type AttributeValue struct {
	Literal string
	Exists  bool // true when the attribute has no literal value
}

// Attribute is a shared name handle plus a value.
type Attribute struct {
	Name  Handle
	Value AttributeValue
}

// Node is a tree node: a shared tag handle, an ordered list of
// attributes, a lazy text handle spanning this node and all its
// descendants in document order, and an ordered list of children.
type Node struct {
	Tag         Handle
	Attributes  []Attribute
	TextContent LazyStr
	Children    []*Node
}

func newNode(tag Handle) *Node {
	return &Node{Tag: tag}
}

// Query returns a lazy Filter streaming the matches of xpath rooted at
// this node (spec §6).
func (n *Node) Query(xp *XPath) *Filter {
	return newFilterAt(xp, n)
}

// Document is a root node plus a shared reference to its text arena. It is
// only ever handed back once the arena has been finalized.
type Document struct {
	Arena *LazyBase
	Root  *Node
	// ID correlates this document's parse/log lines; stamped by
	// BuildDocument after the sink's end(), never consulted by parse
	// semantics.
	ID uuid.UUID
}

// Query returns a lazy Filter streaming the matches of xpath over the
// whole document. The document's root is seeded behind a tagless virtual
// node rather than directly, so that a leading child-axis step (e.g.
// "/html/...") can match the root element's own tag — a plain Child axis
// iterator otherwise exposes only a node's children, never the node
// itself (spec §8 scenario 4: "/a/b/c" must find the same node as
// "//c" when "a" is the document root).
func (d *Document) Query(xp *XPath) *Filter {
	virtualParent := &Node{Children: []*Node{d.Root}}
	return newFilterAt(xp, virtualParent)
}
