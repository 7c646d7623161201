package tree

// NodeKind identifies the kind of a tree object. Namespace declarations are a
// kind of their own: they hang off elements through a separate chain and have
// a different struct shape than regular nodes.
type NodeKind int

const (
	ElementNode NodeKind = iota + 1
	TextNode
	CommentNode
	DocumentNode
	HTMLDocumentNode
	FragmentNode
	NamespaceDecl
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case HTMLDocumentNode:
		return "html-document"
	case FragmentNode:
		return "fragment"
	case NamespaceDecl:
		return "namespace"
	default:
		return "unknown"
	}
}

// Linked is anything a namespace declaration's next link can point at. In a
// well-formed declaration chain the successor is another *Ns; the query
// engine's duplicate namespaces reuse the link to point back at the holder
// element instead.
type Linked interface {
	NodeKind() NodeKind
}

// Attr is a plain element attribute. Attribute storage is not part of the
// ownership boundary this library manages, so attributes are ordinary values.
type Attr struct {
	Name  string
	Value string
}

// Node is a regular tree node (element, text, comment). Names are interned by
// the parser, so only the node struct itself is an owned allocation.
type Node struct {
	Kind    NodeKind
	Name    string
	Content string

	Doc         *Doc
	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node

	Attrs []Attr

	// NsDefs heads the chain of namespace declarations made on this
	// element.
	NsDefs *Ns

	// Private is reserved for the layer wrapping this tree; the engine
	// never reads it.
	Private any
}

// NodeKind returns the node's kind.
func (n *Node) NodeKind() NodeKind {
	return n.Kind
}

// Doc is a document (or document fragment). Fragments do not own memory:
// everything below a fragment belongs to its owning document.
type Doc struct {
	Kind  NodeKind // DocumentNode, HTMLDocumentNode, or FragmentNode
	Owner *Doc     // owning document, set only for fragments
	Root  *Node
	Mem   *Memory

	Private any
}

// NodeKind returns the document's kind tag.
func (d *Doc) NodeKind() NodeKind {
	return d.Kind
}

// NewDocument allocates an empty XML document in mem.
func NewDocument(mem *Memory) *Doc {
	d := &Doc{Kind: DocumentNode, Mem: mem}
	mem.track(d)
	return d
}

// NewHTMLDocument allocates an empty HTML-flavored document in mem.
func NewHTMLDocument(mem *Memory) *Doc {
	d := &Doc{Kind: HTMLDocumentNode, Mem: mem}
	mem.track(d)
	return d
}

// NewFragment allocates a document fragment whose contents belong to owner.
func NewFragment(owner *Doc) *Doc {
	d := &Doc{Kind: FragmentNode, Owner: owner, Mem: owner.Mem}
	owner.Mem.track(d)
	return d
}

// NewElement allocates an element owned by this document.
func (d *Doc) NewElement(name string) *Node {
	n := &Node{Kind: ElementNode, Name: name, Doc: d}
	d.Mem.track(n)
	return n
}

// NewText allocates a text node owned by this document.
func (d *Doc) NewText(content string) *Node {
	n := &Node{Kind: TextNode, Name: "#text", Content: content, Doc: d}
	d.Mem.track(n)
	return n
}

// NewComment allocates a comment node owned by this document.
func (d *Doc) NewComment(content string) *Node {
	n := &Node{Kind: CommentNode, Name: "#comment", Content: content, Doc: d}
	d.Mem.track(n)
	return n
}

// SetRoot installs the document's root element.
func (d *Doc) SetRoot(n *Node) {
	d.Root = n
	n.Parent = nil
}

// AppendChild links child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.PrevSibling = parent.LastChild
	child.NextSibling = nil
	if parent.LastChild != nil {
		parent.LastChild.NextSibling = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// FreeDoc releases a document and everything it owns: the node structs, each
// element's declaration chain with its prefix and href cells, and the
// document struct itself. Duplicate namespaces synthesized for result sets
// are never reachable from the tree, so they are untouched here; their owner
// frees them separately.
func (m *Memory) FreeDoc(d *Doc) {
	if d.Root != nil {
		m.freeSubtree(d.Root)
	}
	m.Free(d)
}

func (m *Memory) freeSubtree(n *Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		m.freeSubtree(c)
		c = next
	}
	for ns := n.NsDefs; ns != nil; {
		next, _ := ns.Next.(*Ns)
		m.FreeNs(ns)
		ns = next
	}
	m.Free(n)
}
