// Package html builds native tree documents from markup, using
// golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rgrove/nokogiri/tree"
)

// Parse parses markup from a string into an HTML-flavored document allocated
// in mem.
func Parse(content string, mem *tree.Memory) (*tree.Doc, error) {
	return ParseReader(strings.NewReader(content), mem)
}

// ParseReader parses markup from r into an HTML-flavored document allocated
// in mem. Declarations written as xmlns / xmlns:foo attributes become
// namespace declaration chains on their elements; the attributes themselves
// are not kept.
func ParseReader(r io.Reader, mem *tree.Memory) (*tree.Doc, error) {
	netNode, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := tree.NewHTMLDocument(mem)
	for c := netNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			doc.SetRoot(convertElement(doc, c))
			break
		}
	}
	return doc, nil
}

// ParseFragment parses a fragment of markup in the context of owner,
// returning a fragment document whose contents belong to owner.
func ParseFragment(content string, owner *tree.Doc) (*tree.Doc, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}
	frag := tree.NewFragment(owner)
	root := owner.NewElement("#fragment-root")
	frag.Root = root
	for _, n := range nodes {
		child := convert(owner, n)
		if child != nil {
			tree.AppendChild(root, child)
		}
	}
	return frag, nil
}

func convert(doc *tree.Doc, n *html.Node) *tree.Node {
	switch n.Type {
	case html.ElementNode:
		return convertElement(doc, n)
	case html.TextNode:
		return doc.NewText(n.Data)
	case html.CommentNode:
		return doc.NewComment(n.Data)
	default:
		return nil
	}
}

func convertElement(doc *tree.Doc, n *html.Node) *tree.Node {
	el := doc.NewElement(n.Data)
	for _, a := range n.Attr {
		switch {
		case a.Key == "xmlns":
			doc.DeclareNamespace(el, "", a.Val)
		case strings.HasPrefix(a.Key, "xmlns:"):
			doc.DeclareNamespace(el, strings.TrimPrefix(a.Key, "xmlns:"), a.Val)
		default:
			el.Attrs = append(el.Attrs, tree.Attr{Name: a.Key, Value: a.Val})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child := convert(doc, c)
		if child != nil {
			tree.AppendChild(el, child)
		}
	}
	return el
}
