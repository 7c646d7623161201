package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeclareNamespace_ChainsSiblings(t *testing.T) {
	mem := NewMemory()
	doc := NewDocument(mem)
	el := doc.NewElement("root")

	first := doc.DeclareNamespace(el, "a", "http://a.example")
	second := doc.DeclareNamespace(el, "b", "http://b.example")

	require.Same(t, first, el.NsDefs)
	next, ok := first.Next.(*Ns)
	require.True(t, ok)
	require.Same(t, second, next)
	require.Nil(t, second.Next)
}

func TestDupNs_PointsNextAtHolder(t *testing.T) {
	mem := NewMemory()
	doc := NewDocument(mem)
	el := doc.NewElement("root")
	ns := doc.DeclareNamespace(el, "ns", "http://example.com")

	dup := DupNs(el, ns)

	require.Equal(t, NamespaceDecl, dup.Kind)
	require.Same(t, el, dup.Next)
	require.NotEqual(t, NamespaceDecl, dup.Next.NodeKind())

	// The copy has its own string cells with the same content.
	require.NotSame(t, ns.Prefix, dup.Prefix)
	require.NotSame(t, ns.Href, dup.Href)
	require.Equal(t, "ns", dup.Prefix.String())
	require.Equal(t, "http://example.com", dup.Href.String())
}

func TestInScopeNamespaces_WalksParents(t *testing.T) {
	mem := NewMemory()
	doc := NewDocument(mem)
	root := doc.NewElement("root")
	doc.SetRoot(root)
	child := doc.NewElement("child")
	AppendChild(root, child)

	outer := doc.DeclareNamespace(root, "a", "http://outer.example")
	inner := doc.DeclareNamespace(child, "b", "http://inner.example")

	scope := InScopeNamespaces(child)
	require.ElementsMatch(t, []*Ns{inner, outer}, scope)
}

func TestInScopeNamespaces_InnerShadowsOuter(t *testing.T) {
	mem := NewMemory()
	doc := NewDocument(mem)
	root := doc.NewElement("root")
	doc.SetRoot(root)
	child := doc.NewElement("child")
	AppendChild(root, child)

	doc.DeclareNamespace(root, "a", "http://outer.example")
	inner := doc.DeclareNamespace(child, "a", "http://inner.example")

	scope := InScopeNamespaces(child)
	require.Len(t, scope, 1)
	require.Same(t, inner, scope[0])
}

func TestNamespaceSet_DuplicatesEveryMember(t *testing.T) {
	mem := NewMemory()
	doc := NewDocument(mem)
	root := doc.NewElement("root")
	doc.SetRoot(root)
	genuine := doc.DeclareNamespace(root, "ns", "http://example.com")

	set := NamespaceSet(root)
	require.Len(t, set, 1)
	require.NotSame(t, genuine, set[0])
	require.Same(t, root, set[0].Next)
}
