// Package xml bridges the native document tree into managed wrapper objects.
//
// The lifecycle of a Namespace is more complicated than other tree objects,
// for two reasons:
//
//  1. namespace declarations hang off elements through their own chain and
//     have a different struct shape than regular nodes, so they get their own
//     wrapping path instead of the generic one;
//  2. namespace structs handed out in a query result set are copies of the
//     document's declarations, and so do not share the memory lifecycle of
//     everything else in the document.
//
// As a result of 2, a freshly wrapped namespace is classified as either
// document-owned (pinned in the document wrapper's cache, freed only at
// document teardown) or ephemeral (given a finalizer that frees its copy when
// the wrapper becomes unreachable). Getting this wrong in either direction is
// a double free or a leak, which is why the native side tracks every
// allocation.
package xml

import (
	"fmt"
	"weak"

	"github.com/rgrove/nokogiri/tree"
)

// Document is the managed wrapper for a native document. It owns the native
// tree: Close releases every allocation the document holds, including all
// document-owned namespace declarations.
//
// The nodeCache pins the wrapper of every document-owned namespace so the
// collector cannot reclaim one while the native struct still points at it.
// Entries are never removed individually; the whole cache drops at Close.
type Document struct {
	doc    *tree.Doc
	mem    *tree.Memory
	closed bool

	nodeCache []*Namespace
}

// Wrap returns the managed wrapper for d, creating it on first use. Repeated
// calls with the same native document return the same wrapper.
func Wrap(d *tree.Doc) *Document {
	if d == nil {
		panic("xml: Wrap called with nil document")
	}
	if w := cachedDocument(d); w != nil {
		return w
	}
	w := &Document{doc: d, mem: d.Mem}
	d.Private = weak.Make(w)
	return w
}

func cachedDocument(d *tree.Doc) *Document {
	if p, ok := d.Private.(weak.Pointer[Document]); ok {
		return p.Value()
	}
	return nil
}

// Native returns the underlying native document.
func (d *Document) Native() *tree.Doc {
	return d.doc
}

// Root returns the document's root element, or nil.
func (d *Document) Root() *tree.Node {
	return d.doc.Root
}

// Close tears the document down: the namespace wrapper cache is dropped and
// the native tree is freed in one pass. Namespace wrappers obtained from this
// document must not be used afterwards. Close is not idempotent-safe against
// concurrent use; calling it twice is an error.
func (d *Document) Close() error {
	if d.closed {
		return fmt.Errorf("xml: document already closed")
	}
	d.closed = true
	d.nodeCache = nil
	d.mem.FreeDoc(d.doc)
	return nil
}

// Closed reports whether Close has been called.
func (d *Document) Closed() bool {
	return d.closed
}

// InScopeNamespaces wraps the declarations visible from n. These are the
// document's own structs, so every wrapper comes back document-owned.
func (d *Document) InScopeNamespaces(n *tree.Node) []*Namespace {
	raw := tree.InScopeNamespaces(n)
	out := make([]*Namespace, 0, len(raw))
	for _, ns := range raw {
		out = append(out, WrapNamespace(d.doc, ns))
	}
	return out
}

// NamespaceSet runs the engine's namespace axis for n and wraps the result.
// The engine hands back duplicated structs it disclaims ownership of, so
// every member wrapper carries the finalizer that frees its copy.
func (d *Document) NamespaceSet(n *tree.Node) *NodeSet {
	raw := tree.NamespaceSet(n)
	set := &NodeSet{doc: d, members: make([]*Namespace, 0, len(raw))}
	for _, ns := range raw {
		set.members = append(set.members, WrapNamespace(d.doc, ns))
	}
	return set
}
