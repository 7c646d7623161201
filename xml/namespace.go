package xml

import (
	"runtime"
	"weak"

	"github.com/rgrove/nokogiri/tree"
)

// Namespace is the managed wrapper for a native namespace declaration. It
// holds no data of its own; Prefix and Href read through to the native
// struct.
//
// A wrapper is either document-owned (pinned in its document wrapper's cache,
// no finalizer) or ephemeral (a query-result copy, finalized when
// unreachable). The class is decided once, when the wrapper is first
// constructed, and never changes.
type Namespace struct {
	ns  *tree.Ns
	mem *tree.Memory

	// doc is the owning document's wrapper, when one could be resolved at
	// construction time.
	doc *Document

	ephemeral bool
}

// partOfResultSet classifies a native namespace struct. Genuine declarations
// on an element chain to the next declaration or to nothing; the copies the
// query engine puts in result sets reuse the next link to point at a
// non-namespace node. A non-namespace successor is the only signal available
// that the struct is query-manufactured.
func partOfResultSet(ns *tree.Ns) bool {
	return ns.Next != nil && ns.Next.NodeKind() != tree.NamespaceDecl
}

// WrapNamespace returns the managed wrapper for ns, creating it on first
// use. doc must be a document, an HTML document, or a fragment whose owner is
// resolvable; ns must be non-nil. Wrapping is idempotent: the native struct
// caches a weak reference to its wrapper, so repeated wraps of the same
// pointer return the same object.
func WrapNamespace(doc *tree.Doc, ns *tree.Ns) *Namespace {
	if ns == nil {
		panic("xml: WrapNamespace called with nil namespace")
	}
	switch doc.Kind {
	case tree.DocumentNode, tree.HTMLDocumentNode:
	case tree.FragmentNode:
		if doc.Owner == nil {
			panic("xml: WrapNamespace called with unowned fragment")
		}
	default:
		panic("xml: WrapNamespace called with non-document " + doc.Kind.String())
	}

	if w := cachedNamespace(ns); w != nil {
		return w
	}

	if doc.Kind == tree.FragmentNode {
		doc = doc.Owner
	}

	var w *Namespace
	if docWrapper := cachedDocument(doc); docWrapper != nil {
		if partOfResultSet(ns) {
			// A duplicate returned as part of a query result set:
			// this wrapper has to manage the struct's memory
			// itself.
			w = &Namespace{ns: ns, mem: doc.Mem, doc: docWrapper, ephemeral: true}
			runtime.SetFinalizer(w, func(w *Namespace) { w.release() })
		} else {
			w = &Namespace{ns: ns, mem: doc.Mem, doc: docWrapper}
			docWrapper.nodeCache = append(docWrapper.nodeCache, w)
		}
	} else {
		// The document has no wrapper yet (it may itself be mid
		// construction). Nothing pins this wrapper and nothing
		// finalizes it; the document owner frees the struct.
		w = &Namespace{ns: ns, mem: doc.Mem}
	}

	ns.Private = weak.Make(w)
	return w
}

func cachedNamespace(ns *tree.Ns) *Namespace {
	if p, ok := ns.Private.(weak.Pointer[Namespace]); ok {
		return p.Value()
	}
	return nil
}

// release frees the allocations an ephemeral wrapper owns: the href cell, the
// prefix cell, then the struct. It runs at most once, from the collector.
func (w *Namespace) release() {
	w.mem.FreeNs(w.ns)
}

// Prefix returns the declaration's prefix. The second return is false for the
// default namespace, which has no prefix at all.
func (w *Namespace) Prefix() (string, bool) {
	if w.ns.Prefix == nil {
		return "", false
	}
	return w.ns.Prefix.String(), true
}

// Href returns the declaration's URI. The second return is false when the
// native field is unset.
func (w *Namespace) Href() (string, bool) {
	if w.ns.Href == nil {
		return "", false
	}
	return w.ns.Href.String(), true
}

// Document returns the owning document's wrapper, or nil when none was
// resolvable at wrap time.
func (w *Namespace) Document() *Document {
	return w.doc
}

// Native returns the underlying native struct.
func (w *Namespace) Native() *tree.Ns {
	return w.ns
}
