package tree

// Ns is a namespace declaration. Its layout diverges from Node on purpose:
// declarations are chained per element through Next, carry owned string cells
// for prefix and href, and hold their own Private slot for the wrapping
// layer. A nil Prefix is the default namespace.
//
// Next is *Ns in every genuine declaration chain. DupNs reuses the field to
// point a duplicate back at its holder element, which is how downstream code
// can tell the two populations apart.
type Ns struct {
	Kind   NodeKind
	Next   Linked
	Prefix *Str
	Href   *Str

	Private any
}

// NodeKind returns NamespaceDecl.
func (ns *Ns) NodeKind() NodeKind {
	return ns.Kind
}

// DeclareNamespace allocates a declaration on elem, appending it to the
// element's chain. prefix may be empty for the default namespace.
func (d *Doc) DeclareNamespace(elem *Node, prefix, href string) *Ns {
	ns := &Ns{Kind: NamespaceDecl}
	if prefix != "" {
		ns.Prefix = d.Mem.NewStr(prefix)
	}
	ns.Href = d.Mem.NewStr(href)
	d.Mem.track(ns)

	if elem.NsDefs == nil {
		elem.NsDefs = ns
		return ns
	}
	last := elem.NsDefs
	for {
		next, ok := last.Next.(*Ns)
		if !ok || next == nil {
			break
		}
		last = next
	}
	last.Next = ns
	return ns
}

// FreeNs releases one declaration: the href cell, the prefix cell, then the
// struct. Callers must own the declaration; document-owned declarations are
// released only through FreeDoc.
func (m *Memory) FreeNs(ns *Ns) {
	if ns.Href != nil {
		m.Free(ns.Href)
	}
	if ns.Prefix != nil {
		m.Free(ns.Prefix)
	}
	m.Free(ns)
}

// DupNs synthesizes the copy of ns that the query engine hands out in result
// sets. The copy gets its own string cells, so it has its own memory
// lifecycle, and its Next link is pointed at the holder element rather than
// at a sibling declaration. The caller owns the copy.
func DupNs(holder *Node, ns *Ns) *Ns {
	mem := holder.Doc.Mem
	dup := &Ns{Kind: NamespaceDecl, Next: holder}
	if ns.Prefix != nil {
		dup.Prefix = mem.NewStr(ns.Prefix.String())
	}
	if ns.Href != nil {
		dup.Href = mem.NewStr(ns.Href.String())
	}
	mem.track(dup)
	return dup
}

// InScopeNamespaces collects the declarations visible from n, walking the
// parent chain. Inner declarations shadow outer ones with the same prefix.
// The returned pointers are the document's own declaration structs.
func InScopeNamespaces(n *Node) []*Ns {
	var out []*Ns
	seen := make(map[string]bool)
	for e := n; e != nil; e = e.Parent {
		if e.Kind != ElementNode {
			continue
		}
		for ns := e.NsDefs; ns != nil; {
			prefix := ""
			if ns.Prefix != nil {
				prefix = ns.Prefix.String()
			}
			if !seen[prefix] {
				seen[prefix] = true
				out = append(out, ns)
			}
			next, _ := ns.Next.(*Ns)
			ns = next
		}
	}
	return out
}

// NamespaceSet models the query engine's namespace-axis result set for n:
// every in-scope declaration, duplicated. The engine disclaims ownership of
// the copies; whoever consumes the set must free them.
func NamespaceSet(n *Node) []*Ns {
	scope := InScopeNamespaces(n)
	out := make([]*Ns, 0, len(scope))
	for _, ns := range scope {
		out = append(out, DupNs(n, ns))
	}
	return out
}
