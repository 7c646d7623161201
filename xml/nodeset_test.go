package xml

import "testing"

func TestNamespaceSet_MembersAreEphemeral(t *testing.T) {
	_, doc, root, genuine := newTestDocument(t)
	docWrapper := Wrap(doc)

	set := docWrapper.NamespaceSet(root)
	if set.Length() != 1 {
		t.Fatalf("set length = %d, want 1", set.Length())
	}

	member := set.Get(0)
	if !member.ephemeral {
		t.Error("result-set member not classified as ephemeral")
	}
	if member.Native() == genuine {
		t.Error("result set handed out the document's own struct instead of a copy")
	}
	if prefix, ok := member.Prefix(); !ok || prefix != "ns" {
		t.Errorf("Prefix() = %q, %v; want %q, true", prefix, ok, "ns")
	}
	if len(docWrapper.nodeCache) != 0 {
		t.Error("result-set members leaked into the document cache")
	}
}

func TestNamespaceSet_GetOutOfRange(t *testing.T) {
	_, doc, root, _ := newTestDocument(t)
	set := Wrap(doc).NamespaceSet(root)

	if set.Get(-1) != nil || set.Get(set.Length()) != nil {
		t.Error("out-of-range Get did not return nil")
	}
}

func TestInScopeNamespaces_AreDocumentOwned(t *testing.T) {
	_, doc, root, genuine := newTestDocument(t)
	docWrapper := Wrap(doc)

	wrapped := docWrapper.InScopeNamespaces(root)
	if len(wrapped) != 1 {
		t.Fatalf("got %d namespaces, want 1", len(wrapped))
	}
	if wrapped[0].Native() != genuine {
		t.Error("in-scope wrap did not use the document's own struct")
	}
	if wrapped[0].ephemeral {
		t.Error("document's own declaration classified as ephemeral")
	}
}

func TestNamespaceSet_WrapIsStableAcrossSets(t *testing.T) {
	_, doc, root, _ := newTestDocument(t)
	docWrapper := Wrap(doc)

	// Two queries produce two distinct duplicates, so two distinct
	// wrappers; but wrapping one duplicate twice stays stable.
	first := docWrapper.NamespaceSet(root).Get(0)
	second := docWrapper.NamespaceSet(root).Get(0)
	if first == second {
		t.Error("distinct duplicates produced the same wrapper")
	}
	if again := WrapNamespace(doc, first.Native()); again != first {
		t.Error("re-wrapping a duplicate returned a different wrapper")
	}
}
