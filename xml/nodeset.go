package xml

// NodeSet is the managed wrapper for a query result set. Namespace members
// are wrapped through WrapNamespace at construction, which hands each
// duplicate struct to exactly one finalizing wrapper; the set itself
// therefore never frees namespace memory, and dropping the set releases
// nothing until the member wrappers themselves become unreachable.
type NodeSet struct {
	doc     *Document
	members []*Namespace
}

// Length returns the number of members.
func (s *NodeSet) Length() int {
	return len(s.members)
}

// Get returns the i'th member, or nil when out of range.
func (s *NodeSet) Get(i int) *Namespace {
	if i < 0 || i >= len(s.members) {
		return nil
	}
	return s.members[i]
}

// Document returns the document the set was produced from.
func (s *NodeSet) Document() *Document {
	return s.doc
}
