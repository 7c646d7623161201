// Package tree implements the native document tree this library bridges into
// managed wrappers: documents, elements, and namespace declaration structs
// linked the way a C XML library links them. Every long-lived object is
// allocated through a Memory so ownership mistakes (double frees, leaks)
// surface as hard failures instead of silent corruption.
package tree

import (
	"fmt"
	"sync"
)

// Memory tracks ownership of every allocation made for one or more documents.
// Free of a pointer that is not live panics: the tree side treats ownership
// violations as programming errors, not recoverable conditions.
//
// Frees may arrive from the collector's finalizer goroutine while the owning
// thread is still allocating, so the live set is guarded by a mutex even
// though tree mutation itself is single-threaded.
type Memory struct {
	mu     sync.Mutex
	live   map[any]struct{}
	allocs int
	frees  int
}

// NewMemory creates an empty allocation tracker.
func NewMemory() *Memory {
	return &Memory{live: make(map[any]struct{})}
}

func (m *Memory) track(p any) {
	m.mu.Lock()
	m.live[p] = struct{}{}
	m.allocs++
	m.mu.Unlock()
}

// Free releases a tracked allocation. Freeing a pointer that was never
// allocated here, or was already freed, panics.
func (m *Memory) Free(p any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[p]; !ok {
		panic(fmt.Sprintf("tree: free of untracked pointer %p (double free?)", p))
	}
	delete(m.live, p)
	m.frees++
}

// Tracks reports whether p is a live allocation in this Memory.
func (m *Memory) Tracks(p any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live[p]
	return ok
}

// Live returns the number of live allocations.
func (m *Memory) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Allocs returns the total number of allocations made.
func (m *Memory) Allocs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocs
}

// Frees returns the total number of frees performed.
func (m *Memory) Frees() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frees
}

// Str is an owned string cell. Namespace prefixes and hrefs are Str
// allocations with their own lifetime, distinct from the structs that point
// at them.
type Str struct {
	s string
}

// NewStr allocates an owned copy of s.
func (m *Memory) NewStr(s string) *Str {
	cell := &Str{s: s}
	m.track(cell)
	return cell
}

func (s *Str) String() string {
	return s.s
}
