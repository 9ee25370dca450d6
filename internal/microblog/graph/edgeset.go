// Package graph holds the in-memory follow relation.
package graph

import (
	"maps"
	"slices"
)

// EdgeSet is a set of directed edges between node ids, indexed by source and
// by target so both directions can be listed without a scan. The zero value
// is not usable; call New. EdgeSet is not safe for concurrent use.
type EdgeSet struct {
	out map[int64]map[int64]struct{}
	in  map[int64]map[int64]struct{}
	n   int
}

func New() *EdgeSet {
	return &EdgeSet{
		out: make(map[int64]map[int64]struct{}),
		in:  make(map[int64]map[int64]struct{}),
	}
}

// Add inserts from->to and reports whether the edge was new.
func (s *EdgeSet) Add(from, to int64) bool {
	if s.Has(from, to) {
		return false
	}
	link(s.out, from, to)
	link(s.in, to, from)
	s.n++
	return true
}

// Remove deletes from->to and reports whether it was present.
func (s *EdgeSet) Remove(from, to int64) bool {
	if !s.Has(from, to) {
		return false
	}
	unlink(s.out, from, to)
	unlink(s.in, to, from)
	s.n--
	return true
}

func (s *EdgeSet) Has(from, to int64) bool {
	_, ok := s.out[from][to]
	return ok
}

// Out returns the targets of edges leaving from, ascending.
func (s *EdgeSet) Out(from int64) []int64 { return sortedKeys(s.out[from]) }

// In returns the sources of edges entering to, ascending.
func (s *EdgeSet) In(to int64) []int64 { return sortedKeys(s.in[to]) }

func (s *EdgeSet) OutDegree(from int64) int { return len(s.out[from]) }
func (s *EdgeSet) InDegree(to int64) int    { return len(s.in[to]) }

// Len is the number of edges.
func (s *EdgeSet) Len() int { return s.n }

// Clone returns a deep copy.
func (s *EdgeSet) Clone() *EdgeSet {
	c := &EdgeSet{
		out: make(map[int64]map[int64]struct{}, len(s.out)),
		in:  make(map[int64]map[int64]struct{}, len(s.in)),
		n:   s.n,
	}
	for k, v := range s.out {
		c.out[k] = maps.Clone(v)
	}
	for k, v := range s.in {
		c.in[k] = maps.Clone(v)
	}
	return c
}

func link(idx map[int64]map[int64]struct{}, a, b int64) {
	set, ok := idx[a]
	if !ok {
		set = make(map[int64]struct{})
		idx[a] = set
	}
	set[b] = struct{}{}
}

func unlink(idx map[int64]map[int64]struct{}, a, b int64) {
	set := idx[a]
	delete(set, b)
	if len(set) == 0 {
		delete(idx, a)
	}
}

func sortedKeys(set map[int64]struct{}) []int64 {
	keys := make([]int64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
