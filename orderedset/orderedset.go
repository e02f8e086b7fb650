// Package orderedset is an ascending set of unique uint64 values.
//
// Backed by a B-tree, so in-order traversal is always globally sorted and
// the smallest values are read off the left spine without removal.
package orderedset

import "github.com/google/btree"

// degree 32 keeps nodes near a few cache lines of uint64 keys.
const degree = 32

// Set holds unique values in ascending order.
type Set struct {
	tree *btree.BTreeG[uint64]
}

// New returns an empty set.
func New() *Set {
	return &Set{tree: btree.NewOrderedG[uint64](degree)}
}

// Insert adds v and reports whether it was new. Duplicates are absorbed.
//
//go:nosplit
//go:inline
func (s *Set) Insert(v uint64) bool {
	_, existed := s.tree.ReplaceOrInsert(v)
	return !existed
}

// Has reports membership.
func (s *Set) Has(v uint64) bool { return s.tree.Has(v) }

// Len returns the number of distinct values.
func (s *Set) Len() int { return s.tree.Len() }

// Ascend calls fn for each value in ascending order until fn returns false.
func (s *Set) Ascend(fn func(v uint64) bool) { s.tree.Ascend(fn) }

// AppendSmallest appends up to k of the smallest values to dst in ascending
// order and returns the extended slice.
func (s *Set) AppendSmallest(dst []uint64, k int) []uint64 {
	if k <= 0 {
		return dst
	}
	n := 0
	s.tree.Ascend(func(v uint64) bool {
		dst = append(dst, v)
		n++
		return n < k
	})
	return dst
}

// Values returns every value in ascending order.
func (s *Set) Values() []uint64 {
	return s.AppendSmallest(make([]uint64, 0, s.Len()), s.Len())
}
