package bench

import (
	"slices"

	"ordercompare/constants"
	"ordercompare/fbvector"
	"ordercompare/linkedlist"
	"ordercompare/minheap"
	"ordercompare/orderedset"
	"ordercompare/stopwatch"
)

// ───────────────────────────── Linked List ──────────────────────────────────

// List benchmarks the arena doubly-linked list. Unload works on a clone and
// genuinely unlinks each minimum; the sort phase merge-sorts the original.
func List(r *Run, sample []uint64) {
	var sw stopwatch.Stopwatch

	sw.Start()
	l := linkedlist.New(0)
	for _, v := range sample {
		l.PushBack(v)
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	work := l.Clone()

	r.Results = r.Results[:0]
	sw.Start()
	r.Results = extractList(work, r.Results, r.Bottom)
	sw.Stop()
	r.Timings.Unload += sw.Seconds()

	sw.Start()
	l.Sort()
	sw.Stop()
	r.Timings.Sort += sw.Seconds()
}

// extractList removes up to k leftmost minimums from l, appending them to dst.
//
//go:nosplit
func extractList(l *linkedlist.List, dst []uint64, k int) []uint64 {
	for n := 0; n < k && l.Len() > 0; n++ {
		minH := l.Front()
		minV := l.Value(minH)
		for h := l.Next(minH); h != linkedlist.Nil; h = l.Next(h) {
			if v := l.Value(h); v < minV {
				minV, minH = v, h
			}
		}
		_, _ = l.Remove(minH)
		dst = append(dst, minV)
	}
	return dst
}

// ───────────────────────────── Binary Heap ──────────────────────────────────

// Heap benchmarks the binary min-heap. Pops come from a clone; the heap is
// already ordered for its purpose, so the sort phase contributes zero.
func Heap(r *Run, sample []uint64) {
	var sw stopwatch.Stopwatch

	sw.Start()
	h := minheap.New(0)
	for _, v := range sample {
		h.Push(v)
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	work := h.Clone()

	r.Results = r.Results[:0]
	sw.Start()
	for n := 0; n < r.Bottom; n++ {
		v, ok := work.Pop()
		if !ok {
			break
		}
		r.Results = append(r.Results, v)
	}
	sw.Stop()
	r.Timings.Unload += sw.Seconds()
	// no sort phase: Sort stays untouched
}

// ───────────────────────────── Ordered Set ──────────────────────────────────

// Set benchmarks the B-tree set. Nothing is removed: the first Bottom values
// of the in-order walk are the minimums. Duplicate sample values collapse,
// and the sort phase contributes zero.
func Set(r *Run, sample []uint64) {
	var sw stopwatch.Stopwatch

	sw.Start()
	s := orderedset.New()
	for _, v := range sample {
		s.Insert(v)
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	sw.Start()
	r.Results = s.AppendSmallest(r.Results[:0], r.Bottom)
	sw.Stop()
	r.Timings.Unload += sw.Seconds()
	// no sort phase: in-order traversal is already ascending
}

// ───────────────────────────── Growth Vector ────────────────────────────────

// FBVector benchmarks the 1.5× growth vector. Unload erases each minimum from
// a clone, shifting the tail; the sort phase orders the original.
func FBVector(r *Run, sample []uint64) {
	var sw stopwatch.Stopwatch

	sw.Start()
	v := fbvector.New(0)
	for _, x := range sample {
		v.PushBack(x)
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	work := v.Clone()

	r.Results = r.Results[:0]
	sw.Start()
	r.Results = extractErase(work, r.Results, r.Bottom)
	sw.Stop()
	r.Timings.Unload += sw.Seconds()

	sw.Start()
	slices.Sort(v.Data())
	sw.Stop()
	r.Timings.Sort += sw.Seconds()
}

// extractErase erases up to k leftmost minimums from v, appending them to dst.
//
//go:nosplit
func extractErase(v *fbvector.Vector, dst []uint64, k int) []uint64 {
	for n := 0; n < k; n++ {
		minV, minI := constants.Tombstone, -1
		for i := 0; i < v.Len(); i++ {
			if x := v.At(i); x < minV {
				minV, minI = x, i
			}
		}
		if minI < 0 {
			break
		}
		_, _ = v.Erase(minI)
		dst = append(dst, minV)
	}
	return dst
}
