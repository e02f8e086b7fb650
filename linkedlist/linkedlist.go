// Package linkedlist is an arena-backed doubly-linked list of uint64 values.
// Nodes live in one growable slice and link by 32-bit index; removed nodes go
// to a freelist and are reused by later pushes. Removal is a genuine unlink:
// neighbours are rewired and the node leaves the traversal.
package linkedlist

import (
	"errors"
	"slices"
)

const nilIdx idx32 = ^idx32(0)

type idx32 uint32

// Handle addresses one live node.
type Handle idx32

// Nil is the handle returned past either end of the list.
const Nil = Handle(nilIdx)

var ErrInvalidHandle = errors.New("linkedlist: invalid handle")

type node struct {
	value      uint64
	next, prev idx32
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List struct {
	nodes      []node
	head, tail idx32
	freeHead   idx32
	size       int
	ready      bool
}

// New returns an empty list with room for capHint nodes before the arena grows.
func New(capHint int) *List {
	l := &List{}
	l.init()
	l.nodes = make([]node, 0, capHint)
	return l
}

func (l *List) init() {
	l.head, l.tail, l.freeHead = nilIdx, nilIdx, nilIdx
	l.ready = true
}

func (l *List) alloc(v uint64) idx32 {
	if l.freeHead != nilIdx {
		i := l.freeHead
		l.freeHead = l.nodes[i].next
		l.nodes[i] = node{value: v, next: nilIdx, prev: nilIdx}
		return i
	}
	l.nodes = append(l.nodes, node{value: v, next: nilIdx, prev: nilIdx})
	return idx32(len(l.nodes) - 1)
}

// PushBack appends v at the tail.
//
//go:nosplit
func (l *List) PushBack(v uint64) Handle {
	if !l.ready {
		l.init()
	}
	i := l.alloc(v)
	n := &l.nodes[i]
	n.prev = l.tail
	if l.tail != nilIdx {
		l.nodes[l.tail].next = i
	} else {
		l.head = i
	}
	l.tail = i
	l.size++
	return Handle(i)
}

// Front returns the first node, or Nil when empty.
func (l *List) Front() Handle {
	if l.size == 0 {
		return Nil
	}
	return Handle(l.head)
}

// Next returns the node after h, or Nil at the tail.
//
//go:nosplit
//go:inline
func (l *List) Next(h Handle) Handle { return Handle(l.nodes[h].next) }

// Value returns the value stored at h.
//
//go:nosplit
//go:inline
func (l *List) Value(h Handle) uint64 { return l.nodes[h].value }

// Remove unlinks h and returns its value. The handle must be live.
//
//go:nosplit
func (l *List) Remove(h Handle) (uint64, error) {
	if h == Nil || int(h) >= len(l.nodes) {
		return 0, ErrInvalidHandle
	}
	i := idx32(h)
	n := &l.nodes[i]
	if n.prev != nilIdx {
		l.nodes[n.prev].next = n.next
	} else {
		if l.head != i {
			return 0, ErrInvalidHandle // already on the freelist
		}
		l.head = n.next
	}
	if n.next != nilIdx {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	v := n.value
	n.prev, n.next = nilIdx, l.freeHead
	l.freeHead = i
	l.size--
	return v, nil
}

// Len returns the number of live nodes.
func (l *List) Len() int { return l.size }

// Clone returns an independent copy sharing no nodes with l.
func (l *List) Clone() *List {
	c := *l
	c.nodes = slices.Clone(l.nodes)
	return &c
}

// Values returns the values in traversal order.
func (l *List) Values() []uint64 {
	out := make([]uint64, 0, l.size)
	for h := l.Front(); h != Nil; h = l.Next(h) {
		out = append(out, l.Value(h))
	}
	return out
}

// Sort orders the list ascending by relinking nodes; values never move.
// Equal values keep their relative order. Bottom-up binned merge
// over 64 bins: O(n log n) compares, O(1) extra space.
func (l *List) Sort() {
	if l.size < 2 {
		return
	}
	var bins [64]idx32
	for i := range bins {
		bins[i] = nilIdx
	}
	fill := 0
	for cur := l.head; cur != nilIdx; {
		next := l.nodes[cur].next
		l.nodes[cur].next = nilIdx
		run := cur
		i := 0
		for ; i < fill && bins[i] != nilIdx; i++ {
			run = l.merge(bins[i], run)
			bins[i] = nilIdx
		}
		bins[i] = run
		if i == fill {
			fill++
		}
		cur = next
	}
	run := nilIdx
	for i := 0; i < fill; i++ {
		run = l.merge(bins[i], run)
	}

	prev := nilIdx
	for c := run; c != nilIdx; c = l.nodes[c].next {
		l.nodes[c].prev = prev
		prev = c
	}
	l.head, l.tail = run, prev
}

// merge joins two ascending next-chains. a holds the earlier elements and
// wins ties.
func (l *List) merge(a, b idx32) idx32 {
	if a == nilIdx {
		return b
	}
	if b == nilIdx {
		return a
	}
	head, tail := nilIdx, nilIdx
	for a != nilIdx && b != nilIdx {
		var take idx32
		if l.nodes[b].value < l.nodes[a].value {
			take, b = b, l.nodes[b].next
		} else {
			take, a = a, l.nodes[a].next
		}
		if tail == nilIdx {
			head = take
		} else {
			l.nodes[tail].next = take
		}
		tail = take
	}
	if a != nilIdx {
		l.nodes[tail].next = a
	} else {
		l.nodes[tail].next = b
	}
	return head
}
