// Package minheap is a binary min-heap of uint64 values stored in one slice.
//
// It is the typed counterpart of container/heap: no interface boxing, so a
// push costs a slice append and a sift, never an allocation per value.
package minheap

import "slices"

// Heap keeps data[i] <= data[2i+1] and data[i] <= data[2i+2].
// The zero value is an empty heap ready to use.
type Heap struct {
	data []uint64
}

// New returns an empty heap with room for capHint values.
func New(capHint int) *Heap {
	return &Heap{data: make([]uint64, 0, capHint)}
}

// Push inserts v.
//
//go:nosplit
func (h *Heap) Push(v uint64) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Peek returns the minimum without removing it.
func (h *Heap) Peek() (uint64, bool) {
	if len(h.data) == 0 {
		return 0, false
	}
	return h.data[0], true
}

// Pop removes and returns the minimum. ok is false on an empty heap.
//
//go:nosplit
func (h *Heap) Pop() (v uint64, ok bool) {
	n := len(h.data) - 1
	if n < 0 {
		return 0, false
	}
	v = h.data[0]
	h.data[0] = h.data[n]
	h.data = h.data[:n]
	if n > 0 {
		h.down(0)
	}
	return v, true
}

// Len returns the number of values held.
func (h *Heap) Len() int { return len(h.data) }

// Clone returns an independent copy.
func (h *Heap) Clone() *Heap {
	return &Heap{data: slices.Clone(h.data)}
}

func (h *Heap) up(j int) {
	d := h.data
	v := d[j]
	for j > 0 {
		p := (j - 1) / 2
		if d[p] <= v {
			break
		}
		d[j] = d[p]
		j = p
	}
	d[j] = v
}

func (h *Heap) down(i int) {
	d := h.data
	n := len(d)
	v := d[i]
	for {
		c := 2*i + 1
		if c >= n {
			break
		}
		if r := c + 1; r < n && d[r] < d[c] {
			c = r
		}
		if v <= d[c] {
			break
		}
		d[i] = d[c]
		i = c
	}
	d[i] = v
}
