// ════════════════════════════════════════════════════════════════════════════════════════════════
// Growth-Factor Vector
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Alternative dynamic array for the vector-with-erase benchmark
//
// Description:
//   A contiguous uint64 vector that manages its own capacity instead of relying on append's
//   growth policy. Capacity grows by 1.5× (starting at a small floor), which lets freed blocks
//   be reused by later growth. Erase physically shifts the tail left, so removal cost is
//   linear in the distance to the end.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package fbvector

import "errors"

// minCap is the first allocation size; below this 1.5× growth is all rounding.
const minCap = 16

var ErrOutOfRange = errors.New("fbvector: index out of range")

// Vector is a growable uint64 array. The zero value is empty and ready to use.
type Vector struct {
	buf []uint64 // len(buf) == capacity; only buf[:n] is live
	n   int
}

// New returns an empty vector with at least capHint slots reserved.
func New(capHint int) *Vector {
	v := &Vector{}
	if capHint > 0 {
		v.buf = make([]uint64, capHint)
	}
	return v
}

// grow reallocates to the next 1.5× step and copies the live prefix.
func (v *Vector) grow() {
	c := len(v.buf)
	switch {
	case c < minCap:
		c = minCap
	default:
		c += c >> 1
	}
	nb := make([]uint64, c)
	copy(nb, v.buf[:v.n])
	v.buf = nb
}

// PushBack appends x.
//
//go:nosplit
//go:inline
func (v *Vector) PushBack(x uint64) {
	if v.n == len(v.buf) {
		v.grow()
	}
	v.buf[v.n] = x
	v.n++
}

// At returns element i. i must be in [0, Len).
//
//go:nosplit
//go:inline
func (v *Vector) At(i int) uint64 { return v.buf[:v.n][i] }

// Erase removes element i and shifts the tail left by one.
func (v *Vector) Erase(i int) (uint64, error) {
	if i < 0 || i >= v.n {
		return 0, ErrOutOfRange
	}
	x := v.buf[i]
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	return x, nil
}

// Len returns the number of live elements.
func (v *Vector) Len() int { return v.n }

// Cap returns the reserved capacity.
func (v *Vector) Cap() int { return len(v.buf) }

// Data exposes the live elements for in-place algorithms such as sorting.
// The slice is invalidated by the next PushBack that grows.
func (v *Vector) Data() []uint64 { return v.buf[:v.n:v.n] }

// Clone returns a copy with capacity trimmed to length.
func (v *Vector) Clone() *Vector {
	c := &Vector{buf: make([]uint64, v.n), n: v.n}
	copy(c.buf, v.buf[:v.n])
	return c
}
