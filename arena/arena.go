// ════════════════════════════════════════════════════════════════════════════════════════════════
// Fixed-Capacity Word Arena
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Raw contiguous uint64 block for the C-style array benchmark
//
// Description:
//   One anonymous private mapping sized exactly to the sample. The block never grows, never
//   reallocates and lives outside the Go heap, so the garbage collector neither scans nor
//   moves it. The driver allocates one per data size and frees it when that size completes.
//
// Safety model:
//   - Words() is invalid after Free(); the driver owns the lifetime.
//   - Allocation failure is fatal: New panics.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package arena

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

const wordSize = int(unsafe.Sizeof(uint64(0)))

// ErrFreed is returned when a freed buffer is released again.
var ErrFreed = errors.New("arena: buffer already freed")

// Buffer is a fixed-length block of uint64 words.
type Buffer struct {
	mem   []byte
	words []uint64
}

// New maps a zeroed block holding exactly n words.
func New(n int) *Buffer {
	if n <= 0 {
		panic("arena: non-positive capacity")
	}
	mem, err := unix.Mmap(-1, 0, n*wordSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("arena: mmap " + err.Error())
	}
	return &Buffer{
		mem:   mem,
		words: unsafe.Slice((*uint64)(unsafe.Pointer(&mem[0])), n),
	}
}

// Words exposes the block. Its length and capacity are both the mapped size.
//
//go:nosplit
//go:inline
func (b *Buffer) Words() []uint64 { return b.words }

// Len reports the capacity in words, or 0 after Free.
func (b *Buffer) Len() int { return len(b.words) }

// Free unmaps the block.
func (b *Buffer) Free() error {
	if b.mem == nil {
		return ErrFreed
	}
	err := unix.Munmap(b.mem)
	b.mem, b.words = nil, nil
	return err
}
