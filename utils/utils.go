// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: utils.go - Zero-alloc conversions, raw console writes, mixers
//
// Purpose:
//   - Integer → ASCII without fmt for diagnostic lines.
//   - Direct fd 1 / fd 2 writes that bypass os.File buffering.
//   - Murmur3-style mixing for seed derivation.
//
// Notes:
//   - Console writes go through golang.org/x/sys/unix so diagnostics never
//     contend with the table writer's buffer.
// ─────────────────────────────────────────────────────────────────────────────

package utils

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities: Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// S2b views a string as a []byte **without** allocation.
// ⚠️ The returned slice must never be written to.
//
//go:nosplit
//go:inline
func S2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Itoa converts a signed int to its decimal string.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n < 0 {
		return "-" + Utoa(uint64(-n))
	}
	return Utoa(uint64(n))
}

// Utoa converts a uint64 to its decimal string with a single allocation.
// Sample values span the full 64-bit range, so this must not go through int.
//
//go:nosplit
//go:inline
func Utoa(u uint64) string {
	var buf [20]byte // max uint64 is 20 digits
	i := len(buf)
	for u >= 10 {
		i--
		q := u / 10
		buf[i] = byte('0' + u - q*10)
		u = q
	}
	i--
	buf[i] = byte('0' + u)
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Console Output: Raw File Descriptor Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg verbatim to stderr.
// Short writes and EINTR are ignored: diagnostics are best-effort.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = unix.Write(unix.Stderr, S2b(msg))
}

// PrintInfo writes msg verbatim to stdout.
//
//go:nosplit
//go:inline
func PrintInfo(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = unix.Write(unix.Stdout, S2b(msg))
}

///////////////////////////////////////////////////////////////////////////////
// Hash & Mixers: Seed Derivation
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Used to derive a second independent PCG stream word from one seed.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
