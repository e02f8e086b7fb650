// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: workload.go - Random sample generation & input fingerprinting
//
// Purpose:
//   - Produces uniformly random non-zero uint64 samples.
//   - Builds the ascending reference used by the correctness check.
//   - Fingerprints a sample so the driver can prove no variant mutated it.
//
// Notes:
//   - Zero is reserved as the "no value" marker and is redrawn, never clamped.
//   - Fingerprinting runs outside every timed region.
// ─────────────────────────────────────────────────────────────────────────────

package workload

import (
	"encoding/binary"
	"math/rand/v2"
	"slices"

	"golang.org/x/crypto/sha3"

	"ordercompare/constants"
	"ordercompare/utils"
)

// Source draws sample values from a PCG stream.
type Source struct {
	rng *rand.Rand
}

// NewSource seeds a deterministic source. The second PCG word is derived
// from the seed so one number reproduces a run.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, utils.Mix64(seed)))}
}

// NewRandomSource seeds from the runtime's entropy-backed generator.
func NewRandomSource() *Source {
	return &Source{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Value returns one uniformly random non-zero value.
//
//go:nosplit
//go:inline
func (s *Source) Value() uint64 {
	v := s.rng.Uint64()
	for v == constants.Empty {
		v = s.rng.Uint64()
	}
	return v
}

// Sample returns n fresh non-zero values.
func (s *Source) Sample(n int) []uint64 {
	out := make([]uint64, n)
	s.Fill(out)
	return out
}

// Fill overwrites dst with fresh non-zero values.
func (s *Source) Fill(dst []uint64) {
	for i := range dst {
		dst[i] = s.Value()
	}
}

// Reference returns an ascending copy of sample.
func Reference(sample []uint64) []uint64 {
	ref := slices.Clone(sample)
	slices.Sort(ref)
	return ref
}

// Fingerprint is a SHA3-256 digest of a sample's values in order.
type Fingerprint [32]byte

// FingerprintOf hashes the sample as little-endian words.
func FingerprintOf(sample []uint64) Fingerprint {
	h := sha3.New256()
	var word [8]byte
	for _, v := range sample {
		binary.LittleEndian.PutUint64(word[:], v)
		h.Write(word[:])
	}
	var fp Fingerprint
	h.Sum(fp[:0])
	return fp
}
