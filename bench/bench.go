// ════════════════════════════════════════════════════════════════════════════════════════════════
// Container Benchmark Protocol
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Load / unload / sort timing for six container strategies
//
// Description:
//   Every variant runs the same three timed phases against one read-only sample:
//     1. Load    build the container from an empty state, one value at a time.
//     2. Unload  extract the current minimum Bottom times, ascending, into Run.Results.
//     3. Sort    fully order the untouched loaded data (zero for self-ordering containers).
//   Each phase is bracketed by its own Stopwatch and added to Run.Timings.
//
// Architecture:
//   - Variants are plain functions, not an interface: each one calls its container's
//     native operations directly so no dispatch cost lands inside a timed region.
//   - All state a variant touches arrives through *Run; there is no package-level state.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package bench

import "ordercompare/constants"

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TIMING ACCUMULATOR
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Timings holds per-phase durations in seconds. As an accumulator it sums
// repetitions; Mean turns it into per-repetition averages.
type Timings struct {
	Load   float64
	Unload float64
	Sort   float64
}

// Add accumulates o into t.
func (t *Timings) Add(o Timings) {
	t.Load += o.Load
	t.Unload += o.Unload
	t.Sort += o.Sort
}

// Mean divides every phase by n. n <= 0 yields the zero value.
func (t Timings) Mean(n int) Timings {
	if n <= 0 {
		return Timings{}
	}
	d := float64(n)
	return Timings{Load: t.Load / d, Unload: t.Unload / d, Sort: t.Sort / d}
}

// LoadUnload is the combined load and unload time.
func (t Timings) LoadUnload() float64 { return t.Load + t.Unload }

// LoadSort is the combined load and sort time.
func (t Timings) LoadSort() float64 { return t.Load + t.Sort }

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RUN CONTEXT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Run carries one variant's state across the repetitions of a single size.
type Run struct {
	// Bottom is how many minimums the unload phase extracts.
	Bottom int

	// Timings accumulates every repetition's phase durations.
	Timings Timings

	// Results holds the most recent unload output, ascending.
	Results []uint64

	// Scratch is the caller-owned fixed block used by Buffer. It must hold at
	// least len(sample) words; other variants ignore it.
	Scratch []uint64
}

// NewRun returns a Run extracting bottom values with fresh accumulators.
func NewRun(bottom int) *Run {
	return &Run{Bottom: bottom, Results: make([]uint64, 0, bottom)}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// VARIANT TABLE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Func runs one repetition of the protocol for one container strategy.
// sample is read-only.
type Func func(r *Run, sample []uint64)

// Variant names one strategy and its protocol function.
type Variant struct {
	Label string
	Fn    Func
}

// Variants returns the six strategies in table column order.
func Variants() []Variant {
	return []Variant{
		{Label: "Vector", Fn: Vector},
		{Label: "C-Style Array", Fn: Buffer},
		{Label: "List", Fn: List},
		{Label: "Heap", Fn: Heap},
		{Label: "Set", Fn: Set},
		{Label: "FB Vector", Fn: FBVector},
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SHARED EXTRACTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// extractTombstone appends up to k minimums of words to dst. Each pass scans
// left to right with a strict compare, so the leftmost of equal minimums
// wins; the chosen slot is overwritten with constants.Tombstone instead of
// being removed. Stops early once only tombstones remain.
//
//go:nosplit
func extractTombstone(words, dst []uint64, k int) []uint64 {
	for n := 0; n < k; n++ {
		minV, minI := constants.Tombstone, -1
		for i, v := range words {
			if v < minV {
				minV, minI = v, i
			}
		}
		if minI < 0 {
			break
		}
		dst = append(dst, minV)
		words[minI] = constants.Tombstone
	}
	return dst
}
