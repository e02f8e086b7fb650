// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go - Compiled-in experiment matrix & table layout
//
// Purpose:
//   - Defines the fixed benchmark matrix: data sizes, repetitions, extraction depth.
//   - Holds the tombstone sentinel and the console table geometry.
//
// Notes:
//   - The harness takes no flags or environment; every knob lives here.
//   - Sizes below Bottom are skipped by the driver, never truncated.
//
// ⚠️ No runtime logic here; all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

import "math"

// ───────────────────────────── Experiment Matrix ──────────────────────────────

const (
	// Repeat is the number of trials averaged per data size.
	// Ten keeps the 1M-element row under a few seconds per variant.
	Repeat = 10

	// Bottom is how many of the smallest values each unload phase extracts.
	// Also the minimum sample size the driver will run.
	Bottom = 10
)

// Sizes lists the sample sizes, smallest first. Each is run Repeat times.
var Sizes = [...]int{10, 100, 1_000, 10_000, 100_000, 1_000_000}

// ─────────────────────────────── Extraction ──────────────────────────────────

const (
	// Tombstone marks a slot as already extracted in the scan-based variants.
	// A slot holding Tombstone is never selected as a minimum.
	Tombstone uint64 = math.MaxUint64

	// Empty is reserved: generated samples never contain zero.
	Empty uint64 = 0
)

// ─────────────────────────────── Table Layout ────────────────────────────────

const (
	// SizeLabelWidth is the width of the "Size:" header cell.
	SizeLabelWidth = 6

	// SizeValueWidth is the width of the numeric size in the header.
	SizeValueWidth = 9

	// ColumnWidth is the width of every label and value cell.
	ColumnWidth = 15

	// Precision is the number of fractional digits printed for seconds.
	Precision = 9
)

// ──────────────────────────── Runtime Hygiene ────────────────────────────────

const (
	// GCPasses is how many forced collections run between sizes.
	// The second pass reclaims objects released by finalizers run in the first.
	GCPasses = 2
)
