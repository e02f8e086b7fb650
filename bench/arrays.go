package bench

import (
	"slices"

	"ordercompare/stopwatch"
)

// Vector benchmarks a Go slice grown by append. Unload tombstones minimums in
// place; the sort phase first restores the sample so it orders the original
// data, not the tombstoned copy.
func Vector(r *Run, sample []uint64) {
	var sw stopwatch.Stopwatch

	sw.Start()
	var vec []uint64
	for _, v := range sample {
		vec = append(vec, v)
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	r.Results = r.Results[:0]
	sw.Start()
	r.Results = extractTombstone(vec, r.Results, r.Bottom)
	sw.Stop()
	r.Timings.Unload += sw.Seconds()

	copy(vec, sample)

	sw.Start()
	slices.Sort(vec)
	sw.Stop()
	r.Timings.Sort += sw.Seconds()
}

// Buffer benchmarks the fixed block in r.Scratch: no growth, no reallocation,
// the load phase is a plain indexed copy.
func Buffer(r *Run, sample []uint64) {
	if len(r.Scratch) < len(sample) {
		panic("bench: scratch block smaller than sample")
	}
	words := r.Scratch[:len(sample)]
	var sw stopwatch.Stopwatch

	sw.Start()
	for i := range words {
		words[i] = sample[i]
	}
	sw.Stop()
	r.Timings.Load += sw.Seconds()

	r.Results = r.Results[:0]
	sw.Start()
	r.Results = extractTombstone(words, r.Results, r.Bottom)
	sw.Stop()
	r.Timings.Unload += sw.Seconds()

	copy(words, sample)

	sw.Start()
	slices.Sort(words)
	sw.Stop()
	r.Timings.Sort += sw.Seconds()
}
