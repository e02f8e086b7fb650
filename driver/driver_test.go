package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordercompare/bench"
	"ordercompare/constants"
	"ordercompare/workload"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// honest extracts the right answer and charges one second to every phase.
func honest(r *bench.Run, sample []uint64) {
	ref := workload.Reference(sample)
	r.Results = append(r.Results[:0], ref[:min(r.Bottom, len(ref))]...)
	r.Timings.Add(bench.Timings{Load: 1, Unload: 1, Sort: 1})
}

func experiment(sizes []int, repeat int, variants ...bench.Variant) *Experiment {
	return &Experiment{
		Sizes:    sizes,
		Repeat:   repeat,
		Bottom:   constants.Bottom,
		Source:   workload.NewSource(42),
		Variants: variants,
	}
}

func collectAll(t *testing.T, e *Experiment) []SizeResult {
	t.Helper()
	require.NoError(t, e.Validate())
	var out []SizeResult
	ran := e.Run(func(res SizeResult) { out = append(out, res) })
	require.Equal(t, len(out), ran)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Configuration
// ─────────────────────────────────────────────────────────────────────────────

func TestDefault(t *testing.T) {
	e := Default(workload.NewSource(1))
	require.NoError(t, e.Validate())
	assert.Equal(t, constants.Sizes[:], e.Sizes)
	assert.Equal(t, constants.Repeat, e.Repeat)
	assert.Equal(t, constants.Bottom, e.Bottom)
	assert.Equal(t, constants.GCPasses, e.GCPasses)
	require.Len(t, e.Variants, 6)
	assert.Equal(t, "Vector", e.Variants[0].Label)
	assert.Equal(t, "FB Vector", e.Variants[5].Label)
}

func TestValidate(t *testing.T) {
	v := bench.Variant{Label: "x", Fn: honest}
	tests := []struct {
		name   string
		mutate func(e *Experiment)
	}{
		{"zero repeat", func(e *Experiment) { e.Repeat = 0 }},
		{"negative bottom", func(e *Experiment) { e.Bottom = -1 }},
		{"no source", func(e *Experiment) { e.Source = nil }},
		{"no variants", func(e *Experiment) { e.Variants = nil }},
		{"negative gc passes", func(e *Experiment) { e.GCPasses = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := experiment([]int{10}, 1, v)
			tt.mutate(e)
			err := e.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Size loop
// ─────────────────────────────────────────────────────────────────────────────

func TestRunSkipsSizesBelowBottom(t *testing.T) {
	calls := 0
	counting := bench.Variant{Label: "count", Fn: func(r *bench.Run, sample []uint64) {
		calls++
		honest(r, sample)
	}}

	out := collectAll(t, experiment([]int{1, 10, 100}, 2, counting))
	require.Len(t, out, 2)
	assert.Equal(t, 10, out[0].Table.Size)
	assert.Equal(t, 100, out[1].Table.Size)
	assert.Equal(t, 4, calls)
}

func TestRunOnlyTinySizesEmitsNothing(t *testing.T) {
	calls := 0
	counting := bench.Variant{Label: "count", Fn: func(*bench.Run, []uint64) { calls++ }}

	out := collectAll(t, experiment([]int{1, 5, 9}, 3, counting))
	assert.Empty(t, out)
	assert.Zero(t, calls)
}

func TestMeansResetPerSize(t *testing.T) {
	a := bench.Variant{Label: "a", Fn: honest}
	b := bench.Variant{Label: "b", Fn: honest}

	out := collectAll(t, experiment([]int{10, 100, 1_000}, 3, a, b))
	require.Len(t, out, 3)
	for _, res := range out {
		assert.Equal(t, []string{"a", "b"}, res.Table.Labels)
		for _, m := range res.Table.Means {
			assert.Equal(t, bench.Timings{Load: 1, Unload: 1, Sort: 1}, m)
		}
		assert.Zero(t, res.Mismatches)
		assert.Zero(t, res.Mutations)
	}
}

func TestEveryVariantSamplesTheSameData(t *testing.T) {
	var seen [][]uint64
	record := func(r *bench.Run, sample []uint64) {
		seen = append(seen, append([]uint64(nil), sample...))
		honest(r, sample)
	}
	e := experiment([]int{50}, 2,
		bench.Variant{Label: "first", Fn: record},
		bench.Variant{Label: "second", Fn: record},
	)

	collectAll(t, e)
	require.Len(t, seen, 4)
	assert.Equal(t, seen[0], seen[1])
	assert.Equal(t, seen[2], seen[3])
	assert.NotEqual(t, seen[0], seen[2], "each repetition draws a fresh sample")
}

// ─────────────────────────────────────────────────────────────────────────────
// Checks
// ─────────────────────────────────────────────────────────────────────────────

func TestMismatchIsCountedAndRunContinues(t *testing.T) {
	broken := bench.Variant{Label: "broken", Fn: func(r *bench.Run, _ []uint64) {
		r.Results = r.Results[:0]
	}}
	good := bench.Variant{Label: "good", Fn: honest}

	out := collectAll(t, experiment([]int{10, 100}, 3, broken, good))
	require.Len(t, out, 2)
	for _, res := range out {
		assert.Equal(t, 3, res.Mismatches)
		assert.Equal(t, 1.0, res.Table.Means[1].Load)
	}
}

func TestWrongValueIsAMismatch(t *testing.T) {
	offByOne := bench.Variant{Label: "off", Fn: func(r *bench.Run, sample []uint64) {
		honest(r, sample)
		r.Results[constants.Bottom-1]++
	}}

	out := collectAll(t, experiment([]int{100}, 2, offByOne))
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Mismatches)
}

func TestMutationIsDetectedAndUndone(t *testing.T) {
	vandal := bench.Variant{Label: "vandal", Fn: func(r *bench.Run, sample []uint64) {
		honest(r, sample)
		for i := range sample {
			sample[i] = constants.Tombstone
		}
	}}
	vector := bench.Variant{Label: "Vector", Fn: bench.Vector}

	out := collectAll(t, experiment([]int{100}, 4, vandal, vector))
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].Mutations)
	assert.Zero(t, out[0].Mismatches, "later variants must see the original sample")
}

// ─────────────────────────────────────────────────────────────────────────────
// Full matrix at small sizes
// ─────────────────────────────────────────────────────────────────────────────

func TestRealVariantsSmallMatrix(t *testing.T) {
	e := Default(workload.NewSource(7))
	e.Sizes = []int{1, 10, 100, 1_000}
	e.Repeat = 2
	e.GCPasses = 1

	out := collectAll(t, e)
	require.Len(t, out, 3)
	for _, res := range out {
		assert.Zero(t, res.Mismatches, "size %d", res.Table.Size)
		assert.Zero(t, res.Mutations, "size %d", res.Table.Size)
		require.Len(t, res.Table.Means, 6)
		for i, m := range res.Table.Means {
			assert.GreaterOrEqual(t, m.Load, 0.0, res.Table.Labels[i])
			assert.GreaterOrEqual(t, m.Unload, 0.0, res.Table.Labels[i])
		}
		assert.Zero(t, res.Table.Means[3].Sort, "Heap has no sort phase")
		assert.Zero(t, res.Table.Means[4].Sort, "Set has no sort phase")
	}
}
