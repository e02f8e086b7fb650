// ════════════════════════════════════════════════════════════════════════════════════════════════
// Experiment Driver
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Size loop, repetitions, correctness checks and aggregation
//
// Description:
//   For every size at or above Bottom: allocate the fixed block, then Repeat times draw a fresh
//   sample and its sorted reference, run every variant against that same sample, and check each
//   variant's extraction. After the repetitions the accumulated timings become means.
//
// Decisions:
//   - Accumulators are created per size, so each table reflects only its own size.
//   - Every variant's extraction is checked, not a single representative one.
//   - Mismatches and sample mutations are logged and counted; the run always continues.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package driver

import (
	"errors"
	"fmt"
	"runtime"
	rtdebug "runtime/debug"
	"slices"

	"ordercompare/arena"
	"ordercompare/bench"
	"ordercompare/constants"
	"ordercompare/debug"
	"ordercompare/report"
	"ordercompare/utils"
	"ordercompare/verify"
	"ordercompare/workload"
)

// ErrInvalidConfig indicates an experiment that cannot run.
var ErrInvalidConfig = errors.New("driver: invalid experiment configuration")

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Experiment is one full pass over the size matrix.
type Experiment struct {
	Sizes    []int
	Repeat   int
	Bottom   int
	Source   *workload.Source
	Variants []bench.Variant

	// GCPasses forced collections run after each size. Zero disables the
	// cleanup, which tests use to keep runs fast.
	GCPasses int
}

// Default returns the compiled-in experiment drawing values from src.
func Default(src *workload.Source) *Experiment {
	return &Experiment{
		Sizes:    constants.Sizes[:],
		Repeat:   constants.Repeat,
		Bottom:   constants.Bottom,
		Source:   src,
		Variants: bench.Variants(),
		GCPasses: constants.GCPasses,
	}
}

// Validate reports the first field that makes e unusable.
func (e *Experiment) Validate() error {
	switch {
	case e.Repeat <= 0:
		return fmt.Errorf("%w: repeat must be positive, got %d", ErrInvalidConfig, e.Repeat)
	case e.Bottom <= 0:
		return fmt.Errorf("%w: bottom must be positive, got %d", ErrInvalidConfig, e.Bottom)
	case e.Source == nil:
		return fmt.Errorf("%w: no workload source", ErrInvalidConfig)
	case len(e.Variants) == 0:
		return fmt.Errorf("%w: no variants", ErrInvalidConfig)
	case e.GCPasses < 0:
		return fmt.Errorf("%w: gc passes must be non-negative, got %d", ErrInvalidConfig, e.GCPasses)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RESULTS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// SizeResult is everything one size produced.
type SizeResult struct {
	Table report.Table

	// Mismatches counts extractions that diverged from the reference,
	// summed over variants and repetitions.
	Mismatches int

	// Mutations counts variant runs after which the sample's fingerprint
	// had changed.
	Mutations int
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// EXECUTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Run executes every eligible size in order and hands each result to emit
// as soon as it is ready. Sizes below Bottom are skipped without invoking
// any variant. It returns how many sizes ran.
func (e *Experiment) Run(emit func(SizeResult)) int {
	ran := 0
	for _, n := range e.Sizes {
		if n < e.Bottom {
			debug.DropMessage("SIZE", "skipping "+utils.Itoa(n)+" (below bottom "+utils.Itoa(e.Bottom)+")")
			continue
		}
		emit(e.RunSize(n))
		ran++
		e.collect()
	}
	return ran
}

// RunSize benchmarks every variant Repeat times at size n.
func (e *Experiment) RunSize(n int) SizeResult {
	buf := arena.New(n)
	defer func() {
		if err := buf.Free(); err != nil {
			debug.DropError("ARENA", err)
		}
	}()

	runs := make([]*bench.Run, len(e.Variants))
	for i := range runs {
		runs[i] = bench.NewRun(e.Bottom)
		runs[i].Scratch = buf.Words()
	}

	var res SizeResult
	for rep := 0; rep < e.Repeat; rep++ {
		sample := e.Source.Sample(n)
		pristine := slices.Clone(sample)
		ref := workload.Reference(sample)
		fp := workload.FingerprintOf(sample)

		for i, v := range e.Variants {
			v.Fn(runs[i], sample)

			if err := verify.CheckN(ref, runs[i].Results, min(e.Bottom, n)); err != nil {
				debug.DropMessage("CHECK", v.Label+" results invalid: "+err.Error())
				res.Mismatches++
			}
			if workload.FingerprintOf(sample) != fp {
				debug.DropMessage("CHECK", v.Label+" modified its input sample")
				res.Mutations++
				copy(sample, pristine)
			}
		}
	}

	res.Table = report.Table{
		Size:   n,
		Labels: make([]string, len(e.Variants)),
		Means:  make([]bench.Timings, len(e.Variants)),
	}
	for i, v := range e.Variants {
		res.Table.Labels[i] = v.Label
		res.Table.Means[i] = runs[i].Timings.Mean(e.Repeat)
	}
	return res
}

// collect returns the previous size's garbage to the OS before the next size
// starts timing.
func (e *Experiment) collect() {
	if e.GCPasses == 0 {
		return
	}
	for i := 0; i < e.GCPasses; i++ {
		runtime.GC()
	}
	rtdebug.FreeOSMemory()
}
