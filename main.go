// ════════════════════════════════════════════════════════════════════════════════════════════════
// Container Min-Extraction Benchmark - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: ordercompare
// Component: Main Entry Point & Run Orchestration
//
// Description:
//   Times six container strategies on one workload: bulk-load N values, extract the smallest
//   Bottom of them, sort the original data. Prints one table per size to stdout.
//
// Architecture:
//   - Phase 0: Experiment assembly and validation
//   - Phase 1: Pre-run memory cleanup and thread pinning
//   - Phase 2: Size matrix, one table emitted per size as it completes
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"runtime"
	rtdebug "runtime/debug"

	"ordercompare/constants"
	"ordercompare/debug"
	"ordercompare/driver"
	"ordercompare/report"
	"ordercompare/utils"
	"ordercompare/workload"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func main() {
	// PHASE 0: Experiment assembly
	debug.DropMessage("INIT", "sizes "+utils.Itoa(len(constants.Sizes))+
		", repeat "+utils.Itoa(constants.Repeat)+
		", bottom "+utils.Itoa(constants.Bottom))

	exp := driver.Default(workload.NewRandomSource())
	if err := exp.Validate(); err != nil {
		panic(err.Error())
	}

	// PHASE 1: Start from a quiet heap on a single OS thread
	for i := 0; i < constants.GCPasses; i++ {
		runtime.GC()
	}
	rtdebug.FreeOSMemory()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// PHASE 2: Size matrix
	mismatches, mutations := 0, 0
	ran := exp.Run(func(res driver.SizeResult) {
		utils.PrintInfo(report.Render(res.Table))
		mismatches += res.Mismatches
		mutations += res.Mutations
	})

	debug.DropMessage("DONE", utils.Itoa(ran)+" sizes, "+
		utils.Itoa(mismatches)+" mismatches, "+
		utils.Itoa(mutations)+" mutations")
}
