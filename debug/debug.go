// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go - Tagged cold-path diagnostics on stderr
//
// Purpose:
//   - Reports stopwatch misuse, extraction mismatches and run progress.
//   - Keeps stdout reserved for the comparison table.
//
// Notes:
//   - Avoids fmt.Sprintf; lines are built by concatenation and written raw.
//   - One line per call, always newline-terminated.
//
// ⚠️ Never invoke inside a timed region; diagnostics perturb measurements.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "ordercompare/utils"

// DropError logs "<prefix>: <err>" or just "<prefix>" when err is nil.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs "<prefix>: <message>".
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
