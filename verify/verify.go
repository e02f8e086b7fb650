// Package verify checks an extraction result against a sorted reference.
package verify

import (
	"errors"
	"fmt"

	"ordercompare/constants"
	"ordercompare/utils"
)

// ErrShort is returned when either sequence holds fewer than Bottom values.
var ErrShort = errors.New("verify: sequence shorter than bottom")

// MismatchError describes the first position where the extraction diverged
// from the reference.
type MismatchError struct {
	Index    int
	Expected uint64
	Actual   uint64
}

func (e *MismatchError) Error() string {
	return "expected " + utils.Utoa(e.Expected) + " at index " + utils.Itoa(e.Index) +
		" but got " + utils.Utoa(e.Actual)
}

// Check compares the first constants.Bottom values of reference and got.
// It returns nil on a full match, a *MismatchError on the first divergence,
// or ErrShort when either side is too short to compare.
func Check(reference, got []uint64) error {
	return CheckN(reference, got, constants.Bottom)
}

// CheckN is Check with an explicit depth.
func CheckN(reference, got []uint64, n int) error {
	if len(reference) < n || len(got) < n {
		return fmt.Errorf("%w: need %d, reference has %d, result has %d",
			ErrShort, n, len(reference), len(got))
	}
	for i := 0; i < n; i++ {
		if reference[i] != got[i] {
			return &MismatchError{Index: i, Expected: reference[i], Actual: got[i]}
		}
	}
	return nil
}
