// Package report renders one data size's mean timings as a fixed-width table.
//
//	 Size:       1000         Vector  C-Style Array ...
//	         Load:     0.000001234    0.000000987 ...
//
// Every cell is right-aligned; seconds print with nine fractional digits.
package report

import (
	"fmt"
	"strings"

	"ordercompare/bench"
	"ordercompare/constants"
)

// Table is the averaged result of one data size.
type Table struct {
	Size   int
	Labels []string
	Means  []bench.Timings // parallel to Labels
}

// row is one metric line of the table.
type row struct {
	label string
	value func(bench.Timings) float64
}

var rows = [...]row{
	{"Load: ", func(t bench.Timings) float64 { return t.Load }},
	{"Unload: ", func(t bench.Timings) float64 { return t.Unload }},
	{"Load & Unload: ", bench.Timings.LoadUnload},
	{"Sort: ", func(t bench.Timings) float64 { return t.Sort }},
	{"Load & Sort: ", bench.Timings.LoadSort},
}

// Render formats t as a header line and one line per metric.
func Render(t Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s%*d", constants.SizeLabelWidth, "Size:", constants.SizeValueWidth, t.Size)
	for _, l := range t.Labels {
		fmt.Fprintf(&b, "%*s", constants.ColumnWidth, l)
	}
	b.WriteByte('\n')

	for _, r := range rows {
		fmt.Fprintf(&b, "%*s", constants.ColumnWidth, r.label)
		for _, m := range t.Means {
			fmt.Fprintf(&b, "%*.*f", constants.ColumnWidth, constants.Precision, r.value(m))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
