package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordercompare/bench"
)

func sampleTable() Table {
	return Table{
		Size:   1000,
		Labels: []string{"Vector", "Heap"},
		Means: []bench.Timings{
			{Load: 0.000001, Unload: 0.000002, Sort: 0.5},
			{Load: 1.25, Unload: 0.125, Sort: 0},
		},
	}
}

func TestRenderLayout(t *testing.T) {
	out := Render(sampleTable())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, " Size:     1000         Vector           Heap", lines[0])
	assert.Equal(t, "         Load:     0.000001000    1.250000000", lines[1])
	assert.Equal(t, "       Unload:     0.000002000    0.125000000", lines[2])
	assert.Equal(t, "Load & Unload:     0.000003000    1.375000000", lines[3])
	assert.Equal(t, "         Sort:     0.500000000    0.000000000", lines[4])
	assert.Equal(t, "  Load & Sort:     0.500001000    1.250000000", lines[5])
}

func TestRenderColumnWidths(t *testing.T) {
	out := Render(sampleTable())
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if i == 0 {
			assert.Len(t, line, 6+9+2*15)
			continue
		}
		assert.Len(t, line, 15+2*15, "line %d", i)
	}
}

func TestRenderWideValueOverflowsCell(t *testing.T) {
	tbl := Table{Size: 10, Labels: []string{"X"}, Means: []bench.Timings{{Load: 123456.5}}}
	out := Render(tbl)
	assert.Contains(t, out, "123456.500000000", "wide values widen the cell instead of truncating")
}

func TestRenderNoColumns(t *testing.T) {
	out := Render(Table{Size: 100})
	assert.True(t, strings.HasPrefix(out, " Size:      100\n"))
	assert.Equal(t, 6, strings.Count(out, "\n"))
}
