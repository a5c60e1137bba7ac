package fse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestTables(t *testing.T, src []byte, tableLog int) ([]int16, int, *cTable, *dTable) {
	t.Helper()
	count, highest, err := Histogram(src, MaxSymbolValue)
	require.NoError(t, err)
	norm, err := Normalize(count[:highest+1], len(src), tableLog)
	require.NoError(t, err)
	ct, err := buildCTable(norm, highest, tableLog)
	require.NoError(t, err)
	dt, err := buildDTable(norm, highest, tableLog)
	require.NoError(t, err)
	return norm, highest, ct, dt
}

func TestBuildDTableCoversEveryCell(t *testing.T) {
	src := skewedSource(6000, 50, 3)
	norm, _, _, dt := buildTestTables(t, src, 10)

	// Every cell is assigned exactly once iff each symbol owns exactly
	// max(norm[s], 1) cells (norm[s] == -1 owns one, norm[s] == 0 none).
	cells := make([]int, len(norm))
	for _, e := range dt.entries {
		require.LessOrEqual(t, int(e.symbol), dt.maxSymbolValue)
		cells[e.symbol]++
	}
	for s, n := range norm {
		want := int(n)
		if n == -1 {
			want = 1
		}
		require.Equal(t, want, cells[s], "symbol %d owns the wrong number of cells", s)
	}
}

func TestBuildCTableProducesValidNextStates(t *testing.T) {
	src := skewedSource(6000, 50, 3)
	_, highest, ct, _ := buildTestTables(t, src, 10)

	tableSize := 1 << 10
	for s := 0; s <= highest; s++ {
		tt := ct.symbolTT[s]
		_ = tt
	}
	for _, ns := range ct.nextState {
		require.GreaterOrEqual(t, int(ns), tableSize)
		require.Less(t, int(ns), 2*tableSize)
	}
}

func TestBuildDTableRejectsMismatchedCounts(t *testing.T) {
	// A normalized distribution that sums to less than the table size
	// must be rejected rather than silently under-spreading.
	norm := []int16{4, 4} // sums to 8, but tableLog below asks for 32
	_, err := buildDTable(norm, 1, 5)
	require.Error(t, err)
	require.Equal(t, ErrCorruptionDetected, Kind(err))
}
