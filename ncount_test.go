package fse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadNCountRoundTrip(t *testing.T) {
	src := skewedSource(12000, 80, 123)
	count, highest, err := Histogram(src, MaxSymbolValue)
	require.NoError(t, err)
	tableLog := OptimalTableLog(MaxTableLog, len(src), highest)
	norm, err := Normalize(count[:highest+1], len(src), tableLog)
	require.NoError(t, err)

	header, err := writeNCount(norm, tableLog, highest)
	require.NoError(t, err)
	require.NotEmpty(t, header)

	gotNorm, gotTableLog, consumed, err := readNCount(header, highest)
	require.NoError(t, err)
	require.Equal(t, tableLog, gotTableLog)
	require.LessOrEqual(t, consumed, len(header))
	require.Equal(t, norm, gotNorm)
}

func TestWriteNCountWithManyZeroRuns(t *testing.T) {
	norm := make([]int16, 64)
	norm[0] = -1
	norm[10] = 1
	norm[40] = 30
	// everything else stays 0, forcing long repeat-zero runs on both
	// sides of the sparse nonzero entries.
	var sum int32
	for _, n := range norm {
		if n == -1 {
			sum++
		} else {
			sum += int32(n)
		}
	}
	tableLog := bitLen(sum)

	header, err := writeNCount(norm, tableLog, len(norm)-1)
	require.NoError(t, err)

	got, gotLog, _, err := readNCount(header, len(norm)-1)
	require.NoError(t, err)
	require.Equal(t, tableLog, gotLog)
	require.Equal(t, norm, got)
}

func TestReadNCountRejectsEmptyHeader(t *testing.T) {
	_, _, _, err := readNCount(nil, 10)
	require.Error(t, err)
	require.Equal(t, ErrSrcSizeWrong, Kind(err))
}

// bitLen returns the smallest n with 1<<n == v, for v a power of two.
func bitLen(v int32) int {
	n := 0
	for (int32(1) << uint(n)) < v {
		n++
	}
	return n
}
