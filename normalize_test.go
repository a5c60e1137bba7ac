package fse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogramTracksHighestSymbol(t *testing.T) {
	src := []byte{0, 2, 2, 5, 5, 5}
	count, highest, err := Histogram(src, MaxSymbolValue)
	require.NoError(t, err)
	require.Equal(t, 5, highest)
	require.Equal(t, uint32(1), count[0])
	require.Equal(t, uint32(2), count[2])
	require.Equal(t, uint32(3), count[5])
}

func TestHistogramRejectsSymbolAboveMax(t *testing.T) {
	_, _, err := Histogram([]byte{0, 1, 200}, 10)
	require.Error(t, err)
	require.Equal(t, ErrMaxSymbolValueTooLarge, Kind(err))
}

func TestOptimalTableLogStaysWithinBounds(t *testing.T) {
	for _, srcSize := range []int{10, 1000, 1 << 20} {
		for _, maxSV := range []int{1, 31, 255} {
			got := OptimalTableLog(MaxTableLog, srcSize, maxSV)
			require.GreaterOrEqual(t, got, MinTableLog)
			require.LessOrEqual(t, got, MaxTableLog)
		}
	}
}

func TestNormalizeSumsToTableSize(t *testing.T) {
	src := skewedSource(8000, 60, 99)
	count, highest, err := Histogram(src, MaxSymbolValue)
	require.NoError(t, err)

	tableLog := OptimalTableLog(MaxTableLog, len(src), highest)
	norm, err := Normalize(count[:highest+1], len(src), tableLog)
	require.NoError(t, err)

	var sum int32
	for _, n := range norm {
		if n == -1 {
			sum++
		} else {
			sum += int32(n)
		}
	}
	require.Equal(t, int32(1)<<uint(tableLog), sum)
}

func TestNormalizeRejectsSingleSymbolSource(t *testing.T) {
	count := []uint32{100}
	_, err := Normalize(count, 100, DefaultTableLog)
	require.Error(t, err)
}

func TestNormalizeFallbackAlsoSumsToTableSize(t *testing.T) {
	// One dominant symbol plus 32 single-occurrence symbols, fed to
	// normalizeFallback directly (Normalize rejects it: more -1 slots
	// than its cap allows). 33 occurring symbols need more than the 32
	// cells of MinTableLog, so the table is one step larger.
	count := make([]uint32, 33)
	count[0] = 1000
	for i := 1; i < len(count); i++ {
		count[i] = 1
	}
	srcSize := int(0)
	for _, c := range count {
		srcSize += int(c)
	}
	tableLog := MinTableLog + 1

	norm, err := normalizeFallback(count, srcSize, tableLog)
	require.NoError(t, err)

	var sum int32
	for _, n := range norm {
		if n == -1 {
			sum++
		} else {
			sum += int32(n)
		}
	}
	require.Equal(t, int32(1)<<uint(tableLog), sum)
}
