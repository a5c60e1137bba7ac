package fsewide

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	fse "github.com/cpenaranda/gofse"
)

func skewedWideSource(n, maxSymbolValue int, seed int64) []uint16 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint16, n)
	for i := range out {
		s := 0
		for rng.Intn(3) == 0 && s < maxSymbolValue {
			s++
		}
		out[i] = uint16(s)
	}
	return out
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	src := skewedWideSource(20000, 3000, 5)

	frame, outcome, err := Compress(nil, src, 0, 0)
	require.NoError(t, err)
	require.Equal(t, fse.OutcomeCompressed, outcome)

	back, gotOutcome, err := Decompress(nil, frame)
	require.NoError(t, err)
	require.Equal(t, outcome, gotOutcome)
	require.Equal(t, src, back)
}

func TestCompressRejectsAlphabetAboveWideMax(t *testing.T) {
	_, _, err := Compress(nil, []uint16{1, 2, 3}, fse.MaxSymbolValueWide+1, 0)
	require.Error(t, err)
}

func TestCompressSingleRepeatedSymbolIsRLE(t *testing.T) {
	src := make([]uint16, 500)
	for i := range src {
		src[i] = 777
	}
	frame, outcome, err := Compress(nil, src, 0, 0)
	require.NoError(t, err)
	require.Equal(t, fse.OutcomeRLE, outcome)

	back, _, err := Decompress(nil, frame)
	require.NoError(t, err)
	require.Equal(t, src, back)
}
