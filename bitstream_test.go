package fse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriterReaderRoundTrip(t *testing.T) {
	fields := []struct {
		value  uint64
		nbBits uint
	}{
		{0x1, 1}, {0x3, 2}, {0x0, 3}, {0x7f, 7}, {0x3ff, 10}, {0x1, 1}, {0xabcd, 16},
	}

	w, err := newBitWriter(make([]byte, 0, 64))
	require.NoError(t, err)
	for _, f := range fields {
		w.addBits(f.value, f.nbBits)
		require.NoError(t, w.flushBits())
	}
	n, err := w.close()
	require.NoError(t, err)
	require.Equal(t, n, len(w.bytes()))

	r, err := newBitReader(w.bytes())
	require.NoError(t, err)
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		got := r.readBits(f.nbBits)
		require.Equal(t, f.value&(uint64(1)<<f.nbBits-1), got)
		r.reload()
	}
}

func TestNewBitReaderRejectsMissingEndMark(t *testing.T) {
	_, err := newBitReader([]byte{0x00})
	require.Error(t, err)
	require.Equal(t, ErrSrcSizeWrong, Kind(err))
}

func TestNewBitReaderRejectsEmptyBuffer(t *testing.T) {
	_, err := newBitReader(nil)
	require.Error(t, err)
}

func TestLoadLE64PadsShortSlices(t *testing.T) {
	got := loadLE64([]byte{0x01, 0x02})
	require.Equal(t, uint64(0x0201), got)
}
