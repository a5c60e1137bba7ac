package fse

import "math/bits"

// spreadStep is the FSE_TABLESTEP constant: the fixed stride used to
// scatter each symbol's allocated cells roughly evenly across the table,
// stepping again whenever the walk lands past highThreshold so the
// low-probability region at the top of the table is skipped over. Grounded directly on the spread loop in
// original_source/lib/fse_decompress.c's FSE_buildDTable.
func spreadStep(tableSize int) int {
	return (tableSize >> 1) + (tableSize >> 3) + 3
}

// dtableEntry is one cell of a decoding table: the symbol that owns the
// cell, how many bits to pull off the stream to resolve the next state,
// and the base the pulled bits are added to.
type dtableEntry struct {
	newState uint16
	symbol   uint16
	nbBits   uint8
}

// dTable is a built decoding table for a fixed (normalizedCounter,
// tableLog) pair. fastMode reports whether every symbol's probability is
// below 2^(tableLog-1), i.e. no cell reads zero bits (spec.md section
// 4.C's fastMode note). decodeGeneric does not consult it; it always uses
// the zero-bit-safe readBits.
type dTable struct {
	tableLog       uint
	maxSymbolValue int
	fastMode       bool
	entries        []dtableEntry
}

// buildDTable lays down the low-probability (norm == -1) symbols from the
// top of the table downward, then spreads every other symbol's cells
// using the step walk, and finally derives each cell's nbBits/newState
// from a per-symbol running occurrence counter. This is a direct
// translation of FSE_buildDTable from original_source/lib/fse_decompress.c.
func buildDTable(norm []int16, maxSymbolValue, tableLog int) (*dTable, error) {
	if tableLog < MinTableLog || tableLog > MaxTableLog {
		return nil, newError(ErrTableLogTooLarge, "tableLog %d outside buildable range", tableLog)
	}
	tableSize := 1 << uint(tableLog)
	highThreshold := tableSize - 1

	symbolNext := make([]uint16, maxSymbolValue+1)
	entries := make([]dtableEntry, tableSize)
	fastMode := true
	largeLimit := int16(1 << uint(tableLog-1))

	for s := 0; s <= maxSymbolValue; s++ {
		if norm[s] == -1 {
			entries[highThreshold].symbol = uint16(s)
			highThreshold--
			symbolNext[s] = 1
		} else {
			if norm[s] >= largeLimit {
				fastMode = false
			}
			symbolNext[s] = uint16(norm[s])
		}
	}

	tableMask := tableSize - 1
	step := spreadStep(tableSize)
	position := 0
	for s := 0; s <= maxSymbolValue; s++ {
		for i := int16(0); i < norm[s]; i++ {
			entries[position].symbol = uint16(s)
			position = (position + step) & tableMask
			for position > highThreshold {
				position = (position + step) & tableMask
			}
		}
	}
	if position != 0 {
		return nil, newError(ErrCorruptionDetected, "normalized counts do not spread to fill the table")
	}

	for u := 0; u < tableSize; u++ {
		sym := entries[u].symbol
		nextState := symbolNext[sym]
		symbolNext[sym]++
		nbBits := uint8(tableLog) - uint8(bits.Len16(nextState)-1)
		entries[u].nbBits = nbBits
		entries[u].newState = (nextState << nbBits) - uint16(tableSize)
	}

	return &dTable{
		tableLog:       uint(tableLog),
		maxSymbolValue: maxSymbolValue,
		fastMode:       fastMode,
		entries:        entries,
	}, nil
}

// cTableSymbolTT is the per-symbol state-transition transform used by the
// encoder: given the encoder's current state, deltaNbBits and
// deltaFindState together derive how many bits to flush and which row of
// nextState to look up, without a table lookup keyed by state value.
type cTableSymbolTT struct {
	deltaFindState int32
	deltaNbBits    uint32
}

// cTable is a built encoding table: nextState holds, for every
// (symbol, occurrence-rank) pair in cumulative order, the post-transition
// state; symbolTT holds the per-symbol transform used to read nextState
// and decide the bit count to flush before the transition.
type cTable struct {
	tableLog       uint
	maxSymbolValue int
	nextState      []uint16
	symbolTT       []cTableSymbolTT
}

// buildCTable mirrors buildDTable's spread, but instead of a flat
// per-cell table it produces the nextState/symbolTT pair the encoder's
// cState.encode step consumes. Grounded on FSE_buildCTable_wksp, the
// encoder-side counterpart of FSE_buildDTable (no compress-side C source
// was retrieved for this pack; the cumulative-position and
// symbolTT-derivation formulas below are ported from the well-known
// structure of FSE_buildDTable, mirrored to the encode direction per
// spec.md section 4.C).
func buildCTable(norm []int16, maxSymbolValue, tableLog int) (*cTable, error) {
	if tableLog < MinTableLog || tableLog > MaxTableLog {
		return nil, newError(ErrTableLogTooLarge, "tableLog %d outside buildable range", tableLog)
	}
	tableSize := 1 << uint(tableLog)
	tableMask := tableSize - 1
	highThreshold := tableSize - 1

	cumul := make([]int32, maxSymbolValue+2)
	tableSymbol := make([]uint16, tableSize)

	for u := 1; u <= maxSymbolValue+1; u++ {
		if norm[u-1] == -1 {
			cumul[u] = cumul[u-1] + 1
			tableSymbol[highThreshold] = uint16(u - 1)
			highThreshold--
		} else {
			cumul[u] = cumul[u-1] + int32(norm[u-1])
		}
	}
	cumul[maxSymbolValue+1] = int32(tableSize) + 1

	step := spreadStep(tableSize)
	position := 0
	for symbol := 0; symbol <= maxSymbolValue; symbol++ {
		freq := norm[symbol]
		for i := int16(0); i < freq; i++ {
			tableSymbol[position] = uint16(symbol)
			position = (position + step) & tableMask
			for position > highThreshold {
				position = (position + step) & tableMask
			}
		}
	}
	if position != 0 {
		return nil, newError(ErrCorruptionDetected, "normalized counts do not spread to fill the table")
	}

	nextState := make([]uint16, tableSize)
	cursor := append([]int32(nil), cumul...)
	for u := 0; u < tableSize; u++ {
		s := tableSymbol[u]
		nextState[cursor[s]] = uint16(tableSize + u)
		cursor[s]++
	}

	symbolTT := make([]cTableSymbolTT, maxSymbolValue+1)
	total := int32(0)
	for s := 0; s <= maxSymbolValue; s++ {
		switch {
		case norm[s] == 0:
			symbolTT[s].deltaNbBits = uint32((tableLog+1)<<16) - uint32(tableSize)
		case norm[s] == -1, norm[s] == 1:
			symbolTT[s].deltaNbBits = uint32(tableLog<<16) - uint32(tableSize)
			symbolTT[s].deltaFindState = total - 1
			total++
		default:
			maxBitsOut := uint(tableLog) - uint(bits.Len16(uint16(norm[s]-1))-1)
			minStatePlus := uint32(norm[s]) << maxBitsOut
			symbolTT[s].deltaNbBits = uint32(maxBitsOut<<16) - minStatePlus
			symbolTT[s].deltaFindState = total - int32(norm[s])
			total += int32(norm[s])
		}
	}

	return &cTable{
		tableLog:       uint(tableLog),
		maxSymbolValue: maxSymbolValue,
		nextState:      nextState,
		symbolTT:       symbolTT,
	}, nil
}
