package fse

// cState is one of the two interleaved encoder states threaded through a
// single bitWriter (two for both the byte and the wide path).
type cState struct {
	ct    *cTable
	value uint32
}

// newCStateFirstSymbol primes a state directly from a symbol instead of
// the table's default starting value, the way the reference encoder's
// FSE_initCState2 seeds the very first state transition for free (no
// bits written) before the main encode loop begins.
func newCStateFirstSymbol(ct *cTable, symbol int) *cState {
	tt := ct.symbolTT[symbol]
	nbBitsOut := (tt.deltaNbBits + (1 << 15)) >> 16
	value := (nbBitsOut << 16) - tt.deltaNbBits
	idx := int32(value>>nbBitsOut) + tt.deltaFindState
	return &cState{ct: ct, value: uint32(ct.nextState[idx])}
}

// encode writes the bits needed to transition out of the current state on
// symbol, then moves the state forward.
func (c *cState) encode(w *bitWriter, symbol int) {
	tt := c.ct.symbolTT[symbol]
	nbBitsOut := (c.value + tt.deltaNbBits) >> 16
	w.addBits(uint64(c.value), uint(nbBitsOut))
	idx := int32(c.value>>nbBitsOut) + tt.deltaFindState
	c.value = uint32(c.ct.nextState[idx])
}

// flush writes the state's raw value, one full tableLog worth of bits,
// with no transition. Called once per state at the end of a stream so the
// decoder can recover the final states before it has read anything.
func (c *cState) flush(w *bitWriter) {
	w.addBits(uint64(c.value), c.ct.tableLog)
}

// encodeGeneric right-to-left encodes src into dst using ct, interleaving
// two states the way the reference FSE_compress_usingCTable does. It
// always flushes after every pair of symbols rather than batching four,
// which only changes how often bytes are drained from the bit register,
// not the bits those states emit (see DESIGN.md). Returns false if src is
// too short to be worth entropy coding (srcSize <= 2), matching the
// reference's early return.
func encodeGeneric[S Symbol](src []S, ct *cTable, dst []byte) ([]byte, bool, error) {
	n := len(src)
	if n <= 2 {
		return nil, false, nil
	}
	w, err := newBitWriter(dst)
	if err != nil {
		return nil, false, err
	}

	i := n
	var c1, c2 *cState
	if n&1 == 1 {
		i--
		c1 = newCStateFirstSymbol(ct, int(src[i]))
		i--
		c2 = newCStateFirstSymbol(ct, int(src[i]))
		i--
		c1.encode(w, int(src[i]))
		if err := w.flushBits(); err != nil {
			return nil, false, err
		}
	} else {
		i--
		c2 = newCStateFirstSymbol(ct, int(src[i]))
		i--
		c1 = newCStateFirstSymbol(ct, int(src[i]))
	}

	for i > 0 {
		i--
		c2.encode(w, int(src[i]))
		i--
		c1.encode(w, int(src[i]))
		if err := w.flushBits(); err != nil {
			return nil, false, err
		}
	}

	c2.flush(w)
	c1.flush(w)
	total, err := w.close()
	if err != nil {
		return nil, false, err
	}
	return w.bytes()[:total], true, nil
}

// decodeGeneric is the inverse of encodeGeneric: it drives two
// interleaved states left to right, pulling dstLen symbols total,
// alternating which state produces the next symbol exactly as the
// reference FSE_decompress_usingDTable_generic's unrolled loop does
// (here written with a reload after every symbol rather than batched,
// for the same reason encodeGeneric flushes every pair; see DESIGN.md).
// The final state-update per interleaved lane is skipped rather than
// read, since it would otherwise consume bits that encodeGeneric's free
// initial priming never wrote.
func decodeGeneric[S Symbol](dt *dTable, src []byte, dstLen int) ([]S, error) {
	if dstLen == 0 {
		return nil, nil
	}
	br, err := newBitReader(src)
	if err != nil {
		return nil, err
	}

	state1 := uint32(br.readBits(dt.tableLog))
	br.reload()
	state2 := uint32(br.readBits(dt.tableLog))
	br.reload()

	// Exactly two symbols (the ones each state was primed with, for free,
	// before the first bit was ever written) need no predecessor recovered.
	// Every other symbol does. Counting updates down from dstLen-2 lets the
	// last iteration peek both final states without reading bits that were
	// never written, instead of guessing which of the two interleaved
	// states happens to own the tail based on src length parity.
	updatesRemaining := dstLen - 2

	dst := make([]S, 0, dstLen)
	for len(dst) < dstLen {
		e := dt.entries[state1]
		dst = append(dst, S(e.symbol))
		if len(dst) >= dstLen {
			break
		}
		if updatesRemaining > 0 {
			state1 = uint32(e.newState) + uint32(br.readBits(uint(e.nbBits)))
			if br.reload() == dStreamOverflow {
				return nil, newError(ErrCorruptionDetected, "bitstream overflow while decoding")
			}
			updatesRemaining--
		}

		e2 := dt.entries[state2]
		dst = append(dst, S(e2.symbol))
		if len(dst) >= dstLen {
			break
		}
		if updatesRemaining > 0 {
			state2 = uint32(e2.newState) + uint32(br.readBits(uint(e2.nbBits)))
			if br.reload() == dStreamOverflow {
				return nil, newError(ErrCorruptionDetected, "bitstream overflow while decoding")
			}
			updatesRemaining--
		}
	}
	return dst, nil
}
