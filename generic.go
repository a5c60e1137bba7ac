package fse

import "encoding/binary"

// symbolWidth reports how many bytes a raw (uncoded) symbol of type S
// occupies in a frame. Only byte and uint16-based symbols are
// instantiated by this package, so a two-case switch on the zero value's
// dynamic type is enough; it is not a general-purpose reflection shim.
func symbolWidth[S Symbol]() int {
	var zero S
	switch any(zero).(type) {
	case byte:
		return 1
	default:
		return 2
	}
}

// writeSymbols appends src to dst verbatim: one byte per symbol for the
// byte path, little-endian uint16 per symbol for the wide path.
func writeSymbols[S Symbol](dst []byte, src []S) []byte {
	var zero S
	if _, ok := any(zero).(byte); ok {
		for _, s := range src {
			dst = append(dst, byte(s))
		}
		return dst
	}
	for _, s := range src {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}
	return dst
}

// readSymbols is the inverse of writeSymbols, reading exactly n symbols
// from the front of src.
func readSymbols[S Symbol](src []byte, n int) ([]S, error) {
	width := symbolWidth[S]()
	if len(src) < n*width {
		return nil, newError(ErrSrcSizeWrong, "raw frame too short for %d symbols", n)
	}
	out := make([]S, n)
	if width == 1 {
		for i := 0; i < n; i++ {
			out[i] = S(src[i])
		}
		return out, nil
	}
	for i := 0; i < n; i++ {
		out[i] = S(binary.LittleEndian.Uint16(src[i*2:]))
	}
	return out, nil
}

// CompressSymbols is the width-generic core Compress and fsewide.Compress
// both instantiate: Compress is CompressSymbols[byte], fsewide.Compress is
// CompressSymbols[uint16]. See fse.go's Compress for the frame layout and
// outcome semantics this implements.
func CompressSymbols[S Symbol](dst []byte, src []S, maxSymbolValue, tableLog int) ([]byte, Outcome, error) {
	if maxSymbolValue <= 0 {
		maxSymbolValue = MaxSymbolValue
		if symbolWidth[S]() == 2 {
			maxSymbolValue = MaxSymbolValueWide
		}
	}
	if len(src) == 0 {
		return append(dst[:0], tagRaw), OutcomeRaw, nil
	}

	count, highest, err := Histogram(src, maxSymbolValue)
	if err != nil {
		return nil, 0, err
	}
	if highest < 0 {
		return nil, 0, newError(ErrGenericError, "empty histogram for non-empty source")
	}
	if int(count[highest]) == len(src) {
		return rleFrameSymbols(dst, src[0], len(src)), OutcomeRLE, nil
	}

	if tableLog <= 0 {
		tableLog = OptimalTableLog(DefaultTableLog, len(src), highest)
	}

	norm, err := Normalize(count[:highest+1], len(src), tableLog)
	if err != nil {
		return rawFrameSymbols(dst, src), OutcomeRaw, nil
	}

	header, err := writeNCount(norm, tableLog, highest)
	if err != nil {
		return rawFrameSymbols(dst, src), OutcomeRaw, nil
	}

	ct, err := buildCTable(norm, highest, tableLog)
	if err != nil {
		return rawFrameSymbols(dst, src), OutcomeRaw, nil
	}

	body := make([]byte, 0, len(src)*symbolWidth[S]()+wordBytes+16)
	encoded, ok, err := encodeGeneric(src, ct, body)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return rawFrameSymbols(dst, src), OutcomeRaw, nil
	}

	out := append(dst[:0], tagCompressed)
	out = binary.AppendUvarint(out, uint64(highest))
	out = binary.AppendUvarint(out, uint64(len(src)))
	out = append(out, header...)
	out = append(out, encoded...)

	if len(out) >= len(src)*symbolWidth[S]()+1 {
		return rawFrameSymbols(dst, src), OutcomeRaw, nil
	}
	return out, OutcomeCompressed, nil
}

// DecompressSymbols is the inverse of CompressSymbols.
func DecompressSymbols[S Symbol](src []byte) ([]S, Outcome, error) {
	if len(src) == 0 {
		return nil, 0, newError(ErrSrcSizeWrong, "empty frame")
	}
	switch src[0] {
	case tagRaw:
		out, err := readSymbols[S](src[1:], len(src[1:])/symbolWidth[S]())
		return out, OutcomeRaw, err
	case tagRLE:
		sym, n, err := readRLESymbol[S](src)
		if err != nil {
			return nil, 0, err
		}
		out := make([]S, n)
		for i := range out {
			out[i] = sym
		}
		return out, OutcomeRLE, nil
	case tagCompressed:
		return decompressCompressedSymbols[S](src)
	default:
		return nil, 0, newError(ErrCorruptionDetected, "unrecognized frame tag %d", src[0])
	}
}

func decompressCompressedSymbols[S Symbol](src []byte) ([]S, Outcome, error) {
	if len(src) < 2 {
		return nil, 0, newError(ErrSrcSizeWrong, "truncated compressed frame")
	}
	highest64, hn := binary.Uvarint(src[1:])
	if hn <= 0 {
		return nil, 0, newError(ErrCorruptionDetected, "malformed maxSymbolValue varint")
	}
	highest := int(highest64)
	srcLen, n := binary.Uvarint(src[1+hn:])
	if n <= 0 {
		return nil, 0, newError(ErrCorruptionDetected, "malformed source-length varint")
	}
	rest := src[1+hn+n:]

	norm, tableLog, headerLen, err := readNCount(rest, highest)
	if err != nil {
		return nil, 0, err
	}
	body := rest[headerLen:]

	dt, err := buildDTable(norm, highest, tableLog)
	if err != nil {
		return nil, 0, err
	}

	out, err := decodeGeneric[S](dt, body, int(srcLen))
	if err != nil {
		return nil, 0, err
	}
	return out, OutcomeCompressed, nil
}

func rleFrameSymbols[S Symbol](dst []byte, sym S, n int) []byte {
	out := append(dst[:0], tagRLE)
	out = writeSymbols(out, []S{sym})
	return binary.AppendUvarint(out, uint64(n))
}

func readRLESymbol[S Symbol](src []byte) (S, int, error) {
	width := symbolWidth[S]()
	if len(src) < 1+width {
		return S(0), 0, newError(ErrSrcSizeWrong, "truncated rle frame")
	}
	syms, err := readSymbols[S](src[1:1+width], 1)
	if err != nil {
		return S(0), 0, err
	}
	n, c := binary.Uvarint(src[1+width:])
	if c <= 0 {
		return S(0), 0, newError(ErrCorruptionDetected, "malformed rle length varint")
	}
	return syms[0], int(n), nil
}

func rawFrameSymbols[S Symbol](dst []byte, src []S) []byte {
	out := append(dst[:0], tagRaw)
	return writeSymbols(out, src)
}
