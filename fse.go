package fse

// Outcome reports which framing Compress chose for a block. Compress can
// legitimately decide not to entropy-code src at all: a single repeated
// byte is stored as OutcomeRLE (symbol plus length, no table), and a
// source that would not shrink is stored as OutcomeRaw (copied verbatim
// behind a one-byte tag). Both are valid, cheaper-to-decode outcomes
// rather than errors.
type Outcome int

const (
	OutcomeCompressed Outcome = iota
	OutcomeRLE
	OutcomeRaw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRLE:
		return "rle"
	case OutcomeRaw:
		return "raw"
	default:
		return "compressed"
	}
}

const (
	tagCompressed = 0
	tagRLE        = 1
	tagRaw        = 2
)

// Compress entropy-codes src into a self-describing frame. maxSymbolValue
// of 0 defaults to MaxSymbolValue (255); tableLog of 0 asks
// OptimalTableLog to pick one. dst, if it has spare capacity, is reused
// as the returned frame's backing array. Compress is the byte-path
// instantiation of the width-generic CompressSymbols; fsewide.Compress is
// the 12-bit instantiation of the same core.
func Compress(dst, src []byte, maxSymbolValue, tableLog int) ([]byte, Outcome, error) {
	return CompressSymbols(dst, src, maxSymbolValue, tableLog)
}

// Decompress reverses Compress. It is the byte-path instantiation of the
// width-generic DecompressSymbols.
func Decompress(dst, src []byte) ([]byte, Outcome, error) {
	out, outcome, err := DecompressSymbols[byte](src)
	if err != nil {
		return nil, 0, err
	}
	return append(dst[:0], out...), outcome, nil
}

// Counts is a built, ready-to-use normalized distribution: the signed
// per-symbol weights and the tableLog they were built for. It is the
// value NormalizeCounts hands back to callers (such as tests validating
// the normalization-sum property) that want table-building inputs without
// going through Compress.
type Counts struct {
	Norm           []int16
	TableLog       int
	MaxSymbolValue int
}

// NormalizeCounts runs table-log selection (when tableLog <= 0) and
// normalization over a caller-supplied histogram, without coding
// anything. maxSymbolValue must match len(count)-1.
func NormalizeCounts(count []uint32, srcSize int, tableLog, maxSymbolValue int) (Counts, error) {
	if len(count) != maxSymbolValue+1 {
		return Counts{}, newError(ErrGenericError, "count length %d does not match maxSymbolValue+1 %d", len(count), maxSymbolValue+1)
	}
	if tableLog <= 0 {
		tableLog = OptimalTableLog(MaxTableLog, srcSize, maxSymbolValue)
	}
	norm, err := Normalize(count, srcSize, tableLog)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Norm: norm, TableLog: tableLog, MaxSymbolValue: maxSymbolValue}, nil
}
