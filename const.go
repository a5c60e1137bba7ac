package fse

const (
	// MinTableLog is the smallest tableLog this package will select or
	// accept.
	MinTableLog = 5
	// MaxTableLog is the largest tableLog OptimalTableLog will select
	// and Compress/Decompress will build tables for byte-wide symbols.
	MaxTableLog = 15
	// TableLogAbsMax is the largest tableLog representable in the
	// 4-bit NCount header field (tableLog-5, so header values 0..15
	// map to tableLog 5..20). Values above MaxTableLog are rejected by
	// the table builders even though the header can represent them.
	TableLogAbsMax = 20

	// DefaultTableLog is the maxLog CompressSymbols passes to
	// OptimalTableLog when the caller asks for tableLog 0, per spec.md
	// section 6's "tableLog=0 defaults to 11 (byte)".
	DefaultTableLog = 11

	// MaxSymbolValue is the largest symbol value the byte-wide path
	// supports (alphabet size 256).
	MaxSymbolValue = 255
	// MaxSymbolValueWide is the largest symbol value the 12-bit wide
	// path supports (alphabet size 4096), per the Non-goal excluding
	// alphabets above 4096 values.
	MaxSymbolValueWide = 4095
)
