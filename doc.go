// Package fse implements Finite State Entropy (tabled ANS) compression and
// decompression of small-alphabet integer symbol streams.
//
// # Overview
//
// FSE is a tabled variant of Asymmetric Numeral Systems (ANS): it learns a
// normalized probability distribution from a symbol histogram, spreads that
// distribution over a power-of-two-sized state table, and drives a single
// integer state through the table while emitting a variable number of bits
// per symbol. Unlike Huffman coding it is not restricted to integral bit
// counts per symbol, so it gets closer to the theoretical entropy of the
// source while keeping decoding a small, branch-light table lookup.
//
// # When to Use FSE
//
// FSE is a building block for general-purpose compressors (zstd, lzfse) and
// is well suited to:
//   - Byte streams with skewed symbol distributions (residuals, literals,
//     coefficients after a transform)
//   - Small control alphabets up to 4096 values (offsets, lengths, headers)
//   - Situations where decode speed matters as much as ratio
//
// # When NOT to Use FSE
//
// FSE is not suitable for:
//   - Already-random or encrypted data (incompressible)
//   - Alphabets larger than 4096 symbols
//   - Streaming across buffer boundaries (this package compresses whole
//     in-memory blocks only; see the Non-goals in the package-level notes
//     below)
//
// # Basic Usage
//
//	src := []byte("abracadabra")
//	frame, outcome, err := fse.Compress(nil, src, 0, 0)
//	if err != nil {
//	    // handle error
//	}
//	// frame is self-describing: Decompress doesn't need outcome back.
//	back, _, err := fse.Decompress(nil, frame)
//	_ = outcome // OutcomeCompressed, OutcomeRLE, or OutcomeRaw, for telemetry
//
// # Non-goals
//
// This package does not provide general compression framing, concurrent
// multi-block pipelines, chunk-by-chunk streaming, dictionary training, or
// adaptive statistics. Callers that need those build them on top using the
// Compress/Decompress primitives exposed here, the same way the original
// C library's CLI driver and block framing are layered on top of its FSE
// core.
package fse
