// Package huf compresses a Huffman code-length (weight) table using the
// FSE coder, the way the reference library's HUF layer entropy-codes its
// header before the Huffman-coded body (see
// original_source/lib/huf.h). It does not implement Huffman coding
// itself; it only exercises fse.Compress/fse.Decompress as a library
// consumer over the small, skewed alphabet a weight table typically is.
package huf

import (
	fse "github.com/cpenaranda/gofse"
)

// CompressWeights compresses a Huffman weight table: one weight per
// symbol, typically small values clustered near tableLog/2 down to 0 for
// unused symbols.
func CompressWeights(weights []byte) ([]byte, fse.Outcome, error) {
	maxWeight := 0
	for _, w := range weights {
		if int(w) > maxWeight {
			maxWeight = int(w)
		}
	}
	return fse.Compress(nil, weights, maxWeight, 0)
}

// DecompressWeights reverses CompressWeights.
func DecompressWeights(frame []byte) ([]byte, error) {
	out, _, err := fse.Decompress(nil, frame)
	return out, err
}
