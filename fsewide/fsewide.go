// Package fsewide is the 12-bit-wide-symbol instantiation of the core FSE
// codec in github.com/cpenaranda/gofse: wherever the byte-wide package
// works over []byte, this package works over []uint16 with values
// restricted to 0..4095, for alphabets a single byte cannot address
// (pre-tokenized offsets, lengths, or other small-integer side channels
// upstream of entropy coding).
//
// It adds no algorithm of its own; Compress and Decompress are direct
// instantiations of fse.CompressSymbols/fse.DecompressSymbols at
// uint16, which is exactly what spec.md section 9's "parameter carrying
// the symbol-width capability" design note calls for: one shared core,
// not a second copy of the spread/build/coder logic.
package fsewide

import (
	"github.com/pkg/errors"

	fse "github.com/cpenaranda/gofse"
)

// Compress entropy-codes src (each value 0..fse.MaxSymbolValueWide) into a
// self-describing frame, the wide-symbol counterpart of fse.Compress.
// maxSymbolValue of 0 defaults to fse.MaxSymbolValueWide (4095); tableLog
// of 0 asks fse.OptimalTableLog to pick one.
func Compress(dst []byte, src []uint16, maxSymbolValue, tableLog int) ([]byte, fse.Outcome, error) {
	if maxSymbolValue > fse.MaxSymbolValueWide {
		return nil, 0, errors.Errorf("fsewide: maxSymbolValue %d exceeds %d", maxSymbolValue, fse.MaxSymbolValueWide)
	}
	return fse.CompressSymbols(dst, src, maxSymbolValue, tableLog)
}

// Decompress reverses Compress.
func Decompress(dst []uint16, src []byte) ([]uint16, fse.Outcome, error) {
	out, outcome, err := fse.DecompressSymbols[uint16](src)
	if err != nil {
		return nil, 0, err
	}
	return append(dst[:0], out...), outcome, nil
}
