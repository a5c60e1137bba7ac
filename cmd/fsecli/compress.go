package main

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fse "github.com/cpenaranda/gofse"
	"github.com/cpenaranda/gofse/fsewide"
)

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "Entropy-code a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %s", args[0])
		}

		var (
			frame   []byte
			outcome fse.Outcome
		)
		if wide {
			symbols, werr := bytesToUint16(src)
			if werr != nil {
				return werr
			}
			frame, outcome, err = fsewide.Compress(nil, symbols, maxSymbolValue, tableLog)
		} else {
			frame, outcome, err = fse.Compress(nil, src, maxSymbolValue, tableLog)
		}
		if err != nil {
			return errors.Wrap(err, "compress")
		}

		log.WithFields(logFields(len(src), len(frame), outcome)).Debug("compressed")

		if err := os.WriteFile(args[1], frame, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}

func bytesToUint16(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, errors.New("wide input length must be a multiple of 2 bytes")
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out, nil
}
