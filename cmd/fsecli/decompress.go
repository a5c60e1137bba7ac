package main

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fse "github.com/cpenaranda/gofse"
	"github.com/cpenaranda/gofse/fsewide"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "Reverse a frame written by compress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %s", args[0])
		}

		var out []byte
		if wide {
			symbols, _, werr := fsewide.Decompress(nil, frame)
			if werr != nil {
				return errors.Wrap(werr, "decompress")
			}
			out = uint16ToBytes(symbols)
		} else {
			out, _, err = fse.Decompress(nil, frame)
			if err != nil {
				return errors.Wrap(err, "decompress")
			}
		}

		if err := os.WriteFile(args[1], out, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}

func uint16ToBytes(symbols []uint16) []byte {
	out := make([]byte, len(symbols)*2)
	for i, s := range symbols {
		binary.LittleEndian.PutUint16(out[i*2:], s)
	}
	return out
}
