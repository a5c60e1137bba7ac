package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	fse "github.com/cpenaranda/gofse"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench <input>",
	Short: "Repeatedly compress and decompress a file as bytes, reporting ratio and timings (--wide is ignored)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "reading %s", args[0])
		}

		var (
			compressTotal   time.Duration
			decompressTotal time.Duration
			frame           []byte
			outcome         fse.Outcome
		)
		for i := 0; i < benchIterations; i++ {
			start := time.Now()
			frame, outcome, err = fse.Compress(frame[:0], src, maxSymbolValue, tableLog)
			if err != nil {
				return errors.Wrap(err, "compress")
			}
			compressTotal += time.Since(start)

			start = time.Now()
			if _, _, err = fse.Decompress(nil, frame); err != nil {
				return errors.Wrap(err, "decompress")
			}
			decompressTotal += time.Since(start)
		}

		log.WithFields(logrus.Fields{
			"srcBytes":       len(src),
			"frameBytes":     len(frame),
			"outcome":        outcome.String(),
			"iterations":     benchIterations,
			"avgCompress":    compressTotal / time.Duration(benchIterations),
			"avgDecompress":  decompressTotal / time.Duration(benchIterations),
			"ratioPercent":   100 * len(frame) / max(1, len(src)),
		}).Info("bench complete")
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 10, "number of compress/decompress rounds")
	rootCmd.AddCommand(benchCmd)
}
