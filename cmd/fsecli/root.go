package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose        bool
	maxSymbolValue int
	tableLog       int
	wide           bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "fsecli",
	Short: "Drive the FSE entropy coder over files",
	Long: `fsecli compresses and decompresses files with the FSE entropy coder,
and measures its own timings and ratio for quick sanity checks.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().IntVar(&maxSymbolValue, "max-symbol", 0, "maximum symbol value (0 = default)")
	rootCmd.PersistentFlags().IntVar(&tableLog, "table-log", 0, "tableLog to use (0 = pick automatically)")
	rootCmd.PersistentFlags().BoolVar(&wide, "wide", false, "treat input as little-endian uint16 symbols (fsewide) instead of bytes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fsecli failed")
		os.Exit(1)
	}
}
