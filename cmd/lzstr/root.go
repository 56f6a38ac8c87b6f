package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lzstr",
		Short: "Compress text into printable, escape-safe strings",
		Long: `lzstr compresses text into a restricted symbol alphabet that can be embedded
in string literals without escaping, and back.

Each input is compressed with seeded LZSS or LZW, whichever is smaller, and
stored as-is when neither helps. The output is base64 by default.

Examples:
  # Compress a file to base64
  lzstr compress notes.txt

  # Round trip through stdin
  echo "hello hello hello" | lzstr compress | lzstr decompress

  # Compare against zstd, s2 and lz4
  lzstr compare notes.txt`,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"print progress information to stderr")

	rootCmd.AddCommand(
		newCompressCmd(opts),
		newDecompressCmd(opts),
		newCompareCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) logf(cmd *cobra.Command, format string, args ...any) {
	if o.verbose {
		cmd.PrintErrf(format, args...)
	}
}
