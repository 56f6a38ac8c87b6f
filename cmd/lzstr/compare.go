package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/lzstr/compress"
	"github.com/arloliu/lzstr/format"
)

type compareOptions struct {
	*rootOptions
	codecs []string
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &compareOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "Compare lzstr with general-purpose byte codecs",
		Long: `Compress the input bytes with every selected codec, verify the round trip
and print sizes, ratios and timings.

The lzstr codec reads the bytes as Latin-1 and emits UTF-8.

Examples:
  lzstr compare notes.txt
  lzstr compare --codecs lzstr,zstd notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.codecs, "codecs", "c", nil,
		"codecs to compare (none, lzstr, lzss, lz4, s2, zstd); default all")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, opts *compareOptions) error {
	types := compress.Types()
	if len(opts.codecs) > 0 {
		types = types[:0:0]
		for _, name := range opts.codecs {
			ct, err := format.ParseCompressionType(name)
			if err != nil {
				return err
			}
			types = append(types, ct)
		}
	}

	data, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts.logf(cmd, "comparing %d codecs on %d bytes from %s\n", len(types), len(data), source)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "codec\tsize\tratio\tsaved\tcompress\tdecompress\t")
	for _, ct := range types {
		st, err := compress.Measure(ct, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.1f%%\t%s\t%s\t\n",
			ct, st.CompressedSize, st.CompressionRatio(), st.SpaceSavings(),
			time.Duration(st.CompressionTimeNs), time.Duration(st.DecompressionTimeNs))
	}

	return tw.Flush()
}
