package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/lzstr"
	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/format"
)

type compressOptions struct {
	*rootOptions
	inputEncoding string
	method        string
	base64        bool
	stats         bool
}

func newCompressCmd(root *rootOptions) *cobra.Command {
	opts := &compressOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "compress [file]",
		Short: "Compress text into an lzstr envelope",
		Long: `Compress a file, or stdin, into an lzstr envelope.

The envelope is printed as base64 followed by a newline. With --base64=false
the envelope itself is written as UTF-8.

Examples:
  lzstr compress notes.txt
  lzstr compress --method lzss --stats notes.txt
  lzstr compress --input-encoding utf16le dump.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputEncoding, "input-encoding", "e", "utf8",
		"input text encoding: "+textEncodings)
	cmd.Flags().StringVarP(&opts.method, "method", "m", "auto",
		"compression method: auto, lzss, lzw, raw")
	cmd.Flags().BoolVar(&opts.base64, "base64", true,
		"encode the envelope as base64")
	cmd.Flags().BoolVar(&opts.stats, "stats", false,
		"print compression statistics to stderr")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string, opts *compressOptions) error {
	method, err := format.ParseMethod(opts.method)
	if err != nil {
		return err
	}
	codec, err := lzstr.NewCodec(lzstr.WithMethod(method))
	if err != nil {
		return err
	}

	data, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	units, err := decodeText(data, opts.inputEncoding)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", source, err)
	}
	opts.logf(cmd, "read %d bytes (%d units) from %s\n", len(data), len(units), source)

	env, st := codec.CompressWithStats(units)
	if opts.stats {
		printStats(cmd, st)
	}

	raw := encoding.AppendUTF8(nil, env)
	out := cmd.OutOrStdout()
	if opts.base64 {
		_, err = fmt.Fprintln(out, encoding.EncodeBase64(raw))
	} else {
		_, err = out.Write(raw)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func printStats(cmd *cobra.Command, st lzstr.Stats) {
	cmd.PrintErrf("method:       %s\n", st.Method)
	cmd.PrintErrf("input:        %d units, %d bytes (xxh64 %016x)\n", st.InputUnits, st.InputBytes, st.InputDigest)
	cmd.PrintErrf("output:       %d units, %d bytes (xxh64 %016x)\n", st.OutputUnits, st.OutputBytes, st.OutputDigest)
	cmd.PrintErrf("ratio:        %.3f\n", st.Ratio)
}
