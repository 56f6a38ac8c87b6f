package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/lzstr"
	"github.com/arloliu/lzstr/encoding"
)

type decompressOptions struct {
	*rootOptions
	outputEncoding string
	base64         bool
}

func newDecompressCmd(root *rootOptions) *cobra.Command {
	opts := &decompressOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "decompress [file]",
		Short: "Decompress an lzstr envelope",
		Long: `Decompress an envelope produced by "lzstr compress".

Base64 input may contain line breaks and other whitespace.

Examples:
  lzstr decompress notes.lz
  lzstr decompress --base64=false --output-encoding latin1 raw.lz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputEncoding, "output-encoding", "e", "utf8",
		"output text encoding: "+textEncodings)
	cmd.Flags().BoolVar(&opts.base64, "base64", true,
		"read the envelope as base64")

	return cmd
}

func runDecompress(cmd *cobra.Command, args []string, opts *decompressOptions) error {
	data, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var units []uint16
	if opts.base64 {
		units, err = lzstr.DecompressFromBase64(string(data))
	} else {
		var env []uint16
		env, err = encoding.DecodeUTF8(data)
		if err == nil {
			units, err = lzstr.Decompress(env)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", source, err)
	}
	opts.logf(cmd, "decompressed %d bytes from %s into %d units\n", len(data), source, len(units))

	out, err := encodeText(units, opts.outputEncoding)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
