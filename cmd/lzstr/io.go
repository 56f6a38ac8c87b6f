package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/endian"
)

const textEncodings = "utf8, latin1, utf16le, utf16be"

// readInput reads the named file, or stdin when args is empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to read input: %w", err)
	}

	return data, args[0], nil
}

// utf16Engine returns the byte order of a "utf16le" or "utf16be" encoding name.
func utf16Engine(name string) (endian.EndianEngine, bool) {
	order, ok := strings.CutPrefix(strings.ReplaceAll(name, "-", ""), "utf16")
	if !ok {
		return nil, false
	}
	engine, err := endian.ParseEngine(order)

	return engine, err == nil
}

// decodeText converts raw bytes in the named encoding to code units.
func decodeText(data []byte, name string) ([]uint16, error) {
	name = strings.ToLower(name)
	if engine, ok := utf16Engine(name); ok {
		return encoding.DecodeUTF16(data, engine)
	}

	switch name {
	case "utf8", "utf-8":
		return encoding.DecodeUTF8(data)
	case "latin1", "iso-8859-1":
		return encoding.FromLatin1(data), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q (want one of %s)", name, textEncodings)
	}
}

// encodeText converts code units to bytes in the named encoding.
func encodeText(units []uint16, name string) ([]byte, error) {
	name = strings.ToLower(name)
	if engine, ok := utf16Engine(name); ok {
		return encoding.AppendUTF16(nil, units, engine), nil
	}

	switch name {
	case "utf8", "utf-8":
		return encoding.AppendUTF8(nil, units), nil
	case "latin1", "iso-8859-1":
		return encoding.ToLatin1(units)
	default:
		return nil, fmt.Errorf("unknown encoding %q (want one of %s)", name, textEncodings)
	}
}
