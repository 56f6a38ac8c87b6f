package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/lzstr/errs"
)

type (
	// Method identifies how an envelope payload was produced. Its value is the
	// tag symbol written in front of the payload.
	Method uint8
	// CompressionType identifies a byte-level codec in the compress package.
	CompressionType uint8
)

const (
	MethodAuto Method = 0   // MethodAuto lets the selector choose per input.
	MethodLZSS Method = 'S' // MethodLZSS represents the seeded sliding-window coder.
	MethodLZW  Method = 'W' // MethodLZW represents the adaptive dictionary coder.
	MethodRaw  Method = 'N' // MethodRaw represents uncompressed passthrough.

	CompressionNone  CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd  CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2    CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4   CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionLZStr CompressionType = 0x5 // CompressionLZStr represents the lzstr text envelope.
	CompressionLZSS  CompressionType = 0x6 // CompressionLZSS represents classic 4 KiB-window LZSS over bytes.
)

// Tag returns the envelope tag symbol for m.
func (m Method) Tag() uint16 {
	return uint16(m)
}

// Valid reports whether m is a concrete method that can appear as a tag.
func (m Method) Valid() bool {
	switch m {
	case MethodLZSS, MethodLZW, MethodRaw:
		return true
	default:
		return false
	}
}

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "Auto"
	case MethodLZSS:
		return "LZSS"
	case MethodLZW:
		return "LZW"
	case MethodRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// ParseMethod parses a method name as accepted on the command line.
//
// Names are case-insensitive: "auto", "lzss", "lzw", "raw", or one of the
// tag letters "S", "W", "N".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return MethodAuto, nil
	case "lzss", "s":
		return MethodLZSS, nil
	case "lzw", "w":
		return MethodLZW, nil
	case "raw", "none", "n":
		return MethodRaw, nil
	default:
		return MethodAuto, fmt.Errorf("%w: %q", errs.ErrUnknownMethod, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZStr:
		return "LZStr"
	case CompressionLZSS:
		return "LZSS"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a byte codec name: "none", "lzstr", "lzss",
// "lz4", "s2" or "zstd", case-insensitive.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "lzstr":
		return CompressionLZStr, nil
	case "lzss":
		return CompressionLZSS, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownMethod, name)
	}
}
