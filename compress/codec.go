package compress

import (
	"fmt"

	"github.com/arloliu/lzstr/format"
)

// Compressor turns a byte payload into its compressed form.
//
// Implementations return a slice owned by the caller and never modify the
// input. An empty input yields an empty output.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Corrupt input or input produced by another algorithm yields an error.
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for compressionType.
//
// The target names what the codec is for and only appears in the error
// returned for an unknown type.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionLZStr:
		return NewLZStrCompressor(), nil
	case format.CompressionLZSS:
		return NewLZSSCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:  NewNoOpCompressor(),
	format.CompressionZstd:  NewZstdCompressor(),
	format.CompressionS2:    NewS2Compressor(),
	format.CompressionLZ4:   NewLZ4Compressor(),
	format.CompressionLZStr: NewLZStrCompressor(),
	format.CompressionLZSS:  NewLZSSCompressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Types returns the built-in compression types in a stable order.
func Types() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZStr,
		format.CompressionLZSS,
		format.CompressionLZ4,
		format.CompressionS2,
		format.CompressionZstd,
	}
}
