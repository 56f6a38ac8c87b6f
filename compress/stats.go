package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/lzstr/format"
	"github.com/arloliu/lzstr/internal/hash"
)

// CompressionStats describes one measured round trip through a codec.
type CompressionStats struct {
	// Algorithm identifies the codec measured.
	Algorithm format.CompressionType

	OriginalSize   int64
	CompressedSize int64

	CompressionTimeNs   int64
	DecompressionTimeNs int64

	// Digest is the xxHash64 of the original data. The round trip is only
	// reported when the decompressed digest matches it.
	Digest uint64
}

// CompressionRatio returns compressed size / original size, or 0 for empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage. It is negative when
// the codec expanded the data.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses and decompresses data with the built-in codec for
// compressionType and verifies the round trip.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	return MeasureCodec(codec, compressionType, data)
}

// MeasureCodec is Measure for an arbitrary codec.
func MeasureCodec(codec Codec, compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    compressionType,
		OriginalSize: int64(len(data)),
		Digest:       hash.Bytes(data),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", compressionType, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", compressionType, err)
	}

	if got := hash.Bytes(restored); got != stats.Digest || len(restored) != len(data) {
		return stats, fmt.Errorf("%s round trip mismatch: digest %016x, want %016x", compressionType, got, stats.Digest)
	}

	return stats, nil
}
