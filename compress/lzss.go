package compress

import "github.com/blacktop/lzss"

// LZSSCompressor wraps classic byte-oriented LZSS (4 KiB ring buffer,
// 18-byte maximum match). It is the textbook ancestor of the lzstr LZSS
// engine and serves as its baseline.
//
// The format has no header or checksum, so Decompress cannot detect corrupt
// input.
type LZSSCompressor struct{}

var _ Codec = (*LZSSCompressor)(nil)

// NewLZSSCompressor creates a byte LZSS codec.
func NewLZSSCompressor() LZSSCompressor {
	return LZSSCompressor{}
}

// Compress encodes data.
func (c LZSSCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return lzss.Compress(data), nil
}

// Decompress decodes data.
func (c LZSSCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return lzss.Decompress(data), nil
}
