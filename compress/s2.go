package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the speed-oriented baseline in the registry.
//
// Each call produces one self-contained S2 block (s2.Encode), not the
// framed stream format, so outputs carry no checksum. The compare command
// reports it next to lzstr.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns the stateless S2 baseline codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a block produced by Compress. Corrupt input yields
// the s2 package error unchanged.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
