package compress

import (
	"github.com/arloliu/lzstr"
	"github.com/arloliu/lzstr/encoding"
)

// LZStrCompressor adapts the lzstr text codec to byte payloads.
//
// Input bytes are read as Latin-1, one code unit each, and the envelope is
// returned as UTF-8. Bytes above 0x7F cost two bytes in the output when they
// are stored as literals, so binary payloads may grow.
type LZStrCompressor struct {
	codec *lzstr.Codec
}

var _ Codec = (*LZStrCompressor)(nil)

// NewLZStrCompressor creates an lzstr codec with automatic method selection.
func NewLZStrCompressor() LZStrCompressor {
	codec, _ := lzstr.NewCodec()
	return LZStrCompressor{codec: codec}
}

// NewLZStrCompressorWithCodec creates an lzstr codec backed by codec.
func NewLZStrCompressorWithCodec(codec *lzstr.Codec) LZStrCompressor {
	return LZStrCompressor{codec: codec}
}

// Compress returns the UTF-8 envelope for data.
func (c LZStrCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	env := c.codec.CompressBytes(data)

	return encoding.AppendUTF8(make([]byte, 0, encoding.UTF8Len(env)), env), nil
}

// Decompress decodes a UTF-8 envelope back to bytes. An envelope whose content
// is not Latin-1 yields an error wrapping errs.ErrNotLatin1.
func (c LZStrCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	env, err := encoding.DecodeUTF8(data)
	if err != nil {
		return nil, err
	}

	return c.codec.DecompressBytes(env)
}
