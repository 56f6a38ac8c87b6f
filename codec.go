package lzstr

import (
	"fmt"

	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/errs"
	"github.com/arloliu/lzstr/format"
	"github.com/arloliu/lzstr/internal/lzss"
	"github.com/arloliu/lzstr/internal/lzw"
	"github.com/arloliu/lzstr/internal/options"
	"github.com/arloliu/lzstr/internal/pool"
)

// Selector defaults.
const (
	// DefaultSampleSize is how many leading units the selector inspects.
	DefaultSampleSize = 192
	// DefaultLowDiversity is the distinct-unit count at or below which long
	// inputs prefer LZSS.
	DefaultLowDiversity = 26
	// DefaultHighDiversity is the distinct-unit count at or above which long
	// inputs prefer LZSS.
	DefaultHighDiversity = 192
)

// Codec compresses code-unit sequences into tagged envelopes.
//
// A Codec holds only its configuration and is safe for concurrent use.
type Codec struct {
	method        format.Method
	sampleSize    int
	lowDiversity  int
	highDiversity int
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithMethod forces every input through one method.
//
// A forced LZSS or LZW method is used even when its output is larger than the
// input. format.MethodAuto restores automatic selection.
func WithMethod(method format.Method) CodecOption {
	return options.New(func(c *Codec) error {
		if method != format.MethodAuto && !method.Valid() {
			return fmt.Errorf("%w: method 0x%02x", errs.ErrInvalidOption, uint8(method))
		}
		c.method = method

		return nil
	})
}

// WithAutoMethod restores automatic method selection after an earlier
// WithMethod.
func WithAutoMethod() CodecOption {
	return options.NoError(func(c *Codec) {
		c.method = format.MethodAuto
	})
}

// WithSampleSize sets how many leading units the selector inspects. Inputs no
// longer than the sample prefer LZW.
func WithSampleSize(n int) CodecOption {
	return options.New(func(c *Codec) error {
		if n <= 0 {
			return fmt.Errorf("%w: sample size %d", errs.ErrInvalidOption, n)
		}
		c.sampleSize = n

		return nil
	})
}

// WithDiversityThresholds sets the distinct-unit counts that make long inputs
// prefer LZSS: at most low, or at least high.
func WithDiversityThresholds(low, high int) CodecOption {
	return options.New(func(c *Codec) error {
		if low < 0 || high <= low {
			return fmt.Errorf("%w: diversity thresholds [%d, %d]", errs.ErrInvalidOption, low, high)
		}
		c.lowDiversity = low
		c.highDiversity = high

		return nil
	})
}

// NewCodec creates a Codec with the default selector settings adjusted by opts.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := newDefaultCodec()
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func newDefaultCodec() *Codec {
	return &Codec{
		method:        format.MethodAuto,
		sampleSize:    DefaultSampleSize,
		lowDiversity:  DefaultLowDiversity,
		highDiversity: DefaultHighDiversity,
	}
}

// Method returns the forced method, or format.MethodAuto.
func (c *Codec) Method() format.Method {
	return c.method
}

// Compress returns the envelope for src: one tag unit followed by the
// payload. Empty input yields an empty envelope with no tag.
func (c *Codec) Compress(src []uint16) []uint16 {
	if len(src) == 0 {
		return nil
	}

	method, payload := c.encode(src)
	out := make([]uint16, 0, len(payload)+1)
	out = append(out, method.Tag())

	return append(out, payload...)
}

// Decompress reverses Compress.
//
// An unknown tag yields an error wrapping errs.ErrFormat. Payload errors wrap
// errs.ErrRange, errs.ErrMalformedPayload, errs.ErrInvalidCode or
// errs.ErrInvalidUTF8 depending on the method.
func (c *Codec) Decompress(src []uint16) ([]uint16, error) {
	if len(src) == 0 {
		return nil, nil
	}

	tag, payload := src[0], src[1:]
	switch tag {
	case format.MethodLZSS.Tag():
		out, err := lzss.Decompress(payload)
		if err != nil {
			return nil, fmt.Errorf("decode LZSS payload: %w", err)
		}

		return out, nil
	case format.MethodLZW.Tag():
		raw, err := lzw.Decompress(payload)
		if err != nil {
			return nil, fmt.Errorf("decode LZW payload: %w", err)
		}
		out, err := encoding.DecodeUTF8(raw)
		if err != nil {
			return nil, fmt.Errorf("decode LZW payload: %w", err)
		}

		return out, nil
	case format.MethodRaw.Tag():
		out := make([]uint16, len(payload))
		copy(out, payload)

		return out, nil
	default:
		return nil, fmt.Errorf("%w: 0x%04x", errs.ErrFormat, tag)
	}
}

// CompressToBase64 compresses src and returns the base64 form of the
// envelope's UTF-8 bytes.
func (c *Codec) CompressToBase64(src []uint16) string {
	env := c.Compress(src)
	if len(env) == 0 {
		return ""
	}

	bb := pool.GetTranscodeBuffer()
	defer pool.PutTranscodeBuffer(bb)
	bb.Grow(encoding.UTF8Len(env))
	bb.B = encoding.AppendUTF8(bb.B, env)

	return encoding.EncodeBase64(bb.B)
}

// DecompressFromBase64 reverses CompressToBase64. Decoding is lenient about
// characters outside the base64 alphabet.
func (c *Codec) DecompressFromBase64(text string) ([]uint16, error) {
	env, err := encoding.DecodeUTF8(encoding.DecodeBase64(text))
	if err != nil {
		return nil, fmt.Errorf("decode base64 envelope: %w", err)
	}

	return c.Decompress(env)
}

// CompressString compresses the UTF-16 form of s.
func (c *Codec) CompressString(s string) []uint16 {
	return c.Compress(encoding.FromString(s))
}

// DecompressString decompresses src into a Go string. Unpaired surrogates in
// the result become U+FFFD.
func (c *Codec) DecompressString(src []uint16) (string, error) {
	units, err := c.Decompress(src)
	if err != nil {
		return "", err
	}

	return encoding.ToString(units), nil
}

// CompressBytes compresses b read as Latin-1, one unit per byte.
func (c *Codec) CompressBytes(b []byte) []uint16 {
	return c.Compress(encoding.FromLatin1(b))
}

// DecompressBytes decompresses src into bytes. A decoded unit above 0xFF
// yields an error wrapping errs.ErrNotLatin1.
func (c *Codec) DecompressBytes(src []uint16) ([]byte, error) {
	units, err := c.Decompress(src)
	if err != nil {
		return nil, err
	}

	return encoding.ToLatin1(units)
}
