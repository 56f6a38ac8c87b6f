package encoding

import (
	"fmt"

	"github.com/arloliu/lzstr/errs"
)

const (
	surrogateMin     = 0xD800
	lowSurrogateMin  = 0xDC00
	surrogateMax     = 0xDFFF
	surrogateOffset  = 0x10000
	maxSupplementary = 0x10FFFF
)

func isHighSurrogate(c uint16) bool {
	return c >= surrogateMin && c < lowSurrogateMin
}

func isLowSurrogate(c uint16) bool {
	return c >= lowSurrogateMin && c <= surrogateMax
}

// AppendUTF8 appends the UTF-8 form of src to dst and returns the extended slice.
//
// Surrogate pairs are combined into one four-byte sequence. An unpaired
// surrogate is written as the three-byte form of its own value, which keeps
// the conversion lossless for arbitrary code-unit sequences.
func AppendUTF8(dst []byte, src []uint16) []byte {
	for i := 0; i < len(src); i++ {
		c := rune(src[i])
		if isHighSurrogate(src[i]) && i+1 < len(src) && isLowSurrogate(src[i+1]) {
			c = (c-surrogateMin)<<10 + rune(src[i+1]) - lowSurrogateMin + surrogateOffset
			i++
		}

		switch {
		case c < 0x80:
			dst = append(dst, byte(c))
		case c < 0x800:
			dst = append(dst, 0xC0|byte(c>>6), 0x80|byte(c&0x3F))
		case c < surrogateOffset:
			dst = append(dst, 0xE0|byte(c>>12), 0x80|byte(c>>6&0x3F), 0x80|byte(c&0x3F))
		default:
			dst = append(dst, 0xF0|byte(c>>18), 0x80|byte(c>>12&0x3F), 0x80|byte(c>>6&0x3F), 0x80|byte(c&0x3F))
		}
	}

	return dst
}

// UTF8Len returns len(AppendUTF8(nil, src)) without allocating.
func UTF8Len(src []uint16) int {
	n := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c < 0x80:
			n++
		case c < 0x800:
			n += 2
		case isHighSurrogate(c) && i+1 < len(src) && isLowSurrogate(src[i+1]):
			n += 4
			i++
		default:
			n += 3
		}
	}

	return n
}

// DecodeUTF8 converts UTF-8 bytes to code units.
//
// Three-byte encodings of surrogate values are accepted and yield the
// surrogate unit itself, mirroring AppendUTF8. Truncated sequences, invalid
// lead or continuation bytes and values above U+10FFFF yield an error
// wrapping errs.ErrInvalidUTF8.
func DecodeUTF8(src []byte) ([]uint16, error) {
	out := make([]uint16, 0, len(src))

	for i := 0; i < len(src); {
		b := src[i]

		var c rune
		var size int
		switch {
		case b < 0x80:
			out = append(out, uint16(b))
			i++

			continue
		case b&0xE0 == 0xC0:
			c, size = rune(b&0x1F), 2
		case b&0xF0 == 0xE0:
			c, size = rune(b&0x0F), 3
		case b&0xF8 == 0xF0:
			c, size = rune(b&0x07), 4
		default:
			return nil, fmt.Errorf("%w: lead byte 0x%02x at offset %d", errs.ErrInvalidUTF8, b, i)
		}

		if i+size > len(src) {
			return nil, fmt.Errorf("%w: truncated sequence at offset %d", errs.ErrInvalidUTF8, i)
		}
		for _, cb := range src[i+1 : i+size] {
			if cb&0xC0 != 0x80 {
				return nil, fmt.Errorf("%w: continuation byte 0x%02x at offset %d", errs.ErrInvalidUTF8, cb, i)
			}
			c = c<<6 | rune(cb&0x3F)
		}

		switch {
		case c > maxSupplementary:
			return nil, fmt.Errorf("%w: code point 0x%x at offset %d", errs.ErrInvalidUTF8, c, i)
		case c >= surrogateOffset:
			c -= surrogateOffset
			out = append(out, uint16(surrogateMin+(c>>10)), uint16(lowSurrogateMin+(c&0x3FF))) //nolint:gosec
		default:
			out = append(out, uint16(c)) //nolint:gosec
		}
		i += size
	}

	return out, nil
}
