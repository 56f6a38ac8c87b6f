package encoding

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/lzstr/endian"
	"github.com/arloliu/lzstr/errs"
)

// FromString returns the UTF-16 code units of a Go string.
//
// Invalid UTF-8 in s is read as U+FFFD, as with a range loop.
func FromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// ToString converts code units to a Go string.
//
// Go strings hold UTF-8, which cannot represent unpaired surrogates; they
// become U+FFFD. Use the []uint16 APIs when such input must survive.
func ToString(src []uint16) string {
	return string(utf16.Decode(src))
}

// FromLatin1 widens each byte to one code unit.
func FromLatin1(src []byte) []uint16 {
	out := make([]uint16, len(src))
	for i, b := range src {
		out[i] = uint16(b)
	}

	return out
}

// ToLatin1 narrows code units to bytes. A unit above 0xFF yields an error
// wrapping errs.ErrNotLatin1.
func ToLatin1(src []uint16) ([]byte, error) {
	out := make([]byte, len(src))
	for i, c := range src {
		if c > 0xFF {
			return nil, fmt.Errorf("%w: unit 0x%04x at offset %d", errs.ErrNotLatin1, c, i)
		}
		out[i] = byte(c)
	}

	return out, nil
}

// DecodeUTF16 reads code units stored as two bytes each in the given byte order.
func DecodeUTF16(src []byte, engine endian.EndianEngine) ([]uint16, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrOddLength, len(src))
	}

	out := make([]uint16, len(src)/2)
	for i := range out {
		out[i] = engine.Uint16(src[2*i:])
	}

	return out, nil
}

// AppendUTF16 appends code units to dst as two bytes each in the given byte order.
func AppendUTF16(dst []byte, src []uint16, engine endian.EndianEngine) []byte {
	for _, c := range src {
		dst = engine.AppendUint16(dst, c)
	}

	return dst
}
