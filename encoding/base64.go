package encoding

import "encoding/base64"

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// base64Reverse maps a byte to its 6-bit value, or -1 for bytes outside the alphabet.
var base64Reverse = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := range len(base64Alphabet) {
		t[base64Alphabet[i]] = int8(i) //nolint:gosec
	}

	return t
}()

// EncodeBase64 encodes src with the standard alphabet and '=' padding.
func EncodeBase64(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

// DecodeBase64 decodes standard base64 leniently.
//
// Bytes outside the alphabet (whitespace, line breaks, URL-safe characters)
// are skipped. The first '=' flushes the pending group and ends decoding, so
// anything after the padding is ignored. A trailing group of a single
// character carries no complete byte and is dropped.
func DecodeBase64(src string) []byte {
	out := make([]byte, 0, len(src)*3/4)

	var acc uint32
	n := 0
	for i := range len(src) {
		c := src[i]
		if c == '=' {
			break
		}

		v := base64Reverse[c]
		if v < 0 {
			continue
		}

		acc = acc<<6 | uint32(v) //nolint:gosec
		n++
		if n == 4 {
			out = append(out, byte(acc>>16), byte(acc>>8), byte(acc))
			acc, n = 0, 0
		}
	}

	switch n {
	case 2:
		out = append(out, byte(acc>>4))
	case 3:
		out = append(out, byte(acc>>10), byte(acc>>2))
	}

	return out
}
