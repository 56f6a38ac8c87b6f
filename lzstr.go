// Package lzstr compresses text into a restricted, string-safe alphabet.
//
// Input is a sequence of 16-bit code units (a UTF-16 string, or bytes read as
// Latin-1). The output is an envelope: one tag unit naming the method,
// followed by the payload.
//
//   - 'S': seeded LZSS; the payload uses only printable ASCII symbols that
//     need no escaping in string literals (no backslash, no line breaks).
//   - 'W': LZW over the UTF-8 form of the input.
//   - 'N': the input itself, used when neither method shrinks it.
//
// The envelope is never larger than the input plus the tag, measured in
// UTF-8 bytes.
//
// # Basic Usage
//
//	env := lzstr.CompressString("hello hello hello")
//	text, err := lzstr.DecompressString(env)
//
// For transport over byte-oriented channels:
//
//	b64 := lzstr.CompressToBase64(encoding.FromString(s))
//	units, err := lzstr.DecompressFromBase64(b64)
//
// # Configuration
//
// The package-level functions use default selector settings. NewCodec accepts
// options to force a method or tune the selector:
//
//	codec, err := lzstr.NewCodec(lzstr.WithMethod(format.MethodLZSS))
//
// Decoding errors wrap the sentinels in the errs package; match them with
// errors.Is.
package lzstr

var defaultCodec = newDefaultCodec()

// Compress compresses src with the default codec.
func Compress(src []uint16) []uint16 {
	return defaultCodec.Compress(src)
}

// Decompress decompresses an envelope produced by Compress.
func Decompress(src []uint16) ([]uint16, error) {
	return defaultCodec.Decompress(src)
}

// CompressToBase64 compresses src and encodes the envelope's UTF-8 bytes as base64.
func CompressToBase64(src []uint16) string {
	return defaultCodec.CompressToBase64(src)
}

// DecompressFromBase64 reverses CompressToBase64.
func DecompressFromBase64(text string) ([]uint16, error) {
	return defaultCodec.DecompressFromBase64(text)
}

// CompressString compresses the UTF-16 form of s.
func CompressString(s string) []uint16 {
	return defaultCodec.CompressString(s)
}

// DecompressString decompresses src into a Go string.
func DecompressString(src []uint16) (string, error) {
	return defaultCodec.DecompressString(src)
}

// CompressBytes compresses b read as Latin-1.
func CompressBytes(b []byte) []uint16 {
	return defaultCodec.CompressBytes(b)
}

// DecompressBytes decompresses src into Latin-1 bytes.
func DecompressBytes(src []uint16) ([]byte, error) {
	return defaultCodec.DecompressBytes(src)
}
