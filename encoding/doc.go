// Package encoding converts between the representations lzstr works with.
//
// Code units ([]uint16) are the native text form. This package moves them to
// and from:
//
//   - UTF-8 bytes (AppendUTF8, DecodeUTF8, UTF8Len)
//   - Go strings (FromString, ToString)
//   - Latin-1 bytes (FromLatin1, ToLatin1)
//   - UTF-16 byte streams in either byte order (DecodeUTF16, AppendUTF16)
//   - base64 text (EncodeBase64, DecodeBase64)
//
// The UTF-8 conversion is lossless for any unit sequence: an unpaired
// surrogate is written as the three-byte form of its own value and read back
// unchanged. Strict UTF-8 decoders reject those bytes, so envelopes that may
// carry lone surrogates should be decoded with DecodeUTF8.
//
// Decoding failures wrap errs.ErrInvalidUTF8, errs.ErrNotLatin1 or
// errs.ErrOddLength.
package encoding
