// Package errs defines the sentinel errors returned by lzstr.
//
// Errors are wrapped with context where they are raised, so callers should
// match them with errors.Is:
//
//	units, err := lzstr.Decompress(data)
//	if errors.Is(err, errs.ErrFormat) {
//	    // not an lzstr envelope
//	}
package errs

import "errors"

// Decoding errors.
var (
	// ErrFormat is returned when an envelope starts with an unrecognized method tag.
	ErrFormat = errors.New("lzstr: unrecognized method tag")
	// ErrRange is returned when an LZSS payload contains a symbol outside the alphabet.
	ErrRange = errors.New("lzstr: symbol out of range")
	// ErrMalformedPayload is returned when an LZSS payload violates the token grammar.
	ErrMalformedPayload = errors.New("lzstr: malformed payload")
	// ErrInvalidCode is returned when an LZW payload references an undefined code.
	ErrInvalidCode = errors.New("lzstr: invalid LZW code")
)

// Transcoding errors.
var (
	ErrInvalidUTF8 = errors.New("lzstr: invalid UTF-8 sequence")
	ErrNotLatin1   = errors.New("lzstr: code unit exceeds Latin-1 range")
	ErrOddLength   = errors.New("lzstr: UTF-16 byte length is odd")
)

// Configuration errors.
var (
	ErrInvalidOption = errors.New("lzstr: invalid option")
	ErrUnknownMethod = errors.New("lzstr: unknown compression method")
)
