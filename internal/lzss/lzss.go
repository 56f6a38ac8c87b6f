// Package lzss implements the seeded sliding-window coder.
//
// Both directions start from the same synthetic 1024-unit seed window, so
// matches against common short patterns (spaces and letters) are available
// from the first input unit without transmitting any context. Tokens are
// written with the symbol table codec.
package lzss

import (
	"errors"
	"io"

	"github.com/arloliu/lzstr/internal/pool"
	"github.com/arloliu/lzstr/internal/table"
)

const (
	// SeedSize is the length of the seed window prepended to every input.
	SeedSize = 1024
	// WindowSize is how far back a match may start.
	WindowSize = 304
	// MinMatch is the shortest match emitted.
	MinMatch = 2
	// MaxMatch is the longest match emitted.
	MaxMatch = table.MaxIndex
)

var seed = buildSeed()

// buildSeed lays out " a z a y ... a q b z ..." until SeedSize units.
func buildSeed() []uint16 {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	win := make([]uint16, 0, SeedSize+4)
	for i := 0; i < len(letters) && len(win) < SeedSize; i++ {
		for j := len(letters) - 1; j > 15 && len(win) < SeedSize; j-- {
			win = append(win, ' ', uint16(letters[i]), ' ', uint16(letters[j]))
		}
	}

	return win[:SeedSize:SeedSize]
}

// Seed returns a copy of the seed window.
func Seed() []uint16 {
	out := make([]uint16, SeedSize)
	copy(out, seed)

	return out
}

// Compress encodes src into alphabet symbols. Empty input yields nil.
//
// Each position costs at most O(WindowSize) comparisons per candidate
// length, so the whole call is O(len(src) * WindowSize) in the worst case.
func Compress(src []uint16) []uint16 {
	if len(src) == 0 {
		return nil
	}

	data, release := pool.GetUint16Slice(SeedSize + len(src))
	defer release()
	copy(data, seed)
	copy(data[SeedSize:], src)

	enc := table.NewEncoder(make([]uint16, 0, len(src)+16))
	m := matcher{data: data}

	for offset := SeedSize; offset < len(data); {
		if distance, length := m.find(offset); length > 0 {
			enc.Match(distance, length)
			offset += length

			continue
		}
		enc.Literal(data[offset])
		offset++
	}

	return enc.Symbols()
}

// Decompress decodes symbols produced by Compress.
//
// The returned error wraps errs.ErrRange for symbols outside the alphabet and
// errs.ErrMalformedPayload for any other invalid token sequence.
func Decompress(src []uint16) ([]uint16, error) {
	if len(src) == 0 {
		return nil, nil
	}

	out := make([]uint16, SeedSize, SeedSize+2*len(src))
	copy(out, seed)

	dec := table.NewDecoder(src)
	for {
		tok, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if !tok.IsMatch() {
			out = append(out, tok.Unit)
			continue
		}

		// Byte-at-a-time copy so a source range overlapping the units being
		// written repeats them.
		from := len(out) - tok.Distance
		for i := range tok.Length {
			out = append(out, out[from+i])
		}
	}

	return out[SeedSize:len(out):len(out)], nil
}
