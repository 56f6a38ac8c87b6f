// Package lzw implements the adaptive dictionary coder used for mid-diversity
// text.
//
// The coder works on bytes (the UTF-8 form of the input). Codes 0x00..0xFF
// stand for single bytes; dictionary codes start at 0x100 and stop growing at
// 0xFFFF. Neither side transmits the dictionary: the decoder rebuilds it from
// the codes it reads.
//
// Codes are stored as 16-bit payload units through a bijection that keeps
// ASCII bytes as themselves:
//
//	bytes 0x00..0x7F      -> units 0x0000..0x007F
//	codes 0x100..0xFFFF   -> units 0x0080..0xFF7F
//	bytes 0x80..0xFF      -> units 0xFF80..0xFFFF
package lzw

import (
	"fmt"
	"slices"

	"github.com/arloliu/lzstr/errs"
)

const (
	// FirstCode is the first dictionary code.
	FirstCode = 0x100
	// MaxCode is the last dictionary code ever assigned.
	MaxCode = 0xFFFF
)

// Compress encodes src and returns the payload units. Empty input yields nil.
func Compress(src []byte) []uint16 {
	if len(src) == 0 {
		return nil
	}

	dict := make(map[uint32]uint16)
	next := FirstCode
	out := make([]uint16, 0, len(src)/2+1)

	buffer := uint16(src[0])
	for _, c := range src[1:] {
		key := uint32(buffer)<<8 | uint32(c)
		if code, ok := dict[key]; ok {
			buffer = code
			continue
		}

		out = append(out, CodeToUnit(buffer))
		if next <= MaxCode {
			dict[key] = uint16(next) //nolint:gosec
			next++
		}
		buffer = uint16(c)
	}

	return append(out, CodeToUnit(buffer))
}

// entry describes a dictionary string as its prefix code plus one byte.
type entry struct {
	prefix uint16
	last   byte
	first  byte
	length int
}

// Decompress decodes payload units produced by Compress.
//
// A unit that maps to a code the decoder cannot have defined yet yields an
// error wrapping errs.ErrInvalidCode.
func Decompress(src []uint16) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	d := decoder{
		entries: make([]entry, 0, min(len(src), MaxCode-FirstCode+1)),
		out:     make([]byte, 0, 2*len(src)),
	}

	prev := UnitToCode(src[0])
	if prev >= FirstCode {
		return nil, fmt.Errorf("%w: first code 0x%04x is not a byte", errs.ErrInvalidCode, prev)
	}
	d.out = append(d.out, byte(prev))

	for i, unit := range src[1:] {
		code := UnitToCode(unit)
		next := FirstCode + len(d.entries)

		var first byte
		switch {
		case code < FirstCode:
			first = byte(code)
			d.out = append(d.out, first)
		case code < next:
			first = d.expand(code)
		case code == next && next <= MaxCode:
			// The code being defined by this very step: previous + first(previous).
			first = d.firstByte(prev)
			d.expand(prev)
			d.out = append(d.out, first)
		default:
			return nil, fmt.Errorf("%w: code 0x%04x at offset %d, next definable 0x%04x",
				errs.ErrInvalidCode, code, i+1, next)
		}

		if next <= MaxCode {
			d.entries = append(d.entries, entry{
				prefix: uint16(prev), //nolint:gosec
				last:   first,
				first:  d.firstByte(prev),
				length: d.length(prev) + 1,
			})
		}
		prev = code
	}

	return d.out, nil
}

type decoder struct {
	entries []entry
	out     []byte
}

func (d *decoder) entry(code int) *entry {
	return &d.entries[code-FirstCode]
}

func (d *decoder) firstByte(code int) byte {
	if code < FirstCode {
		return byte(code)
	}

	return d.entry(code).first
}

func (d *decoder) length(code int) int {
	if code < FirstCode {
		return 1
	}

	return d.entry(code).length
}

// expand appends the string for a defined code and returns its first byte.
func (d *decoder) expand(code int) byte {
	n := d.length(code)
	start := len(d.out)
	d.out = slices.Grow(d.out, n)[:start+n]

	pos := start + n - 1
	for code >= FirstCode {
		e := d.entry(code)
		d.out[pos] = e.last
		pos--
		code = int(e.prefix)
	}
	d.out[pos] = byte(code)

	return byte(code)
}

// CodeToUnit maps an LZW code onto its payload unit.
func CodeToUnit(code uint16) uint16 {
	switch {
	case code < 0x80:
		return code
	case code < FirstCode:
		return code + 0xFF00
	default:
		return code - 0x80
	}
}

// UnitToCode maps a payload unit back onto its LZW code.
func UnitToCode(unit uint16) int {
	switch {
	case unit < 0x80:
		return int(unit)
	case unit >= 0xFF80:
		return int(unit) - 0xFF00
	default:
		return int(unit) + 0x80
	}
}
