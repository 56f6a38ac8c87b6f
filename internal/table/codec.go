package table

import (
	"fmt"
	"io"

	"github.com/arloliu/lzstr/errs"
)

// Token is a decoded literal or match.
//
// A literal has Length 0 and carries its code unit in Unit. A match copies
// Length units starting Distance units before the end of the output.
type Token struct {
	Unit     uint16
	Distance int
	Length   int
}

// IsMatch reports whether t is a match token.
func (t Token) IsMatch() bool {
	return t.Length > 0
}

// noPrefix forces the next literal to emit its prefix.
const noPrefix = -1

// latinHighs is the number of Latin prefix symbols. Full-range prefixes are
// tracked as latinHighs+high so they never collide with a Latin prefix.
const latinHighs = latinEnd - latinPrefix

// Encoder writes tokens as alphabet symbols.
//
// The encoder remembers the last emitted literal prefix across the whole
// stream and elides it while consecutive literals share it. A match resets
// the remembered prefix.
type Encoder struct {
	buf        []uint16
	lastPrefix int
}

// NewEncoder creates an encoder that appends symbols to dst[:0].
func NewEncoder(dst []uint16) *Encoder {
	return &Encoder{
		buf:        dst[:0],
		lastPrefix: noPrefix,
	}
}

// Literal writes a single code unit.
//
// Units below 132 use one low digit, preceded by a Latin prefix when the high
// digit changes. Other units use two digits, preceded by the escape symbol
// and the high digit when the high digit changes.
func (e *Encoder) Literal(c uint16) {
	if c < latinLimit {
		high, low := int(c)/digitBase, int(c)%digitBase
		if high != e.lastPrefix {
			e.emit(latinPrefix + high)
			e.lastPrefix = high
		}
		e.emit(low)

		return
	}

	high, rest := int(c)/unicodeBlock, int(c)%unicodeBlock
	if latinHighs+high != e.lastPrefix {
		e.emit(escape)
		e.emit(high + escapeBias)
		e.lastPrefix = latinHighs + high
	}
	e.emit(rest % digitBase)
	e.emit(rest / digitBase)
}

// Match writes a back-reference.
//
// The caller guarantees 1 <= distance <= MaxDistance and 2 <= length <= MaxIndex.
func (e *Encoder) Match(distance, length int) {
	high, low := distance/MaxIndex, distance%MaxIndex
	if length == 2 {
		e.emit(shortPrefix + high)
		e.emit(low)
	} else {
		e.emit(matchPrefix + high)
		e.emit(low)
		e.emit(length)
	}
	e.lastPrefix = noPrefix
}

// Symbols returns the symbols written so far.
func (e *Encoder) Symbols() []uint16 {
	return e.buf
}

// Len returns the number of symbols written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) emit(i int) {
	e.buf = append(e.buf, alphabet[i])
}

// Decoder reads tokens from a symbol sequence.
//
// It mirrors the encoder state: the current high digit (-1 until a prefix is
// read, and again after every match) and whether literals are in the Latin or
// the full-range form.
type Decoder struct {
	src     []uint16
	pos     int
	high    int
	unicode bool
}

// NewDecoder creates a decoder over src.
func NewDecoder(src []uint16) *Decoder {
	return &Decoder{
		src:  src,
		high: noPrefix,
	}
}

// Next returns the next token, or io.EOF when the input is exhausted.
//
// A symbol outside the alphabet yields errs.ErrRange; any other violation of
// the token grammar yields errs.ErrMalformedPayload.
func (d *Decoder) Next() (Token, error) {
	for d.pos < len(d.src) {
		start := d.pos
		c, err := d.read()
		if err != nil {
			return Token{}, err
		}

		switch {
		case c < latinPrefix:
			return d.literal(c, start)
		case c < latinEnd:
			d.high = c - latinPrefix
			d.unicode = false
		case c == escape:
			h, err := d.read()
			if err != nil {
				return Token{}, err
			}
			if h < escapeBias {
				return Token{}, d.malformed(start, "full-range prefix %d", h)
			}
			d.high = h - escapeBias
			d.unicode = true
		case c >= matchPrefix && c < prefixEnd:
			return d.match(c, start)
		default:
			return Token{}, d.malformed(start, "unexpected symbol index %d", c)
		}
	}

	return Token{}, io.EOF
}

func (d *Decoder) literal(low int, start int) (Token, error) {
	if d.high < 0 {
		return Token{}, d.malformed(start, "literal without prefix")
	}
	if low >= digitBase {
		return Token{}, d.malformed(start, "literal digit %d", low)
	}

	if !d.unicode {
		return Token{Unit: uint16(d.high*digitBase + low)}, nil //nolint:gosec
	}

	mid, err := d.read()
	if err != nil {
		return Token{}, err
	}
	code := d.high*unicodeBlock + mid*digitBase + low
	if mid > digitBase || code > 0xFFFF {
		return Token{}, d.malformed(start, "full-range literal %d", code)
	}

	return Token{Unit: uint16(code)}, nil //nolint:gosec
}

func (d *Decoder) match(prefix int, start int) (Token, error) {
	low, err := d.read()
	if err != nil {
		return Token{}, err
	}

	var distance, length int
	if prefix < shortPrefix {
		distance = (prefix-matchPrefix)*MaxIndex + low
		length, err = d.read()
		if err != nil {
			return Token{}, err
		}
		if length < 3 {
			return Token{}, d.malformed(start, "match length %d", length)
		}
	} else {
		distance = (prefix-shortPrefix)*MaxIndex + low
		length = 2
	}

	if distance == 0 {
		return Token{}, d.malformed(start, "zero match distance")
	}
	d.high = noPrefix

	return Token{Distance: distance, Length: length}, nil
}

// read consumes one symbol and returns its alphabet index.
func (d *Decoder) read() (int, error) {
	if d.pos >= len(d.src) {
		return 0, d.malformed(d.pos, "truncated token")
	}

	unit := d.src[d.pos]
	i := Index(unit)
	if i < 0 {
		return 0, fmt.Errorf("%w: unit 0x%04x at offset %d", errs.ErrRange, unit, d.pos)
	}
	d.pos++

	return i, nil
}

func (d *Decoder) malformed(offset int, format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", errs.ErrMalformedPayload, fmt.Sprintf(format, args...), offset)
}
