// Package table implements the symbol table codec shared by the LZSS engine.
//
// Integers (literal code units, match distances and lengths) are written as
// indices into a fixed alphabet of printable ASCII symbols. The alphabet
// excludes backspace, line feed, vertical tab, form feed, carriage return and
// backslash so encoded text can be embedded in string literals unescaped.
//
// Symbol index layout:
//
//	0..42    literal low digits (0..39 produced)
//	43..46   Latin prefix, high digit 0..3
//	47       unused
//	48       full-range escape, followed by high digit + 5
//	49..53   match with explicit length, distance high digit 0..4
//	54..58   match of length 2, distance high digit 0..4
//	59..120  second or third symbol of a token only
package table

// Size is the number of symbols in the alphabet: 0x00..0x7E minus six escapes.
const Size = 0x7F - 6

// MaxIndex is the largest symbol index. It is the divisor used for match
// distances and the longest encodable match.
const MaxIndex = Size - 1

const (
	digitBase    = 40                          // literal low/mid digit base
	latinLimit   = 11 * (11 + 1)               // literals below use the Latin form
	unicodeBlock = digitBase * (digitBase + 1) // full-range high digit divisor
	latinPrefix  = digitBase + 3               // first Latin prefix symbol
	latinEnd     = digitBase + 7               // one past the last Latin prefix
	escape       = latinEnd + 1                // full-range escape symbol
	escapeBias   = 5                           // offset of the full-range high digit
	matchPrefix  = escape + 1                  // 3-symbol match prefix
	shortPrefix  = matchPrefix + 5             // 2-symbol match prefix
	prefixEnd    = shortPrefix + 5             // one past the last match prefix
)

// MaxDistance is the largest distance the match prefixes can express.
const MaxDistance = (shortPrefix-matchPrefix)*MaxIndex - 1

var (
	alphabet [Size]uint16
	reverse  [0x80]int8
)

func init() {
	for i := range reverse {
		reverse[i] = -1
	}

	n := 0
	for c := range 0x7F {
		if isEscaped(c) {
			continue
		}
		alphabet[n] = uint16(c)
		reverse[c] = int8(n) //nolint:gosec
		n++
	}
}

func isEscaped(c int) bool {
	switch c {
	case 0x08, 0x0A, 0x0B, 0x0C, 0x0D, 0x5C:
		return true
	default:
		return false
	}
}

// Symbol returns the code unit of the symbol at index i.
func Symbol(i int) uint16 {
	return alphabet[i]
}

// Index returns the alphabet index of unit, or -1 if unit is not a symbol.
func Index(unit uint16) int {
	if unit >= 0x80 {
		return -1
	}

	return int(reverse[unit])
}

// Alphabet returns a copy of the alphabet in index order.
func Alphabet() []uint16 {
	out := make([]uint16, Size)
	copy(out, alphabet[:])

	return out
}
