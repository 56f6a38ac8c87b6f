package lzss

import "slices"

// matcher finds back-references in a seeded buffer.
type matcher struct {
	data []uint16
}

// find returns the longest match for the units at offset, or a zero length
// when nothing of at least MinMatch units occurs in the window.
//
// Each round looks for the last occurrence of a candidate one unit longer
// than the best match so far and extends it greedily. A match may start
// anywhere in [offset-WindowSize, offset) and run past offset.
func (m *matcher) find(offset int) (distance, length int) {
	data := m.data
	limit := min(MaxMatch, len(data)-offset)
	if limit < MinMatch {
		return 0, 0
	}

	start := max(offset-WindowSize, 0)
	first := indexPair(data, start, offset, data[offset], data[offset+1])
	if first < 0 {
		return 0, 0
	}

	for n := MinMatch; n <= limit; {
		pos := lastIndex(data, start, offset, data[offset:offset+n])
		if pos < 0 {
			break
		}

		l := n
		for l < limit && data[pos+l] == data[offset+l] {
			l++
		}
		length, distance = l, offset-pos

		// Every longer candidate starts with the same pair; when the pair
		// occurs only once there is nothing else to try.
		if l == limit || pos == first {
			break
		}
		n = l + 1
	}

	return distance, length
}

// indexPair returns the first position p in [start, end) with
// data[p] == a and data[p+1] == b, or -1.
func indexPair(data []uint16, start, end int, a, b uint16) int {
	for p := start; p < end; p++ {
		if data[p] == a && data[p+1] == b {
			return p
		}
	}

	return -1
}

// lastIndex returns the last position p in [start, end) where needle occurs,
// or -1. The occurrence may extend beyond end.
func lastIndex(data []uint16, start, end int, needle []uint16) int {
	n := len(needle)
	for p := end - 1; p >= start; p-- {
		if data[p] == needle[0] && slices.Equal(data[p:p+n], needle) {
			return p
		}
	}

	return -1
}
