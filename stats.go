package lzstr

import (
	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/format"
	"github.com/arloliu/lzstr/internal/hash"
)

// Stats describes one compression.
//
// Byte sizes are UTF-8 sizes, which is what a text transport carries.
// Digests are xxHash64 over the little-endian form of the units.
type Stats struct {
	Method       format.Method
	InputUnits   int
	OutputUnits  int
	InputBytes   int
	OutputBytes  int
	Ratio        float64 // OutputBytes / InputBytes, 0 for empty input
	InputDigest  uint64
	OutputDigest uint64
}

// CompressWithStats compresses src and reports what happened.
func (c *Codec) CompressWithStats(src []uint16) ([]uint16, Stats) {
	env := c.Compress(src)

	st := Stats{
		InputUnits:   len(src),
		OutputUnits:  len(env),
		InputBytes:   encoding.UTF8Len(src),
		OutputBytes:  encoding.UTF8Len(env),
		InputDigest:  hash.Digest(src),
		OutputDigest: hash.Digest(env),
	}
	if len(env) > 0 {
		st.Method = format.Method(env[0]) //nolint:gosec
	}
	if st.InputBytes > 0 {
		st.Ratio = float64(st.OutputBytes) / float64(st.InputBytes)
	}

	return env, st
}

// Stats compresses src and returns only the report.
func (c *Codec) Stats(src []uint16) Stats {
	_, st := c.CompressWithStats(src)
	return st
}
