package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/lzstr/endian"
)

// Digest computes the xxHash64 of code units laid out little-endian.
func Digest(units []uint16) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 512)

	engine := endian.GetLittleEndianEngine()
	for len(units) > 0 {
		n := min(len(units), cap(buf)/2)
		for _, c := range units[:n] {
			buf = engine.AppendUint16(buf, c)
		}
		_, _ = d.Write(buf)
		buf = buf[:0]
		units = units[n:]
	}

	return d.Sum64()
}

// Bytes computes the xxHash64 of raw bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
