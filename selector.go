package lzstr

import (
	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/format"
	"github.com/arloliu/lzstr/internal/lzss"
	"github.com/arloliu/lzstr/internal/lzw"
	"github.com/arloliu/lzstr/internal/pool"
)

// encode picks a method for src and returns it with the payload.
//
// In automatic mode the preferred method is tried first, then the other one;
// the first payload whose UTF-8 size is below the input's wins. When neither
// shrinks the input, the units are stored raw.
func (c *Codec) encode(src []uint16) (format.Method, []uint16) {
	if c.method != format.MethodAuto {
		return c.method, run(c.method, src)
	}

	limit := encoding.UTF8Len(src)
	for _, method := range c.candidates(src) {
		payload := run(method, src)
		if payloadSize(method, payload) < limit {
			return method, payload
		}
	}

	return format.MethodRaw, src
}

// candidates returns the methods to try, preferred first.
func (c *Codec) candidates(src []uint16) [2]format.Method {
	if c.preferLZSS(src) {
		return [2]format.Method{format.MethodLZSS, format.MethodLZW}
	}

	return [2]format.Method{format.MethodLZW, format.MethodLZSS}
}

// preferLZSS reports whether LZSS should be tried before LZW.
//
// Short inputs favour LZW, whose payload keeps ASCII as itself. Longer inputs
// favour LZSS when the sample is either narrow (plain text) or very diverse
// (where byte-oriented LZW codes grow quickly).
func (c *Codec) preferLZSS(src []uint16) bool {
	if len(src) <= c.sampleSize {
		return false
	}

	n := distinctUnits(src[:c.sampleSize], c.highDiversity)

	return n <= c.lowDiversity || n >= c.highDiversity
}

// distinctUnits counts distinct values in sample, stopping once limit is reached.
func distinctUnits(sample []uint16, limit int) int {
	seen := make(map[uint16]struct{}, min(len(sample), limit))
	for _, c := range sample {
		seen[c] = struct{}{}
		if len(seen) >= limit {
			break
		}
	}

	return len(seen)
}

func run(method format.Method, src []uint16) []uint16 {
	switch method {
	case format.MethodLZSS:
		return lzss.Compress(src)
	case format.MethodLZW:
		return compressLZW(src)
	default:
		return src
	}
}

// compressLZW runs LZW over the UTF-8 form of src.
func compressLZW(src []uint16) []uint16 {
	bb := pool.GetTranscodeBuffer()
	defer pool.PutTranscodeBuffer(bb)

	bb.Grow(encoding.UTF8Len(src))
	bb.B = encoding.AppendUTF8(bb.B, src)

	return lzw.Compress(bb.B)
}

// payloadSize returns the UTF-8 size of a payload. LZSS symbols are ASCII.
func payloadSize(method format.Method, payload []uint16) int {
	if method == format.MethodLZSS {
		return len(payload)
	}

	return encoding.UTF8Len(payload)
}
