// Package compress provides byte-level codecs behind one interface, so the
// lzstr text codec can be compared with general-purpose compressors.
//
// # Codecs
//
//   - None: pass-through baseline
//   - LZStr: lzstr envelope over Latin-1 input, emitted as UTF-8
//   - LZSS: classic byte LZSS with a 4 KiB ring buffer (blacktop/lzss)
//   - LZ4: LZ4 block format (pierrec/lz4)
//   - S2: S2 block format (klauspost/compress)
//   - Zstd: Zstandard frames (klauspost/compress)
//
// lzstr targets short text that must stay printable; the other codecs produce
// binary output and usually win on ratio for large inputs.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionLZStr)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(data)
//	original, err := codec.Decompress(packed)
//
// Measuring a round trip:
//
//	stats, err := compress.Measure(format.CompressionZstd, data)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Thread Safety
//
// Every codec in this package is safe for concurrent use. Zstd encoders and
// decoders and LZ4 compressors are pooled internally.
package compress
