package lzstr

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzstr/encoding"
	"github.com/arloliu/lzstr/errs"
	"github.com/arloliu/lzstr/format"
	"github.com/arloliu/lzstr/internal/hash"
)

func units(s string) []uint16 {
	return encoding.FromString(s)
}

func fullRange() []uint16 {
	out := make([]uint16, 0x10000)
	for i := range out {
		out[i] = uint16(i) //nolint:gosec
	}

	return out
}

func requireRoundTrip(t *testing.T, src []uint16) []uint16 {
	t.Helper()

	env := Compress(src)
	got, err := Decompress(env)
	require.NoError(t, err)
	if len(src) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, src, got)
	}
	require.LessOrEqual(t, encoding.UTF8Len(env), encoding.UTF8Len(src)+1)

	return env
}

func TestCompressToBase64_Fixture(t *testing.T) {
	got := CompressToBase64(units("hello hello hello"))
	require.Equal(t, "V2hlbGxvIMKAwoLChMKGwoM=", got)

	back, err := DecompressFromBase64(got)
	require.NoError(t, err)
	require.Equal(t, units("hello hello hello"), back)
}

func TestCompress_Empty(t *testing.T) {
	require.Empty(t, Compress(nil))
	require.Empty(t, Compress([]uint16{}))

	got, err := Decompress(nil)
	require.NoError(t, err)
	require.Empty(t, got)

	require.Empty(t, CompressToBase64(nil))
	got, err = DecompressFromBase64("")
	require.NoError(t, err)
	require.Empty(t, got)

	s, err := DecompressString(CompressString(""))
	require.NoError(t, err)
	require.Empty(t, s)
}

func TestDecompress_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  []uint16
		want error
	}{
		{name: "unknown tag", src: units("Xabc"), want: errs.ErrFormat},
		{name: "wide tag", src: []uint16{0x0153, 'a'}, want: errs.ErrFormat},
		{name: "lzss symbol out of range", src: units("S\\"), want: errs.ErrRange},
		{name: "lzss line break", src: []uint16{'S', '\n'}, want: errs.ErrRange},
		{name: "lzss literal without prefix", src: []uint16{'S', 0x00}, want: errs.ErrMalformedPayload},
		{name: "lzss second-position symbol", src: units("Sa"), want: errs.ErrMalformedPayload},
		{name: "lzss truncated match", src: []uint16{'S', 0x3B}, want: errs.ErrMalformedPayload},
		{name: "lzw undefined first code", src: []uint16{'W', 0x90}, want: errs.ErrInvalidCode},
		{name: "lzw code ahead of dictionary", src: []uint16{'W', 'a', 0x85}, want: errs.ErrInvalidCode},
		{name: "lzw invalid utf8", src: []uint16{'W', 0xFFFF}, want: errs.ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompress(tt.src)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, got)
		})
	}
}

func TestCompress_MethodSelection(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want format.Method
	}{
		{name: "short repetitive text", src: "hello hello hello", want: format.MethodLZW},
		{name: "short repeated block", src: strings.Repeat("abcd", 5), want: format.MethodLZW},
		{name: "incompressible", src: "Hello World.", want: format.MethodRaw},
		{name: "single unit", src: "x", want: format.MethodRaw},
		{name: "long narrow text", src: strings.Repeat("the quick brown fox ", 20), want: format.MethodLZSS},
		{name: "long run", src: strings.Repeat("a", 500), want: format.MethodLZSS},
		{name: "short seed text falls back to lzss", src: " s z s y", want: format.MethodLZSS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := requireRoundTrip(t, units(tt.src))
			require.Equal(t, tt.want.Tag(), env[0])
		})
	}
}

func TestCompress_FallbackToAlternate(t *testing.T) {
	// Short input prefers LZW, which cannot shrink it; the seed window holds
	// the whole text, so LZSS wins as the alternate.
	src := units(" s z s y")
	require.False(t, newDefaultCodec().preferLZSS(src))

	lzwOnly, err := NewCodec(WithMethod(format.MethodLZW))
	require.NoError(t, err)
	forced := lzwOnly.Compress(src)
	require.Equal(t, format.MethodLZW.Tag(), forced[0])
	require.GreaterOrEqual(t, encoding.UTF8Len(forced[1:]), encoding.UTF8Len(src))

	env := requireRoundTrip(t, src)
	require.Equal(t, format.MethodLZSS.Tag(), env[0])
	require.Len(t, env, 4)
}

func TestCompress_RawEnvelope(t *testing.T) {
	env := CompressString("Hello World.")
	require.Equal(t, units("NHello World."), env)
}

func TestCompress_Repetition(t *testing.T) {
	for _, block := range []string{"abcd", "wxyz0", "あいうえ", "ab\U0001F600"} {
		t.Run(block, func(t *testing.T) {
			src := units(strings.Repeat(block, 5))
			env := requireRoundTrip(t, src)
			require.Less(t, encoding.UTF8Len(env), encoding.UTF8Len(src))
		})
	}
}

func TestCompress_RepeatedCharacters(t *testing.T) {
	patterns := []string{"a", "aあ", "あ", "あa"}
	lengths := []int{59, 60, 61, 3659, 3660, 3661}

	for _, p := range patterns {
		for _, n := range lengths {
			t.Run(fmt.Sprintf("%q/%d", p, n), func(t *testing.T) {
				unit := units(p)
				src := make([]uint16, 0, n*len(unit))
				for range n {
					src = append(src, unit...)
				}
				env := requireRoundTrip(t, src)
				require.Less(t, len(env), len(src))
			})
		}
	}
}

func TestCompress_FullRange(t *testing.T) {
	src := fullRange()
	env := requireRoundTrip(t, src)
	require.Equal(t, format.MethodLZSS.Tag(), env[0])

	reversed := make([]uint16, len(src))
	for i, c := range src {
		reversed[len(src)-1-i] = c
	}
	requireRoundTrip(t, reversed)

	doubled := append(append([]uint16{}, src...), src...)
	requireRoundTrip(t, doubled)
}

func TestCompress_EachUnit(t *testing.T) {
	for c := 0; c <= 0xFFFF; c += 257 {
		src := []uint16{uint16(c), uint16(c), uint16(c), 'a', uint16(c)} //nolint:gosec
		requireRoundTrip(t, src)
	}
}

func TestCompress_UnpairedSurrogates(t *testing.T) {
	tests := [][]uint16{
		{0xD800},
		{0xDC00, 0xD800},
		{'a', 0xD83D, 'a', 0xD83D, 'a', 0xD83D, 'a', 0xD83D},
		{0xDFFF, 0xDFFF, 0xDFFF, 0xDFFF, 0xDFFF, 0xDFFF, 0xDFFF, 0xDFFF},
	}

	for _, src := range tests {
		requireRoundTrip(t, src)

		back, err := DecompressFromBase64(CompressToBase64(src))
		require.NoError(t, err)
		require.Equal(t, src, back)
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"Hello World.",
		strings.Repeat("the quick brown fox ", 30),
		"日本語のテキスト日本語",
		"emoji \U0001F600\U0001F600\U0001F600\U0001F600",
	}

	for _, s := range inputs {
		text := CompressToBase64(units(s))
		back, err := DecompressFromBase64(text)
		require.NoError(t, err)
		require.Equal(t, units(s), back)
	}

	full := fullRange()
	back, err := DecompressFromBase64(CompressToBase64(full))
	require.NoError(t, err)
	require.Equal(t, full, back)
}

func TestDecompressFromBase64_Lenient(t *testing.T) {
	text := "V2hl\nbGxv IMKA\r\nwoLC hMKG woM=trailing"
	got, err := DecompressFromBase64(text)
	require.NoError(t, err)
	require.Equal(t, units("hello hello hello"), got)
}

func TestDecompressFromBase64_InvalidUTF8(t *testing.T) {
	_, err := DecompressFromBase64("/w==")
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestString_RoundTrip(t *testing.T) {
	for _, s := range []string{"hello", "café café café", "\U0001F600 smile \U0001F600 smile"} {
		got, err := DecompressString(CompressString(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestBytes_RoundTrip(t *testing.T) {
	src := make([]byte, 0, 1024)
	for i := range 1024 {
		src = append(src, byte(i*7%256))
	}

	got, err := DecompressBytes(CompressBytes(src))
	require.NoError(t, err)
	require.Equal(t, src, got)

	_, err = DecompressBytes(CompressString("あああ"))
	require.ErrorIs(t, err, errs.ErrNotLatin1)
}

func TestNewCodec_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewCodec()
		require.NoError(t, err)
		require.Equal(t, format.MethodAuto, c.Method())
	})

	t.Run("forced lzss", func(t *testing.T) {
		c, err := NewCodec(WithMethod(format.MethodLZSS))
		require.NoError(t, err)

		env := c.CompressString("Hello World.")
		require.Equal(t, format.MethodLZSS.Tag(), env[0])

		got, err := c.DecompressString(env)
		require.NoError(t, err)
		require.Equal(t, "Hello World.", got)
	})

	t.Run("forced lzw", func(t *testing.T) {
		c, err := NewCodec(WithMethod(format.MethodLZW))
		require.NoError(t, err)

		src := units(strings.Repeat("the quick brown fox ", 20))
		env := c.Compress(src)
		require.Equal(t, format.MethodLZW.Tag(), env[0])

		got, err := c.Decompress(env)
		require.NoError(t, err)
		require.Equal(t, src, got)
	})

	t.Run("forced raw", func(t *testing.T) {
		c, err := NewCodec(WithMethod(format.MethodRaw))
		require.NoError(t, err)
		require.Equal(t, units("Naaaaaaaa"), c.CompressString("aaaaaaaa"))
	})

	t.Run("sample size", func(t *testing.T) {
		c, err := NewCodec(WithSampleSize(4))
		require.NoError(t, err)

		env := c.CompressString(strings.Repeat("abcd", 5))
		require.Equal(t, format.MethodLZSS.Tag(), env[0])
	})

	t.Run("later option wins", func(t *testing.T) {
		c, err := NewCodec(WithMethod(format.MethodLZW), WithMethod(format.MethodAuto))
		require.NoError(t, err)
		require.Equal(t, format.MethodAuto, c.Method())
	})

	t.Run("auto method", func(t *testing.T) {
		c, err := NewCodec(WithMethod(format.MethodLZSS), WithAutoMethod())
		require.NoError(t, err)
		require.Equal(t, format.MethodAuto, c.Method())
		require.Equal(t, units("NHello World."), c.CompressString("Hello World."))
	})

	invalid := map[string]CodecOption{
		"unknown method":     WithMethod(format.Method('X')),
		"zero sample":        WithSampleSize(0),
		"negative sample":    WithSampleSize(-1),
		"inverted diversity": WithDiversityThresholds(10, 5),
		"negative diversity": WithDiversityThresholds(-1, 5),
	}
	for name, opt := range invalid {
		t.Run(name, func(t *testing.T) {
			c, err := NewCodec(opt)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
			require.Nil(t, c)
		})
	}
}

func TestPreferLZSS(t *testing.T) {
	c := newDefaultCodec()

	require.False(t, c.preferLZSS(units(strings.Repeat("a", DefaultSampleSize))))
	require.True(t, c.preferLZSS(units(strings.Repeat("a", DefaultSampleSize+1))))

	mid := make([]uint16, 400)
	for i := range mid {
		mid[i] = uint16(i % 100) //nolint:gosec
	}
	require.False(t, c.preferLZSS(mid))

	require.True(t, c.preferLZSS(fullRange()[:400]))
}

func TestDistinctUnits(t *testing.T) {
	require.Equal(t, 0, distinctUnits(nil, 10))
	require.Equal(t, 3, distinctUnits(units("abcabc"), 10))
	require.Equal(t, 2, distinctUnits(units("abcabc"), 2))
}

func TestStats(t *testing.T) {
	src := units("hello hello hello")

	env, st := defaultCodec.CompressWithStats(src)
	require.Equal(t, format.MethodLZW, st.Method)
	require.Equal(t, 17, st.InputUnits)
	require.Equal(t, 12, st.OutputUnits)
	require.Equal(t, 17, st.InputBytes)
	require.Equal(t, 17, st.OutputBytes)
	require.InDelta(t, 1.0, st.Ratio, 1e-9)
	require.Equal(t, hash.Digest(src), st.InputDigest)
	require.Equal(t, hash.Digest(env), st.OutputDigest)

	empty := defaultCodec.Stats(nil)
	require.Equal(t, format.MethodAuto, empty.Method)
	require.Zero(t, empty.Ratio)
}

func TestCodec_Concurrent(t *testing.T) {
	inputs := [][]uint16{
		units("hello hello hello"),
		units(strings.Repeat("the quick brown fox ", 20)),
		fullRange()[:5000],
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(src []uint16) {
			defer wg.Done()
			for range 10 {
				got, err := Decompress(Compress(src))
				if err != nil || !slices.Equal(src, got) {
					t.Errorf("round trip failed: %v", err)
					return
				}
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("hello hello hello"))
	f.Add([]byte{0x00, 0xD8, 0x00, 0xDC, 0xFF, 0xFF})
	f.Add([]byte(strings.Repeat("ab", 200)))

	f.Fuzz(func(t *testing.T, data []byte) {
		src := make([]uint16, len(data)/2)
		for i := range src {
			src[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
		}

		env := Compress(src)
		got, err := Decompress(env)
		require.NoError(t, err)
		require.True(t, slices.Equal(src, got))
		require.LessOrEqual(t, encoding.UTF8Len(env), encoding.UTF8Len(src)+1)
	})
}

func FuzzDecompress(f *testing.F) {
	f.Add([]byte("Sabc"))
	f.Add([]byte("W\x80\x00"))
	f.Add([]byte("Nxyz"))

	f.Fuzz(func(t *testing.T, data []byte) {
		src := encoding.FromLatin1(data)
		_, _ = Decompress(src)
	})
}

func BenchmarkCompress(b *testing.B) {
	src := units(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200))

	b.ReportAllocs()
	for b.Loop() {
		_ = Compress(src)
	}
}

func BenchmarkDecompress(b *testing.B) {
	env := Compress(units(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)))

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Decompress(env)
	}
}
