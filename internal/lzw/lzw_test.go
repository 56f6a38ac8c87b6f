package lzw

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzstr/errs"
)

func TestCompress_Fixture(t *testing.T) {
	got := Compress([]byte("hello hello hello"))
	want := []uint16{'h', 'e', 'l', 'l', 'o', ' ', 0x80, 0x82, 0x84, 0x86, 0x83}
	require.Equal(t, want, got)

	out, err := Decompress(got)
	require.NoError(t, err)
	require.Equal(t, []byte("hello hello hello"), out)
}

func TestCompress_Empty(t *testing.T) {
	require.Nil(t, Compress(nil))

	out, err := Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestDecompress_CodeDefinedByCurrentStep(t *testing.T) {
	// "aaaa" emits a, then the code for "aa" before the decoder has seen it.
	got := Compress([]byte("aaaa"))
	require.Equal(t, []uint16{'a', 0x80, 'a'}, got)

	out, err := Decompress(got)
	require.NoError(t, err)
	require.Equal(t, []byte("aaaa"), out)
}

func TestCompress_HighBytes(t *testing.T) {
	src := []byte{0xE3, 0x81, 0x82, 0xE3, 0x81, 0x82}
	got := Compress(src)
	require.Equal(t, []uint16{0xFFE3, 0xFF81, 0xFF82, 0x80, 0xFF82}, got)

	out, err := Decompress(got)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 0, 256*4)
	for range 4 {
		for b := range 256 {
			all = append(all, byte(b))
		}
	}

	inputs := map[string][]byte{
		"single":    []byte("x"),
		"text":      []byte(strings.Repeat("to be or not to be, that is the question. ", 50)),
		"run":       []byte(strings.Repeat("z", 10000)),
		"bytes":     all,
		"utf8":      []byte(strings.Repeat("日本語のテキスト", 40)),
		"kwkwk":     []byte("abababababababab"),
		"binaryish": {0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x80, 0x7F, 0x80, 0x7F},
	}

	for name, src := range inputs {
		t.Run(name, func(t *testing.T) {
			out, err := Decompress(Compress(src))
			require.NoError(t, err)
			require.Equal(t, src, out)
		})
	}
}

func TestRoundTrip_DictionaryFull(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6)) //nolint:gosec
	src := make([]byte, 400000)
	for i := range src {
		src[i] = byte(rng.IntN(16))
	}

	got := Compress(src)
	require.Greater(t, len(got), MaxCode-FirstCode+1)

	out, err := Decompress(got)
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestDecompress_InvalidCode(t *testing.T) {
	tests := map[string][]uint16{
		"first code is a dictionary code": {0x80},
		"code beyond next":                {'a', 0x81},
		"code far ahead":                  {'a', 'b', 0x1000},
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := Decompress(src)
			require.ErrorIs(t, err, errs.ErrInvalidCode)
			require.Nil(t, out)
		})
	}
}

func TestUnitMapping(t *testing.T) {
	require.Equal(t, uint16('a'), CodeToUnit('a'))
	require.Equal(t, uint16(0xFF80), CodeToUnit(0x80))
	require.Equal(t, uint16(0xFFFF), CodeToUnit(0xFF))
	require.Equal(t, uint16(0x80), CodeToUnit(FirstCode))
	require.Equal(t, uint16(0xFF7F), CodeToUnit(MaxCode))

	seen := make([]bool, 0x10000)
	for code := range 0x10000 {
		unit := CodeToUnit(uint16(code)) //nolint:gosec
		require.False(t, seen[unit], "unit 0x%04x assigned twice", unit)
		seen[unit] = true
		require.Equal(t, code, UnitToCode(unit))
	}
}

func BenchmarkCompress(b *testing.B) {
	src := []byte(strings.Repeat("to be or not to be, that is the question. ", 200))

	b.ReportAllocs()
	for b.Loop() {
		_ = Compress(src)
	}
}
