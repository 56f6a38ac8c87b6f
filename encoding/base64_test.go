package encoding

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeBase64(t *testing.T) {
	require.Empty(t, EncodeBase64(nil))
	require.Equal(t, "YQ==", EncodeBase64([]byte("a")))
	require.Equal(t, "YWI=", EncodeBase64([]byte("ab")))
	require.Equal(t, "YWJj", EncodeBase64([]byte("abc")))
	require.Equal(t, "+/8=", EncodeBase64([]byte{0xFB, 0xFF}))
}

func TestDecodeBase64_RoundTrip(t *testing.T) {
	data := make([]byte, 0, 300)
	for i := range 300 {
		data = append(data, byte(i))
	}

	for n := range len(data) {
		text := EncodeBase64(data[:n])
		require.Equal(t, base64.StdEncoding.EncodeToString(data[:n]), text)
		require.Equal(t, data[:n], DecodeBase64(text))
	}
}

func TestDecodeBase64_Lenient(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{name: "empty", text: "", want: []byte{}},
		{name: "whitespace", text: " YW\nJj\r\n\tZA== ", want: []byte("abcd")},
		{name: "unpadded", text: "YWJjZA", want: []byte("abcd")},
		{name: "url safe characters skipped", text: "YW-Jj_", want: []byte("abc")},
		{name: "stops at padding", text: "YQ==YWJj", want: []byte("a")},
		{name: "single trailing character dropped", text: "YWJjZ", want: []byte("abc")},
		{name: "only padding", text: "====", want: []byte{}},
		{name: "only garbage", text: "!!**", want: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeBase64(tt.text))
		})
	}
}
