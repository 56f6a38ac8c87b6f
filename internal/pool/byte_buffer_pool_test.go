package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 128, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(TranscodeBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	_, _ = bb.Write([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.Grow(32)
		assert.Equal(t, TranscodeBufferDefaultSize, cap(bb.B))
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(8 * TranscodeBufferDefaultSize)
		bb.B = bb.B[:cap(bb.B)]
		bb.Grow(1)
		assert.Equal(t, 10*TranscodeBufferDefaultSize, cap(bb.B))
	})

	t.Run("never less than required", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.Grow(3 * TranscodeBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B), 3*TranscodeBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte("abcd"))
		bb.Grow(100)
		assert.Equal(t, []byte("abcd"), bb.Bytes())
	})
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := p.Get()
	big.Grow(1024)
	p.Put(big)

	got := p.Get()
	assert.LessOrEqual(t, cap(got.B), 64, "oversized buffers must not be recycled")
	p.Put(nil)
}

func TestTranscodeBuffer_Reuse(t *testing.T) {
	bb := GetTranscodeBuffer()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("payload"))
	PutTranscodeBuffer(bb)

	again := GetTranscodeBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffers are handed out empty")
	PutTranscodeBuffer(again)
}

func TestGetUint16Slice(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"small", 10},
		{"seeded input", 1024 + 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, release := GetUint16Slice(tt.size)
			defer release()
			require.Len(t, s, tt.size)
		})
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for range 100 {
				bb := GetTranscodeBuffer()
				_, _ = bb.Write([]byte{byte(n)})
				PutTranscodeBuffer(bb)

				s, release := GetUint16Slice(n + 1)
				s[0] = uint16(n)
				release()
			}
		}(i)
	}
	wg.Wait()
}
