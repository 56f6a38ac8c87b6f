package pool

import "sync"

// maxPooledUnits caps the capacity of uint16 slices kept in the pool.
const maxPooledUnits = 1 << 18

var uint16SlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// GetUint16Slice retrieves a uint16 slice of exactly size elements.
//
// The contents are unspecified; callers overwrite them. The returned cleanup
// function must be called (typically with defer) to return the slice.
//
// Example:
//
//	data, release := pool.GetUint16Slice(n)
//	defer release()
func GetUint16Slice(size int) ([]uint16, func()) {
	ptr, _ := uint16SlicePool.Get().(*[]uint16)

	slice := *ptr
	if cap(slice) < size {
		slice = make([]uint16, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		if cap(*ptr) > maxPooledUnits {
			return
		}
		uint16SlicePool.Put(ptr)
	}
}
