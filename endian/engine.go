// Package endian provides byte order engines for UTF-16 byte streams and
// digests.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so a
// single value can both read and append fixed-size integers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, unit)
//	unit = engine.Uint16(buf[i:])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ParseEngine returns the engine named by "le"/"little" or "be"/"big".
func ParseEngine(name string) (EndianEngine, error) {
	switch strings.ToLower(name) {
	case "le", "little", "littleendian":
		return GetLittleEndianEngine(), nil
	case "be", "big", "bigendian":
		return GetBigEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", name)
	}
}
