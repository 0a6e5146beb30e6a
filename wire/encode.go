package wire

import (
	"encoding/binary"
	"math"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/errors"
)

// EncodeEntry writes one tag-length-value entry at the start of buf and
// returns the number of bytes written. If buf cannot hold the whole entry it
// returns errors.ErrCapacity and writes nothing.
//
// The entry is atomic at this granularity: the size check up front is the
// authoritative bound. The payload copy below additionally clamps to the
// remaining buffer, but with a correct precheck that clamp never truncates;
// it is a safety net, not a truncation feature.
func EncodeEntry(buf []byte, tag uint, hint logwire.DisplayHint, value []byte) (int, error) {
	size := logwire.EntryPrefixSize + len(value)
	if len(buf) < size {
		return 0, errors.ErrCapacity
	}

	putWord(buf, tag)
	putWord(buf[logwire.WordSize:], uint(hint))
	putWord(buf[2*logwire.WordSize:], uint(len(value)))
	copy(buf[logwire.EntryPrefixSize:], value)

	return size, nil
}

// encodeTextEntry is EncodeEntry with a string payload. Kept separate so
// that text writes never force a string-to-slice conversion, which could
// allocate on the producer's hot path.
func encodeTextEntry(buf []byte, tag uint, hint logwire.DisplayHint, value string) (int, error) {
	size := logwire.EntryPrefixSize + len(value)
	if len(buf) < size {
		return 0, errors.ErrCapacity
	}

	putWord(buf, tag)
	putWord(buf[logwire.WordSize:], uint(hint))
	putWord(buf[2*logwire.WordSize:], uint(len(value)))
	copy(buf[logwire.EntryPrefixSize:], value)

	return size, nil
}

// Typed encoders. One per member of the closed encodable set: each maps its
// value to native-endian bytes of the value's exact bit width and delegates
// to EncodeEntry with the matching logwire.ArgKind tag.

// EncodeInt8 writes v as a KindInt8 entry.
func EncodeInt8(buf []byte, v int8, hint logwire.DisplayHint) (int, error) {
	p := [1]byte{byte(v)}
	return EncodeEntry(buf, uint(logwire.KindInt8), hint, p[:])
}

// EncodeInt16 writes v as a KindInt16 entry.
func EncodeInt16(buf []byte, v int16, hint logwire.DisplayHint) (int, error) {
	var p [2]byte
	binary.NativeEndian.PutUint16(p[:], uint16(v))
	return EncodeEntry(buf, uint(logwire.KindInt16), hint, p[:])
}

// EncodeInt32 writes v as a KindInt32 entry.
func EncodeInt32(buf []byte, v int32, hint logwire.DisplayHint) (int, error) {
	var p [4]byte
	binary.NativeEndian.PutUint32(p[:], uint32(v))
	return EncodeEntry(buf, uint(logwire.KindInt32), hint, p[:])
}

// EncodeInt64 writes v as a KindInt64 entry.
func EncodeInt64(buf []byte, v int64, hint logwire.DisplayHint) (int, error) {
	var p [8]byte
	binary.NativeEndian.PutUint64(p[:], uint64(v))
	return EncodeEntry(buf, uint(logwire.KindInt64), hint, p[:])
}

// EncodeInt writes v as a pointer-width KindInt entry.
func EncodeInt(buf []byte, v int, hint logwire.DisplayHint) (int, error) {
	var p [logwire.WordSize]byte
	putWord(p[:], uint(v))
	return EncodeEntry(buf, uint(logwire.KindInt), hint, p[:])
}

// EncodeUint8 writes v as a KindUint8 entry.
func EncodeUint8(buf []byte, v uint8, hint logwire.DisplayHint) (int, error) {
	p := [1]byte{v}
	return EncodeEntry(buf, uint(logwire.KindUint8), hint, p[:])
}

// EncodeUint16 writes v as a KindUint16 entry.
func EncodeUint16(buf []byte, v uint16, hint logwire.DisplayHint) (int, error) {
	var p [2]byte
	binary.NativeEndian.PutUint16(p[:], v)
	return EncodeEntry(buf, uint(logwire.KindUint16), hint, p[:])
}

// EncodeUint32 writes v as a KindUint32 entry.
func EncodeUint32(buf []byte, v uint32, hint logwire.DisplayHint) (int, error) {
	var p [4]byte
	binary.NativeEndian.PutUint32(p[:], v)
	return EncodeEntry(buf, uint(logwire.KindUint32), hint, p[:])
}

// EncodeUint64 writes v as a KindUint64 entry.
func EncodeUint64(buf []byte, v uint64, hint logwire.DisplayHint) (int, error) {
	var p [8]byte
	binary.NativeEndian.PutUint64(p[:], v)
	return EncodeEntry(buf, uint(logwire.KindUint64), hint, p[:])
}

// EncodeUint writes v as a pointer-width KindUint entry.
func EncodeUint(buf []byte, v uint, hint logwire.DisplayHint) (int, error) {
	var p [logwire.WordSize]byte
	putWord(p[:], v)
	return EncodeEntry(buf, uint(logwire.KindUint), hint, p[:])
}

// EncodeFloat32 writes v as a KindFloat32 entry (IEEE 754 bits).
func EncodeFloat32(buf []byte, v float32, hint logwire.DisplayHint) (int, error) {
	var p [4]byte
	binary.NativeEndian.PutUint32(p[:], math.Float32bits(v))
	return EncodeEntry(buf, uint(logwire.KindFloat32), hint, p[:])
}

// EncodeFloat64 writes v as a KindFloat64 entry (IEEE 754 bits).
func EncodeFloat64(buf []byte, v float64, hint logwire.DisplayHint) (int, error) {
	var p [8]byte
	binary.NativeEndian.PutUint64(p[:], math.Float64bits(v))
	return EncodeEntry(buf, uint(logwire.KindFloat64), hint, p[:])
}

// EncodeBytes16 writes a fixed 16-byte array as a KindBytes16 entry.
// With HintIPv6 the renderer treats the payload as a raw IPv6 address.
func EncodeBytes16(buf []byte, v [16]byte, hint logwire.DisplayHint) (int, error) {
	return EncodeEntry(buf, uint(logwire.KindBytes16), hint, v[:])
}

// EncodeUint16x8 writes a fixed 8-element uint16 array as a KindUint16x8
// entry, elements concatenated in native byte order.
func EncodeUint16x8(buf []byte, v [8]uint16, hint logwire.DisplayHint) (int, error) {
	var p [16]byte
	for i, e := range v {
		binary.NativeEndian.PutUint16(p[2*i:], e)
	}
	return EncodeEntry(buf, uint(logwire.KindUint16x8), hint, p[:])
}

// EncodeString writes s as a KindStr entry (UTF-8 bytes, verbatim).
func EncodeString(buf []byte, s string, hint logwire.DisplayHint) (int, error) {
	return encodeTextEntry(buf, uint(logwire.KindStr), hint, s)
}

// EncodeRecordHeader writes the six header entries in canonical order:
// target, level, module, file, line, argument count. Each carries the
// default hint. On the first entry that does not fit it stops and returns
// errors.ErrCapacity; entries already written remain in the buffer and the
// caller must treat the whole record as discarded.
//
// The returned size is the offset at which argument entries begin.
func EncodeRecordHeader(buf []byte, target string, level logwire.Level, module, file string, line uint32, numArgs int) (int, error) {
	size := 0

	n, err := encodeTextEntry(buf, uint(logwire.FieldTarget), logwire.HintDefault, target)
	if err != nil {
		return 0, err
	}
	size += n

	var lvl [logwire.WordSize]byte
	putWord(lvl[:], uint(level))
	n, err = EncodeEntry(buf[size:], uint(logwire.FieldLevel), logwire.HintDefault, lvl[:])
	if err != nil {
		return 0, err
	}
	size += n

	n, err = encodeTextEntry(buf[size:], uint(logwire.FieldModule), logwire.HintDefault, module)
	if err != nil {
		return 0, err
	}
	size += n

	n, err = encodeTextEntry(buf[size:], uint(logwire.FieldFile), logwire.HintDefault, file)
	if err != nil {
		return 0, err
	}
	size += n

	var ln [4]byte
	binary.NativeEndian.PutUint32(ln[:], line)
	n, err = EncodeEntry(buf[size:], uint(logwire.FieldLine), logwire.HintDefault, ln[:])
	if err != nil {
		return 0, err
	}
	size += n

	var na [logwire.WordSize]byte
	putWord(na[:], uint(numArgs))
	n, err = EncodeEntry(buf[size:], uint(logwire.FieldNumArgs), logwire.HintDefault, na[:])
	if err != nil {
		return 0, err
	}
	size += n

	return size, nil
}
