package logwire

import "strconv"

// Buffer sizing constants shared by producers and consumers.
const (
	// BufCapacity is the fixed record buffer size the surrounding system is
	// expected to pre-allocate. The encoder itself accepts any buffer length;
	// this is the size producers should reserve per record.
	BufCapacity = 8192

	// NumHeaderFields is the number of header entries at the start of every
	// record.
	NumHeaderFields = 6

	// WordSize is the width in bytes of the tag, hint and length prefix
	// fields of every entry: one host word each, native byte order.
	WordSize = strconv.IntSize / 8

	// EntryPrefixSize is the fixed size of an entry before its payload.
	EntryPrefixSize = 3 * WordSize
)

// Level is a record severity. Values are part of the wire format.
type Level uint

const (
	// LevelError designates very serious errors.
	LevelError Level = 1
	// LevelWarn designates hazardous situations.
	LevelWarn Level = 2
	// LevelInfo designates useful information.
	LevelInfo Level = 3
	// LevelDebug designates lower priority information.
	LevelDebug Level = 4
	// LevelTrace designates very low priority, often extremely verbose,
	// information.
	LevelTrace Level = 5
)

// String returns the conventional lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	}
	return "level(" + strconv.FormatUint(uint64(l), 10) + ")"
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

// RecordField tags identify the six header entries. Values are part of the
// wire format. Header entries are always written in increasing tag order so
// a consumer can read them positionally.
type RecordField uint

const (
	FieldTarget  RecordField = 1 // logging target name (text)
	FieldLevel   RecordField = 2 // severity (word)
	FieldModule  RecordField = 3 // originating module path (text)
	FieldFile    RecordField = 4 // source file path (text)
	FieldLine    RecordField = 5 // source line (uint32)
	FieldNumArgs RecordField = 6 // entry count following the header (word)
)

// ArgKind tags identify the payload type of an argument entry. The set is
// closed: constrained producers cannot dispatch over open type sets, so every
// encodable type is enumerated here. Values are part of the wire format.
type ArgKind uint

const (
	KindInt8  ArgKind = 0
	KindInt16 ArgKind = 1
	KindInt32 ArgKind = 2
	KindInt64 ArgKind = 3
	KindInt   ArgKind = 4 // pointer-width signed

	KindUint8  ArgKind = 5
	KindUint16 ArgKind = 6
	KindUint32 ArgKind = 7
	KindUint64 ArgKind = 8
	KindUint   ArgKind = 9 // pointer-width unsigned

	KindFloat32 ArgKind = 10
	KindFloat64 ArgKind = 11

	KindBytes16  ArgKind = 12 // [16]byte, e.g. a raw IPv6 address
	KindUint16x8 ArgKind = 13 // [8]uint16, e.g. IPv6 hextets

	KindStr ArgKind = 14 // UTF-8 text
)

// String returns a short name for the kind, used in diagnostics.
func (k ArgKind) String() string {
	switch k {
	case KindInt8:
		return "i8"
	case KindInt16:
		return "i16"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindInt:
		return "int"
	case KindUint8:
		return "u8"
	case KindUint16:
		return "u16"
	case KindUint32:
		return "u32"
	case KindUint64:
		return "u64"
	case KindUint:
		return "uint"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	case KindBytes16:
		return "[16]u8"
	case KindUint16x8:
		return "[8]u16"
	case KindStr:
		return "str"
	}
	return "kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// DisplayHint tells the renderer how to present a payload. Hints are
// orthogonal to the payload type; every entry carries one, header entries and
// literal text always carry HintDefault. Values are part of the wire format.
type DisplayHint uint

const (
	// HintDefault is the plain representation for the payload type.
	HintDefault DisplayHint = 1
	// HintLowerHex renders integers as lowercase hexadecimal (`{:x}`).
	HintLowerHex DisplayHint = 2
	// HintUpperHex renders integers as uppercase hexadecimal (`{:X}`).
	HintUpperHex DisplayHint = 3
	// HintIPv4 renders a 32-bit value as a dotted-quad address (`{:ipv4}`).
	HintIPv4 DisplayHint = 4
	// HintIPv6 renders a 16-byte or 8-hextet value as an IPv6 address
	// (`{:ipv6}`).
	HintIPv6 DisplayHint = 5
)

// String returns the template keyword for the hint, or "default".
func (h DisplayHint) String() string {
	switch h {
	case HintDefault:
		return "default"
	case HintLowerHex:
		return "x"
	case HintUpperHex:
		return "X"
	case HintIPv4:
		return "ipv4"
	case HintIPv6:
		return "ipv6"
	}
	return "hint(" + strconv.FormatUint(uint64(h), 10) + ")"
}

// Valid reports whether h is one of the defined hints.
func (h DisplayHint) Valid() bool {
	return h >= HintDefault && h <= HintIPv6
}
