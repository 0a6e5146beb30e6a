package wire

import (
	"encoding/binary"

	"github.com/tracekit/logwire"
)

// putWord writes one pointer-width word in native byte order.
// The caller guarantees len(b) >= logwire.WordSize.
func putWord(b []byte, v uint) {
	if logwire.WordSize == 8 {
		binary.NativeEndian.PutUint64(b, uint64(v))
	} else {
		binary.NativeEndian.PutUint32(b, uint32(v))
	}
}

// word reads one pointer-width word in native byte order.
// The caller guarantees len(b) >= logwire.WordSize.
func word(b []byte) uint {
	if logwire.WordSize == 8 {
		return uint(binary.NativeEndian.Uint64(b))
	}
	return uint(binary.NativeEndian.Uint32(b))
}
