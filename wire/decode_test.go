package wire_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/tracekit/logwire"
	logwireerrors "github.com/tracekit/logwire/errors"
	"github.com/tracekit/logwire/wire"
)

func TestDecodeEntryTruncated(t *testing.T) {
	buf := make([]byte, logwire.EntryPrefixSize+8)
	n, err := wire.EncodeUint64(buf, 42, logwire.HintDefault)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	truncated := &logwireerrors.Error{Phase: logwireerrors.PhaseDecode, Kind: logwireerrors.KindTruncated}

	// Any prefix of a valid entry is a truncation error.
	for size := 0; size < n; size++ {
		if _, _, err := wire.DecodeEntry(buf[:size]); !errors.Is(err, truncated) {
			t.Errorf("size %d: err = %v, want truncated", size, err)
		}
	}
}

func putWord(b []byte, v uint) {
	if logwire.WordSize == 8 {
		binary.NativeEndian.PutUint64(b, uint64(v))
	} else {
		binary.NativeEndian.PutUint32(b, uint32(v))
	}
}

// A corrupt or hostile length word must surface as a truncation error, not
// overflow the size arithmetic and panic the decoder.
func TestDecodeEntryRejectsHugeLength(t *testing.T) {
	truncated := &logwireerrors.Error{Phase: logwireerrors.PhaseDecode, Kind: logwireerrors.KindTruncated}

	for _, length := range []uint{
		^uint(0) >> 1,                        // max positive length
		^uint(0)>>1 - uint(logwire.WordSize), // still overflows prefix+length
		^uint(0),                             // negative as a signed width
		uint(logwire.BufCapacity + 1),        // plausible but past the input
	} {
		buf := make([]byte, logwire.EntryPrefixSize+8)
		putWord(buf, uint(logwire.KindStr))
		putWord(buf[logwire.WordSize:], uint(logwire.HintDefault))
		putWord(buf[2*logwire.WordSize:], length)

		e, n, err := wire.DecodeEntry(buf)
		if !errors.Is(err, truncated) {
			t.Errorf("length %#x: err = %v, want truncated", length, err)
		}
		if n != 0 || e.Value != nil {
			t.Errorf("length %#x: returned entry %+v consuming %d bytes", length, e, n)
		}
	}
}

func TestDecodeEntrySkipsUnknownTag(t *testing.T) {
	// A reader must be able to skip an entry it does not understand by
	// advancing over the reported size.
	buf := make([]byte, 2*(logwire.EntryPrefixSize+4))
	n1, err := wire.EncodeEntry(buf, 999, logwire.HintDefault, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("encode unknown: %v", err)
	}
	n2, err := wire.EncodeUint32(buf[n1:], 7, logwire.HintDefault)
	if err != nil {
		t.Fatalf("encode known: %v", err)
	}

	e, n, err := wire.DecodeEntry(buf[:n1+n2])
	if err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if e.Tag != 999 {
		t.Errorf("tag = %d, want 999", e.Tag)
	}
	if n != n1 {
		t.Fatalf("consumed = %d, want %d", n, n1)
	}

	e, _, err = wire.DecodeEntry(buf[n:])
	if err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if e.Tag != uint(logwire.KindUint32) {
		t.Errorf("second tag = %d, want %d", e.Tag, logwire.KindUint32)
	}
}

func TestDecodeHeaderRejectsWrongOrder(t *testing.T) {
	// A stream that starts with an argument entry instead of the target
	// field is not a record header.
	buf := make([]byte, logwire.BufCapacity)
	n, err := wire.EncodeUint32(buf, 1, logwire.HintDefault)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	invalidTag := &logwireerrors.Error{Phase: logwireerrors.PhaseDecode, Kind: logwireerrors.KindInvalidTag}
	if _, _, err := wire.DecodeHeader(buf[:n]); !errors.Is(err, invalidTag) {
		t.Errorf("err = %v, want invalid_tag", err)
	}
}

func TestDecodeHeaderRejectsBadLevel(t *testing.T) {
	buf := make([]byte, logwire.BufCapacity)
	size, err := wire.EncodeString(buf, "t", logwire.HintDefault)
	if err != nil {
		t.Fatal(err)
	}
	// Rewrite the first entry's tag to FieldTarget, then append a level
	// entry with an out-of-range value.
	n, err := wire.EncodeEntry(buf, uint(logwire.FieldTarget), logwire.HintDefault, []byte("t"))
	if err != nil || n != size {
		t.Fatalf("re-encode target: n=%d err=%v", n, err)
	}

	word := make([]byte, logwire.WordSize)
	putWord(word, 99)
	if _, err := wire.EncodeEntry(buf[size:], uint(logwire.FieldLevel), logwire.HintDefault, word); err != nil {
		t.Fatal(err)
	}

	invalidTag := &logwireerrors.Error{Phase: logwireerrors.PhaseDecode, Kind: logwireerrors.KindInvalidTag}
	if _, _, err := wire.DecodeHeader(buf); !errors.Is(err, invalidTag) {
		t.Errorf("err = %v, want invalid_tag for level 99", err)
	}
}
