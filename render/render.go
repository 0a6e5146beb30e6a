package render

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"net/netip"
	"strconv"
	"strings"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/errors"
	"github.com/tracekit/logwire/wire"
)

// Record is one fully decoded and rendered log record.
type Record struct {
	Target  string
	Module  string
	File    string
	Message string
	Line    uint32
	Level   logwire.Level
}

// DecodeRecord reads one record from the start of data: the six header
// entries, then as many argument entries as the header announces. It returns
// the rendered record and the number of bytes consumed, so callers can
// iterate over back-to-back records in one buffer.
func DecodeRecord(data []byte) (*Record, int, error) {
	h, size, err := wire.DecodeHeader(data)
	if err != nil {
		return nil, 0, err
	}

	var msg strings.Builder
	for i := 0; i < h.NumArgs; i++ {
		e, n, err := wire.DecodeEntry(data[size:])
		if err != nil {
			return nil, 0, err
		}
		size += n

		s, err := formatValue(e)
		if err != nil {
			return nil, 0, err
		}
		msg.WriteString(s)
	}

	return &Record{
		Target:  h.Target,
		Module:  h.Module,
		File:    h.File,
		Line:    h.Line,
		Level:   h.Level,
		Message: msg.String(),
	}, size, nil
}

// formatValue renders one argument entry per its tag and hint.
func formatValue(e wire.Entry) (string, error) {
	switch logwire.ArgKind(e.Tag) {
	case logwire.KindInt8:
		if len(e.Value) != 1 {
			return "", badPayload(e, 1)
		}
		return formatSigned(int64(int8(e.Value[0])), uint64(e.Value[0]), e.Hint), nil
	case logwire.KindInt16:
		if len(e.Value) != 2 {
			return "", badPayload(e, 2)
		}
		u := binary.NativeEndian.Uint16(e.Value)
		return formatSigned(int64(int16(u)), uint64(u), e.Hint), nil
	case logwire.KindInt32:
		if len(e.Value) != 4 {
			return "", badPayload(e, 4)
		}
		u := binary.NativeEndian.Uint32(e.Value)
		return formatSigned(int64(int32(u)), uint64(u), e.Hint), nil
	case logwire.KindInt64:
		if len(e.Value) != 8 {
			return "", badPayload(e, 8)
		}
		u := binary.NativeEndian.Uint64(e.Value)
		return formatSigned(int64(u), u, e.Hint), nil
	case logwire.KindInt:
		if len(e.Value) != logwire.WordSize {
			return "", badPayload(e, logwire.WordSize)
		}
		u := wordValue(e.Value)
		return formatSigned(int64(int(uint(u))), u, e.Hint), nil

	case logwire.KindUint8:
		if len(e.Value) != 1 {
			return "", badPayload(e, 1)
		}
		return formatUnsigned(uint64(e.Value[0]), e.Hint), nil
	case logwire.KindUint16:
		if len(e.Value) != 2 {
			return "", badPayload(e, 2)
		}
		return formatUnsigned(uint64(binary.NativeEndian.Uint16(e.Value)), e.Hint), nil
	case logwire.KindUint32:
		if len(e.Value) != 4 {
			return "", badPayload(e, 4)
		}
		v := binary.NativeEndian.Uint32(e.Value)
		if e.Hint == logwire.HintIPv4 {
			return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}).String(), nil
		}
		return formatUnsigned(uint64(v), e.Hint), nil
	case logwire.KindUint64:
		if len(e.Value) != 8 {
			return "", badPayload(e, 8)
		}
		return formatUnsigned(binary.NativeEndian.Uint64(e.Value), e.Hint), nil
	case logwire.KindUint:
		if len(e.Value) != logwire.WordSize {
			return "", badPayload(e, logwire.WordSize)
		}
		return formatUnsigned(wordValue(e.Value), e.Hint), nil

	case logwire.KindFloat32:
		if len(e.Value) != 4 {
			return "", badPayload(e, 4)
		}
		f := math.Float32frombits(binary.NativeEndian.Uint32(e.Value))
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case logwire.KindFloat64:
		if len(e.Value) != 8 {
			return "", badPayload(e, 8)
		}
		f := math.Float64frombits(binary.NativeEndian.Uint64(e.Value))
		return strconv.FormatFloat(f, 'g', -1, 64), nil

	case logwire.KindBytes16:
		if len(e.Value) != 16 {
			return "", badPayload(e, 16)
		}
		if e.Hint == logwire.HintIPv6 {
			var a [16]byte
			copy(a[:], e.Value)
			return netip.AddrFrom16(a).String(), nil
		}
		return hex.EncodeToString(e.Value), nil
	case logwire.KindUint16x8:
		if len(e.Value) != 16 {
			return "", badPayload(e, 16)
		}
		// Hextets travel in native order; the address lays them out
		// most-significant byte first.
		var a [16]byte
		for i := 0; i < 8; i++ {
			h := binary.NativeEndian.Uint16(e.Value[2*i:])
			a[2*i] = byte(h >> 8)
			a[2*i+1] = byte(h)
		}
		if e.Hint == logwire.HintIPv6 {
			return netip.AddrFrom16(a).String(), nil
		}
		return hex.EncodeToString(a[:]), nil

	case logwire.KindStr:
		return string(e.Value), nil
	}

	return "", errors.InvalidTag(errors.PhaseRender, "argument", e.Tag)
}

func formatSigned(v int64, bits uint64, hint logwire.DisplayHint) string {
	switch hint {
	case logwire.HintLowerHex:
		return strconv.FormatUint(bits, 16)
	case logwire.HintUpperHex:
		return strings.ToUpper(strconv.FormatUint(bits, 16))
	}
	return strconv.FormatInt(v, 10)
}

func formatUnsigned(v uint64, hint logwire.DisplayHint) string {
	switch hint {
	case logwire.HintLowerHex:
		return strconv.FormatUint(v, 16)
	case logwire.HintUpperHex:
		return strings.ToUpper(strconv.FormatUint(v, 16))
	}
	return strconv.FormatUint(v, 10)
}

func wordValue(b []byte) uint64 {
	if logwire.WordSize == 8 {
		return binary.NativeEndian.Uint64(b)
	}
	return uint64(binary.NativeEndian.Uint32(b))
}

func badPayload(e wire.Entry, want int) *errors.Error {
	return errors.New(errors.PhaseRender, errors.KindInvalidData).
		Detail("%s payload is %d bytes, want %d", logwire.ArgKind(e.Tag), len(e.Value), want).
		Build()
}
