package wire

import (
	"encoding/binary"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/errors"
)

// Entry is one decoded tag-length-value entry. Value aliases the input
// buffer; callers that keep it past the buffer's lifetime must copy.
type Entry struct {
	Value []byte
	Tag   uint
	Hint  logwire.DisplayHint
}

// Header is the decoded fixed record header.
type Header struct {
	Target  string
	Module  string
	File    string
	Line    uint32
	Level   logwire.Level
	NumArgs int
}

// DecodeEntry reads one entry from the start of data and returns it together
// with the number of bytes consumed. The hint is carried through unvalidated
// so a consumer can skip entries it does not understand; the payload length
// is checked against the remaining input.
func DecodeEntry(data []byte) (Entry, int, error) {
	if len(data) < logwire.EntryPrefixSize {
		return Entry{}, 0, errors.Truncated(errors.PhaseDecode, "entry prefix", logwire.EntryPrefixSize, len(data))
	}

	tag := word(data)
	hint := word(data[logwire.WordSize:])
	length := int(word(data[2*logwire.WordSize:]))

	// Compare against the remaining space rather than computing
	// prefix+length, which a hostile length word can overflow.
	if length < 0 || length > len(data)-logwire.EntryPrefixSize {
		return Entry{}, 0, errors.Truncated(errors.PhaseDecode, "entry payload", length, len(data)-logwire.EntryPrefixSize)
	}
	total := logwire.EntryPrefixSize + length

	return Entry{
		Tag:   tag,
		Hint:  logwire.DisplayHint(hint),
		Value: data[logwire.EntryPrefixSize:total],
	}, total, nil
}

// DecodeHeader reads the six canonical header entries from the start of data.
// Tags are validated positionally: target, level, module, file, line,
// argument count. It returns the header and the offset at which argument
// entries begin.
func DecodeHeader(data []byte) (Header, int, error) {
	var h Header
	size := 0

	for _, field := range [logwire.NumHeaderFields]logwire.RecordField{
		logwire.FieldTarget,
		logwire.FieldLevel,
		logwire.FieldModule,
		logwire.FieldFile,
		logwire.FieldLine,
		logwire.FieldNumArgs,
	} {
		e, n, err := DecodeEntry(data[size:])
		if err != nil {
			return Header{}, 0, err
		}
		if e.Tag != uint(field) {
			return Header{}, 0, errors.InvalidTag(errors.PhaseDecode, "header field", e.Tag)
		}
		size += n

		switch field {
		case logwire.FieldTarget:
			h.Target = string(e.Value)
		case logwire.FieldLevel:
			if len(e.Value) != logwire.WordSize {
				return Header{}, 0, errors.InvalidData(errors.PhaseDecode, "level payload is not one word")
			}
			h.Level = logwire.Level(word(e.Value))
			if !h.Level.Valid() {
				return Header{}, 0, errors.InvalidTag(errors.PhaseDecode, "level", uint(h.Level))
			}
		case logwire.FieldModule:
			h.Module = string(e.Value)
		case logwire.FieldFile:
			h.File = string(e.Value)
		case logwire.FieldLine:
			if len(e.Value) != 4 {
				return Header{}, 0, errors.InvalidData(errors.PhaseDecode, "line payload is not 4 bytes")
			}
			h.Line = binary.NativeEndian.Uint32(e.Value)
		case logwire.FieldNumArgs:
			if len(e.Value) != logwire.WordSize {
				return Header{}, 0, errors.InvalidData(errors.PhaseDecode, "argument count payload is not one word")
			}
			h.NumArgs = int(word(e.Value))
		}
	}

	return h, size, nil
}
