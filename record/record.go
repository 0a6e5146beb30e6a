package record

import (
	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/errors"
	"github.com/tracekit/logwire/template"
	"github.com/tracekit/logwire/wire"
)

// Meta carries the call-site metadata written into the record header.
type Meta struct {
	Target string
	Module string
	File   string
	Line   uint32
	Level  logwire.Level
}

// Program is a compiled template ready to emit records.
type Program struct {
	frags  []template.Fragment
	params int
}

// Compile parses format once and precomputes the entry layout. The returned
// Program is immutable and safe for concurrent Append calls into distinct
// buffers.
func Compile(format string) (*Program, error) {
	frags, err := template.Parse(format)
	if err != nil {
		return nil, err
	}

	params := 0
	for _, f := range frags {
		if f.Kind == template.FragmentParameter {
			params++
		}
	}

	return &Program{frags: frags, params: params}, nil
}

// NumParams returns the number of positional arguments Append expects.
func (p *Program) NumParams() int {
	return p.params
}

// NumEntries returns the number of entries written after the header: one per
// fragment, literals included. This is the value stored in the header's
// argument-count field.
func (p *Program) NumEntries() int {
	return len(p.frags)
}

// Append writes one complete record into buf: the header, then every
// fragment in template order. It returns the total bytes written. On any
// error the bytes already written are not a usable record and must be
// discarded by the caller.
func (p *Program) Append(buf []byte, meta Meta, args ...any) (int, error) {
	if len(args) != p.params {
		return 0, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			Detail("template takes %d arguments, got %d", p.params, len(args)).
			Build()
	}

	size, err := wire.EncodeRecordHeader(buf, meta.Target, meta.Level, meta.Module, meta.File, meta.Line, len(p.frags))
	if err != nil {
		return 0, err
	}

	arg := 0
	for _, f := range p.frags {
		var n int
		switch f.Kind {
		case template.FragmentLiteral:
			n, err = wire.EncodeString(buf[size:], f.Lit, logwire.HintDefault)
		case template.FragmentParameter:
			n, err = encodeArg(buf[size:], args[arg], f.Hint)
			arg++
		}
		if err != nil {
			return 0, err
		}
		size += n
	}

	return size, nil
}

// encodeArg dispatches one argument to its typed encoder. The type set is
// closed; see the logwire.ArgKind enumeration.
func encodeArg(buf []byte, arg any, hint logwire.DisplayHint) (int, error) {
	switch v := arg.(type) {
	case int8:
		return wire.EncodeInt8(buf, v, hint)
	case int16:
		return wire.EncodeInt16(buf, v, hint)
	case int32:
		return wire.EncodeInt32(buf, v, hint)
	case int64:
		return wire.EncodeInt64(buf, v, hint)
	case int:
		return wire.EncodeInt(buf, v, hint)
	case uint8:
		return wire.EncodeUint8(buf, v, hint)
	case uint16:
		return wire.EncodeUint16(buf, v, hint)
	case uint32:
		return wire.EncodeUint32(buf, v, hint)
	case uint64:
		return wire.EncodeUint64(buf, v, hint)
	case uint:
		return wire.EncodeUint(buf, v, hint)
	case float32:
		return wire.EncodeFloat32(buf, v, hint)
	case float64:
		return wire.EncodeFloat64(buf, v, hint)
	case [16]byte:
		return wire.EncodeBytes16(buf, v, hint)
	case [8]uint16:
		return wire.EncodeUint16x8(buf, v, hint)
	case string:
		return wire.EncodeString(buf, v, hint)
	}
	return 0, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
		Value(arg).
		Detail("argument type %T is not encodable", arg).
		Build()
}
