package render

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracekit/logwire"
)

// Sink forwards decoded records into a zap logger. The record's message
// becomes the log message; target, module, file and line travel as
// structured fields.
type Sink struct {
	log *zap.Logger
}

// NewSink creates a sink writing to log. A nil logger degrades to a no-op
// sink that still decodes (and therefore validates) its input.
func NewSink(log *zap.Logger) *Sink {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sink{log: log}
}

// Consume decodes and logs every record in data, which must contain only
// whole, back-to-back records. It returns the number of bytes consumed;
// on error, records decoded before the failure have already been logged.
func (s *Sink) Consume(data []byte) (int, error) {
	size := 0
	for size < len(data) {
		rec, n, err := DecodeRecord(data[size:])
		if err != nil {
			return size, err
		}
		size += n
		s.Emit(rec)
	}
	return size, nil
}

// Emit logs one decoded record at its mapped level.
func (s *Sink) Emit(rec *Record) {
	ce := s.log.Check(zapLevel(rec.Level), rec.Message)
	if ce == nil {
		return
	}
	ce.Write(
		zap.String("target", rec.Target),
		zap.String("module", rec.Module),
		zap.String("file", rec.File),
		zap.Uint32("line", rec.Line),
	)
}

// zapLevel maps wire levels onto zap levels. Trace has no zap equivalent
// and joins debug.
func zapLevel(l logwire.Level) zapcore.Level {
	switch l {
	case logwire.LevelError:
		return zapcore.ErrorLevel
	case logwire.LevelWarn:
		return zapcore.WarnLevel
	case logwire.LevelInfo:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}
