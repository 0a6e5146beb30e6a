package render_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/record"
	"github.com/tracekit/logwire/render"
)

func TestSinkConsume(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := render.NewSink(zap.New(core))

	prog, err := record.Compile("value {}")
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, logwire.BufCapacity)
	size := 0
	levels := []logwire.Level{logwire.LevelError, logwire.LevelWarn, logwire.LevelInfo}
	for i, lvl := range levels {
		m := meta
		m.Level = lvl
		n, err := prog.Append(buf[size:], m, uint32(i))
		if err != nil {
			t.Fatal(err)
		}
		size += n
	}

	consumed, err := sink.Consume(buf[:size])
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if consumed != size {
		t.Errorf("consumed = %d, want %d", consumed, size)
	}

	entries := logs.All()
	if len(entries) != len(levels) {
		t.Fatalf("logged %d entries, want %d", len(entries), len(levels))
	}

	wantLevels := []zapcore.Level{zapcore.ErrorLevel, zapcore.WarnLevel, zapcore.InfoLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
		if want := "value " + string(rune('0'+i)); e.Message != want {
			t.Errorf("entry %d message = %q, want %q", i, e.Message, want)
		}
		fields := e.ContextMap()
		if fields["target"] != meta.Target {
			t.Errorf("entry %d target = %v", i, fields["target"])
		}
		if fields["line"] != uint32(meta.Line) {
			t.Errorf("entry %d line = %v", i, fields["line"])
		}
	}
}

func TestSinkTraceMapsToDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := render.NewSink(zap.New(core))

	m := meta
	m.Level = logwire.LevelTrace
	prog, err := record.Compile("trace line")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, logwire.BufCapacity)
	n, err := prog.Append(buf, m)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sink.Consume(buf[:n]); err != nil {
		t.Fatal(err)
	}
	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.DebugLevel {
		t.Fatalf("entries = %+v, want one debug entry", entries)
	}
}

func TestSinkStopsOnBadInput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := render.NewSink(zap.New(core))

	good, err := record.Compile("ok")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, logwire.BufCapacity)
	n, err := good.Append(buf, meta)
	if err != nil {
		t.Fatal(err)
	}
	// Garbage after a valid record.
	data := append(append([]byte{}, buf[:n]...), 0xFF, 0xFF)

	consumed, err := sink.Consume(data)
	if err == nil {
		t.Fatal("Consume should fail on trailing garbage")
	}
	if consumed != n {
		t.Errorf("consumed = %d, want %d (the valid record)", consumed, n)
	}
	if len(logs.All()) != 1 {
		t.Errorf("logged %d entries, want 1", len(logs.All()))
	}
}

func TestSinkNilLogger(t *testing.T) {
	sink := render.NewSink(nil)
	prog, err := record.Compile("quiet")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, logwire.BufCapacity)
	n, err := prog.Append(buf, meta)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sink.Consume(buf[:n]); err != nil {
		t.Fatalf("nil-logger sink must still decode: %v", err)
	}
}
