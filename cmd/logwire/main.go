package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tracekit/logwire"
	"github.com/tracekit/logwire/record"
	"github.com/tracekit/logwire/render"
	"github.com/tracekit/logwire/stream"
)

func main() {
	var (
		demo        = flag.String("demo", "", "Write a demo record stream to this file")
		compress    = flag.Bool("compress", false, "Compress the demo stream with zstd")
		dump        = flag.String("dump", "", "Decode and print a record stream file")
		useZap      = flag.Bool("zap", false, "Dispatch dumped records through a zap logger")
		interactive = flag.String("i", "", "Browse a record stream file interactively")
	)
	flag.Parse()

	switch {
	case *demo != "":
		if err := runDemo(*demo, *compress); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *dump != "":
		if err := runDump(*dump, *useZap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *interactive != "":
		if err := runInteractive(*interactive); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: logwire -demo <file> [-compress]")
		fmt.Fprintln(os.Stderr, "       logwire -dump <file> [-zap]")
		fmt.Fprintln(os.Stderr, "       logwire -i <file>  (interactive mode)")
		os.Exit(1)
	}
}

// demoLine is one call site of the demo producer.
type demoLine struct {
	format string
	module string
	file   string
	line   uint32
	level  logwire.Level
	args   []any
}

var demoLines = []demoLine{
	{"this is an error message", "demo/faults", "faults.go", 17, logwire.LevelError, nil},
	{"this is a warning message", "demo/faults", "faults.go", 18, logwire.LevelWarn, nil},
	{"this is an info message", "demo/startup", "startup.go", 42, logwire.LevelInfo, nil},
	{"this is a debug message", "demo/startup", "startup.go", 43, logwire.LevelDebug, nil},
	{"this is a trace message", "demo/startup", "startup.go", 44, logwire.LevelTrace, nil},
	{"a message with args PID: {}", "demo/proc", "proc.go", 91, logwire.LevelInfo,
		[]any{uint32(4242)}},
	{"request from {:ipv4} flags {:x}", "demo/net", "conn.go", 133, logwire.LevelInfo,
		[]any{uint32(1575522155), uint16(0xC0DE)}},
	{"peer {:ipv6} rtt {} ms", "demo/net", "conn.go", 160, logwire.LevelDebug,
		[]any{[8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}, float64(0.82)}},
	{"checksum {:X} over {{raw}} block", "demo/store", "block.go", 27, logwire.LevelWarn,
		[]any{uint64(0xFEEDFACECAFE)}},
}

// runDemo produces the demo records the way a constrained producer would:
// one fixed buffer, compile once per template, discard on failure.
func runDemo(path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w, err := stream.NewWriter(f, stream.Options{Compress: compress})
	if err != nil {
		return err
	}

	var buf [logwire.BufCapacity]byte
	for _, d := range demoLines {
		prog, err := record.Compile(d.format)
		if err != nil {
			return fmt.Errorf("compile %q: %w", d.format, err)
		}
		n, err := prog.Append(buf[:], record.Meta{
			Target: "demo",
			Level:  d.level,
			Module: d.module,
			File:   d.file,
			Line:   d.line,
		}, d.args...)
		if err != nil {
			return fmt.Errorf("encode %q: %w", d.format, err)
		}
		if err := w.Append(buf[:n]); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d records to %s\n", len(demoLines), path)
	return nil
}

var levelStyles = map[logwire.Level]lipgloss.Style{
	logwire.LevelError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
	logwire.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166")),
	logwire.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
	logwire.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
	logwire.LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
}

func runDump(path string, useZap bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := stream.NewReader(f)
	if err != nil {
		return err
	}
	defer r.Close()

	var sink *render.Sink
	if useZap {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init zap: %w", err)
		}
		defer logger.Sync()
		sink = render.NewSink(logger)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	for {
		frame, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if sink != nil {
			if _, err := sink.Consume(frame); err != nil {
				return err
			}
			continue
		}

		rec, _, err := render.DecodeRecord(frame)
		if err != nil {
			return err
		}
		level := rec.Level.String()
		if color {
			level = levelStyles[rec.Level].Render(level)
		}
		fmt.Printf("%-5s %s %s:%d %s\n", level, rec.Target, rec.File, rec.Line, rec.Message)
	}
}
