// Package logwire defines the wire contract for a compact, self-describing
// binary log record format designed for producers that run in severely
// constrained environments: a caller-supplied fixed-size buffer, no heap
// allocation on the encode path, and a hard guarantee that encoding never
// panics or overruns.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	logwire/             Root package with the shared tag, hint and level enumerations
//	├── wire/            Bounds-checked TLV encoder and the matching entry decoder
//	├── template/        Format template parser producing literal/parameter fragments
//	├── record/          Record assembly: template + arguments -> one encoded record
//	├── render/          Consumer-side decoding and human-readable rendering
//	├── stream/          Length-framed (optionally compressed) record streams
//	├── errors/          Structured error types shared across packages
//	└── cmd/logwire/     Demo producer/consumer CLI with an interactive viewer
//
// # Wire Format
//
// A record is a sequence of tag-length-value entries with no outer framing:
//
//	[tag: word][hint: word][length: word][payload: length bytes]
//
// where a word is the host's pointer width ([WordSize] bytes) in native byte
// order. Six header entries always come first, in the fixed order target,
// level, module, file, line, argument count. They are followed by one entry
// per template fragment, in template order: literal text entries and typed
// argument entries, each carrying a [DisplayHint] for the renderer.
//
// # Stability
//
// The numeric values of [Level], [RecordField], [ArgKind] and [DisplayHint]
// and the word-sized field widths are the contract between the producer and
// an independently built consumer. They must never be renumbered or resized.
//
// # Quick Start
//
// Produce a record into a fixed buffer:
//
//	prog, err := record.Compile("request from {:ipv4} took {} ms")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var buf [logwire.BufCapacity]byte
//	n, err := prog.Append(buf[:], record.Meta{
//	    Target: "ingress",
//	    Level:  logwire.LevelInfo,
//	    Module: "ingress/http",
//	    File:   "handler.go",
//	    Line:   42,
//	}, uint32(0x5DE6EE6B), uint64(7))
//
// Consume it elsewhere:
//
//	rec, _, err := render.DecodeRecord(buf[:n])
//	fmt.Println(rec.Message) // "request from 93.230.238.107 took 7 ms"
package logwire
