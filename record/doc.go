// Package record assembles complete log records from a parsed template and
// positional call-site arguments.
//
// A record is the fixed six-field header followed by one entry per template
// fragment: literal fragments become text entries with the default hint,
// parameter fragments consume the next positional argument and carry the
// fragment's display hint. The fragment walk and the template parser are
// deliberately separate so the parser stays independently testable.
//
//	prog, err := record.Compile("listening on {:ipv4} port {}")
//	if err != nil {
//	    // malformed template; reject the call site
//	}
//
//	buf := make([]byte, logwire.BufCapacity)
//	n, err := prog.Append(buf, record.Meta{
//	    Target: "net",
//	    Level:  logwire.LevelInfo,
//	    Module: "net/listener",
//	    File:   "listener.go",
//	    Line:   88,
//	}, uint32(0xC0A80001), uint16(8080))
//
// Compile runs once per distinct template; Append runs per record and never
// allocates beyond the argument dispatch itself. On any failure the caller
// must discard the buffer contents, not use them partially.
//
// Accepted argument types are the closed wire set: int8 through int64, int,
// uint8 through uint64, uint, float32, float64, [16]byte, [8]uint16 and
// string. Anything else is an invalid-input error, as is an argument count
// that does not match the template's parameter count.
package record
