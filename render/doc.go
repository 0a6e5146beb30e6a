// Package render is the unconstrained consumer side of the logwire format:
// it decodes complete records and renders them as human-readable text.
//
// DecodeRecord reads one record (header plus its argument entries) from a
// byte buffer and produces the final message by concatenating literal
// entries verbatim and formatting value entries according to their tag and
// display hint:
//
//	rec, n, err := render.DecodeRecord(data)
//	fmt.Printf("%s %s %s\n", rec.Level, rec.Target, rec.Message)
//
// Display hints map to renderings as follows: hex hints format integers in
// base 16, the ipv4 hint renders a 32-bit value as a dotted quad (most
// significant byte first), and the ipv6 hint renders a 16-byte array or an
// 8-hextet array as an IPv6 address. A hint that does not apply to the
// payload type falls back to the default rendering rather than failing: the
// record has already shipped, and a hint mismatch is cosmetic.
//
// Sink forwards decoded records into a zap logger, mapping wire levels onto
// zap levels and attaching target, module, file and line as structured
// fields:
//
//	sink := render.NewSink(logger)
//	if _, err := sink.Consume(buf); err != nil {
//	    // undecodable input
//	}
package render
