// Package wire implements the tag-length-value encoding engine for logwire
// records, and the matching entry-level decoder used by unconstrained
// consumers.
//
// # Encoding
//
// The encoder is built for producers that cannot allocate: every function
// writes into a caller-owned byte buffer, performs a total-size check before
// touching the buffer, and returns either the number of bytes written or the
// shared capacity error. Nothing is retained across calls and nothing panics
// on short buffers.
//
//	buf := make([]byte, logwire.BufCapacity)
//	n, err := wire.EncodeRecordHeader(buf, "app", logwire.LevelInfo,
//		"app/server", "server.go", 127, 3)
//	if err != nil {
//	    // buffer too small; discard the record
//	}
//	m, err := wire.EncodeUint32(buf[n:], addr, logwire.HintIPv4)
//
// Each typed encoder maps one member of the closed encodable set to its
// native-endian byte representation and delegates to EncodeEntry with the
// corresponding [logwire.ArgKind] tag. Adding an encodable type means adding
// a tag and one such function; there is no open dispatch.
//
// # Decoding
//
// DecodeEntry reads one entry and returns how many bytes it consumed, so a
// consumer can walk a record and skip entries it does not understand:
//
//	for len(data) > 0 {
//	    e, n, err := wire.DecodeEntry(data)
//	    if err != nil {
//	        return err
//	    }
//	    data = data[n:]
//	}
//
// DecodeHeader reads the six canonical header entries positionally and
// validates their tags.
//
// # Layout
//
// Every entry is [tag][hint][length][payload] where the three prefix fields
// are each one host word in native byte order. The prefix size is fixed at
// [logwire.EntryPrefixSize] regardless of payload.
package wire
