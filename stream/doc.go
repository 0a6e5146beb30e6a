// Package stream reads and writes length-framed logwire record streams.
//
// The wire format itself has no outer framing; when records leave the
// producer's buffer and travel through a file or pipe, this package supplies
// the framing. A stream is a 9-byte header (8-byte magic "LOGWIRE1" plus a
// flags byte) followed by frames of [length: uint32 little-endian][record
// bytes]. When the zstd flag is set, everything after the header is one
// zstd-compressed stream of frames.
//
//	w, err := stream.NewWriter(f, stream.Options{Compress: true})
//	...
//	err = w.Append(recordBytes)
//	err = w.Close()
//
//	r, err := stream.NewReader(f)
//	for {
//	    rec, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// Framing is deliberately independent of record contents: a frame carries
// opaque bytes, and corrupt frames surface as stream errors while a frame
// that holds a malformed record surfaces later, from the decoder.
package stream
