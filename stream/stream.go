package stream

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/tracekit/logwire/errors"
)

// Magic identifies a logwire record stream.
var Magic = []byte("LOGWIRE1")

// Header flags.
const flagZstd byte = 1 << 0

// maxFrameSize bounds a single frame so a corrupt length field cannot force
// an arbitrarily large allocation.
const maxFrameSize = 16 << 20

// Options configures a Writer.
type Options struct {
	// Compress enables zstd compression of the frame stream.
	Compress bool
}

// Writer appends framed records to an underlying stream. Not safe for
// concurrent use.
type Writer struct {
	dst  io.Writer
	zw   *zstd.Encoder
	lens [4]byte
}

// NewWriter writes the stream header to w and returns a Writer for appending
// frames. Close must be called to flush when compression is enabled.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	flags := byte(0)
	if opts.Compress {
		flags |= flagZstd
	}

	if _, err := w.Write(Magic); err != nil {
		return nil, errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "write magic")
	}
	if _, err := w.Write([]byte{flags}); err != nil {
		return nil, errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "write flags")
	}

	sw := &Writer{dst: w}
	if opts.Compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "init zstd writer")
		}
		sw.zw = zw
		sw.dst = zw
	}
	return sw, nil
}

// Append writes one record as a frame.
func (w *Writer) Append(record []byte) error {
	if len(record) > maxFrameSize {
		return errors.New(errors.PhaseStream, errors.KindInvalidInput).
			Detail("record of %d bytes exceeds frame limit %d", len(record), maxFrameSize).
			Build()
	}

	binary.LittleEndian.PutUint32(w.lens[:], uint32(len(record)))
	if _, err := w.dst.Write(w.lens[:]); err != nil {
		return errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "write frame length")
	}
	if _, err := w.dst.Write(record); err != nil {
		return errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "write frame")
	}
	return nil
}

// Close flushes buffered compressed data. It does not close the underlying
// writer, which the caller owns.
func (w *Writer) Close() error {
	if w.zw == nil {
		return nil
	}
	if err := w.zw.Close(); err != nil {
		return errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "flush zstd stream")
	}
	return nil
}

// Reader iterates over the frames of a record stream.
type Reader struct {
	src  io.Reader
	zr   *zstd.Decoder
	lens [4]byte
}

// NewReader validates the stream header of r and returns a frame reader.
func NewReader(r io.Reader) (*Reader, error) {
	header := make([]byte, len(Magic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrap(errors.PhaseStream, errors.KindTruncated, err, "read stream header")
	}
	for i, b := range Magic {
		if header[i] != b {
			return nil, errors.New(errors.PhaseStream, errors.KindInvalidData).
				Detail("bad magic %q", header[:len(Magic)]).
				Build()
		}
	}

	flags := header[len(Magic)]
	if flags&^flagZstd != 0 {
		return nil, errors.New(errors.PhaseStream, errors.KindInvalidData).
			Detail("unknown stream flags %#x", flags&^flagZstd).
			Build()
	}

	sr := &Reader{src: r}
	if flags&flagZstd != 0 {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseStream, errors.KindInvalidData, err, "init zstd reader")
		}
		sr.zr = zr
		sr.src = zr
	}
	return sr, nil
}

// Next returns the next record's bytes, or io.EOF at a clean end of stream.
// A stream that ends inside a frame is a truncation error.
func (r *Reader) Next() ([]byte, error) {
	if _, err := io.ReadFull(r.src, r.lens[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(errors.PhaseStream, errors.KindTruncated, err, "read frame length")
	}

	length := binary.LittleEndian.Uint32(r.lens[:])
	if length > maxFrameSize {
		return nil, errors.New(errors.PhaseStream, errors.KindInvalidData).
			Detail("frame length %d exceeds limit %d", length, maxFrameSize).
			Build()
	}

	record := make([]byte, length)
	if _, err := io.ReadFull(r.src, record); err != nil {
		return nil, errors.Wrap(errors.PhaseStream, errors.KindTruncated, err, "read frame")
	}
	return record, nil
}

// Close releases decompression resources. It does not close the underlying
// reader.
func (r *Reader) Close() {
	if r.zr != nil {
		r.zr.Close()
	}
}
