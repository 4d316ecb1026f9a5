// Package wire implements the fixed binary framing for order commands and
// their responses. Both sides of the frame use big-endian integers over a
// reusable, offset-tracked buffer so an encoder allocates only on growth.
package wire

import "encoding/binary"

// BufferWriter appends big-endian primitives to a growable byte buffer.
// Reset lets one writer serve many frames.
type BufferWriter struct {
	buf []byte
}

// NewBufferWriter creates a writer with the given initial capacity.
func NewBufferWriter(capacity int) *BufferWriter {
	return &BufferWriter{buf: make([]byte, 0, capacity)}
}

// Reset drops the frame content but keeps the allocation.
func (w *BufferWriter) Reset() {
	w.buf = w.buf[:0]
}

// Bytes returns the encoded frame. The slice is invalidated by Reset.
func (w *BufferWriter) Bytes() []byte {
	return w.buf
}

// Len returns the current frame length in bytes.
func (w *BufferWriter) Len() int {
	return len(w.buf)
}

func (w *BufferWriter) WriteUint8(v byte) {
	w.buf = append(w.buf, v)
}

func (w *BufferWriter) WriteInt16(v int16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(v))
}

func (w *BufferWriter) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

func (w *BufferWriter) WriteInt64(v int64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
}

// BufferReader consumes big-endian primitives from a frame, tracking its
// offset. Reads past the end set the failed flag instead of panicking;
// callers check Failed once per frame.
type BufferReader struct {
	buf    []byte
	offset int
	failed bool
}

// NewBufferReader wraps an encoded frame.
func NewBufferReader(buf []byte) *BufferReader {
	return &BufferReader{buf: buf}
}

// Failed reports whether any read ran past the end of the frame.
func (r *BufferReader) Failed() bool {
	return r.failed
}

// Remaining returns the number of unread bytes.
func (r *BufferReader) Remaining() int {
	return len(r.buf) - r.offset
}

func (r *BufferReader) take(n int) []byte {
	if r.failed || r.offset+n > len(r.buf) {
		r.failed = true
		return nil
	}
	chunk := r.buf[r.offset : r.offset+n]
	r.offset += n
	return chunk
}

func (r *BufferReader) ReadUint8() byte {
	chunk := r.take(1)
	if chunk == nil {
		return 0
	}
	return chunk[0]
}

func (r *BufferReader) ReadInt16() int16 {
	chunk := r.take(2)
	if chunk == nil {
		return 0
	}
	return int16(binary.BigEndian.Uint16(chunk))
}

func (r *BufferReader) ReadInt32() int32 {
	chunk := r.take(4)
	if chunk == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(chunk))
}

func (r *BufferReader) ReadInt64() int64 {
	chunk := r.take(8)
	if chunk == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(chunk))
}
