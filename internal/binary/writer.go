// Package binary provides low-level binary I/O for the wt5 container
// format: sequential little-endian encoding plus the checksums guarding
// metadata and array payloads.
package binary

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer accumulates little-endian encoded data in memory. wt5 files are
// written start-to-finish, so the writer is purely sequential.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the accumulated encoding. The slice is valid until the
// next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteUint16 appends an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 appends an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteFloat64 appends an IEEE-754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteFloat64Slice appends a float64 array without a length prefix.
func (w *Writer) WriteFloat64Slice(vs []float64) {
	for _, v := range vs {
		w.WriteFloat64(v)
	}
}

// WriteString appends a uint32 length prefix followed by the raw bytes.
func (w *Writer) WriteString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.buf.WriteString(s)
}

// WriteBlock appends a uint64 length prefix followed by the raw bytes.
func (w *Writer) WriteBlock(data []byte) {
	w.WriteUint64(uint64(len(data)))
	w.buf.Write(data)
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(0)
	}
}

// Float64SliceBytes encodes a float64 array as raw little-endian bytes.
// Used to hand array payloads to the filter pipeline.
func Float64SliceBytes(vs []float64) []byte {
	out := make([]byte, 8*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}

// Float64SliceFromBytes decodes raw little-endian bytes into a float64
// array.
func Float64SliceFromBytes(data []byte) []float64 {
	out := make([]float64, len(data)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return out
}
