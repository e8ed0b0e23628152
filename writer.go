package tes3codec

import (
	"encoding/binary"
	"io"
)

// Writer is a little-endian positioned byte writer, the encode-side
// counterpart of Reader.
type Writer struct {
	w   io.Writer
	pos int64
}

// NewWriter wraps w for positioned writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int64 {
	return w.pos
}

// Bytes writes b verbatim.
func (w *Writer) Bytes(b []byte) error {
	n, err := w.w.Write(b)
	w.pos += int64(n)
	return err
}

// U8 writes a single byte.
func (w *Writer) U8(v uint8) error { return w.Bytes([]byte{v}) }

// I8 writes a signed byte.
func (w *Writer) I8(v int8) error { return w.U8(uint8(v)) }

// U16 writes a little-endian uint16.
func (w *Writer) U16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.Bytes(b[:])
}

// I16 writes a little-endian int16.
func (w *Writer) I16(v int16) error { return w.U16(uint16(v)) }

// U32 writes a little-endian uint32.
func (w *Writer) U32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.Bytes(b[:])
}

// I32 writes a little-endian int32.
func (w *Writer) I32(v int32) error { return w.U32(uint32(v)) }

// U64 writes a little-endian uint64.
func (w *Writer) U64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.Bytes(b[:])
}

// I64 writes a little-endian int64.
func (w *Writer) I64(v int64) error { return w.U64(uint64(v)) }

// F32 writes a little-endian IEEE-754 float32.
func (w *Writer) F32(v float32) error { return w.U32(float32Bits(v)) }

// Bool writes v as a single 0x00 or 0x01 byte.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

// Size writes a payload length: if isolated is true the caller's enclosing
// frame already carries the size, so nothing is written; otherwise a 4-byte
// little-endian length prefix is emitted.
func (w *Writer) Size(isolated bool, v uint32) error {
	if isolated {
		return nil
	}
	return w.U32(v)
}
