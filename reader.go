package tes3codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is a little-endian positioned byte reader over a field's payload.
// It tracks how many bytes have been consumed so callers can report sizes
// and detect truncated/overlong payloads.
//
// When the source is a *bytes.Reader, NewReader copies its remaining bytes
// once into an internal buffer and reads are then satisfied by slicing that
// buffer instead of copying per read, the same borrowed-vs-owned
// distinction the upstream format's deserializer makes between an in-memory
// buffer and a true streaming source.
type Reader struct {
	r   io.Reader
	buf []byte // backing array, set only when r is a *bytes.Reader
	pos int64
}

// NewReader wraps r for positioned reads. Pass a *bytes.Reader to enable
// zero-copy slicing in Bytes.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{r: r}
	if br, ok := r.(*bytes.Reader); ok {
		all := make([]byte, br.Len())
		_, _ = io.ReadFull(br, all)
		rd.buf = all
	}
	return rd
}

// Pos returns the number of bytes read so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Bytes reads exactly n bytes. When the source was a *bytes.Reader the
// returned slice aliases the backing array; callers that need to retain the
// bytes beyond the current decode must copy them.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("tes3codec: negative read length %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if r.buf != nil {
		if int64(n) > int64(len(r.buf)) {
			return nil, io.ErrUnexpectedEOF
		}
		out := r.buf[:n:n]
		r.buf = r.buf[n:]
		r.pos += int64(n)
		return out, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	r.pos += int64(read)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) u8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) { return r.u8() }

// I8 reads a signed byte.
func (r *Reader) I8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian int16.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// I64 reads a little-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F32 reads a little-endian IEEE-754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return float32FromBits(v), err
}

// Bool reads a single byte and requires it to be exactly 0 or 1.
func (r *Reader) Bool() (bool, error) {
	b, err := r.u8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBoolEncodingError{Raw: b}
	}
}

// Size reads a payload length: if isolated is non-nil, the caller already
// knows the size from the enclosing frame and no bytes are consumed;
// otherwise a 4-byte little-endian length prefix is read from the stream.
// DecodeField does not call it: the size-polymorphic fields (Npc,
// DialogMetadata) receive the enclosing field's declared size directly.
func (r *Reader) Size(isolated *uint32) (uint32, error) {
	if isolated != nil {
		return *isolated, nil
	}
	return r.U32()
}
