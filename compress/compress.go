// Package compress provides an optional zlib codec over the opaque bytes of
// a Compressed field (VCLR/VHGT/VNML/VTEX/WNAM and FMAP's MAPD in
// dispatch.go). The core
// codec treats Compressed exactly like Binary and never calls into this
// package on its decode/encode path, per spec.md §1's Non-goals; this
// exists purely so inspection tooling (cmd/tes3dump -inflate) can look
// inside the bytes.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compressor compresses a field's opaque bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a field's opaque bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// ZlibCodec implements Codec over the zlib stream format.
type ZlibCodec struct{}

// NewZlibCodec constructs a ZlibCodec. It holds no state and could equally
// be used as a zero value; the constructor exists for symmetry with callers
// that hold a Codec interface value.
func NewZlibCodec() *ZlibCodec { return &ZlibCodec{} }

// Compress zlib-deflates data.
func (ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	wr := zlib.NewWriter(&buf)
	if _, err := wr.Write(data); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress zlib-inflates data.
func (ZlibCodec) Decompress(data []byte) ([]byte, error) {
	rd, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}
