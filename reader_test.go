package tes3codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderScalarsLittleEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	v, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v)
	assert.Equal(t, int64(4), r.Pos())
}

func TestReaderBoolRejectsNonBinary(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x02}))
	_, err := r.Bool()
	var target *InvalidBoolEncodingError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, byte(0x02), target.Raw)
}

func TestReaderSizeIsolatedSuppressesPrefix(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xAA, 0xBB}))
	iso := uint32(12)
	size, err := r.Size(&iso)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), size)
	assert.Equal(t, int64(0), r.Pos(), "isolated size must not consume bytes")

	b, err := r.Bytes(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), b[0])
}

func TestReaderSizeReadsPrefixWhenNotIsolated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x05, 0x00, 0x00, 0x00}))
	size, err := r.Size(nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), size)
	assert.Equal(t, int64(4), r.Pos())
}

func TestReaderBytesTruncatedReturnsError(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}))
	_, err := r.Bytes(4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReaderBytesFromBytesReaderMatchesSource(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	r := NewReader(bytes.NewReader(src))
	out, err := r.Bytes(4)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}
