package tes3codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTrip(t *testing.T) {
	tag := NewTag("TES3")
	assert.Equal(t, "TES3", tag.String())

	u := tag.Uint32()
	assert.Equal(t, tag, TagFromUint32(u))
}

func TestTagUint32LittleEndian(t *testing.T) {
	tag := NewTag("NAME")
	want := uint32('N') | uint32('A')<<8 | uint32('M')<<16 | uint32('E')<<24
	assert.Equal(t, want, tag.Uint32())
}

func TestNewTagPanicsOnWrongLength(t *testing.T) {
	assert.Panics(t, func() {
		NewTag("AB")
	})
}

func TestParseTagRoundTrip(t *testing.T) {
	tag, err := ParseTag("TES3")
	assert.NoError(t, err)
	assert.Equal(t, NewTag("TES3"), tag)
	assert.Equal(t, []byte{0x54, 0x45, 0x53, 0x33}, []byte{tag[0], tag[1], tag[2], tag[3]})
}

func TestParseTagRejectsWrongLength(t *testing.T) {
	_, err := ParseTag("AB")
	assert.Error(t, err)
}

func TestParseTagRejectsNonASCII(t *testing.T) {
	_, err := ParseTag("TE\xffS")
	assert.Error(t, err)
}
