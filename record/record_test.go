package record

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamwright/tes3codec"
)

func TestRecordRoundTrip(t *testing.T) {
	old := tes3codec.ActiveCodePage()
	defer tes3codec.SetCodePage(old)
	tes3codec.SetCodePage(tes3codec.CodePageWestern)

	rec := Record{
		Header: Header{
			Tag:   tes3codec.NewTag("GLOB"),
			Flags: tes3codec.RecordFlagsBlocked,
		},
		Fields: []FieldEntry{
			{Tag: tes3codec.NewTag("NAME"), Value: tes3codec.StringZField{Text: "GameHour", HasTailZero: true}},
			{Tag: tes3codec.NewTag("FNAM"), Value: tes3codec.StringField{Text: "f"}},
			{Tag: tes3codec.NewTag("FLTV"), Value: tes3codec.FloatField(13.5)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, rec))

	got, err := ReadRecord(&buf)
	require.NoError(t, err)

	assert.Equal(t, rec.Header.Tag, got.Header.Tag)
	assert.Equal(t, rec.Header.Flags, got.Header.Flags)
	require.Len(t, got.Fields, 3)
	assert.Equal(t, rec.Fields[0].Value, got.Fields[0].Value)
	assert.Equal(t, rec.Fields[1].Value, got.Fields[1].Value)
	assert.Equal(t, rec.Fields[2].Value, got.Fields[2].Value)
}

func TestRecordReadEOFAtBoundary(t *testing.T) {
	var buf bytes.Buffer
	_, err := ReadRecord(&buf)
	assert.ErrorIs(t, err, io.EOF)
}
