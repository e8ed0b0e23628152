package tes3codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceWhitelistedPairTruncatesAtNUL(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)
	SetCodePage(CodePageWestern)

	r := NewReader(bytes.NewReader([]byte("foo\x00bar")))
	f, err := DecodeField(tagARMO, NewTag("BNAM"), 7, r)
	require.NoError(t, err)

	coerced := Coerce(tagARMO, NewTag("BNAM"), f)
	sf, ok := coerced.(StringField)
	require.True(t, ok)
	assert.Equal(t, "foo", sf.Text)
}

func TestCoerceOutsideWhitelistPreservesEmbeddedNUL(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)
	SetCodePage(CodePageWestern)

	r := NewReader(bytes.NewReader([]byte("foo\x00bar")))
	f, err := DecodeField(tagPCDT, NewTag("BNAM"), 7, r)
	require.NoError(t, err)

	coerced := Coerce(tagPCDT, NewTag("BNAM"), f)
	sf, ok := coerced.(StringField)
	require.True(t, ok)
	assert.Equal(t, "foo\x00bar", sf.Text)
}

func TestCoerceWildcardSCTXAppliesAcrossRecords(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)
	SetCodePage(CodePageWestern)

	payload := []byte("print \"hi\"\x00garbage")
	r := NewReader(bytes.NewReader(payload))
	f, err := DecodeField(tagSCPT, NewTag("SCTX"), uint32(len(payload)), r)
	require.NoError(t, err)

	coerced := Coerce(tagSCPT, NewTag("SCTX"), f)
	ml, ok := coerced.(MultilineField)
	require.True(t, ok)
	assert.Equal(t, []string{"print \"hi\""}, ml.Lines)
}

func TestCoerceStringZForcesTailZero(t *testing.T) {
	f := StringZField{Text: "no terminator", HasTailZero: false}
	coerced := Coerce(tagBSGN, NewTag("DESC"), f)
	sz, ok := coerced.(StringZField)
	require.True(t, ok)
	assert.True(t, sz.HasTailZero)
}

func TestCoerceNonStringFieldIsNoop(t *testing.T) {
	f := IntField(42)
	coerced := Coerce(tagARMO, NewTag("BNAM"), f)
	assert.Equal(t, f, coerced)
}
