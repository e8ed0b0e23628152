package tes3codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchMostSpecificWins(t *testing.T) {
	assert.Equal(t, FieldTypeMultiline, Dispatch(tagINFO, NewTag("BNAM")))
	assert.Equal(t, FieldTypeStringZ, Dispatch(tagNPC_, NewTag("BNAM")))
}

func TestDispatchWildcardFallback(t *testing.T) {
	assert.Equal(t, FieldTypeStringZ, Dispatch(tagCREA, NewTag("SCRI")))
}

func TestDispatchDefaultsToBinary(t *testing.T) {
	assert.Equal(t, FieldTypeBinary, Dispatch(tagCELL, NewTag("ZZZZ")))
}

func TestDispatchFixedStringWidth(t *testing.T) {
	w, ok := fixedStringWidth(tagFACT, NewTag("RNAM"))
	assert.True(t, ok)
	assert.Equal(t, 32, w)

	w, ok = fixedStringWidth(tagBSGN, NewTag("NPCS"))
	assert.True(t, ok)
	assert.Equal(t, 32, w)
}

func TestDispatchMultilineNewline(t *testing.T) {
	assert.Equal(t, NewlineUnix, multilineNewline(tagJOUR, NewTag("NAME")))
	assert.Equal(t, NewlineDos, multilineNewline(tagINFO, NewTag("BNAM")))
	assert.Equal(t, NewlineDos, multilineNewline(wildcardTag, NewTag("SCTX")))
	assert.Equal(t, NewlineDos, multilineNewline(tagBOOK, NewTag("TEXT")))
}
