package tes3codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFlagsBlockedAndDeleted(t *testing.T) {
	flags := RecordFlags(0x0000_0202_0000_0000)
	assert.True(t, flags.Valid())
	assert.True(t, flags.Has(RecordFlagsBlocked))
	assert.True(t, flags.Has(RecordFlagsDeleted))
	assert.False(t, flags.Has(RecordFlagsPersistent))
}

func TestRecordFlagsInvalidBitsRejected(t *testing.T) {
	flags := RecordFlags(0x1)
	assert.False(t, flags.Valid())
}

func TestRecordFlagsStringAndParseRoundTrip(t *testing.T) {
	flags := RecordFlags(0x0000_0202_0000_0000)
	assert.Equal(t, "BLOCKED | DELETED", flags.String())

	parsed, err := ParseRecordFlags("DELETED|PERSISTENT")
	require.NoError(t, err)
	assert.Equal(t, RecordFlagsDeleted|RecordFlagsPersistent, parsed)

	_, err = ParseRecordFlags(" ")
	assert.Error(t, err)

	empty, err := ParseRecordFlags("")
	require.NoError(t, err)
	assert.Equal(t, RecordFlagsEmpty, empty)
}

func TestNpcFlagsIgnoredBitRoundTrips(t *testing.T) {
	// 0x08 is an unnamed-but-tolerated bit alongside a named one.
	flags := NpcFlagsFemale | 0x08
	assert.True(t, flags.Valid())
}

func TestNpcFlagsRejectsTrulyUnknownBit(t *testing.T) {
	flags := NpcFlags(0x20)
	assert.False(t, flags.Valid())
}

func TestCreatureFlagsIgnoredBit(t *testing.T) {
	assert.True(t, (CreatureFlagsBiped | 0x08).Valid())
	assert.False(t, CreatureFlags(0x100).Valid())
}

func TestAiTravelFlagsIgnoredBit(t *testing.T) {
	assert.True(t, (AiTravelFlagsReset | 0x1).Valid())
	assert.False(t, AiTravelFlags(0x2).Valid())
}

func TestContainerFlagsIgnoredBit(t *testing.T) {
	assert.True(t, (ContainerFlagsOrganic | 0x08).Valid())
	assert.False(t, ContainerFlags(0x10).Valid())
}
