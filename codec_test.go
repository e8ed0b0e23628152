package tes3codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBytes(t *testing.T, record, field Tag, payload []byte) Field {
	t.Helper()
	r := NewReader(bytes.NewReader(payload))
	f, err := DecodeField(record, field, uint32(len(payload)), r)
	require.NoError(t, err)
	return f
}

func encodeField(t *testing.T, f Field) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_, err := EncodeField(w, f)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestNpc12ByteDispatch(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B}
	f := decodeBytes(t, tagNPC_, NewTag("NPDT"), payload)
	npc, ok := f.(NpcField)
	require.True(t, ok)
	assert.Equal(t, int16(1), npc.Level)
	assert.Equal(t, int8(2), npc.Disposition)
	assert.Equal(t, int8(3), npc.Reputation)
	assert.Equal(t, int8(4), npc.Rank)
	assert.Equal(t, uint8(5), npc.Padding)
	assert.Equal(t, int32(0x0B0A0908), npc.Gold)
	assert.False(t, npc.Characteristics.Present)
	assert.Equal(t, uint16(0x0706), npc.Characteristics.Padding)

	assert.Equal(t, payload, encodeField(t, f))
}

func TestNpc52ByteRoundTrip(t *testing.T) {
	payload := make([]byte, 52)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	f := decodeBytes(t, tagNPC_, NewTag("NPDT"), payload)
	npc, ok := f.(NpcField)
	require.True(t, ok)
	assert.True(t, npc.Characteristics.Present)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestNpcInvalidSizeIsFatal(t *testing.T) {
	r := NewReader(bytes.NewReader(make([]byte, 13)))
	_, err := DecodeField(tagNPC_, NewTag("NPDT"), 13, r)
	var target *InvalidSizeError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []int{12, 52}, target.Expected)
}

func TestStringZPreservesTailZero(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)
	SetCodePage(CodePageWestern)

	withZero := []byte{0x48, 0x69, 0x00}
	f := decodeBytes(t, tagNPC_, NewTag("NAME"), withZero)
	sz, ok := f.(StringZField)
	require.True(t, ok)
	assert.Equal(t, "Hi", sz.Text)
	assert.True(t, sz.HasTailZero)
	assert.Equal(t, withZero, encodeField(t, f))

	withoutZero := []byte{0x48, 0x69}
	f2 := decodeBytes(t, tagNPC_, NewTag("NAME"), withoutZero)
	sz2, ok := f2.(StringZField)
	require.True(t, ok)
	assert.Equal(t, "Hi", sz2.Text)
	assert.False(t, sz2.HasTailZero)
	assert.Equal(t, withoutZero, encodeField(t, f2))
}

func TestMultilineRoundTrip(t *testing.T) {
	payload := []byte("a\r\nb\r\nc")
	f := decodeBytes(t, tagINFO, NewTag("BNAM"), payload)
	ml, ok := f.(MultilineField)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, ml.Lines)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestJournalNameUsesUnixNewline(t *testing.T) {
	payload := []byte("a\nb\nc")
	f := decodeBytes(t, tagJOUR, NewTag("NAME"), payload)
	ml, ok := f.(MultilineField)
	require.True(t, ok)
	assert.Equal(t, NewlineUnix, ml.Newline)
	assert.Equal(t, []string{"a", "b", "c"}, ml.Lines)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestFixedStringPadding(t *testing.T) {
	f := StringField{Text: "abc", FixedWidth: 32}
	encoded := encodeField(t, f)
	require.Len(t, encoded, 32)
	assert.Equal(t, []byte("abc"), encoded[:3])
	for _, b := range encoded[3:] {
		assert.Equal(t, byte(0), b)
	}

	decoded := decodeBytes(t, tagBSGN, NewTag("NPCS"), encoded)
	sf, ok := decoded.(StringField)
	require.True(t, ok)
	assert.Equal(t, "abc", sf.Text)
}

func TestFixedStringOverflowIsFatalOnEncode(t *testing.T) {
	f := StringField{Text: strRepeat("x", 40), FixedWidth: 32}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_, err := EncodeField(w, f)
	var target *InvalidFixedStringError
	require.ErrorAs(t, err, &target)
}

func TestDialogMetadataSizePolymorphism(t *testing.T) {
	four := decodeBytes(t, tagDIAL, NewTag("DATA"), []byte{0, 0, 0, 0})
	dm, ok := four.(DialogMetadataField)
	require.True(t, ok)
	assert.False(t, dm.HasType)
	assert.Equal(t, []byte{0, 0, 0, 0}, encodeField(t, four))

	one := decodeBytes(t, tagDIAL, NewTag("DATA"), []byte{byte(DialogTypeJournal)})
	dm2, ok := one.(DialogMetadataField)
	require.True(t, ok)
	assert.True(t, dm2.HasType)
	assert.Equal(t, DialogTypeJournal, dm2.Type)
	assert.Equal(t, []byte{byte(DialogTypeJournal)}, encodeField(t, one))
}

func TestDialogMetadataInvalidEnumValue(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{99}))
	_, err := DecodeField(tagDIAL, NewTag("DATA"), 1, r)
	var target *InvalidEnumValueError
	require.ErrorAs(t, err, &target)
}

func TestStringZListRoundTrip(t *testing.T) {
	payload := []byte("alpha\x00beta\x00gamma\x00")
	f := decodeBytes(t, tagSCPT, NewTag("SCVR"), payload)
	list, ok := f.(StringZListField)
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, list.Items)
	assert.True(t, list.HasTailZero)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestItemFieldRoundTrip(t *testing.T) {
	payload := make([]byte, 36)
	payload[0] = 5
	copy(payload[4:], []byte("gold_001"))
	f := decodeBytes(t, tagCONT, NewTag("NPCO"), payload)
	item, ok := f.(ItemField)
	require.True(t, ok)
	assert.Equal(t, int32(5), item.Count)
	assert.Equal(t, "gold_001", item.ID)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestFileMetadataRoundTrip(t *testing.T) {
	payload := make([]byte, 300)
	payload[4] = 32 // file type ESS
	copy(payload[8:], []byte("Bethesda"))
	copy(payload[40:], []byte("hello\r\nworld"))
	payload[296] = 7 // records count
	f := decodeBytes(t, tagTES3, NewTag("HEDR"), payload)
	fm, ok := f.(FileMetadataField)
	require.True(t, ok)
	assert.Equal(t, FileTypeESS, fm.FileType)
	assert.Equal(t, "Bethesda", fm.CompanyName)
	assert.Equal(t, []string{"hello", "world"}, fm.Description)
	assert.Equal(t, uint32(7), fm.NumRecords)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestFileMetadataInvalidFileType(t *testing.T) {
	payload := make([]byte, 300)
	payload[4] = 2
	r := NewReader(bytes.NewReader(payload))
	_, err := DecodeField(tagTES3, NewTag("HEDR"), 300, r)
	var target *InvalidEnumValueError
	require.ErrorAs(t, err, &target)
}

func TestIngredientRoundTrip(t *testing.T) {
	payload := make([]byte, 56)
	f := decodeBytes(t, tagINGR, NewTag("IRDT"), payload)
	_, ok := f.(IngredientField)
	require.True(t, ok)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestEffectRangeValidation(t *testing.T) {
	payload := make([]byte, 24)
	payload[4] = 9 // invalid EffectRange
	r := NewReader(bytes.NewReader(payload))
	_, err := DecodeField(tagSPEL, NewTag("ENAM"), 24, r)
	var target *InvalidEnumValueError
	require.ErrorAs(t, err, &target)
}

func TestWeaponFlagsInvalidBitsRejected(t *testing.T) {
	payload := make([]byte, 32)
	payload[31] = 0xFF // way outside known WeaponFlags bits
	r := NewReader(bytes.NewReader(payload))
	_, err := DecodeField(tagWEAP, NewTag("WPDT"), 32, r)
	var target *InvalidFlagBitsError
	require.ErrorAs(t, err, &target)
}

func TestContainerFlagsFieldRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x00, 0x00}
	f := decodeBytes(t, tagCONT, NewTag("FLAG"), payload)
	cf, ok := f.(ContainerFlagsField)
	require.True(t, ok)
	assert.Equal(t, ContainerFlagsOrganic, cf.Flags)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestBipedObjectFieldRoundTrip(t *testing.T) {
	payload := []byte{byte(BipedObjectShield)}
	f := decodeBytes(t, tagARMO, NewTag("INDX"), payload)
	bo, ok := f.(BipedObjectField)
	require.True(t, ok)
	assert.Equal(t, BipedObjectShield, bo.Slot)
	assert.Equal(t, payload, encodeField(t, f))
}

func TestBinaryFieldConsumesDeclaredSize(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	f := decodeBytes(t, tagREGN, NewTag("SNAM"), payload)
	bf, ok := f.(BinaryField)
	require.True(t, ok)
	assert.Equal(t, payload, bf.Data)
	assert.Equal(t, payload, encodeField(t, f))
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
