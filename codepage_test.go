package tes3codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodePageRoundTripASCII(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)

	SetCodePage(CodePageWestern)
	s, err := decodeText([]byte("Hello, Vvardenfell"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, Vvardenfell", s)

	b, err := encodeText(s)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, Vvardenfell"), b)
}

func TestCodePageCyrillicRoundTrip(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)

	SetCodePage(CodePageCyrillic)
	// 0xC1 in Windows-1251 is Cyrillic capital 'Б'.
	s, err := decodeText([]byte{0xC1})
	require.NoError(t, err)
	assert.Equal(t, "Б", s)

	b, err := encodeText(s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC1}, b)
}

func TestCodePageAllBytesRoundTrip(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)

	for _, cp := range []CodePage{CodePageWestern, CodePageCyrillic} {
		SetCodePage(cp)
		for b := 0; b <= 0xFF; b++ {
			s, err := decodeText([]byte{byte(b)})
			require.NoErrorf(t, err, "code page %d byte 0x%02X", cp, b)
			assert.Lenf(t, []rune(s), 1, "code page %d byte 0x%02X", cp, b)

			out, err := encodeText(s)
			require.NoErrorf(t, err, "code page %d byte 0x%02X", cp, b)
			assert.Equalf(t, []byte{byte(b)}, out, "code page %d byte 0x%02X", cp, b)
		}
	}
}

func TestCodePageIsProcessWide(t *testing.T) {
	old := ActiveCodePage()
	defer SetCodePage(old)

	SetCodePage(CodePageCyrillic)
	assert.Equal(t, CodePageCyrillic, ActiveCodePage())
	SetCodePage(CodePageWestern)
	assert.Equal(t, CodePageWestern, ActiveCodePage())
}
