package tes3codec

import (
	"sync/atomic"

	"github.com/dreamwright/tes3codec/internal/cp1252"
)

// CodePage selects which single-byte text encoding String/StringZ/Multiline
// fields are decoded and encoded with. It is a process-wide setting (Go has
// no per-goroutine thread-local storage), read and written only through
// ActiveCodePage/SetCodePage so call sites never pass it around implicitly.
type CodePage int

const (
	// CodePageWestern is Windows-1252, the default for English and most
	// European localizations of Morrowind.
	CodePageWestern CodePage = iota
	// CodePageCyrillic is Windows-1251, used by Russian localizations.
	CodePageCyrillic
)

func (c CodePage) charmap() *cp1252.Charmap {
	if c == CodePageCyrillic {
		return cp1252.Cyrillic
	}
	return cp1252.Western
}

var currentCodePage atomic.Value

func init() {
	currentCodePage.Store(CodePageWestern)
}

// SetCodePage changes the process-wide code page used by subsequent decode
// and encode calls.
func SetCodePage(cp CodePage) {
	currentCodePage.Store(cp)
}

// ActiveCodePage returns the process-wide code page currently in effect.
func ActiveCodePage() CodePage {
	return currentCodePage.Load().(CodePage)
}

// decodeText converts code-page bytes to a string using the active code
// page, returning UnknownCodePageByteError for any byte with no mapping.
func decodeText(b []byte) (string, error) {
	s, err := ActiveCodePage().charmap().DecodeBytes(b)
	if err != nil {
		return "", &UnknownCodePageByteError{Bytes: b}
	}
	return s, nil
}

// encodeText converts a string back to code-page bytes using the active
// code page.
func encodeText(s string) ([]byte, error) {
	b, err := ActiveCodePage().charmap().EncodeString(s)
	if err != nil {
		return nil, &UnknownCodePageByteError{Bytes: []byte(s)}
	}
	return b, nil
}
