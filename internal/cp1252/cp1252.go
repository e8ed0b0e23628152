// Package cp1252 wraps the single-byte Windows code pages TES3 files use
// for in-game text behind a strict, bijective byte<->rune mapping.
package cp1252

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Charmap is a single-byte encoding where every byte value 0..255 maps to
// exactly one rune and back, as required by the Western/Cyrillic code pages
// TES3 text fields use.
type Charmap struct {
	name string
	enc  *charmap.Charmap
}

// Western is Windows-1252, used for English/French/German/Italian/Spanish
// Morrowind installs.
var Western = &Charmap{name: "Western", enc: charmap.Windows1252}

// Cyrillic is Windows-1251, used for Russian Morrowind installs.
var Cyrillic = &Charmap{name: "Cyrillic", enc: charmap.Windows1251}

// fallbackBase is the start of a Private Use Area block this package maps
// a code page's handful of unassigned bytes (e.g. 0x81 in Windows-1252)
// onto, so that every one of the 256 byte values still round-trips. Neither
// Windows-1252 nor Windows-1251 assign any real character into this block,
// so the mapping never collides with a defined code point.
const fallbackBase = 0xF000

// Decode converts a single code-page byte to its rune. A byte with no
// assigned character in this code page (golang.org/x/text reports these as
// the replacement rune) maps instead to a reserved Private Use Area rune,
// keeping the encoding a total bijection over 0..=255 the way the game's
// original single-byte codec treats it.
func (c *Charmap) Decode(b byte) (rune, error) {
	r := c.enc.DecodeByte(b)
	if r == 0xFFFD {
		return fallbackBase + rune(b), nil
	}
	return r, nil
}

// Encode converts a rune back to its single code-page byte. It returns an
// error only for a rune with no representation in this code page at all
// (i.e. text that never came from Decode in the first place).
func (c *Charmap) Encode(r rune) (byte, error) {
	if r >= fallbackBase && r <= fallbackBase+0xFF {
		return byte(r - fallbackBase), nil
	}
	b, ok := c.enc.EncodeRune(r)
	if !ok {
		return 0, fmt.Errorf("cp1252: rune %q has no byte in %s code page", r, c.name)
	}
	return b, nil
}

// DecodeBytes converts a byte slice to a string, byte by byte.
func (c *Charmap) DecodeBytes(b []byte) (string, error) {
	runes := make([]rune, len(b))
	for i, bb := range b {
		r, err := c.Decode(bb)
		if err != nil {
			return "", err
		}
		runes[i] = r
	}
	return string(runes), nil
}

// EncodeString converts a string back to single-byte code-page bytes.
func (c *Charmap) EncodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := c.Encode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
