// Package tes3codec decodes and encodes the binary field payloads found
// inside Morrowind's ESP/ESM/ESS record files.
package tes3codec

import (
	"fmt"
)

// Tag is the 4-character ASCII identifier that prefixes every record and
// every field in a TES3 file (e.g. "TES3", "NAME", "NPC_"). It is stored on
// disk as 4 raw bytes and is commonly handled as a little-endian uint32, so
// Tag supports both views.
type Tag [4]byte

// NewTag builds a Tag from a 4-character string. It panics if s is not
// exactly 4 bytes long, since every call site passes a compile-time literal.
func NewTag(s string) Tag {
	if len(s) != 4 {
		panic(fmt.Sprintf("tes3codec: tag %q is not 4 bytes", s))
	}
	var t Tag
	copy(t[:], s)
	return t
}

// ParseTag parses a 4-character ASCII string into a Tag, failing instead of
// panicking when s is the wrong length or contains a non-ASCII byte -- the
// shape needed for tags read from user input rather than a source literal.
func ParseTag(s string) (Tag, error) {
	if len(s) != 4 {
		return Tag{}, fmt.Errorf("tes3codec: tag %q is not 4 bytes", s)
	}
	var t Tag
	for i := 0; i < 4; i++ {
		if s[i] > 127 {
			return Tag{}, fmt.Errorf("tes3codec: tag %q contains a non-ASCII byte", s)
		}
		t[i] = s[i]
	}
	return t, nil
}

// TagFromUint32 builds a Tag from its little-endian uint32 encoding.
func TagFromUint32(v uint32) Tag {
	return Tag{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Uint32 returns the little-endian uint32 encoding of the tag, matching how
// it is laid out on disk.
func (t Tag) Uint32() uint32 {
	return uint32(t[0]) | uint32(t[1])<<8 | uint32(t[2])<<16 | uint32(t[3])<<24
}

// String returns the 4-character ASCII form of the tag.
func (t Tag) String() string {
	return string(t[:])
}

var (
	tagTES3 = NewTag("TES3")
	tagINFO = NewTag("INFO")
	tagCELL = NewTag("CELL")
	tagDIAL = NewTag("DIAL")
	tagLAND = NewTag("LAND")
	tagLEVC = NewTag("LEVC")
	tagLEVI = NewTag("LEVI")
	tagLTEX = NewTag("LTEX")
	tagSSCR = NewTag("SSCR")
	tagQUES = NewTag("QUES")
	tagBSGN = NewTag("BSGN")
	tagALCH = NewTag("ALCH")
	tagENCH = NewTag("ENCH")
	tagSPEL = NewTag("SPEL")
	tagPCDT = NewTag("PCDT")
	tagGLOB = NewTag("GLOB")
	tagFACT = NewTag("FACT")
	tagARMO = NewTag("ARMO")
	tagCLOT = NewTag("CLOT")
	tagBODY = NewTag("BODY")
	tagCONT = NewTag("CONT")
	tagCREA = NewTag("CREA")
	tagNPC_ = NewTag("NPC_")
	tagNPCC = NewTag("NPCC")
	tagFMAP = NewTag("FMAP")
	tagMISC = NewTag("MISC")
	tagSPLM = NewTag("SPLM")
	tagGMST = NewTag("GMST")
	tagJOUR = NewTag("JOUR")
	tagINGR = NewTag("INGR")
	tagLIGH = NewTag("LIGH")
	tagKLST = NewTag("KLST")
	tagREGN = NewTag("REGN")
	tagSCPT = NewTag("SCPT")
	tagBOOK = NewTag("BOOK")
	tagWEAP = NewTag("WEAP")
	tagAPPA = NewTag("APPA")
)
