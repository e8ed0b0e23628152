package tes3codec

import "strings"

// coerceKey mirrors dispatchKey: a zero Tag in Record means "any record".
type coerceKey struct {
	Record Tag
	Field  Tag
}

// coercionWhitelist is the exact set of (record, field) pairs spec.md §4.H
// permits to be truncated at their first embedded NUL after decode. Every
// other field must preserve embedded NULs verbatim — truncation here is an
// explicit, opt-in normalization, never something the codec does on its own.
var coercionWhitelist = map[coerceKey]bool{
	{tagARMO, NewTag("BNAM")}: true,
	{tagBODY, NewTag("BNAM")}: true,
	{tagCLOT, NewTag("BNAM")}: true,
	{tagINFO, NewTag("BNAM")}: true,
	{tagARMO, NewTag("CNAM")}: true,
	{tagSSCR, NewTag("DATA")}: true,
	{tagBSGN, NewTag("DESC")}: true,
	{tagSSCR, NewTag("NAME")}: true,
	{wildcardTag, NewTag("SCTX")}: true,
	{tagBOOK, NewTag("TEXT")}: true,
	{tagFACT, NewTag("RNAM")}: true,
}

func coercible(recordTag, fieldTag Tag) bool {
	if coercionWhitelist[coerceKey{recordTag, fieldTag}] {
		return true
	}
	return coercionWhitelist[coerceKey{wildcardTag, fieldTag}]
}

func cutAtNUL(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// Coerce applies the post-decode trim-at-first-NUL normalization to a
// decoded field when its (recordTag, fieldTag) pair is on the coercion
// whitelist; every other field is returned unchanged. This is always a
// separate, explicit pass over a DecodeField result — never folded into
// decoding itself.
func Coerce(recordTag, fieldTag Tag, f Field) Field {
	if !coercible(recordTag, fieldTag) {
		return f
	}
	switch v := f.(type) {
	case StringField:
		v.Text = cutAtNUL(v.Text)
		return v
	case StringZField:
		v.Text = cutAtNUL(v.Text)
		v.HasTailZero = true
		return v
	case MultilineField:
		sep := newlineSep(v.Newline)
		joined := cutAtNUL(strings.Join(v.Lines, sep))
		v.Lines = strings.Split(joined, sep)
		return v
	case StringZListField:
		for i, item := range v.Items {
			v.Items[i] = cutAtNUL(item)
		}
		v.HasTailZero = true
		return v
	default:
		return f
	}
}
