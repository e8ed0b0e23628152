package tes3codec

import "fmt"

// InvalidSizeError reports that a field or variant's enclosing payload size
// did not match any size this decoder knows how to dispatch on (e.g. an Npc
// field that is neither 12 nor 52 bytes).
type InvalidSizeError struct {
	Kind     string
	Expected []int
	Actual   int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("tes3codec: %s: invalid size %d, expected one of %v", e.Kind, e.Actual, e.Expected)
}

// InvalidBoolEncodingError reports a byte that was read as a boolean field
// but was neither 0 nor 1.
type InvalidBoolEncodingError struct {
	Raw byte
}

func (e *InvalidBoolEncodingError) Error() string {
	return fmt.Sprintf("tes3codec: invalid bool encoding: byte 0x%02X", e.Raw)
}

// InvalidEnumValueError reports a raw integer that does not correspond to
// any named variant of the given enum kind.
type InvalidEnumValueError struct {
	Kind string
	Raw  int64
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("tes3codec: invalid %s value: %d", e.Kind, e.Raw)
}

// InvalidFlagBitsError reports a bitflag value with bits set outside both
// the named flags and the documented-but-unnamed ignored-bits mask.
type InvalidFlagBitsError struct {
	Kind string
	Raw  uint64
}

func (e *InvalidFlagBitsError) Error() string {
	return fmt.Sprintf("tes3codec: invalid %s bits: 0x%X", e.Kind, e.Raw)
}

// InvalidFixedStringError reports a fixed-width string whose encoded length
// exceeds the width the field type demands.
type InvalidFixedStringError struct {
	ExpectedLen int
	ActualLen   int
}

func (e *InvalidFixedStringError) Error() string {
	return fmt.Sprintf("tes3codec: invalid fixed string: expected %d bytes, got %d", e.ExpectedLen, e.ActualLen)
}

// UnknownCodePageByteError reports a byte with no mapping under the active
// code page.
type UnknownCodePageByteError struct {
	Bytes []byte
}

func (e *UnknownCodePageByteError) Error() string {
	return fmt.Sprintf("tes3codec: unknown code page byte(s) in %v", e.Bytes)
}
