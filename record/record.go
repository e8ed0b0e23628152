// Package record provides the minimal record-stream framing needed to drive
// the core field codec end to end: a record header (tag, payload size,
// flags) followed by a sequence of field-tag/size-prefixed fields. Deletion
// markers, masters-list bookkeeping, and group nesting are the real
// record-stream layer's job and are out of this package's scope -- this
// exists only so tests and cmd/tes3dump have bytes to decode/encode against.
package record

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dreamwright/tes3codec"
)

// Header is the 16-byte prefix common to every TES3 record: a 4-byte tag, a
// 4-byte payload size, and an 8-byte flags word (the classic format's
// "unknown" and "flags" 4-byte words read together as one little-endian
// uint64, matching tes3codec.RecordFlags's high-order bit layout).
type Header struct {
	Tag   tes3codec.Tag
	Size  uint32
	Flags tes3codec.RecordFlags
}

// FieldEntry is one decoded field inside a record, keeping the field tag
// alongside the typed value DecodeField produced for it.
type FieldEntry struct {
	Tag   tes3codec.Tag
	Value tes3codec.Field
}

// Record is a header plus its decoded fields, in file order.
type Record struct {
	Header Header
	Fields []FieldEntry
}

// ReadRecord reads one record from r: its header, then fields until Size
// bytes of field payload have been consumed. It returns io.EOF unchanged
// when r is exhausted exactly at a record boundary.
func ReadRecord(r io.Reader) (Record, error) {
	rd := tes3codec.NewReader(r)

	tagRaw, err := rd.U32()
	if err != nil {
		return Record{}, err
	}
	size, err := rd.U32()
	if err != nil {
		return Record{}, err
	}
	flagsRaw, err := rd.U64()
	if err != nil {
		return Record{}, err
	}

	rec := Record{Header: Header{
		Tag:   tes3codec.TagFromUint32(tagRaw),
		Size:  size,
		Flags: tes3codec.RecordFlags(flagsRaw),
	}}

	var consumed uint32
	for consumed < size {
		fieldTagRaw, err := rd.U32()
		if err != nil {
			return Record{}, fmt.Errorf("record %s: %w", rec.Header.Tag, err)
		}
		fieldSize, err := rd.U32()
		if err != nil {
			return Record{}, fmt.Errorf("record %s: %w", rec.Header.Tag, err)
		}
		fieldTag := tes3codec.TagFromUint32(fieldTagRaw)

		value, err := tes3codec.DecodeField(rec.Header.Tag, fieldTag, fieldSize, rd)
		if err != nil {
			return Record{}, fmt.Errorf("record %s field %s: %w", rec.Header.Tag, fieldTag, err)
		}
		rec.Fields = append(rec.Fields, FieldEntry{Tag: fieldTag, Value: value})
		consumed += 8 + fieldSize
	}
	return rec, nil
}

// WriteRecord writes rec's header and fields back out in the same shape
// ReadRecord expects, recomputing Size from the encoded field bytes rather
// than trusting rec.Header.Size.
func WriteRecord(w io.Writer, rec Record) error {
	var body bytes.Buffer
	bodyWriter := tes3codec.NewWriter(&body)
	for _, fe := range rec.Fields {
		if err := bodyWriter.U32(fe.Tag.Uint32()); err != nil {
			return err
		}

		var fieldBuf bytes.Buffer
		fieldWriter := tes3codec.NewWriter(&fieldBuf)
		n, err := tes3codec.EncodeField(fieldWriter, fe.Value)
		if err != nil {
			return fmt.Errorf("record %s field %s: %w", rec.Header.Tag, fe.Tag, err)
		}
		if err := bodyWriter.U32(uint32(n)); err != nil {
			return err
		}
		if err := bodyWriter.Bytes(fieldBuf.Bytes()); err != nil {
			return err
		}
	}

	hw := tes3codec.NewWriter(w)
	if err := hw.U32(rec.Header.Tag.Uint32()); err != nil {
		return err
	}
	if err := hw.U32(uint32(body.Len())); err != nil {
		return err
	}
	if err := hw.U64(uint64(rec.Header.Flags)); err != nil {
		return err
	}
	return hw.Bytes(body.Bytes())
}
