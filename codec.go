package tes3codec

import (
	"bytes"
	"strings"
)

// Field is implemented by every concrete payload type this codec can decode
// and encode. It carries no behavior of its own; DecodeField picks the
// concrete type from the FieldType Dispatch returns, never from the payload
// bytes, per spec.md §4.D: the dispatch table is the only source of truth
// for shape. EncodeField switches on the concrete type it is given.
type Field interface {
	isField()
}

// BinaryField is raw, uninterpreted bytes: the default shape, and also how
// Compressed fields are represented (the core never inflates them).
type BinaryField struct{ Data []byte }

// StringField is code-page text, either length-prefixed (FixedWidth == 0)
// or padded to a fixed declared width.
type StringField struct {
	Text       string
	FixedWidth int
}

// StringZField is code-page text optionally followed by a single NUL.
// HasTailZero is the only record of whether that terminator was present.
type StringZField struct {
	Text        string
	HasTailZero bool
}

// MultilineField is code-page text split into lines on a fixed newline
// style. Re-encoding joins the lines back with the same separator.
type MultilineField struct {
	Lines   []string
	Newline Newline
}

// StringZListField is a sequence of NUL-separated code-page strings.
// HasTailZero preserves whether the final item carried its own terminator.
type StringZListField struct {
	Items       []string
	HasTailZero bool
}

type (
	IntField   int32
	ShortField int16
	LongField  int64
	ByteField  uint8
	FloatField float32
)

type (
	ItemField           Item
	IngredientField     Ingredient
	ScriptMetadataField ScriptMetadata
	FileMetadataField   FileMetadata
	EffectField         Effect
	SavedNpcField       SavedNpc
	NpcField            Npc
	DialogMetadataField DialogMetadata
	AiField             Ai
	AiWanderField       AiWander
	AiTravelField       AiTravel
	SpellMetadataField  SpellMetadata
	BookField           Book
	CreatureField       Creature
	LightField          Light
	MiscItemField       MiscItem
	ApparatusField      Apparatus
	ArmorField          Armor
	WeaponField         Weapon
	BodyPartField       BodyPart
	ClothingField       Clothing
)

// ContainerFlagsField is the CONT record's FLAG field: a bare bitflag value
// with no associated blood-texture byte (unlike NpcFlagsField/CreatureFlagsField).
type ContainerFlagsField struct{ Flags ContainerFlags }

// BipedObjectField is the ARMO/CLOT record's INDX field: a single equip-slot
// enum byte.
type BipedObjectField struct{ Slot BipedObject }

func (BinaryField) isField()           {}
func (StringField) isField()           {}
func (StringZField) isField()          {}
func (MultilineField) isField()        {}
func (StringZListField) isField()      {}
func (IntField) isField()              {}
func (ShortField) isField()            {}
func (LongField) isField()             {}
func (ByteField) isField()             {}
func (FloatField) isField()            {}
func (ItemField) isField()             {}
func (IngredientField) isField()       {}
func (ScriptMetadataField) isField()   {}
func (FileMetadataField) isField()     {}
func (EffectField) isField()           {}
func (SavedNpcField) isField()         {}
func (NpcField) isField()              {}
func (DialogMetadataField) isField()   {}
func (AiField) isField()               {}
func (AiWanderField) isField()         {}
func (AiTravelField) isField()         {}
func (SpellMetadataField) isField()    {}
func (BookField) isField()             {}
func (CreatureField) isField()         {}
func (LightField) isField()            {}
func (MiscItemField) isField()         {}
func (ApparatusField) isField()        {}
func (ArmorField) isField()            {}
func (WeaponField) isField()           {}
func (BodyPartField) isField()         {}
func (ClothingField) isField()         {}
func (ContainerFlagsField) isField()   {}
func (BipedObjectField) isField()      {}
func (NpcFlagsField) isField()         {}
func (CreatureFlagsField) isField()    {}

func newlineSep(n Newline) string {
	if n == NewlineUnix {
		return "\n"
	}
	return "\r\n"
}

// trimTrailingNUL strips trailing 0x00 bytes, the shape every fixed-width
// string field pads with on disk.
func trimTrailingNUL(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == 0 {
		i--
	}
	return b[:i]
}

func padToWidth(b []byte, width int) ([]byte, error) {
	if len(b) > width {
		return nil, &InvalidFixedStringError{ExpectedLen: width, ActualLen: len(b)}
	}
	out := make([]byte, width)
	copy(out, b)
	return out, nil
}

// DecodeField decodes a single field's payload. recordTag/fieldTag select
// the wire shape via Dispatch; payloadSize is the byte count the caller
// (the record-stream layer, out of scope here) has already framed; r must
// yield exactly payloadSize further bytes for every FieldType that reads
// the whole payload.
func DecodeField(recordTag, fieldTag Tag, payloadSize uint32, r *Reader) (Field, error) {
	ft := Dispatch(recordTag, fieldTag)
	start := r.Pos()
	f, err := decodeByType(recordTag, fieldTag, ft, payloadSize, r)
	if err != nil {
		return nil, err
	}
	if consumed := r.Pos() - start; consumed != int64(payloadSize) {
		return nil, &InvalidSizeError{Kind: string(ft), Expected: []int{int(payloadSize)}, Actual: int(consumed)}
	}
	return f, nil
}

func decodeByType(recordTag, fieldTag Tag, ft FieldType, payloadSize uint32, r *Reader) (Field, error) {
	switch ft {
	case FieldTypeBinary, FieldTypeCompressed:
		b, err := r.Bytes(int(payloadSize))
		if err != nil {
			return nil, err
		}
		return BinaryField{Data: append([]byte(nil), b...)}, nil

	case FieldTypeString:
		b, err := r.Bytes(int(payloadSize))
		if err != nil {
			return nil, err
		}
		text, err := decodeText(b)
		if err != nil {
			return nil, err
		}
		return StringField{Text: text}, nil

	case FieldTypeFixedString:
		width, ok := fixedStringWidth(recordTag, fieldTag)
		if !ok {
			width = int(payloadSize)
		}
		if int(payloadSize) != width {
			return nil, &InvalidSizeError{Kind: "FixedString", Expected: []int{width}, Actual: int(payloadSize)}
		}
		b, err := r.Bytes(width)
		if err != nil {
			return nil, err
		}
		text, err := decodeText(trimTrailingNUL(b))
		if err != nil {
			return nil, err
		}
		return StringField{Text: text, FixedWidth: width}, nil

	case FieldTypeStringZ:
		return decodeStringZ(payloadSize, r)

	case FieldTypeMultiline:
		b, err := r.Bytes(int(payloadSize))
		if err != nil {
			return nil, err
		}
		text, err := decodeText(b)
		if err != nil {
			return nil, err
		}
		nl := multilineNewline(recordTag, fieldTag)
		return MultilineField{Lines: strings.Split(text, newlineSep(nl)), Newline: nl}, nil

	case FieldTypeStringZList:
		return decodeStringZList(payloadSize, r)

	case FieldTypeItem:
		count, err := r.I32()
		if err != nil {
			return nil, err
		}
		idb, err := r.Bytes(32)
		if err != nil {
			return nil, err
		}
		id, err := decodeText(trimTrailingNUL(idb))
		if err != nil {
			return nil, err
		}
		return ItemField{Count: count, ID: id}, nil

	case FieldTypeFloat:
		v, err := r.F32()
		return FloatField(v), err
	case FieldTypeInt:
		v, err := r.I32()
		return IntField(v), err
	case FieldTypeShort:
		v, err := r.I16()
		return ShortField(v), err
	case FieldTypeLong:
		v, err := r.I64()
		return LongField(v), err
	case FieldTypeByte:
		v, err := r.U8()
		return ByteField(v), err

	case FieldTypeIngredient:
		return decodeIngredient(r)
	case FieldTypeScriptMetadata:
		return decodeScriptMetadata(r)
	case FieldTypeFileMetadata:
		return decodeFileMetadata(r)
	case FieldTypeEffect:
		return decodeEffect(r)
	case FieldTypeSavedNpc:
		return decodeSavedNpc(r)
	case FieldTypeNpc:
		return decodeNpc(payloadSize, r)
	case FieldTypeDialogMetadata:
		return decodeDialogMetadata(payloadSize, r)
	case FieldTypeAi:
		return decodeAi(r)
	case FieldTypeAiWander:
		return decodeAiWander(r)
	case FieldTypeAiTravel:
		return decodeAiTravel(r)
	case FieldTypeSpellMetadata:
		return decodeSpellMetadata(r)
	case FieldTypeBook:
		return decodeBook(r)
	case FieldTypeCreature:
		return decodeCreature(r)
	case FieldTypeLight:
		return decodeLight(r)
	case FieldTypeMiscItem:
		return decodeMiscItem(r)
	case FieldTypeApparatus:
		return decodeApparatus(r)
	case FieldTypeArmor:
		return decodeArmor(r)
	case FieldTypeWeapon:
		return decodeWeapon(r)
	case FieldTypeBodyPart:
		return decodeBodyPart(r)
	case FieldTypeClothing:
		return decodeClothing(r)
	case FieldTypeNpcFlags:
		return decodeNpcFlags(r)
	case FieldTypeCreatureFlags:
		return decodeCreatureFlags(r)
	case FieldTypeContainerFlags:
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		flags := ContainerFlags(v)
		if !flags.Valid() {
			return nil, &InvalidFlagBitsError{Kind: "ContainerFlags", Raw: uint64(v)}
		}
		return ContainerFlagsField{Flags: flags}, nil
	case FieldTypeBipedObject:
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		slot := BipedObject(v)
		if !slot.Valid() {
			return nil, &InvalidEnumValueError{Kind: "BipedObject", Raw: int64(v)}
		}
		return BipedObjectField{Slot: slot}, nil
	}
	// Unreachable: Dispatch never returns a FieldType without a case above.
	b, err := r.Bytes(int(payloadSize))
	return BinaryField{Data: b}, err
}

func decodeStringZ(payloadSize uint32, r *Reader) (Field, error) {
	b, err := r.Bytes(int(payloadSize))
	if err != nil {
		return nil, err
	}
	hasTail := len(b) > 0 && b[len(b)-1] == 0
	if hasTail {
		b = b[:len(b)-1]
	}
	text, err := decodeText(b)
	if err != nil {
		return nil, err
	}
	return StringZField{Text: text, HasTailZero: hasTail}, nil
}

func decodeStringZList(payloadSize uint32, r *Reader) (Field, error) {
	b, err := r.Bytes(int(payloadSize))
	if err != nil {
		return nil, err
	}
	hasTail := len(b) > 0 && b[len(b)-1] == 0
	content := b
	if hasTail {
		content = b[:len(b)-1]
	}
	var items []string
	if len(content) > 0 {
		for _, part := range bytes.Split(content, []byte{0}) {
			text, err := decodeText(part)
			if err != nil {
				return nil, err
			}
			items = append(items, text)
		}
	}
	return StringZListField{Items: items, HasTailZero: hasTail}, nil
}

func decodeIngredient(r *Reader) (Field, error) {
	var v IngredientField
	var err error
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.U32(); err != nil {
		return nil, err
	}
	for i := range v.EffectID {
		if v.EffectID[i], err = r.I32(); err != nil {
			return nil, err
		}
	}
	for i := range v.SkillID {
		if v.SkillID[i], err = r.I32(); err != nil {
			return nil, err
		}
	}
	for i := range v.AttributeID {
		if v.AttributeID[i], err = r.I32(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func decodeScriptMetadata(r *Reader) (Field, error) {
	nameb, err := r.Bytes(32)
	if err != nil {
		return nil, err
	}
	name, err := decodeText(trimTrailingNUL(nameb))
	if err != nil {
		return nil, err
	}
	v := ScriptMetadataField{Name: name}
	if v.NumShorts, err = r.U32(); err != nil {
		return nil, err
	}
	if v.NumLongs, err = r.U32(); err != nil {
		return nil, err
	}
	if v.NumFloats, err = r.U32(); err != nil {
		return nil, err
	}
	if v.DataSize, err = r.U32(); err != nil {
		return nil, err
	}
	if v.NumVars, err = r.U32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeFileMetadata(r *Reader) (Field, error) {
	var v FileMetadataField
	version, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Version = version
	ftRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.FileType = FileType(ftRaw)
	if !v.FileType.Valid() {
		return nil, &InvalidEnumValueError{Kind: "FileType", Raw: int64(ftRaw)}
	}
	authorb, err := r.Bytes(32)
	if err != nil {
		return nil, err
	}
	v.CompanyName, err = decodeText(trimTrailingNUL(authorb))
	if err != nil {
		return nil, err
	}
	descb, err := r.Bytes(256)
	if err != nil {
		return nil, err
	}
	desc, err := decodeText(trimTrailingNUL(descb))
	if err != nil {
		return nil, err
	}
	v.Description = strings.Split(desc, newlineSep(NewlineDos))
	if v.NumRecords, err = r.U32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeEffect(r *Reader) (Field, error) {
	var v EffectField
	var err error
	if v.EffectID, err = r.I16(); err != nil {
		return nil, err
	}
	if v.SkillID, err = r.I8(); err != nil {
		return nil, err
	}
	if v.AttributeID, err = r.I8(); err != nil {
		return nil, err
	}
	rangeRaw, err := r.I32()
	if err != nil {
		return nil, err
	}
	v.Range = EffectRange(rangeRaw)
	if !v.Range.Valid() {
		return nil, &InvalidEnumValueError{Kind: "EffectRange", Raw: int64(rangeRaw)}
	}
	if v.Area, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Duration, err = r.I32(); err != nil {
		return nil, err
	}
	if v.MagnitudeMin, err = r.I32(); err != nil {
		return nil, err
	}
	if v.MagnitudeMax, err = r.I32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeSavedNpc(r *Reader) (Field, error) {
	var v SavedNpcField
	var err error
	if v.Disposition, err = r.I16(); err != nil {
		return nil, err
	}
	if v.Reputation, err = r.I16(); err != nil {
		return nil, err
	}
	if v.Index, err = r.U32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeNpcCharacteristics(r *Reader) (NpcCharacteristics, error) {
	var c NpcCharacteristics
	var err error
	for _, f := range []*uint8{&c.Strength, &c.Intelligence, &c.Willpower, &c.Agility, &c.Speed, &c.Endurance, &c.Personality, &c.Luck} {
		if *f, err = r.U8(); err != nil {
			return c, err
		}
	}
	for i := range c.Skills {
		if c.Skills[i], err = r.U8(); err != nil {
			return c, err
		}
	}
	if c.Faction, err = r.U8(); err != nil {
		return c, err
	}
	if c.Health, err = r.I16(); err != nil {
		return c, err
	}
	if c.Magicka, err = r.I16(); err != nil {
		return c, err
	}
	if c.Fatigue, err = r.I16(); err != nil {
		return c, err
	}
	return c, nil
}

func decodeNpc(payloadSize uint32, r *Reader) (Field, error) {
	level, err := r.I16()
	if err != nil {
		return nil, err
	}
	switch payloadSize {
	case 12:
		disposition, err := r.I8()
		if err != nil {
			return nil, err
		}
		reputation, err := r.I8()
		if err != nil {
			return nil, err
		}
		rank, err := r.I8()
		if err != nil {
			return nil, err
		}
		pad8, err := r.U8()
		if err != nil {
			return nil, err
		}
		pad16, err := r.U16()
		if err != nil {
			return nil, err
		}
		gold, err := r.I32()
		if err != nil {
			return nil, err
		}
		return NpcField{
			Level:           level,
			Characteristics: NpcCharacteristicsOption{Present: false, Padding: pad16},
			Disposition:     disposition,
			Reputation:      reputation,
			Rank:            rank,
			Padding:         pad8,
			Gold:            gold,
		}, nil
	case 52:
		chars, err := decodeNpcCharacteristics(r)
		if err != nil {
			return nil, err
		}
		disposition, err := r.I8()
		if err != nil {
			return nil, err
		}
		reputation, err := r.I8()
		if err != nil {
			return nil, err
		}
		rank, err := r.I8()
		if err != nil {
			return nil, err
		}
		pad8, err := r.U8()
		if err != nil {
			return nil, err
		}
		gold, err := r.I32()
		if err != nil {
			return nil, err
		}
		return NpcField{
			Level:           level,
			Characteristics: NpcCharacteristicsOption{Present: true, Characteristics: chars},
			Disposition:     disposition,
			Reputation:      reputation,
			Rank:            rank,
			Padding:         pad8,
			Gold:            gold,
		}, nil
	default:
		return nil, &InvalidSizeError{Kind: "Npc", Expected: []int{12, 52}, Actual: int(payloadSize)}
	}
}

func decodeDialogMetadata(payloadSize uint32, r *Reader) (Field, error) {
	switch payloadSize {
	case 4:
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		return DialogMetadataField{HasType: false, Padding: v}, nil
	case 1:
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		dt := DialogType(v)
		if !dt.Valid() {
			return nil, &InvalidEnumValueError{Kind: "DialogType", Raw: int64(v)}
		}
		return DialogMetadataField{HasType: true, Type: dt}, nil
	default:
		return nil, &InvalidSizeError{Kind: "DialogMetadata", Expected: []int{1, 4}, Actual: int(payloadSize)}
	}
}

func decodeAi(r *Reader) (Field, error) {
	var v AiField
	var err error
	if v.Hello, err = r.U16(); err != nil {
		return nil, err
	}
	if v.Fight, err = r.U8(); err != nil {
		return nil, err
	}
	if v.Flee, err = r.U8(); err != nil {
		return nil, err
	}
	if v.Alarm, err = r.U8(); err != nil {
		return nil, err
	}
	if v.Padding8, err = r.U8(); err != nil {
		return nil, err
	}
	if v.Padding16, err = r.U16(); err != nil {
		return nil, err
	}
	servicesRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Services = AiServices(servicesRaw)
	if !v.Services.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "AiServices", Raw: uint64(servicesRaw)}
	}
	return v, nil
}

func decodeAiWander(r *Reader) (Field, error) {
	var v AiWanderField
	var err error
	if v.Distance, err = r.U16(); err != nil {
		return nil, err
	}
	if v.Duration, err = r.U16(); err != nil {
		return nil, err
	}
	if v.TimeOfDay, err = r.U8(); err != nil {
		return nil, err
	}
	for i := range v.Idle {
		if v.Idle[i], err = r.U8(); err != nil {
			return nil, err
		}
	}
	if v.Repeat, err = r.U8(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeAiTravel(r *Reader) (Field, error) {
	var v AiTravelField
	var err error
	if v.X, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Y, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Z, err = r.F32(); err != nil {
		return nil, err
	}
	flagsRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Flags = AiTravelFlags(flagsRaw)
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "AiTravelFlags", Raw: uint64(flagsRaw)}
	}
	return v, nil
}

func decodeSpellMetadata(r *Reader) (Field, error) {
	typeRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v := SpellMetadataField{Type: SpellType(typeRaw)}
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "SpellType", Raw: int64(typeRaw)}
	}
	if v.Cost, err = r.I32(); err != nil {
		return nil, err
	}
	flagsRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Flags = SpellFlags(flagsRaw)
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "SpellFlags", Raw: uint64(flagsRaw)}
	}
	return v, nil
}

func decodeBook(r *Reader) (Field, error) {
	var v BookField
	var err error
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Scroll, err = r.I32(); err != nil {
		return nil, err
	}
	if v.SkillID, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Enchantment, err = r.I32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeCreature(r *Reader) (Field, error) {
	typeRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v := CreatureField{Type: CreatureType(typeRaw)}
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "CreatureType", Raw: int64(typeRaw)}
	}
	fields := []*int32{
		&v.Level, &v.Strength, &v.Intelligence, &v.Willpower, &v.Agility, &v.Speed,
		&v.Endurance, &v.Personality, &v.Luck, &v.Health, &v.Magicka, &v.Fatigue,
		&v.Soul, &v.Combat, &v.Magic, &v.Stealth,
		&v.AttackMin1, &v.AttackMax1, &v.AttackMin2, &v.AttackMax2, &v.AttackMin3, &v.AttackMax3,
		&v.Gold,
	}
	for _, f := range fields {
		if *f, err = r.I32(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func decodeLight(r *Reader) (Field, error) {
	var v LightField
	var err error
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Time, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Radius, err = r.I32(); err != nil {
		return nil, err
	}
	colorRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Color = Color(colorRaw)
	flagsRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Flags = LightFlags(flagsRaw)
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "LightFlags", Raw: uint64(flagsRaw)}
	}
	return v, nil
}

func decodeMiscItem(r *Reader) (Field, error) {
	var v MiscItemField
	var err error
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	if v.IsKey, err = r.I32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeApparatus(r *Reader) (Field, error) {
	typeRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v := ApparatusField{Type: ApparatusType(typeRaw)}
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "ApparatusType", Raw: int64(typeRaw)}
	}
	if v.Quality, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeArmor(r *Reader) (Field, error) {
	typeRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v := ArmorField{Type: ArmorType(typeRaw)}
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "ArmorType", Raw: int64(typeRaw)}
	}
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Health, err = r.I32(); err != nil {
		return nil, err
	}
	if v.Enchantment, err = r.I32(); err != nil {
		return nil, err
	}
	if v.ArmorRating, err = r.I32(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeWeapon(r *Reader) (Field, error) {
	var v WeaponField
	var err error
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I32(); err != nil {
		return nil, err
	}
	typeRaw, err := r.U16()
	if err != nil {
		return nil, err
	}
	v.Type = WeaponType(typeRaw)
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "WeaponType", Raw: int64(typeRaw)}
	}
	if v.Health, err = r.I16(); err != nil {
		return nil, err
	}
	if v.Speed, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Reach, err = r.F32(); err != nil {
		return nil, err
	}
	if v.EnchantPts, err = r.I16(); err != nil {
		return nil, err
	}
	if v.ChopMin, err = r.U8(); err != nil {
		return nil, err
	}
	if v.ChopMax, err = r.U8(); err != nil {
		return nil, err
	}
	if v.SlashMin, err = r.U8(); err != nil {
		return nil, err
	}
	if v.SlashMax, err = r.U8(); err != nil {
		return nil, err
	}
	if v.ThrustMin, err = r.U8(); err != nil {
		return nil, err
	}
	if v.ThrustMax, err = r.U8(); err != nil {
		return nil, err
	}
	flagsRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v.Flags = WeaponFlags(flagsRaw)
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "WeaponFlags", Raw: uint64(flagsRaw)}
	}
	return v, nil
}

func decodeBodyPart(r *Reader) (Field, error) {
	meshRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v := BodyPartField{MeshType: MeshType(meshRaw)}
	if !v.MeshType.Valid() {
		return nil, &InvalidEnumValueError{Kind: "MeshType", Raw: int64(meshRaw)}
	}
	if v.Vampire, err = r.U8(); err != nil {
		return nil, err
	}
	flagsRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v.Flags = BodyPartFlags(flagsRaw)
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "BodyPartFlags", Raw: uint64(flagsRaw)}
	}
	typeRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v.Type = BodyPartType(typeRaw)
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "BodyPartType", Raw: int64(typeRaw)}
	}
	return v, nil
}

func decodeClothing(r *Reader) (Field, error) {
	typeRaw, err := r.U32()
	if err != nil {
		return nil, err
	}
	v := ClothingField{Type: ClothingType(typeRaw)}
	if !v.Type.Valid() {
		return nil, &InvalidEnumValueError{Kind: "ClothingType", Raw: int64(typeRaw)}
	}
	if v.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	if v.Value, err = r.I16(); err != nil {
		return nil, err
	}
	if v.Enchantment, err = r.I16(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeNpcFlags(r *Reader) (Field, error) {
	flagsRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v := NpcFlagsField{Flags: NpcFlags(flagsRaw)}
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "NpcFlags", Raw: uint64(flagsRaw)}
	}
	bloodRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v.BloodTexture = BloodTexture(bloodRaw)
	if !v.BloodTexture.Valid() {
		return nil, &InvalidEnumValueError{Kind: "BloodTexture", Raw: int64(bloodRaw)}
	}
	if v.Padding, err = r.U16(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeCreatureFlags(r *Reader) (Field, error) {
	flagsRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v := CreatureFlagsField{Flags: CreatureFlags(flagsRaw)}
	if !v.Flags.Valid() {
		return nil, &InvalidFlagBitsError{Kind: "CreatureFlags", Raw: uint64(flagsRaw)}
	}
	bloodRaw, err := r.U8()
	if err != nil {
		return nil, err
	}
	v.BloodTexture = BloodTexture(bloodRaw)
	if !v.BloodTexture.Valid() {
		return nil, &InvalidEnumValueError{Kind: "BloodTexture", Raw: int64(bloodRaw)}
	}
	if v.Padding, err = r.U16(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeField writes f's on-disk form to w and returns the number of bytes
// written. The written shape follows f's own concrete type, not a re-lookup
// of Dispatch — callers must pass a Field previously produced by DecodeField
// (or hand-built with a matching shape) for the same (recordTag, fieldTag).
func EncodeField(w *Writer, f Field) (int64, error) {
	start := w.Pos()
	if err := encodeByType(w, f); err != nil {
		return 0, err
	}
	return w.Pos() - start, nil
}

func encodeByType(w *Writer, f Field) error {
	switch v := f.(type) {
	case BinaryField:
		return w.Bytes(v.Data)

	case StringField:
		b, err := encodeText(v.Text)
		if err != nil {
			return err
		}
		if v.FixedWidth > 0 {
			b, err = padToWidth(b, v.FixedWidth)
			if err != nil {
				return err
			}
		}
		return w.Bytes(b)

	case StringZField:
		b, err := encodeText(v.Text)
		if err != nil {
			return err
		}
		if err := w.Bytes(b); err != nil {
			return err
		}
		if v.HasTailZero {
			return w.U8(0)
		}
		return nil

	case MultilineField:
		b, err := encodeText(strings.Join(v.Lines, newlineSep(v.Newline)))
		if err != nil {
			return err
		}
		return w.Bytes(b)

	case StringZListField:
		encoded := make([][]byte, len(v.Items))
		for i, item := range v.Items {
			b, err := encodeText(item)
			if err != nil {
				return err
			}
			encoded[i] = b
		}
		out := bytes.Join(encoded, []byte{0})
		if v.HasTailZero {
			out = append(out, 0)
		}
		return w.Bytes(out)

	case IntField:
		return w.I32(int32(v))
	case ShortField:
		return w.I16(int16(v))
	case LongField:
		return w.I64(int64(v))
	case ByteField:
		return w.U8(uint8(v))
	case FloatField:
		return w.F32(float32(v))

	case ItemField:
		if err := w.I32(v.Count); err != nil {
			return err
		}
		idb, err := encodeText(v.ID)
		if err != nil {
			return err
		}
		idb, err = padToWidth(idb, 32)
		if err != nil {
			return err
		}
		return w.Bytes(idb)

	case IngredientField:
		return encodeIngredient(w, v)
	case ScriptMetadataField:
		return encodeScriptMetadata(w, v)
	case FileMetadataField:
		return encodeFileMetadata(w, v)
	case EffectField:
		return encodeEffect(w, v)
	case SavedNpcField:
		return encodeSavedNpc(w, v)
	case NpcField:
		return encodeNpc(w, v)
	case DialogMetadataField:
		return encodeDialogMetadata(w, v)
	case AiField:
		return encodeAi(w, v)
	case AiWanderField:
		return encodeAiWander(w, v)
	case AiTravelField:
		return encodeAiTravel(w, v)
	case SpellMetadataField:
		return encodeSpellMetadata(w, v)
	case BookField:
		return encodeBook(w, v)
	case CreatureField:
		return encodeCreature(w, v)
	case LightField:
		return encodeLight(w, v)
	case MiscItemField:
		return encodeMiscItem(w, v)
	case ApparatusField:
		return encodeApparatus(w, v)
	case ArmorField:
		return encodeArmor(w, v)
	case WeaponField:
		return encodeWeapon(w, v)
	case BodyPartField:
		return encodeBodyPart(w, v)
	case ClothingField:
		return encodeClothing(w, v)
	case NpcFlagsField:
		return encodeNpcFlags(w, v)
	case CreatureFlagsField:
		return encodeCreatureFlags(w, v)
	case ContainerFlagsField:
		return w.U32(uint32(v.Flags))
	case BipedObjectField:
		return w.U8(uint8(v.Slot))
	}
	return nil
}

func encodeIngredient(w *Writer, v IngredientField) error {
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.U32(v.Value); err != nil {
		return err
	}
	for _, x := range v.EffectID {
		if err := w.I32(x); err != nil {
			return err
		}
	}
	for _, x := range v.SkillID {
		if err := w.I32(x); err != nil {
			return err
		}
	}
	for _, x := range v.AttributeID {
		if err := w.I32(x); err != nil {
			return err
		}
	}
	return nil
}

func encodeScriptMetadata(w *Writer, v ScriptMetadataField) error {
	nameb, err := encodeText(v.Name)
	if err != nil {
		return err
	}
	nameb, err = padToWidth(nameb, 32)
	if err != nil {
		return err
	}
	if err := w.Bytes(nameb); err != nil {
		return err
	}
	if err := w.U32(v.NumShorts); err != nil {
		return err
	}
	if err := w.U32(v.NumLongs); err != nil {
		return err
	}
	if err := w.U32(v.NumFloats); err != nil {
		return err
	}
	if err := w.U32(v.DataSize); err != nil {
		return err
	}
	return w.U32(v.NumVars)
}

func encodeFileMetadata(w *Writer, v FileMetadataField) error {
	if err := w.U32(v.Version); err != nil {
		return err
	}
	if err := w.U32(uint32(v.FileType)); err != nil {
		return err
	}
	authorb, err := encodeText(v.CompanyName)
	if err != nil {
		return err
	}
	authorb, err = padToWidth(authorb, 32)
	if err != nil {
		return err
	}
	if err := w.Bytes(authorb); err != nil {
		return err
	}
	descb, err := encodeText(strings.Join(v.Description, newlineSep(NewlineDos)))
	if err != nil {
		return err
	}
	descb, err = padToWidth(descb, 256)
	if err != nil {
		return err
	}
	if err := w.Bytes(descb); err != nil {
		return err
	}
	return w.U32(v.NumRecords)
}

func encodeEffect(w *Writer, v EffectField) error {
	if err := w.I16(v.EffectID); err != nil {
		return err
	}
	if err := w.I8(v.SkillID); err != nil {
		return err
	}
	if err := w.I8(v.AttributeID); err != nil {
		return err
	}
	if err := w.I32(int32(v.Range)); err != nil {
		return err
	}
	if err := w.I32(v.Area); err != nil {
		return err
	}
	if err := w.I32(v.Duration); err != nil {
		return err
	}
	if err := w.I32(v.MagnitudeMin); err != nil {
		return err
	}
	return w.I32(v.MagnitudeMax)
}

func encodeSavedNpc(w *Writer, v SavedNpcField) error {
	if err := w.I16(v.Disposition); err != nil {
		return err
	}
	if err := w.I16(v.Reputation); err != nil {
		return err
	}
	return w.U32(v.Index)
}

func encodeNpcCharacteristics(w *Writer, c NpcCharacteristics) error {
	for _, x := range []uint8{c.Strength, c.Intelligence, c.Willpower, c.Agility, c.Speed, c.Endurance, c.Personality, c.Luck} {
		if err := w.U8(x); err != nil {
			return err
		}
	}
	for _, x := range c.Skills {
		if err := w.U8(x); err != nil {
			return err
		}
	}
	if err := w.U8(c.Faction); err != nil {
		return err
	}
	if err := w.I16(c.Health); err != nil {
		return err
	}
	if err := w.I16(c.Magicka); err != nil {
		return err
	}
	return w.I16(c.Fatigue)
}

func encodeNpc(w *Writer, v NpcField) error {
	if err := w.I16(v.Level); err != nil {
		return err
	}
	if v.Characteristics.Present {
		if err := encodeNpcCharacteristics(w, v.Characteristics.Characteristics); err != nil {
			return err
		}
		if err := w.I8(v.Disposition); err != nil {
			return err
		}
		if err := w.I8(v.Reputation); err != nil {
			return err
		}
		if err := w.I8(v.Rank); err != nil {
			return err
		}
		if err := w.U8(v.Padding); err != nil {
			return err
		}
		return w.I32(v.Gold)
	}
	if err := w.I8(v.Disposition); err != nil {
		return err
	}
	if err := w.I8(v.Reputation); err != nil {
		return err
	}
	if err := w.I8(v.Rank); err != nil {
		return err
	}
	if err := w.U8(v.Padding); err != nil {
		return err
	}
	if err := w.U16(v.Characteristics.Padding); err != nil {
		return err
	}
	return w.I32(v.Gold)
}

func encodeDialogMetadata(w *Writer, v DialogMetadataField) error {
	if v.HasType {
		return w.U8(uint8(v.Type))
	}
	return w.U32(v.Padding)
}

func encodeAi(w *Writer, v AiField) error {
	if err := w.U16(v.Hello); err != nil {
		return err
	}
	if err := w.U8(v.Fight); err != nil {
		return err
	}
	if err := w.U8(v.Flee); err != nil {
		return err
	}
	if err := w.U8(v.Alarm); err != nil {
		return err
	}
	if err := w.U8(v.Padding8); err != nil {
		return err
	}
	if err := w.U16(v.Padding16); err != nil {
		return err
	}
	return w.U32(uint32(v.Services))
}

func encodeAiWander(w *Writer, v AiWanderField) error {
	if err := w.U16(v.Distance); err != nil {
		return err
	}
	if err := w.U16(v.Duration); err != nil {
		return err
	}
	if err := w.U8(v.TimeOfDay); err != nil {
		return err
	}
	for _, x := range v.Idle {
		if err := w.U8(x); err != nil {
			return err
		}
	}
	return w.U8(v.Repeat)
}

func encodeAiTravel(w *Writer, v AiTravelField) error {
	if err := w.F32(v.X); err != nil {
		return err
	}
	if err := w.F32(v.Y); err != nil {
		return err
	}
	if err := w.F32(v.Z); err != nil {
		return err
	}
	return w.U32(uint32(v.Flags))
}

func encodeSpellMetadata(w *Writer, v SpellMetadataField) error {
	if err := w.U32(uint32(v.Type)); err != nil {
		return err
	}
	if err := w.I32(v.Cost); err != nil {
		return err
	}
	return w.U32(uint32(v.Flags))
}

func encodeBook(w *Writer, v BookField) error {
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I32(v.Value); err != nil {
		return err
	}
	if err := w.I32(v.Scroll); err != nil {
		return err
	}
	if err := w.I32(v.SkillID); err != nil {
		return err
	}
	return w.I32(v.Enchantment)
}

func encodeCreature(w *Writer, v CreatureField) error {
	if err := w.U32(uint32(v.Type)); err != nil {
		return err
	}
	fields := []int32{
		v.Level, v.Strength, v.Intelligence, v.Willpower, v.Agility, v.Speed,
		v.Endurance, v.Personality, v.Luck, v.Health, v.Magicka, v.Fatigue,
		v.Soul, v.Combat, v.Magic, v.Stealth,
		v.AttackMin1, v.AttackMax1, v.AttackMin2, v.AttackMax2, v.AttackMin3, v.AttackMax3,
		v.Gold,
	}
	for _, x := range fields {
		if err := w.I32(x); err != nil {
			return err
		}
	}
	return nil
}

func encodeLight(w *Writer, v LightField) error {
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I32(v.Value); err != nil {
		return err
	}
	if err := w.I32(v.Time); err != nil {
		return err
	}
	if err := w.I32(v.Radius); err != nil {
		return err
	}
	if err := w.U32(uint32(v.Color)); err != nil {
		return err
	}
	return w.U32(uint32(v.Flags))
}

func encodeMiscItem(w *Writer, v MiscItemField) error {
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I32(v.Value); err != nil {
		return err
	}
	return w.I32(v.IsKey)
}

func encodeApparatus(w *Writer, v ApparatusField) error {
	if err := w.U32(uint32(v.Type)); err != nil {
		return err
	}
	if err := w.F32(v.Quality); err != nil {
		return err
	}
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	return w.I32(v.Value)
}

func encodeArmor(w *Writer, v ArmorField) error {
	if err := w.U32(uint32(v.Type)); err != nil {
		return err
	}
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I32(v.Value); err != nil {
		return err
	}
	if err := w.I32(v.Health); err != nil {
		return err
	}
	if err := w.I32(v.Enchantment); err != nil {
		return err
	}
	return w.I32(v.ArmorRating)
}

func encodeWeapon(w *Writer, v WeaponField) error {
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I32(v.Value); err != nil {
		return err
	}
	if err := w.U16(uint16(v.Type)); err != nil {
		return err
	}
	if err := w.I16(v.Health); err != nil {
		return err
	}
	if err := w.F32(v.Speed); err != nil {
		return err
	}
	if err := w.F32(v.Reach); err != nil {
		return err
	}
	if err := w.I16(v.EnchantPts); err != nil {
		return err
	}
	if err := w.U8(v.ChopMin); err != nil {
		return err
	}
	if err := w.U8(v.ChopMax); err != nil {
		return err
	}
	if err := w.U8(v.SlashMin); err != nil {
		return err
	}
	if err := w.U8(v.SlashMax); err != nil {
		return err
	}
	if err := w.U8(v.ThrustMin); err != nil {
		return err
	}
	if err := w.U8(v.ThrustMax); err != nil {
		return err
	}
	return w.U32(uint32(v.Flags))
}

func encodeBodyPart(w *Writer, v BodyPartField) error {
	if err := w.U8(uint8(v.MeshType)); err != nil {
		return err
	}
	if err := w.U8(v.Vampire); err != nil {
		return err
	}
	if err := w.U8(uint8(v.Flags)); err != nil {
		return err
	}
	return w.U8(uint8(v.Type))
}

func encodeClothing(w *Writer, v ClothingField) error {
	if err := w.U32(uint32(v.Type)); err != nil {
		return err
	}
	if err := w.F32(v.Weight); err != nil {
		return err
	}
	if err := w.I16(v.Value); err != nil {
		return err
	}
	return w.I16(v.Enchantment)
}

func encodeNpcFlags(w *Writer, v NpcFlagsField) error {
	if err := w.U8(uint8(v.Flags)); err != nil {
		return err
	}
	if err := w.U8(uint8(v.BloodTexture)); err != nil {
		return err
	}
	return w.U16(v.Padding)
}

func encodeCreatureFlags(w *Writer, v CreatureFlagsField) error {
	if err := w.U8(uint8(v.Flags)); err != nil {
		return err
	}
	if err := w.U8(uint8(v.BloodTexture)); err != nil {
		return err
	}
	return w.U16(v.Padding)
}
