package tes3codec

// This file holds the closed, fixed numeric enumerations used throughout
// TES3 field types. Each is validated by a round-trip check: the raw
// integer must map to exactly one named variant, and there is no notion of
// an "unknown but valid" value the way bitflags allow for ignored bits.

// FileType is the TES3.HEDR file kind discriminator.
type FileType uint32

const (
	FileTypeESP FileType = 0
	FileTypeESM FileType = 1
	FileTypeESS FileType = 32
)

func (f FileType) Valid() bool {
	switch f {
	case FileTypeESP, FileTypeESM, FileTypeESS:
		return true
	default:
		return false
	}
}

func (f FileType) String() string {
	switch f {
	case FileTypeESP:
		return "ESP"
	case FileTypeESM:
		return "ESM"
	case FileTypeESS:
		return "ESS"
	default:
		return "Unknown"
	}
}

// DialogType is the DIAL record's DATA field discriminator.
type DialogType uint8

const (
	DialogTypeTopic DialogType = iota
	DialogTypeVoice
	DialogTypeGreeting
	DialogTypePersuasion
	DialogTypeJournal
)

func (d DialogType) Valid() bool {
	return d <= DialogTypeJournal
}

// EffectRange is a magic effect's area-of-effect kind.
type EffectRange uint32

const (
	EffectRangeSelf EffectRange = iota
	EffectRangeTouch
	EffectRangeTarget
)

func (e EffectRange) Valid() bool {
	return e <= EffectRangeTarget
}

// Newline selects the line terminator a Multiline text field was split with.
type Newline uint8

const (
	NewlineDos Newline = iota
	NewlineUnix
)

// SpellType is the SPEL record's type discriminator.
type SpellType uint32

const (
	SpellTypeSpell SpellType = iota
	SpellTypeAbility
	SpellTypeBlight
	SpellTypeDisease
	SpellTypeCurse
	SpellTypePower
)

func (s SpellType) Valid() bool {
	return s <= SpellTypePower
}

// BloodTexture selects a creature/NPC's hit-effect particle texture.
type BloodTexture uint8

const (
	BloodTextureDefault      BloodTexture = 0
	BloodTextureSkeleton     BloodTexture = 4
	BloodTextureMetalSparks  BloodTexture = 8
)

func (b BloodTexture) Valid() bool {
	switch b {
	case BloodTextureDefault, BloodTextureSkeleton, BloodTextureMetalSparks:
		return true
	default:
		return false
	}
}

// CreatureType is the CREA record's NPDT creature-kind discriminator.
type CreatureType uint32

const (
	CreatureTypeCreature CreatureType = iota
	CreatureTypeDaedra
	CreatureTypeUndead
	CreatureTypeHumanoid
)

func (c CreatureType) Valid() bool {
	return c <= CreatureTypeHumanoid
}

// ApparatusType is the APPA record's alchemy-tool kind.
type ApparatusType uint32

const (
	ApparatusTypeMortarPestle ApparatusType = iota
	ApparatusTypeAlembic
	ApparatusTypeCalcinator
	ApparatusTypeRetort
)

func (a ApparatusType) Valid() bool {
	return a <= ApparatusTypeRetort
}

// ArmorType is the ARMO record's equip-slot discriminator.
type ArmorType uint32

const (
	ArmorTypeHelmet ArmorType = iota
	ArmorTypeCuirass
	ArmorTypeLeftPauldron
	ArmorTypeRightPauldron
	ArmorTypeGreaves
	ArmorTypeBoots
	ArmorTypeLeftGauntlet
	ArmorTypeRightGauntlet
	ArmorTypeShield
	ArmorTypeLeftBracer
	ArmorTypeRightBracer
)

func (a ArmorType) Valid() bool {
	return a <= ArmorTypeRightBracer
}

// WeaponType is the WEAP record's WPDT weapon-kind discriminator. It is
// stored on disk as a 16-bit value, unlike the other enums here.
type WeaponType uint16

const (
	WeaponTypeShortBladeOneHand WeaponType = iota
	WeaponTypeLongBladeOneHand
	WeaponTypeLongBladeTwoHand
	WeaponTypeBluntOneHand
	WeaponTypeBluntTwoClose
	WeaponTypeBluntTwoWide
	WeaponTypeSpearTwoWide
	WeaponTypeAxeOneHand
	WeaponTypeAxeTwoHand
	WeaponTypeMarksmanBow
	WeaponTypeMarksmanCrossbow
	WeaponTypeMarksmanThrown
	WeaponTypeArrow
	WeaponTypeBolt
)

func (w WeaponType) Valid() bool {
	return w <= WeaponTypeBolt
}

// MeshType is the BODY record's mesh-slot discriminator, stored as a byte.
type MeshType uint8

const (
	MeshTypeHead MeshType = iota
	MeshTypeHair
	MeshTypeNeck
	MeshTypeChest
	MeshTypeGroin
	MeshTypeHand
	MeshTypeWrist
	MeshTypeForearm
	MeshTypeUpperArm
	MeshTypeFoot
	MeshTypeAnkle
	MeshTypeKnee
	MeshTypeUpperLeg
	MeshTypeClavicle
	MeshTypeTail
)

func (m MeshType) Valid() bool {
	return m <= MeshTypeTail
}

// BodyPartType is the BODY record's BYDT part-kind discriminator.
type BodyPartType uint8

const (
	BodyPartTypeSkin BodyPartType = iota
	BodyPartTypeClothing
	BodyPartTypeArmor
)

func (b BodyPartType) Valid() bool {
	return b <= BodyPartTypeArmor
}

// BipedObject is the ARMO/CLOT record's INDX equip-slot discriminator,
// stored as a byte. It enumerates more slots than ArmorType because it also
// covers clothing-only slots like Shirt/Pants/Skirt.
type BipedObject uint8

const (
	BipedObjectHead BipedObject = iota
	BipedObjectHair
	BipedObjectNeck
	BipedObjectCuirass
	BipedObjectGroin
	BipedObjectSkirt
	BipedObjectRightHand
	BipedObjectLeftHand
	BipedObjectRightWrist
	BipedObjectLeftWrist
	BipedObjectShield
	BipedObjectRightForearm
	BipedObjectLeftForearm
	BipedObjectRightUpperArm
	BipedObjectLeftUpperArm
	BipedObjectRightFoot
	BipedObjectLeftFoot
	BipedObjectRightAnkle
	BipedObjectLeftAnkle
	BipedObjectRightKnee
	BipedObjectLeftKnee
	BipedObjectRightUpperLeg
	BipedObjectLeftUpperLeg
	BipedObjectRightPauldron
	BipedObjectLeftPauldron
	BipedObjectWeapon
	BipedObjectTail
)

func (b BipedObject) Valid() bool {
	return b <= BipedObjectTail
}

// ClothingType is the CLOT record's CTDT clothing-kind discriminator.
type ClothingType uint32

const (
	ClothingTypePants ClothingType = iota
	ClothingTypeShoes
	ClothingTypeShirt
	ClothingTypeBelt
	ClothingTypeRobe
	ClothingTypeRightGlove
	ClothingTypeLeftGlove
	ClothingTypeSkirt
	ClothingTypeRing
	ClothingTypeAmulet
)

func (c ClothingType) Valid() bool {
	return c <= ClothingTypeAmulet
}
