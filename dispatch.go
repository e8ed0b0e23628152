package tes3codec

// FieldType names the wire shape a given (record tag, field tag) pair
// decodes and encodes as. It is the result of Dispatch, never constructed
// directly by callers.
type FieldType string

const (
	FieldTypeBinary         FieldType = "Binary"
	FieldTypeString         FieldType = "String"         // length-prefixed unless a fixed width applies
	FieldTypeFixedString    FieldType = "FixedString"    // fixed width, carried alongside the FieldType
	FieldTypeStringZ        FieldType = "StringZ"        // length-prefixed, NUL-terminated on disk
	FieldTypeMultiline      FieldType = "Multiline"      // length-prefixed, split on a line terminator
	FieldTypeStringZList    FieldType = "StringZList"    // length-prefixed sequence of NUL-terminated strings
	FieldTypeItem           FieldType = "Item"
	FieldTypeFloat          FieldType = "Float"
	FieldTypeInt            FieldType = "Int"
	FieldTypeShort          FieldType = "Short"
	FieldTypeLong           FieldType = "Long"
	FieldTypeByte           FieldType = "Byte"
	FieldTypeCompressed     FieldType = "Compressed"
	FieldTypeIngredient     FieldType = "Ingredient"
	FieldTypeScriptMetadata FieldType = "ScriptMetadata"
	FieldTypeDialogMetadata FieldType = "DialogMetadata"
	FieldTypeFileMetadata   FieldType = "FileMetadata"
	FieldTypeNpc            FieldType = "Npc"
	FieldTypeSavedNpc       FieldType = "SavedNpc"
	FieldTypeEffect         FieldType = "Effect"
	FieldTypeSpellMetadata  FieldType = "SpellMetadata"
	FieldTypeAi             FieldType = "Ai"
	FieldTypeAiWander       FieldType = "AiWander"
	FieldTypeAiTravel       FieldType = "AiTravel"
	FieldTypeNpcFlags       FieldType = "NpcFlags"
	FieldTypeCreatureFlags  FieldType = "CreatureFlags"
	FieldTypeBook           FieldType = "Book"
	FieldTypeContainerFlags FieldType = "ContainerFlags"
	FieldTypeCreature       FieldType = "Creature"
	FieldTypeLight          FieldType = "Light"
	FieldTypeMiscItem       FieldType = "MiscItem"
	FieldTypeApparatus      FieldType = "Apparatus"
	FieldTypeWeapon         FieldType = "Weapon"
	FieldTypeArmor          FieldType = "Armor"
	FieldTypeBipedObject    FieldType = "BipedObject"
	FieldTypeBodyPart       FieldType = "BodyPart"
	FieldTypeClothing       FieldType = "Clothing"
)

// dispatchKey is a (record tag, field tag) pair. A zero Tag in Record means
// "any record" — the wildcard entry.
type dispatchKey struct {
	Record Tag
	Field  Tag
}

var wildcardTag Tag

// fixedStringWidths holds the fixed byte width for field types that are a
// fixed-size string rather than a length-prefixed one, keyed the same way
// as dispatchTable.
var fixedStringWidths = map[dispatchKey]int{
	{tagFACT, NewTag("RNAM")}: 32,
	{wildcardTag, NewTag("NPCS")}: 32,
}

// multilineNewlines holds the line-terminator style for each FieldTypeMultiline
// dispatch entry, keyed the same way as dispatchTable. A pair absent here
// uses NewlineDos, the style every multiline field carries except the
// (JOUR, NAME) journal entry text, which the game stores Unix-style.
var multilineNewlines = map[dispatchKey]Newline{
	{tagJOUR, NewTag("NAME")}: NewlineUnix,
}

// dispatchTable is the normative (record tag, field tag) -> FieldType map.
// Most-specific wins: an exact (record,field) entry is checked first, then
// the (*, field) wildcard, then FieldTypeBinary by default.
var dispatchTable = map[dispatchKey]FieldType{
	{tagAPPA, NewTag("AADT")}: FieldTypeApparatus,

	{tagINFO, NewTag("ACDT")}: FieldTypeString,
	{tagCELL, NewTag("ACTN")}: FieldTypeInt,

	{wildcardTag, NewTag("AI_T")}: FieldTypeAiTravel,
	{wildcardTag, NewTag("AI_W")}: FieldTypeAiWander,
	{wildcardTag, NewTag("AIDT")}: FieldTypeAi,

	{tagFACT, NewTag("ANAM")}: FieldTypeString,
	{wildcardTag, NewTag("ANAM")}: FieldTypeStringZ,

	{tagARMO, NewTag("AODT")}: FieldTypeArmor,

	{wildcardTag, NewTag("ASND")}: FieldTypeStringZ,
	{wildcardTag, NewTag("AVFX")}: FieldTypeStringZ,

	{tagBOOK, NewTag("BKDT")}: FieldTypeBook,

	{tagARMO, NewTag("BNAM")}: FieldTypeString,
	{tagBODY, NewTag("BNAM")}: FieldTypeString,
	{tagCLOT, NewTag("BNAM")}: FieldTypeString,
	{tagINFO, NewTag("BNAM")}: FieldTypeMultiline,
	{tagPCDT, NewTag("BNAM")}: FieldTypeString,
	{wildcardTag, NewTag("BNAM")}: FieldTypeStringZ,

	{wildcardTag, NewTag("BSND")}: FieldTypeStringZ,
	{wildcardTag, NewTag("BVFX")}: FieldTypeStringZ,

	{tagBODY, NewTag("BYDT")}: FieldTypeBodyPart,

	{tagARMO, NewTag("CNAM")}: FieldTypeString,
	{tagCLOT, NewTag("CNAM")}: FieldTypeString,
	{tagKLST, NewTag("CNAM")}: FieldTypeInt,
	{tagREGN, NewTag("CNAM")}: FieldTypeInt,
	{wildcardTag, NewTag("CNAM")}: FieldTypeStringZ,

	{tagCONT, NewTag("CNDT")}: FieldTypeFloat,

	{wildcardTag, NewTag("CSND")}: FieldTypeStringZ,

	{tagCLOT, NewTag("CTDT")}: FieldTypeClothing,

	{wildcardTag, NewTag("CVFX")}: FieldTypeStringZ,

	{tagDIAL, NewTag("DATA")}: FieldTypeDialogMetadata,
	{tagLAND, NewTag("DATA")}: FieldTypeInt,
	{tagLEVC, NewTag("DATA")}: FieldTypeInt,
	{tagLEVI, NewTag("DATA")}: FieldTypeInt,
	{tagLTEX, NewTag("DATA")}: FieldTypeStringZ,
	{tagSSCR, NewTag("DATA")}: FieldTypeString,
	{tagTES3, NewTag("DATA")}: FieldTypeLong,
	{tagQUES, NewTag("DATA")}: FieldTypeString,

	{tagDIAL, NewTag("DELE")}: FieldTypeInt,

	{tagBSGN, NewTag("DESC")}: FieldTypeStringZ,
	{wildcardTag, NewTag("DESC")}: FieldTypeString,

	{wildcardTag, NewTag("DNAM")}: FieldTypeStringZ,

	{tagALCH, NewTag("ENAM")}: FieldTypeEffect,
	{tagENCH, NewTag("ENAM")}: FieldTypeEffect,
	{tagPCDT, NewTag("ENAM")}: FieldTypeLong,
	{tagSPEL, NewTag("ENAM")}: FieldTypeEffect,
	{wildcardTag, NewTag("ENAM")}: FieldTypeStringZ,

	{tagCELL, NewTag("FGTN")}: FieldTypeString,

	{tagCONT, NewTag("FLAG")}: FieldTypeContainerFlags,
	{tagCREA, NewTag("FLAG")}: FieldTypeCreatureFlags,
	{tagNPC_, NewTag("FLAG")}: FieldTypeNpcFlags,
	{wildcardTag, NewTag("FLAG")}: FieldTypeInt,

	{wildcardTag, NewTag("FLTV")}: FieldTypeFloat,

	{tagGLOB, NewTag("FNAM")}: FieldTypeString,
	{tagPCDT, NewTag("FNAM")}: FieldTypeBinary,
	{wildcardTag, NewTag("FNAM")}: FieldTypeStringZ,

	{tagCELL, NewTag("FRMR")}: FieldTypeInt,

	{tagTES3, NewTag("HEDR")}: FieldTypeFileMetadata,

	{wildcardTag, NewTag("HSND")}: FieldTypeStringZ,
	{wildcardTag, NewTag("HVFX")}: FieldTypeStringZ,

	{wildcardTag, NewTag("INAM")}: FieldTypeStringZ,

	{tagARMO, NewTag("INDX")}: FieldTypeBipedObject,
	{tagCLOT, NewTag("INDX")}: FieldTypeBipedObject,
	{wildcardTag, NewTag("INDX")}: FieldTypeInt,

	{tagLAND, NewTag("INTV")}: FieldTypeLong,
	{tagLEVC, NewTag("INTV")}: FieldTypeShort,
	{tagLEVI, NewTag("INTV")}: FieldTypeShort,
	{wildcardTag, NewTag("INTV")}: FieldTypeInt,

	{tagINGR, NewTag("IRDT")}: FieldTypeIngredient,

	{wildcardTag, NewTag("ITEX")}: FieldTypeStringZ,

	{tagPCDT, NewTag("KNAM")}: FieldTypeBinary,
	{wildcardTag, NewTag("KNAM")}: FieldTypeStringZ,

	{tagLIGH, NewTag("LHDT")}: FieldTypeLight,

	{tagPCDT, NewTag("LNAM")}: FieldTypeLong,

	{tagCELL, NewTag("LSHN")}: FieldTypeString,
	{tagCELL, NewTag("LSTN")}: FieldTypeString,

	{wildcardTag, NewTag("LVCR")}: FieldTypeByte,

	{tagFMAP, NewTag("MAPD")}: FieldTypeCompressed,
	{tagFMAP, NewTag("MAPH")}: FieldTypeLong,

	{tagTES3, NewTag("MAST")}: FieldTypeStringZ,

	{tagMISC, NewTag("MCDT")}: FieldTypeMiscItem,

	{tagPCDT, NewTag("MNAM")}: FieldTypeString,
	{tagCELL, NewTag("MNAM")}: FieldTypeByte,

	{wildcardTag, NewTag("MODL")}: FieldTypeStringZ,

	{tagCELL, NewTag("NAM0")}: FieldTypeInt,
	{tagSPLM, NewTag("NAM0")}: FieldTypeByte,

	{tagCELL, NewTag("NAM5")}: FieldTypeInt,
	{tagCELL, NewTag("NAM9")}: FieldTypeInt,
	{tagPCDT, NewTag("NAM9")}: FieldTypeInt,

	{tagGMST, NewTag("NAME")}: FieldTypeString,
	{tagINFO, NewTag("NAME")}: FieldTypeString,
	{tagJOUR, NewTag("NAME")}: FieldTypeMultiline,
	{tagSPLM, NewTag("NAME")}: FieldTypeInt,
	{tagSSCR, NewTag("NAME")}: FieldTypeString,
	{wildcardTag, NewTag("NAME")}: FieldTypeStringZ,

	{wildcardTag, NewTag("ND3D")}: FieldTypeByte,

	{tagLEVC, NewTag("NNAM")}: FieldTypeByte,
	{tagLEVI, NewTag("NNAM")}: FieldTypeByte,
	{wildcardTag, NewTag("NNAM")}: FieldTypeStringZ,

	{wildcardTag, NewTag("NPCO")}: FieldTypeItem,

	{tagCREA, NewTag("NPDT")}: FieldTypeCreature,
	{tagNPC_, NewTag("NPDT")}: FieldTypeNpc,
	{tagNPCC, NewTag("NPDT")}: FieldTypeSavedNpc,

	// NPCS is a fixed-width name field; the width lives in fixedStringWidths.
	{wildcardTag, NewTag("NPCS")}: FieldTypeFixedString,

	{wildcardTag, NewTag("ONAM")}: FieldTypeStringZ,

	{tagPCDT, NewTag("PNAM")}: FieldTypeBinary,
	{wildcardTag, NewTag("PNAM")}: FieldTypeStringZ,

	{wildcardTag, NewTag("PTEX")}: FieldTypeStringZ,

	{wildcardTag, NewTag("RGNN")}: FieldTypeStringZ,

	{tagFACT, NewTag("RNAM")}: FieldTypeFixedString,
	{tagSCPT, NewTag("RNAM")}: FieldTypeInt,
	{wildcardTag, NewTag("RNAM")}: FieldTypeStringZ,

	{tagSCPT, NewTag("SCHD")}: FieldTypeScriptMetadata,
	{wildcardTag, NewTag("SCRI")}: FieldTypeStringZ,
	{wildcardTag, NewTag("SCTX")}: FieldTypeMultiline,
	{tagSCPT, NewTag("SCVR")}: FieldTypeStringZList,
	{wildcardTag, NewTag("SCVR")}: FieldTypeString,

	{tagPCDT, NewTag("SNAM")}: FieldTypeBinary,
	{tagREGN, NewTag("SNAM")}: FieldTypeBinary,
	{wildcardTag, NewTag("SNAM")}: FieldTypeStringZ,

	{tagSPEL, NewTag("SPDT")}: FieldTypeSpellMetadata,

	{wildcardTag, NewTag("STRV")}: FieldTypeString,

	{tagBOOK, NewTag("TEXT")}: FieldTypeMultiline,
	{wildcardTag, NewTag("TEXT")}: FieldTypeStringZ,

	{wildcardTag, NewTag("TNAM")}: FieldTypeStringZ,

	{wildcardTag, NewTag("VCLR")}: FieldTypeCompressed,
	{wildcardTag, NewTag("VHGT")}: FieldTypeCompressed,
	{wildcardTag, NewTag("VNML")}: FieldTypeCompressed,
	{wildcardTag, NewTag("VTEX")}: FieldTypeCompressed,

	{wildcardTag, NewTag("WHGT")}: FieldTypeInt,
	{wildcardTag, NewTag("WIDX")}: FieldTypeLong,
	{wildcardTag, NewTag("WNAM")}: FieldTypeCompressed,

	{tagWEAP, NewTag("WPDT")}: FieldTypeWeapon,

	{wildcardTag, NewTag("XCHG")}: FieldTypeInt,
	{wildcardTag, NewTag("XHLT")}: FieldTypeInt,
	{wildcardTag, NewTag("XIDX")}: FieldTypeInt,
	{wildcardTag, NewTag("XSOL")}: FieldTypeStringZ,

	{tagSPLM, NewTag("XNAM")}: FieldTypeByte,
	{tagCELL, NewTag("XSCL")}: FieldTypeInt,
	{tagCELL, NewTag("ZNAM")}: FieldTypeByte,
}

// Dispatch resolves the wire shape for a field inside a record, applying
// most-specific-wins: an exact (record,field) match, then a (*,field)
// wildcard, then the default of FieldTypeBinary.
func Dispatch(recordTag, fieldTag Tag) FieldType {
	if ft, ok := dispatchTable[dispatchKey{recordTag, fieldTag}]; ok {
		return ft
	}
	if ft, ok := dispatchTable[dispatchKey{wildcardTag, fieldTag}]; ok {
		return ft
	}
	return FieldTypeBinary
}

// fixedStringWidth returns the declared fixed width for a FixedString
// dispatch, applying the same most-specific-wins rule as Dispatch.
func fixedStringWidth(recordTag, fieldTag Tag) (int, bool) {
	if w, ok := fixedStringWidths[dispatchKey{recordTag, fieldTag}]; ok {
		return w, true
	}
	if w, ok := fixedStringWidths[dispatchKey{wildcardTag, fieldTag}]; ok {
		return w, true
	}
	return 0, false
}

// multilineNewline returns the line-terminator style for a Multiline
// dispatch, applying the same most-specific-wins rule as Dispatch.
func multilineNewline(recordTag, fieldTag Tag) Newline {
	if nl, ok := multilineNewlines[dispatchKey{recordTag, fieldTag}]; ok {
		return nl
	}
	if nl, ok := multilineNewlines[dispatchKey{wildcardTag, fieldTag}]; ok {
		return nl
	}
	return NewlineDos
}
