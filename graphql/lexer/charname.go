package lexer

import (
	"fmt"
	"unicode"
)

// describeChar renders a character for an error message. Invisible and
// control characters get their Unicode code point and, when known, name.
// Zero-width and formatting characters are not IsControl or IsSpace, so
// the name table is consulted directly.
func describeChar(ch rune) string {
	name, known := charNames[ch]
	if !known && !unicode.IsControl(ch) && (!unicode.IsSpace(ch) || ch == ' ') {
		return fmt.Sprintf("`%c`", ch)
	}
	if known {
		return fmt.Sprintf("`%c` (U+%04X: %s)", ch, ch, name)
	}
	return fmt.Sprintf("`%c` (U+%04X)", ch, ch)
}

var charNames = map[rune]string{
	// C0 control characters
	0x0000: "NULL",
	0x0001: "START OF HEADING",
	0x0002: "START OF TEXT",
	0x0003: "END OF TEXT",
	0x0004: "END OF TRANSMISSION",
	0x0005: "ENQUIRY",
	0x0006: "ACKNOWLEDGE",
	0x0007: "BELL",
	0x0008: "BACKSPACE",
	0x0009: "HORIZONTAL TAB",
	0x000A: "LINE FEED",
	0x000B: "VERTICAL TAB",
	0x000C: "FORM FEED",
	0x000D: "CARRIAGE RETURN",
	0x000E: "SHIFT OUT",
	0x000F: "SHIFT IN",
	0x0010: "DATA LINK ESCAPE",
	0x0011: "DEVICE CONTROL ONE",
	0x0012: "DEVICE CONTROL TWO",
	0x0013: "DEVICE CONTROL THREE",
	0x0014: "DEVICE CONTROL FOUR",
	0x0015: "NEGATIVE ACKNOWLEDGE",
	0x0016: "SYNCHRONOUS IDLE",
	0x0017: "END OF TRANSMISSION BLOCK",
	0x0018: "CANCEL",
	0x0019: "END OF MEDIUM",
	0x001A: "SUBSTITUTE",
	0x001B: "ESCAPE",
	0x001C: "FILE SEPARATOR",
	0x001D: "GROUP SEPARATOR",
	0x001E: "RECORD SEPARATOR",
	0x001F: "UNIT SEPARATOR",

	// C1 control characters and latin-1 specials
	0x007F: "DELETE",
	0x0080: "PADDING CHARACTER",
	0x0081: "HIGH OCTET PRESET",
	0x0082: "BREAK PERMITTED HERE",
	0x0083: "NO BREAK HERE",
	0x0084: "INDEX",
	0x0085: "NEXT LINE",
	0x0086: "START OF SELECTED AREA",
	0x0087: "END OF SELECTED AREA",
	0x0088: "CHARACTER TABULATION SET",
	0x0089: "CHARACTER TABULATION WITH JUSTIFICATION",
	0x008A: "LINE TABULATION SET",
	0x008B: "PARTIAL LINE FORWARD",
	0x008C: "PARTIAL LINE BACKWARD",
	0x008D: "REVERSE LINE FEED",
	0x008E: "SINGLE SHIFT TWO",
	0x008F: "SINGLE SHIFT THREE",
	0x0090: "DEVICE CONTROL STRING",
	0x0091: "PRIVATE USE ONE",
	0x0092: "PRIVATE USE TWO",
	0x0093: "SET TRANSMIT STATE",
	0x0094: "CANCEL CHARACTER",
	0x0095: "MESSAGE WAITING",
	0x0096: "START OF GUARDED AREA",
	0x0097: "END OF GUARDED AREA",
	0x0098: "START OF STRING",
	0x0099: "SINGLE GRAPHIC CHARACTER INTRODUCER",
	0x009A: "SINGLE CHARACTER INTRODUCER",
	0x009B: "CONTROL SEQUENCE INTRODUCER",
	0x009C: "STRING TERMINATOR",
	0x009D: "OPERATING SYSTEM COMMAND",
	0x009E: "PRIVACY MESSAGE",
	0x009F: "APPLICATION PROGRAM COMMAND",
	0x00A0: "NO-BREAK SPACE",
	0x00AD: "SOFT HYPHEN",

	// General punctuation spaces
	0x2000: "EN QUAD",
	0x2001: "EM QUAD",
	0x2002: "EN SPACE",
	0x2003: "EM SPACE",
	0x2004: "THREE-PER-EM SPACE",
	0x2005: "FOUR-PER-EM SPACE",
	0x2006: "SIX-PER-EM SPACE",
	0x2007: "FIGURE SPACE",
	0x2008: "PUNCTUATION SPACE",
	0x2009: "THIN SPACE",
	0x200A: "HAIR SPACE",

	// Zero-width and directional formatting
	0x200B: "ZERO WIDTH SPACE",
	0x200C: "ZERO WIDTH NON-JOINER",
	0x200D: "ZERO WIDTH JOINER",
	0x200E: "LEFT-TO-RIGHT MARK",
	0x200F: "RIGHT-TO-LEFT MARK",
	0x202A: "LEFT-TO-RIGHT EMBEDDING",
	0x202B: "RIGHT-TO-LEFT EMBEDDING",
	0x202C: "POP DIRECTIONAL FORMATTING",
	0x202D: "LEFT-TO-RIGHT OVERRIDE",
	0x202E: "RIGHT-TO-LEFT OVERRIDE",
	0x202F: "NARROW NO-BREAK SPACE",
	0x2060: "WORD JOINER",
	0x2061: "FUNCTION APPLICATION",
	0x2062: "INVISIBLE TIMES",
	0x2063: "INVISIBLE SEPARATOR",
	0x2064: "INVISIBLE PLUS",
	0x2066: "LEFT-TO-RIGHT ISOLATE",
	0x2067: "RIGHT-TO-LEFT ISOLATE",
	0x2068: "FIRST STRONG ISOLATE",
	0x2069: "POP DIRECTIONAL ISOLATE",
	0x206A: "INHIBIT SYMMETRIC SWAPPING",
	0x206B: "ACTIVATE SYMMETRIC SWAPPING",
	0x206C: "INHIBIT ARABIC FORM SHAPING",
	0x206D: "ACTIVATE ARABIC FORM SHAPING",
	0x206E: "NATIONAL DIGIT SHAPES",
	0x206F: "NOMINAL DIGIT SHAPES",

	// Line and space separators
	0x2028: "LINE SEPARATOR",
	0x2029: "PARAGRAPH SEPARATOR",
	0x205F: "MEDIUM MATHEMATICAL SPACE",
	0x3000: "IDEOGRAPHIC SPACE",

	// Assorted invisibles
	0x034F: "COMBINING GRAPHEME JOINER",
	0x061C: "ARABIC LETTER MARK",
	0x115F: "HANGUL CHOSEONG FILLER",
	0x1160: "HANGUL JUNGSEONG FILLER",
	0x17B4: "KHMER VOWEL INHERENT AQ",
	0x17B5: "KHMER VOWEL INHERENT AA",
	0x180E: "MONGOLIAN VOWEL SEPARATOR",

	// BOM and noncharacters
	0xFEFF: "BYTE ORDER MARK",
	0xFFFE: "NONCHARACTER",
	0xFFFF: "NONCHARACTER",

	// Interlinear annotation
	0xFFF9: "INTERLINEAR ANNOTATION ANCHOR",
	0xFFFA: "INTERLINEAR ANNOTATION SEPARATOR",
	0xFFFB: "INTERLINEAR ANNOTATION TERMINATOR",

	// Tag characters
	0xE0001: "LANGUAGE TAG",
	0xE0020: "TAG SPACE",
}
