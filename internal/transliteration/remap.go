package transliteration

import (
	"strings"
	"unicode/utf8"

	"github.com/jusunglee/hinditype/internal/layout"
)

// Remap substitutes each character of text through m. Characters without an
// entry are copied unchanged; an entry may expand to several code points or
// to nothing. Matching is case-sensitive.
func Remap(text string, m layout.CharMap) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		ch := text[i : i+size]
		if out, ok := m[ch]; ok {
			b.WriteString(out)
		} else {
			b.WriteString(ch)
		}
		i += size
	}
	return b.String()
}

// legacyGlyphs is the fixed keymap of the old Hindi glyph fonts: lower case
// gives the plain letter, upper case its aspirated or sister letter.
var legacyGlyphs = layout.CharMap{
	"a": "अ", "A": "आ",
	"i": "इ", "I": "ई",
	"u": "उ", "U": "ऊ",
	"e": "ए", "E": "ऐ",
	"o": "ओ", "O": "औ",

	"k": "क", "K": "ख",
	"g": "ग", "G": "घ",
	"c": "च", "C": "छ",
	"j": "ज", "J": "झ",
	"q": "ट", "Q": "ठ",
	"w": "ड", "W": "ढ",
	"t": "त", "T": "थ",
	"d": "द", "D": "ध",
	"n": "न", "N": "ण",
	"p": "प", "P": "फ",
	"b": "ब", "B": "भ",
	"m": "म", "M": "ं",
	"y": "य", "Y": "ञ",
	"r": "र", "R": "ऋ",
	"l": "ल", "L": "ळ",
	"v": "व", "V": "ङ",
	"s": "स", "S": "श",
	"x": "ष", "X": "क्ष",
	"h": "ह", "H": "ः",
	"z": "ज़", "Z": "ज्ञ",
	"f": "्", "F": "़",

	"0": "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",

	"|": "।",
}
