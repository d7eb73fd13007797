package transliteration

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const virama = "्"

// RuleSet is a phonetic typing scheme. Symbols are matched case-insensitively
// and are expected to be lower-case ASCII.
type RuleSet struct {
	// consonants maps a symbol to the consonant's halant form, e.g. "k" → "क्".
	consonants map[string]string
	// matras maps a vowel symbol to its dependent sign; "a" maps to "".
	matras map[string]string
	// direct holds standalone output: independent vowels, halant consonants,
	// digits and punctuation.
	direct map[string]string
	// lexicon holds whole-word spellings that take priority at a word start.
	lexicon map[string]string

	consonantSymbols []string
	vowelSymbols     []string
	maxDirect        int
}

// NewRuleSet builds a scheme. The direct table is the union of the
// consonants' halant forms, the independent vowels and extra.
func NewRuleSet(consonants, matras, independentVowels, extra, lexicon map[string]string) *RuleSet {
	direct := make(map[string]string, len(consonants)+len(independentVowels)+len(extra))
	maps.Copy(direct, consonants)
	maps.Copy(direct, independentVowels)
	maps.Copy(direct, extra)

	return &RuleSet{
		consonants:       consonants,
		matras:           matras,
		direct:           direct,
		lexicon:          lexicon,
		consonantSymbols: longestFirst(lo.Keys(consonants)),
		vowelSymbols:     longestFirst(lo.Keys(matras)),
		maxDirect:        lo.Max(lo.Map(lo.Keys(direct), func(k string, _ int) int { return len(k) })),
	}
}

func longestFirst(symbols []string) []string {
	slices.SortFunc(symbols, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return symbols
}

// Transliterate converts Roman text to Devanagari, consulting the lexicon at
// each word start before falling back to Scan's rules.
func (rs *RuleSet) Transliterate(text string) string {
	return rs.scan(text, true)
}

// Scan converts Roman text to Devanagari with a greedy left-to-right scan:
// consonant+vowel fusion first, then the direct table, then pass-through.
// It never backtracks, so a sequence is always read as the longest symbols
// available at the cursor.
func (rs *RuleSet) Scan(text string) string {
	return rs.scan(text, false)
}

func (rs *RuleSet) scan(text string, useLexicon bool) string {
	var b strings.Builder
	b.Grow(len(text) * 3)

	for i := 0; i < len(text); {
		if useLexicon && (i == 0 || !isASCIILetter(text[i-1])) {
			end := i
			for end < len(text) && isASCIILetter(text[end]) {
				end++
			}
			if word, ok := rs.lexicon[lowerASCII(text[i:end])]; ok && end > i {
				b.WriteString(word)
				i = end
				continue
			}
		}

		if out, n := rs.fuse(text, i); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}

		if out, n := rs.lookupDirect(text, i); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// fuse matches a consonant immediately followed by a vowel and returns the
// plain consonant letter with the vowel's sign attached.
func (rs *RuleSet) fuse(text string, i int) (string, int) {
	c, l := matchLongest(text, i, rs.consonantSymbols)
	if l == 0 {
		return "", 0
	}
	v, m := matchLongest(text, i+l, rs.vowelSymbols)
	if m == 0 {
		return "", 0
	}
	base := strings.TrimSuffix(rs.consonants[c], virama)
	return base + rs.matras[v], l + m
}

func (rs *RuleSet) lookupDirect(text string, i int) (string, int) {
	for n := min(rs.maxDirect, len(text)-i); n > 0; n-- {
		if out, ok := rs.direct[lowerASCII(text[i:i+n])]; ok {
			return out, n
		}
	}
	return "", 0
}

// matchLongest returns the first symbol, in the given longest-first order,
// that text has at position i.
func matchLongest(text string, i int, symbols []string) (string, int) {
	for _, sym := range symbols {
		if hasPrefixFold(text, i, sym) {
			return sym, len(sym)
		}
	}
	return "", 0
}

func hasPrefixFold(text string, i int, sym string) bool {
	if len(text)-i < len(sym) {
		return false
	}
	for j := 0; j < len(sym); j++ {
		if toLowerASCII(text[i+j]) != sym[j] {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func lowerASCII(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return 'A' <= r && r <= 'Z' }) {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		b[i] = toLowerASCII(c)
	}
	return string(b)
}
