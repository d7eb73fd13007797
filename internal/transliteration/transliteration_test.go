package transliteration

import (
	"strings"
	"sync"
	"testing"

	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliteratePhonetic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"namaste", "नमस्ते"},
		{"bharat", "भारत"},
		{"shiksha", "शिक्षा"},
		{"Namaste", "नमस्ते"},
		{"kyaa", "क्या"},
		{"hai", "है"},
		{"patra", "पत्र"},
		{"krishhi", "कृषि"},
		{"aapa kaise hai.n", "आप कैसे हैं"},
		{"paanii", "पानी"},
		{"hai.n", "हैं"},
		{"ram.", "रम्।"},
		{"2024", "२०२४"},
		{".om", "ॐ"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input, ModePhonetic)
		if got != tt.want {
			t.Errorf("Transliterate(%q, ModePhonetic) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// "sh" wins over "s" at both fusion points
		{"shikshaa", "शिक्षा"},
		{"sha", "श"},
		{"s", "स्"},
		{"ka", "क"},
		{"k", "क्"},
		{"a", "अ"},
		{"aa", "आ"},
		{"kaa", "का"},
		{"kai", "कै"},
		{"kau", "कौ"},
		{"bhaarata", "भारत"},
		// no lexicon: the trailing consonant keeps its halant
		{"bharat", "भरत्"},
		{"ttamaattar", "टमाटर्"},
		{"qalam", "क़लम्"},
		{"gyaan", "ज्ञान्"},
	}
	for _, tt := range tests {
		got := Scan(tt.input)
		if got != tt.want {
			t.Errorf("Scan(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPhoneticPassThrough(t *testing.T) {
	for _, in := range []string{"नमस्ते", "@#$", "€", "\xff"} {
		assert.Equal(t, in, Phonetic(in))
	}
}

func TestPhoneticIsStable(t *testing.T) {
	for _, in := range []string{"namaste", "bharat", "shiksha ki bhasha", "main ghar ja raha hoon.", "123 abc"} {
		once := Phonetic(in)
		assert.Equal(t, once, Phonetic(once), in)
	}
}

func TestLexiconOnlyAppliesToWholeWords(t *testing.T) {
	// "bharatiya" is not a lexicon word, so the scanner handles it
	assert.Equal(t, Scan("bharatiya"), Phonetic("bharatiya"))
	// a lexicon word glued to a Roman prefix is not a word start
	assert.Equal(t, Scan("xbharat"), Phonetic("xbharat"))
	assert.Equal(t, "भारत२", Phonetic("bharat2"))
	assert.Equal(t, "भारत भारत", Phonetic("Bharat BHARAT"))
}

func TestPhoneticMatchesScanOutsideLexicon(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pani", "पनि"},
		{"raja", "रज"},
		{"main", "मैन्"},
		{"hindi", "हिन्दि"},
		{"desh", "देश्"},
		{"aap kaise hain", "आप् कैसे हैन्"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Phonetic(tt.input), tt.input)
		assert.Equal(t, Scan(tt.input), Phonetic(tt.input), tt.input)
	}
	assert.Len(t, hindi.lexicon, 2)
}

func TestTransliterateEmptyInput(t *testing.T) {
	for _, m := range append(Modes(), Mode(-1), Mode(42)) {
		assert.Equal(t, "", Transliterate("", m), m.String())
	}
}

func TestTransliterateUntouchedSymbols(t *testing.T) {
	in := "नमस्ते ॥"
	for _, m := range Modes() {
		assert.Equal(t, in, Transliterate(in, m), m.String())
	}
}

func TestTransliterateDigits(t *testing.T) {
	const want = "०१२३४५६७८९"
	assert.Equal(t, want, Transliterate("0123456789", ModePhonetic))
	assert.Equal(t, want, Transliterate("0123456789", ModeLegacy))
}

func TestTransliterateLegacyIsCaseDistinct(t *testing.T) {
	lower := Transliterate("k", ModeLegacy)
	upper := Transliterate("K", ModeLegacy)
	assert.Equal(t, "क", lower)
	assert.Equal(t, "ख", upper)
	assert.NotEqual(t, lower, upper)
}

func TestTransliterateLayouts(t *testing.T) {
	assert.Equal(t, "ा", Transliterate("e", ModeRemington))
	assert.Equal(t, "आ", Transliterate("E", ModeRemington))
	assert.Equal(t, "कमल", Transliterate("kcn", ModeInscript))
	assert.Equal(t, "हिंदी", Transliterate("ufxor", ModeInscript))
	// the silent Inscript key swallows input
	assert.Equal(t, "क", Transliterate("k`", ModeInscript))
}

func TestTransliterateDirectAndUnknownModes(t *testing.T) {
	in := "namaste"
	assert.Equal(t, in, Transliterate(in, ModeDirect))
	assert.Equal(t, in, Transliterate(in, Mode(99)))
	assert.Equal(t, in, Transliterate(in, Mode(-3)))
}

func TestTransliterateConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Transliterate("kcn", ModeInscript)
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "कमल", r)
	}
}

func TestRemap(t *testing.T) {
	m := layout.CharMap{"a": "अ", "A": "आ", "x": "", "k": "क्ष"}
	assert.Equal(t, "अआक्ष-", Remap("aAxk-", m))
	assert.Equal(t, "", Remap("", m))
	assert.Equal(t, "zZ", Remap("zZ", m))
}

func TestRemapLayout(t *testing.T) {
	out, err := RemapLayout("e", "remington")
	require.NoError(t, err)
	assert.Equal(t, "ा", out)

	_, err = RemapLayout("e", "dvorak")
	assert.ErrorIs(t, err, layout.ErrUnknownLayout)
}

func TestModes(t *testing.T) {
	for _, m := range Modes() {
		got, ok := LookupMode(m.String())
		require.True(t, ok, m.String())
		assert.Equal(t, m, got)
		assert.Equal(t, m, ParseMode(strings.ToUpper(m.String())))
	}

	_, ok := LookupMode("telex")
	assert.False(t, ok)
	assert.Equal(t, ModeDirect, ParseMode("telex"))
	assert.Equal(t, "direct", Mode(7).String())

	name, ok := ModeInscript.Layout()
	assert.True(t, ok)
	assert.Equal(t, "inscript", name)
	_, ok = ModePhonetic.Layout()
	assert.False(t, ok)
}

func TestRuleSetSymbolsFitTheDirectWindow(t *testing.T) {
	assert.LessOrEqual(t, hindi.maxDirect, 4)
	for _, symbols := range [][]string{hindi.consonantSymbols, hindi.vowelSymbols} {
		for i := 1; i < len(symbols); i++ {
			assert.GreaterOrEqual(t, len(symbols[i-1]), len(symbols[i]), symbols[i])
		}
	}
}
