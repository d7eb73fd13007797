// Package prompts produces typing-practice sentences. A model proposes Hindi
// sentences with phonetic spellings, and only pairs the phonetic engine
// reproduces exactly are kept, so every stored prompt is typeable as written.
package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/llm"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/samber/lo"
)

// Candidate is one sentence proposed by the model.
type Candidate struct {
	Text      string `json:"text"`
	Romanized string `json:"romanized"`
}

type Generator struct {
	llm llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{llm: client}
}

const systemPrompt = `You write short Hindi sentences for people learning to type Devanagari.

For each sentence give the Devanagari text and the exact keystrokes in this phonetic scheme:
- short vowels a i u e o, long vowels aa ii uu, diphthongs ai au
- aspirates add h: kh gh chh jh th dh ph bh
- retroflex stops are doubled: tt tth dd ddh nn
- sh is श, shh is ष, ksh is क्ष, gy is ज्ञ, tr is त्र
- .n is anusvara, ~n is chandrabindu, . is the danda
- a consonant typed with no vowel after it gets a halant (k is क्), so end a word
  that finishes on a full consonant with a: ghara is घर, ghar is घर्

Respond ONLY with a JSON array, no other text. Example:
[
  {"text": "मेरा घर।", "romanized": "meraa ghara."},
  {"text": "पानी ठंडा है।", "romanized": "paanii ttha.nddaa hai."}
]`

var difficultyHints = map[string]string{
	db.DifficultyEasy:   "two to four common words",
	db.DifficultyMedium: "five to eight words with some conjunct consonants",
	db.DifficultyHard:   "eight to twelve words with conjuncts, nasal signs and long vowels",
}

// Generate asks the model for n sentences at the given difficulty. The
// returned candidates are trimmed and de-duplicated but not yet checked.
func (g *Generator) Generate(ctx context.Context, difficulty string, n int) ([]Candidate, error) {
	hint, ok := difficultyHints[difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	if n <= 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf("Write %d different sentences of %s.", n, hint)
	text, err := g.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(llm.ExtractJSONArray(text)), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt response: %w (response: %s)", err, text)
	}

	candidates = lo.Map(candidates, func(c Candidate, _ int) Candidate {
		return Candidate{Text: strings.TrimSpace(c.Text), Romanized: strings.TrimSpace(c.Romanized)}
	})
	return lo.UniqBy(candidates, func(c Candidate) string { return c.Text }), nil
}

// Accept reports whether typing c.Romanized in phonetic mode yields exactly
// c.Text.
func Accept(c Candidate) bool {
	if c.Text == "" || c.Romanized == "" || c.Text == c.Romanized {
		return false
	}
	return transliteration.Transliterate(c.Romanized, transliteration.ModePhonetic) == c.Text
}
