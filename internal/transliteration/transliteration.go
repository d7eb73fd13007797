// Package transliteration turns Roman keystrokes into Devanagari under the
// supported input conventions. Every function here is total: unknown input
// is passed through rather than reported.
package transliteration

import (
	"fmt"

	"github.com/jusunglee/hinditype/internal/layout"
)

// Transliterate converts text under mode. Callers re-run it on the whole
// buffer after every keystroke; it keeps no state between calls.
func Transliterate(text string, mode Mode) string {
	switch mode {
	case ModePhonetic:
		return Phonetic(text)
	case ModeLegacy:
		return Remap(text, legacyGlyphs)
	case ModeRemington, ModeInscript:
		name, _ := mode.Layout()
		m, ok := layout.Default.CharMap(name)
		if !ok {
			return text
		}
		return Remap(text, m)
	case ModeDirect:
		return text
	default:
		return text
	}
}

// RemapLayout remaps text through any layout registered in layout.Default,
// including ones loaded from layout files.
func RemapLayout(text, name string) (string, error) {
	m, ok := layout.Default.CharMap(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", layout.ErrUnknownLayout, name)
	}
	return Remap(text, m), nil
}
