// Package layout describes physical Hindi keyboard layouts as plain data and
// compiles them into flat character maps.
package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// KeyDefinition is one physical key: what it types unshifted and, optionally,
// with shift held.
type KeyDefinition struct {
	Key    string `toml:"key" yaml:"key" json:"key"`
	Output string `toml:"output" yaml:"output" json:"output"`
	// ShiftKey is the character the OS reports when shift is held. Empty means
	// the key has no shifted behaviour.
	ShiftKey string `toml:"shift_key" yaml:"shift_key" json:"shift_key,omitempty"`
	// ShiftOutput falls back to Output when empty.
	ShiftOutput string `toml:"shift_output" yaml:"shift_output" json:"shift_output,omitempty"`
}

func (d KeyDefinition) shiftOutput() string {
	if d.ShiftOutput == "" {
		return d.Output
	}
	return d.ShiftOutput
}

type Row []KeyDefinition

// KeyboardLayout is an ordered set of key rows. Layouts are immutable once
// authored; everything operational is derived from them by Compile.
type KeyboardLayout struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	Rows []Row  `toml:"rows" yaml:"rows" json:"rows"`
}

var (
	ErrEmptyName    = errors.New("layout name is required")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidKey   = errors.New("key must be exactly one character")
	ErrShiftOverlap = errors.New("shift key is also an unshifted key")
)

// Validate checks that every key is a single character and that each
// character is declared once across both shift states, so the compiled map
// and LookupKeyOutput agree on every key.
func (l KeyboardLayout) Validate() error {
	if l.Name == "" {
		return ErrEmptyName
	}
	base := make(map[string]bool)
	shifted := make(map[string]bool)
	for r, row := range l.Rows {
		for c, def := range row {
			if utf8.RuneCountInString(def.Key) != 1 {
				return fmt.Errorf("%s row %d key %d %q: %w", l.Name, r, c, def.Key, ErrInvalidKey)
			}
			if base[def.Key] {
				return fmt.Errorf("%s row %d: %w %q", l.Name, r, ErrDuplicateKey, def.Key)
			}
			base[def.Key] = true

			if def.ShiftKey == "" {
				continue
			}
			if utf8.RuneCountInString(def.ShiftKey) != 1 {
				return fmt.Errorf("%s row %d shift key %q: %w", l.Name, r, def.ShiftKey, ErrInvalidKey)
			}
			if shifted[def.ShiftKey] {
				return fmt.Errorf("%s row %d: %w (shifted) %q", l.Name, r, ErrDuplicateKey, def.ShiftKey)
			}
			shifted[def.ShiftKey] = true
		}
	}
	for k := range shifted {
		if base[k] {
			return fmt.Errorf("%s: %w %q", l.Name, ErrShiftOverlap, k)
		}
	}
	return nil
}

// LookupKeyOutput reports the grapheme a physical key produces in the given
// modifier state. key is the key's unshifted character; passing the shifted
// character selects the shifted output regardless of shift. Unknown keys, and
// shift on a key without a shifted behaviour, produce "".
func LookupKeyOutput(l KeyboardLayout, key rune, shift bool) string {
	k := string(key)
	for _, row := range l.Rows {
		for _, def := range row {
			switch {
			case def.Key == k && !shift:
				return def.Output
			case def.Key == k && def.ShiftKey == "":
				return ""
			case def.Key == k, def.ShiftKey == k:
				return def.shiftOutput()
			}
		}
	}
	return ""
}
