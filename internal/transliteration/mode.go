package transliteration

import "strings"

// Mode selects the input convention used to turn keystrokes into Devanagari.
type Mode int

const (
	// ModeDirect returns input untouched. It is also what any unrecognised
	// Mode value falls back to.
	ModeDirect Mode = iota
	ModePhonetic
	ModeLegacy
	ModeRemington
	ModeInscript
)

var modeNames = [...]string{
	ModeDirect:    "direct",
	ModePhonetic:  "phonetic",
	ModeLegacy:    "legacy",
	ModeRemington: "remington",
	ModeInscript:  "inscript",
}

func (m Mode) valid() bool {
	return m >= ModeDirect && int(m) < len(modeNames)
}

func (m Mode) String() string {
	if !m.valid() {
		return modeNames[ModeDirect]
	}
	return modeNames[m]
}

// Layout reports the physical layout a mode remaps through, if any.
func (m Mode) Layout() (string, bool) {
	switch m {
	case ModeRemington, ModeInscript:
		return modeNames[m], true
	}
	return "", false
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeDirect, ModePhonetic, ModeLegacy, ModeRemington, ModeInscript}
}

// LookupMode finds a mode by name, ignoring case and surrounding space.
func LookupMode(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return ModeDirect, false
}

// ParseMode is LookupMode with unknown names mapped to ModeDirect.
func ParseMode(name string) Mode {
	m, _ := LookupMode(name)
	return m
}
