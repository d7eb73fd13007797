package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/samber/lo"
)

const maxTextLength = 1000

func modeChoices() []*discordgo.ApplicationCommandOptionChoice {
	return lo.Map(transliteration.Modes(), func(m transliteration.Mode, _ int) *discordgo.ApplicationCommandOptionChoice {
		return &discordgo.ApplicationCommandOptionChoice{Name: m.String(), Value: m.String()}
	})
}

func stringChoices(values []string) []*discordgo.ApplicationCommandOptionChoice {
	return lo.Map(values, func(v string, _ int) *discordgo.ApplicationCommandOptionChoice {
		return &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v}
	})
}

// buildCommands describes the slash commands. Layout choices are taken from
// the registry at startup.
func buildCommands(layoutNames []string) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "hindi",
			Description: "Convert Roman or keyboard-layout typing to Devanagari",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "What you typed, e.g. namaste",
					Required:    true,
					MaxLength:   maxTextLength,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Input mode (defaults to your saved mode)",
					Choices:     modeChoices(),
				},
			},
		},
		{
			Name:        "mode",
			Description: "Save your default input mode",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Input mode",
					Required:    true,
					Choices:     modeChoices(),
				},
			},
		},
		{
			Name:        "key",
			Description: "Show what a key types on a Hindi keyboard layout",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "layout",
					Description: "Keyboard layout",
					Required:    true,
					Choices:     stringChoices(layoutNames),
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "key",
					Description: "A single key, e.g. k",
					Required:    true,
					MaxLength:   4,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "shift",
					Description: "Hold shift",
				},
			},
		},
		{
			Name:        "practice",
			Description: "Get a Hindi sentence to practise typing",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "difficulty",
					Description: "Prompt difficulty",
					Choices:     stringChoices(db.ValidDifficulties),
				},
			},
		},
	}
}
