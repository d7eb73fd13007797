package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Logger is the subset of *slog.Logger the bot writes to.
type Logger interface {
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// DiscordSession is the part of *discordgo.Session the bot drives.
type DiscordSession interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	// ApplicationID is the bot user's ID, which slash commands are registered under.
	ApplicationID() string
}

type session struct {
	*discordgo.Session
}

func (s session) ApplicationID() string {
	return s.State.User.ID
}

func NewDiscordSession(s *discordgo.Session) DiscordSession {
	return session{Session: s}
}
