package bot

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/metrics"
	"github.com/jusunglee/hinditype/internal/ratelimit"
	"github.com/jusunglee/hinditype/internal/transliteration"
)

type Config struct {
	GuildID string
	// DefaultMode applies to users with no saved setting.
	DefaultMode transliteration.Mode
	// RateLimit commands per user in RateWindow. Zero uses 5 per minute.
	RateLimit  int
	RateWindow time.Duration
}

type Bot struct {
	log      Logger
	session  DiscordSession
	repo     db.Repository
	layouts  *layout.Registry
	limiter  *ratelimit.Limiter
	commands []*discordgo.ApplicationCommand
	config   Config
}

func New(
	log Logger,
	session DiscordSession,
	repo db.Repository,
	layouts *layout.Registry,
	config Config,
) *Bot {
	return &Bot{
		log:      log,
		session:  session,
		repo:     repo,
		layouts:  layouts,
		limiter:  ratelimit.New(config.RateLimit, config.RateWindow),
		commands: buildCommands(layouts.Names()),
		config:   config,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(i)
	})
	b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		b.log.InfoContext(ctx, "connected to Discord", "username", r.User.Username)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}
	defer b.session.Close()

	if err := b.registerCommands(ctx); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	b.log.InfoContext(ctx, "bot is running, press Ctrl+C to stop")

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.limiter.Sweep()
		case <-ctx.Done():
			b.log.Info("shutdown signal received")
			return nil
		}
	}
}

func (b *Bot) registerCommands(ctx context.Context) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.log.InfoContext(ctx, "registering commands to guild", "guild_id", guildID)
		_, err := b.session.ApplicationCommandBulkOverwrite(b.session.ApplicationID(), "", []*discordgo.ApplicationCommand{})
		if err != nil {
			b.log.WarnContext(ctx, "failed to clear global commands", "error", err)
		}
	} else {
		b.log.InfoContext(ctx, "registering commands globally (may take up to 1 hour to propagate)")
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.ApplicationID(), guildID, b.commands)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	b.log.InfoContext(ctx, "registered commands", "count", len(b.commands))
	return nil
}

type handlerResult struct {
	Response string
	Err      error
}

func (b *Bot) handleInteraction(i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := i.ApplicationCommandData().Name
	result := b.dispatch(ctx, cmd, i)
	b.respond(ctx, i, result.Response)

	status := "ok"
	if result.Err != nil {
		status = "error"
		if _, ok := errors.AsType[*userError](result.Err); ok {
			status = "user_error"
			b.log.WarnContext(ctx, "user error", "command", cmd, "error", result.Err)
		} else {
			b.log.ErrorContext(ctx, "command failed", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
		}
	}
	metrics.BotCommandsTotal.WithLabelValues(cmd, status).Inc()
}

func (b *Bot) dispatch(ctx context.Context, cmd string, i *discordgo.InteractionCreate) handlerResult {
	if ok, retry := b.limiter.Allow(interactionUserID(i)); !ok {
		metrics.RateLimitHits.Inc()
		return handlerResult{
			Response: fmt.Sprintf("⏳ Slow down a little, try again in %s.", retry.Round(time.Second)),
			Err:      newUserError(errors.New("rate limited")),
		}
	}

	switch cmd {
	case "hindi":
		return b.handleHindi(ctx, i)
	case "mode":
		return b.handleMode(ctx, i)
	case "key":
		return b.handleKey(i)
	case "practice":
		return b.handlePractice(ctx, i)
	}
	return handlerResult{Response: "Unknown command.", Err: newUserError(fmt.Errorf("unknown command %q", cmd))}
}

type userError struct {
	Err error
}

func (e *userError) Error() string {
	return e.Err.Error()
}

func (e *userError) Unwrap() error {
	return e.Err
}

func newUserError(err error) *userError {
	return &userError{Err: err}
}

func getOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return opt, true
		}
	}
	return nil, false
}

func getString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := getOption(options, name); ok {
		return opt.StringValue()
	}
	return ""
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// userMode returns the caller's saved mode, or the configured default.
func (b *Bot) userMode(ctx context.Context, userID string) (transliteration.Mode, error) {
	settings, err := b.repo.GetSettings(ctx, userID)
	if db.IsNoRows(err) {
		return b.config.DefaultMode, nil
	}
	if err != nil {
		return b.config.DefaultMode, fmt.Errorf("loading settings: %w", err)
	}
	return transliteration.ParseMode(settings.Mode), nil
}

func (b *Bot) handleHindi(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	options := i.ApplicationCommandData().Options
	text := getString(options, "text")
	if utf8.RuneCountInString(text) > maxTextLength {
		return handlerResult{
			Response: fmt.Sprintf("❌ Text is too long (max %d characters).", maxTextLength),
			Err:      newUserError(errors.New("text too long")),
		}
	}

	var mode transliteration.Mode
	if name := getString(options, "mode"); name != "" {
		mode = transliteration.ParseMode(name)
	} else {
		var err error
		mode, err = b.userMode(ctx, interactionUserID(i))
		if err != nil {
			b.log.WarnContext(ctx, "falling back to default mode", "error", err)
		}
	}

	out := transliteration.Transliterate(text, mode)
	metrics.TransliterationsTotal.WithLabelValues(mode.String(), "discord").Inc()
	if out == "" {
		return handlerResult{Response: "_(nothing to convert)_"}
	}
	return handlerResult{Response: fmt.Sprintf("%s\n-# %s", out, mode)}
}

func (b *Bot) handleMode(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	name := getString(i.ApplicationCommandData().Options, "mode")
	mode, ok := transliteration.LookupMode(name)
	if !ok {
		return handlerResult{
			Response: fmt.Sprintf("❌ Unknown mode: %s", name),
			Err:      newUserError(fmt.Errorf("unknown mode %q", name)),
		}
	}

	layoutName, _ := mode.Layout()
	_, err := b.repo.UpsertSettings(ctx, db.UpsertSettingsParams{
		UserID: interactionUserID(i),
		Mode:   mode.String(),
		Layout: layoutName,
	})
	if err != nil {
		return handlerResult{
			Response: "❌ Failed to save your mode. Please try again later.",
			Err:      fmt.Errorf("saving settings: %w", err),
		}
	}

	metrics.SettingsUpdates.WithLabelValues(mode.String()).Inc()
	b.log.InfoContext(ctx, "saved mode", "user_id", interactionUserID(i), "mode", mode)
	return handlerResult{Response: fmt.Sprintf("✅ `/hindi` will now use **%s** mode.", mode)}
}

func (b *Bot) handleKey(i *discordgo.InteractionCreate) handlerResult {
	options := i.ApplicationCommandData().Options
	name := getString(options, "layout")
	key := getString(options, "key")
	shift := false
	if opt, ok := getOption(options, "shift"); ok {
		shift = opt.BoolValue()
	}

	l, ok := b.layouts.Layout(name)
	if !ok {
		return handlerResult{
			Response: fmt.Sprintf("❌ Unknown layout: %s", name),
			Err:      newUserError(fmt.Errorf("unknown layout %q", name)),
		}
	}
	if utf8.RuneCountInString(key) != 1 {
		return handlerResult{
			Response: "❌ Give exactly one key, e.g. `k`.",
			Err:      newUserError(fmt.Errorf("invalid key %q", key)),
		}
	}

	r, _ := utf8.DecodeRuneInString(key)
	out := layout.LookupKeyOutput(l, r, shift)
	label := fmt.Sprintf("`%s`", key)
	if shift {
		label = "shift + " + label
	}
	if out == "" {
		return handlerResult{Response: fmt.Sprintf("%s types nothing on %s.", label, l.Name)}
	}
	return handlerResult{Response: fmt.Sprintf("%s on %s types **%s**", label, l.Name, out)}
}

func (b *Bot) handlePractice(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	difficulty := getString(i.ApplicationCommandData().Options, "difficulty")

	p, err := b.repo.RandomPrompt(ctx, difficulty)
	if db.IsNoRows(err) {
		return handlerResult{Response: "No practice sentences yet, check back soon!"}
	}
	if err != nil {
		return handlerResult{
			Response: "❌ Failed to fetch a sentence. Please try again later.",
			Err:      fmt.Errorf("fetching prompt: %w", err),
		}
	}
	return handlerResult{Response: fmt.Sprintf("Type this (%s):\n# %s\nPhonetic: ||`%s`||", p.Difficulty, p.Text, p.Romanized)}
}

func (b *Bot) respond(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		b.log.ErrorContext(ctx, "failed to respond to interaction", "error", err)
	}
}
