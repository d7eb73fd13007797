package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/jusunglee/hinditype/internal/bot"
	"github.com/jusunglee/hinditype/internal/db/dbopen"
	"github.com/jusunglee/hinditype/internal/envsetup"
	"github.com/jusunglee/hinditype/internal/health"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/logger"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	if envsetup.NeedsSetup(envFile) && os.Getenv("DISCORD_TOKEN") == "" {
		completed, err := envsetup.Run(envFile)
		if err != nil {
			return fmt.Errorf("running setup wizard: %w", err)
		}
		if !completed {
			return errors.New("setup cancelled")
		}
	}
	_ = godotenv.Load(envFile)

	fs := ff.NewFlagSet("hinditype-bot")
	var (
		discordToken = fs.StringLong("discord-token", "", "Discord bot token")
		guildID      = fs.StringLong("discord-guild-id", "", "Register commands to one guild for instant updates")
		databaseURL  = fs.StringLong("database-url", "hinditype.db", "PostgreSQL URL or SQLite path")
		layoutsDir   = fs.StringLong("layouts-dir", "", "Directory of extra .toml/.yaml keyboard layouts")
		defaultMode  = fs.StringEnumLong("default-mode", "Mode for users with no saved setting", "phonetic", "inscript", "remington", "legacy", "direct")
		rateLimit    = fs.IntLong("rate-limit", 5, "Commands per user per minute")
		healthPort   = fs.IntLong("health-port", 9091, "Port for /health and /metrics")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *discordToken == "" {
		return errors.New("discord-token is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger.New()

	if *layoutsDir != "" {
		names, err := layout.LoadDir(layout.Default, *layoutsDir)
		if err != nil {
			return fmt.Errorf("loading layouts: %w", err)
		}
		log.Info("loaded keyboard layouts", "dir", *layoutsDir, "layouts", names)
	}

	repo, err := dbopen.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()
	log.InfoContext(ctx, "connected to database", "driver", dbopen.Driver(*databaseURL))

	dg, err := discordgo.New("Bot " + *discordToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	b := bot.New(log, bot.NewDiscordSession(dg), repo, layout.Default, bot.Config{
		GuildID:     *guildID,
		DefaultMode: transliteration.ParseMode(*defaultMode),
		RateLimit:   *rateLimit,
		RateWindow:  time.Minute,
	})

	healthServer := health.New(*healthPort, map[string]health.Check{
		"database": func(ctx context.Context) error {
			_, err := repo.CountPrompts(ctx, "")
			return err
		},
		"discord": func(context.Context) error {
			if !dg.DataReady {
				return errors.New("gateway not ready")
			}
			return nil
		},
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(gctx, "starting health server", "port", *healthPort)
		return healthServer.Start()
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		dbopen.ExportPoolStats(gctx, repo, 15*time.Second, log)
		return nil
	})

	g.Go(func() error {
		return b.Run(gctx)
	})

	return g.Wait()
}
