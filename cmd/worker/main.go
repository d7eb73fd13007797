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

	"github.com/joho/godotenv"
	"github.com/jusunglee/hinditype/internal/anthropic"
	"github.com/jusunglee/hinditype/internal/db/dbopen"
	"github.com/jusunglee/hinditype/internal/google"
	"github.com/jusunglee/hinditype/internal/health"
	"github.com/jusunglee/hinditype/internal/llm"
	"github.com/jusunglee/hinditype/internal/logger"
	"github.com/jusunglee/hinditype/internal/prompts"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hinditype-worker")
	var (
		databaseURL     = fs.StringLong("database-url", "hinditype.db", "PostgreSQL URL or SQLite path")
		llmProvider     = fs.StringEnumLong("llm-provider", "LLM provider for prompt generation", llm.ProviderAnthropic, llm.ProviderGoogle)
		llmModel        = fs.StringLong("llm-model", "", "LLM model name (provider default when empty)")
		anthropicAPIKey = fs.StringLong("anthropic-api-key", "", "Anthropic API key")
		googleAPIKey    = fs.StringLong("google-api-key", "", "Google API key")
		interval        = fs.DurationLong("interval", 1*time.Hour, "Refill interval")
		target          = fs.IntLong("target", 50, "Prompts to keep per difficulty")
		batch           = fs.IntLong("batch", 10, "Sentences requested per LLM call")
		healthPort      = fs.IntLong("health-port", 9090, "Port for /health and /metrics")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger.New()

	llmClient, err := newLLMClient(ctx, *llmProvider, *llmModel, *anthropicAPIKey, *googleAPIKey)
	if err != nil {
		return err
	}

	repo, err := dbopen.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	refiller := prompts.NewRefiller(repo, prompts.NewGenerator(llmClient), log, *llmProvider)
	refiller.Target = *target
	refiller.Batch = *batch

	healthServer := health.New(*healthPort, map[string]health.Check{
		"database": func(ctx context.Context) error {
			_, err := repo.CountPrompts(ctx, "")
			return err
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
		log.InfoContext(gctx, "worker starting", "interval", *interval, "target", *target)
		runLoop(gctx, refiller, *interval, log)
		log.Info("worker stopped")
		return nil
	})

	return g.Wait()
}

func newLLMClient(ctx context.Context, provider, model, anthropicKey, googleKey string) (llm.Client, error) {
	switch provider {
	case llm.ProviderAnthropic:
		if anthropicKey == "" {
			return nil, errors.New("anthropic-api-key is required when using anthropic provider")
		}
		return llm.Timed(provider, anthropic.NewClient(anthropicKey, anthropic.Model(model))), nil
	case llm.ProviderGoogle:
		if googleKey == "" {
			return nil, errors.New("google-api-key is required when using google provider")
		}
		client, err := google.NewClient(ctx, googleKey, google.Model(model))
		if err != nil {
			return nil, fmt.Errorf("creating Google client: %w", err)
		}
		return llm.Timed(provider, client), nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", provider)
}

func runLoop(ctx context.Context, refiller *prompts.Refiller, interval time.Duration, log *slog.Logger) {
	refill := func() {
		results, err := refiller.Refill(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.WarnContext(ctx, "refill finished with errors", "error", err)
		}
		stored := 0
		for _, r := range results {
			stored += r.Stored
		}
		log.InfoContext(ctx, "refill cycle complete", "stored", stored)
	}

	refill()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			refill()
		case <-ctx.Done():
			return
		}
	}
}
