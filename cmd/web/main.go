package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hinditype/internal/db/dbopen"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/logger"
	"github.com/jusunglee/hinditype/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hinditype-web")

	var (
		port           = fs.Int64Long("port", 3000, "HTTP server port")
		databaseURL    = fs.StringLong("database-url", "hinditype.db", "PostgreSQL URL or SQLite path")
		layoutsDir     = fs.StringLong("layouts-dir", "", "Directory of extra .toml/.yaml keyboard layouts")
		allowedOrigins = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
		adminKey       = fs.StringLong("admin-key", "", "X-API-Key value that may delete prompts")
		rateLimit      = fs.IntLong("rate-limit", 120, "Write requests per minute per IP")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	if *layoutsDir != "" {
		names, err := layout.LoadDir(layout.Default, *layoutsDir)
		if err != nil {
			return fmt.Errorf("loading layouts: %w", err)
		}
		log.Info("loaded keyboard layouts", "dir", *layoutsDir, "layouts", names)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := dbopen.Open(ctx, *databaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()
	log.InfoContext(ctx, "connected to database", "driver", dbopen.Driver(*databaseURL))

	router := web.NewRouter(repo, layout.Default, log, web.Options{
		AllowedOrigins: splitList(*allowedOrigins),
		AdminKey:       *adminKey,
		RateLimit:      *rateLimit,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/api/", router.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(gctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		router.CleanupLoop(gctx)
		return nil
	})

	g.Go(func() error {
		dbopen.ExportPoolStats(gctx, repo, 15*time.Second, log)
		return nil
	})

	return g.Wait()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
