// e2e runs the prompt pipeline against a real LLM provider: generate and
// store practice sentences in a throwaway SQLite database, then check through
// the HTTP API that typing each stored romanization reproduces its sentence.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hinditype/internal/anthropic"
	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/db/sqlite"
	"github.com/jusunglee/hinditype/internal/google"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/llm"
	"github.com/jusunglee/hinditype/internal/logger"
	"github.com/jusunglee/hinditype/internal/prompts"
	"github.com/jusunglee/hinditype/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	llmProvider := requireEnv("LLM_PROVIDER")
	llmModel := os.Getenv("LLM_MODEL")

	log := logger.New()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Info("Phase 1: Setting up DB and LLM client...")
	dbPath := fmt.Sprintf("%s/hinditype-e2e-%d.db", os.TempDir(), time.Now().UnixNano())
	defer os.Remove(dbPath)

	repo, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("creating temp SQLite: %w", err)
	}
	defer repo.Close()

	var llmClient llm.Client
	switch llmProvider {
	case llm.ProviderAnthropic:
		llmClient = anthropic.NewClient(requireEnv("ANTHROPIC_API_KEY"), anthropic.Model(llmModel))
	case llm.ProviderGoogle:
		llmClient, err = google.NewClient(ctx, requireEnv("GOOGLE_API_KEY"), google.Model(llmModel))
		if err != nil {
			return fmt.Errorf("creating Google client: %w", err)
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %s", llmProvider)
	}

	log.Info("Phase 2: Refilling prompts...")
	refiller := prompts.NewRefiller(repo, prompts.NewGenerator(llm.Timed(llmProvider, llmClient)), log, llmProvider)
	refiller.Target = 3
	refiller.Batch = 5

	results, err := refiller.Refill(ctx)
	if err != nil {
		return fmt.Errorf("refill: %w", err)
	}
	stored := 0
	for _, r := range results {
		log.Info("refill result", "difficulty", r.Difficulty, "stored", r.Stored, "rejected", r.Rejected, "duplicates", r.Duplicates)
		stored += r.Stored
	}
	if stored == 0 {
		return fmt.Errorf("no generated sentence survived the phonetic round trip")
	}

	log.Info("Phase 3: Checking stored prompts through the API...")
	server := httptest.NewServer(web.NewRouter(repo, layout.Default, log, web.Options{}).Handler())
	defer server.Close()

	all, err := repo.ListPrompts(ctx, db.ListPromptsParams{Limit: 100})
	if err != nil {
		return fmt.Errorf("listing prompts: %w", err)
	}
	for _, p := range all {
		out, err := transliterate(ctx, server.URL, p.Romanized)
		if err != nil {
			return err
		}
		if out != p.Text {
			return fmt.Errorf("prompt %d: %q converts to %q, stored %q", p.ID, p.Romanized, out, p.Text)
		}
		log.Info("round trip ok", "romanized", p.Romanized, "text", p.Text)
	}

	resp, err := http.Get(server.URL + "/api/v1/prompts/random")
	if err != nil {
		return fmt.Errorf("fetching random prompt: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("random prompt: status %d", resp.StatusCode)
	}

	log.Info("all checks passed", "prompts", len(all))
	return nil
}

func transliterate(ctx context.Context, baseURL, text string) (string, error) {
	body, _ := json.Marshal(map[string]string{"text": text, "mode": "phonetic"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/transliterate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transliterate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transliterate: status %d", resp.StatusCode)
	}

	var out struct {
		Output string `json:"output"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Output, nil
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("missing required env var", "key", key)
		os.Exit(1)
	}
	return v
}
