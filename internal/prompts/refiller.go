package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/metrics"
)

// Refiller keeps every difficulty stocked with at least Target prompts.
type Refiller struct {
	repo   db.Repository
	gen    *Generator
	log    *slog.Logger
	source string

	// Target is the number of stored prompts wanted per difficulty.
	Target int
	// Batch caps how many sentences one model call is asked for.
	Batch int
}

func NewRefiller(repo db.Repository, gen *Generator, log *slog.Logger, source string) *Refiller {
	return &Refiller{
		repo:   repo,
		gen:    gen,
		log:    log,
		source: source,
		Target: 50,
		Batch:  10,
	}
}

// Result counts what one refill pass did for a difficulty.
type Result struct {
	Difficulty string
	Stored     int
	Rejected   int
	Duplicates int
}

// Refill tops up each difficulty once. A failure for one difficulty is
// logged and the rest still run; the joined errors are returned.
func (r *Refiller) Refill(ctx context.Context) ([]Result, error) {
	start := time.Now()
	defer func() {
		metrics.RefillCycleDuration.Observe(time.Since(start).Seconds())
	}()

	var results []Result
	var errs []error
	for _, difficulty := range db.ValidDifficulties {
		res, err := r.refillDifficulty(ctx, difficulty)
		if err != nil {
			r.log.ErrorContext(ctx, "refill failed", "difficulty", difficulty, "error", err)
			errs = append(errs, fmt.Errorf("refilling %s: %w", difficulty, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func (r *Refiller) refillDifficulty(ctx context.Context, difficulty string) (Result, error) {
	res := Result{Difficulty: difficulty}

	count, err := r.repo.CountPrompts(ctx, difficulty)
	if err != nil {
		return res, fmt.Errorf("counting prompts: %w", err)
	}
	metrics.PromptsStored.WithLabelValues(difficulty).Set(float64(count))

	missing := r.Target - int(count)
	if missing <= 0 {
		return res, nil
	}

	candidates, err := r.gen.Generate(ctx, difficulty, min(missing, r.Batch))
	if err != nil {
		return res, fmt.Errorf("generating prompts: %w", err)
	}

	err = r.repo.WithTx(ctx, func(tx db.Repository) error {
		for _, c := range candidates {
			if !Accept(c) {
				res.Rejected++
				r.log.DebugContext(ctx, "rejected candidate", "text", c.Text, "romanized", c.Romanized)
				continue
			}
			_, err := tx.CreatePrompt(ctx, db.CreatePromptParams{
				Text:       c.Text,
				Romanized:  c.Romanized,
				Difficulty: difficulty,
				Source:     r.source,
			})
			if errors.Is(err, db.ErrDuplicate) {
				res.Duplicates++
				continue
			}
			if err != nil {
				return fmt.Errorf("storing prompt: %w", err)
			}
			res.Stored++
		}
		return nil
	})
	if err != nil {
		return Result{Difficulty: difficulty}, err
	}

	metrics.PromptCandidates.WithLabelValues(difficulty, "stored").Add(float64(res.Stored))
	metrics.PromptCandidates.WithLabelValues(difficulty, "rejected").Add(float64(res.Rejected))
	metrics.PromptCandidates.WithLabelValues(difficulty, "duplicate").Add(float64(res.Duplicates))
	metrics.PromptsStored.WithLabelValues(difficulty).Set(float64(int(count) + res.Stored))

	r.log.InfoContext(ctx, "refilled prompts",
		"difficulty", difficulty,
		"stored", res.Stored,
		"rejected", res.Rejected,
		"duplicates", res.Duplicates,
	)
	return res, nil
}
