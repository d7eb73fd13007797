package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/hinditype/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New creates a new PostgreSQL repository and applies the schema.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes the pool's counters for the metrics gauges.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	if _, ok := r.q.(pgx.Tx); ok {
		return fn(r)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// If fn() panics, the normal err-check rollback below won't run.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repository{pool: r.pool, q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Settings methods

func (r *Repository) UpsertSettings(ctx context.Context, arg db.UpsertSettingsParams) (db.Settings, error) {
	var s db.Settings
	err := r.q.QueryRow(ctx, `
		INSERT INTO settings (user_id, mode, layout)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET mode = EXCLUDED.mode, layout = EXCLUDED.layout, updated_at = now()
		RETURNING user_id, mode, layout, updated_at
	`, arg.UserID, arg.Mode, arg.Layout).Scan(&s.UserID, &s.Mode, &s.Layout, &s.UpdatedAt)
	return s, err
}

func (r *Repository) GetSettings(ctx context.Context, userID string) (db.Settings, error) {
	var s db.Settings
	err := r.q.QueryRow(ctx, `
		SELECT user_id, mode, layout, updated_at FROM settings WHERE user_id = $1
	`, userID).Scan(&s.UserID, &s.Mode, &s.Layout, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Settings{}, db.ErrNoRows
	}
	return s, err
}

// Prompt methods

const promptColumns = `id, text, romanized, difficulty, source, created_at`

func (r *Repository) CreatePrompt(ctx context.Context, arg db.CreatePromptParams) (db.Prompt, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO prompts (text, romanized, difficulty, source)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (text) DO NOTHING
		RETURNING `+promptColumns, arg.Text, arg.Romanized, arg.Difficulty, arg.Source)
	p, err := scanPrompt(row)
	if db.IsNoRows(err) {
		return db.Prompt{}, db.ErrDuplicate
	}
	return p, err
}

func (r *Repository) GetPrompt(ctx context.Context, id int64) (db.Prompt, error) {
	return scanPrompt(r.q.QueryRow(ctx, `SELECT `+promptColumns+` FROM prompts WHERE id = $1`, id))
}

func (r *Repository) ListPrompts(ctx context.Context, arg db.ListPromptsParams) ([]db.Prompt, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+promptColumns+`
		FROM prompts
		WHERE ($1::text = '' OR difficulty = $1)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, arg.Difficulty, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []db.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func (r *Repository) RandomPrompt(ctx context.Context, difficulty string) (db.Prompt, error) {
	return scanPrompt(r.q.QueryRow(ctx, `
		SELECT `+promptColumns+`
		FROM prompts
		WHERE ($1::text = '' OR difficulty = $1)
		ORDER BY random()
		LIMIT 1
	`, difficulty))
}

func (r *Repository) CountPrompts(ctx context.Context, difficulty string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM prompts WHERE ($1::text = '' OR difficulty = $1)
	`, difficulty).Scan(&count)
	return count, err
}

func (r *Repository) DeletePrompt(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// pgx.Rows satisfies pgx.Row, so one helper covers single rows and iteration.
func scanPrompt(row pgx.Row) (db.Prompt, error) {
	var p db.Prompt
	err := row.Scan(&p.ID, &p.Text, &p.Romanized, &p.Difficulty, &p.Source, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Prompt{}, db.ErrNoRows
	}
	return p, err
}
