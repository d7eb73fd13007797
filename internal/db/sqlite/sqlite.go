package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  querier
}

// New opens (and if needed creates) a SQLite database. Pass ":memory:" for a
// throwaway database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// SQLite serializes writers anyway, and an in-memory database only
	// exists on the connection that created it.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("opened SQLite database", "path", dbPath)

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	if _, ok := r.q.(*sql.Tx); ok {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Settings methods

func (r *Repository) UpsertSettings(ctx context.Context, arg db.UpsertSettingsParams) (db.Settings, error) {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO settings (user_id, mode, layout)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET mode = excluded.mode, layout = excluded.layout,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
	`, arg.UserID, arg.Mode, arg.Layout)
	if err != nil {
		return db.Settings{}, err
	}
	return r.GetSettings(ctx, arg.UserID)
}

func (r *Repository) GetSettings(ctx context.Context, userID string) (db.Settings, error) {
	var s db.Settings
	var updatedAtStr string
	err := r.q.QueryRowContext(ctx, `
		SELECT user_id, mode, layout, updated_at FROM settings WHERE user_id = ?
	`, userID).Scan(&s.UserID, &s.Mode, &s.Layout, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Settings{}, db.ErrNoRows
	}
	if err != nil {
		return db.Settings{}, err
	}
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return s, nil
}

// Prompt methods

const promptColumns = `id, text, romanized, difficulty, source, created_at`

func (r *Repository) CreatePrompt(ctx context.Context, arg db.CreatePromptParams) (db.Prompt, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO prompts (text, romanized, difficulty, source)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (text) DO NOTHING
	`, arg.Text, arg.Romanized, arg.Difficulty, arg.Source)
	if err != nil {
		return db.Prompt{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return db.Prompt{}, err
	}
	if rowsAffected == 0 {
		return db.Prompt{}, db.ErrDuplicate
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Prompt{}, err
	}
	return r.GetPrompt(ctx, id)
}

func (r *Repository) GetPrompt(ctx context.Context, id int64) (db.Prompt, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+promptColumns+` FROM prompts WHERE id = ?`, id)
	return scanPrompt(row)
}

func (r *Repository) ListPrompts(ctx context.Context, arg db.ListPromptsParams) ([]db.Prompt, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+promptColumns+`
		FROM prompts
		WHERE (? = '' OR difficulty = ?)
		ORDER BY id
		LIMIT ? OFFSET ?
	`, arg.Difficulty, arg.Difficulty, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPrompts(rows)
}

func (r *Repository) RandomPrompt(ctx context.Context, difficulty string) (db.Prompt, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+promptColumns+`
		FROM prompts
		WHERE (? = '' OR difficulty = ?)
		ORDER BY RANDOM()
		LIMIT 1
	`, difficulty, difficulty)
	return scanPrompt(row)
}

func (r *Repository) CountPrompts(ctx context.Context, difficulty string) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM prompts WHERE (? = '' OR difficulty = ?)
	`, difficulty, difficulty).Scan(&count)
	return count, err
}

func (r *Repository) DeletePrompt(ctx context.Context, id int64) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Scan helpers

func scanPrompt(row *sql.Row) (db.Prompt, error) {
	var p db.Prompt
	var createdAtStr string
	err := row.Scan(&p.ID, &p.Text, &p.Romanized, &p.Difficulty, &p.Source, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Prompt{}, db.ErrNoRows
	}
	if err != nil {
		return db.Prompt{}, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return p, nil
}

func scanPrompts(rows *sql.Rows) ([]db.Prompt, error) {
	var prompts []db.Prompt
	for rows.Next() {
		var p db.Prompt
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Text, &p.Romanized, &p.Difficulty, &p.Source, &createdAtStr); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}
