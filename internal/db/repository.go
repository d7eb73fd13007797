package db

import (
	"context"
	"time"
)

// Difficulties a practice prompt can be filed under.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var ValidDifficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Settings is a user's saved input preferences. Mode holds the mode name as
// understood by transliteration.LookupMode.
type Settings struct {
	UserID    string
	Mode      string
	Layout    string
	UpdatedAt time.Time
}

// Prompt is a Hindi sentence for typing practice along with the phonetic
// spelling that produces it.
type Prompt struct {
	ID         int64
	Text       string
	Romanized  string
	Difficulty string
	Source     string
	CreatedAt  time.Time
}

type UpsertSettingsParams struct {
	UserID string
	Mode   string
	Layout string
}

type CreatePromptParams struct {
	Text       string
	Romanized  string
	Difficulty string
	Source     string
}

type ListPromptsParams struct {
	Difficulty string // empty lists every difficulty
	Limit      int32
	Offset     int32
}

// Repository defines the interface for database operations
type Repository interface {
	// Settings
	UpsertSettings(ctx context.Context, arg UpsertSettingsParams) (Settings, error)
	GetSettings(ctx context.Context, userID string) (Settings, error)

	// Prompts
	CreatePrompt(ctx context.Context, arg CreatePromptParams) (Prompt, error)
	GetPrompt(ctx context.Context, id int64) (Prompt, error)
	ListPrompts(ctx context.Context, arg ListPromptsParams) ([]Prompt, error)
	RandomPrompt(ctx context.Context, difficulty string) (Prompt, error)
	CountPrompts(ctx context.Context, difficulty string) (int64, error)
	DeletePrompt(ctx context.Context, id int64) (int64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}
