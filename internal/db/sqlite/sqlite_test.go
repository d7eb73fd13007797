package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSettingsUpsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetSettings(ctx, "user-1")
	assert.True(t, db.IsNoRows(err))

	s, err := repo.UpsertSettings(ctx, db.UpsertSettingsParams{UserID: "user-1", Mode: "phonetic"})
	require.NoError(t, err)
	assert.Equal(t, "phonetic", s.Mode)
	assert.Equal(t, "", s.Layout)
	assert.False(t, s.UpdatedAt.IsZero())

	s, err = repo.UpsertSettings(ctx, db.UpsertSettingsParams{UserID: "user-1", Mode: "inscript", Layout: "inscript"})
	require.NoError(t, err)
	assert.Equal(t, "inscript", s.Mode)
	assert.Equal(t, "inscript", s.Layout)

	got, err := repo.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, s.Mode, got.Mode)
}

func TestPromptCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p, err := repo.CreatePrompt(ctx, db.CreatePromptParams{
		Text:       "नमस्ते",
		Romanized:  "namaste",
		Difficulty: db.DifficultyEasy,
		Source:     "seed",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "namaste", p.Romanized)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetPrompt(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Same text is rejected
	_, err = repo.CreatePrompt(ctx, db.CreatePromptParams{
		Text:       "नमस्ते",
		Romanized:  "namaste",
		Difficulty: db.DifficultyHard,
	})
	assert.ErrorIs(t, err, db.ErrDuplicate)

	rows, err := repo.DeletePrompt(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.GetPrompt(ctx, p.ID)
	assert.True(t, db.IsNoRows(err))

	rows, err = repo.DeletePrompt(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestPromptRejectsUnknownDifficulty(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.CreatePrompt(context.Background(), db.CreatePromptParams{
		Text: "घर", Romanized: "ghar", Difficulty: "expert",
	})
	assert.Error(t, err)
}

func seedPrompts(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []db.CreatePromptParams{
		{Text: "घर", Romanized: "ghar", Difficulty: db.DifficultyEasy},
		{Text: "नाम", Romanized: "naam", Difficulty: db.DifficultyEasy},
		{Text: "किताब", Romanized: "kitaab", Difficulty: db.DifficultyMedium},
		{Text: "धन्यवाद", Romanized: "dhanyavaad", Difficulty: db.DifficultyHard},
	} {
		_, err := repo.CreatePrompt(ctx, p)
		require.NoError(t, err)
	}
}

func TestListAndCountPrompts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	seedPrompts(t, repo)

	all, err := repo.ListPrompts(ctx, db.ListPromptsParams{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	easy, err := repo.ListPrompts(ctx, db.ListPromptsParams{Difficulty: db.DifficultyEasy, Limit: 10})
	require.NoError(t, err)
	require.Len(t, easy, 2)
	assert.Equal(t, "घर", easy[0].Text)

	page, err := repo.ListPrompts(ctx, db.ListPromptsParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "किताब", page[0].Text)

	count, err := repo.CountPrompts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	count, err = repo.CountPrompts(ctx, db.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRandomPrompt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.RandomPrompt(ctx, "")
	assert.True(t, db.IsNoRows(err))

	seedPrompts(t, repo)

	p, err := repo.RandomPrompt(ctx, db.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, "धन्यवाद", p.Text)

	p, err = repo.RandomPrompt(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Text)
}

func TestWithTx(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.CreatePrompt(ctx, db.CreatePromptParams{Text: "घर", Romanized: "ghar", Difficulty: db.DifficultyEasy}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	count, err := repo.CountPrompts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = repo.WithTx(ctx, func(tx db.Repository) error {
		_, err := tx.CreatePrompt(ctx, db.CreatePromptParams{Text: "घर", Romanized: "ghar", Difficulty: db.DifficultyEasy})
		if err != nil {
			return err
		}
		// nested calls join the outer transaction
		return tx.WithTx(ctx, func(inner db.Repository) error {
			_, err := inner.UpsertSettings(ctx, db.UpsertSettingsParams{UserID: "u", Mode: "legacy"})
			return err
		})
	})
	require.NoError(t, err)

	count, err = repo.CountPrompts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	s, err := repo.GetSettings(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "legacy", s.Mode)
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = repo.WithTx(ctx, func(tx db.Repository) error {
			_, _ = tx.CreatePrompt(ctx, db.CreatePromptParams{Text: "घर", Romanized: "ghar", Difficulty: db.DifficultyEasy})
			panic("boom")
		})
	})

	count, err := repo.CountPrompts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
