package dbopen

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"postgres://user@localhost/hinditype", "postgres"},
		{"postgresql://localhost/hinditype", "postgres"},
		{"sqlite://hinditype.db", "sqlite"},
		{"hinditype.db", "sqlite"},
		{":memory:", "sqlite"},
	}
	for _, tt := range tests {
		got := Driver(tt.url)
		if got != tt.want {
			t.Errorf("Driver(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestOpenSQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hinditype.db")

	repo, err := Open(ctx, "sqlite://"+path)
	require.NoError(t, err)
	_, err = repo.UpsertSettings(ctx, db.UpsertSettingsParams{UserID: "u", Mode: "phonetic"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	// reopening keeps the data and doesn't trip over the existing schema
	repo, err = Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()
	s, err := repo.GetSettings(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "phonetic", s.Mode)
}

func TestExportPoolStatsSkipsSQLite(t *testing.T) {
	repo, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	done := make(chan struct{})
	go func() {
		ExportPoolStats(context.Background(), repo, time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ExportPoolStats kept running for a repository without a pool")
	}
}
