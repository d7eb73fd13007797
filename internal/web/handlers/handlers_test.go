package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertSettings(ctx context.Context, arg db.UpsertSettingsParams) (db.Settings, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Settings), args.Error(1)
}

func (m *MockRepository) GetSettings(ctx context.Context, userID string) (db.Settings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(db.Settings), args.Error(1)
}

func (m *MockRepository) CreatePrompt(ctx context.Context, arg db.CreatePromptParams) (db.Prompt, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Prompt), args.Error(1)
}

func (m *MockRepository) GetPrompt(ctx context.Context, id int64) (db.Prompt, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Prompt), args.Error(1)
}

func (m *MockRepository) ListPrompts(ctx context.Context, arg db.ListPromptsParams) ([]db.Prompt, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]db.Prompt), args.Error(1)
}

func (m *MockRepository) RandomPrompt(ctx context.Context, difficulty string) (db.Prompt, error) {
	args := m.Called(ctx, difficulty)
	return args.Get(0).(db.Prompt), args.Error(1)
}

func (m *MockRepository) CountPrompts(ctx context.Context, difficulty string) (int64, error) {
	args := m.Called(ctx, difficulty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeletePrompt(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) Close() error {
	return nil
}

var errDB = errors.New("connection reset")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSettingsStorageErrors(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetSettings", mock.Anything, "u1").Return(db.Settings{}, errDB)
	repo.On("UpsertSettings", mock.Anything, db.UpsertSettingsParams{UserID: "u1", Mode: "remington", Layout: "remington"}).
		Return(db.Settings{}, errDB)

	h := NewSettingsHandler(repo, layout.Default, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("user", "u1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "internal error"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"mode": "remington"}`))
	req.SetPathValue("user", "u1")
	rec = httptest.NewRecorder()
	h.Put(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	repo.AssertExpectations(t)
}

func TestPromptStorageErrors(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListPrompts", mock.Anything, db.ListPromptsParams{Limit: 25}).Return([]db.Prompt(nil), errDB).Once()
	repo.On("ListPrompts", mock.Anything, db.ListPromptsParams{Limit: 25}).Return([]db.Prompt{}, nil).Once()
	repo.On("CountPrompts", mock.Anything, "").Return(int64(0), errDB).Once()
	repo.On("RandomPrompt", mock.Anything, "").Return(db.Prompt{}, errDB)
	repo.On("DeletePrompt", mock.Anything, int64(7)).Return(int64(0), errDB)

	h := NewPromptHandler(repo, discardLogger())

	for range 2 {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.Random(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.SetPathValue("id", "7")
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	repo.AssertExpectations(t)
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 25},
		{"page=3&limit=10", 3, 10},
		{"page=-1&limit=1000", 1, 25},
		{"page=x&limit=y", 1, 25},
	}
	for _, tt := range tests {
		page, limit := pageParams(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil))
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("pageParams(%q) = %d, %d, want %d, %d", tt.query, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestDecodeJSONTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text": "`+strings.Repeat("a", 100)+`"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 10)

	var v transliterateRequest
	assert.False(t, decodeJSON(rec, req, &v))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
