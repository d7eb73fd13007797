package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/samber/lo"
)

type PromptHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewPromptHandler(repo db.Repository, log *slog.Logger) *PromptHandler {
	return &PromptHandler{repo: repo, log: log}
}

type promptResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	Romanized  string `json:"romanized"`
	Difficulty string `json:"difficulty"`
	CreatedAt  string `json:"created_at"`
}

type listPromptsResponse struct {
	Data       []promptResponse `json:"data"`
	Pagination paginationMeta   `json:"pagination"`
}

func toPromptResponse(p db.Prompt, _ int) promptResponse {
	return promptResponse{
		ID:         p.ID,
		Text:       p.Text,
		Romanized:  p.Romanized,
		Difficulty: p.Difficulty,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

// difficulty reads ?difficulty=, where empty means any.
func difficulty(w http.ResponseWriter, r *http.Request) (string, bool) {
	d := r.URL.Query().Get("difficulty")
	if d != "" && !slices.Contains(db.ValidDifficulties, d) {
		writeError(w, http.StatusBadRequest, "difficulty must be one of easy, medium, hard")
		return "", false
	}
	return d, true
}

func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	d, ok := difficulty(w, r)
	if !ok {
		return
	}
	page, limit := pageParams(r)

	prompts, err := h.repo.ListPrompts(r.Context(), db.ListPromptsParams{
		Difficulty: d,
		Limit:      int32(limit),
		Offset:     int32((page - 1) * limit),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list prompts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	total, err := h.repo.CountPrompts(r.Context(), d)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to count prompts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listPromptsResponse{
		Data:       lo.Map(prompts, toPromptResponse),
		Pagination: paginationMeta{Page: page, Limit: limit, Total: total},
	})
}

func (h *PromptHandler) Random(w http.ResponseWriter, r *http.Request) {
	d, ok := difficulty(w, r)
	if !ok {
		return
	}
	h.respond(w, r, func() (db.Prompt, error) { return h.repo.RandomPrompt(r.Context(), d) })
}

func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	h.respond(w, r, func() (db.Prompt, error) { return h.repo.GetPrompt(r.Context(), id) })
}

func (h *PromptHandler) respond(w http.ResponseWriter, r *http.Request, fetch func() (db.Prompt, error)) {
	p, err := fetch()
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "prompt not found")
			return
		}
		h.log.ErrorContext(r.Context(), "failed to get prompt", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponse(p, 0))
}

func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rows, err := h.repo.DeletePrompt(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to delete prompt", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == 0 {
		writeError(w, http.StatusNotFound, "prompt not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
