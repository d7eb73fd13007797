package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/metrics"
	"github.com/jusunglee/hinditype/internal/transliteration"
)

type SettingsHandler struct {
	repo    db.Repository
	layouts *layout.Registry
	log     *slog.Logger
}

func NewSettingsHandler(repo db.Repository, layouts *layout.Registry, log *slog.Logger) *SettingsHandler {
	return &SettingsHandler{repo: repo, layouts: layouts, log: log}
}

type settingsRequest struct {
	Mode   string `json:"mode"`
	Layout string `json:"layout"`
}

type settingsResponse struct {
	UserID    string `json:"user_id"`
	Mode      string `json:"mode"`
	Layout    string `json:"layout,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

func toSettingsResponse(s db.Settings) settingsResponse {
	return settingsResponse{
		UserID:    s.UserID,
		Mode:      s.Mode,
		Layout:    s.Layout,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.GetSettings(r.Context(), r.PathValue("user"))
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "settings not found")
			return
		}
		h.log.ErrorContext(r.Context(), "failed to get settings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Put saves a user's mode. Unlike conversion requests, an unknown mode is
// rejected here. The layout is derived from the mode: it may be omitted, and
// a layout other than the mode's own is rejected.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode, ok := transliteration.LookupMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown mode")
		return
	}
	if req.Layout != "" {
		if _, ok := h.layouts.Layout(req.Layout); !ok {
			writeError(w, http.StatusBadRequest, "unknown layout")
			return
		}
	}
	// The stored layout always names the table the mode converts through.
	want, _ := mode.Layout()
	if req.Layout != "" && req.Layout != want {
		writeError(w, http.StatusBadRequest, "layout does not match mode")
		return
	}
	req.Layout = want

	s, err := h.repo.UpsertSettings(r.Context(), db.UpsertSettingsParams{
		UserID: r.PathValue("user"),
		Mode:   mode.String(),
		Layout: req.Layout,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to save settings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.SettingsUpdates.WithLabelValues(mode.String()).Inc()
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}
