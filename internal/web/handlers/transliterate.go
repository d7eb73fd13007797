package handlers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/jusunglee/hinditype/internal/metrics"
	"github.com/jusunglee/hinditype/internal/transliteration"
	"github.com/samber/lo"
)

// MaxTextRunes bounds the text accepted by a single conversion request.
const MaxTextRunes = 10000

type TransliterateHandler struct {
	log *slog.Logger
}

func NewTransliterateHandler(log *slog.Logger) *TransliterateHandler {
	return &TransliterateHandler{log: log}
}

type transliterateRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type transliterateResponse struct {
	Output string `json:"output"`
	Mode   string `json:"mode"`
}

type modeResponse struct {
	Name   string `json:"name"`
	Layout string `json:"layout,omitempty"`
}

// Transliterate converts text in the requested mode. An unrecognised mode
// name falls back to direct, so the text is echoed unchanged.
func (h *TransliterateHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	var req transliterateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if utf8.RuneCountInString(req.Text) > MaxTextRunes {
		writeError(w, http.StatusRequestEntityTooLarge, "text too long")
		return
	}

	mode := transliteration.ParseMode(req.Mode)
	metrics.TransliterationsTotal.WithLabelValues(mode.String(), "web").Inc()

	writeJSON(w, http.StatusOK, transliterateResponse{
		Output: transliteration.Transliterate(req.Text, mode),
		Mode:   mode.String(),
	})
}

func (h *TransliterateHandler) Modes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lo.Map(transliteration.Modes(), func(m transliteration.Mode, _ int) modeResponse {
		name, _ := m.Layout()
		return modeResponse{Name: m.String(), Layout: name}
	}))
}
