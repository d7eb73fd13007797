package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/metrics"
	"github.com/jusunglee/hinditype/internal/transliteration"
)

type LayoutHandler struct {
	layouts *layout.Registry
	log     *slog.Logger
}

func NewLayoutHandler(layouts *layout.Registry, log *slog.Logger) *LayoutHandler {
	return &LayoutHandler{layouts: layouts, log: log}
}

type keyResponse struct {
	Layout string `json:"layout"`
	Key    string `json:"key"`
	Shift  bool   `json:"shift"`
	Output string `json:"output"`
}

type remapRequest struct {
	Text string `json:"text"`
}

func (h *LayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.layouts.Names())
}

func (h *LayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, ok := h.layouts.Layout(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Key reports what a single key produces. The key must be exactly one
// character; ?shift=true asks for the shifted output.
func (h *LayoutHandler) Key(w http.ResponseWriter, r *http.Request) {
	l, ok := h.layouts.Layout(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}

	key := r.PathValue("key")
	if utf8.RuneCountInString(key) != 1 {
		writeError(w, http.StatusBadRequest, "key must be a single character")
		return
	}
	shift, _ := strconv.ParseBool(r.URL.Query().Get("shift"))

	k, _ := utf8.DecodeRuneInString(key)
	writeJSON(w, http.StatusOK, keyResponse{
		Layout: l.Name,
		Key:    key,
		Shift:  shift,
		Output: layout.LookupKeyOutput(l, k, shift),
	})
}

func (h *LayoutHandler) Remap(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	m, ok := h.layouts.CharMap(name)
	if !ok {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}

	var req remapRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if utf8.RuneCountInString(req.Text) > MaxTextRunes {
		writeError(w, http.StatusRequestEntityTooLarge, "text too long")
		return
	}

	metrics.TransliterationsTotal.WithLabelValues(name, "web").Inc()
	writeJSON(w, http.StatusOK, transliterateResponse{
		Output: transliteration.Remap(req.Text, m),
		Mode:   name,
	})
}
