package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/hinditype/internal/db"
	"github.com/jusunglee/hinditype/internal/layout"
	"github.com/jusunglee/hinditype/internal/ratelimit"
	"github.com/jusunglee/hinditype/internal/web/handlers"
	"github.com/jusunglee/hinditype/internal/web/middleware"
)

type Options struct {
	AllowedOrigins []string
	// AdminKey guards prompt deletion. Empty disables the endpoint.
	AdminKey string
	// RateLimit is requests per minute per IP on write endpoints.
	RateLimit int
}

type Router struct {
	repo        db.Repository
	layouts     *layout.Registry
	log         *slog.Logger
	opts        Options
	rateLimiter *ratelimit.Limiter
}

func NewRouter(repo db.Repository, layouts *layout.Registry, log *slog.Logger, opts Options) *Router {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 120
	}
	return &Router{
		repo:        repo,
		layouts:     layouts,
		log:         log,
		opts:        opts,
		rateLimiter: ratelimit.New(opts.RateLimit, time.Minute),
	}
}

// CleanupLoop prunes the rate limiter until ctx is done.
func (r *Router) CleanupLoop(ctx context.Context) {
	r.rateLimiter.Cleanup(ctx, 5*time.Minute)
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	transliterateHandler := handlers.NewTransliterateHandler(r.log)
	layoutHandler := handlers.NewLayoutHandler(r.layouts, r.log)
	settingsHandler := handlers.NewSettingsHandler(r.repo, r.layouts, r.log)
	promptHandler := handlers.NewPromptHandler(r.repo, r.log)

	read := func(h http.HandlerFunc, cache string) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl(cache),
		)
	}
	write := func(h http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		return middleware.Chain(h, append([]middleware.Middleware{
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(r.rateLimiter),
			middleware.MaxBody(64 << 10),
		}, extra...)...)
	}

	mux.Handle("POST /api/v1/transliterate", write(transliterateHandler.Transliterate))
	mux.Handle("GET /api/v1/modes", read(transliterateHandler.Modes, "public, max-age=3600"))

	mux.Handle("GET /api/v1/layouts", read(layoutHandler.List, "public, max-age=60"))
	mux.Handle("GET /api/v1/layouts/{name}", read(layoutHandler.Get, "public, max-age=60"))
	mux.Handle("GET /api/v1/layouts/{name}/keys/{key}", read(layoutHandler.Key, "public, max-age=60"))
	mux.Handle("POST /api/v1/layouts/{name}/remap", write(layoutHandler.Remap))

	mux.Handle("GET /api/v1/settings/{user}", read(settingsHandler.Get, "no-store"))
	mux.Handle("PUT /api/v1/settings/{user}", write(settingsHandler.Put))

	mux.Handle("GET /api/v1/prompts", read(promptHandler.List, "public, s-maxage=5, max-age=0"))
	mux.Handle("GET /api/v1/prompts/random", read(promptHandler.Random, "no-store"))
	mux.Handle("GET /api/v1/prompts/{id}", read(promptHandler.Get, "public, max-age=60"))
	mux.Handle("DELETE /api/v1/prompts/{id}", write(promptHandler.Delete, middleware.APIKeyAuth(r.opts.AdminKey)))

	return middleware.CORS(r.opts.AllowedOrigins)(mux)
}
