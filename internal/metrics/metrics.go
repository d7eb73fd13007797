package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hinditype_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hinditype_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hinditype_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})

	TransliterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hinditype_transliterations_total",
		Help: "Transliteration requests by mode and surface",
	}, []string{"mode", "surface"})

	SettingsUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hinditype_settings_updates_total",
		Help: "User setting updates by mode",
	}, []string{"mode"})
)

// Worker metrics.
var (
	RefillCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hinditype_worker_refill_duration_seconds",
		Help:    "Duration of each prompt refill cycle",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
	})

	PromptCandidates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hinditype_prompt_candidates_total",
		Help: "Generated prompt candidates by difficulty and result",
	}, []string{"difficulty", "result"})

	PromptsStored = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hinditype_prompts_stored",
		Help: "Stored practice prompts by difficulty",
	}, []string{"difficulty"})

	LLMDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hinditype_llm_duration_seconds",
		Help:    "LLM completion call duration in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"provider"})
)

// Bot metrics.
var (
	BotCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hinditype_bot_commands_total",
		Help: "Discord slash commands by name and result",
	}, []string{"command", "result"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hinditype_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hinditype_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hinditype_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hinditype_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)
