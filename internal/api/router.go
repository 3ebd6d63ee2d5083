package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/api/middleware"
)

// RouterConfig configures the middleware chain.
type RouterConfig struct {
	CORSOrigins []string
	// Limiter throttles POST routes. Nil disables limiting.
	Limiter *rate.Limiter
	Logger  *zap.Logger
}

// NewRouter mounts h's endpoints behind the standard middleware chain.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.L()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/summary", h.Summary)
	r.Get("/logs", h.Logs)
	r.With(middleware.RateLimit(cfg.Limiter)).Post("/process_expense", h.ProcessExpense)

	return r
}

// NewLimiter builds the POST limiter from requests per second and burst.
// A non-positive rate returns nil.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
