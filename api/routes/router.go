package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/memorywall/backend/api/controllers"
	"github.com/memorywall/backend/api/middleware"
	"github.com/memorywall/backend/internal/auth"
	"github.com/memorywall/backend/internal/memories"
	"github.com/memorywall/backend/pkg/auth/session"
	"github.com/memorywall/backend/pkg/config"
	"github.com/memorywall/backend/pkg/db"
	"github.com/memorywall/backend/pkg/logger"
	"github.com/memorywall/backend/pkg/redis"
	"github.com/memorywall/backend/pkg/storage/gcs"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gcsClient gcs.Pinger,
	sessionChecker session.AccessSessionChecker,
	authService auth.Service,
	memoryService memories.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.LoginRateLimit.Window,
		cfg.LoginRateLimit.IPLimit,
		cfg.LoginRateLimit.EmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient, gcsClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.Post("/refresh", controllers.AuthRefresh(authService, logg))
		r.With(middleware.Auth(cfg.JWT, sessionChecker, logg)).Post("/logout", controllers.AuthLogout(authService, logg))
	})

	r.Route("/api/v1/memories", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Post("/", controllers.MemoryCreate(memoryService, cfg.Media.MaxUploadMB, logg))
		r.Get("/", controllers.MemoryTimeline(memoryService, logg))
		r.Get("/preview", controllers.MemoryPreview(memoryService, logg))
	})

	return r
}
