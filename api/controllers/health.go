package controllers

import (
	"net/http"

	"github.com/memorywall/backend/api/responses"
	"github.com/memorywall/backend/pkg/config"
	"github.com/memorywall/backend/pkg/db"
	pkgerrors "github.com/memorywall/backend/pkg/errors"
	"github.com/memorywall/backend/pkg/logger"
	"github.com/memorywall/backend/pkg/redis"
	"github.com/memorywall/backend/pkg/storage/gcs"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MemoryWall-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every dependency the request path relies on.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger, gcsP gcs.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MemoryWall-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		check := func(name string, ping func() error) {
			if err := ping(); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(logg.WithField(r.Context(), "dependency", name), "readiness check failed", err)
				}
				return
			}
			checks[name] = "up"
		}

		if dbP != nil {
			check("db", func() error { return dbP.Ping(r.Context()) })
		}
		if redisP != nil {
			check("redis", func() error { return redisP.Ping(r.Context()) })
		}
		if gcsP != nil {
			check("gcs", func() error { return gcsP.Ping(r.Context()) })
		}

		if !healthy {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks))
			return
		}

		checks["status"] = "ready"
		responses.WriteSuccess(w, checks)
	}
}
