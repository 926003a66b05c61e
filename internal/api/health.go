package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler reports service liveness and database reachability.
func HealthCheckHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "degraded",
				"database": "unreachable",
			})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "reachable",
		})
	}
}
