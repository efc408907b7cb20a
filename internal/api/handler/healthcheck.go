package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/accolades/ads-dashboard-api/pkg/log"
)

// Pinger é satisfeito pela conexão com o PostgreSQL
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde; sem banco
// configurado (db nil) só a API é verificada
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:   "ok",
			Database: "ok",
			Time:     time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		if db == nil {
			resp.Database = "non configurée"
		} else if err := db.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("healthcheck: banco indisponível")
			resp.Status = "degraded"
			resp.Database = "indisponible"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, r, status, resp)
	})
}
