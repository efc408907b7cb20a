package middleware

import (
	"net/http"
	"time"

	"github.com/accolades/ads-dashboard-api/pkg/metrics"
)

// Instrument registra contagem e latência por rota. Recebe o padrão da rota
// (não a URL) para manter a cardinalidade dos labels baixa.
func Instrument(m *metrics.Metrics) func(method, path string) func(http.Handler) http.Handler {
	return func(method, path string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				started := time.Now()
				rec := newStatusRecorder(w)

				next.ServeHTTP(rec, r)

				m.ObserveHTTPRequest(method, path, rec.status, time.Since(started))
			})
		}
	}
}
