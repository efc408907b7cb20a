package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/log"
)

// CorrelationIDHeader é lido do painel e devolvido na resposta
const CorrelationIDHeader = "X-Correlation-ID"

// slowRequestThreshold acima disso a requisição é registrada como lenta;
// as chamadas ao Google Ads costumam ficar abaixo de 2s
const slowRequestThreshold = 2 * time.Second

const panicStackSize = 8 << 10

// LoggingMiddleware registra início e fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rec := newStatusRecorder(w)
			started := time.Now()
			dev := log.IsDevelopment()

			if dev {
				log.L.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).Debug("→ requisição recebida")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"origin":         r.Header.Get("Origin"),
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(started)
			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    rec.status,
				"duration_ms":    elapsed.Milliseconds(),
			}
			if !dev {
				fields["response_bytes"] = rec.written
			}

			message := "Requisição finalizada"
			if dev {
				symbol := "✓"
				if rec.status >= http.StatusBadRequest {
					symbol = "✗"
				}
				message = fmt.Sprintf("%s %s %s em %s", symbol, r.Method, r.URL.Path, formatDuration(elapsed))
			}

			logByStatus(log.L.WithFields(fields), rec.status, message)

			if elapsed > slowRequestThreshold {
				log.L.WithFields(fields).Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

func logByStatus(logger log.Logger, status int, message string) {
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(message)
	case status >= http.StatusBadRequest:
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status e o tamanho da resposta
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.wroteHeader {
		return
	}
	s.status = code
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// LogPanicMiddleware recupera panics e responde 500 no formato da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, panicStackSize)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  recovered,
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur interne du serveur", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
