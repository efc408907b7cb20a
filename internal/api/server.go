package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/api/handler"
	"github.com/accolades/ads-dashboard-api/internal/api/handler/router"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/reporting"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
	"github.com/accolades/ads-dashboard-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	m *metrics.Metrics,
	db handler.Pinger,
	authenticator authenticating.Authenticator,
	reporter reporting.Reporter,
	tabler tabling.Tabler,
	triggerer triggering.Triggerer,
	triager triaging.Triager,
	preferrer preferring.Preferrer,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithInstrumentation(middleware.Instrument(m)),
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator, triager, config)...),
		router.WithRoutes(handler.GoogleAds(reporter, preferrer)...),
		router.WithRoutes(handler.NocoDB(tabler)...),
		router.WithRoutes(handler.Workflows(triggerer)...),
		router.WithRoutes(handler.Preferences(preferrer)...),
		router.WithRoutes(handler.SearchTerms(triager, preferrer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.SessionMiddleware(authenticator, config.Auth.CookieName),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
