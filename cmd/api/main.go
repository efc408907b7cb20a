package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/nocodbclient"
	"github.com/accolades/ads-dashboard-api/infrastructure/repository"
	"github.com/accolades/ads-dashboard-api/internal/api"
	"github.com/accolades/ads-dashboard-api/internal/api/handler"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/scheduler"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/internal/usecases/preferring"
	"github.com/accolades/ads-dashboard-api/internal/usecases/reporting"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const serviceName = "ads_dashboard"

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)
	preferenceRepo := repository.NewPreferenceRepository(pgConn)
	workflowRunRepo := repository.NewWorkflowRunRepository(pgConn)

	m := metrics.NewMetrics(serviceName)

	oauthConfig := googleadsclient.NewOAuthConfig(cfg)
	tokenManager := googleadsclient.NewTokenManager(oauthConfig, &http.Client{Timeout: cfg.GoogleAds.RequestTimeout})
	googleAdsIntegrator := googleads.New(cfg, googleadsclient.NewClient(cfg, tokenManager, m))
	nocoDBIntegrator := nocodb.New(cfg, nocodbclient.NewClient(cfg, m))
	n8nIntegrator := n8n.New(cfg, n8nclient.NewClient(cfg, m))

	cipher, err := authenticating.NewTokenCipher(cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a cifra dos refresh tokens")
	}

	authenticator := authenticating.NewService(sessionRepo, googleAdsIntegrator, oauthConfig, cipher, cfg)
	reporter := reporting.NewService(googleAdsIntegrator, cfg)
	tabler := tabling.NewService(nocoDBIntegrator, cfg)
	triggerer := triggering.NewService(n8nIntegrator, workflowRunRepo, m)
	preferrer := preferring.NewService(preferenceRepo, googleAdsIntegrator, tabler)

	workspaces := triaging.NewWorkspaceStore()
	triager := triaging.NewService(workspaces, tabler, triggerer)

	sessionCleanupService := scheduler.NewSessionCleanupService(authenticator, workspaces, cfg)
	workflowScheduleService := scheduler.NewWorkflowScheduleService(triggerer, cfg)

	// Inicia os agendadores em background
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	if err := workflowScheduleService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de workflows")
	} else {
		logrus.Info("Agendador de workflows iniciado com sucesso")
	}

	httpHandler := api.NewHandler(
		cfg,
		m,
		pgConn,
		authenticator,
		reporter,
		tabler,
		triggerer,
		triager,
		preferrer,
		handler.CronJobServices{
			SessionCleanup:   sessionCleanupService,
			WorkflowSchedule: workflowScheduleService,
		},
	)

	server := api.New(cfg, httpHandler)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre o pool do PostgreSQL; sem banco a API não sobe
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithField("max_open_conns", dbConfig.MaxOpenConns).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
