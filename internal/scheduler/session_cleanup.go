package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const cleanupTimeout = time.Minute

// SessionCleanupConfig representa a configuração da limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule string
	Enabled      bool
	WorkspaceTTL time.Duration
}

// SessionCleanupService remove sessões expiradas do banco e workspaces de triagem sem uso
type SessionCleanupService struct {
	scheduler         *gocron.Scheduler
	config            SessionCleanupConfig
	authenticator     authenticating.Authenticator
	workspaces        *triaging.WorkspaceStore
	now               func() time.Time
	syncRunning       bool
	syncMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRemoved       int64
	lastEvicted       int
}

func NewSessionCleanupService(
	authenticator authenticating.Authenticator,
	workspaces *triaging.WorkspaceStore,
	appConfig *config.Config,
) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.SessionCleanup.CronSchedule,
		Enabled:      appConfig.SessionCleanup.Enabled,
		WorkspaceTTL: appConfig.Auth.SessionTTL,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        cleanupConfig,
		authenticator: authenticator,
		workspaces:    workspaces,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SessionCleanupService) cleanup() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.now()
	s.syncMutex.Unlock()

	var (
		removed int64
		evicted int
	)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunFinishedAt = s.now()
		s.lastRemoved = removed
		s.lastEvicted = evicted
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	removed, err := s.authenticator.CleanupExpiredSessions(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões expiradas")
	}

	if s.workspaces != nil && s.config.WorkspaceTTL > 0 {
		evicted = s.workspaces.Evict(s.now().Add(-s.config.WorkspaceTTL))
	}

	logrus.WithFields(logrus.Fields{
		"sessions_removed":   removed,
		"workspaces_evicted": evicted,
	}).Info("Limpeza de sessões concluída")
}

// TriggerManualSync executa a limpeza fora do agendamento
func (s *SessionCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.cleanup()
}

// GetStatus retorna o status atual da limpeza
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":            s.syncRunning,
		"sync_cron":               s.config.CronSchedule,
		"sync_enabled":            s.config.Enabled,
		"last_run_started_at":     s.lastRunStartedAt,
		"last_run_finished_at":    s.lastRunFinishedAt,
		"last_sessions_removed":   s.lastRemoved,
		"last_workspaces_evicted": s.lastEvicted,
	}
}
