package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/config"
	authmocks "github.com/accolades/ads-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCleanupConfig(enabled bool) *config.Config {
	return &config.Config{
		Auth:           config.Auth{SessionTTL: time.Hour},
		SessionCleanup: config.SessionCleanup{CronSchedule: "0 * * * *", Enabled: enabled},
	}
}

func TestSessionCleanupService_cleanup(t *testing.T) {
	t.Run("Remove sessões expiradas e workspaces antigos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := authmocks.NewMockAuthenticator(ctrl)
		store := triaging.NewWorkspaceStore()
		store.Get("sessao-antiga")

		service := NewSessionCleanupService(mockAuth, store, newCleanupConfig(true))
		service.now = func() time.Time { return time.Now().Add(3 * time.Hour) }

		mockAuth.EXPECT().CleanupExpiredSessions(gomock.Any()).Return(int64(4), nil)

		service.cleanup()

		assert.Equal(t, 0, store.Len())
		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, int64(4), status["last_sessions_removed"])
		assert.Equal(t, 1, status["last_workspaces_evicted"])
	})

	t.Run("Mantém workspaces recentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := authmocks.NewMockAuthenticator(ctrl)
		store := triaging.NewWorkspaceStore()
		store.Get("sessao-ativa")

		service := NewSessionCleanupService(mockAuth, store, newCleanupConfig(true))

		mockAuth.EXPECT().CleanupExpiredSessions(gomock.Any()).Return(int64(0), nil)

		service.cleanup()

		assert.Equal(t, 1, store.Len())
	})

	t.Run("Erro no banco não impede a limpeza dos workspaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := authmocks.NewMockAuthenticator(ctrl)
		store := triaging.NewWorkspaceStore()
		store.Get("sessao-antiga")

		service := NewSessionCleanupService(mockAuth, store, newCleanupConfig(true))
		service.now = func() time.Time { return time.Now().Add(3 * time.Hour) }

		mockAuth.EXPECT().CleanupExpiredSessions(gomock.Any()).Return(int64(0), errors.New("conexão recusada"))

		service.cleanup()

		assert.Equal(t, 0, store.Len())
	})

	t.Run("Ignora execução concorrente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := authmocks.NewMockAuthenticator(ctrl)
		service := NewSessionCleanupService(mockAuth, triaging.NewWorkspaceStore(), newCleanupConfig(true))
		service.syncRunning = true

		service.cleanup()
		service.TriggerManualSync()

		assert.Equal(t, true, service.GetStatus()["sync_running"])
	})
}

func TestSessionCleanupService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewSessionCleanupService(authmocks.NewMockAuthenticator(ctrl), nil, newCleanupConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := newCleanupConfig(true)
		cfg.SessionCleanup.CronSchedule = "todo dia"
		service := NewSessionCleanupService(authmocks.NewMockAuthenticator(ctrl), nil, cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewSessionCleanupService(authmocks.NewMockAuthenticator(ctrl), nil, newCleanupConfig(true))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		cancel()
	})
}
