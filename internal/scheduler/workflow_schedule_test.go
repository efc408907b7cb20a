package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	triggermocks "github.com/accolades/ads-dashboard-api/internal/usecases/triggering/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScheduleConfig(enabled bool, schedules map[string]string) *config.Config {
	return &config.Config{
		WorkflowSchedule: config.WorkflowSchedule{Enabled: enabled, ByWorkflow: schedules},
	}
}

func TestWorkflowScheduleService_run(t *testing.T) {
	t.Run("Dispara o workflow com origem do agendador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTriggerer := triggermocks.NewMockTriggerer(ctrl)
		service := NewWorkflowScheduleService(mockTriggerer, newScheduleConfig(true, map[string]string{"weekly-report": "0 8 * * 1"}))

		mockTriggerer.EXPECT().
			Trigger(gomock.Any(), domain.TriggerRequest{WorkflowID: "weekly-report"}, domain.TriggerSourceScheduler, ScheduledTriggeredBy).
			Return(&domain.TriggerResult{Success: true}, nil)

		service.run("weekly-report")

		workflows := service.GetStatus()["workflows"].(map[string]any)
		status := workflows["weekly-report"].(map[string]any)
		assert.Equal(t, false, status["running"])
		assert.Equal(t, "", status["last_error"])
		assert.Equal(t, "0 8 * * 1", status["cron"])
	})

	t.Run("Registra o erro do disparo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTriggerer := triggermocks.NewMockTriggerer(ctrl)
		service := NewWorkflowScheduleService(mockTriggerer, newScheduleConfig(true, map[string]string{"weekly-report": "0 8 * * 1"}))

		mockTriggerer.EXPECT().
			Trigger(gomock.Any(), gomock.Any(), domain.TriggerSourceScheduler, ScheduledTriggeredBy).
			Return(nil, errors.New("n8n indisponível"))

		service.run("weekly-report")

		workflows := service.GetStatus()["workflows"].(map[string]any)
		assert.Equal(t, "n8n indisponível", workflows["weekly-report"].(map[string]any)["last_error"])
	})

	t.Run("Ignora workflow já em execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewWorkflowScheduleService(triggermocks.NewMockTriggerer(ctrl), newScheduleConfig(true, map[string]string{"weekly-report": "0 8 * * 1"}))
		service.jobs["weekly-report"].running = true

		service.run("weekly-report")
	})
}

func TestWorkflowScheduleService_Start(t *testing.T) {
	t.Run("Workflow desconhecido retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewWorkflowScheduleService(triggermocks.NewMockTriggerer(ctrl), newScheduleConfig(true, map[string]string{"inexistente": "0 8 * * 1"}))

		err := service.Start(context.Background())
		assert.ErrorContains(t, err, "inexistente")
	})

	t.Run("Agenda um job por workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewWorkflowScheduleService(triggermocks.NewMockTriggerer(ctrl), newScheduleConfig(true, map[string]string{
			"weekly-report":        "0 8 * * 1",
			"campaign-performance": "0 6 * * *",
		}))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 2)
	})

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewWorkflowScheduleService(triggermocks.NewMockTriggerer(ctrl), newScheduleConfig(false, map[string]string{"weekly-report": "0 8 * * 1"}))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})
}
