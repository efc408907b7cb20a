package triggering

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	n8nmocks "github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n/mocks"
	repomocks "github.com/accolades/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *n8nmocks.MockN8NIntegrator, *repomocks.MockWorkflowRunRepository) {
	ctrl := gomock.NewController(t)
	n8nIntegrator := n8nmocks.NewMockN8NIntegrator(ctrl)
	runRepo := repomocks.NewMockWorkflowRunRepository(ctrl)

	service := NewService(n8nIntegrator, runRepo, nil).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, n8nIntegrator, runRepo
}

func TestService_Trigger(t *testing.T) {
	ctx := context.Background()

	t.Run("workflowId resolve o webhook do registro", func(t *testing.T) {
		service, n8nIntegrator, runRepo := newTestService(t)

		var created *domain.WorkflowRun
		runRepo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.WorkflowRun) error {
			created = run
			return nil
		})
		n8nIntegrator.EXPECT().
			Trigger(gomock.Any(), "/webhook/weekly-report", map[string]any{"week": 10}, domain.TriggerSourceDashboard).
			Return(map[string]any{"message": "ok"}, nil)
		runRepo.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.WorkflowRunSuccess, TriggeredMessage, fixedNow).Return(nil)

		result, err := service.Trigger(ctx, domain.TriggerRequest{
			WorkflowID: "weekly-report",
			Data:       map[string]any{"week": 10},
		}, domain.TriggerSourceDashboard, "ana@accolades.marketing")
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, TriggeredMessage, result.Message)
		assert.Equal(t, map[string]any{"message": "ok"}, result.Result)

		require.NotNil(t, created)
		assert.Equal(t, created.ID, result.RunID)
		assert.Equal(t, "weekly-report", created.WorkflowID)
		assert.Equal(t, domain.WorkflowRunRunning, created.Status)
		assert.Equal(t, "ana@accolades.marketing", created.TriggeredBy)
		assert.Equal(t, fixedNow, created.TriggeredAt)
	})

	t.Run("webhookPath tem precedência e payload vence data", func(t *testing.T) {
		service, n8nIntegrator, runRepo := newTestService(t)

		runRepo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
		n8nIntegrator.EXPECT().
			Trigger(gomock.Any(), "/webhook/custom", map[string]any{"from": "payload"}, domain.TriggerSourceDashboard).
			Return(map[string]any{}, nil)
		runRepo.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.WorkflowRunSuccess, gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.Trigger(ctx, domain.TriggerRequest{
			WebhookPath: "/webhook/custom",
			WorkflowID:  "does-not-exist",
			Data:        map[string]any{"from": "data"},
			Payload:     map[string]any{"from": "payload"},
		}, domain.TriggerSourceDashboard, "")
		require.NoError(t, err)
	})

	t.Run("sem corpo envia objeto vazio", func(t *testing.T) {
		service, n8nIntegrator, runRepo := newTestService(t)

		runRepo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		n8nIntegrator.EXPECT().
			Trigger(gomock.Any(), "/webhook/optimize-budget", map[string]any{}, domain.TriggerSourceScheduler).
			Return(map[string]any{}, nil)

		result, err := service.Trigger(ctx, domain.TriggerRequest{WorkflowID: "budget-optimizer"}, domain.TriggerSourceScheduler, "")
		require.NoError(t, err)
		assert.Empty(t, result.RunID)
	})

	t.Run("workflow desconhecido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Trigger(ctx, domain.TriggerRequest{WorkflowID: "nope"}, domain.TriggerSourceDashboard, "")

		var triggerErr *TriggerError
		require.ErrorAs(t, err, &triggerErr)
		assert.ErrorIs(t, err, ErrUnknownWorkflow)
		assert.Equal(t, apiErrors.ErrWorkflowNotFound, triggerErr.Code)
	})

	t.Run("sem webhook nem workflow", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Trigger(ctx, domain.TriggerRequest{}, domain.TriggerSourceDashboard, "")
		assert.ErrorIs(t, err, ErrMissingWebhook)
	})

	t.Run("status do n8n é preservado", func(t *testing.T) {
		service, n8nIntegrator, runRepo := newTestService(t)

		upstream := &domain.UpstreamError{Service: "n8n", StatusCode: http.StatusNotFound, Body: "webhook not registered"}
		runRepo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
		n8nIntegrator.EXPECT().Trigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)
		runRepo.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.WorkflowRunError, gomock.Any(), fixedNow).Return(nil)

		_, err := service.Trigger(ctx, domain.TriggerRequest{WorkflowID: "weekly-report"}, domain.TriggerSourceDashboard, "")

		found, ok := domain.AsUpstreamError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, found.StatusCode)
	})

	t.Run("falha de rede vira erro de comunicação", func(t *testing.T) {
		service, n8nIntegrator, runRepo := newTestService(t)

		runRepo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
		n8nIntegrator.EXPECT().Trigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		runRepo.EXPECT().FinishRun(gomock.Any(), gomock.Any(), domain.WorkflowRunError, gomock.Any(), gomock.Any()).Return(nil)

		_, err := service.Trigger(ctx, domain.TriggerRequest{WorkflowID: "weekly-report"}, domain.TriggerSourceDashboard, "")

		var triggerErr *TriggerError
		require.ErrorAs(t, err, &triggerErr)
		assert.Equal(t, apiErrors.ErrCommunication, triggerErr.Code)
		assert.ErrorIs(t, err, ErrTriggerFailed)
	})
}

func TestService_ListWorkflows(t *testing.T) {
	service, _, _ := newTestService(t)

	all := service.ListWorkflows("", "")
	assert.Len(t, all, 7)

	sync := service.ListWorkflows(domain.WorkflowCategorySync, "")
	for _, wf := range sync {
		assert.Equal(t, domain.WorkflowCategorySync, wf.Category)
	}
}

func TestService_ListRuns(t *testing.T) {
	service, _, runRepo := newTestService(t)

	runRepo.EXPECT().ListRecentRuns(gomock.Any(), "weekly-report", 20).Return([]*domain.WorkflowRun{{ID: "abc"}}, nil)

	runs, err := service.ListRuns(context.Background(), "weekly-report", 20)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
