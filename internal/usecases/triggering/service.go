package triggering

import (
	"context"
	"time"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/n8n"
	"github.com/accolades/ads-dashboard-api/infrastructure/repository"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/metrics"
	"github.com/accolades/ads-dashboard-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const TriggeredMessage = "Workflow déclenché avec succès"

type Triggerer interface {
	Trigger(ctx context.Context, req domain.TriggerRequest, source, triggeredBy string) (*domain.TriggerResult, error)
	ListWorkflows(category domain.WorkflowCategory, query string) []domain.Workflow
	ListRuns(ctx context.Context, workflowID string, limit int) ([]*domain.WorkflowRun, error)
}

type Service struct {
	n8n     n8n.N8NIntegrator
	runRepo repository.WorkflowRunRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(n8nIntegrator n8n.N8NIntegrator, runRepo repository.WorkflowRunRepository, m *metrics.Metrics) Triggerer {
	return &Service{
		n8n:     n8nIntegrator,
		runRepo: runRepo,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) ListWorkflows(category domain.WorkflowCategory, query string) []domain.Workflow {
	return domain.FilterWorkflows(category, query)
}

func (s *Service) ListRuns(ctx context.Context, workflowID string, limit int) ([]*domain.WorkflowRun, error) {
	runs, err := s.runRepo.ListRecentRuns(ctx, workflowID, limit)
	if err != nil {
		return nil, NewTriggerError(err, apiErrors.ErrDatabaseOperation, workflowID, "")
	}
	return runs, nil
}

// Trigger resolve o webhook, registra a execução e dispara o n8n.
// webhookPath tem precedência sobre workflowId.
func (s *Service) Trigger(ctx context.Context, req domain.TriggerRequest, source, triggeredBy string) (*domain.TriggerResult, error) {
	workflow, err := resolveWorkflow(req)
	if err != nil {
		return nil, err
	}

	body := req.Payload
	if body == nil {
		body = req.Data
	}
	if body == nil {
		body = map[string]any{}
	}

	run := s.startRun(ctx, workflow, source, triggeredBy)

	logger := logrus.WithFields(logrus.Fields{
		"workflow_id":  workflow.ID,
		"webhook_path": workflow.WebhookPath,
		"source":       source,
	})

	result, err := s.n8n.Trigger(ctx, workflow.WebhookPath, body, source)
	s.metrics.ObserveWorkflowTrigger(metricsLabel(workflow), source, err)
	if err != nil {
		logger.WithError(err).Error("triggering: falha ao disparar workflow")
		s.finishRun(run, domain.WorkflowRunError, err.Error())

		if _, ok := domain.AsUpstreamError(err); ok {
			return nil, err
		}
		return nil, NewTriggerError(ErrTriggerFailed, apiErrors.ErrCommunication, workflow.ID, err.Error())
	}

	logger.Info("triggering: workflow disparado")
	s.finishRun(run, domain.WorkflowRunSuccess, TriggeredMessage)

	response := &domain.TriggerResult{
		Success: true,
		Message: TriggeredMessage,
		Result:  result,
	}
	if run != nil {
		response.RunID = run.ID
	}

	return response, nil
}

func resolveWorkflow(req domain.TriggerRequest) (domain.Workflow, error) {
	if req.WebhookPath != "" {
		if wf, ok := domain.FindWorkflowByPath(req.WebhookPath); ok {
			return wf, nil
		}
		return domain.Workflow{WebhookPath: req.WebhookPath}, nil
	}

	if req.WorkflowID != "" {
		wf, ok := domain.FindWorkflow(req.WorkflowID)
		if !ok {
			return domain.Workflow{}, NewTriggerError(ErrUnknownWorkflow, apiErrors.ErrWorkflowNotFound, req.WorkflowID, req.WorkflowID)
		}
		return wf, nil
	}

	return domain.Workflow{}, NewTriggerError(ErrMissingWebhook, apiErrors.ErrMissingRequiredData, "", "")
}

// startRun grava a execução como running; falhas no registro não impedem o disparo
func (s *Service) startRun(ctx context.Context, workflow domain.Workflow, source, triggeredBy string) *domain.WorkflowRun {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("triggering: erro ao gerar ID da execução")
		return nil
	}

	run := &domain.WorkflowRun{
		ID:           id,
		WorkflowID:   workflow.ID,
		WorkflowName: workflow.Name,
		WebhookPath:  workflow.WebhookPath,
		Status:       domain.WorkflowRunRunning,
		Source:       source,
		TriggeredBy:  triggeredBy,
		TriggeredAt:  s.now(),
	}

	if err := s.runRepo.CreateRun(ctx, run); err != nil {
		logrus.WithError(errors.Wrap(err, "triggering: erro ao registrar execução")).Warn("triggering: execução não registrada")
		return nil
	}

	return run
}

// finishRun usa um contexto próprio para registrar o fim mesmo após cancelamento da requisição
func (s *Service) finishRun(run *domain.WorkflowRun, status domain.WorkflowRunStatus, message string) {
	if run == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.runRepo.FinishRun(ctx, run.ID, status, message, s.now()); err != nil {
		logrus.WithError(err).WithField("run_id", run.ID).Warn("triggering: erro ao finalizar execução")
	}
}

func metricsLabel(workflow domain.Workflow) string {
	if workflow.ID != "" {
		return workflow.ID
	}
	return "custom"
}
