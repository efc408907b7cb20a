package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const (
	ScheduledTriggeredBy = "scheduler"
	workflowRunTimeout   = 2 * time.Minute
)

// WorkflowScheduleConfig representa os workflows disparados periodicamente
type WorkflowScheduleConfig struct {
	ByWorkflow map[string]string
	Enabled    bool
}

type workflowJobStatus struct {
	running     bool
	lastStarted time.Time
	lastDone    time.Time
	lastError   string
}

// WorkflowScheduleService dispara workflows do n8n segundo expressões cron configuradas
type WorkflowScheduleService struct {
	scheduler *gocron.Scheduler
	config    WorkflowScheduleConfig
	triggerer triggering.Triggerer
	now       func() time.Time
	mu        sync.Mutex
	jobs      map[string]*workflowJobStatus
}

func NewWorkflowScheduleService(triggerer triggering.Triggerer, appConfig *config.Config) *WorkflowScheduleService {
	scheduleConfig := WorkflowScheduleConfig{
		ByWorkflow: appConfig.WorkflowSchedule.ByWorkflow,
		Enabled:    appConfig.WorkflowSchedule.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"workflows": len(scheduleConfig.ByWorkflow),
		"enabled":   scheduleConfig.Enabled,
	}).Info("Configuração do agendamento de workflows carregada")

	jobs := make(map[string]*workflowJobStatus, len(scheduleConfig.ByWorkflow))
	for id := range scheduleConfig.ByWorkflow {
		jobs[id] = &workflowJobStatus{}
	}

	return &WorkflowScheduleService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    scheduleConfig,
		triggerer: triggerer,
		now:       time.Now,
		jobs:      jobs,
	}
}

// Start valida os workflows configurados e agenda um job para cada um
func (s *WorkflowScheduleService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendamento de workflows desabilitado por configuração")
		return nil
	}

	if len(s.config.ByWorkflow) == 0 {
		logrus.Info("Nenhum workflow agendado")
		return nil
	}

	for _, id := range s.workflowIDs() {
		if _, ok := domain.FindWorkflow(id); !ok {
			return fmt.Errorf("workflow agendado desconhecido: %s", id)
		}

		cron := s.config.ByWorkflow[id]
		workflowID := id
		if _, err := s.scheduler.Cron(cron).Do(func() {
			s.run(workflowID)
		}); err != nil {
			return fmt.Errorf("erro ao agendar workflow %s: %w", id, err)
		}

		logrus.WithFields(logrus.Fields{
			"workflow_id": id,
			"cron":        cron,
		}).Info("Workflow agendado")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de workflows")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WorkflowScheduleService) run(workflowID string) {
	s.mu.Lock()
	status, ok := s.jobs[workflowID]
	if !ok {
		status = &workflowJobStatus{}
		s.jobs[workflowID] = status
	}
	if status.running {
		s.mu.Unlock()
		logrus.WithField("workflow_id", workflowID).Info("Workflow já em execução, ignorando")
		return
	}
	status.running = true
	status.lastStarted = s.now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), workflowRunTimeout)
	defer cancel()

	_, err := s.triggerer.Trigger(ctx, domain.TriggerRequest{WorkflowID: workflowID}, domain.TriggerSourceScheduler, ScheduledTriggeredBy)

	s.mu.Lock()
	status.running = false
	status.lastDone = s.now()
	status.lastError = ""
	if err != nil {
		status.lastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		logrus.WithError(err).WithField("workflow_id", workflowID).Error("Erro ao disparar workflow agendado")
		return
	}

	logrus.WithField("workflow_id", workflowID).Info("Workflow agendado disparado")
}

// TriggerManualSync dispara todos os workflows agendados fora do horário
func (s *WorkflowScheduleService) TriggerManualSync() {
	for _, id := range s.workflowIDs() {
		go s.run(id)
	}
}

// GetStatus retorna o status de cada workflow agendado
func (s *WorkflowScheduleService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	workflows := make(map[string]any, len(s.jobs))
	for id, status := range s.jobs {
		workflows[id] = map[string]any{
			"cron":              s.config.ByWorkflow[id],
			"running":           status.running,
			"last_started_at":   status.lastStarted,
			"last_completed_at": status.lastDone,
			"last_error":        status.lastError,
		}
	}

	return map[string]any{
		"sync_enabled": s.config.Enabled,
		"workflows":    workflows,
	}
}

func (s *WorkflowScheduleService) workflowIDs() []string {
	ids := make([]string, 0, len(s.config.ByWorkflow))
	for id := range s.config.ByWorkflow {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
