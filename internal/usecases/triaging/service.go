package triaging

import (
	"context"
	"errors"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/internal/usecases/tabling"
	"github.com/accolades/ads-dashboard-api/internal/usecases/triggering"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/accolades/ads-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Triager interface {
	View(ctx context.Context, sessionID string, req ViewRequest) (*domain.TriageSnapshot, error)
	Refresh(ctx context.Context, sessionID string, selectedClientID int64) (*domain.TriageSnapshot, error)
	SetActions(ctx context.Context, sessionID string, req ActionRequest) (*domain.TriageSnapshot, error)
	Select(ctx context.Context, sessionID string, req SelectionRequest) (*domain.TriageSnapshot, error)
	MarkNonRelevant(ctx context.Context, sessionID string) (int, *domain.TriageSnapshot, error)
	SetStep(ctx context.Context, sessionID string, step domain.TriageStep) (*domain.TriageSnapshot, error)
	Submit(ctx context.Context, sessionID string, req SubmitRequest) (*domain.ExclusionResult, error)
	ResetWorkspace(sessionID string)
	ForgetWorkspace(sessionID string)
}

type Service struct {
	store     *WorkspaceStore
	tabler    tabling.Tabler
	triggerer triggering.Triggerer
}

func NewService(store *WorkspaceStore, tabler tabling.Tabler, triggerer triggering.Triggerer) Triager {
	return &Service{
		store:     store,
		tabler:    tabler,
		triggerer: triggerer,
	}
}

func (s *Service) workspace(sessionID string) (*domain.TriageWorkspace, error) {
	if sessionID == "" {
		return nil, NewTriageError(ErrMissingSession, apiErrors.ErrNotAuthenticated, "")
	}
	return s.store.Get(sessionID), nil
}

// View aplica filtros e ordenação; busca os registros na primeira visita ou quando Refresh é pedido
func (s *Service) View(ctx context.Context, sessionID string, req ViewRequest) (*domain.TriageSnapshot, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return nil, err
	}

	if req.View != nil {
		if err := ws.SetView(*req.View); err != nil {
			return nil, NewTriageError(err, apiErrors.ErrInvalidFormat, "")
		}
	}

	if req.Refresh || ws.Generation() == 0 {
		if err := s.fetch(ctx, ws, req.SelectedClientID); err != nil {
			return nil, err
		}
	}

	snapshot := ws.Snapshot()
	return &snapshot, nil
}

func (s *Service) Refresh(ctx context.Context, sessionID string, selectedClientID int64) (*domain.TriageSnapshot, error) {
	return s.View(ctx, sessionID, ViewRequest{Refresh: true, SelectedClientID: selectedClientID})
}

// fetch lê os termos com um token de geração; um resultado superado por
// outra leitura é descartado sem erro
func (s *Service) fetch(ctx context.Context, ws *domain.TriageWorkspace, selectedClientID int64) error {
	generation := ws.BeginFetch()

	tableID, err := s.tabler.SearchTermsTableID(ctx, selectedClientID)
	if err != nil {
		return err
	}

	records, err := s.tabler.ListSearchTerms(ctx, tableID)
	if err != nil {
		return err
	}

	if err := ws.ApplyFetch(generation, tableID, records); err != nil {
		if errors.Is(err, domain.ErrStaleFetchGeneration) {
			logrus.WithFields(logrus.Fields{
				"generation": generation,
				"table_id":   tableID,
			}).Debug("triaging: leitura superada descartada")
			return nil
		}
		return err
	}

	return nil
}

func (s *Service) SetActions(_ context.Context, sessionID string, req ActionRequest) (*domain.TriageSnapshot, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return nil, err
	}

	if !req.Action.IsValid() {
		return nil, NewTriageError(domain.ErrInvalidTermAction, apiErrors.ErrInvalidFormat, string(req.Action))
	}

	if req.Selected {
		if _, err := ws.ApplyActionToSelected(req.Action); err != nil {
			return nil, NewTriageError(err, apiErrors.ErrInvalidFormat, "")
		}
	} else {
		if len(req.IDs) == 0 {
			return nil, NewTriageError(ErrNoTermIDs, apiErrors.ErrMissingRequiredData, "")
		}
		for _, id := range req.IDs {
			if err := ws.SetAction(id, req.Action); err != nil {
				return nil, NewTriageError(err, apiErrors.ErrInvalidFormat, "")
			}
		}
	}

	snapshot := ws.Snapshot()
	return &snapshot, nil
}

func (s *Service) Select(_ context.Context, sessionID string, req SelectionRequest) (*domain.TriageSnapshot, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.All:
		ws.ToggleSelectAll()
	case req.ID != nil:
		ws.ToggleSelect(*req.ID)
	default:
		return nil, NewTriageError(ErrNoTermIDs, apiErrors.ErrMissingRequiredData, "")
	}

	snapshot := ws.Snapshot()
	return &snapshot, nil
}

func (s *Service) MarkNonRelevant(_ context.Context, sessionID string) (int, *domain.TriageSnapshot, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return 0, nil, err
	}

	marked := ws.MarkAllNonRelevantAsExclude()
	snapshot := ws.Snapshot()
	return marked, &snapshot, nil
}

// SetStep navega entre a seleção dos termos e a escolha do escopo de exclusão
func (s *Service) SetStep(_ context.Context, sessionID string, step domain.TriageStep) (*domain.TriageSnapshot, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return nil, err
	}

	switch step {
	case domain.TriageStepExclusion:
		if err := ws.ProceedToExclusion(); err != nil {
			return nil, NewTriageError(err, apiErrors.ErrNothingToExclude, "")
		}
	case domain.TriageStepSelection:
		ws.BackToSelection()
	default:
		return nil, NewTriageError(ErrInvalidStep, apiErrors.ErrInvalidFormat, string(step))
	}

	snapshot := ws.Snapshot()
	return &snapshot, nil
}

// Submit envia os termos marcados ao workflow de negativação. Em caso de
// sucesso marca os termos no NocoDB, limpa o workspace e relê a tabela;
// em caso de falha o estado local é mantido.
func (s *Service) Submit(ctx context.Context, sessionID string, req SubmitRequest) (*domain.ExclusionResult, error) {
	ws, err := s.workspace(sessionID)
	if err != nil {
		return nil, err
	}

	level := req.ExclusionLevel
	if level == "" {
		level = domain.DefaultExclusionLevel
	}

	exclusion, err := ws.BuildExclusionRequest(level)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingToExclude):
			return nil, NewTriageError(err, apiErrors.ErrNothingToExclude, "")
		default:
			return nil, NewTriageError(err, apiErrors.ErrInvalidFormat, string(level))
		}
	}

	if err := ws.SetExclusionLevel(level); err != nil {
		return nil, NewTriageError(err, apiErrors.ErrInvalidFormat, string(level))
	}

	logger := logrus.WithFields(logrus.Fields{
		"workflow_id": domain.ApplyNegativeKeywordsWorkflowID,
		"terms":       exclusion.Payload.TotalCount,
		"level":       level,
	})
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debugf("triaging: payload de exclusão\n%s", utils.PrettyJson(exclusion.Payload))
	}

	_, err = s.triggerer.Trigger(ctx, domain.TriggerRequest{
		WorkflowID: domain.ApplyNegativeKeywordsWorkflowID,
		Payload:    exclusionPayload(exclusion.Payload),
	}, domain.TriggerSourceDashboard, req.TriggeredBy)
	if err != nil {
		logger.WithError(err).Error("triaging: falha ao enviar exclusões")
		return &domain.ExclusionResult{
			Success: false,
			Terms:   []string{},
			Error:   err.Error(),
		}, err
	}

	tableID := ws.TableID()
	if err := s.tabler.BulkUpdateSearchTerms(ctx, tableID, stampUpdates(exclusion.Payload)); err != nil {
		logger.WithError(err).Warn("triaging: exclusões enviadas mas status não atualizado no NocoDB")
	}

	ws.ClearSubmitted(exclusion.Payload.TermIDs())

	if err := s.fetch(ctx, ws, req.SelectedClientID); err != nil {
		logger.WithError(err).Warn("triaging: erro ao reler termos após exclusão")
	}

	logger.Info("triaging: exclusões enviadas")

	return &domain.ExclusionResult{
		Success: true,
		Count:   exclusion.Payload.TotalCount,
		Level:   level.Label(),
		Savings: utils.RoundCents(exclusion.Savings),
		Terms:   exclusion.Terms,
	}, nil
}

func (s *Service) ResetWorkspace(sessionID string) {
	if sessionID == "" {
		return
	}
	s.store.Get(sessionID).Reset()
}

func exclusionPayload(p domain.ExclusionPayload) map[string]any {
	return map[string]any{
		"action":           p.Action,
		"exclusion_level":  p.ExclusionLevel,
		"terms_to_exclude": p.TermsToExclude,
		"total_count":      p.TotalCount,
	}
}

// stampUpdates marca os termos enviados como "exclude" com o escopo escolhido;
// o workflow muda o status para "excluded" depois de aplicar as negativas
func stampUpdates(p domain.ExclusionPayload) []domain.SearchTermUpdate {
	updates := make([]domain.SearchTermUpdate, 0, len(p.TermsToExclude))
	for _, term := range p.TermsToExclude {
		updates = append(updates, domain.SearchTermUpdate{
			ID:             term.ID,
			ActionStatus:   domain.ActionStatusExclude,
			ExclusionLevel: p.ExclusionLevel,
		})
	}
	return updates
}

// ForgetWorkspace descarta o workspace da sessão encerrada
func (s *Service) ForgetWorkspace(sessionID string) {
	if sessionID == "" {
		return
	}
	s.store.Delete(sessionID)
}
