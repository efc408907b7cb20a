package triaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accolades/ads-dashboard-api/internal/domain"
	tablingmocks "github.com/accolades/ads-dashboard-api/internal/usecases/tabling/mocks"
	triggeringmocks "github.com/accolades/ads-dashboard-api/internal/usecases/triggering/mocks"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	sessionID = "sess-1"
	tableID   = "mjfs0gle9j3wyfi"
)

func sampleTerms() []domain.SearchTermRecord {
	return []domain.SearchTermRecord{
		{ID: 1, SearchTerm: "chaussures gratuites", Cost: 12.5, IsRelevant: false, ActionStatus: domain.ActionStatusPending},
		{ID: 2, SearchTerm: "chaussures cuir montreal", Cost: 30, IsRelevant: true, ActionStatus: domain.ActionStatusPending},
		{ID: 3, SearchTerm: "emploi vendeur", Cost: 4.25, IsRelevant: false, ActionStatus: domain.ActionStatusPending},
		{ID: 4, SearchTerm: "chaussures occasion", Cost: 8, IsRelevant: false, ActionStatus: domain.ActionStatusExcluded},
	}
}

func newTestService(t *testing.T) (*Service, *tablingmocks.MockTabler, *triggeringmocks.MockTriggerer) {
	ctrl := gomock.NewController(t)
	tabler := tablingmocks.NewMockTabler(ctrl)
	triggerer := triggeringmocks.NewMockTriggerer(ctrl)

	service := NewService(NewWorkspaceStore(), tabler, triggerer).(*Service)
	return service, tabler, triggerer
}

func expectFetch(tabler *tablingmocks.MockTabler, records []domain.SearchTermRecord) {
	tabler.EXPECT().SearchTermsTableID(gomock.Any(), int64(0)).Return(tableID, nil)
	tabler.EXPECT().ListSearchTerms(gomock.Any(), tableID).Return(records, nil)
}

func TestService_View(t *testing.T) {
	ctx := context.Background()

	t.Run("primeira visita busca os termos e aplica o filtro pendente", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		expectFetch(tabler, sampleTerms())

		snapshot, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)

		require.Len(t, snapshot.Items, 3)
		assert.Equal(t, int64(2), snapshot.Items[0].ID)
		assert.Equal(t, tableID, snapshot.TableID)
		assert.Equal(t, uint64(1), snapshot.Generation)
		assert.Equal(t, 3, snapshot.Stats.Pending)
		assert.Equal(t, 1, snapshot.Stats.Excluded)
	})

	t.Run("visitas seguintes usam o estado em memória", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		expectFetch(tabler, sampleTerms())

		_, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)

		view := domain.TriageView{
			Filter:        domain.TriageFilterAll,
			Query:         "chaussures",
			SortField:     domain.SortBySearchTerm,
			SortDirection: domain.SortAsc,
		}
		snapshot, err := service.View(ctx, sessionID, ViewRequest{View: &view})
		require.NoError(t, err)

		require.Len(t, snapshot.Items, 3)
		assert.Equal(t, "chaussures cuir montreal", snapshot.Items[0].SearchTerm)
		assert.Equal(t, view, snapshot.View)
	})

	t.Run("filtro inválido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		view := domain.TriageView{Filter: "tout", SortField: domain.SortByCost, SortDirection: domain.SortDesc}
		_, err := service.View(ctx, sessionID, ViewRequest{View: &view})

		var triageErr *TriageError
		require.ErrorAs(t, err, &triageErr)
		assert.Equal(t, apiErrors.ErrInvalidFormat, triageErr.Code)
		assert.ErrorIs(t, err, domain.ErrInvalidTriageView)
	})

	t.Run("sem sessão", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.View(ctx, "", ViewRequest{})
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("erro do NocoDB é propagado", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		tabler.EXPECT().SearchTermsTableID(gomock.Any(), int64(7)).Return(tableID, nil)
		tabler.EXPECT().ListSearchTerms(gomock.Any(), tableID).Return(nil, errors.New("nocodb fora do ar"))

		_, err := service.View(ctx, sessionID, ViewRequest{SelectedClientID: 7})
		assert.EqualError(t, err, "nocodb fora do ar")
	})
}

func TestService_Refresh_DiscardsStaleFetch(t *testing.T) {
	service, tabler, _ := newTestService(t)
	ws := service.store.Get(sessionID)

	tabler.EXPECT().SearchTermsTableID(gomock.Any(), int64(0)).Return(tableID, nil)
	tabler.EXPECT().ListSearchTerms(gomock.Any(), tableID).DoAndReturn(
		func(_ context.Context, _ string) ([]domain.SearchTermRecord, error) {
			// outra leitura começa e termina enquanto esta está em andamento
			newer := ws.BeginFetch()
			require.NoError(t, ws.ApplyFetch(newer, "outra-tabela", sampleTerms()[:1]))
			return sampleTerms(), nil
		})

	snapshot, err := service.Refresh(context.Background(), sessionID, 0)
	require.NoError(t, err)

	assert.Equal(t, "outra-tabela", snapshot.TableID)
	assert.Equal(t, uint64(2), snapshot.Generation)
	assert.Len(t, snapshot.Items, 1)
}

func TestService_SetActionsAndSelect(t *testing.T) {
	ctx := context.Background()
	service, tabler, _ := newTestService(t)
	expectFetch(tabler, sampleTerms())

	_, err := service.View(ctx, sessionID, ViewRequest{})
	require.NoError(t, err)

	snapshot, err := service.SetActions(ctx, sessionID, ActionRequest{IDs: []int64{1, 3}, Action: domain.TermActionExclude})
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Stats.ToExclude)

	id := int64(2)
	snapshot, err = service.Select(ctx, sessionID, SelectionRequest{ID: &id})
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.SelectedCount)

	snapshot, err = service.SetActions(ctx, sessionID, ActionRequest{Selected: true, Action: domain.TermActionKeep})
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Stats.ToKeep)
	assert.Equal(t, 0, snapshot.SelectedCount)

	snapshot, err = service.Select(ctx, sessionID, SelectionRequest{All: true})
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.SelectedCount)

	_, err = service.SetActions(ctx, sessionID, ActionRequest{IDs: []int64{1}, Action: "supprimer"})
	assert.ErrorIs(t, err, domain.ErrInvalidTermAction)

	_, err = service.SetActions(ctx, sessionID, ActionRequest{Action: domain.TermActionKeep})
	assert.ErrorIs(t, err, ErrNoTermIDs)

	_, err = service.Select(ctx, sessionID, SelectionRequest{})
	assert.ErrorIs(t, err, ErrNoTermIDs)
}

func TestService_MarkNonRelevant(t *testing.T) {
	ctx := context.Background()
	service, tabler, _ := newTestService(t)
	expectFetch(tabler, sampleTerms())

	_, err := service.View(ctx, sessionID, ViewRequest{})
	require.NoError(t, err)

	marked, snapshot, err := service.MarkNonRelevant(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, 2, marked)
	assert.Equal(t, 2, snapshot.Stats.ToExclude)
}

func TestService_SetStep(t *testing.T) {
	ctx := context.Background()

	t.Run("sem termos marcados não avança para a exclusão", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		expectFetch(tabler, sampleTerms())

		_, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)

		_, err = service.SetStep(ctx, sessionID, domain.TriageStepExclusion)

		var triageErr *TriageError
		require.ErrorAs(t, err, &triageErr)
		assert.Equal(t, apiErrors.ErrNothingToExclude, triageErr.Code)
	})

	t.Run("avança e volta entre as etapas", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		expectFetch(tabler, sampleTerms())

		_, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)
		_, _, err = service.MarkNonRelevant(ctx, sessionID)
		require.NoError(t, err)

		snapshot, err := service.SetStep(ctx, sessionID, domain.TriageStepExclusion)
		require.NoError(t, err)
		assert.Equal(t, domain.TriageStepExclusion, snapshot.Step)

		snapshot, err = service.SetStep(ctx, sessionID, domain.TriageStepSelection)
		require.NoError(t, err)
		assert.Equal(t, domain.TriageStepSelection, snapshot.Step)
		assert.Equal(t, 2, snapshot.Stats.ToExclude)
	})

	t.Run("etapa desconhecida", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.SetStep(ctx, sessionID, domain.TriageStep("revisao"))
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	prepare := func(t *testing.T) (*Service, *tablingmocks.MockTabler, *triggeringmocks.MockTriggerer) {
		service, tabler, triggerer := newTestService(t)
		expectFetch(tabler, sampleTerms())

		_, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)
		_, err = service.SetActions(ctx, sessionID, ActionRequest{IDs: []int64{1, 3}, Action: domain.TermActionExclude})
		require.NoError(t, err)

		return service, tabler, triggerer
	}

	t.Run("envia ao workflow, marca no NocoDB e relê", func(t *testing.T) {
		service, tabler, triggerer := prepare(t)

		triggerer.EXPECT().
			Trigger(gomock.Any(), gomock.Any(), domain.TriggerSourceDashboard, "ana@accolades.marketing").
			DoAndReturn(func(_ context.Context, req domain.TriggerRequest, _, _ string) (*domain.TriggerResult, error) {
				assert.Equal(t, domain.ApplyNegativeKeywordsWorkflowID, req.WorkflowID)
				assert.Equal(t, domain.ApplyExclusionsAction, req.Payload["action"])
				assert.Equal(t, domain.ExclusionLevelAdGroup, req.Payload["exclusion_level"])
				assert.Equal(t, 2, req.Payload["total_count"])

				terms, ok := req.Payload["terms_to_exclude"].([]domain.ExclusionTerm)
				require.True(t, ok)
				require.Len(t, terms, 2)
				assert.Equal(t, domain.DefaultMatchType, terms[0].MatchType)

				// outro pedido marca um termo enquanto o workflow roda
				_, err := service.SetActions(ctx, sessionID, ActionRequest{IDs: []int64{2}, Action: domain.TermActionExclude})
				assert.NoError(t, err)

				return &domain.TriggerResult{Success: true, RunID: "run-1"}, nil
			})
		tabler.EXPECT().BulkUpdateSearchTerms(gomock.Any(), tableID, []domain.SearchTermUpdate{
			{ID: 1, ActionStatus: domain.ActionStatusExclude, ExclusionLevel: domain.ExclusionLevelAdGroup},
			{ID: 3, ActionStatus: domain.ActionStatusExclude, ExclusionLevel: domain.ExclusionLevelAdGroup},
		}).Return(nil)
		expectFetch(tabler, sampleTerms())

		result, err := service.Submit(ctx, sessionID, SubmitRequest{
			ExclusionLevel: domain.ExclusionLevelAdGroup,
			TriggeredBy:    "ana@accolades.marketing",
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, "Ad Group", result.Level)
		assert.Equal(t, 16.75, result.Savings)
		assert.Equal(t, []string{"chaussures gratuites", "emploi vendeur"}, result.Terms)

		ws := service.store.Get(sessionID)
		pending := ws.TermsToExclude()
		require.Len(t, pending, 1)
		assert.Equal(t, int64(2), pending[0].ID)
		assert.Equal(t, uint64(2), ws.Generation())
	})

	t.Run("falha do workflow mantém o estado", func(t *testing.T) {
		service, _, triggerer := prepare(t)

		triggerer.EXPECT().
			Trigger(gomock.Any(), gomock.Any(), domain.TriggerSourceDashboard, "").
			Return(nil, errors.New("n8n indisponível"))

		result, err := service.Submit(ctx, sessionID, SubmitRequest{})
		require.Error(t, err)

		require.NotNil(t, result)
		assert.False(t, result.Success)
		assert.Equal(t, "n8n indisponível", result.Error)
		assert.Len(t, service.store.Get(sessionID).TermsToExclude(), 2)
	})

	t.Run("falha ao marcar no NocoDB não invalida a submissão", func(t *testing.T) {
		service, tabler, triggerer := prepare(t)

		triggerer.EXPECT().Trigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.TriggerResult{Success: true}, nil)
		tabler.EXPECT().BulkUpdateSearchTerms(gomock.Any(), tableID, gomock.Any()).Return(errors.New("422"))
		expectFetch(tabler, sampleTerms())

		result, err := service.Submit(ctx, sessionID, SubmitRequest{})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Campaign", result.Level)
	})

	t.Run("nada a excluir", func(t *testing.T) {
		service, tabler, _ := newTestService(t)
		expectFetch(tabler, sampleTerms())

		_, err := service.View(ctx, sessionID, ViewRequest{})
		require.NoError(t, err)

		_, err = service.Submit(ctx, sessionID, SubmitRequest{})

		var triageErr *TriageError
		require.ErrorAs(t, err, &triageErr)
		assert.Equal(t, apiErrors.ErrNothingToExclude, triageErr.Code)
	})

	t.Run("nível inválido", func(t *testing.T) {
		service, _, _ := prepare(t)

		_, err := service.Submit(ctx, sessionID, SubmitRequest{ExclusionLevel: "compte"})
		assert.ErrorIs(t, err, domain.ErrInvalidExclusionLevel)
	})
}

func TestWorkspaceStore(t *testing.T) {
	store := NewWorkspaceStore()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	first := store.Get("a")
	assert.Same(t, first, store.Get("a"))

	now = now.Add(2 * time.Hour)
	store.Get("b")

	removed := store.Evict(now.Add(-time.Hour))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	store.Delete("b")
	assert.Equal(t, 0, store.Len())
}

func TestService_ForgetWorkspace(t *testing.T) {
	service, _, _ := newTestService(t)

	service.store.Get(sessionID)
	service.ForgetWorkspace("")
	assert.Equal(t, 1, service.store.Len())

	service.ForgetWorkspace(sessionID)
	assert.Equal(t, 0, service.store.Len())
}
