package nocodb

import (
	"context"
	"errors"
	"net/http"
	"testing"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/mocks"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*Integrator, *mocks.MockClient, *config.Config) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.NocoDB.ClientConfigurationTableID = "clients-table"

	return New(cfg, client), client, cfg
}

func TestIntegrator_UpdateRecord(t *testing.T) {
	integrator, client, _ := newTestIntegrator(t)

	client.EXPECT().
		UpdateRecords(gomock.Any(), "t1", []nocodbdomain.Record{{"Id": int64(5), "action_status": "keep"}}).
		Return([]any{map[string]any{"Id": 5}}, nil)

	result, err := integrator.UpdateRecord(context.Background(), "t1", int64(5), nocodbdomain.Record{"action_status": "keep"})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestIntegrator_UpdateRecord_IDOverridesData(t *testing.T) {
	integrator, client, _ := newTestIntegrator(t)

	client.EXPECT().
		UpdateRecords(gomock.Any(), "t1", []nocodbdomain.Record{{"Id": 9}}).
		Return(nil, nil)

	_, err := integrator.UpdateRecord(context.Background(), "t1", 9, nocodbdomain.Record{"Id": 1})
	require.NoError(t, err)
}

func TestIntegrator_ListSearchTerms(t *testing.T) {
	integrator, client, _ := newTestIntegrator(t)

	client.EXPECT().
		ListRecords(gomock.Any(), "terms", nocodbdomain.ListParams{Limit: SearchTermsLimit, Sort: "-CreatedAt"}).
		Return(&nocodbdomain.ListResponse{List: []nocodbdomain.Record{
			{"Id": 1, "search_term": "gratuit", "cost": 3.5, "is_relevant": false},
		}}, nil)

	terms, err := integrator.ListSearchTerms(context.Background(), "terms")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "gratuit", terms[0].SearchTerm)
	assert.Equal(t, 3.5, terms[0].Cost)
}

func TestIntegrator_ListSearchTerms_UpstreamError(t *testing.T) {
	integrator, client, _ := newTestIntegrator(t)

	upstream := &domain.UpstreamError{Service: "nocodb", StatusCode: http.StatusNotFound, Body: "not found"}
	client.EXPECT().ListRecords(gomock.Any(), "terms", gomock.Any()).Return(nil, upstream)

	_, err := integrator.ListSearchTerms(context.Background(), "terms")
	require.Error(t, err)

	found, ok := domain.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, found.StatusCode)
}

func TestIntegrator_UpdateSearchTerms(t *testing.T) {
	t.Run("todos os registros são atualizados", func(t *testing.T) {
		integrator, client, _ := newTestIntegrator(t)

		client.EXPECT().
			UpdateRecords(gomock.Any(), "terms", []nocodbdomain.Record{{"Id": int64(1), "action_status": domain.ActionStatusExclude, "exclusion_level": domain.ExclusionLevelCampaign}}).
			Return(nil, nil)
		client.EXPECT().
			UpdateRecords(gomock.Any(), "terms", []nocodbdomain.Record{{"Id": int64(2), "action_status": domain.ActionStatusExclude, "exclusion_level": domain.ExclusionLevelCampaign}}).
			Return(nil, nil)

		err := integrator.UpdateSearchTerms(context.Background(), "terms", []domain.SearchTermUpdate{
			{ID: 1, ActionStatus: domain.ActionStatusExclude, ExclusionLevel: domain.ExclusionLevelCampaign},
			{ID: 2, ActionStatus: domain.ActionStatusExclude, ExclusionLevel: domain.ExclusionLevelCampaign},
		})
		assert.NoError(t, err)
	})

	t.Run("uma falha falha o lote", func(t *testing.T) {
		integrator, client, _ := newTestIntegrator(t)

		boom := errors.New("boom")
		client.EXPECT().UpdateRecords(gomock.Any(), "terms", gomock.Any()).Return(nil, boom)

		err := integrator.UpdateSearchTerms(context.Background(), "terms", []domain.SearchTermUpdate{
			{ID: 1, ActionStatus: domain.ActionStatusKeep},
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("lista vazia não chama o NocoDB", func(t *testing.T) {
		integrator, _, _ := newTestIntegrator(t)
		assert.NoError(t, integrator.UpdateSearchTerms(context.Background(), "terms", nil))
	})
}

func TestIntegrator_ListClientConfigurations(t *testing.T) {
	t.Run("filtra os clientes inativos", func(t *testing.T) {
		integrator, client, _ := newTestIntegrator(t)

		client.EXPECT().
			ListRecords(gomock.Any(), "clients-table", nocodbdomain.ListParams{Where: "(active,eq,true)"}).
			Return(&nocodbdomain.ListResponse{List: []nocodbdomain.Record{
				{"Id": 1, "client_name": "Boutique", "customer_id": "123", "nocodb_table_id": "tbl1", "active": true},
				{"Id": 2, "client_name": "Ancien", "active": false},
			}}, nil)

		clients, err := integrator.ListClientConfigurations(context.Background())
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Boutique", clients[0].ClientName)
		assert.Equal(t, "tbl1", clients[0].NocoDBTableID)
	})

	t.Run("sem tabela configurada devolve vazio", func(t *testing.T) {
		integrator, _, cfg := newTestIntegrator(t)
		cfg.NocoDB.ClientConfigurationTableID = ""

		clients, err := integrator.ListClientConfigurations(context.Background())
		require.NoError(t, err)
		assert.Empty(t, clients)
	})
}
