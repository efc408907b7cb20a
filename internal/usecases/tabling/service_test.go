package tabling

import (
	"context"
	"errors"
	"net/http"
	"testing"

	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/mocks"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Tabler, *mocks.MockNocoDBIntegrator) {
	ctrl := gomock.NewController(t)
	nocoDB := mocks.NewMockNocoDBIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.NocoDB.TableIDs = map[string]string{
		TableCampaigns:           "m85p8wmzwk6mrls",
		TableSearchTermsAnalysis: "mjfs0gle9j3wyfi",
		TableWorkflowLogs:        "mrpo5lia5l7a7al",
		TableDailyMetrics:        "mr4qlww7ecgz0ap",
	}
	cfg.NocoDB.ClientConfigurationTableID = "clients"

	return NewService(nocoDB, cfg), nocoDB
}

func TestService_ValidTables(t *testing.T) {
	service, _ := newTestService(t)

	assert.Equal(t, []string{"campaigns", "clientConfiguration", "dailyMetrics", "searchTermsAnalysis", "workflowLogs"}, service.ValidTables())
}

func TestService_ResolveTable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		table     string
		tableID   string
		clients   []domain.ClientConfiguration
		expected  *Table
		wantError bool
	}{
		{
			name:     "nome conhecido",
			table:    "campaigns",
			expected: &Table{Name: "campaigns", ID: "m85p8wmzwk6mrls"},
		},
		{
			name:     "ID conhecido",
			tableID:  "mr4qlww7ecgz0ap",
			expected: &Table{Name: "dailyMetrics", ID: "mr4qlww7ecgz0ap"},
		},
		{
			name:     "ID de tabela de um cliente ativo",
			tableID:  "client-terms",
			clients:  []domain.ClientConfiguration{{ID: 1, ClientName: "Boutique", NocoDBTableID: "client-terms", Active: true}},
			expected: &Table{Name: "Boutique", ID: "client-terms"},
		},
		{
			name:      "ID desconhecido",
			tableID:   "unknown",
			clients:   []domain.ClientConfiguration{},
			wantError: true,
		},
		{
			name:      "nome desconhecido",
			table:     "users",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, nocoDB := newTestService(t)
			if tt.clients != nil {
				nocoDB.EXPECT().ListClientConfigurations(gomock.Any()).Return(tt.clients, nil)
			}

			table, err := service.ResolveTable(ctx, tt.table, tt.tableID)
			if tt.wantError {
				var tableErr *TableError
				require.ErrorAs(t, err, &tableErr)
				assert.ErrorIs(t, err, ErrUnknownTable)
				assert.Equal(t, apiErrors.ErrInvalidTable, tableErr.Code)
				assert.Len(t, tableErr.ValidTables, 5)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, table)
		})
	}
}

func TestService_List(t *testing.T) {
	service, nocoDB := newTestService(t)

	nocoDB.EXPECT().
		ListRecords(gomock.Any(), "m85p8wmzwk6mrls", nocodbdomain.ListParams{Limit: 100, Offset: 0, Sort: "-performanceScore"}).
		Return(&nocodbdomain.ListResponse{List: []nocodbdomain.Record{{"Id": 1}}}, nil)

	result, err := service.List(context.Background(), ListRequest{Table: "campaigns", Sort: "-performanceScore"})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "campaigns", result.Table)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, &nocodbdomain.PageInfo{}, result.PageInfo)
}

func TestService_List_UpstreamError(t *testing.T) {
	service, nocoDB := newTestService(t)

	upstream := &domain.UpstreamError{Service: "nocodb", StatusCode: http.StatusUnauthorized, Body: "invalid token"}
	nocoDB.EXPECT().ListRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := service.List(context.Background(), ListRequest{Table: "campaigns"})

	found, ok := domain.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, found.StatusCode)
}

func TestService_Create(t *testing.T) {
	service, nocoDB := newTestService(t)

	nocoDB.EXPECT().
		CreateRecord(gomock.Any(), "mrpo5lia5l7a7al", nocodbdomain.Record{"workflow_id": "weekly-report"}).
		Return(map[string]any{"Id": 3}, nil)

	result, err := service.Create(context.Background(), CreateRequest{Table: "workflowLogs", Data: nocodbdomain.Record{"workflow_id": "weekly-report"}})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, map[string]any{"Id": 3}, result.Result)
}

func TestService_Update(t *testing.T) {
	t.Run("sem ID", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Update(context.Background(), UpdateRequest{Table: "searchTermsAnalysis", Data: nocodbdomain.Record{"action_status": "keep"}})

		var tableErr *TableError
		require.ErrorAs(t, err, &tableErr)
		assert.ErrorIs(t, err, ErrMissingRecordID)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, tableErr.Code)
	})

	t.Run("tabela inválida tem precedência", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Update(context.Background(), UpdateRequest{Table: "nope"})
		assert.ErrorIs(t, err, ErrUnknownTable)
	})

	t.Run("atualiza o registro", func(t *testing.T) {
		service, nocoDB := newTestService(t)

		nocoDB.EXPECT().
			UpdateRecord(gomock.Any(), "mjfs0gle9j3wyfi", float64(12), nocodbdomain.Record{"action_status": "keep"}).
			Return([]any{}, nil)

		result, err := service.Update(context.Background(), UpdateRequest{Table: "searchTermsAnalysis", ID: float64(12), Data: nocodbdomain.Record{"action_status": "keep"}})
		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestService_SearchTermsTableID(t *testing.T) {
	ctx := context.Background()

	t.Run("cliente selecionado", func(t *testing.T) {
		service, nocoDB := newTestService(t)
		nocoDB.EXPECT().ListClientConfigurations(gomock.Any()).Return([]domain.ClientConfiguration{
			{ID: 1, NocoDBTableID: "t-one"},
			{ID: 2, NocoDBTableID: "t-two"},
		}, nil)

		id, err := service.SearchTermsTableID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "t-two", id)
	})

	t.Run("sem seleção usa o primeiro cliente", func(t *testing.T) {
		service, nocoDB := newTestService(t)
		nocoDB.EXPECT().ListClientConfigurations(gomock.Any()).Return([]domain.ClientConfiguration{
			{ID: 1, NocoDBTableID: "t-one"},
		}, nil)

		id, err := service.SearchTermsTableID(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "t-one", id)
	})

	t.Run("sem clientes usa searchTermsAnalysis", func(t *testing.T) {
		service, nocoDB := newTestService(t)
		nocoDB.EXPECT().ListClientConfigurations(gomock.Any()).Return([]domain.ClientConfiguration{}, nil)

		id, err := service.SearchTermsTableID(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "mjfs0gle9j3wyfi", id)
	})

	t.Run("erro do NocoDB", func(t *testing.T) {
		service, nocoDB := newTestService(t)
		boom := errors.New("boom")
		nocoDB.EXPECT().ListClientConfigurations(gomock.Any()).Return(nil, boom)

		_, err := service.SearchTermsTableID(ctx, 0)
		assert.ErrorIs(t, err, boom)
	})
}
