package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/mocks"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Reporter, *mocks.MockGoogleAdsIntegrator) {
	ctrl := gomock.NewController(t)
	googleAds := mocks.NewMockGoogleAdsIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.GoogleAds.MaxConcurrentRequests = 2

	return NewService(googleAds, cfg), googleAds
}

func TestService_GetAccountsSummary(t *testing.T) {
	ctx := context.Background()
	dateRange := &domain.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-31"}

	t.Run("sem refresh token", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetAccountsSummary(ctx, "", nil)

		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, apiErrors.ErrNotAuthenticated, reportErr.Code)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("falha ao listar contas falha a requisição", func(t *testing.T) {
		service, googleAds := newTestService(t)
		googleAds.EXPECT().GetCustomerAccounts(gomock.Any(), "rt").Return(nil, errors.New("quota"))

		_, err := service.GetAccountsSummary(ctx, "rt", nil)
		assert.ErrorIs(t, err, ErrListAccounts)
	})

	t.Run("agrega métricas e alertas por conta", func(t *testing.T) {
		service, googleAds := newTestService(t)

		googleAds.EXPECT().GetCustomerAccounts(gomock.Any(), "rt").Return([]*domain.Account{
			{ID: "111", DescriptiveName: "A"},
			{ID: "222", DescriptiveName: "B"},
		}, nil)

		googleAds.EXPECT().GetAccountMetrics(gomock.Any(), "rt", "111", dateRange).
			Return(domain.NewAccountMetrics(10, 100, 5_000_000, 1), nil)
		googleAds.EXPECT().GetAccountMetrics(gomock.Any(), "rt", "222", dateRange).
			Return(domain.NewAccountMetrics(0, 0, 0, 0), nil)

		googleAds.EXPECT().GetAccountAlerts(gomock.Any(), "rt", "111").
			Return([]domain.Alert{{Type: domain.AlertTypeLowCTR}}, nil)
		googleAds.EXPECT().GetAccountAlerts(gomock.Any(), "rt", "222").
			Return([]domain.Alert{{Type: domain.AlertTypeLowCTR}, {Type: domain.AlertTypeNoConversions}}, nil)

		summary, err := service.GetAccountsSummary(ctx, "rt", dateRange)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalAccounts)
		assert.Equal(t, 3, summary.TotalAlerts)
		assert.Equal(t, *dateRange, summary.DateRange)

		assert.Equal(t, 1, summary.Accounts[0].AlertsCount)
		assert.Equal(t, 5.0, summary.Accounts[0].Metrics.Cost)
		assert.Empty(t, summary.Accounts[0].Error)
		assert.Equal(t, 2, summary.Accounts[1].AlertsCount)
	})

	t.Run("falhas por conta degradam sem falhar a requisição", func(t *testing.T) {
		service, googleAds := newTestService(t)

		googleAds.EXPECT().GetCustomerAccounts(gomock.Any(), "rt").Return([]*domain.Account{{ID: "111"}}, nil)
		googleAds.EXPECT().GetAccountMetrics(gomock.Any(), "rt", "111", nil).Return(nil, errors.New("timeout"))
		googleAds.EXPECT().GetAccountAlerts(gomock.Any(), "rt", "111").Return(nil, errors.New("timeout"))

		summary, err := service.GetAccountsSummary(ctx, "rt", nil)
		require.NoError(t, err)

		account := summary.Accounts[0]
		assert.Equal(t, domain.EmptyAccountMetrics(), account.Metrics)
		assert.Empty(t, account.Alerts)
		assert.Equal(t, 0, account.AlertsCount)
		assert.Equal(t, "métriques indisponibles, alertes indisponibles", account.Error)

		assert.Equal(t, domain.DateRange{StartDate: "LAST_30_DAYS", EndDate: "LAST_30_DAYS"}, summary.DateRange)
	})

	t.Run("sem contas", func(t *testing.T) {
		service, googleAds := newTestService(t)
		googleAds.EXPECT().GetCustomerAccounts(gomock.Any(), "rt").Return([]*domain.Account{}, nil)

		summary, err := service.GetAccountsSummary(ctx, "rt", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalAccounts)
		assert.Equal(t, 0, summary.TotalAlerts)
	})
}

func TestService_GetAccountDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("junta as quatro consultas", func(t *testing.T) {
		service, googleAds := newTestService(t)

		googleAds.EXPECT().GetCustomerInfo(gomock.Any(), "rt", "111").
			Return(&domain.CustomerInfo{CustomerID: "111", CustomerName: "Boutique", CurrencyCode: "EUR"}, nil)
		googleAds.EXPECT().GetAccountMetrics(gomock.Any(), "rt", "111", nil).
			Return(domain.NewAccountMetrics(1, 10, 1_000_000, 0), nil)
		googleAds.EXPECT().GetCampaigns(gomock.Any(), "rt", "111", nil).
			Return([]domain.Campaign{{ID: "1", Name: "Marque"}}, nil)
		googleAds.EXPECT().GetAccountAlerts(gomock.Any(), "rt", "111").
			Return([]domain.Alert{}, nil)

		detail, err := service.GetAccountDetail(ctx, "rt", "111", nil)
		require.NoError(t, err)

		assert.Equal(t, "111", detail.CustomerID)
		assert.Equal(t, "Boutique", detail.CustomerName)
		assert.Equal(t, "EUR", detail.CurrencyCode)
		assert.Equal(t, int64(1), detail.Metrics.Clicks)
		assert.Len(t, detail.Campaigns, 1)
		assert.Empty(t, detail.Alerts)
	})

	t.Run("falhas usam os valores padrão", func(t *testing.T) {
		service, googleAds := newTestService(t)
		boom := errors.New("boom")

		googleAds.EXPECT().GetCustomerInfo(gomock.Any(), "rt", "111").Return(nil, boom)
		googleAds.EXPECT().GetAccountMetrics(gomock.Any(), "rt", "111", nil).Return(nil, boom)
		googleAds.EXPECT().GetCampaigns(gomock.Any(), "rt", "111", nil).Return(nil, boom)
		googleAds.EXPECT().GetAccountAlerts(gomock.Any(), "rt", "111").Return(nil, boom)

		detail, err := service.GetAccountDetail(ctx, "rt", "111", nil)
		require.NoError(t, err)

		assert.Equal(t, "Compte 111", detail.CustomerName)
		assert.Equal(t, "CAD", detail.CurrencyCode)
		assert.Equal(t, domain.EmptyAccountMetrics(), detail.Metrics)
		assert.NotNil(t, detail.Campaigns)
		assert.NotNil(t, detail.Alerts)
	})

	t.Run("sem ID de conta", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.GetAccountDetail(ctx, "rt", "", nil)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})
}
