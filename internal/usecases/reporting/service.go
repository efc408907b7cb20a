package reporting

import (
	"context"
	"sync"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Mensagens gravadas na conta quando uma das consultas falha
const (
	metricsUnavailable = "métriques indisponibles"
	alertsUnavailable  = "alertes indisponibles"
)

type Reporter interface {
	GetAccountsSummary(ctx context.Context, refreshToken string, dateRange *domain.DateRange) (*domain.AccountsSummary, error)
	GetAccountDetail(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) (*domain.AccountDetail, error)
}

type Service struct {
	googleAds googleads.GoogleAdsIntegrator
	cfg       *config.Config
}

func NewService(googleAds googleads.GoogleAdsIntegrator, cfg *config.Config) Reporter {
	return &Service{
		googleAds: googleAds,
		cfg:       cfg,
	}
}

// GetAccountsSummary lista as contas e busca métricas e alertas de cada uma em paralelo.
// Falhas por conta degradam para métricas zeradas ou lista vazia; falha ao listar as contas falha tudo.
func (s *Service) GetAccountsSummary(ctx context.Context, refreshToken string, dateRange *domain.DateRange) (*domain.AccountsSummary, error) {
	if refreshToken == "" {
		return nil, NewReportError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "")
	}

	accounts, err := s.googleAds.GetCustomerAccounts(ctx, refreshToken)
	if err != nil {
		return nil, NewReportError(ErrListAccounts, apiErrors.ErrExternalService, err.Error())
	}

	metricsErrs := make([]error, len(accounts))
	alertsErrs := make([]error, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			metrics, err := s.googleAds.GetAccountMetrics(gctx, refreshToken, account.ID, dateRange)
			if err != nil {
				metricsErrs[i] = err
				metrics = domain.EmptyAccountMetrics()
			}
			account.Metrics = metrics
			return nil
		})

		g.Go(func() error {
			alerts, err := s.googleAds.GetAccountAlerts(gctx, refreshToken, account.ID)
			if err != nil {
				alertsErrs[i] = err
				alerts = []domain.Alert{}
			}
			account.Alerts = alerts
			return nil
		})
	}

	// as goroutines nunca devolvem erro
	_ = g.Wait()

	totalAlerts := 0
	for i, account := range accounts {
		account.AlertsCount = len(account.Alerts)
		totalAlerts += account.AlertsCount
		account.Error = accountError(metricsErrs[i], alertsErrs[i])

		if account.Error != "" {
			logrus.WithFields(logrus.Fields{
				"customer_id":   account.ID,
				"metrics_error": metricsErrs[i],
				"alerts_error":  alertsErrs[i],
			}).Warn("reporting: conta com dados parciais")
		}
	}

	return &domain.AccountsSummary{
		Accounts:      accounts,
		TotalAccounts: len(accounts),
		TotalAlerts:   totalAlerts,
		DateRange:     responseDateRange(dateRange),
	}, nil
}

// GetAccountDetail busca informações, métricas, campanhas e alertas em paralelo e junta o resultado
func (s *Service) GetAccountDetail(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) (*domain.AccountDetail, error) {
	if refreshToken == "" {
		return nil, NewReportError(ErrNotAuthenticated, apiErrors.ErrNotAuthenticated, "")
	}
	if customerID == "" {
		return nil, NewReportError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	var (
		info      *domain.CustomerInfo
		metrics   *domain.AccountMetrics
		campaigns []domain.Campaign
		alerts    []domain.Alert
		mu        sync.Mutex
		failures  = make(map[string]error)
	)

	fail := func(part string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures[part] = err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	g.Go(func() error {
		result, err := s.googleAds.GetCustomerInfo(gctx, refreshToken, customerID)
		if err != nil {
			fail("info", err)
			result = googleads.DefaultCustomerInfo(customerID)
		}
		info = result
		return nil
	})

	g.Go(func() error {
		result, err := s.googleAds.GetAccountMetrics(gctx, refreshToken, customerID, dateRange)
		if err != nil {
			fail("metrics", err)
			result = domain.EmptyAccountMetrics()
		}
		metrics = result
		return nil
	})

	g.Go(func() error {
		result, err := s.googleAds.GetCampaigns(gctx, refreshToken, customerID, dateRange)
		if err != nil {
			fail("campaigns", err)
			result = []domain.Campaign{}
		}
		campaigns = result
		return nil
	})

	g.Go(func() error {
		result, err := s.googleAds.GetAccountAlerts(gctx, refreshToken, customerID)
		if err != nil {
			fail("alerts", err)
			result = []domain.Alert{}
		}
		alerts = result
		return nil
	})

	_ = g.Wait()

	for part, err := range failures {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"part":        part,
		}).WithError(err).Warn("reporting: consulta degradada no detalhe da conta")
	}

	return &domain.AccountDetail{
		CustomerID:   customerID,
		CustomerName: info.CustomerName,
		CurrencyCode: info.CurrencyCode,
		Metrics:      metrics,
		Campaigns:    campaigns,
		Alerts:       alerts,
		DateRange:    responseDateRange(dateRange),
	}, nil
}

func (s *Service) concurrency() int {
	if s.cfg == nil || s.cfg.GoogleAds.MaxConcurrentRequests <= 0 {
		return 1
	}
	return s.cfg.GoogleAds.MaxConcurrentRequests
}

func accountError(metricsErr, alertsErr error) string {
	switch {
	case metricsErr != nil && alertsErr != nil:
		return metricsUnavailable + ", " + alertsUnavailable
	case metricsErr != nil:
		return metricsUnavailable
	case alertsErr != nil:
		return alertsUnavailable
	}
	return ""
}

// responseDateRange devolve o período consultado, ou LAST_30_DAYS nas duas pontas quando ausente
func responseDateRange(dateRange *domain.DateRange) domain.DateRange {
	if dateRange == nil || dateRange.StartDate == "" || dateRange.EndDate == "" {
		return domain.DateRange{
			StartDate: domain.LastThirtyDaysLabel,
			EndDate:   domain.LastThirtyDaysLabel,
		}
	}
	return *dateRange
}
