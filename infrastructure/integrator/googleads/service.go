package googleads

import (
	"context"
	"fmt"
	"strings"

	googleadsdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	customerResourcePrefix = "customers/"
	campaignsLimit         = 50
	alertsWindow           = "LAST_7_DAYS"
	defaultWindow          = "LAST_30_DAYS"
)

type GoogleAdsIntegrator interface {
	GetCustomerAccounts(ctx context.Context, refreshToken string) ([]*domain.Account, error)
	GetCustomerInfo(ctx context.Context, refreshToken, customerID string) (*domain.CustomerInfo, error)
	GetAccountMetrics(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) (*domain.AccountMetrics, error)
	GetCampaigns(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) ([]domain.Campaign, error)
	GetAccountAlerts(ctx context.Context, refreshToken, customerID string) ([]domain.Alert, error)
	ForgetToken(refreshToken string)
}

type Integrator struct {
	cfg    *config.Config
	Client googleadsclient.Client
}

func New(cfg *config.Config, client googleadsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCustomerAccounts lista as contas clientes ativas sob a conta gerenciadora
func (s *Integrator) GetCustomerAccounts(ctx context.Context, refreshToken string) ([]*domain.Account, error) {
	query := `
		SELECT
			customer_client.client_customer,
			customer_client.descriptive_name,
			customer_client.currency_code,
			customer_client.time_zone,
			customer_client.manager,
			customer_client.status
		FROM customer_client
		WHERE customer_client.status = 'ENABLED'
			AND customer_client.manager = false`

	rows, err := s.Client.Search(ctx, refreshToken, s.cfg.GoogleAds.LoginCustomerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "googleads: erro ao listar contas clientes")
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		if row.CustomerClient == nil {
			continue
		}
		accounts = append(accounts, FactoryAccount(row.CustomerClient))
	}

	logrus.WithField("accounts", len(accounts)).Debug("googleads: contas clientes recuperadas")
	return accounts, nil
}

// GetCustomerInfo busca nome e moeda de uma conta; sem resultado usa os padrões
func (s *Integrator) GetCustomerInfo(ctx context.Context, refreshToken, customerID string) (*domain.CustomerInfo, error) {
	query := `
		SELECT
			customer.id,
			customer.descriptive_name,
			customer.currency_code
		FROM customer
		LIMIT 1`

	rows, err := s.Client.Search(ctx, refreshToken, customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "googleads: erro ao buscar a conta %s", customerID)
	}

	info := DefaultCustomerInfo(customerID)
	if len(rows) > 0 && rows[0].Customer != nil {
		if rows[0].Customer.DescriptiveName != "" {
			info.CustomerName = rows[0].Customer.DescriptiveName
		}
		if rows[0].Customer.CurrencyCode != "" {
			info.CurrencyCode = rows[0].Customer.CurrencyCode
		}
	}

	return info, nil
}

// GetAccountMetrics soma as métricas da conta no período
func (s *Integrator) GetAccountMetrics(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) (*domain.AccountMetrics, error) {
	query := fmt.Sprintf(`
		SELECT
			metrics.clicks,
			metrics.impressions,
			metrics.cost_micros,
			metrics.conversions,
			metrics.ctr,
			metrics.average_cpc
		FROM customer
		WHERE %s`, DateClause(dateRange))

	rows, err := s.Client.Search(ctx, refreshToken, customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "googleads: erro ao buscar métricas da conta %s", customerID)
	}

	return AggregateMetrics(rows), nil
}

// GetCampaigns lista as campanhas não removidas, agrupadas por ID
func (s *Integrator) GetCampaigns(ctx context.Context, refreshToken, customerID string, dateRange *domain.DateRange) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			campaign.status,
			campaign_budget.amount_micros,
			metrics.clicks,
			metrics.impressions,
			metrics.cost_micros,
			metrics.conversions
		FROM campaign
		WHERE %s
			AND campaign.status != 'REMOVED'
		ORDER BY metrics.cost_micros DESC
		LIMIT %d`, DateClause(dateRange), campaignsLimit)

	rows, err := s.Client.Search(ctx, refreshToken, customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "googleads: erro ao buscar campanhas da conta %s", customerID)
	}

	return GroupCampaigns(rows), nil
}

// GetAccountAlerts avalia as campanhas ativas dos últimos 7 dias
func (s *Integrator) GetAccountAlerts(ctx context.Context, refreshToken, customerID string) ([]domain.Alert, error) {
	query := fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			metrics.clicks,
			metrics.impressions,
			metrics.cost_micros,
			metrics.conversions
		FROM campaign
		WHERE segments.date DURING %s
			AND campaign.status = 'ENABLED'`, alertsWindow)

	rows, err := s.Client.Search(ctx, refreshToken, customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "googleads: erro ao buscar alertas da conta %s", customerID)
	}

	alerts := make([]domain.Alert, 0)
	for _, perf := range CampaignPerformances(rows) {
		alerts = append(alerts, domain.DeriveAlerts(perf)...)
	}

	return alerts, nil
}

func (s *Integrator) ForgetToken(refreshToken string) {
	s.Client.ForgetToken(refreshToken)
}

// DateClause monta o filtro GAQL de período; sem datas usa os últimos 30 dias
func DateClause(dateRange *domain.DateRange) string {
	if dateRange == nil || dateRange.StartDate == "" || dateRange.EndDate == "" {
		return "segments.date DURING " + defaultWindow
	}
	return fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", dateRange.StartDate, dateRange.EndDate)
}

func DefaultCustomerInfo(customerID string) *domain.CustomerInfo {
	return &domain.CustomerInfo{
		CustomerID:   customerID,
		CustomerName: fmt.Sprintf("Compte %s", customerID),
		CurrencyCode: domain.DefaultCurrencyCode,
	}
}

func FactoryAccount(client *googleadsdomain.CustomerClient) *domain.Account {
	account := &domain.Account{
		ID:              strings.TrimPrefix(client.ClientCustomer, customerResourcePrefix),
		DescriptiveName: client.DescriptiveName,
		CurrencyCode:    client.CurrencyCode,
		TimeZone:        client.TimeZone,
	}

	if account.DescriptiveName == "" {
		account.DescriptiveName = domain.DefaultAccountName
	}
	if account.CurrencyCode == "" {
		account.CurrencyCode = domain.DefaultCurrencyCode
	}
	if account.TimeZone == "" {
		account.TimeZone = domain.DefaultAccountTimeZone
	}

	return account
}

func AggregateMetrics(rows []googleadsdomain.Row) *domain.AccountMetrics {
	var clicks, impressions, costMicros int64
	var conversions float64

	for _, row := range rows {
		if row.Metrics == nil {
			continue
		}
		clicks += row.Metrics.Clicks.Int64()
		impressions += row.Metrics.Impressions.Int64()
		costMicros += row.Metrics.CostMicros.Int64()
		conversions += row.Metrics.Conversions
	}

	return domain.NewAccountMetrics(clicks, impressions, costMicros, conversions)
}

// GroupCampaigns soma as linhas de uma mesma campanha preservando a ordem de chegada
func GroupCampaigns(rows []googleadsdomain.Row) []domain.Campaign {
	campaigns := make([]domain.Campaign, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}

		var clicks, impressions, costMicros int64
		var conversions float64
		if row.Metrics != nil {
			clicks = row.Metrics.Clicks.Int64()
			impressions = row.Metrics.Impressions.Int64()
			costMicros = row.Metrics.CostMicros.Int64()
			conversions = row.Metrics.Conversions
		}

		id := row.Campaign.ID.Int64()
		if i, ok := index[id]; ok {
			campaigns[i].Clicks += clicks
			campaigns[i].Impressions += impressions
			campaigns[i].Cost += domain.MicrosToCurrency(costMicros)
			campaigns[i].Conversions += conversions
			continue
		}

		var budget float64
		if row.CampaignBudget != nil {
			budget = domain.MicrosToCurrency(row.CampaignBudget.AmountMicros.Int64())
		}

		index[id] = len(campaigns)
		campaigns = append(campaigns, domain.Campaign{
			ID:          fmt.Sprintf("%d", id),
			Name:        row.Campaign.Name,
			Status:      row.Campaign.Status,
			Budget:      budget,
			Cost:        domain.MicrosToCurrency(costMicros),
			Clicks:      clicks,
			Impressions: impressions,
			Conversions: conversions,
		})
	}

	for i := range campaigns {
		campaigns[i].CTR = domain.CTR(campaigns[i].Clicks, campaigns[i].Impressions)
		campaigns[i].AverageCPC = domain.AverageCPC(campaigns[i].Cost, campaigns[i].Clicks)
	}

	return campaigns
}

// CampaignPerformances agrega as linhas de alerta por campanha
func CampaignPerformances(rows []googleadsdomain.Row) []domain.CampaignPerformance {
	perfs := make([]domain.CampaignPerformance, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		if row.Campaign == nil || row.Metrics == nil {
			continue
		}

		id := row.Campaign.ID.Int64()
		i, ok := index[id]
		if !ok {
			i = len(perfs)
			index[id] = i
			perfs = append(perfs, domain.CampaignPerformance{
				CampaignID:   fmt.Sprintf("%d", id),
				CampaignName: row.Campaign.Name,
			})
		}

		perfs[i].Clicks += row.Metrics.Clicks.Int64()
		perfs[i].Impressions += row.Metrics.Impressions.Int64()
		perfs[i].CostMicros += row.Metrics.CostMicros.Int64()
		perfs[i].Conversions += row.Metrics.Conversions
	}

	return perfs
}
