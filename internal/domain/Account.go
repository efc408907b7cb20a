package domain

import "math"

const microsPerUnit = 1_000_000

// Valores padrão aplicados quando o Google Ads não informa os dados do cliente
const (
	DefaultAccountName     = "Sans nom"
	DefaultCurrencyCode    = "CAD"
	DefaultAccountTimeZone = "America/Toronto"
)

type Account struct {
	ID              string          `json:"id"`
	DescriptiveName string          `json:"descriptiveName"`
	CurrencyCode    string          `json:"currencyCode"`
	TimeZone        string          `json:"timeZone"`
	Metrics         *AccountMetrics `json:"metrics,omitempty"`
	AlertsCount     int             `json:"alertsCount"`
	Alerts          []Alert         `json:"alerts,omitempty"`
	Error           string          `json:"error,omitempty"`
}

type CustomerInfo struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	CurrencyCode string `json:"currencyCode"`
}

type AccountMetrics struct {
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	CTR         float64 `json:"ctr"`
	AverageCPC  float64 `json:"averageCpc"`
}

// MicrosToCurrency converte um valor em micros para a unidade da moeda
func MicrosToCurrency(micros int64) float64 {
	return float64(micros) / microsPerUnit
}

// CTR retorna clicks/impressions em porcentagem, ou 0 sem impressões
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// AverageCPC retorna o custo médio por clique, ou 0 sem cliques
func AverageCPC(cost float64, clicks int64) float64 {
	if clicks <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0
	}
	return cost / float64(clicks)
}

// NewAccountMetrics monta as métricas agregadas a partir dos totais brutos
func NewAccountMetrics(clicks, impressions, costMicros int64, conversions float64) *AccountMetrics {
	cost := MicrosToCurrency(costMicros)

	return &AccountMetrics{
		Clicks:      clicks,
		Impressions: impressions,
		Cost:        cost,
		Conversions: conversions,
		CTR:         CTR(clicks, impressions),
		AverageCPC:  AverageCPC(cost, clicks),
	}
}

// EmptyAccountMetrics representa uma conta sem dados no período
func EmptyAccountMetrics() *AccountMetrics {
	return &AccountMetrics{}
}

type AccountsSummary struct {
	Accounts          []*Account     `json:"accounts"`
	TotalAccounts     int            `json:"totalAccounts"`
	TotalAlerts       int            `json:"totalAlerts"`
	DateRange         DateRange      `json:"dateRange"`
	VisibleAccountIDs []string       `json:"visibleAccountIds,omitempty"`
	VisibleTotals     *VisibleTotals `json:"visibleTotals,omitempty"`
}

type AccountDetail struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	CurrencyCode string          `json:"currencyCode"`
	Metrics      *AccountMetrics `json:"metrics"`
	Campaigns    []Campaign      `json:"campaigns"`
	Alerts       []Alert         `json:"alerts"`
	DateRange    DateRange       `json:"dateRange"`
}

// VisibleTotals soma as métricas somente das contas visíveis
type VisibleTotals struct {
	Cost        float64 `json:"cost"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Alerts      int     `json:"alerts"`
}

func ComputeVisibleTotals(accounts []*Account, visible *VisibleAccounts) VisibleTotals {
	var totals VisibleTotals
	for _, acc := range accounts {
		if acc == nil || !visible.IsVisible(acc.ID) {
			continue
		}

		if acc.Metrics != nil {
			totals.Cost += acc.Metrics.Cost
			totals.Clicks += acc.Metrics.Clicks
			totals.Conversions += acc.Metrics.Conversions
		}
		totals.Alerts += acc.AlertsCount
	}
	return totals
}
