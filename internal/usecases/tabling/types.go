package tabling

import (
	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
)

// Nomes de tabela com significado próprio no painel
const (
	TableCampaigns           = "campaigns"
	TableSearchTermsAnalysis = "searchTermsAnalysis"
	TableWorkflowLogs        = "workflowLogs"
	TableDailyMetrics        = "dailyMetrics"
	TableClientConfiguration = "clientConfiguration"
)

type ListRequest struct {
	Table   string
	TableID string
	Limit   int
	Offset  int
	Sort    string
	Where   string
}

type ListResult struct {
	Success  bool                   `json:"success"`
	Table    string                 `json:"table"`
	Data     []nocodbdomain.Record  `json:"data"`
	PageInfo *nocodbdomain.PageInfo `json:"pageInfo"`
}

type CreateRequest struct {
	Table   string              `json:"table"`
	TableID string              `json:"tableId,omitempty"`
	Data    nocodbdomain.Record `json:"data"`
}

type UpdateRequest struct {
	Table   string              `json:"table"`
	TableID string              `json:"tableId,omitempty"`
	ID      any                 `json:"id"`
	Data    nocodbdomain.Record `json:"data"`
}

type MutationResult struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

// Table é uma tabela resolvida: nome exibido e ID no NocoDB
type Table struct {
	Name string
	ID   string
}
