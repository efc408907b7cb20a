package tabling

import (
	"context"
	"sort"

	"github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb"
	nocodbdomain "github.com/accolades/ads-dashboard-api/infrastructure/integrator/nocodb/domain"
	"github.com/accolades/ads-dashboard-api/internal/config"
	"github.com/accolades/ads-dashboard-api/internal/domain"
	"github.com/accolades/ads-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type Tabler interface {
	ResolveTable(ctx context.Context, name, tableID string) (*Table, error)
	ValidTables() []string
	List(ctx context.Context, req ListRequest) (*ListResult, error)
	Create(ctx context.Context, req CreateRequest) (*MutationResult, error)
	Update(ctx context.Context, req UpdateRequest) (*MutationResult, error)
	BulkUpdateSearchTerms(ctx context.Context, tableID string, updates []domain.SearchTermUpdate) error
	ListSearchTerms(ctx context.Context, tableID string) ([]domain.SearchTermRecord, error)
	ListClients(ctx context.Context) ([]domain.ClientConfiguration, error)
	SearchTermsTableID(ctx context.Context, selectedClientID int64) (string, error)
}

type Service struct {
	nocoDB nocodb.NocoDBIntegrator
	cfg    *config.Config
	tables map[string]string
}

func NewService(nocoDB nocodb.NocoDBIntegrator, cfg *config.Config) Tabler {
	tables := make(map[string]string, len(cfg.NocoDB.TableIDs)+1)
	for name, id := range cfg.NocoDB.TableIDs {
		tables[name] = id
	}
	if cfg.NocoDB.ClientConfigurationTableID != "" {
		tables[TableClientConfiguration] = cfg.NocoDB.ClientConfigurationTableID
	}

	return &Service{
		nocoDB: nocoDB,
		cfg:    cfg,
		tables: tables,
	}
}

func (s *Service) ValidTables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTable aceita um nome conhecido, o ID de uma tabela conhecida
// ou o ID de tabela de um cliente ativo
func (s *Service) ResolveTable(ctx context.Context, name, tableID string) (*Table, error) {
	if id, ok := s.tables[name]; ok {
		return &Table{Name: name, ID: id}, nil
	}

	if tableID != "" {
		for knownName, id := range s.tables {
			if id == tableID {
				return &Table{Name: knownName, ID: id}, nil
			}
		}

		clients, err := s.nocoDB.ListClientConfigurations(ctx)
		if err != nil {
			return nil, err
		}
		for _, client := range clients {
			if client.NocoDBTableID == tableID {
				return &Table{Name: client.ClientName, ID: tableID}, nil
			}
		}
	}

	return nil, s.unknownTable(name, tableID)
}

func (s *Service) unknownTable(name, tableID string) *TableError {
	details := name
	if details == "" {
		details = tableID
	}

	tableErr := NewTableError(ErrUnknownTable, apiErrors.ErrInvalidTable, details)
	tableErr.ValidTables = s.ValidTables()
	return tableErr
}

func (s *Service) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	table, err := s.ResolveTable(ctx, req.Table, req.TableID)
	if err != nil {
		return nil, err
	}

	response, err := s.nocoDB.ListRecords(ctx, table.ID, nocodbdomain.ListParams{
		Limit:  req.Limit,
		Offset: req.Offset,
		Sort:   req.Sort,
		Where:  req.Where,
	}.WithDefaults())
	if err != nil {
		return nil, err
	}

	pageInfo := response.PageInfo
	if pageInfo == nil {
		pageInfo = &nocodbdomain.PageInfo{}
	}

	return &ListResult{
		Success:  true,
		Table:    table.Name,
		Data:     response.List,
		PageInfo: pageInfo,
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*MutationResult, error) {
	table, err := s.ResolveTable(ctx, req.Table, req.TableID)
	if err != nil {
		return nil, err
	}

	if req.Data == nil {
		req.Data = nocodbdomain.Record{}
	}

	result, err := s.nocoDB.CreateRecord(ctx, table.ID, req.Data)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Success: true, Result: result}, nil
}

func (s *Service) Update(ctx context.Context, req UpdateRequest) (*MutationResult, error) {
	table, err := s.ResolveTable(ctx, req.Table, req.TableID)
	if err != nil {
		return nil, err
	}

	if isEmptyID(req.ID) {
		return nil, NewTableError(ErrMissingRecordID, apiErrors.ErrMissingRequiredData, "")
	}

	if req.Data == nil {
		req.Data = nocodbdomain.Record{}
	}

	result, err := s.nocoDB.UpdateRecord(ctx, table.ID, req.ID, req.Data)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Success: true, Result: result}, nil
}

func (s *Service) BulkUpdateSearchTerms(ctx context.Context, tableID string, updates []domain.SearchTermUpdate) error {
	if err := s.nocoDB.UpdateSearchTerms(ctx, tableID, updates); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"table_id": tableID,
		"updates":  len(updates),
	}).Info("tabling: termos de pesquisa atualizados")

	return nil
}

func (s *Service) ListSearchTerms(ctx context.Context, tableID string) ([]domain.SearchTermRecord, error) {
	return s.nocoDB.ListSearchTerms(ctx, tableID)
}

func (s *Service) ListClients(ctx context.Context) ([]domain.ClientConfiguration, error) {
	return s.nocoDB.ListClientConfigurations(ctx)
}

// SearchTermsTableID usa a tabela do cliente selecionado (ou do primeiro ativo),
// e a tabela searchTermsAnalysis quando não há cliente
func (s *Service) SearchTermsTableID(ctx context.Context, selectedClientID int64) (string, error) {
	clients, err := s.nocoDB.ListClientConfigurations(ctx)
	if err != nil {
		return "", err
	}

	if client := domain.SelectClient(clients, selectedClientID); client != nil && client.NocoDBTableID != "" {
		return client.NocoDBTableID, nil
	}

	id, ok := s.tables[TableSearchTermsAnalysis]
	if !ok {
		return "", s.unknownTable(TableSearchTermsAnalysis, "")
	}
	return id, nil
}

// isEmptyID trata 0, "" e nil como ausência de ID, como o painel faz
func isEmptyID(id any) bool {
	switch v := id.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case bool:
		return !v
	}
	return false
}
